package videobackend_test

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/tauraamui/airdraw/pkg/video/videobackend"
	"github.com/tauraamui/xerror"
	"gocv.io/x/gocv"
)

func TestOpenCVConnectReturnsCaptureOpenError(t *testing.T) {
	is := is.New(t)
	reset := videobackend.OverloadOpenVideoCapture(
		func(addr string) (*gocv.VideoCapture, error) {
			return nil, xerror.New("unable to open video capture device")
		},
	)
	defer reset()

	conn, err := videobackend.OpenCV().Connect(context.Background(), "0")
	is.True(conn == nil)
	is.Equal(err.Error(), "unable to open video capture device")
}

func TestOpenCVConnectHonoursCancelledContext(t *testing.T) {
	is := is.New(t)
	block := make(chan struct{})
	defer close(block)
	reset := videobackend.OverloadOpenVideoCapture(
		func(addr string) (*gocv.VideoCapture, error) {
			<-block
			return nil, nil
		},
	)
	defer reset()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conn, err := videobackend.OpenCV().Connect(ctx, "0")
	is.True(conn == nil)
	is.Equal(err.Error(), "connection cancelled")
}

func TestOpenCVConnectionReadRejectsForeignFrame(t *testing.T) {
	is := is.New(t)
	reset := videobackend.OverloadOpenVideoCapture(
		func(addr string) (*gocv.VideoCapture, error) {
			return nil, nil
		},
	)
	defer reset()

	conn, err := videobackend.OpenCV().Connect(context.Background(), "0")
	is.NoErr(err)

	is.Equal(conn.Read(invalidFrame{}).Error(), "must pass OpenCV frame to OpenCV connection read")
}

func TestOpenCVConnectionReadFailureSurfaces(t *testing.T) {
	is := is.New(t)
	resetOpen := videobackend.OverloadOpenVideoCapture(
		func(addr string) (*gocv.VideoCapture, error) {
			return nil, nil
		},
	)
	defer resetOpen()
	resetRead := videobackend.OverloadReadFromVideoConnection(
		func(vc *gocv.VideoCapture, mat *gocv.Mat) bool { return false },
	)
	defer resetRead()

	backend := videobackend.OpenCV()
	conn, err := backend.Connect(context.Background(), "0")
	is.NoErr(err)

	frame := backend.NewFrame()
	defer frame.Close()
	is.Equal(conn.Read(frame).Error(), "unable to read from video connection")
}
