package airdraw_test

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/matryer/is"
	"github.com/tauraamui/airdraw/pkg/airdraw"
	"github.com/tauraamui/airdraw/pkg/canvas"
	"github.com/tauraamui/airdraw/pkg/configdef"
	"github.com/tauraamui/airdraw/pkg/video/videobackend"
	"github.com/tauraamui/airdraw/pkg/video/videoframe"
	"github.com/tauraamui/airdraw/pkg/vision/visionbackend"
	"github.com/tauraamui/xerror"
)

type segment struct {
	from, to image.Point
}

// recordingVision decorates a real vision backend and keeps the stroke
// segments drawn onto the most recent frame. Mirror runs first in every
// cycle, so it doubles as the frame delimiter.
type recordingVision struct {
	visionbackend.Backend
	lastFrameSegments []segment
}

func (r *recordingVision) Mirror(frame videoframe.Frame) error {
	r.lastFrameSegments = nil
	return r.Backend.Mirror(frame)
}

func (r *recordingVision) Line(frame videoframe.Frame, from, to image.Point, c color.RGBA, thickness int) error {
	r.lastFrameSegments = append(r.lastFrameSegments, segment{from: from, to: to})
	return r.Backend.Line(frame, from, to, c, thickness)
}

func blobScriptFromCenters(centers []image.Point, present int) videobackend.BlobScript {
	return func(frame int) (image.Point, bool) {
		if frame < present && frame < len(centers) {
			return centers[frame], true
		}
		return image.Point{}, false
	}
}

func TestAppRunAccumulatesStrokeFromDetectionRun(t *testing.T) {
	is := is.New(t)

	// frame is mirrored before segmentation, blob x maps to 639-x
	script := blobScriptFromCenters([]image.Point{
		image.Pt(539, 240), image.Pt(439, 240), image.Pt(339, 240),
	}, 3)
	video := videobackend.VirtualWithScript(script, []int{-1, -1, -1, -1, 'q'})
	recVision := recordingVision{Backend: visionbackend.Pure()}

	app, err := airdraw.NewApp(configdef.DefaultResolver(), video, &recVision)
	is.NoErr(err)
	is.NoErr(app.Run(context.Background()))

	is.Equal(app.Canvas().Strokes(), []canvas.Stroke{{
		image.Pt(100, 240), image.Pt(200, 240), image.Pt(300, 240),
	}})

	// frames 4 and 5 carried no qualifying blob, the rendered output
	// still holds exactly the two segments between the three centroids
	is.Equal(recVision.lastFrameSegments, []segment{
		{from: image.Pt(100, 240), to: image.Pt(200, 240)},
		{from: image.Pt(200, 240), to: image.Pt(300, 240)},
	})
}

func TestAppRunClearKeyResetsCanvas(t *testing.T) {
	is := is.New(t)

	script := blobScriptFromCenters([]image.Point{
		image.Pt(339, 240), image.Pt(339, 240), image.Pt(339, 240), image.Pt(339, 240),
	}, 4)
	video := videobackend.VirtualWithScript(script, []int{-1, -1, 'c', 'q'})

	app, err := airdraw.NewApp(configdef.DefaultResolver(), video, visionbackend.Pure())
	is.NoErr(err)
	is.NoErr(app.Run(context.Background()))

	// three points recorded then cleared, one more recorded before quit
	is.Equal(app.Canvas().Strokes(), []canvas.Stroke{{image.Pt(300, 240)}})
}

func TestAppRunSkipsFramesWithBlobBelowMinimumArea(t *testing.T) {
	is := is.New(t)

	// a minimum area above the synthetic blob's size makes every frame a
	// no-detection frame, the canvas must come through untouched
	script := blobScriptFromCenters([]image.Point{
		image.Pt(339, 240), image.Pt(339, 240),
	}, 2)
	video := videobackend.VirtualWithScript(script, []int{-1, 'q'})

	app, err := airdraw.NewApp(highMinAreaResolver{}, video, visionbackend.Pure())
	is.NoErr(err)
	is.NoErr(app.Run(context.Background()))

	is.Equal(app.Canvas().Strokes(), []canvas.Stroke{{}})
}

type highMinAreaResolver struct{}

func (r highMinAreaResolver) Resolve() (configdef.Values, error) {
	values := configdef.Defaults()
	values.Tracking.MinBlobArea = 5000
	return values, values.RunValidate()
}

func TestAppRunStopsOnCancelledContext(t *testing.T) {
	is := is.New(t)

	video := videobackend.VirtualWithScript(videobackend.SweepScript(), nil)
	app, err := airdraw.NewApp(configdef.DefaultResolver(), video, visionbackend.Pure())
	is.NoErr(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	is.NoErr(app.Run(ctx))
	is.Equal(app.Canvas().Strokes(), []canvas.Stroke{{}})
}

func TestAppRunSurfacesFatalReadFailure(t *testing.T) {
	is := is.New(t)

	var errorLogs []string
	resetLogError := overloadErrorLog(func(format string, a ...interface{}) {
		errorLogs = append(errorLogs, fmt.Sprintf(format, a...))
	})
	defer resetLogError()
	resetLogInfo := overloadInfoLog(func(string, ...interface{}) {})
	defer resetLogInfo()

	video := failingReadBackend{}
	app, err := airdraw.NewApp(configdef.DefaultResolver(), &video, visionbackend.Pure())
	is.NoErr(err)

	err = app.Run(context.Background())
	is.Equal(err.Error(), "capture device read failed: device disconnected")

	is.Equal(len(errorLogs), 1)
	is.Equal(errorLogs[0], "Unable to read frame from capture device: device disconnected")

	// device and window both released on the failure path
	is.True(video.conn.closed)
	is.True(video.window.closed)
}

func TestNewAppSurfacesResolverFailure(t *testing.T) {
	is := is.New(t)

	app, err := airdraw.NewApp(
		erroringResolver{},
		videobackend.Virtual(),
		visionbackend.Pure(),
	)
	is.True(app == nil)
	is.Equal(err.Error(), "no values to resolve")
}

type erroringResolver struct{}

func (r erroringResolver) Resolve() (configdef.Values, error) {
	return configdef.Values{}, xerror.New("no values to resolve")
}

type failingReadBackend struct {
	conn   stubConnection
	window stubWindow
}

func (b *failingReadBackend) Connect(ctx context.Context, addr string) (videobackend.Connection, error) {
	return &b.conn, nil
}

func (b *failingReadBackend) NewFrame() videoframe.Frame {
	return videobackend.Virtual().NewFrame()
}

func (b *failingReadBackend) NewWindow(title string) (videobackend.Window, error) {
	return &b.window, nil
}

type stubConnection struct {
	closed bool
}

func (c *stubConnection) UUID() string { return "stub-conn" }

func (c *stubConnection) Read(frame videoframe.Frame) error {
	return xerror.New("device disconnected")
}

func (c *stubConnection) IsOpen() bool { return !c.closed }

func (c *stubConnection) Close() error {
	c.closed = true
	return nil
}

type stubWindow struct {
	closed bool
}

func (w *stubWindow) Show(frame videoframe.Frame) error { return nil }
func (w *stubWindow) WaitKey(timeoutMS int) int         { return -1 }

func (w *stubWindow) Close() error {
	w.closed = true
	return nil
}
