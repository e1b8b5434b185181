package visionbackend

import (
	"image"
	"image/color"

	"github.com/tauraamui/airdraw/pkg/video/videoframe"
	"github.com/tauraamui/airdraw/pkg/vision"
	"github.com/tauraamui/xerror"
	"gocv.io/x/gocv"
)

type openCVMask struct {
	isClosed bool
	mat      gocv.Mat
}

func (m *openCVMask) DataRef() interface{} {
	return &m.mat
}

func (m *openCVMask) Close() {
	if !m.isClosed {
		m.mat.Close()
		m.isClosed = true
	}
}

type openCVBackend struct{}

func (b *openCVBackend) Segment(frame videoframe.Frame, r vision.ColorRange) (Mask, error) {
	mat, ok := frame.DataRef().(*gocv.Mat)
	if !ok {
		return nil, xerror.New("must pass OpenCV frame to OpenCV segmenter")
	}

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(*mat, &hsv, gocv.ColorBGRToHSV)

	mask := gocv.NewMat()
	gocv.InRangeWithScalar(
		hsv,
		gocv.NewScalar(float64(r.Lower.H), float64(r.Lower.S), float64(r.Lower.V), 0),
		gocv.NewScalar(float64(r.Upper.H), float64(r.Upper.S), float64(r.Upper.V), 0),
		&mask,
	)
	return &openCVMask{mat: mask}, nil
}

func (b *openCVBackend) Contours(mask Mask) ([]vision.Contour, error) {
	mat, ok := mask.DataRef().(*gocv.Mat)
	if !ok {
		return nil, xerror.New("must pass OpenCV mask to OpenCV contour extraction")
	}

	found := gocv.FindContours(*mat, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	contours := make([]vision.Contour, 0, len(found))
	for _, points := range found {
		contours = append(contours, vision.Contour(points))
	}
	return contours, nil
}

func (b *openCVBackend) Mirror(frame videoframe.Frame) error {
	mat, ok := frame.DataRef().(*gocv.Mat)
	if !ok {
		return xerror.New("must pass OpenCV frame to OpenCV mirror")
	}

	flipped := gocv.NewMat()
	defer flipped.Close()
	gocv.Flip(*mat, &flipped, 1)
	flipped.CopyTo(mat)
	return nil
}

func (b *openCVBackend) Line(frame videoframe.Frame, from, to image.Point, c color.RGBA, thickness int) error {
	mat, ok := frame.DataRef().(*gocv.Mat)
	if !ok {
		return xerror.New("must pass OpenCV frame to OpenCV line draw")
	}
	gocv.Line(mat, from, to, c, thickness)
	return nil
}

func (b *openCVBackend) Text(frame videoframe.Frame, text string, org image.Point, scale float64, c color.RGBA, thickness int) error {
	mat, ok := frame.DataRef().(*gocv.Mat)
	if !ok {
		return xerror.New("must pass OpenCV frame to OpenCV text draw")
	}
	gocv.PutText(mat, text, org, gocv.FontHersheySimplex, scale, c, thickness)
	return nil
}
