package visionbackend

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/gift"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/tauraamui/airdraw/internal/imagetext"
	"github.com/tauraamui/airdraw/pkg/video/videoframe"
	"github.com/tauraamui/airdraw/pkg/vision"
	"github.com/tauraamui/xerror"
	"golang.org/x/image/vector"
)

type pureMask struct {
	img *image.Gray
}

func (m *pureMask) DataRef() interface{} {
	return m.img
}

func (m *pureMask) Close() {}

type pureBackend struct{}

func (b *pureBackend) Segment(frame videoframe.Frame, r vision.ColorRange) (Mask, error) {
	img, ok := frame.DataRef().(*image.RGBA)
	if !ok {
		return nil, xerror.New("must pass image frame to pure segmenter")
	}

	bounds := img.Bounds()
	mask := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if r.Contains(pixelHSV(img, x, y)) {
				mask.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return &pureMask{img: mask}, nil
}

// pixelHSV converts one pixel into OpenCV's 8-bit HSV convention: hue
// halved into 0-179, saturation and value scaled onto 0-255.
func pixelHSV(img *image.RGBA, x, y int) vision.HSV {
	i := img.PixOffset(x, y)
	c := colorful.Color{
		R: float64(img.Pix[i]) / 255,
		G: float64(img.Pix[i+1]) / 255,
		B: float64(img.Pix[i+2]) / 255,
	}
	h, s, v := c.Hsv()
	return vision.HSV{
		H: uint8(h / 2),
		S: uint8(math.Round(s * 255)),
		V: uint8(math.Round(v * 255)),
	}
}

func (b *pureBackend) Contours(mask Mask) ([]vision.Contour, error) {
	img, ok := mask.DataRef().(*image.Gray)
	if !ok {
		return nil, xerror.New("must pass image mask to pure contour extraction")
	}
	return traceContours(img), nil
}

func (b *pureBackend) Mirror(frame videoframe.Frame) error {
	img, ok := frame.DataRef().(*image.RGBA)
	if !ok {
		return xerror.New("must pass image frame to pure mirror")
	}

	g := gift.New(gift.FlipHorizontal())
	flipped := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(flipped, img)
	draw.Draw(img, img.Bounds(), flipped, flipped.Bounds().Min, draw.Src)
	return nil
}

func (b *pureBackend) Line(frame videoframe.Frame, from, to image.Point, c color.RGBA, thickness int) error {
	img, ok := frame.DataRef().(*image.RGBA)
	if !ok {
		return xerror.New("must pass image frame to pure line draw")
	}
	if from == to {
		return nil
	}

	// stroke colours are opaque, matching the OpenCV painter
	c.A = 255

	fx, fy := float64(from.X), float64(from.Y)
	tx, ty := float64(to.X), float64(to.Y)
	dx, dy := tx-fx, ty-fy
	length := math.Sqrt(dx*dx + dy*dy)
	// half-thickness offsets perpendicular to the segment
	px := -dy / length * float64(thickness) / 2
	py := dx / length * float64(thickness) / 2

	bounds := img.Bounds()
	rast := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	rast.MoveTo(float32(fx+px), float32(fy+py))
	rast.LineTo(float32(tx+px), float32(ty+py))
	rast.LineTo(float32(tx-px), float32(ty-py))
	rast.LineTo(float32(fx-px), float32(fy-py))
	rast.ClosePath()
	rast.Draw(img, bounds, image.NewUniform(c), image.Point{})
	return nil
}

func (b *pureBackend) Text(frame videoframe.Frame, text string, org image.Point, scale float64, c color.RGBA, thickness int) error {
	img, ok := frame.DataRef().(*image.RGBA)
	if !ok {
		return xerror.New("must pass image frame to pure text draw")
	}

	if err := imagetext.Draw(img, org.X, org.Y, scale*24, image.NewUniform(c), text); err != nil {
		return errors.Errorf("unable to draw text onto frame: %v", err)
	}
	return nil
}
