package visionbackend

import (
	"image"
	"image/color"

	"github.com/tauraamui/airdraw/pkg/video/videoframe"
	"github.com/tauraamui/airdraw/pkg/vision"
)

// Mask is the opaque binary image a segmentation produces, recomputed
// every frame and closed after its contours have been taken.
type Mask interface {
	DataRef() interface{}
	Close()
}

// Backend groups the vision-library-specific operations the pipeline
// needs, so the core never depends on one library's API shape.
type Backend interface {
	Segment(frame videoframe.Frame, r vision.ColorRange) (Mask, error)
	Contours(mask Mask) ([]vision.Contour, error)
	Mirror(frame videoframe.Frame) error
	Line(frame videoframe.Frame, from, to image.Point, c color.RGBA, thickness int) error
	Text(frame videoframe.Frame, text string, org image.Point, scale float64, c color.RGBA, thickness int) error
}

func Default() Backend {
	return OpenCV()
}

func OpenCV() Backend {
	return &openCVBackend{}
}

// Pure runs the whole pipeline on Go images with no native dependency,
// pairing with the virtual video backend.
func Pure() Backend {
	return &pureBackend{}
}

func Resolve(t string) Backend {
	switch t {
	case "virtual", "pure":
		return Pure()
	default:
		return Default()
	}
}
