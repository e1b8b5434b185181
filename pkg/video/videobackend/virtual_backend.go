package videobackend

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tauraamui/airdraw/internal/imagetext"
	"github.com/tauraamui/airdraw/pkg/video/videoframe"
	"github.com/tauraamui/xerror"
)

const (
	virtualFrameWidth  = 640
	virtualFrameHeight = 480
	virtualBlobRadius  = 20
	virtualLabelSize   = 18.0
)

// trackedBlue sits at the centre of the default segmentation band so the
// synthetic blob is picked up by either vision backend.
var trackedBlue = color.NRGBA{B: 255, A: 255}

// BlobScript decides where, and whether, the synthetic tracked object
// appears on a given frame.
type BlobScript func(frame int) (image.Point, bool)

// SweepScript slides the blob horizontally across the scene, one sweep
// every few seconds at webcam frame rates.
func SweepScript() BlobScript {
	return func(frame int) (image.Point, bool) {
		x := 60 + (frame*4)%(virtualFrameWidth-120)
		return image.Pt(x, virtualFrameHeight/2), true
	}
}

type virtualBackend struct {
	script     BlobScript
	windowKeys []int
}

func (b *virtualBackend) Connect(cancel context.Context, addr string) (Connection, error) {
	return &virtualConnection{script: b.script, isOpen: true}, nil
}

func (b *virtualBackend) NewFrame() videoframe.Frame {
	return &virtualFrame{img: image.NewRGBA(image.Rect(0, 0, virtualFrameWidth, virtualFrameHeight))}
}

func (b *virtualBackend) NewWindow(title string) (Window, error) {
	return &virtualWindow{title: title, keys: b.windowKeys}, nil
}

type virtualFrame struct {
	isClosed bool
	img      *image.RGBA
}

func (frame *virtualFrame) DataRef() interface{} {
	return frame.img
}

func (frame *virtualFrame) Dimensions() videoframe.Dimensions {
	b := frame.img.Bounds()
	return videoframe.Dimensions{W: b.Dx(), H: b.Dy()}
}

func (frame *virtualFrame) Close() {
	if !frame.isClosed {
		frame.img = nil
		frame.isClosed = true
	}
}

type virtualConnection struct {
	uuid       string
	isOpen     bool
	frameIndex int
	script     BlobScript
	backdrop   image.Image
}

func (vc *virtualConnection) UUID() string {
	if len(vc.uuid) == 0 {
		vc.uuid = uuid.NewString()
	}
	return vc.uuid
}

func (vc *virtualConnection) Read(frame videoframe.Frame) error {
	img, ok := frame.DataRef().(*image.RGBA)
	if !ok {
		return xerror.New("must pass virtual frame to virtual connection read")
	}
	if !vc.isOpen {
		return xerror.New("unable to read from closed virtual connection")
	}

	if vc.backdrop == nil {
		vc.backdrop = renderBackdrop()
	}

	scene := imaging.Clone(vc.backdrop)
	label := fmt.Sprintf("AIRDRAW VIRTUAL FEED %05d", vc.frameIndex)
	if err := imagetext.Draw(scene, 10, virtualFrameHeight-14, virtualLabelSize, image.White, label); err != nil {
		return xerror.Errorf("unable to draw label onto virtual feed frame: %w", err)
	}

	if center, present := vc.script(vc.frameIndex); present {
		drawDisc(scene, center, virtualBlobRadius, trackedBlue)
	}

	draw.Draw(img, img.Bounds(), scene, image.Point{}, draw.Src)
	vc.frameIndex++
	return nil
}

func (vc *virtualConnection) IsOpen() bool {
	return vc.isOpen
}

func (vc *virtualConnection) Close() error {
	vc.isOpen = false
	vc.backdrop = nil
	return nil
}

// renderBackdrop fills the static scene behind the blob: a dark field with
// a few warm coloured discs. Warm hues only, so nothing in the backdrop
// ever lands inside the tracked blue band.
func renderBackdrop() image.Image {
	img := imaging.New(virtualFrameWidth, virtualFrameHeight, color.NRGBA{R: 24, G: 24, B: 28, A: 255})
	for i := 0; i < 3; i++ {
		c := colorful.Hsv(float64(i)*30, 0.85, 0.9)
		r, g, b := c.RGB255()
		center := image.Pt(120+i*200, 120+(i%2)*200)
		drawDisc(img, center, 70, color.NRGBA{R: r, G: g, B: b, A: 255})
	}
	return img
}

func drawDisc(img draw.Image, center image.Point, radius int, c color.Color) {
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			dx, dy := x-center.X, y-center.Y
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, c)
			}
		}
	}
}

type virtualWindow struct {
	title    string
	isClosed bool
	shown    int
	keys     []int
	nextKey  int
}

func (w *virtualWindow) Show(frame videoframe.Frame) error {
	if _, ok := frame.DataRef().(*image.RGBA); !ok {
		return xerror.New("must pass virtual frame to virtual window show")
	}
	w.shown++
	return nil
}

func (w *virtualWindow) WaitKey(timeoutMS int) int {
	if w.nextKey < len(w.keys) {
		key := w.keys[w.nextKey]
		w.nextKey++
		return key
	}
	return -1
}

func (w *virtualWindow) Close() error {
	w.isClosed = true
	return nil
}
