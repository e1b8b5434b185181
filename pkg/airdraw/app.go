package airdraw

import (
	"context"
	"image"
	"image/color"

	"github.com/tauraamui/airdraw/pkg/canvas"
	"github.com/tauraamui/airdraw/pkg/configdef"
	"github.com/tauraamui/airdraw/pkg/input"
	"github.com/tauraamui/airdraw/pkg/log"
	"github.com/tauraamui/airdraw/pkg/video/videobackend"
	"github.com/tauraamui/airdraw/pkg/video/videoframe"
	"github.com/tauraamui/airdraw/pkg/vision"
	"github.com/tauraamui/airdraw/pkg/vision/visionbackend"
	"github.com/tauraamui/xerror"
)

// App owns the per-frame pipeline: read, mirror, segment, locate, record,
// render, show, poll. All mutable state is touched by the single loop
// goroutine only.
type App struct {
	conf    configdef.Values
	video   videobackend.Backend
	vision  visionbackend.Backend
	locator vision.Locator
	sketch  *canvas.Canvas
	render  canvas.Renderer
}

func NewApp(resolver configdef.Resolver, video videobackend.Backend, vis visionbackend.Backend) (*App, error) {
	conf, err := resolver.Resolve()
	if err != nil {
		return nil, err
	}

	return &App{
		conf:    conf,
		video:   video,
		vision:  vis,
		locator: vision.Locator{MinArea: conf.Tracking.MinBlobArea},
		sketch:  canvas.New(),
		render: canvas.Renderer{
			StrokeColor:     conf.StrokeColor(),
			StrokeThickness: conf.Stroke.Thickness,
		},
	}, nil
}

// Canvas is the accumulated stroke state, read only.
func (a *App) Canvas() *canvas.Canvas {
	return a.sketch
}

// Run connects to the capture device, opens the display window and drives
// the draw loop until a quit key, context cancellation, or a fatal capture
// error. Device and window are acquired once up front and released on
// every exit path.
func (a *App) Run(ctx context.Context) error {
	conn, err := a.video.Connect(ctx, a.conf.DeviceAddr)
	if err != nil {
		return xerror.Errorf("unable to connect to capture device [%s]: %w", a.conf.DeviceAddr, err)
	}
	defer func() {
		log.Info("Closing capture device connection: [%s]...", conn.UUID())
		if err := conn.Close(); err != nil {
			log.Error("unable to close capture device connection: %s", err.Error())
		}
	}()
	log.Info("Connected to capture device: [%s]", conn.UUID())

	window, err := a.video.NewWindow(a.conf.WindowTitle)
	if err != nil {
		return xerror.Errorf("unable to open display window: %w", err)
	}
	defer func() {
		if err := window.Close(); err != nil {
			log.Error("unable to close display window: %s", err.Error())
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping draw loop...")
			return nil
		default:
		}

		quit, err := a.cycle(conn, window)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (a *App) cycle(conn videobackend.Connection, window videobackend.Window) (quit bool, err error) {
	frame := a.video.NewFrame()
	defer frame.Close()

	if err := conn.Read(frame); err != nil {
		log.Error("Unable to read frame from capture device: %s", err.Error())
		return false, xerror.Errorf("capture device read failed: %w", err)
	}
	log.Debug("Read frame [%s]", frame.Dimensions())

	if err := a.vision.Mirror(frame); err != nil {
		return false, err
	}

	point, found, err := a.track(frame)
	if err != nil {
		return false, err
	}
	if found {
		a.sketch.Record(point)
	} else {
		log.Debug("No qualifying blob within frame")
	}

	if err := a.render.Render(a.sketch, framePainter{vision: a.vision, frame: frame}); err != nil {
		return false, err
	}

	if err := window.Show(frame); err != nil {
		return false, err
	}

	switch input.Interpret(window.WaitKey(a.conf.PollTimeoutMS)) {
	case input.Clear:
		log.Info("Clearing canvas...")
		a.sketch.Clear()
	case input.Quit:
		log.Info("Quit requested...")
		return true, nil
	}
	return false, nil
}

func (a *App) track(frame videoframe.Frame) (image.Point, bool, error) {
	mask, err := a.vision.Segment(frame, a.conf.ColorRange())
	if err != nil {
		return image.Point{}, false, err
	}
	defer mask.Close()

	contours, err := a.vision.Contours(mask)
	if err != nil {
		return image.Point{}, false, err
	}

	point, found := a.locator.Locate(contours)
	return point, found, nil
}

// framePainter binds the vision backend's drawing operations to the frame
// currently being rendered.
type framePainter struct {
	vision visionbackend.Backend
	frame  videoframe.Frame
}

func (p framePainter) Line(from, to image.Point, c color.RGBA, thickness int) error {
	return p.vision.Line(p.frame, from, to, c, thickness)
}

func (p framePainter) Text(text string, org image.Point, scale float64, c color.RGBA, thickness int) error {
	return p.vision.Text(p.frame, text, org, scale, c, thickness)
}
