package canvas

import (
	"image"
	"image/color"
)

// Painter is the drawing surface the renderer needs, bound to the frame
// being rendered onto. Both vision backends satisfy it through a thin
// adapter.
type Painter interface {
	Line(from, to image.Point, c color.RGBA, thickness int) error
	Text(text string, org image.Point, scale float64, c color.RGBA, thickness int) error
}

const (
	instructionScale     = 0.7
	instructionThickness = 2
)

var instructionColor = color.RGBA{R: 255}

var instructions = []struct {
	text string
	org  image.Point
}{
	{text: "Track a BLUE object to draw", org: image.Pt(10, 30)},
	{text: "Press 'c' to clear", org: image.Pt(10, 60)},
	{text: "Press 'q' to quit", org: image.Pt(10, 90)},
}

// Renderer draws canvas state onto display frames. Purely additive, it
// never mutates the canvas it reads.
type Renderer struct {
	StrokeColor     color.RGBA
	StrokeThickness int
}

// Render draws a segment between each consecutive pair of points of every
// stroke, then overlays the fixed instruction text. Strokes with fewer than
// two points draw nothing.
func (r Renderer) Render(c *Canvas, p Painter) error {
	for _, stroke := range c.Strokes() {
		for i := 1; i < len(stroke); i++ {
			if err := p.Line(stroke[i-1], stroke[i], r.StrokeColor, r.StrokeThickness); err != nil {
				return err
			}
		}
	}

	for _, inst := range instructions {
		if err := p.Text(inst.text, inst.org, instructionScale, instructionColor, instructionThickness); err != nil {
			return err
		}
	}
	return nil
}
