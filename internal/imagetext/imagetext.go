package imagetext

import (
	"image"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Draw renders text onto the canvas with the given colour, the baseline
// sitting at (x, y). Used by the virtual feed's labelling and by the pure
// painter's instruction overlay.
func Draw(canvas draw.Image, x, y int, size float64, src image.Image, text string) error {
	fontFace, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return errors.Errorf("unable to parse bundled font: %v", err)
	}

	fontDrawer := &font.Drawer{
		Dst: canvas,
		Src: src,
		Face: truetype.NewFace(fontFace, &truetype.Options{
			Size:    size,
			Hinting: font.HintingFull,
		}),
		Dot: fixed.P(x, y),
	}
	fontDrawer.DrawString(text)
	return nil
}
