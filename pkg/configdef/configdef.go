package configdef

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/tauraamui/airdraw/pkg/vision"
	"gopkg.in/dealancer/validate.v2"
)

// HSVBound is one end of the tracked colour band, in OpenCV's 8-bit HSV
// scale.
type HSVBound struct {
	Hue uint8 `json:"hue" validate:"lte=179"`
	Sat uint8 `json:"sat"`
	Val uint8 `json:"val"`
}

type Tracking struct {
	Lower       HSVBound `json:"lower"`
	Upper       HSVBound `json:"upper"`
	MinBlobArea float64  `json:"min_blob_area" validate:"gte=0"`
}

type Stroke struct {
	Red       uint8 `json:"red"`
	Green     uint8 `json:"green"`
	Blue      uint8 `json:"blue"`
	Thickness int   `json:"thickness" validate:"gte=1 & lte=50"`
}

type Values struct {
	WindowTitle   string   `json:"window_title" validate:"empty=false"`
	DeviceAddr    string   `json:"device_address" validate:"empty=false"`
	Tracking      Tracking `json:"tracking"`
	Stroke        Stroke   `json:"stroke"`
	PollTimeoutMS int      `json:"poll_timeout_ms" validate:"gte=1 & lte=1000"`
}

// Defaults are the compiled-in settings: there are no flags and no config
// file, a run is configured entirely by these plus the ambient env vars
// read in main.
func Defaults() Values {
	return Values{
		WindowTitle: "Air Canvas",
		DeviceAddr:  "0",
		Tracking: Tracking{
			Lower:       HSVBound{Hue: 100, Sat: 150, Val: 50},
			Upper:       HSVBound{Hue: 140, Sat: 255, Val: 255},
			MinBlobArea: vision.DefaultMinArea,
		},
		Stroke:        Stroke{Blue: 255, Thickness: 5},
		PollTimeoutMS: 1,
	}
}

func (v Values) RunValidate() error {
	if err := v.Validate(); err != nil {
		return err
	}
	return validate.Validate(&v)
}

func (v Values) Validate() error {
	const validationErrorHeader = "validation failed: %w"
	if hasInvertedTrackingBounds(v.Tracking) {
		return fmt.Errorf(validationErrorHeader, errors.New("tracking lower bound must not exceed upper bound"))
	}
	return nil
}

func hasInvertedTrackingBounds(t Tracking) bool {
	return t.Lower.Hue > t.Upper.Hue ||
		t.Lower.Sat > t.Upper.Sat ||
		t.Lower.Val > t.Upper.Val
}

// ColorRange binds the tracking section to the vision pipeline's type.
func (v Values) ColorRange() vision.ColorRange {
	return vision.ColorRange{
		Lower: vision.HSV{H: v.Tracking.Lower.Hue, S: v.Tracking.Lower.Sat, V: v.Tracking.Lower.Val},
		Upper: vision.HSV{H: v.Tracking.Upper.Hue, S: v.Tracking.Upper.Sat, V: v.Tracking.Upper.Val},
	}
}

func (v Values) StrokeColor() color.RGBA {
	return color.RGBA{R: v.Stroke.Red, G: v.Stroke.Green, B: v.Stroke.Blue, A: 255}
}
