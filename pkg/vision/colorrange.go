package vision

// HSV is a colour in OpenCV's 8-bit HSV convention: hue within 0-179,
// saturation and value within 0-255.
type HSV struct {
	H, S, V uint8
}

// ColorRange is an inclusive band of HSV values used to segment frames.
type ColorRange struct {
	Lower HSV
	Upper HSV
}

func (r ColorRange) Contains(c HSV) bool {
	return c.H >= r.Lower.H && c.H <= r.Upper.H &&
		c.S >= r.Lower.S && c.S <= r.Upper.S &&
		c.V >= r.Lower.V && c.V <= r.Upper.V
}
