package vision

import "image"

// DefaultMinArea rejects contours small enough to be sensor noise.
const DefaultMinArea = 500

// Locator picks the blob to track out of a frame's contours.
type Locator struct {
	MinArea float64
}

// Locate selects the largest-area contour, first encountered winning ties,
// and resolves its centroid. Reports false when there is no usable
// detection: no contours at all, the largest contour not exceeding
// MinArea, or a degenerate zero-area boundary.
func (l Locator) Locate(contours []Contour) (image.Point, bool) {
	if len(contours) == 0 {
		return image.Point{}, false
	}

	largest := contours[0]
	largestArea := largest.Area()
	for _, c := range contours[1:] {
		if area := c.Area(); area > largestArea {
			largest = c
			largestArea = area
		}
	}

	if largestArea <= l.MinArea {
		return image.Point{}, false
	}

	return ComputeMoments(largest).Centroid()
}
