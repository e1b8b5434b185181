package vision

import "image"

// Contour is the simplified outer boundary of a connected mask region,
// ordered, with collinear boundary points dropped.
type Contour []image.Point

// Moments holds the zeroth and first order area moments of a contour,
// computed over the closed boundary polygon with Green's theorem. This is
// the same sum OpenCV computes for contour moments, so centroids agree
// across backends.
type Moments struct {
	M00 float64
	M10 float64
	M01 float64
}

func ComputeMoments(c Contour) Moments {
	var m Moments
	n := len(c)
	if n < 3 {
		return m
	}
	for i := 0; i < n; i++ {
		p := c[i]
		q := c[(i+1)%n]
		xi, yi := float64(p.X), float64(p.Y)
		xj, yj := float64(q.X), float64(q.Y)
		a := xi*yj - xj*yi
		m.M00 += a
		m.M10 += a * (xi + xj)
		m.M01 += a * (yi + yj)
	}
	m.M00 /= 2
	m.M10 /= 6
	m.M01 /= 6
	return m
}

// Centroid resolves the area-weighted centre of the contour, truncated to
// integer coordinates. Reports false for degenerate contours whose area
// moment is exactly zero, e.g. a single point or a straight line.
func (m Moments) Centroid() (image.Point, bool) {
	if m.M00 == 0 {
		return image.Point{}, false
	}
	return image.Pt(int(m.M10/m.M00), int(m.M01/m.M00)), true
}

// Area is the enclosed boundary polygon area regardless of winding order.
func (c Contour) Area() float64 {
	m := ComputeMoments(c)
	if m.M00 < 0 {
		return -m.M00
	}
	return m.M00
}
