package visionbackend

import (
	"image"

	"github.com/harrydb/go/img/grayscale"
	"github.com/tauraamui/airdraw/pkg/vision"
)

// Neighbour ring around a pixel, circular order starting west.
var ring = [8]image.Point{
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
}

// traceContours finds each 8-connected component of set mask pixels and
// traces only its outer boundary, holes are ignored. Boundaries come back
// simplified: runs of collinear boundary points collapse to their turning
// points.
func traceContours(mask *image.Gray) []vision.Contour {
	components := grayscale.CoCos(cloneGray(mask), 255, grayscale.NEIGHBOR8)

	contours := make([]vision.Contour, 0, len(components))
	for _, component := range components {
		if len(component) == 0 {
			continue
		}
		start := topLeftmost(component)
		contours = append(contours, simplify(traceBoundary(mask, start)))
	}
	return contours
}

// cloneGray guards the mask against mutation by the component labelling
// pass, the boundary tracer still needs the original pixels.
func cloneGray(src *image.Gray) *image.Gray {
	clone := image.NewGray(src.Bounds())
	copy(clone.Pix, src.Pix)
	return clone
}

func topLeftmost(points []image.Point) image.Point {
	leading := points[0]
	for _, p := range points[1:] {
		if p.Y < leading.Y || (p.Y == leading.Y && p.X < leading.X) {
			leading = p
		}
	}
	return leading
}

func isSet(mask *image.Gray, p image.Point) bool {
	if !p.In(mask.Bounds()) {
		return false
	}
	return mask.GrayAt(p.X, p.Y).Y != 0
}

func ringIndex(offset image.Point) int {
	for i, o := range ring {
		if o == offset {
			return i
		}
	}
	return 0
}

type traceState struct {
	cur, backtrack image.Point
}

// traceBoundary walks the outer boundary of the component containing
// start using Moore neighbour tracing. The walk is deterministic given
// the current pixel and its backtrack cell, so the boundary is complete
// once a (pixel, backtrack) state repeats. Start must be the component's
// topmost-leftmost pixel, which guarantees its west neighbour is
// background.
func traceBoundary(mask *image.Gray, start image.Point) vision.Contour {
	contour := vision.Contour{}

	cur := start
	backtrack := start.Add(ring[0])
	seen := map[traceState]bool{}

	for {
		state := traceState{cur: cur, backtrack: backtrack}
		if seen[state] {
			return contour
		}
		seen[state] = true
		contour = append(contour, cur)

		bi := ringIndex(backtrack.Sub(cur))
		next := image.Point{}
		found := false
		var d int
		for i := 1; i <= 8; i++ {
			d = (bi + i) % 8
			n := cur.Add(ring[d])
			if isSet(mask, n) {
				next = n
				found = true
				break
			}
		}
		if !found {
			// isolated single pixel
			return contour
		}

		// the cell scanned just before the hit is the new backtrack,
		// known background
		cur, backtrack = next, cur.Add(ring[(d+7)%8])
	}
}

// simplify drops every boundary point collinear with its neighbours,
// leaving only direction changes. A fully collinear boundary, a straight
// pixel line, collapses to a single degenerate point.
func simplify(c vision.Contour) vision.Contour {
	n := len(c)
	if n < 3 {
		return c
	}

	out := vision.Contour{}
	for i := 0; i < n; i++ {
		prev := c[(i+n-1)%n]
		cur := c[i]
		next := c[(i+1)%n]
		a := cur.Sub(prev)
		b := next.Sub(cur)
		if a.X*b.Y-a.Y*b.X != 0 {
			out = append(out, cur)
		}
	}
	if len(out) == 0 {
		return vision.Contour{c[0]}
	}
	return out
}
