package canvas

import "image"

// Stroke is one continuous gesture: the ordered centroids recorded for it.
type Stroke []image.Point

// Canvas holds every stroke drawn since startup or the last clear, plus the
// index of the stroke currently being drawn into. There is always at least
// one stroke. The active stroke only ever grows between clears.
//
// The active index is never advanced by detection gaps, so a whole session
// accumulates into a single stroke. Splitting into a fresh stroke per
// detection run would hang off this index if that behaviour is ever wanted.
type Canvas struct {
	strokes []Stroke
	active  int
}

func New() *Canvas {
	return &Canvas{strokes: []Stroke{{}}}
}

// Record appends a tracked centroid to the active stroke.
func (c *Canvas) Record(point image.Point) {
	c.strokes[c.active] = append(c.strokes[c.active], point)
}

// Clear replaces all canvas state with a single empty stroke.
func (c *Canvas) Clear() {
	c.strokes = []Stroke{{}}
	c.active = 0
}

// Strokes is a read only view for rendering, callers must not mutate it.
func (c *Canvas) Strokes() []Stroke {
	return c.strokes
}
