package videoframe

import "fmt"

type Dimensions struct {
	W, H int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.W, d.H)
}

// Frame is an opaque handle onto one captured image, owned by a single
// loop iteration. DataRef exposes the backing data for the backend that
// produced it; passing a frame to another backend family is a contract
// violation surfaced as an error.
type Frame interface {
	DataRef() interface{}
	Dimensions() Dimensions
	Close()
}
