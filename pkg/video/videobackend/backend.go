package videobackend

import (
	"context"

	"github.com/tauraamui/airdraw/pkg/video/videoframe"
)

type Connection interface {
	UUID() string
	Read(videoframe.Frame) error
	IsOpen() bool
	Close() error
}

// Window is the titled display surface frames are shown in, which also
// owns the per-frame key poll.
type Window interface {
	Show(videoframe.Frame) error
	WaitKey(timeoutMS int) int
	Close() error
}

type Backend interface {
	Connect(context.Context, string) (Connection, error)
	NewFrame() videoframe.Frame
	NewWindow(title string) (Window, error)
}

func Default() Backend {
	return OpenCV()
}

func OpenCV() Backend {
	return &openCVBackend{}
}

// Virtual synthesizes frames in memory, no capture hardware or OpenCV
// install needed. The feed sweeps a tracked-colour disc across the scene.
func Virtual() Backend {
	return &virtualBackend{script: SweepScript()}
}

// VirtualWithScript drives the synthetic feed with an exact per-frame blob
// script and replays the given key codes from the window poll.
func VirtualWithScript(script BlobScript, keys []int) Backend {
	return &virtualBackend{script: script, windowKeys: keys}
}

func Resolve(t string) Backend {
	switch t {
	case "virtual":
		return Virtual()
	default:
		return Default()
	}
}
