package video

import "github.com/tauraamui/airdraw/pkg/video/videobackend"

func DefaultBackend() videobackend.Backend {
	return videobackend.Default()
}

func ResolveBackend(backendType string) videobackend.Backend {
	return videobackend.Resolve(backendType)
}
