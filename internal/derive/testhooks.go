package derive

import (
	"context"

	"travelog/internal/media/ffprobe"
)

// probeMedia is the ffprobe function used to clamp poster seeks for short
// clips. It is a package-level variable so tests can override it.
var probeMedia = ffprobe.Inspect

// SetProbeForTests overrides the ffprobe runner during tests.
func SetProbeForTests(fn func(context.Context, string, string) (ffprobe.Result, error)) func() {
	previous := probeMedia
	probeMedia = fn
	return func() {
		probeMedia = previous
	}
}
