// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// The build uses it to learn clip durations (so the poster frame seek can be
// clamped for clips shorter than one second) and stream dimensions.
package ffprobe
