// Package deps reports availability of the external tools the build invokes.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"travelog/internal/config"
)

// Requirement defines an external dependency travelog relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements returns the tool set for the given configuration.
// heif-convert is optional: it is only needed when the source directory
// contains HEIC/HEIF captures.
func Requirements(cfg *config.Config) []Requirement {
	tools := config.Default().Tools
	if cfg != nil {
		tools = cfg.Tools
	}
	return []Requirement{
		{Name: "exiftool", Command: tools.Exiftool, Description: "capture timestamp extraction"},
		{Name: "ffmpeg", Command: tools.FFmpeg, Description: "poster frames and video transcodes"},
		{Name: "ffprobe", Command: tools.FFprobe, Description: "clip duration probing"},
		{Name: "magick", Command: tools.Magick, Description: "image resizing and JPEG re-encode"},
		{Name: "heif-convert", Command: tools.HeifConvert, Description: "HEIC/HEIF decode", Optional: true},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// MissingRequired returns the names of required tools that are unavailable.
func MissingRequired(statuses []Status) []string {
	var missing []string
	for _, status := range statuses {
		if !status.Available && !status.Optional {
			missing = append(missing, status.Name)
		}
	}
	return missing
}
