package exiftool

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const absentSentinel = "-"

// Query runs a single exiftool invocation for the given tags and returns one
// value per tag, in tag order. Tags missing from the file yield empty
// strings. A non-zero exit or empty output is reported as an error; callers
// treat that as metadata-unavailable and fall through.
func Query(ctx context.Context, binary, path string, tags ...string) ([]string, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "exiftool"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("exiftool query: empty path")
	}
	if len(tags) == 0 {
		return nil, errors.New("exiftool query: no tags requested")
	}

	args := make([]string, 0, len(tags)+4)
	args = append(args, "-q", "-q", "-T")
	for _, tag := range tags {
		args = append(args, "-"+tag)
	}
	args = append(args, "--", path)

	cmd := exec.CommandContext(ctx, binary, args...)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("exiftool query: %w", err)
	}

	line := strings.TrimRight(string(output), "\r\n")
	if strings.TrimSpace(line) == "" {
		return nil, errors.New("exiftool query: no output")
	}

	values := strings.Split(line, "\t")
	result := make([]string, len(tags))
	for i := range tags {
		if i >= len(values) {
			break
		}
		value := strings.TrimSpace(values[i])
		if value == absentSentinel {
			value = ""
		}
		result[i] = value
	}
	return result, nil
}
