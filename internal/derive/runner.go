package derive

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// runTool executes an external tool and surfaces its combined output on
// failure. Package-level so tests can substitute a fake.
var runTool = func(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail != "" {
			return fmt.Errorf("%s: %w: %s", filepath.Base(name), err, detail)
		}
		return fmt.Errorf("%s: %w", filepath.Base(name), err)
	}
	return nil
}

// SetRunnerForTests overrides external tool execution during tests.
func SetRunnerForTests(fn func(context.Context, string, ...string) error) func() {
	previous := runTool
	runTool = fn
	return func() {
		runTool = previous
	}
}
