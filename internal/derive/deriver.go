package derive

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"travelog/internal/config"
	"travelog/internal/fileutil"
	"travelog/internal/logging"
)

// Deriver produces the derived asset set for source media files.
type Deriver struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New returns a Deriver for the given configuration.
func New(cfg *config.Config, logger *slog.Logger) *Deriver {
	return &Deriver{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "derive"),
	}
}

func outputExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isHeif(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".heic", ".heif":
		return true
	default:
		return false
	}
}

// runNamedTool wraps runTool with a debug log entry per invocation.
func (d *Deriver) runNamedTool(ctx context.Context, operation, name string, args ...string) error {
	d.logger.Debug("invoking external tool",
		logging.String(logging.FieldEventType, "tool_invoked"),
		logging.String("operation", operation),
		logging.String("tool", filepath.Base(name)),
	)
	return runTool(ctx, name, args...)
}

// decodeHeif converts a HEIC/HEIF capture into a scratch JPEG the resize
// tool can read. The scratch file is not part of the derived set; the
// returned cleanup removes it.
func (d *Deriver) decodeHeif(ctx context.Context, path, token string) (string, func(), error) {
	scratch := filepath.Join(os.TempDir(), "travelog_heif_"+token+".jpg")
	if err := d.runNamedTool(ctx, "heif decode", d.cfg.Tools.HeifConvert, path, scratch); err != nil {
		os.Remove(scratch)
		return "", nil, err
	}
	return scratch, func() { os.Remove(scratch) }, nil
}

func (d *Deriver) resizeImage(ctx context.Context, input, output string, maxEdge int) error {
	scratch := scratchPath(output)
	geometry := geometryArg(maxEdge)
	if err := d.runNamedTool(ctx, "resize image", d.cfg.Tools.Magick, input, "-auto-orient", "-resize", geometry, scratch); err != nil {
		os.Remove(scratch)
		return err
	}
	return fileutil.PromoteFile(scratch, output)
}

// geometryArg builds the ImageMagick geometry that caps the long edge while
// preserving aspect ratio and never upscaling.
func geometryArg(maxEdge int) string {
	side := strconv.Itoa(maxEdge)
	return side + "x" + side + ">"
}
