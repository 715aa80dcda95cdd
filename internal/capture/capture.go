package capture

import (
	"context"
	"log/slog"
	"os"
	"time"

	"travelog/internal/logging"
	"travelog/internal/services/exiftool"
)

// Moment is a resolved capture instant at the precision the catalog keeps.
type Moment struct {
	t time.Time
}

// MomentOf wraps a time in a Moment. Mostly useful in tests.
func MomentOf(t time.Time) Moment { return Moment{t: t} }

// Date returns the day component as YYYY-MM-DD.
func (m Moment) Date() string { return m.t.Format("2006-01-02") }

// Clock returns the time component as HH:MM.
func (m Moment) Clock() string { return m.t.Format("15:04") }

// Instant returns the underlying time value.
func (m Moment) Instant() time.Time { return m.t }

// Resolver resolves capture moments through the metadata fallback chain.
type Resolver struct {
	ExiftoolBin string
	Logger      *slog.Logger
}

// NewResolver returns a Resolver using the given exiftool binary.
func NewResolver(exiftoolBin string, logger *slog.Logger) *Resolver {
	return &Resolver{
		ExiftoolBin: exiftoolBin,
		Logger:      logging.NewComponentLogger(logger, "capture"),
	}
}

// Resolve returns the capture moment for path. It never fails for an
// existing file: when every metadata source is unavailable the file's
// modification time is used.
func (r *Resolver) Resolve(ctx context.Context, path string) Moment {
	if t, ok := readNativeEXIF(path); ok {
		return Moment{t: t}
	}

	if t, ok := r.queryExiftool(ctx, path); ok {
		return Moment{t: t}
	}

	if t, ok := birthTime(path); ok {
		return Moment{t: t.Local()}
	}

	info, err := os.Stat(path)
	if err != nil {
		// Callers only resolve files they just discovered; a vanished file
		// still gets a moment so the chain stays total.
		r.Logger.Warn("stat failed during date resolution", logging.String(logging.FieldSourceFile, path), logging.Error(err))
		return Moment{t: time.Now()}
	}
	return Moment{t: info.ModTime().Local()}
}

func (r *Resolver) queryExiftool(ctx context.Context, path string) (time.Time, bool) {
	values, err := exiftool.Query(ctx, r.ExiftoolBin, path, "DateTimeOriginal", "CreateDate")
	if err != nil {
		r.Logger.Debug("exiftool query unavailable", logging.String(logging.FieldSourceFile, path), logging.Error(err))
		return time.Time{}, false
	}
	for _, value := range values {
		if t, ok := parseTimestamp(value); ok {
			return t, true
		}
	}
	return time.Time{}, false
}
