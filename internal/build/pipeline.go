// Package build orchestrates a full catalog build: lock, scan, classify,
// resolve, derive, assemble, emit.
package build

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"travelog/internal/capture"
	"travelog/internal/catalog"
	"travelog/internal/config"
	"travelog/internal/derive"
	"travelog/internal/logging"
	"travelog/internal/notes"
	"travelog/internal/scan"
	"travelog/internal/services"
)

// ErrBuildInProgress is returned when another process holds the build lock.
var ErrBuildInProgress = errors.New("another build holds the lock")

// Summary reports what a completed build produced.
type Summary struct {
	RunID         string
	Entries       int
	Days          int
	Counts        catalog.Counts
	Conflicts     []scan.Conflict
	AnnotatedDays int
	Duration      time.Duration
}

// Runner executes catalog builds against a fixed configuration.
type Runner struct {
	cfg      *config.Config
	logger   *slog.Logger
	deriver  *derive.Deriver
	resolver *capture.Resolver
}

// New returns a Runner for the given configuration.
func New(cfg *config.Config, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "build"),
		deriver:  derive.New(cfg, logger),
		resolver: capture.NewResolver(cfg.Tools.Exiftool, logger),
	}
}

// Run executes one catalog build. Only one build may run against a site at a
// time; a held lock fails fast with ErrBuildInProgress rather than queueing.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	started := time.Now()

	if err := r.cfg.EnsureDirectories(); err != nil {
		return Summary{}, err
	}

	lock := flock.New(r.cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return Summary{}, fmt.Errorf("acquire build lock: %w", err)
	}
	if !locked {
		return Summary{}, ErrBuildInProgress
	}
	defer lock.Unlock()

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, r.logger)

	logger.Info("build started",
		logging.String(logging.FieldEventType, "stage_start"),
		logging.String("source_dir", r.cfg.Paths.SourceDir),
	)

	store, err := notes.Load(r.cfg.NotesPath(), logger)
	if err != nil {
		return Summary{}, fmt.Errorf("load annotations: %w", err)
	}

	if _, err := os.Stat(r.cfg.TrackPath()); err == nil {
		logger.Info("GPS track manifest present", logging.String("path", r.cfg.TrackPath()))
	} else {
		logger.Debug("no GPS track manifest", logging.String("path", r.cfg.TrackPath()))
	}

	files, err := scan.Scan(r.cfg.Paths.SourceDir)
	if err != nil {
		return Summary{}, err
	}
	groups, conflicts := scan.Classify(files)
	for _, conflict := range conflicts {
		logger.Warn("duplicate stem, keeping first file",
			logging.String("stem", conflict.Stem),
			logging.String("kind", conflict.Kind.String()),
			logging.String("kept", conflict.Kept),
			logging.Int("dropped", len(conflict.Dropped)),
		)
	}

	entries, err := r.deriveAll(ctx, groups)
	if err != nil {
		return Summary{}, err
	}

	manifest := catalog.Assemble(entries, store, time.Now())
	if err := catalog.Emit(manifest, r.cfg.DataDir()); err != nil {
		return Summary{}, err
	}

	summary := Summary{
		RunID:         runID,
		Entries:       len(entries),
		Days:          len(manifest.Days),
		Counts:        manifest.Counts,
		Conflicts:     conflicts,
		AnnotatedDays: store.Len(),
		Duration:      time.Since(started),
	}
	logger.Info("build complete",
		logging.String(logging.FieldEventType, "stage_complete"),
		logging.Int("entries", summary.Entries),
		logging.Int("days", summary.Days),
		logging.Int("conflicts", len(summary.Conflicts)),
		logging.Duration("duration", summary.Duration),
	)
	return summary, nil
}

// deriveAll builds one entry per group on a bounded worker pool. The first
// fatal error cancels the remaining work; entry order follows group order so
// output is stable regardless of worker scheduling.
func (r *Runner) deriveAll(ctx context.Context, groups []scan.Group) ([]catalog.Entry, error) {
	workers := r.cfg.Build.Workers
	if workers < 1 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	entries := make([]catalog.Entry, len(groups))
	errs := make([]error, len(groups))
	sem := make(chan struct{}, workers)
	done := make(chan int, len(groups))

	for i := range groups {
		go func(i int) {
			defer func() { done <- i }()
			sem <- struct{}{}
			defer func() { <-sem }()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			entry, err := r.buildEntry(ctx, groups[i])
			if err != nil {
				errs[i] = err
				cancel()
				return
			}
			entries[i] = entry
		}(i)
	}
	for range groups {
		<-done
	}

	var canceled error
	for _, err := range errs {
		switch {
		case err == nil:
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			canceled = err
		default:
			return nil, err
		}
	}
	if canceled != nil {
		return nil, canceled
	}
	return entries, nil
}
