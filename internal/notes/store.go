// Package notes loads the hand-authored day annotations merged into the
// catalog. The store is written by the site author between builds; the
// pipeline only ever reads it.
package notes

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"travelog/internal/fileutil"
	"travelog/internal/logging"
)

// Store maps a date string (YYYY-MM-DD) to a free-form annotation object.
type Store struct {
	byDate map[string]json.RawMessage
}

// Load reads the annotation file at path, creating it as an empty object on
// first run. Malformed content degrades to an empty store with a warning so
// an unrelated editing mistake never blocks catalog generation.
func Load(path string, logger *slog.Logger) (*Store, error) {
	logger = logging.NewComponentLogger(logger, "notes")

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := fileutil.WriteFileAtomic(path, []byte("{}\n"), 0o644); err != nil {
			return nil, err
		}
		return &Store{byDate: map[string]json.RawMessage{}}, nil
	}
	if err != nil {
		return nil, err
	}

	byDate := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &byDate); err != nil {
		logger.Warn("annotation store unreadable, continuing with empty notes",
			logging.String("path", path),
			logging.Error(err),
		)
		return &Store{byDate: map[string]json.RawMessage{}}, nil
	}
	return &Store{byDate: byDate}, nil
}

// For returns the annotation object for date, or an empty JSON object when
// the date has none. The result is attached to the manifest verbatim.
func (s *Store) For(date string) json.RawMessage {
	if s == nil {
		return json.RawMessage("{}")
	}
	if raw, ok := s.byDate[date]; ok && len(raw) > 0 {
		return raw
	}
	return json.RawMessage("{}")
}

// Len returns the number of annotated dates.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byDate)
}
