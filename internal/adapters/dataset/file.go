package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/okian/veloplot/internal/domain/model"
	"github.com/okian/veloplot/pkg/logger"
	"github.com/okian/veloplot/pkg/metrics"
)

// debounce coalesces the burst of events an editor save produces.
const debounce = 200 * time.Millisecond

// FileSource reads the dataset from a local JSON file.
type FileSource struct {
	path   string
	logger logger.Logger
}

// NewFileSource creates a source for path. l may be nil.
func NewFileSource(path string, l logger.Logger) *FileSource {
	return &FileSource{path: path, logger: l}
}

// Kind implements Source.
func (s *FileSource) Kind() string { return KindFile }

// Location implements Source.
func (s *FileSource) Location() string { return s.path }

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) ([]model.RawRecord, error) {
	start := time.Now()
	records, err := s.read()
	metrics.RecordDatasetLoad(KindFile, resultLabel(err), float64(time.Since(start).Milliseconds()))
	if err != nil && s.logger != nil {
		s.logger.Error(ctx, "dataset read failed", logger.String("path", s.path), logger.Error(err))
	}
	return records, err
}

func (s *FileSource) read() ([]model.RawRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()
	return decode(f)
}

// Watch calls onChange after the file is written, created or renamed into
// place, until ctx is cancelled. The parent directory is watched so atomic
// replacements are seen.
func (s *FileSource) Watch(ctx context.Context, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatch, err)
	}
	defer w.Close()

	abs, err := filepath.Abs(s.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatch, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("%w: %w", ErrWatch, err)
	}
	if s.logger != nil {
		s.logger.Info(ctx, "watching dataset file", logger.String("path", abs))
	}

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-fire:
			fire = nil
			onChange()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if s.logger != nil {
				s.logger.Warn(ctx, "dataset watcher error", logger.Error(werr))
			}
		}
	}
}
