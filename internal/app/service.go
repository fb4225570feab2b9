// Package service owns the loaded dataset and the rendered chart scene, and
// keeps them fresh for the HTTP API.
package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/okian/veloplot/internal/adapters/dataset"
	"github.com/okian/veloplot/internal/adapters/render"
	"github.com/okian/veloplot/internal/domain/chart"
	"github.com/okian/veloplot/pkg/logger"
	"github.com/okian/veloplot/pkg/metrics"
)

// scene is one rendered chart plus its lazily encoded outputs.
type scene struct {
	chart *chart.Chart

	mu      sync.Mutex
	encoded map[render.Format][]byte
}

func (sc *scene) encode(f render.Format) ([]byte, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if b, ok := sc.encoded[f]; ok {
		return b, nil
	}
	var buf bytes.Buffer
	if err := render.Encode(&buf, sc.chart, f); err != nil {
		return nil, err
	}
	sc.encoded[f] = buf.Bytes()
	return sc.encoded[f], nil
}

// Service loads the dataset and serves the rendered chart.
type Service struct {
	// runMu guards the lifecycle fields.
	runMu   sync.Mutex
	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	// mu guards the current scene and load bookkeeping.
	mu        sync.RWMutex
	current   *scene
	loads     int
	failures  int
	lastLoad  time.Time
	lastError string

	// reloadMu serializes loads so a slow refresh cannot overwrite a newer one.
	reloadMu sync.Mutex

	source          dataset.Source
	refreshInterval time.Duration
	watch           bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSource sets the dataset source.
func WithSource(src dataset.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithRefreshInterval reloads the dataset every d. Zero disables it.
func WithRefreshInterval(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.refreshInterval = d
		}
	}
}

// WithWatch enables reloading when a file source changes on disk.
func WithWatch(enabled bool) Option {
	return func(s *Service) {
		s.watch = enabled
	}
}

// New constructs a new Service. Without WithSource it fetches the
// published dataset over HTTP.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		s.source = dataset.NewHTTPSource(dataset.DefaultURL, dataset.WithHTTPLogger(s.logger))
	}
	return s
}

// Start loads the dataset and renders the first chart. A failed first load
// is returned and the service stays stopped.
func (s *Service) Start(ctx context.Context) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.logger.Info(ctx, "starting chart service...",
		logger.String("source", s.source.Kind()),
		logger.String("location", s.source.Location()),
	)

	if err := s.load(ctx); err != nil {
		return err
	}

	bg, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	if s.refreshInterval > 0 {
		s.wg.Add(1)
		go s.refreshLoop(bg)
	}
	if fs, ok := s.source.(*dataset.FileSource); ok && s.watch {
		s.wg.Add(1)
		go s.watchLoop(bg, fs)
	}

	s.started = true
	s.logger.Info(ctx, "chart service started",
		logger.Duration("refresh", s.refreshInterval),
		logger.Bool("watch", s.watch),
	)
	return nil
}

// Stop halts background reloads. The last chart remains readable.
func (s *Service) Stop() {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if !s.started {
		return
	}
	s.logger.Info(context.Background(), "stopping chart service...")
	s.cancel()
	s.wg.Wait()
	s.started = false
	s.logger.Info(context.Background(), "chart service stopped")
}

// Reload fetches the dataset again and swaps in the new chart. On failure
// the previous chart is kept.
func (s *Service) Reload(ctx context.Context) error {
	s.runMu.Lock()
	started := s.started
	s.runMu.Unlock()
	if !started {
		return ErrNotStarted
	}
	return s.load(ctx)
}

func (s *Service) load(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	start := time.Now()
	c, err := s.build(ctx)

	s.mu.Lock()
	s.loads++
	if err != nil {
		s.failures++
		s.lastError = err.Error()
		s.mu.Unlock()
		s.logger.Error(ctx, "dataset load failed", logger.Error(err))
		return err
	}
	s.current = &scene{chart: c, encoded: make(map[render.Format][]byte, len(render.Formats))}
	s.lastLoad = time.Now()
	s.lastError = ""
	s.mu.Unlock()

	ds := c.Dataset
	metrics.UpdateDatasetSize(len(ds.Records), len(ds.Rejected), len(ds.Warnings))
	metrics.UpdateDatasetLastLoad(s.lastLoad.Unix())
	metrics.UpdateChartMarks(len(c.Marks))

	for _, r := range ds.Rejected {
		s.logger.Warn(ctx, "record rejected", logger.Int("index", r.Index), logger.String("reason", r.Reason))
	}
	for _, w := range ds.Warnings {
		s.logger.Warn(ctx, "record inconsistent", logger.Int("index", w.Index), logger.String("detail", w.Message))
	}
	s.logger.Info(ctx, "chart rendered",
		logger.String("chartId", c.ID),
		logger.Int("marks", len(c.Marks)),
		logger.Int("rejected", len(ds.Rejected)),
		logger.Duration("took", time.Since(start)),
	)
	return nil
}

func (s *Service) build(ctx context.Context) (*chart.Chart, error) {
	raw, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	return chart.Render(chart.Transform(raw))
}

func (s *Service) refreshLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Errors are logged and counted by load.
			_ = s.load(ctx)
		}
	}
}

func (s *Service) watchLoop(ctx context.Context, fs *dataset.FileSource) {
	defer s.wg.Done()
	err := fs.Watch(ctx, func() {
		s.logger.Info(ctx, "dataset file changed", logger.String("path", fs.Location()))
		_ = s.load(ctx)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error(ctx, "dataset watcher stopped", logger.Error(err))
	}
}

// Chart returns the current chart scene.
func (s *Service) Chart() (*chart.Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, ErrNotReady
	}
	return s.current.chart, nil
}

// Dataset returns the transformed dataset behind the current chart.
func (s *Service) Dataset() (chart.Dataset, error) {
	c, err := s.Chart()
	if err != nil {
		return chart.Dataset{}, err
	}
	return c.Dataset, nil
}

// Encoded returns the current chart encoded as f. Encodings are cached per
// loaded chart.
func (s *Service) Encoded(f render.Format) ([]byte, error) {
	s.mu.RLock()
	sc := s.current
	s.mu.RUnlock()
	if sc == nil {
		return nil, ErrNotReady
	}
	return sc.encode(f)
}

// Tooltip returns the tooltip state shown when mark index is hovered on a
// chart surface whose top-left corner is at surface.
func (s *Service) Tooltip(index int, surface chart.Point) (chart.TooltipState, error) {
	c, err := s.Chart()
	if err != nil {
		return chart.TooltipState{}, err
	}
	m, err := c.Mark(index)
	if err != nil {
		return chart.TooltipState{}, err
	}
	var st chart.TooltipState
	st.Enter(m, c.MarkBounds(m, surface))
	return st, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.runMu.Lock()
	started := s.started
	s.runMu.Unlock()

	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":  started,
		"source":   s.source.Kind(),
		"location": s.source.Location(),
		"loads":    s.loads,
		"failures": s.failures,
		"ready":    s.current != nil,
	}
	if s.lastError != "" {
		stats["lastError"] = s.lastError
	}
	if s.current != nil {
		c := s.current.chart
		stats["chartId"] = c.ID
		stats["lastLoad"] = s.lastLoad.UTC().Format(time.RFC3339)
		stats["records"] = len(c.Dataset.Records)
		stats["rejected"] = len(c.Dataset.Rejected)
		stats["warnings"] = len(c.Dataset.Warnings)
		stats["marks"] = len(c.Marks)
		stats["marksByFill"] = c.CountByFill()
	}
	if n, err := metrics.Gather(); err == nil {
		stats["metricFamilies"] = n
	}
	return stats
}
