package dataset

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/okian/veloplot/internal/domain/model"
	"github.com/okian/veloplot/pkg/logger"
	"github.com/okian/veloplot/pkg/metrics"
)

const defaultTimeout = 30 * time.Second

// HTTPSource fetches the dataset with a single GET request.
type HTTPSource struct {
	url    string
	client *http.Client
	logger logger.Logger
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithTimeout bounds the whole request, body included.
func WithTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPSource) {
		if d > 0 {
			s.client.Timeout = d
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		if c != nil {
			s.client = c
		}
	}
}

// WithHTTPLogger sets the logger.
func WithHTTPLogger(l logger.Logger) HTTPOption {
	return func(s *HTTPSource) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewHTTPSource creates a source for url.
func NewHTTPSource(url string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Kind implements Source.
func (s *HTTPSource) Kind() string { return KindHTTP }

// Location implements Source.
func (s *HTTPSource) Location() string { return s.url }

// Load implements Source.
func (s *HTTPSource) Load(ctx context.Context) ([]model.RawRecord, error) {
	start := time.Now()
	records, err := s.fetch(ctx)
	metrics.RecordDatasetLoad(KindHTTP, resultLabel(err), float64(time.Since(start).Milliseconds()))
	if s.logger != nil {
		if err != nil {
			s.logger.Error(ctx, "dataset fetch failed", logger.String("url", s.url), logger.Error(err))
		} else {
			s.logger.Debug(ctx, "dataset fetched",
				logger.String("url", s.url),
				logger.Int("records", len(records)),
				logger.Duration("took", time.Since(start)),
			)
		}
	}
	return records, err
}

func (s *HTTPSource) fetch(ctx context.Context) ([]model.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}
	return decode(resp.Body)
}
