// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/veloplot/internal/adapters/dataset"
	"github.com/okian/veloplot/internal/adapters/render"
	service "github.com/okian/veloplot/internal/app"
	"github.com/okian/veloplot/internal/domain/chart"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Encoded returns the current chart in the given format.
	Encoded(f render.Format) ([]byte, error)

	// Chart exposes the current scene.
	Chart() (*chart.Chart, error)

	// Tooltip computes the tooltip shown for a hovered mark.
	Tooltip(index int, surface chart.Point) (chart.TooltipState, error)

	// Reload refreshes the dataset now.
	Reload(ctx context.Context) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	chartHandler   *ChartHandler
	tooltipHandler *TooltipHandler
	reloadHandler  *ReloadHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		chartHandler:   NewChartHandler(deps),
		tooltipHandler: NewTooltipHandler(deps),
		reloadHandler:  NewReloadHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", wrap(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/chart.svg", wrap(s.chartHandler.HandleSVG, "chart_svg"))
	mux.HandleFunc("/chart.png", wrap(s.chartHandler.HandlePNG, "chart_png"))
	mux.HandleFunc("/chart.json", wrap(s.chartHandler.HandleScene, "chart_json"))
	mux.HandleFunc("/dataset", wrap(s.chartHandler.HandleDataset, "dataset"))
	mux.HandleFunc("/tooltip", wrap(s.tooltipHandler.HandleTooltip, "tooltip"))
	mux.HandleFunc("/reload", wrap(s.reloadHandler.HandleReload, "reload"))
}

// wrap applies the business middleware chain.
func wrap(h http.HandlerFunc, endpoint string) http.HandlerFunc {
	return RequestIDMiddleware(MetricsMiddleware(h, endpoint))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError maps service and domain errors to responses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotReady), errors.Is(err, service.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, "not_ready", err)
	case errors.Is(err, chart.ErrMarkNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, render.ErrUnknownFormat):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, dataset.ErrFetch), errors.Is(err, dataset.ErrStatus),
		errors.Is(err, dataset.ErrDecode), errors.Is(err, dataset.ErrRead),
		errors.Is(err, chart.ErrEmptyDataset):
		writeError(w, http.StatusBadGateway, "upstream_error", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

// allowMethod writes 405 unless r uses method.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method || (method == http.MethodGet && r.Method == http.MethodHead) {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", ErrMethodNotAllowed)
	return false
}
