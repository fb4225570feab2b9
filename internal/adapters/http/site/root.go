// Package site serves the interactive chart page and its static assets.
package site

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/okian/veloplot/internal/adapters/render"
	service "github.com/okian/veloplot/internal/app"
)

// Error constants
var (
	ErrServe = errors.New("chart page serve failed")
)

// PageSource yields the encoded chart page.
type PageSource interface {
	Encoded(f render.Format) ([]byte, error)
}

// Register attaches the chart page at / and the page assets at /static/.
func Register(_ context.Context, mux *http.ServeMux, pages PageSource) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(render.Assets))))
	mux.Handle("/", NewRootHandler(pages))
}

// RootHandler serves the chart page.
type RootHandler struct {
	pages PageSource
}

// NewRootHandler creates a new root handler.
func NewRootHandler(pages PageSource) *RootHandler {
	return &RootHandler{pages: pages}
}

// ServeHTTP handles GET / with the HTML chart. Any other path is 404.
func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	body, err := h.pages.Encoded(render.FormatHTML)
	switch {
	case errors.Is(err, service.ErrNotReady):
		w.Header().Set("Retry-After", "5")
		http.Error(w, "chart is loading", http.StatusServiceUnavailable)
		return
	case err != nil:
		http.Error(w, ErrServe.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", render.FormatHTML.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}
