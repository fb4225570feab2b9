package api

import (
	"net/http"
	"strconv"

	"github.com/okian/veloplot/internal/adapters/render"
)

// ChartHandler serves the encoded chart and its dataset.
type ChartHandler struct {
	deps Dependencies
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(deps Dependencies) *ChartHandler {
	return &ChartHandler{deps: deps}
}

// HandleSVG handles GET /chart.svg.
func (h *ChartHandler) HandleSVG(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, render.FormatSVG)
}

// HandlePNG handles GET /chart.png.
func (h *ChartHandler) HandlePNG(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, render.FormatPNG)
}

// HandleDataset handles GET /dataset[?format=json|yaml] with the
// transformed records, rejected rows and warnings.
func (h *ChartHandler) HandleDataset(w http.ResponseWriter, r *http.Request) {
	f := render.FormatJSON
	if q := r.URL.Query().Get("format"); q != "" {
		parsed, err := render.ParseFormat(q)
		if err != nil || (parsed != render.FormatJSON && parsed != render.FormatYAML) {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		f = parsed
	}
	h.serve(w, r, f)
}

// HandleScene handles GET /chart.json with the full scene graph.
func (h *ChartHandler) HandleScene(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	c, err := h.deps.Chart()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ChartHandler) serve(w http.ResponseWriter, r *http.Request, f render.Format) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	body, err := h.deps.Encoded(f)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}
