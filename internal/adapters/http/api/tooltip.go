package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/okian/veloplot/internal/domain/chart"
)

// TooltipHandler serves the tooltip state of a hovered mark.
type TooltipHandler struct {
	deps Dependencies
}

// NewTooltipHandler creates a new tooltip handler.
func NewTooltipHandler(deps Dependencies) *TooltipHandler {
	return &TooltipHandler{deps: deps}
}

// HandleTooltip handles GET /tooltip?index=N[&x=X&y=Y]. X and Y place the
// chart surface on the page and default to 0.
func (h *TooltipHandler) HandleTooltip(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	index, err := strconv.Atoi(q.Get("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: index must be an integer", ErrBadRequest))
		return
	}
	x, errX := floatParam(q.Get("x"))
	y, errY := floatParam(q.Get("y"))
	if errX != nil || errY != nil {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: x and y must be numbers", ErrBadRequest))
		return
	}

	st, err := h.deps.Tooltip(index, chart.Point{X: x, Y: y})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func floatParam(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
