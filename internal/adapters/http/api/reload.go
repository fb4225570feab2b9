package api

import (
	"net/http"
)

// ReloadHandler triggers a dataset reload.
type ReloadHandler struct {
	deps Dependencies
}

// NewReloadHandler creates a new reload handler.
func NewReloadHandler(deps Dependencies) *ReloadHandler {
	return &ReloadHandler{deps: deps}
}

type reloadResponse struct {
	Status  string `json:"status"`
	ChartID string `json:"chartId"`
	Marks   int    `json:"marks"`
}

// HandleReload handles POST /reload. On failure the previous chart keeps
// being served.
func (h *ReloadHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	if err := h.deps.Reload(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	c, err := h.deps.Chart()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, reloadResponse{Status: "reloaded", ChartID: c.ID, Marks: len(c.Marks)})
}
