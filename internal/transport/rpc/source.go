package rpc

import (
	"net/http"

	"github.com/khitstore/khit-backend/internal/data"
)

// sourceHandler exposes which data backend the process is serving from and
// the recent selection trail. Used by the admin diagnostics panel.
type sourceHandler struct {
	selection   data.Selection
	breadcrumbs *data.Breadcrumbs
}

func (h *sourceHandler) current(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.selection)
}

func (h *sourceHandler) trail(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.breadcrumbs.List())
}
