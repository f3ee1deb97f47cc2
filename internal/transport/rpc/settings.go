package rpc

import (
	"log/slog"
	"net/http"

	"github.com/khitstore/khit-backend/internal/repository"
	"github.com/khitstore/khit-backend/internal/transport/middleware"
)

type settingsHandler struct {
	repos repository.Repositories
	log   *slog.Logger
}

func (h *settingsHandler) get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.repos.Settings.Get(r.Context())
	if err != nil {
		respondError(h.log, w, r, err, "Settings not found.")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *settingsHandler) upsert(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(h.log, w, r, err, "Settings not found.")
		return
	}

	var req repository.SettingsInput
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.repos.Settings.Upsert(r.Context(), req)
	if err != nil {
		respondError(h.log, w, r, err, "Settings not found.")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
