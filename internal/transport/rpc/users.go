package rpc

import (
	"log/slog"
	"net/http"

	"github.com/khitstore/khit-backend/internal/repository"
	"github.com/khitstore/khit-backend/internal/transport/middleware"
)

type usersHandler struct {
	repos repository.Repositories
	log   *slog.Logger
}

const userNotFound = "User not found."

func (h *usersHandler) list(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(h.log, w, r, err, userNotFound)
		return
	}

	users, err := h.repos.Users.List(r.Context())
	if err != nil {
		respondError(h.log, w, r, err, userNotFound)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *usersHandler) byEmail(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(h.log, w, r, err, userNotFound)
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.repos.Users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		respondError(h.log, w, r, err, userNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *usersHandler) upsertFromAuth(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(h.log, w, r, err, userNotFound)
		return
	}

	var req repository.UpsertUserInput
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.repos.Users.UpsertFromAuth(r.Context(), req)
	if err != nil {
		respondError(h.log, w, r, err, userNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
