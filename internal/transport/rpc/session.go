package rpc

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/khitstore/khit-backend/internal/service/auth"
)

// sessionService defines the auth flows served under /api/session.*.
type sessionService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Session(ctx context.Context, token string) (*auth.SessionResult, error)
	Logout(ctx context.Context, token string) error
}

type sessionHandler struct {
	svc sessionService
	log *slog.Logger
}

func (h *sessionHandler) register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterInput
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Register(r.Context(), req)
	if err != nil {
		respondError(h.log, w, r, err, "User not found.")
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *sessionHandler) login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginInput
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Login(r.Context(), req)
	if err != nil {
		respondError(h.log, w, r, err, "User not found.")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type sessionTokenRequest struct {
	Token string `json:"token"`
}

func (h *sessionHandler) get(w http.ResponseWriter, r *http.Request) {
	var req sessionTokenRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Session(r.Context(), req.Token)
	if err != nil {
		respondError(h.log, w, r, err, "Session not found.")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *sessionHandler) logout(w http.ResponseWriter, r *http.Request) {
	var req sessionTokenRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.Logout(r.Context(), req.Token); err != nil {
		respondError(h.log, w, r, err, "Session not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
