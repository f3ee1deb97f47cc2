package rpc

import (
	"log/slog"
	"net/http"

	"github.com/khitstore/khit-backend/internal/repository"
	"github.com/khitstore/khit-backend/internal/transport/middleware"
	"github.com/khitstore/khit-backend/pkg/ctxutil"
)

type inventoryHandler struct {
	repos repository.Repositories
	log   *slog.Logger
}

const stockNotFound = "Product or variant not found."

func (h *inventoryHandler) listFlattened(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(h.log, w, r, err, stockNotFound)
		return
	}

	rows, err := h.repos.Inventory.ListFlattened(r.Context())
	if err != nil {
		respondError(h.log, w, r, err, stockNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *inventoryHandler) updateStock(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(h.log, w, r, err, stockNotFound)
		return
	}

	var req repository.UpdateStockInput
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ChangedBy == "" {
		if actor, ok := ctxutil.ActorFromCtx(r.Context()); ok {
			req.ChangedBy = actor
		}
	}

	update, err := h.repos.Inventory.UpdateStock(r.Context(), req)
	if err != nil {
		respondError(h.log, w, r, err, stockNotFound)
		return
	}
	writeJSON(w, http.StatusOK, update)
}

func (h *inventoryHandler) listAuditLogs(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(h.log, w, r, err, stockNotFound)
		return
	}

	var req repository.AuditLogFilter
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	logs, err := h.repos.Inventory.ListAuditLogs(r.Context(), req)
	if err != nil {
		respondError(h.log, w, r, err, stockNotFound)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
