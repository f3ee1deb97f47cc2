package rpc

import (
	"log/slog"
	"net/http"

	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/repository"
	"github.com/khitstore/khit-backend/internal/transport/middleware"
)

type ordersHandler struct {
	repos repository.Repositories
	log   *slog.Logger
}

const orderNotFound = "Order not found."

func (h *ordersHandler) list(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(h.log, w, r, err, orderNotFound)
		return
	}

	orders, err := h.repos.Orders.List(r.Context())
	if err != nil {
		respondError(h.log, w, r, err, orderNotFound)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *ordersHandler) detail(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(h.log, w, r, err, orderNotFound)
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.repos.Orders.GetByID(r.Context(), req.ID)
	if err != nil {
		respondError(h.log, w, r, err, orderNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// create is the storefront checkout endpoint; anonymous callers may place
// orders.
func (h *ordersHandler) create(w http.ResponseWriter, r *http.Request) {
	var req repository.OrderInput
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.repos.Orders.Create(r.Context(), req)
	if err != nil {
		respondError(h.log, w, r, err, orderNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *ordersHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(h.log, w, r, err, orderNotFound)
		return
	}

	var req struct {
		ID     string             `json:"id"`
		Status domain.OrderStatus `json:"status"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.repos.Orders.UpdateStatus(r.Context(), req.ID, req.Status)
	if err != nil {
		respondError(h.log, w, r, err, orderNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
