package rpc

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/khitstore/khit-backend/internal/authadapter"
	"github.com/khitstore/khit-backend/internal/query"
	"github.com/khitstore/khit-backend/internal/transport/middleware"
)

// adapterAPI is the auth-storage contract the passthrough endpoints expose.
type adapterAPI interface {
	Create(ctx context.Context, model authadapter.Model, data authadapter.Record) (authadapter.Record, error)
	FindOne(ctx context.Context, model authadapter.Model, where []authadapter.Where, selected []string, joins []authadapter.Join) (authadapter.Record, error)
	FindMany(ctx context.Context, model authadapter.Model, params authadapter.FindManyParams) ([]authadapter.Record, error)
	Count(ctx context.Context, model authadapter.Model, where []authadapter.Where) (int, error)
	Update(ctx context.Context, model authadapter.Model, where []authadapter.Where, update authadapter.Record) (authadapter.Record, error)
	UpdateMany(ctx context.Context, model authadapter.Model, where []authadapter.Where, update authadapter.Record) (int, error)
	Delete(ctx context.Context, model authadapter.Model, where []authadapter.Where) error
	DeleteMany(ctx context.Context, model authadapter.Model, where []authadapter.Where) (int, error)
}

// authHandler exposes raw auth-collection CRUD for the auth layer's own
// tooling. Every endpoint is admin only.
type authHandler struct {
	adapter adapterAPI
	log     *slog.Logger
}

const authRowNotFound = "Record not found."

type whereArg struct {
	Field     string          `json:"field"`
	Operator  query.Operator  `json:"operator,omitempty"`
	Value     any             `json:"value"`
	Connector query.Connector `json:"connector,omitempty"`
}

type joinArg struct {
	Model    authadapter.Model    `json:"model"`
	From     string               `json:"from"`
	To       string               `json:"to"`
	Relation authadapter.Relation `json:"relation,omitempty"`
	Limit    *int                 `json:"limit,omitempty"`
}

type authRequest struct {
	Model  authadapter.Model  `json:"model"`
	Where  []whereArg         `json:"where,omitempty"`
	Data   authadapter.Record `json:"data,omitempty"`
	Update authadapter.Record `json:"update,omitempty"`
	Limit  *int               `json:"limit,omitempty"`
	Offset int                `json:"offset,omitempty"`
	Select []string           `json:"select,omitempty"`
	SortBy *query.Sort        `json:"sortBy,omitempty"`
	Joins  []joinArg          `json:"joins,omitempty"`
}

func (req authRequest) wheres() []authadapter.Where {
	if len(req.Where) == 0 {
		return nil
	}
	out := make([]authadapter.Where, 0, len(req.Where))
	for _, w := range req.Where {
		out = append(out, authadapter.Where{
			Field:     w.Field,
			Operator:  w.Operator,
			Value:     w.Value,
			Connector: w.Connector,
		})
	}
	return out
}

func (req authRequest) joins() []authadapter.Join {
	if len(req.Joins) == 0 {
		return nil
	}
	out := make([]authadapter.Join, 0, len(req.Joins))
	for _, j := range req.Joins {
		out = append(out, authadapter.Join{
			Model:    j.Model,
			From:     j.From,
			To:       j.To,
			Relation: j.Relation,
			Limit:    j.Limit,
		})
	}
	return out
}

// guard decodes the request and enforces the admin requirement. Returns
// false when the response has already been written.
func (h *authHandler) guard(w http.ResponseWriter, r *http.Request, req *authRequest) bool {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(h.log, w, r, err, authRowNotFound)
		return false
	}
	if err := decode(r, req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *authHandler) create(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if !h.guard(w, r, &req) {
		return
	}

	record, err := h.adapter.Create(r.Context(), req.Model, req.Data)
	if err != nil {
		respondError(h.log, w, r, err, authRowNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *authHandler) findOne(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if !h.guard(w, r, &req) {
		return
	}

	record, err := h.adapter.FindOne(r.Context(), req.Model, req.wheres(), req.Select, req.joins())
	if err != nil {
		respondError(h.log, w, r, err, authRowNotFound)
		return
	}
	// A miss is a nil payload, not an error.
	writeJSON(w, http.StatusOK, record)
}

func (h *authHandler) findMany(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if !h.guard(w, r, &req) {
		return
	}

	records, err := h.adapter.FindMany(r.Context(), req.Model, authadapter.FindManyParams{
		Where:  req.wheres(),
		Limit:  req.Limit,
		Offset: req.Offset,
		Select: req.Select,
		SortBy: req.SortBy,
		Joins:  req.joins(),
	})
	if err != nil {
		respondError(h.log, w, r, err, authRowNotFound)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *authHandler) count(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if !h.guard(w, r, &req) {
		return
	}

	count, err := h.adapter.Count(r.Context(), req.Model, req.wheres())
	if err != nil {
		respondError(h.log, w, r, err, authRowNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

func (h *authHandler) update(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if !h.guard(w, r, &req) {
		return
	}

	record, err := h.adapter.Update(r.Context(), req.Model, req.wheres(), req.Update)
	if err != nil {
		respondError(h.log, w, r, err, authRowNotFound)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *authHandler) updateMany(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if !h.guard(w, r, &req) {
		return
	}

	count, err := h.adapter.UpdateMany(r.Context(), req.Model, req.wheres(), req.Update)
	if err != nil {
		respondError(h.log, w, r, err, authRowNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": count})
}

func (h *authHandler) remove(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if !h.guard(w, r, &req) {
		return
	}

	if err := h.adapter.Delete(r.Context(), req.Model, req.wheres()); err != nil {
		respondError(h.log, w, r, err, authRowNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *authHandler) removeMany(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if !h.guard(w, r, &req) {
		return
	}

	count, err := h.adapter.DeleteMany(r.Context(), req.Model, req.wheres())
	if err != nil {
		respondError(h.log, w, r, err, authRowNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": count})
}
