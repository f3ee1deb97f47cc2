package rpc

import (
	"log/slog"
	"net/http"

	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/repository"
	"github.com/khitstore/khit-backend/internal/transport/middleware"
	"github.com/khitstore/khit-backend/pkg/ctxutil"
)

type productsHandler struct {
	repos repository.Repositories
	log   *slog.Logger
}

const productNotFound = "Product not found."

type productListRequest struct {
	// Exactly one selector applies; the first set one wins in the order
	// featured, subcategory, category, related. With none set, the whole
	// catalog is listed.
	Featured        bool   `json:"featured,omitempty"`
	CategorySlug    string `json:"categorySlug,omitempty"`
	SubcategorySlug string `json:"subcategorySlug,omitempty"`
	RelatedToSlug   string `json:"relatedToSlug,omitempty"`
	RelatedLimit    int    `json:"relatedLimit,omitempty"`

	// IncludeDrafts widens the listing to unpublished products; admin only.
	IncludeDrafts bool `json:"includeDrafts,omitempty"`
}

func (h *productsHandler) list(w http.ResponseWriter, r *http.Request) {
	var req productListRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	if req.IncludeDrafts && !ctxutil.IsAdminCtx(ctx) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var (
		items    []domain.Product
		err      error
		products = h.repos.Products
	)
	switch {
	case req.Featured:
		items, err = products.ListFeatured(ctx)
	case req.SubcategorySlug != "":
		items, err = products.ListBySubcategorySlugs(ctx, req.CategorySlug, req.SubcategorySlug)
	case req.CategorySlug != "":
		items, err = products.ListByCategorySlug(ctx, req.CategorySlug)
	case req.RelatedToSlug != "":
		items, err = products.ListRelatedBySlug(ctx, req.RelatedToSlug, req.RelatedLimit)
	default:
		items, err = products.List(ctx, !req.IncludeDrafts)
	}
	if err != nil {
		respondError(h.log, w, r, err, productNotFound)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *productsHandler) byID(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.repos.Products.GetByID(r.Context(), req.ID)
	if err != nil {
		respondError(h.log, w, r, err, productNotFound)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *productsHandler) bySlug(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Slug          string `json:"slug"`
		IncludeDrafts bool   `json:"includeDrafts,omitempty"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	publishedOnly := true
	if req.IncludeDrafts && ctxutil.IsAdminCtx(r.Context()) {
		publishedOnly = false
	}

	product, err := h.repos.Products.GetBySlug(r.Context(), req.Slug, publishedOnly)
	if err != nil {
		respondError(h.log, w, r, err, productNotFound)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *productsHandler) create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(h.log, w, r, err, productNotFound)
		return
	}

	var req repository.ProductUpsertInput
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.repos.Products.Create(r.Context(), req)
	if err != nil {
		respondError(h.log, w, r, err, productNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (h *productsHandler) update(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(h.log, w, r, err, productNotFound)
		return
	}

	var req struct {
		ID string `json:"id"`
		repository.ProductUpsertInput
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.repos.Products.Update(r.Context(), req.ID, req.ProductUpsertInput)
	if err != nil {
		respondError(h.log, w, r, err, productNotFound)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *productsHandler) softDelete(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(h.log, w, r, err, productNotFound)
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.repos.Products.SoftDelete(r.Context(), req.ID); err != nil {
		respondError(h.log, w, r, err, productNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *productsHandler) duplicate(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(h.log, w, r, err, productNotFound)
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.repos.Products.Duplicate(r.Context(), req.ID)
	if err != nil {
		respondError(h.log, w, r, err, productNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (h *productsHandler) toggleBulkStatus(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(h.log, w, r, err, productNotFound)
		return
	}

	var req struct {
		IDs         []string `json:"ids"`
		IsPublished bool     `json:"isPublished"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.repos.Products.ToggleBulkStatus(r.Context(), req.IDs, req.IsPublished)
	if err != nil {
		respondError(h.log, w, r, err, productNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": updated})
}

func (h *productsHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ActiveOnly bool `json:"activeOnly,omitempty"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	categories, err := h.repos.Categories.List(r.Context(), req.ActiveOnly)
	if err != nil {
		respondError(h.log, w, r, err, "Category not found.")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
