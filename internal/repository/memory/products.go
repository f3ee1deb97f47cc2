package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/repository"
)

// ProductRepo manages the in-memory catalog.
type ProductRepo struct {
	state *State
}

func (r *ProductRepo) List(_ context.Context, publishedOnly bool) ([]domain.Product, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return sortByUpdatedDesc(r.listLocked(publishedOnly)), nil
}

func (r *ProductRepo) ListFeatured(_ context.Context) ([]domain.Product, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	var out []domain.Product
	for _, p := range r.listLocked(true) {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *ProductRepo) ListByCategorySlug(_ context.Context, categorySlug string) ([]domain.Product, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return repository.FilterByCategorySlug(categorySlug, r.state.categories, r.listLocked(true)), nil
}

func (r *ProductRepo) ListBySubcategorySlugs(_ context.Context, categorySlug, subcategorySlug string) ([]domain.Product, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return repository.FilterBySubcategorySlugs(categorySlug, subcategorySlug, r.state.categories, r.listLocked(true)), nil
}

func (r *ProductRepo) ListRelatedBySlug(_ context.Context, slug string, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = repository.DefaultRelatedLimit
	}

	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	out := []domain.Product{}
	for _, p := range r.listLocked(true) {
		if p.Slug == slug {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (domain.Product, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for _, p := range r.state.products {
		if p.ID == id {
			return cloneProduct(p), nil
		}
	}
	return domain.Product{}, fmt.Errorf("product %q: %w", id, domain.ErrNotFound)
}

func (r *ProductRepo) GetBySlug(_ context.Context, slug string, publishedOnly bool) (domain.Product, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for _, p := range r.state.products {
		if p.Slug != slug {
			continue
		}
		if publishedOnly && !p.IsPublished {
			continue
		}
		return cloneProduct(p), nil
	}
	return domain.Product{}, fmt.Errorf("product %q: %w", slug, domain.ErrNotFound)
}

func (r *ProductRepo) Create(_ context.Context, input repository.ProductUpsertInput) (domain.Product, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	now := time.Now()
	slugBase := input.Slug
	if slugBase == "" {
		slugBase = input.Name
	}

	product := domain.Product{
		ID:            "prod-" + domain.RandomSuffix(),
		SKU:           input.SKU,
		Name:          input.Name,
		Slug:          r.uniqueSlugLocked(slugBase, ""),
		Description:   input.Description,
		CategoryID:    input.CategoryID,
		BasePrice:     input.BasePrice,
		SalePrice:     input.SalePrice,
		IsFeatured:    input.IsFeatured,
		IsPublished:   input.IsPublished,
		ColorVariants: normalizeVariants(input.ColorVariants),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	r.state.products = append([]domain.Product{product}, r.state.products...)
	return cloneProduct(product), nil
}

func (r *ProductRepo) Update(_ context.Context, id string, input repository.ProductUpsertInput) (domain.Product, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	index := -1
	for i, p := range r.state.products {
		if p.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return domain.Product{}, fmt.Errorf("product %q: %w", id, domain.ErrNotFound)
	}

	existing := r.state.products[index]
	slugBase := input.Slug
	if slugBase == "" {
		slugBase = input.Name
	}
	if slugBase == "" {
		slugBase = existing.Name
	}

	updated := domain.Product{
		ID:            id,
		SKU:           input.SKU,
		Name:          input.Name,
		Slug:          r.uniqueSlugLocked(slugBase, id),
		Description:   input.Description,
		CategoryID:    input.CategoryID,
		BasePrice:     input.BasePrice,
		SalePrice:     input.SalePrice,
		IsFeatured:    input.IsFeatured,
		IsPublished:   input.IsPublished,
		ColorVariants: normalizeVariants(input.ColorVariants),
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now(),
	}

	r.state.products[index] = updated
	return cloneProduct(updated), nil
}

// SoftDelete unpublishes a product; a missing id is a no-op.
func (r *ProductRepo) SoftDelete(_ context.Context, id string) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for i, p := range r.state.products {
		if p.ID != id {
			continue
		}
		r.state.products[i].IsPublished = false
		r.state.products[i].UpdatedAt = time.Now()
		return nil
	}
	return nil
}

// Duplicate copies a product into an unpublished draft with fresh identity:
// name gets a "(Copy)" suffix, the sku a "-COPY" suffix, the slug is probed
// from "<slug>-copy", and every variant id gets a random copy suffix.
func (r *ProductRepo) Duplicate(_ context.Context, id string) (domain.Product, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	var source *domain.Product
	for i := range r.state.products {
		if r.state.products[i].ID == id {
			source = &r.state.products[i]
			break
		}
	}
	if source == nil {
		return domain.Product{}, fmt.Errorf("product %q: %w", id, domain.ErrNotFound)
	}

	now := time.Now()
	dup := cloneProduct(*source)
	dup.ID = "prod-" + domain.RandomSuffix()
	dup.Name = source.Name + " (Copy)"
	dup.Slug = r.uniqueSlugLocked(source.Slug+"-copy", "")
	if source.SKU != "" {
		dup.SKU = source.SKU + "-COPY"
	}
	dup.IsPublished = false
	dup.CreatedAt = now
	dup.UpdatedAt = now
	for i := range dup.ColorVariants {
		dup.ColorVariants[i].ID = dup.ColorVariants[i].ID + "-copy-" + domain.RandomSuffix()
	}

	r.state.products = append([]domain.Product{dup}, r.state.products...)
	return cloneProduct(dup), nil
}

// ToggleBulkStatus sets isPublished on every listed product, skipping ids
// that no longer exist, and returns how many rows were touched.
func (r *ProductRepo) ToggleBulkStatus(_ context.Context, ids []string, isPublished bool) (int, error) {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	updated := 0
	for i := range r.state.products {
		if _, ok := wanted[r.state.products[i].ID]; !ok {
			continue
		}
		r.state.products[i].IsPublished = isPublished
		r.state.products[i].UpdatedAt = time.Now()
		updated++
	}
	return updated, nil
}

func (r *ProductRepo) listLocked(publishedOnly bool) []domain.Product {
	out := make([]domain.Product, 0, len(r.state.products))
	for _, p := range r.state.products {
		if publishedOnly && !p.IsPublished {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	return out
}

// uniqueSlugLocked normalizes the base and probes for an unused slug by
// appending -1, -2, ... Rows with currentID are ignored so an update keeps
// its own slug.
func (r *ProductRepo) uniqueSlugLocked(base, currentID string) string {
	clean := domain.Slugify(base)
	if clean == "" {
		clean = "product-" + domain.RandomSuffix()
	}

	candidate := clean
	for attempt := 1; r.slugTakenLocked(candidate, currentID); attempt++ {
		candidate = fmt.Sprintf("%s-%d", clean, attempt)
	}
	return candidate
}

func (r *ProductRepo) slugTakenLocked(slug, currentID string) bool {
	for _, p := range r.state.products {
		if p.Slug == slug && p.ID != currentID {
			return true
		}
	}
	return false
}

func normalizeVariants(variants []domain.ColorVariant) []domain.ColorVariant {
	out := make([]domain.ColorVariant, len(variants))
	for i, v := range variants {
		nv := cloneVariant(v)
		if nv.ID == "" {
			nv.ID = "variant-" + domain.RandomSuffix()
		}
		out[i] = nv
	}
	return out
}

func sortByUpdatedDesc(products []domain.Product) []domain.Product {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].UpdatedAt.After(products[j].UpdatedAt)
	})
	return products
}

