package repository

import (
	"sort"

	"github.com/khitstore/khit-backend/internal/domain"
)

// FilterByCategorySlug resolves a storefront category slug against the tree.
// "sale" and "new" are synthetic; a root category with children resolves to
// its children's products; an unknown slug falls back to the full listing.
func FilterByCategorySlug(categorySlug string, categories []domain.Category, products []domain.Product) []domain.Product {
	if categorySlug == domain.CategorySlugSale {
		out := []domain.Product{}
		for _, p := range products {
			if p.OnSale() {
				out = append(out, p)
			}
		}
		return out
	}

	if categorySlug == domain.CategorySlugNew {
		category, ok := findRootCategory(categories, domain.CategorySlugNew)
		if !ok {
			return products
		}
		return filterByCategoryIDs(products, map[string]struct{}{category.ID: {}})
	}

	parent, ok := findRootCategory(categories, categorySlug)
	if !ok {
		return products
	}

	childIDs := make(map[string]struct{})
	for _, c := range categories {
		if c.ParentID == parent.ID {
			childIDs[c.ID] = struct{}{}
		}
	}
	if len(childIDs) == 0 {
		return filterByCategoryIDs(products, map[string]struct{}{parent.ID: {}})
	}
	return filterByCategoryIDs(products, childIDs)
}

// FilterBySubcategorySlugs resolves a (parent, child) slug pair; an
// unresolved pair yields an empty listing rather than a fallback.
func FilterBySubcategorySlugs(categorySlug, subcategorySlug string, categories []domain.Category, products []domain.Product) []domain.Product {
	parent, ok := findRootCategory(categories, categorySlug)
	if !ok {
		return []domain.Product{}
	}

	for _, c := range categories {
		if c.Slug == subcategorySlug && c.ParentID == parent.ID {
			return filterByCategoryIDs(products, map[string]struct{}{c.ID: {}})
		}
	}
	return []domain.Product{}
}

// FlattenInventory expands products into one row per (variant, size) pair,
// ordered by product name, then color, then size.
func FlattenInventory(products []domain.Product) []domain.InventoryRow {
	rows := []domain.InventoryRow{}
	for _, p := range products {
		for _, v := range p.ColorVariants {
			for _, size := range v.SelectedSizes {
				rows = append(rows, domain.InventoryRow{
					ProductID:   p.ID,
					ProductName: p.Name,
					VariantID:   v.ID,
					ColorName:   v.ColorName,
					Size:        size,
					Stock:       v.StockFor(size),
					IsPublished: p.IsPublished,
				})
			}
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.ProductName != b.ProductName {
			return a.ProductName < b.ProductName
		}
		if a.ColorName != b.ColorName {
			return a.ColorName < b.ColorName
		}
		return a.Size < b.Size
	})
	return rows
}

func findRootCategory(categories []domain.Category, slug string) (domain.Category, bool) {
	for _, c := range categories {
		if c.Slug == slug && c.IsRoot() {
			return c, true
		}
	}
	return domain.Category{}, false
}

func filterByCategoryIDs(products []domain.Product, ids map[string]struct{}) []domain.Product {
	out := []domain.Product{}
	for _, p := range products {
		if _, ok := ids[p.CategoryID]; ok {
			out = append(out, p)
		}
	}
	return out
}
