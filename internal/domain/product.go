package domain

import "time"

// VariantMeasurement holds optional garment measurements for one size, in inches.
type VariantMeasurement struct {
	Shoulder *float64 `json:"shoulder,omitempty" bson:"shoulder,omitempty"`
	Chest    *float64 `json:"chest,omitempty"    bson:"chest,omitempty"`
	Sleeve   *float64 `json:"sleeve,omitempty"   bson:"sleeve,omitempty"`
	Waist    *float64 `json:"waist,omitempty"    bson:"waist,omitempty"`
	Length   *float64 `json:"length,omitempty"   bson:"length,omitempty"`
}

// ColorVariant is a color-specific purchasable configuration of a product,
// split further by size. Every size in SelectedSizes should have a (possibly
// zero) entry in Stock; writing stock for a size not yet selected appends it.
type ColorVariant struct {
	ID            string                        `json:"id"                     bson:"id"`
	ColorName     string                        `json:"colorName"              bson:"colorName"`
	ColorHex      string                        `json:"colorHex"               bson:"colorHex"`
	Images        []string                      `json:"images"                 bson:"images"`
	SelectedSizes []string                      `json:"selectedSizes"          bson:"selectedSizes"`
	Stock         map[string]int                `json:"stock"                  bson:"stock"`
	Measurements  map[string]VariantMeasurement `json:"measurements,omitempty" bson:"measurements,omitempty"`
}

// StockFor returns the stock for a size, defaulting to zero for sizes the
// variant has never been stocked in.
func (v ColorVariant) StockFor(size string) int {
	return v.Stock[size]
}

// Product is a catalog item. Slug is unique within the products collection
// (case-insensitive, normalized); uniqueness is enforced at write time by the
// repositories via probe-and-suffix.
type Product struct {
	ID            string         `json:"_id"                 bson:"_id"`
	SKU           string         `json:"sku,omitempty"       bson:"sku,omitempty"`
	Name          string         `json:"name"                bson:"name"`
	Slug          string         `json:"slug"                bson:"slug"`
	Description   string         `json:"description"         bson:"description"`
	CategoryID    string         `json:"categoryId"          bson:"categoryId"`
	BasePrice     float64        `json:"basePrice,omitempty" bson:"basePrice,omitempty"`
	SalePrice     float64        `json:"salePrice,omitempty" bson:"salePrice,omitempty"`
	IsFeatured    bool           `json:"isFeatured"          bson:"isFeatured"`
	IsPublished   bool           `json:"isPublished"         bson:"isPublished"`
	ColorVariants []ColorVariant `json:"colorVariants"       bson:"colorVariants"`
	CreatedAt     time.Time      `json:"createdAt"           bson:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"           bson:"updatedAt"`
}

// OnSale reports whether the product participates in the synthetic "sale"
// category: a positive sale price strictly below the base price.
func (p Product) OnSale() bool {
	return p.SalePrice > 0 && p.SalePrice < p.BasePrice
}

// Variant returns the color variant with the given id.
func (p Product) Variant(variantID string) (ColorVariant, bool) {
	for _, v := range p.ColorVariants {
		if v.ID == variantID {
			return v, true
		}
	}
	return ColorVariant{}, false
}
