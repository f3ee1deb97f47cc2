package domain

import "time"

// Category is a node in the self-referential category tree. A category with
// an empty ParentID is a root category.
type Category struct {
	ID          string    `json:"_id"                   bson:"_id"`
	Name        string    `json:"name"                  bson:"name"`
	Slug        string    `json:"slug"                  bson:"slug"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	ParentID    string    `json:"parentId,omitempty"    bson:"parentId,omitempty"`
	SortOrder   int       `json:"sortOrder"             bson:"sortOrder"`
	IsActive    bool      `json:"isActive"              bson:"isActive"`
	CreatedAt   time.Time `json:"createdAt"             bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"             bson:"updatedAt"`
}

// IsRoot reports whether the category has no parent.
func (c Category) IsRoot() bool { return c.ParentID == "" }

// Synthetic category slugs resolved by the product repositories rather than
// stored rows. "sale" selects discounted products; "new" selects products in
// the literal "new" root category.
const (
	CategorySlugSale = "sale"
	CategorySlugNew  = "new"
)
