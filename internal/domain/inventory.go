package domain

import (
	"math"
	"time"
)

// InventoryRow is one flattened (product x variant x size) line of the
// inventory table.
type InventoryRow struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	VariantID   string `json:"variantId"`
	ColorName   string `json:"colorName"`
	Size        string `json:"size"`
	Stock       int    `json:"stock"`
	IsPublished bool   `json:"isPublished"`
}

// InventoryAuditLog is an immutable record of one stock mutation. Exactly one
// row is written per stock-changing call; rows are never updated or deleted.
type InventoryAuditLog struct {
	ID        string    `json:"_id"       bson:"_id"`
	ProductID string    `json:"productId" bson:"productId"`
	VariantID string    `json:"variantId" bson:"variantId"`
	Size      string    `json:"size"      bson:"size"`
	OldValue  int       `json:"oldValue"  bson:"oldValue"`
	NewValue  int       `json:"newValue"  bson:"newValue"`
	ChangedBy string    `json:"changedBy" bson:"changedBy"`
	ChangedAt time.Time `json:"changedAt" bson:"changedAt"`
}

// ClampStock normalizes a requested stock value to a non-negative integer
// floor. 5.5 becomes 5; negative values become 0.
func ClampStock(value float64) int {
	n := int(math.Floor(value))
	if n < 0 {
		return 0
	}
	return n
}
