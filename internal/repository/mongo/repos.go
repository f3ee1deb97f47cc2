// Package mongo implements the typed repositories over MongoDB collections.
package mongo

import (
	mongodrv "go.mongodb.org/mongo-driver/mongo"

	"github.com/khitstore/khit-backend/internal/repository"
)

const (
	collProducts   = "products"
	collCategories = "categories"
	collSettings   = "storeSettings"
	collAuditLogs  = "inventoryAuditLogs"
	collOrders     = "orders"
	collUsers      = "users"
)

// NewRepositories wires every repository onto one database handle.
func NewRepositories(db *mongodrv.Database) repository.Repositories {
	return repository.Repositories{
		Products:   &ProductRepo{db: db},
		Categories: &CategoryRepo{db: db},
		Settings:   &SettingsRepo{db: db},
		Inventory:  &InventoryRepo{db: db},
		Orders:     &OrderRepo{db: db},
		Users:      &UserRepo{db: db},
	}
}
