// Package memory implements the typed repositories over seeded in-process
// state. It backs local development and tests; the hosted backend lives in
// the sibling mongo package.
package memory

import (
	"maps"
	"slices"
	"sync"

	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/repository"
	"github.com/khitstore/khit-backend/internal/seed"
)

// State is the shared mutable dataset behind one set of repositories. The
// snapshot is cloned on the way in, so the caller's fixture stays pristine.
type State struct {
	mu sync.Mutex

	categories []domain.Category
	products   []domain.Product
	users      []domain.User
	orders     []domain.Order
	settings   domain.StoreSettings
	auditLogs  []domain.InventoryAuditLog
}

// NewState builds state from a snapshot.
func NewState(snap seed.Snapshot) *State {
	return &State{
		categories: slices.Clone(snap.Categories),
		products:   cloneProducts(snap.Products),
		users:      slices.Clone(snap.Users),
		orders:     cloneOrders(snap.Orders),
		settings:   cloneSettings(snap.Settings),
		auditLogs:  slices.Clone(snap.AuditLogs),
	}
}

// NewRepositories wires every repository onto one shared state.
func NewRepositories(state *State) repository.Repositories {
	return repository.Repositories{
		Products:   &ProductRepo{state: state},
		Categories: &CategoryRepo{state: state},
		Settings:   &SettingsRepo{state: state},
		Inventory:  &InventoryRepo{state: state},
		Orders:     &OrderRepo{state: state},
		Users:      &UserRepo{state: state},
	}
}

func cloneVariant(v domain.ColorVariant) domain.ColorVariant {
	v.Images = slices.Clone(v.Images)
	v.SelectedSizes = slices.Clone(v.SelectedSizes)
	v.Stock = maps.Clone(v.Stock)
	v.Measurements = maps.Clone(v.Measurements)
	return v
}

func cloneProduct(p domain.Product) domain.Product {
	variants := make([]domain.ColorVariant, len(p.ColorVariants))
	for i, v := range p.ColorVariants {
		variants[i] = cloneVariant(v)
	}
	p.ColorVariants = variants
	return p
}

func cloneProducts(products []domain.Product) []domain.Product {
	out := make([]domain.Product, len(products))
	for i, p := range products {
		out[i] = cloneProduct(p)
	}
	return out
}

func cloneOrder(o domain.Order) domain.Order {
	o.Items = slices.Clone(o.Items)
	return o
}

func cloneOrders(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, len(orders))
	for i, o := range orders {
		out[i] = cloneOrder(o)
	}
	return out
}

func cloneSettings(s domain.StoreSettings) domain.StoreSettings {
	s.FeaturedProductIDs = slices.Clone(s.FeaturedProductIDs)
	return s
}
