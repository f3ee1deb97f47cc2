package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/repository"
)

// InventoryRepo serves the flattened stock view over the in-memory catalog.
type InventoryRepo struct {
	state *State
}

func (r *InventoryRepo) ListFlattened(_ context.Context) ([]domain.InventoryRow, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	return repository.FlattenInventory(r.state.products), nil
}

// UpdateStock writes one stock cell and records exactly one audit log entry.
// The requested value is clamped to a non-negative integer, and the size is
// added to the variant's selected sizes if it was not sold before.
func (r *InventoryRepo) UpdateStock(_ context.Context, input repository.UpdateStockInput) (repository.StockUpdate, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	var product *domain.Product
	for i := range r.state.products {
		if r.state.products[i].ID == input.ProductID {
			product = &r.state.products[i]
			break
		}
	}
	if product == nil {
		return repository.StockUpdate{}, fmt.Errorf("product %q: %w", input.ProductID, domain.ErrNotFound)
	}

	var variant *domain.ColorVariant
	for i := range product.ColorVariants {
		if product.ColorVariants[i].ID == input.VariantID {
			variant = &product.ColorVariants[i]
			break
		}
	}
	if variant == nil {
		return repository.StockUpdate{}, fmt.Errorf("variant %q: %w", input.VariantID, domain.ErrNotFound)
	}

	oldValue := variant.StockFor(input.Size)
	newValue := domain.ClampStock(input.NewValue)

	if variant.Stock == nil {
		variant.Stock = map[string]int{}
	}
	variant.Stock[input.Size] = newValue
	if !slices.Contains(variant.SelectedSizes, input.Size) {
		variant.SelectedSizes = append(variant.SelectedSizes, input.Size)
	}

	now := time.Now()
	product.UpdatedAt = now

	log := domain.InventoryAuditLog{
		ID:        "log-" + domain.RandomSuffix(),
		ProductID: product.ID,
		VariantID: variant.ID,
		Size:      input.Size,
		OldValue:  oldValue,
		NewValue:  newValue,
		ChangedBy: input.ChangedBy,
		ChangedAt: now,
	}
	r.state.auditLogs = append([]domain.InventoryAuditLog{log}, r.state.auditLogs...)

	return repository.StockUpdate{
		Row: domain.InventoryRow{
			ProductID:   product.ID,
			ProductName: product.Name,
			VariantID:   variant.ID,
			ColorName:   variant.ColorName,
			Size:        input.Size,
			Stock:       newValue,
			IsPublished: product.IsPublished,
		},
		Log: log,
	}, nil
}

func (r *InventoryRepo) ListAuditLogs(_ context.Context, filter repository.AuditLogFilter) ([]domain.InventoryAuditLog, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = repository.DefaultAuditLogLimit
	}

	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	logs := []domain.InventoryAuditLog{}
	for _, entry := range r.state.auditLogs {
		if filter.ProductID != "" && entry.ProductID != filter.ProductID {
			continue
		}
		if filter.VariantID != "" && entry.VariantID != filter.VariantID {
			continue
		}
		if filter.Size != "" && entry.Size != filter.Size {
			continue
		}
		logs = append(logs, entry)
	}

	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].ChangedAt.After(logs[j].ChangedAt)
	})
	if len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}
