package mongo

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/repository"
)

// InventoryRepo serves the flattened stock view over the hosted catalog.
type InventoryRepo struct {
	db *mongodrv.Database
}

func (r *InventoryRepo) ListFlattened(ctx context.Context) ([]domain.InventoryRow, error) {
	products, err := (&ProductRepo{db: r.db}).find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return repository.FlattenInventory(products), nil
}

// UpdateStock writes one stock cell and records exactly one audit log entry.
// The requested value is clamped to a non-negative integer, and the size is
// added to the variant's selected sizes if it was not sold before.
func (r *InventoryRepo) UpdateStock(ctx context.Context, input repository.UpdateStockInput) (repository.StockUpdate, error) {
	products := &ProductRepo{db: r.db}

	product, err := products.GetByID(ctx, input.ProductID)
	if err != nil {
		return repository.StockUpdate{}, err
	}

	index := -1
	for i, v := range product.ColorVariants {
		if v.ID == input.VariantID {
			index = i
			break
		}
	}
	if index < 0 {
		return repository.StockUpdate{}, fmt.Errorf("variant %q: %w", input.VariantID, domain.ErrNotFound)
	}

	variant := product.ColorVariants[index]
	oldValue := variant.StockFor(input.Size)
	newValue := domain.ClampStock(input.NewValue)

	if variant.Stock == nil {
		variant.Stock = map[string]int{}
	}
	variant.Stock[input.Size] = newValue
	if !slices.Contains(variant.SelectedSizes, input.Size) {
		variant.SelectedSizes = append(variant.SelectedSizes, input.Size)
	}
	product.ColorVariants[index] = variant

	now := time.Now()
	_, err = products.collection().UpdateOne(ctx, bson.M{"_id": product.ID}, bson.M{
		"$set": bson.M{"colorVariants": product.ColorVariants, "updatedAt": now},
	})
	if err != nil {
		return repository.StockUpdate{}, fmt.Errorf("write stock: %w", err)
	}

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
	if _, err := r.db.Collection(collAuditLogs).InsertOne(ctx, log); err != nil {
		return repository.StockUpdate{}, fmt.Errorf("write audit log: %w", err)
	}

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

func (r *InventoryRepo) ListAuditLogs(ctx context.Context, filter repository.AuditLogFilter) ([]domain.InventoryAuditLog, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = repository.DefaultAuditLogLimit
	}

	query := bson.M{}
	if filter.ProductID != "" {
		query["productId"] = filter.ProductID
	}
	if filter.VariantID != "" {
		query["variantId"] = filter.VariantID
	}
	if filter.Size != "" {
		query["size"] = filter.Size
	}

	cursor, err := r.db.Collection(collAuditLogs).Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "changedAt", Value: -1}}).SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}

	logs := []domain.InventoryAuditLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("decode audit logs: %w", err)
	}
	return logs, nil
}
