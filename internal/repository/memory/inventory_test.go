package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/repository"
)

func TestInventoryRepo_ListFlattened(t *testing.T) {
	repos := newRepos(t)

	rows, err := repos.Inventory.ListFlattened(context.Background())
	require.NoError(t, err)

	// 3 products: 4+3 sizes, 4+4 sizes, 4 sizes.
	require.Len(t, rows, 19)

	for i := 1; i < len(rows); i++ {
		a, b := rows[i-1], rows[i]
		if a.ProductName != b.ProductName {
			assert.Less(t, a.ProductName, b.ProductName)
			continue
		}
		if a.ColorName != b.ColorName {
			assert.Less(t, a.ColorName, b.ColorName)
			continue
		}
		assert.LessOrEqual(t, a.Size, b.Size)
	}

	first := rows[0]
	assert.Equal(t, "Oversized Oxford Shirt", first.ProductName)
}

func TestInventoryRepo_UpdateStock(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	t.Run("clamps fractional and negative values", func(t *testing.T) {
		res, err := repos.Inventory.UpdateStock(ctx, repository.UpdateStockInput{
			ProductID: "prod-001",
			VariantID: "variant-001-navy",
			Size:      "M",
			NewValue:  7.9,
			ChangedBy: "admin@khit.store",
		})
		require.NoError(t, err)
		assert.Equal(t, 7, res.Row.Stock)
		assert.Equal(t, 14, res.Log.OldValue)
		assert.Equal(t, 7, res.Log.NewValue)

		res, err = repos.Inventory.UpdateStock(ctx, repository.UpdateStockInput{
			ProductID: "prod-001",
			VariantID: "variant-001-navy",
			Size:      "M",
			NewValue:  -3,
			ChangedBy: "admin@khit.store",
		})
		require.NoError(t, err)
		assert.Zero(t, res.Row.Stock)
		assert.Equal(t, 7, res.Log.OldValue)
	})

	t.Run("writing an unsold size appends it", func(t *testing.T) {
		res, err := repos.Inventory.UpdateStock(ctx, repository.UpdateStockInput{
			ProductID: "prod-001",
			VariantID: "variant-001-white",
			Size:      "XXL",
			NewValue:  5,
			ChangedBy: "admin@khit.store",
		})
		require.NoError(t, err)
		assert.Zero(t, res.Log.OldValue)
		assert.Equal(t, 5, res.Log.NewValue)

		p, err := repos.Products.GetByID(ctx, "prod-001")
		require.NoError(t, err)
		variant, ok := p.Variant("variant-001-white")
		require.True(t, ok)
		assert.Contains(t, variant.SelectedSizes, "XXL")
		assert.Equal(t, 5, variant.StockFor("XXL"))

		// Writing it again must not append twice.
		_, err = repos.Inventory.UpdateStock(ctx, repository.UpdateStockInput{
			ProductID: "prod-001",
			VariantID: "variant-001-white",
			Size:      "XXL",
			NewValue:  6,
			ChangedBy: "admin@khit.store",
		})
		require.NoError(t, err)

		p, err = repos.Products.GetByID(ctx, "prod-001")
		require.NoError(t, err)
		variant, _ = p.Variant("variant-001-white")
		assert.Equal(t, 1, countOf(variant.SelectedSizes, "XXL"))
	})

	t.Run("every write records one audit entry", func(t *testing.T) {
		before, err := repos.Inventory.ListAuditLogs(ctx, repository.AuditLogFilter{})
		require.NoError(t, err)

		_, err = repos.Inventory.UpdateStock(ctx, repository.UpdateStockInput{
			ProductID: "prod-002",
			VariantID: "variant-002-black",
			Size:      "M",
			NewValue:  9,
			ChangedBy: "admin@khit.store",
		})
		require.NoError(t, err)

		after, err := repos.Inventory.ListAuditLogs(ctx, repository.AuditLogFilter{})
		require.NoError(t, err)
		assert.Len(t, after, len(before)+1)
	})

	t.Run("unknown product and variant", func(t *testing.T) {
		_, err := repos.Inventory.UpdateStock(ctx, repository.UpdateStockInput{
			ProductID: "prod-404", VariantID: "x", Size: "M",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = repos.Inventory.UpdateStock(ctx, repository.UpdateStockInput{
			ProductID: "prod-001", VariantID: "variant-404", Size: "M",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestInventoryRepo_ListAuditLogs(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	t.Run("filters", func(t *testing.T) {
		logs, err := repos.Inventory.ListAuditLogs(ctx, repository.AuditLogFilter{ProductID: "prod-001"})
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, "log-001", logs[0].ID)

		logs, err = repos.Inventory.ListAuditLogs(ctx, repository.AuditLogFilter{
			ProductID: "prod-002", VariantID: "variant-002-sand", Size: "L",
		})
		require.NoError(t, err)
		assert.Len(t, logs, 1)

		logs, err = repos.Inventory.ListAuditLogs(ctx, repository.AuditLogFilter{Size: "XS"})
		require.NoError(t, err)
		assert.Empty(t, logs)
	})

	t.Run("newest first with limit", func(t *testing.T) {
		logs, err := repos.Inventory.ListAuditLogs(ctx, repository.AuditLogFilter{})
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.True(t, logs[0].ChangedAt.After(logs[1].ChangedAt))

		logs, err = repos.Inventory.ListAuditLogs(ctx, repository.AuditLogFilter{Limit: 1})
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, "log-002", logs[0].ID)
	})
}

func countOf(values []string, wanted string) int {
	n := 0
	for _, v := range values {
		if v == wanted {
			n++
		}
	}
	return n
}
