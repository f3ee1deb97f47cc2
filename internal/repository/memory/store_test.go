package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/repository"
	"github.com/khitstore/khit-backend/internal/seed"
)

func TestCategoryRepo_List(t *testing.T) {
	snap := seed.NewSnapshot(time.Now())
	snap.Categories[1].IsActive = false // WOMEN
	repos := NewRepositories(NewState(snap))
	ctx := context.Background()

	active, err := repos.Categories.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 5)
	for _, c := range active {
		assert.True(t, c.IsActive)
	}

	all, err := repos.Categories.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 6)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].SortOrder, all[i].SortOrder)
	}
}

func TestSettingsRepo(t *testing.T) {
	t.Run("get falls back to brand contact details", func(t *testing.T) {
		snap := seed.NewSnapshot(time.Now())
		snap.Settings.ContactEmail = ""
		snap.Settings.PickupAddress = ""
		repos := NewRepositories(NewState(snap))

		got, err := repos.Settings.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.Brand.ContactEmail, got.ContactEmail)
		assert.Equal(t, domain.Brand.PickupAddress, got.PickupAddress)
		assert.Equal(t, domain.Brand.ContactPhone, got.ContactPhone)
	})

	t.Run("upsert patches only the provided fields", func(t *testing.T) {
		repos := newRepos(t)
		ctx := context.Background()

		title := "Rainy Season Drop"
		enabled := false
		updated, err := repos.Settings.Upsert(ctx, repository.SettingsInput{
			HeroTitle:         &title,
			SaleBannerEnabled: &enabled,
		})
		require.NoError(t, err)
		assert.Equal(t, "Rainy Season Drop", updated.HeroTitle)
		assert.False(t, updated.SaleBannerEnabled)
		// Untouched fields survive.
		assert.Equal(t, "Shop New Arrivals", updated.HeroCtaLabel)

		got, err := repos.Settings.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Rainy Season Drop", got.HeroTitle)
	})
}

func TestOrderRepo(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	t.Run("list newest first", func(t *testing.T) {
		orders, err := repos.Orders.List(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "ord-002", orders[0].ID)
	})

	t.Run("update status", func(t *testing.T) {
		updated, err := repos.Orders.UpdateStatus(ctx, "ord-001", domain.OrderStatusShipped)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusShipped, updated.Status)

		_, err = repos.Orders.UpdateStatus(ctx, "ord-001", domain.OrderStatus("lost"))
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = repos.Orders.UpdateStatus(ctx, "ord-404", domain.OrderStatusShipped)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("create starts pending", func(t *testing.T) {
		order, err := repos.Orders.Create(ctx, repository.OrderInput{
			OrderNumber:    "ORD-2026-0003",
			CustomerInfo:   domain.CustomerInfo{Name: "Test", Email: "t@example.com", Phone: "+95911111111"},
			Items:          []domain.OrderItem{{ProductID: "prod-001", Quantity: 2, Price: 49000}},
			Subtotal:       98000,
			ShippingFee:    domain.DefaultShippingFee,
			Total:          100500,
			DeliveryMethod: domain.DeliveryShipping,
			PaymentMethod:  "cod",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPending, order.Status)
		assert.NotEmpty(t, order.ID)

		orders, err := repos.Orders.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, order.ID, orders[0].ID)
	})
}

func TestUserRepo_UpsertFromAuth(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	t.Run("existing email is refreshed in place", func(t *testing.T) {
		updated, err := repos.Users.UpsertFromAuth(ctx, repository.UpsertUserInput{
			Email:      "customer@example.com",
			Name:       "May Thu Aung",
			Phone:      "+95900000000",
			Role:       domain.RoleAdmin,
			AuthUserID: "auth-002-new",
		})
		require.NoError(t, err)
		assert.Equal(t, "user-002", updated.ID)
		assert.Equal(t, "May Thu Aung", updated.Name)
		assert.Equal(t, domain.RoleAdmin, updated.Role)
		assert.Equal(t, "auth-002-new", updated.AuthUserID)

		users, err := repos.Users.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("new email creates an active row", func(t *testing.T) {
		created, err := repos.Users.UpsertFromAuth(ctx, repository.UpsertUserInput{
			Email:      "new@example.com",
			Name:       "New User",
			Role:       domain.RoleCustomer,
			AuthUserID: "auth-003",
		})
		require.NoError(t, err)
		assert.True(t, created.IsActive)
		assert.NotEmpty(t, created.ID)

		byAuth, err := repos.Users.GetByAuthUserID(ctx, "auth-003")
		require.NoError(t, err)
		assert.Equal(t, created.ID, byAuth.ID)
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		_, err := repos.Users.UpsertFromAuth(ctx, repository.UpsertUserInput{
			Email: "x@example.com",
			Role:  domain.Role("owner"),
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("lookup misses", func(t *testing.T) {
		_, err := repos.Users.GetByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
