package rpc

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	authtoken "github.com/khitstore/khit-backend/internal/auth"
	"github.com/khitstore/khit-backend/internal/authadapter"
	"github.com/khitstore/khit-backend/internal/config"
	"github.com/khitstore/khit-backend/internal/data"
	docmem "github.com/khitstore/khit-backend/internal/docstore/memory"
	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/query"
	"github.com/khitstore/khit-backend/internal/repository"
	"github.com/khitstore/khit-backend/internal/repository/memory"
	"github.com/khitstore/khit-backend/internal/seed"
	authsvc "github.com/khitstore/khit-backend/internal/service/auth"
	"github.com/khitstore/khit-backend/internal/transport/middleware"
)

type testServer struct {
	handler http.Handler
	auth    *authsvc.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := config.AuthConfig{
		JWTSecret:      "test-secret-at-least-32-chars-long-for-security",
		JWTIssuer:      "khit-test",
		AccessTokenTTL: 15 * time.Minute,
		SessionTTL:     time.Hour,
		BcryptCost:     bcrypt.MinCost,
		AdminEmails:    "admin@khit.store",
	}

	repos := memory.NewRepositories(memory.NewState(seed.NewSnapshot(time.Now())))
	adapter := authadapter.New(query.NewService(docmem.NewStore()))
	jwt := authtoken.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)
	svc := authsvc.NewService(slog.Default(), adapter, repos.Users, jwt, cfg)

	selection := data.ResolveSource("memory", false)
	breadcrumbs := data.NewBreadcrumbs()
	breadcrumbs.Record(nil, selection)

	mux := NewRouter(Deps{
		Log:         slog.Default(),
		Repos:       repos,
		Adapter:     adapter,
		Sessions:    svc,
		Selection:   selection,
		Breadcrumbs: breadcrumbs,
		Version:     "test",
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Auth(svc),
	)(mux)

	return &testServer{handler: handler, auth: svc}
}

// call posts body to path and decodes the JSON response into out (when
// out is non-nil). Returns the response status code.
func (ts *testServer) call(t *testing.T, path, token string, body, out any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()

	ts.handler.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec.Code
}

func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()
	res, err := ts.auth.Register(t.Context(), authsvc.RegisterInput{
		Email:    "admin@khit.store",
		Password: "correct-horse",
		Name:     "Store Admin",
	})
	require.NoError(t, err)
	return res.AccessToken
}

func TestProductsEndpoints(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)

	t.Run("list", func(t *testing.T) {
		var products []domain.Product
		code := ts.call(t, "/api/products.list", "", nil, &products)
		assert.Equal(t, http.StatusOK, code)
		assert.Len(t, products, 3)
	})

	t.Run("list featured", func(t *testing.T) {
		var products []domain.Product
		code := ts.call(t, "/api/products.list", "", map[string]any{"featured": true}, &products)
		assert.Equal(t, http.StatusOK, code)
		assert.Len(t, products, 3)
	})

	t.Run("list by category", func(t *testing.T) {
		var products []domain.Product
		code := ts.call(t, "/api/products.list", "", map[string]any{"categorySlug": "sale"}, &products)
		assert.Equal(t, http.StatusOK, code)
		for _, p := range products {
			assert.Greater(t, p.BasePrice, p.SalePrice)
		}
	})

	t.Run("drafts require admin", func(t *testing.T) {
		code := ts.call(t, "/api/products.list", "", map[string]any{"includeDrafts": true}, nil)
		assert.Equal(t, http.StatusUnauthorized, code)

		code = ts.call(t, "/api/products.list", admin, map[string]any{"includeDrafts": true}, nil)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("byId miss maps to 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/products.byId", bytes.NewBufferString(`{"id":"prod-999"}`))
		rec := httptest.NewRecorder()
		ts.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		payload, _ := io.ReadAll(rec.Body)
		assert.Contains(t, string(payload), "Product not found.")
	})

	t.Run("bySlug", func(t *testing.T) {
		var product domain.Product
		code := ts.call(t, "/api/products.bySlug", "", map[string]any{"slug": "relaxed-linen-shirt"}, &product)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "prod-001", product.ID)
	})

	t.Run("create requires admin", func(t *testing.T) {
		input := repository.ProductUpsertInput{Name: "Test Tee", CategoryID: "cat-men", BasePrice: 10000}

		code := ts.call(t, "/api/products.create", "", input, nil)
		assert.Equal(t, http.StatusUnauthorized, code)

		var product domain.Product
		code = ts.call(t, "/api/products.create", admin, input, &product)
		assert.Equal(t, http.StatusCreated, code)
		assert.Equal(t, "test-tee", product.Slug)
	})

	t.Run("duplicate and toggle", func(t *testing.T) {
		var dup domain.Product
		code := ts.call(t, "/api/products.duplicate", admin, map[string]any{"id": "prod-001"}, &dup)
		require.Equal(t, http.StatusCreated, code)
		assert.False(t, dup.IsPublished)

		var result map[string]int
		code = ts.call(t, "/api/products.toggleBulkStatus", admin, map[string]any{
			"ids":         []string{dup.ID, "prod-404"},
			"isPublished": true,
		}, &result)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, 1, result["updated"])
	})

	t.Run("categories list", func(t *testing.T) {
		var categories []domain.Category
		code := ts.call(t, "/api/categories.list", "", map[string]any{"activeOnly": true}, &categories)
		assert.Equal(t, http.StatusOK, code)
		assert.Len(t, categories, 6)
	})
}

func TestInventoryEndpoints(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)

	t.Run("requires admin", func(t *testing.T) {
		code := ts.call(t, "/api/inventory.listFlattened", "", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("update stock clamps and records actor", func(t *testing.T) {
		var update repository.StockUpdate
		code := ts.call(t, "/api/inventory.updateStockWithAudit", admin, map[string]any{
			"productId": "prod-001",
			"variantId": "variant-001-navy",
			"size":      "M",
			"newValue":  7.8,
		}, &update)
		require.Equal(t, http.StatusOK, code)

		assert.Equal(t, 7, update.Log.NewValue)
		assert.NotEmpty(t, update.Log.ChangedBy) // defaulted from the token subject

		var logs []domain.InventoryAuditLog
		code = ts.call(t, "/api/inventory.listAuditLogs", admin, map[string]any{"productId": "prod-001"}, &logs)
		assert.Equal(t, http.StatusOK, code)
		require.NotEmpty(t, logs)
		assert.Equal(t, 7, logs[0].NewValue)
	})

	t.Run("unknown variant maps to 404", func(t *testing.T) {
		code := ts.call(t, "/api/inventory.updateStockWithAudit", admin, map[string]any{
			"productId": "prod-001",
			"variantId": "variant-nope",
			"size":      "M",
			"newValue":  1,
		}, nil)
		assert.Equal(t, http.StatusNotFound, code)
	})
}

func TestSettingsEndpoints(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)

	var settings domain.StoreSettings
	code := ts.call(t, "/api/settings.get", "", nil, &settings)
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, settings.ContactEmail)

	code = ts.call(t, "/api/settings.upsert", "", map[string]any{"heroTitle": "x"}, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code = ts.call(t, "/api/settings.upsert", admin, map[string]any{"heroTitle": "Rainy Season Drop"}, &settings)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Rainy Season Drop", settings.HeroTitle)
}

func TestOrdersEndpoints(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)

	t.Run("anonymous checkout", func(t *testing.T) {
		var order domain.Order
		code := ts.call(t, "/api/orders.create", "", repository.OrderInput{
			OrderNumber:    "KHT-1003",
			CustomerInfo:   domain.CustomerInfo{Name: "Aung Aung", Phone: "09-700000001"},
			Items:          []domain.OrderItem{{ProductID: "prod-001", Quantity: 1, Price: 49000}},
			Subtotal:       49000,
			ShippingFee:    2500,
			Total:          51500,
			DeliveryMethod: domain.DeliveryShipping,
			PaymentMethod:  "cod",
		}, &order)
		require.Equal(t, http.StatusCreated, code)
		assert.Equal(t, domain.OrderStatusPending, order.Status)
	})

	t.Run("list and status updates are admin only", func(t *testing.T) {
		code := ts.call(t, "/api/orders.list", "", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, code)

		var orders []domain.Order
		code = ts.call(t, "/api/orders.list", admin, nil, &orders)
		assert.Equal(t, http.StatusOK, code)
		require.NotEmpty(t, orders)

		var updated domain.Order
		code = ts.call(t, "/api/orders.updateStatus", admin, map[string]any{
			"id":     "ord-001",
			"status": "shipped",
		}, &updated)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, domain.OrderStatusShipped, updated.Status)

		code = ts.call(t, "/api/orders.updateStatus", admin, map[string]any{
			"id":     "ord-001",
			"status": "lost",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestSessionEndpoints(t *testing.T) {
	ts := newTestServer(t)

	var registered authsvc.AuthResult
	code := ts.call(t, "/api/session.register", "", map[string]any{
		"email":    "may@khit.store",
		"password": "correct-horse",
		"name":     "May Thu",
	}, &registered)
	require.Equal(t, http.StatusCreated, code)
	assert.NotEmpty(t, registered.SessionToken)

	code = ts.call(t, "/api/session.register", "", map[string]any{
		"email":    "may@khit.store",
		"password": "correct-horse",
		"name":     "May Thu",
	}, nil)
	assert.Equal(t, http.StatusConflict, code)

	var loggedIn authsvc.AuthResult
	code = ts.call(t, "/api/session.login", "", map[string]any{
		"email":    "may@khit.store",
		"password": "correct-horse",
	}, &loggedIn)
	require.Equal(t, http.StatusOK, code)

	var session authsvc.SessionResult
	code = ts.call(t, "/api/session.get", "", map[string]any{"token": loggedIn.SessionToken}, &session)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "may@khit.store", session.User["email"])

	code = ts.call(t, "/api/session.logout", "", map[string]any{"token": loggedIn.SessionToken}, nil)
	assert.Equal(t, http.StatusOK, code)

	code = ts.call(t, "/api/session.get", "", map[string]any{"token": loggedIn.SessionToken}, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code = ts.call(t, "/api/session.login", "", map[string]any{
		"email":    "may@khit.store",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAuthPassthroughEndpoints(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)

	t.Run("admin only", func(t *testing.T) {
		code := ts.call(t, "/api/auth.findMany", "", map[string]any{"model": "authUsers"}, nil)
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("find and count", func(t *testing.T) {
		var rows []map[string]any
		code := ts.call(t, "/api/auth.findMany", admin, map[string]any{"model": "authUsers"}, &rows)
		assert.Equal(t, http.StatusOK, code)
		require.Len(t, rows, 1) // the admin registered in setup
		assert.Equal(t, "admin@khit.store", rows[0]["email"])

		var count map[string]int
		code = ts.call(t, "/api/auth.count", admin, map[string]any{
			"model": "authSessions",
			"where": []map[string]any{{"field": "userId", "operator": "eq", "value": rows[0]["_id"]}},
		}, &count)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, 1, count["count"])
	})

	t.Run("unknown model maps to 400", func(t *testing.T) {
		code := ts.call(t, "/api/auth.findMany", admin, map[string]any{"model": "authPasskeys"}, nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("update then remove", func(t *testing.T) {
		var created map[string]any
		code := ts.call(t, "/api/auth.create", admin, map[string]any{
			"model": "authVerificationTokens",
			"data":  map[string]any{"identifier": "may@khit.store", "value": "tok-1"},
		}, &created)
		require.Equal(t, http.StatusCreated, code)

		var patched map[string]any
		code = ts.call(t, "/api/auth.update", admin, map[string]any{
			"model":  "authVerificationTokens",
			"where":  []map[string]any{{"field": "identifier", "value": "may@khit.store"}},
			"update": map[string]any{"value": "tok-2"},
		}, &patched)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "tok-2", patched["value"])

		var deleted map[string]int
		code = ts.call(t, "/api/auth.removeMany", admin, map[string]any{
			"model": "authVerificationTokens",
			"where": []map[string]any{{"field": "identifier", "value": "may@khit.store"}},
		}, &deleted)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, 1, deleted["deleted"])
	})
}

func TestUsersEndpoints(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.adminToken(t)

	code := ts.call(t, "/api/users.list", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	var users []domain.User
	code = ts.call(t, "/api/users.list", admin, nil, &users)
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, users)

	var user domain.User
	code = ts.call(t, "/api/users.byEmail", admin, map[string]any{"email": "customer@example.com"}, &user)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "user-002", user.ID)

	code = ts.call(t, "/api/users.byEmail", admin, map[string]any{"email": "ghost@example.com"}, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDiagnosticsEndpoints(t *testing.T) {
	ts := newTestServer(t)

	var selection data.Selection
	code := ts.call(t, "/api/data.source", "", nil, &selection)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, data.SourceMemory, selection.Source)

	var trail []data.Selection
	code = ts.call(t, "/api/data.breadcrumbs", "", nil, &trail)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, trail, 1)
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec = httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
