package rpc

import (
	"log/slog"
	"net/http"

	"github.com/khitstore/khit-backend/internal/data"
	"github.com/khitstore/khit-backend/internal/repository"
)

// Deps bundles everything the RPC surface needs.
type Deps struct {
	Log         *slog.Logger
	Repos       repository.Repositories
	Adapter     adapterAPI
	Sessions    sessionService
	Selection   data.Selection
	Breadcrumbs *data.Breadcrumbs
	Pinger      dbPinger // nil when the memory backend is active
	Version     string
}

// NewRouter registers every operation endpoint plus the health probes and
// returns the bare mux. Middleware is layered on by the caller.
func NewRouter(deps Deps) *http.ServeMux {
	mux := http.NewServeMux()

	products := &productsHandler{repos: deps.Repos, log: deps.Log.With("handler", "products")}
	mux.HandleFunc("POST /api/products.list", products.list)
	mux.HandleFunc("POST /api/products.byId", products.byID)
	mux.HandleFunc("POST /api/products.bySlug", products.bySlug)
	mux.HandleFunc("POST /api/products.create", products.create)
	mux.HandleFunc("POST /api/products.update", products.update)
	mux.HandleFunc("POST /api/products.softDelete", products.softDelete)
	mux.HandleFunc("POST /api/products.duplicate", products.duplicate)
	mux.HandleFunc("POST /api/products.toggleBulkStatus", products.toggleBulkStatus)
	mux.HandleFunc("POST /api/categories.list", products.listCategories)

	inventory := &inventoryHandler{repos: deps.Repos, log: deps.Log.With("handler", "inventory")}
	mux.HandleFunc("POST /api/inventory.listFlattened", inventory.listFlattened)
	mux.HandleFunc("POST /api/inventory.updateStockWithAudit", inventory.updateStock)
	mux.HandleFunc("POST /api/inventory.listAuditLogs", inventory.listAuditLogs)

	settings := &settingsHandler{repos: deps.Repos, log: deps.Log.With("handler", "settings")}
	mux.HandleFunc("POST /api/settings.get", settings.get)
	mux.HandleFunc("POST /api/settings.upsert", settings.upsert)

	orders := &ordersHandler{repos: deps.Repos, log: deps.Log.With("handler", "orders")}
	mux.HandleFunc("POST /api/orders.list", orders.list)
	mux.HandleFunc("POST /api/orders.detail", orders.detail)
	mux.HandleFunc("POST /api/orders.create", orders.create)
	mux.HandleFunc("POST /api/orders.updateStatus", orders.updateStatus)

	users := &usersHandler{repos: deps.Repos, log: deps.Log.With("handler", "users")}
	mux.HandleFunc("POST /api/users.list", users.list)
	mux.HandleFunc("POST /api/users.byEmail", users.byEmail)
	mux.HandleFunc("POST /api/users.upsertFromAuth", users.upsertFromAuth)

	authH := &authHandler{adapter: deps.Adapter, log: deps.Log.With("handler", "auth")}
	mux.HandleFunc("POST /api/auth.create", authH.create)
	mux.HandleFunc("POST /api/auth.findOne", authH.findOne)
	mux.HandleFunc("POST /api/auth.findMany", authH.findMany)
	mux.HandleFunc("POST /api/auth.count", authH.count)
	mux.HandleFunc("POST /api/auth.update", authH.update)
	mux.HandleFunc("POST /api/auth.updateMany", authH.updateMany)
	mux.HandleFunc("POST /api/auth.remove", authH.remove)
	mux.HandleFunc("POST /api/auth.removeMany", authH.removeMany)

	session := &sessionHandler{svc: deps.Sessions, log: deps.Log.With("handler", "session")}
	mux.HandleFunc("POST /api/session.register", session.register)
	mux.HandleFunc("POST /api/session.login", session.login)
	mux.HandleFunc("POST /api/session.get", session.get)
	mux.HandleFunc("POST /api/session.logout", session.logout)

	source := &sourceHandler{selection: deps.Selection, breadcrumbs: deps.Breadcrumbs}
	mux.HandleFunc("POST /api/data.source", source.current)
	mux.HandleFunc("POST /api/data.breadcrumbs", source.trail)

	health := &healthHandler{db: deps.Pinger, version: deps.Version}
	mux.HandleFunc("GET /health", health.health)
	mux.HandleFunc("GET /health/live", health.live)
	mux.HandleFunc("GET /health/ready", health.ready)

	return mux
}
