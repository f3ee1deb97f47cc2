// Package repository defines the typed data access contracts shared by the
// in-memory and hosted backends.
package repository

import (
	"context"

	"github.com/khitstore/khit-backend/internal/domain"
)

const (
	// DefaultRelatedLimit caps related-product listings.
	DefaultRelatedLimit = 4
	// DefaultAuditLogLimit caps audit log listings when no limit is given.
	DefaultAuditLogLimit = 50
)

// ProductUpsertInput carries every caller-settable product field. Identity
// and timestamps are owned by the repository.
type ProductUpsertInput struct {
	SKU           string                `json:"sku,omitempty"`
	Name          string                `json:"name"`
	Slug          string                `json:"slug"`
	Description   string                `json:"description"`
	CategoryID    string                `json:"categoryId"`
	BasePrice     float64               `json:"basePrice,omitempty"`
	SalePrice     float64               `json:"salePrice,omitempty"`
	IsFeatured    bool                  `json:"isFeatured"`
	IsPublished   bool                  `json:"isPublished"`
	ColorVariants []domain.ColorVariant `json:"colorVariants"`
}

// UpdateStockInput names one (product, variant, size) cell and its requested
// stock value. NewValue is accepted as a float and normalized on write.
type UpdateStockInput struct {
	ProductID string  `json:"productId"`
	VariantID string  `json:"variantId"`
	Size      string  `json:"size"`
	NewValue  float64 `json:"newValue"`
	ChangedBy string  `json:"changedBy"`
}

// StockUpdate is the result of a stock write: the refreshed inventory row and
// the audit log entry recorded for it.
type StockUpdate struct {
	Row domain.InventoryRow      `json:"row"`
	Log domain.InventoryAuditLog `json:"log"`
}

// AuditLogFilter narrows audit log listings. Empty fields match everything;
// a zero Limit applies DefaultAuditLogLimit.
type AuditLogFilter struct {
	ProductID string `json:"productId,omitempty"`
	VariantID string `json:"variantId,omitempty"`
	Size      string `json:"size,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

// SettingsInput is a partial settings patch; nil fields are left untouched.
type SettingsInput struct {
	HeroTitle         *string `json:"heroTitle,omitempty"`
	HeroSubtitle      *string `json:"heroSubtitle,omitempty"`
	HeroImageURL      *string `json:"heroImageUrl,omitempty"`
	HeroCtaLabel      *string `json:"heroCtaLabel,omitempty"`
	HeroCtaLink       *string `json:"heroCtaLink,omitempty"`
	SaleBannerEnabled *bool   `json:"saleBannerEnabled,omitempty"`
	SaleBannerText    *string `json:"saleBannerText,omitempty"`
	SaleBannerLink    *string `json:"saleBannerLink,omitempty"`
	AnnouncementBar   *string `json:"announcementBar,omitempty"`
	ContactEmail      *string `json:"contactEmail,omitempty"`
	ContactPhone      *string `json:"contactPhone,omitempty"`
	PickupAddress     *string `json:"pickupAddress,omitempty"`
	PickupHours       *string `json:"pickupHours,omitempty"`
	SocialInstagram   *string `json:"socialInstagram,omitempty"`
	SocialFacebook    *string `json:"socialFacebook,omitempty"`
	SocialTiktok      *string `json:"socialTiktok,omitempty"`
}

// UpsertUserInput mirrors a user row from the authentication layer.
type UpsertUserInput struct {
	Email      string      `json:"email"`
	Name       string      `json:"name"`
	Phone      string      `json:"phone,omitempty"`
	Role       domain.Role `json:"role"`
	AuthUserID string      `json:"authUserId"`
}

// OrderInput carries every caller-settable order field.
type OrderInput struct {
	OrderNumber    string                `json:"orderNumber"`
	CustomerID     string                `json:"customerId,omitempty"`
	CustomerInfo   domain.CustomerInfo   `json:"customerInfo"`
	Items          []domain.OrderItem    `json:"items"`
	Subtotal       float64               `json:"subtotal"`
	ShippingFee    float64               `json:"shippingFee"`
	Total          float64               `json:"total"`
	DeliveryMethod domain.DeliveryMethod `json:"deliveryMethod"`
	PaymentMethod  string                `json:"paymentMethod"`
	Notes          string                `json:"notes,omitempty"`
}

// ProductRepository manages the catalog. Listings that serve the storefront
// take publishedOnly; admin paths pass false to see drafts too.
type ProductRepository interface {
	List(ctx context.Context, publishedOnly bool) ([]domain.Product, error)
	ListFeatured(ctx context.Context) ([]domain.Product, error)
	ListByCategorySlug(ctx context.Context, categorySlug string) ([]domain.Product, error)
	ListBySubcategorySlugs(ctx context.Context, categorySlug, subcategorySlug string) ([]domain.Product, error)
	ListRelatedBySlug(ctx context.Context, slug string, limit int) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (domain.Product, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (domain.Product, error)
	Create(ctx context.Context, input ProductUpsertInput) (domain.Product, error)
	Update(ctx context.Context, id string, input ProductUpsertInput) (domain.Product, error)
	SoftDelete(ctx context.Context, id string) error
	Duplicate(ctx context.Context, id string) (domain.Product, error)
	ToggleBulkStatus(ctx context.Context, ids []string, isPublished bool) (int, error)
}

// CategoryRepository lists the category tree ordered by sort order.
type CategoryRepository interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Category, error)
}

// SettingsRepository manages the settings singleton.
type SettingsRepository interface {
	Get(ctx context.Context) (domain.StoreSettings, error)
	Upsert(ctx context.Context, input SettingsInput) (domain.StoreSettings, error)
}

// InventoryRepository serves the flattened stock table and its audit trail.
type InventoryRepository interface {
	ListFlattened(ctx context.Context) ([]domain.InventoryRow, error)
	UpdateStock(ctx context.Context, input UpdateStockInput) (StockUpdate, error)
	ListAuditLogs(ctx context.Context, filter AuditLogFilter) ([]domain.InventoryAuditLog, error)
}

// OrderRepository manages placed orders.
type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (domain.Order, error)
	Create(ctx context.Context, input OrderInput) (domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error)
}

// UserRepository mirrors user rows kept alongside the auth tables.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByAuthUserID(ctx context.Context, authUserID string) (domain.User, error)
	UpsertFromAuth(ctx context.Context, input UpsertUserInput) (domain.User, error)
}

// Repositories bundles every typed repository behind one handle.
type Repositories struct {
	Products   ProductRepository
	Categories CategoryRepository
	Settings   SettingsRepository
	Inventory  InventoryRepository
	Orders     OrderRepository
	Users      UserRepository
}
