// Package seed provides the starter dataset: the category tree, a small
// shirt catalog, demo users and orders, and the storefront settings. Every
// function returns fresh values, so callers may mutate the results freely.
package seed

import (
	"time"

	"github.com/khitstore/khit-backend/internal/domain"
)

// Snapshot bundles one full copy of the starter dataset.
type Snapshot struct {
	Categories []domain.Category
	Products   []domain.Product
	Users      []domain.User
	Orders     []domain.Order
	Settings   domain.StoreSettings
	AuditLogs  []domain.InventoryAuditLog
}

// NewSnapshot builds the full dataset stamped at now.
func NewSnapshot(now time.Time) Snapshot {
	return Snapshot{
		Categories: Categories(now),
		Products:   Products(now),
		Users:      Users(now),
		Orders:     Orders(now),
		Settings:   Settings(now),
		AuditLogs:  AuditLogs(now),
	}
}

func Categories(now time.Time) []domain.Category {
	return []domain.Category{
		{ID: "cat-men", Name: "MEN", Slug: "men", SortOrder: 1, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "cat-women", Name: "WOMEN", Slug: "women", SortOrder: 2, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "cat-new", Name: "NEW", Slug: "new", SortOrder: 3, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "cat-sale", Name: "SALE", Slug: "sale", SortOrder: 4, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "cat-men-shirts", Name: "Shirts", Slug: "shirts", ParentID: "cat-men", SortOrder: 1, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "cat-women-shirts", Name: "Shirts", Slug: "shirts", ParentID: "cat-women", SortOrder: 1, IsActive: true, CreatedAt: now, UpdatedAt: now},
	}
}

func Products(now time.Time) []domain.Product {
	return []domain.Product{
		{
			ID:          "prod-001",
			SKU:         "KHT-MEN-001",
			Name:        "Relaxed Linen Shirt",
			Slug:        "relaxed-linen-shirt",
			Description: "A breathable linen shirt tailored for Yangon weather.",
			CategoryID:  "cat-men-shirts",
			BasePrice:   56000,
			SalePrice:   49000,
			IsFeatured:  true,
			IsPublished: true,
			ColorVariants: []domain.ColorVariant{
				{
					ID:            "variant-001-navy",
					ColorName:     "Navy Blue",
					ColorHex:      "#001F3F",
					Images:        []string{"/products/linen-navy-1.jpg", "/products/linen-navy-2.jpg"},
					SelectedSizes: []string{"S", "M", "L", "XL"},
					Stock:         map[string]int{"S": 8, "M": 14, "L": 11, "XL": 4},
				},
				{
					ID:            "variant-001-white",
					ColorName:     "White",
					ColorHex:      "#F6F6F6",
					Images:        []string{"/products/linen-white-1.jpg", "/products/linen-white-2.jpg"},
					SelectedSizes: []string{"S", "M", "L"},
					Stock:         map[string]int{"S": 7, "M": 9, "L": 3},
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "prod-002",
			SKU:         "KHT-WMN-001",
			Name:        "Structured Cotton Shirt",
			Slug:        "structured-cotton-shirt",
			Description: "Clean lines with a crisp cotton finish for daily wear.",
			CategoryID:  "cat-women-shirts",
			BasePrice:   52000,
			IsFeatured:  true,
			IsPublished: true,
			ColorVariants: []domain.ColorVariant{
				{
					ID:            "variant-002-black",
					ColorName:     "Black",
					ColorHex:      "#111111",
					Images:        []string{"/products/cotton-black-1.jpg", "/products/cotton-black-2.jpg"},
					SelectedSizes: []string{"XS", "S", "M", "L"},
					Stock:         map[string]int{"XS": 5, "S": 8, "M": 6, "L": 2},
				},
				{
					ID:            "variant-002-sand",
					ColorName:     "Sand",
					ColorHex:      "#D6C7A1",
					Images:        []string{"/products/cotton-sand-1.jpg", "/products/cotton-sand-2.jpg"},
					SelectedSizes: []string{"XS", "S", "M", "L"},
					Stock:         map[string]int{"XS": 2, "S": 5, "M": 4, "L": 0},
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "prod-003",
			SKU:         "KHT-NEW-001",
			Name:        "Oversized Oxford Shirt",
			Slug:        "oversized-oxford-shirt",
			Description: "Modern oversized silhouette with soft oxford fabric.",
			CategoryID:  "cat-new",
			BasePrice:   61000,
			SalePrice:   55000,
			IsFeatured:  true,
			IsPublished: true,
			ColorVariants: []domain.ColorVariant{
				{
					ID:            "variant-003-sky",
					ColorName:     "Sky Blue",
					ColorHex:      "#87CEEB",
					Images:        []string{"/products/oxford-sky-1.jpg", "/products/oxford-sky-2.jpg"},
					SelectedSizes: []string{"S", "M", "L", "XL"},
					Stock:         map[string]int{"S": 10, "M": 13, "L": 5, "XL": 2},
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func Users(now time.Time) []domain.User {
	return []domain.User{
		{
			ID:         "user-001",
			Email:      domain.Brand.ContactEmail,
			Name:       "Zwe Aung Naing",
			Phone:      domain.Brand.ContactPhone,
			Role:       domain.RoleAdmin,
			AuthUserID: "auth-001",
			IsActive:   true,
			CreatedAt:  now,
		},
		{
			ID:         "user-002",
			Email:      "customer@example.com",
			Name:       "May Thu",
			Phone:      "+95912345678",
			Role:       domain.RoleCustomer,
			AuthUserID: "auth-002",
			IsActive:   true,
			CreatedAt:  now,
		},
	}
}

func Orders(now time.Time) []domain.Order {
	return []domain.Order{
		{
			ID:          "ord-001",
			OrderNumber: "ORD-2026-0001",
			CustomerID:  "user-002",
			CustomerInfo: domain.CustomerInfo{
				Name:    "May Thu",
				Email:   "customer@example.com",
				Phone:   "+95912345678",
				Address: "Yankin Township, Yangon",
			},
			Items: []domain.OrderItem{
				{
					ProductID:      "prod-001",
					ColorVariantID: "variant-001-navy",
					Name:           "Relaxed Linen Shirt",
					Size:           "M",
					Color:          "Navy Blue",
					Quantity:       1,
					Price:          49000,
				},
			},
			Subtotal:       49000,
			ShippingFee:    domain.DefaultShippingFee,
			Total:          51500,
			DeliveryMethod: domain.DeliveryShipping,
			PaymentMethod:  "cod",
			Status:         domain.OrderStatusPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:          "ord-002",
			OrderNumber: "ORD-2026-0002",
			CustomerInfo: domain.CustomerInfo{
				Name:  "Aung Min",
				Email: "guest@example.com",
				Phone: "+95987654321",
			},
			Items: []domain.OrderItem{
				{
					ProductID:      "prod-003",
					ColorVariantID: "variant-003-sky",
					Name:           "Oversized Oxford Shirt",
					Size:           "L",
					Color:          "Sky Blue",
					Quantity:       1,
					Price:          55000,
				},
			},
			Subtotal:       55000,
			ShippingFee:    0,
			Total:          55000,
			DeliveryMethod: domain.DeliveryPickup,
			PaymentMethod:  "cod",
			Status:         domain.OrderStatusConfirmed,
			Notes:          "Pickup after office hours if possible",
			CreatedAt:      now.Add(time.Minute),
			UpdatedAt:      now.Add(time.Minute),
		},
	}
}

func Settings(now time.Time) domain.StoreSettings {
	return domain.StoreSettings{
		ID:                 "store-settings",
		HeroTitle:          "Modern Local Shirts for Everyday Yangon",
		HeroSubtitle:       "Minimal silhouettes. Local quality. COD available nationwide.",
		HeroImageURL:       "/hero/khit-hero.jpg",
		HeroCtaLabel:       "Shop New Arrivals",
		HeroCtaLink:        "/new",
		SaleBannerEnabled:  true,
		SaleBannerText:     "Mid-season sale up to 20% off selected shirts",
		SaleBannerLink:     "/sale",
		AnnouncementBar:    "Free store pickup for all orders in Yangon.",
		ContactEmail:       domain.Brand.ContactEmail,
		ContactPhone:       domain.Brand.ContactPhone,
		PickupAddress:      domain.Brand.PickupAddress,
		PickupHours:        domain.Brand.PickupHours,
		SocialInstagram:    "https://instagram.com/khit.mm",
		SocialFacebook:     "https://facebook.com/khit.mm",
		SocialTiktok:       "https://tiktok.com/@khit.mm",
		FeaturedProductIDs: []string{"prod-001", "prod-002", "prod-003"},
		UpdatedAt:          now,
	}
}

func AuditLogs(now time.Time) []domain.InventoryAuditLog {
	return []domain.InventoryAuditLog{
		{
			ID:        "log-001",
			ProductID: "prod-001",
			VariantID: "variant-001-navy",
			Size:      "M",
			OldValue:  12,
			NewValue:  14,
			ChangedBy: domain.Brand.ContactEmail,
			ChangedAt: now.Add(-4 * time.Hour),
		},
		{
			ID:        "log-002",
			ProductID: "prod-002",
			VariantID: "variant-002-sand",
			Size:      "L",
			OldValue:  1,
			NewValue:  0,
			ChangedBy: domain.Brand.ContactEmail,
			ChangedAt: now.Add(-80 * time.Minute),
		},
	}
}
