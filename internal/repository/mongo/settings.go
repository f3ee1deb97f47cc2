package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/repository"
)

// settingsID pins the singleton document.
const settingsID = "store-settings"

// SettingsRepo manages the hosted settings singleton.
type SettingsRepo struct {
	db *mongodrv.Database
}

func (r *SettingsRepo) collection() *mongodrv.Collection {
	return r.db.Collection(collSettings)
}

// Get returns the stored settings, or brand defaults when nothing has been
// written yet.
func (r *SettingsRepo) Get(ctx context.Context) (domain.StoreSettings, error) {
	var settings domain.StoreSettings
	err := r.collection().FindOne(ctx, bson.M{}).Decode(&settings)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return domain.StoreSettings{ID: settingsID, UpdatedAt: time.Now()}.WithBrandDefaults(), nil
	}
	if err != nil {
		return domain.StoreSettings{}, fmt.Errorf("get settings: %w", err)
	}
	return settings.WithBrandDefaults(), nil
}

// Upsert creates the singleton on first write and patches it in place after.
func (r *SettingsRepo) Upsert(ctx context.Context, input repository.SettingsInput) (domain.StoreSettings, error) {
	set := settingsPatch(input)
	set["updatedAt"] = time.Now()

	_, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": settingsID},
		bson.M{"$set": set},
		options.Update().SetUpsert(true))
	if err != nil {
		return domain.StoreSettings{}, fmt.Errorf("upsert settings: %w", err)
	}
	return r.Get(ctx)
}

func settingsPatch(input repository.SettingsInput) bson.M {
	set := bson.M{}
	put := func(key string, value *string) {
		if value != nil {
			set[key] = *value
		}
	}

	put("heroTitle", input.HeroTitle)
	put("heroSubtitle", input.HeroSubtitle)
	put("heroImageUrl", input.HeroImageURL)
	put("heroCtaLabel", input.HeroCtaLabel)
	put("heroCtaLink", input.HeroCtaLink)
	if input.SaleBannerEnabled != nil {
		set["saleBannerEnabled"] = *input.SaleBannerEnabled
	}
	put("saleBannerText", input.SaleBannerText)
	put("saleBannerLink", input.SaleBannerLink)
	put("announcementBar", input.AnnouncementBar)
	put("contactEmail", input.ContactEmail)
	put("contactPhone", input.ContactPhone)
	put("pickupAddress", input.PickupAddress)
	put("pickupHours", input.PickupHours)
	put("socialInstagram", input.SocialInstagram)
	put("socialFacebook", input.SocialFacebook)
	put("socialTiktok", input.SocialTiktok)
	return set
}
