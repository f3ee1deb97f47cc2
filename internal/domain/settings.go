package domain

import "time"

// StoreSettings is the storefront display configuration. Conceptually a
// singleton: created on first write, thereafter always patched in place.
type StoreSettings struct {
	ID                 string    `json:"_id"                          bson:"_id"`
	HeroTitle          string    `json:"heroTitle,omitempty"          bson:"heroTitle,omitempty"`
	HeroSubtitle       string    `json:"heroSubtitle,omitempty"       bson:"heroSubtitle,omitempty"`
	HeroImageURL       string    `json:"heroImageUrl,omitempty"       bson:"heroImageUrl,omitempty"`
	HeroCtaLabel       string    `json:"heroCtaLabel,omitempty"       bson:"heroCtaLabel,omitempty"`
	HeroCtaLink        string    `json:"heroCtaLink,omitempty"        bson:"heroCtaLink,omitempty"`
	SaleBannerEnabled  bool      `json:"saleBannerEnabled,omitempty"  bson:"saleBannerEnabled,omitempty"`
	SaleBannerText     string    `json:"saleBannerText,omitempty"     bson:"saleBannerText,omitempty"`
	SaleBannerLink     string    `json:"saleBannerLink,omitempty"     bson:"saleBannerLink,omitempty"`
	AnnouncementBar    string    `json:"announcementBar,omitempty"    bson:"announcementBar,omitempty"`
	ContactEmail       string    `json:"contactEmail,omitempty"       bson:"contactEmail,omitempty"`
	ContactPhone       string    `json:"contactPhone,omitempty"       bson:"contactPhone,omitempty"`
	PickupAddress      string    `json:"pickupAddress,omitempty"      bson:"pickupAddress,omitempty"`
	PickupHours        string    `json:"pickupHours,omitempty"        bson:"pickupHours,omitempty"`
	SocialInstagram    string    `json:"socialInstagram,omitempty"    bson:"socialInstagram,omitempty"`
	SocialFacebook     string    `json:"socialFacebook,omitempty"     bson:"socialFacebook,omitempty"`
	SocialTiktok       string    `json:"socialTiktok,omitempty"       bson:"socialTiktok,omitempty"`
	FeaturedProductIDs []string  `json:"featuredProductIds,omitempty" bson:"featuredProductIds,omitempty"`
	UpdatedAt          time.Time `json:"updatedAt"                    bson:"updatedAt"`
}

// WithBrandDefaults fills unset contact fields with the brand constants.
func (s StoreSettings) WithBrandDefaults() StoreSettings {
	if s.ContactEmail == "" {
		s.ContactEmail = Brand.ContactEmail
	}
	if s.ContactPhone == "" {
		s.ContactPhone = Brand.ContactPhone
	}
	if s.PickupAddress == "" {
		s.PickupAddress = Brand.PickupAddress
	}
	if s.PickupHours == "" {
		s.PickupHours = Brand.PickupHours
	}
	return s
}
