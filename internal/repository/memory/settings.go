package memory

import (
	"context"
	"time"

	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/repository"
)

// SettingsRepo manages the in-memory settings singleton.
type SettingsRepo struct {
	state *State
}

func (r *SettingsRepo) Get(_ context.Context) (domain.StoreSettings, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return cloneSettings(r.state.settings).WithBrandDefaults(), nil
}

func (r *SettingsRepo) Upsert(_ context.Context, input repository.SettingsInput) (domain.StoreSettings, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	applySettingsInput(&r.state.settings, input)
	r.state.settings.UpdatedAt = time.Now()
	return cloneSettings(r.state.settings).WithBrandDefaults(), nil
}

func applySettingsInput(s *domain.StoreSettings, input repository.SettingsInput) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&s.HeroTitle, input.HeroTitle)
	setString(&s.HeroSubtitle, input.HeroSubtitle)
	setString(&s.HeroImageURL, input.HeroImageURL)
	setString(&s.HeroCtaLabel, input.HeroCtaLabel)
	setString(&s.HeroCtaLink, input.HeroCtaLink)
	if input.SaleBannerEnabled != nil {
		s.SaleBannerEnabled = *input.SaleBannerEnabled
	}
	setString(&s.SaleBannerText, input.SaleBannerText)
	setString(&s.SaleBannerLink, input.SaleBannerLink)
	setString(&s.AnnouncementBar, input.AnnouncementBar)
	setString(&s.ContactEmail, input.ContactEmail)
	setString(&s.ContactPhone, input.ContactPhone)
	setString(&s.PickupAddress, input.PickupAddress)
	setString(&s.PickupHours, input.PickupHours)
	setString(&s.SocialInstagram, input.SocialInstagram)
	setString(&s.SocialFacebook, input.SocialFacebook)
	setString(&s.SocialTiktok, input.SocialTiktok)
}
