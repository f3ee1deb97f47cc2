package auth

import (
	"time"

	"github.com/khitstore/khit-backend/internal/authadapter"
	"github.com/khitstore/khit-backend/internal/domain"
)

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken  string      `json:"accessToken"`
	SessionToken string      `json:"sessionToken"` // opaque, stored server-side
	ExpiresAt    time.Time   `json:"expiresAt"`
	User         domain.User `json:"user"`
}

// SessionResult is returned by Session: the live session row with its
// auth user attached.
type SessionResult struct {
	Session authadapter.Record `json:"session"`
	User    authadapter.Record `json:"user"`
}
