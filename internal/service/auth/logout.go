package auth

import (
	"context"
	"fmt"

	"github.com/khitstore/khit-backend/internal/authadapter"
	"github.com/khitstore/khit-backend/internal/domain"
)

// Logout deletes the session row for the given token. Unknown tokens are
// a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrUnauthorized
	}

	if err := s.store.Delete(ctx, authadapter.ModelSessions, whereEq("token", token)); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "session revoked")
	return nil
}

// ValidateToken validates a JWT access token and returns the store-side
// user ID and role. Returns ErrUnauthorized if the token is invalid or
// expired.
func (s *Service) ValidateToken(_ context.Context, token string) (string, string, error) {
	userID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return "", "", domain.ErrUnauthorized
	}
	return userID, role, nil
}
