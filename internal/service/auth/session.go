package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/khitstore/khit-backend/internal/authadapter"
	"github.com/khitstore/khit-backend/internal/domain"
)

// Session resolves an opaque session token to the live session row with
// its auth user joined in. Expired sessions are deleted on sight.
// Returns ErrUnauthorized for unknown or expired tokens.
func (s *Service) Session(ctx context.Context, token string) (*SessionResult, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	row, err := s.store.FindOne(ctx, authadapter.ModelSessions, whereEq("token", token), nil, []authadapter.Join{{
		Model:    authadapter.ModelUsers,
		From:     "userId",
		To:       "_id",
		Relation: authadapter.RelationOneToOne,
	}})
	if err != nil {
		return nil, fmt.Errorf("auth.Session lookup: %w", err)
	}
	if row == nil {
		return nil, domain.ErrUnauthorized
	}

	if expiresAt, ok := row["expiresAt"].(time.Time); ok && !expiresAt.After(s.now()) {
		if err := s.store.Delete(ctx, authadapter.ModelSessions, whereEq("token", token)); err != nil {
			return nil, fmt.Errorf("auth.Session delete expired: %w", err)
		}
		return nil, domain.ErrUnauthorized
	}

	user, _ := row[string(authadapter.ModelUsers)].(authadapter.Record)
	if user == nil {
		// Session row survived its user; treat it as dead.
		return nil, domain.ErrUnauthorized
	}
	delete(row, string(authadapter.ModelUsers))

	return &SessionResult{Session: row, User: user}, nil
}
