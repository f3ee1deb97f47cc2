package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/khitstore/khit-backend/internal/authadapter"
	"github.com/khitstore/khit-backend/internal/domain"
)

const providerCredential = "credential"

// Register creates a new user with email + password authentication and
// signs them in. Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.FindOne(ctx, authadapter.ModelUsers, whereEq("email", input.Email), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("auth.Register lookup email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	now := s.now()
	authUser, err := s.store.Create(ctx, authadapter.ModelUsers, authadapter.Record{
		"email":         input.Email,
		"name":          input.Name,
		"emailVerified": false,
		"createdAt":     now,
		"updatedAt":     now,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register create user: %w", err)
	}
	authUserID, _ := authUser["_id"].(string)

	_, err = s.store.Create(ctx, authadapter.ModelAccounts, authadapter.Record{
		"userId":     authUserID,
		"accountId":  authUserID,
		"providerId": providerCredential,
		"password":   string(hash),
		"createdAt":  now,
		"updatedAt":  now,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register create account: %w", err)
	}

	user, err := s.syncStoreUser(ctx, authUserID, input.Email, input.Name)
	if err != nil {
		return nil, fmt.Errorf("auth.Register sync user: %w", err)
	}

	result, err := s.issueTokens(ctx, authUserID, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role.String()))

	return result, nil
}
