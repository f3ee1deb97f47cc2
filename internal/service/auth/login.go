package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/khitstore/khit-backend/internal/authadapter"
	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/query"
)

// Login authenticates a user with email + password.
// Returns ErrUnauthorized if the email is unknown, the user has no
// credential account, or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	authUser, err := s.store.FindOne(ctx, authadapter.ModelUsers, whereEq("email", input.Email), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("auth.Login lookup user: %w", err)
	}
	if authUser == nil {
		return nil, domain.ErrUnauthorized
	}
	authUserID, _ := authUser["_id"].(string)

	account, err := s.store.FindOne(ctx, authadapter.ModelAccounts, []authadapter.Where{
		{Field: "userId", Operator: query.OpEq, Value: authUserID},
		{Field: "providerId", Operator: query.OpEq, Value: providerCredential},
	}, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("auth.Login lookup account: %w", err)
	}
	if account == nil {
		return nil, domain.ErrUnauthorized
	}

	hash, _ := account["password"].(string)
	if hash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	name, _ := authUser["name"].(string)
	user, err := s.syncStoreUser(ctx, authUserID, input.Email, name)
	if err != nil {
		return nil, fmt.Errorf("auth.Login sync user: %w", err)
	}

	result, err := s.issueTokens(ctx, authUserID, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID))

	return result, nil
}
