package auth

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/khitstore/khit-backend/internal/authadapter"
	"github.com/khitstore/khit-backend/internal/config"
	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/query"
	"github.com/khitstore/khit-backend/internal/repository"
)

// authStore defines the auth-storage operations needed by the service.
type authStore interface {
	Create(ctx context.Context, model authadapter.Model, data authadapter.Record) (authadapter.Record, error)
	FindOne(ctx context.Context, model authadapter.Model, where []authadapter.Where, selected []string, joins []authadapter.Join) (authadapter.Record, error)
	Delete(ctx context.Context, model authadapter.Model, where []authadapter.Where) error
}

// userRepo defines the store-side user repository interface needed by the service.
type userRepo interface {
	UpsertFromAuth(ctx context.Context, input repository.UpsertUserInput) (domain.User, error)
}

// jwtManager defines the token management interface needed by the service.
type jwtManager interface {
	GenerateAccessToken(userID string, role string) (string, error)
	ValidateAccessToken(token string) (string, string, error)
	GenerateSessionToken() (string, error)
}

// Service implements email/password authentication on top of the
// auth-storage adapter. Every signed-in user also gets a store-side user
// row kept in sync by email.
type Service struct {
	log   *slog.Logger
	store authStore
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
	now   func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	store authStore,
	users userRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		store: store,
		users: users,
		jwt:   jwt,
		cfg:   cfg,
		now:   time.Now,
	}
}

// roleFor maps an email to its store-side role. Addresses on the admin
// list sign in as admins; everyone else is a customer.
func (s *Service) roleFor(email string) domain.Role {
	if slices.Contains(s.cfg.AdminEmailList(), strings.ToLower(email)) {
		return domain.RoleAdmin
	}
	return domain.RoleCustomer
}

// syncStoreUser refreshes the store-side user row for an auth user.
// Role is recomputed on every call so admin-list changes take effect at
// the next sign-in.
func (s *Service) syncStoreUser(ctx context.Context, authUserID, email, name string) (domain.User, error) {
	return s.users.UpsertFromAuth(ctx, repository.UpsertUserInput{
		Email:      email,
		Name:       name,
		Role:       s.roleFor(email),
		AuthUserID: authUserID,
	})
}

// createSession inserts an authSessions row with a fresh opaque token.
func (s *Service) createSession(ctx context.Context, authUserID string) (authadapter.Record, error) {
	token, err := s.jwt.GenerateSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	now := s.now()
	session, err := s.store.Create(ctx, authadapter.ModelSessions, authadapter.Record{
		"token":     token,
		"userId":    authUserID,
		"expiresAt": now.Add(s.cfg.SessionTTL),
		"createdAt": now,
		"updatedAt": now,
	})
	if err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return session, nil
}

// issueTokens builds the AuthResult for a signed-in user: a fresh session
// row plus a short-lived JWT access token.
func (s *Service) issueTokens(ctx context.Context, authUserID string, user domain.User) (*AuthResult, error) {
	session, err := s.createSession(ctx, authUserID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	sessionToken, _ := session["token"].(string)
	expiresAt, _ := session["expiresAt"].(time.Time)

	return &AuthResult{
		AccessToken:  accessToken,
		SessionToken: sessionToken,
		ExpiresAt:    expiresAt,
		User:         user,
	}, nil
}

func whereEq(field string, value any) []authadapter.Where {
	return []authadapter.Where{{Field: field, Operator: query.OpEq, Value: value}}
}
