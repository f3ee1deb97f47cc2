package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/repository"
)

// UserRepo manages in-memory user rows mirrored from the auth layer.
type UserRepo struct {
	state *State
}

func (r *UserRepo) List(_ context.Context) ([]domain.User, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	out := make([]domain.User, len(r.state.users))
	copy(out, r.state.users)
	return out, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for _, u := range r.state.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
}

func (r *UserRepo) GetByAuthUserID(_ context.Context, authUserID string) (domain.User, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for _, u := range r.state.users {
		if u.AuthUserID == authUserID {
			return u, nil
		}
	}
	return domain.User{}, fmt.Errorf("auth user %q: %w", authUserID, domain.ErrNotFound)
}

// UpsertFromAuth keys on email: an existing row is refreshed in place, a new
// row is created active.
func (r *UserRepo) UpsertFromAuth(_ context.Context, input repository.UpsertUserInput) (domain.User, error) {
	if !input.Role.IsValid() {
		return domain.User{}, fmt.Errorf("role %q: %w", input.Role, domain.ErrValidation)
	}

	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	for i := range r.state.users {
		if r.state.users[i].Email != input.Email {
			continue
		}
		r.state.users[i].Name = input.Name
		r.state.users[i].Phone = input.Phone
		r.state.users[i].Role = input.Role
		r.state.users[i].AuthUserID = input.AuthUserID
		return r.state.users[i], nil
	}

	user := domain.User{
		ID:         "user-" + domain.RandomSuffix(),
		Email:      input.Email,
		Name:       input.Name,
		Phone:      input.Phone,
		Role:       input.Role,
		AuthUserID: input.AuthUserID,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
	r.state.users = append(r.state.users, user)
	return user, nil
}
