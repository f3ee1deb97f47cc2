package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"

	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/internal/repository"
)

// UserRepo manages hosted user rows mirrored from the auth layer.
type UserRepo struct {
	db *mongodrv.Database
}

func (r *UserRepo) collection() *mongodrv.Collection {
	return r.db.Collection(collUsers)
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, bson.M{"email": email}, email)
}

func (r *UserRepo) GetByAuthUserID(ctx context.Context, authUserID string) (domain.User, error) {
	return r.getOne(ctx, bson.M{"authUserId": authUserID}, authUserID)
}

// UpsertFromAuth keys on email: an existing row is refreshed in place, a new
// row is created active.
func (r *UserRepo) UpsertFromAuth(ctx context.Context, input repository.UpsertUserInput) (domain.User, error) {
	if !input.Role.IsValid() {
		return domain.User{}, fmt.Errorf("role %q: %w", input.Role, domain.ErrValidation)
	}

	existing, err := r.GetByEmail(ctx, input.Email)
	if err == nil {
		_, uerr := r.collection().UpdateOne(ctx, bson.M{"_id": existing.ID}, bson.M{
			"$set": bson.M{
				"name":       input.Name,
				"phone":      input.Phone,
				"role":       input.Role,
				"authUserId": input.AuthUserID,
			},
		})
		if uerr != nil {
			return domain.User{}, fmt.Errorf("update user: %w", uerr)
		}
		return r.GetByEmail(ctx, input.Email)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, err
	}

	user := domain.User{
		ID:         uuid.NewString(),
		Email:      input.Email,
		Name:       input.Name,
		Phone:      input.Phone,
		Role:       input.Role,
		AuthUserID: input.AuthUserID,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
	if _, err := r.collection().InsertOne(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepo) getOne(ctx context.Context, filter bson.M, key string) (domain.User, error) {
	var user domain.User
	err := r.collection().FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return domain.User{}, fmt.Errorf("user %q: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
