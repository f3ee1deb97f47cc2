package auth

import (
	"context"
	"sync"

	"github.com/khitstore/khit-backend/internal/repository"

	"github.com/khitstore/khit-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	UpsertFromAuthFunc func(ctx context.Context, input repository.UpsertUserInput) (domain.User, error)

	calls struct {
		UpsertFromAuth []struct {
			Ctx   context.Context
			Input repository.UpsertUserInput
		}
	}
	lockUpsertFromAuth sync.RWMutex
}

func (mock *userRepoMock) UpsertFromAuth(ctx context.Context, input repository.UpsertUserInput) (domain.User, error) {
	if mock.UpsertFromAuthFunc == nil {
		panic("userRepoMock.UpsertFromAuthFunc: method is nil but userRepo.UpsertFromAuth was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input repository.UpsertUserInput
	}{Ctx: ctx, Input: input}
	mock.lockUpsertFromAuth.Lock()
	mock.calls.UpsertFromAuth = append(mock.calls.UpsertFromAuth, callInfo)
	mock.lockUpsertFromAuth.Unlock()
	return mock.UpsertFromAuthFunc(ctx, input)
}

func (mock *userRepoMock) UpsertFromAuthCalls() []struct {
	Ctx   context.Context
	Input repository.UpsertUserInput
} {
	mock.lockUpsertFromAuth.RLock()
	calls := mock.calls.UpsertFromAuth
	mock.lockUpsertFromAuth.RUnlock()
	return calls
}
