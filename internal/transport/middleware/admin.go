package middleware

import (
	"context"

	"github.com/khitstore/khit-backend/internal/domain"
	"github.com/khitstore/khit-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrUnauthorized if the context user is not
// an admin. Use inside handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrUnauthorized
	}
	return nil
}
