package usecase

import (
	"context"

	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// The authenticated identity is placed in the request context by the auth
// middleware; these wrappers keep the context-key plumbing out of the
// business rules.

func getUserID(ctx context.Context) (uuid.UUID, bool) {
	return middleware.GetUserIDFromContext(ctx)
}

func getRole(ctx context.Context) (entity.Role, bool) {
	return middleware.GetRoleFromContext(ctx)
}
