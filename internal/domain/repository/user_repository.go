package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// UserFilter narrows the paginated user listing. Page is 1-indexed.
type UserFilter struct {
	Role  entity.Role
	Page  int
	Limit int
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindPaginated(ctx context.Context, filter UserFilter) ([]entity.User, int64, error)
	Update(ctx context.Context, user *entity.User) error
}
