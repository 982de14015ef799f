package ports

import (
	"context"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
// Email uniqueness is enforced by the store (unique index).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
