package ports

import (
	"context"

	"github.com/spoonstory/podcast-platform/internal/core/domain"
)

// RegisterInput carries the registration payload after transport decoding.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	// Role defaults to LISTENER when empty.
	Role string
}

// AuthService implements account registration and login.
type AuthService interface {
	// Register creates an account and returns it with a signed token.
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	// Login verifies credentials and returns a signed token with the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
