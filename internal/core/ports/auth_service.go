package ports

import (
	"context"

	"github.com/altfolio/portfolio-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, name, role string) (*domain.User, error)
	// Login verifies credentials and returns a signed session token plus the
	// authenticated user. Deactivated accounts are rejected.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
