package ports

import (
	"context"
	"time"

	"github.com/altfolio/portfolio-api/internal/core/domain"
)

// UserRepository defines the interface for identity persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail looks up a user by email. Emails are stored lowercased;
	// implementations match case-insensitively.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// CountActiveByIDs returns how many of the given ids reference active
	// users. Used for referential checks on investment owner sets.
	CountActiveByIDs(ctx context.Context, ids []string) (int64, error)
	// UpdateLastLogin stamps the user's last successful authentication.
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
