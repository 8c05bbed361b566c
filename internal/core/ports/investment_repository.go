package ports

import (
	"context"

	"github.com/altfolio/portfolio-api/internal/core/domain"
)

// InvestmentRepository defines persistence operations for investments.
// All writes are single-document; concurrent updates are last-write-wins.
type InvestmentRepository interface {
	Create(ctx context.Context, inv *domain.Investment) error
	// FindByID retrieves an investment regardless of its soft-delete state,
	// so inactive records stay addressable for audit.
	FindByID(ctx context.Context, id string) (*domain.Investment, error)
	// Update replaces the stored document with inv (matched by id).
	Update(ctx context.Context, inv *domain.Investment) error
	// ListActive returns active investments ordered by investment date
	// descending. When ownerID is non-empty the result is scoped to
	// investments co-owned by that user (viewer visibility); empty means no
	// owner filter (admin).
	ListActive(ctx context.Context, ownerID string) ([]*domain.Investment, error)
}
