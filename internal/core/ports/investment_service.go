package ports

import (
	"context"
	"time"

	"github.com/altfolio/portfolio-api/internal/core/analytics"
	"github.com/altfolio/portfolio-api/internal/core/domain"
)

// CreateInvestmentInput carries all data needed to record a new holding.
type CreateInvestmentInput struct {
	AssetName      string
	AssetType      string
	InvestedAmount float64
	CurrentValue   float64
	InvestmentDate time.Time
	Owners         []string
	Description    string
	Notes          string
}

// UpdateInvestmentInput carries a partial update; nil fields keep the
// stored value. The merged record is re-validated against all create-time
// invariants before persisting.
type UpdateInvestmentInput struct {
	AssetName      *string
	AssetType      *string
	InvestedAmount *float64
	CurrentValue   *float64
	InvestmentDate *time.Time
	Owners         []string // nil = unchanged; empty slice fails validation
	Description    *string
	Notes          *string
}

// InvestmentDetail pairs a stored investment with its derived metrics.
type InvestmentDetail struct {
	Investment *domain.Investment
	Metrics    analytics.InvestmentMetrics
}

// PortfolioView is returned by PortfolioSummary: portfolio-wide totals plus
// the per-asset-type allocation, both computed over the actor's
// visible-active set.
type PortfolioView struct {
	Summary    analytics.PortfolioSummary
	Allocation []analytics.TypeAllocation
}

// SimulatedHolding is one investment under a what-if market perturbation.
type SimulatedHolding struct {
	ID             string
	AssetName      string
	AssetType      domain.AssetType
	CurrentValue   float64
	SimulatedValue float64
}

// SimulationView is the cosmetic what-if portfolio view. Nothing in it is
// persisted.
type SimulationView struct {
	Holdings []SimulatedHolding
	Summary  analytics.PortfolioSummary
}

// InvestmentService defines the use-case operations over investments. Every
// method takes the acting user and enforces the access policy before
// touching data.
type InvestmentService interface {
	List(ctx context.Context, actor *domain.User) ([]InvestmentDetail, error)
	Get(ctx context.Context, actor *domain.User, id string) (*InvestmentDetail, error)
	Create(ctx context.Context, actor *domain.User, input CreateInvestmentInput) (*InvestmentDetail, error)
	Update(ctx context.Context, actor *domain.User, id string, input UpdateInvestmentInput) (*InvestmentDetail, error)
	SoftDelete(ctx context.Context, actor *domain.User, id string) error
	PortfolioSummary(ctx context.Context, actor *domain.User) (*PortfolioView, error)
	Simulate(ctx context.Context, actor *domain.User) (*SimulationView, error)
}
