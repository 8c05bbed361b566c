package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/altfolio/portfolio-api/internal/core/analytics"
	"github.com/altfolio/portfolio-api/internal/core/domain"
	"github.com/altfolio/portfolio-api/internal/core/policy"
	"github.com/altfolio/portfolio-api/internal/core/ports"
)

// SummaryCache abstracts the portfolio-summary cache (Redis). Cache failures
// are never fatal: every method error is logged and the request proceeds
// against the store.
type SummaryCache interface {
	Get(ctx context.Context, userID string) (*ports.PortfolioView, bool, error)
	Set(ctx context.Context, userID string, view *ports.PortfolioView) error
	Invalidate(ctx context.Context, userIDs []string) error
}

// InvestmentService orchestrates validation, access policy and persistence
// for investment operations.
type InvestmentService struct {
	repo   ports.InvestmentRepository
	users  ports.UserRepository
	cache  SummaryCache
	sim    *Simulator
	logger zerolog.Logger
}

func NewInvestmentService(
	repo ports.InvestmentRepository,
	users ports.UserRepository,
	cache SummaryCache,
	sim *Simulator,
	logger zerolog.Logger,
) *InvestmentService {
	return &InvestmentService{repo: repo, users: users, cache: cache, sim: sim, logger: logger}
}

// ownerScope translates the actor into the repository owner filter: admins
// see everything (no filter), viewers only their co-owned investments.
func ownerScope(actor *domain.User) string {
	if actor.IsAdmin() {
		return ""
	}
	return actor.ID
}

// List returns the actor's visible active investments ordered by investment
// date descending, each with derived metrics attached.
func (s *InvestmentService) List(ctx context.Context, actor *domain.User) ([]ports.InvestmentDetail, error) {
	invs, err := s.repo.ListActive(ctx, ownerScope(actor))
	if err != nil {
		return nil, err
	}

	details := make([]ports.InvestmentDetail, 0, len(invs))
	for _, inv := range invs {
		details = append(details, ports.InvestmentDetail{Investment: inv, Metrics: analytics.Metrics(inv)})
	}
	return details, nil
}

// Get retrieves a single investment by id. Existence is checked before
// authorization, so a truly absent id yields NotFound for every actor while
// an existing but non-visible record yields Forbidden. Soft-deleted records
// are returned (audit path) with IsActive=false.
func (s *InvestmentService) Get(ctx context.Context, actor *domain.User, id string) (*ports.InvestmentDetail, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanRead(actor, inv) {
		return nil, domain.ErrForbidden
	}
	return &ports.InvestmentDetail{Investment: inv, Metrics: analytics.Metrics(inv)}, nil
}

// Create validates, authorizes and persists a new investment. All field
// violations are collected into one ValidationError before any store access.
func (s *InvestmentService) Create(ctx context.Context, actor *domain.User, input ports.CreateInvestmentInput) (*ports.InvestmentDetail, error) {
	now := time.Now().UTC()
	inv := &domain.Investment{
		ID:             uuid.NewString(),
		AssetName:      input.AssetName,
		AssetType:      domain.AssetType(input.AssetType),
		InvestedAmount: input.InvestedAmount,
		CurrentValue:   input.CurrentValue,
		InvestmentDate: input.InvestmentDate,
		Owners:         dedupeOwners(input.Owners),
		Description:    input.Description,
		Notes:          input.Notes,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := inv.Validate(); err != nil {
		return nil, err
	}
	if err := s.resolveOwners(ctx, inv.Owners); err != nil {
		return nil, err
	}
	if err := policy.CheckOwners(actor, inv.Owners, false); err != nil {
		return nil, err
	}
	if err := policy.CheckInvestmentCap(actor, inv.InvestedAmount); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		s.logger.Error().Err(err).Msg("failed to create investment")
		return nil, err
	}

	s.invalidateSummaries(ctx, inv.Owners)
	s.logger.Info().
		Str("investment_id", inv.ID).
		Str("asset_type", string(inv.AssetType)).
		Str("actor_id", actor.ID).
		Msg("investment created")

	return &ports.InvestmentDetail{Investment: inv, Metrics: analytics.Metrics(inv)}, nil
}

// Update merges the partial input into the stored record, re-validates the
// full result against all create-time invariants and persists it. Updates
// targeting a soft-deleted investment are rejected — there is no silent
// reactivation.
func (s *InvestmentService) Update(ctx context.Context, actor *domain.User, id string, input ports.UpdateInvestmentInput) (*ports.InvestmentDetail, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !inv.IsActive {
		return nil, domain.ErrInvestmentInactive
	}
	if !policy.CanModify(actor, inv) {
		return nil, domain.ErrForbidden
	}

	previousOwners := inv.Owners
	merge(inv, input)

	if err := inv.Validate(); err != nil {
		return nil, err
	}
	if input.Owners != nil {
		if err := s.resolveOwners(ctx, inv.Owners); err != nil {
			return nil, err
		}
	}
	// The owner rule applies to the merged set regardless of whether owners
	// changed: a non-admin may never end up outside the owner list.
	if err := policy.CheckOwners(actor, inv.Owners, true); err != nil {
		return nil, err
	}
	if err := policy.CheckInvestmentCap(actor, inv.InvestedAmount); err != nil {
		return nil, err
	}

	inv.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, inv); err != nil {
		s.logger.Error().Err(err).Str("investment_id", id).Msg("failed to update investment")
		return nil, err
	}

	s.invalidateSummaries(ctx, unionOwners(previousOwners, inv.Owners))
	s.logger.Info().Str("investment_id", id).Str("actor_id", actor.ID).Msg("investment updated")

	return &ports.InvestmentDetail{Investment: inv, Metrics: analytics.Metrics(inv)}, nil
}

// SoftDelete marks an investment inactive. The record stays addressable by
// id but disappears from listings and aggregation. Deleting an already
// deleted investment is rejected.
func (s *InvestmentService) SoftDelete(ctx context.Context, actor *domain.User, id string) error {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !inv.IsActive {
		return domain.ErrInvestmentInactive
	}
	if !policy.CanModify(actor, inv) {
		return domain.ErrForbidden
	}

	inv.IsActive = false
	inv.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, inv); err != nil {
		s.logger.Error().Err(err).Str("investment_id", id).Msg("failed to soft-delete investment")
		return err
	}

	s.invalidateSummaries(ctx, inv.Owners)
	s.logger.Info().Str("investment_id", id).Str("actor_id", actor.ID).Msg("investment soft-deleted")
	return nil
}

// PortfolioSummary computes portfolio-wide totals and the per-asset-type
// allocation over the actor's visible-active set. Viewer summaries are
// cached; admin summaries are not, since any write by any user would
// invalidate them.
func (s *InvestmentService) PortfolioSummary(ctx context.Context, actor *domain.User) (*ports.PortfolioView, error) {
	cacheable := s.cache != nil && !actor.IsAdmin()

	if cacheable {
		view, ok, err := s.cache.Get(ctx, actor.ID)
		if err != nil {
			s.logger.Warn().Err(err).Str("actor_id", actor.ID).Msg("summary cache read failed")
		} else if ok {
			return view, nil
		}
	}

	invs, err := s.repo.ListActive(ctx, ownerScope(actor))
	if err != nil {
		return nil, err
	}

	view := &ports.PortfolioView{
		Summary:    analytics.PortfolioTotals(invs),
		Allocation: analytics.AllocationByType(invs),
	}

	if cacheable {
		if err := s.cache.Set(ctx, actor.ID, view); err != nil {
			s.logger.Warn().Err(err).Str("actor_id", actor.ID).Msg("summary cache write failed")
		}
	}
	return view, nil
}

// resolveOwners checks every owner id against the identity store. Any
// missing or deactivated user fails the whole set.
func (s *InvestmentService) resolveOwners(ctx context.Context, owners []string) error {
	n, err := s.users.CountActiveByIDs(ctx, owners)
	if err != nil {
		return err
	}
	if n != int64(len(owners)) {
		return domain.ErrInvalidOwners
	}
	return nil
}

// invalidateSummaries drops cached summaries for all given owners.
// Best-effort: failures are logged and ignored.
func (s *InvestmentService) invalidateSummaries(ctx context.Context, owners []string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, owners); err != nil {
		s.logger.Warn().Err(err).Msg("summary cache invalidation failed")
	}
}

// merge applies the non-nil fields of input onto inv.
func merge(inv *domain.Investment, input ports.UpdateInvestmentInput) {
	if input.AssetName != nil {
		inv.AssetName = *input.AssetName
	}
	if input.AssetType != nil {
		inv.AssetType = domain.AssetType(*input.AssetType)
	}
	if input.InvestedAmount != nil {
		inv.InvestedAmount = *input.InvestedAmount
	}
	if input.CurrentValue != nil {
		inv.CurrentValue = *input.CurrentValue
	}
	if input.InvestmentDate != nil {
		inv.InvestmentDate = *input.InvestmentDate
	}
	if input.Owners != nil {
		inv.Owners = dedupeOwners(input.Owners)
	}
	if input.Description != nil {
		inv.Description = *input.Description
	}
	if input.Notes != nil {
		inv.Notes = *input.Notes
	}
}

// dedupeOwners removes duplicate ids preserving first-seen order.
func dedupeOwners(owners []string) []string {
	seen := make(map[string]struct{}, len(owners))
	out := make([]string, 0, len(owners))
	for _, id := range owners {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// unionOwners merges two owner lists preserving order, without duplicates.
func unionOwners(a, b []string) []string {
	return dedupeOwners(append(append([]string{}, a...), b...))
}
