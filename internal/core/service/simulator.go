package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/altfolio/portfolio-api/internal/core/analytics"
	"github.com/altfolio/portfolio-api/internal/core/domain"
	"github.com/altfolio/portfolio-api/internal/core/ports"
)

// simulationDrift bounds the what-if perturbation: each holding's current
// value is scaled by a uniform factor in [1-drift, 1+drift].
const simulationDrift = 0.05

// Simulator produces market perturbation factors from a seedable
// pseudo-random source, so tests can assert exact output for a fixed seed.
type Simulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator returns a Simulator seeded with seed. A zero seed falls back
// to the current time.
func NewSimulator(seed int64) *Simulator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{rng: rand.New(rand.NewSource(seed))}
}

// Factor returns the next perturbation factor in [1-drift, 1+drift].
func (s *Simulator) Factor() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return 1 - simulationDrift + 2*simulationDrift*s.rng.Float64()
}

// Simulate returns a cosmetic what-if view of the actor's portfolio: each
// visible active holding's current value perturbed by an independent factor,
// plus the totals the perturbed portfolio would have. Nothing is persisted.
func (s *InvestmentService) Simulate(ctx context.Context, actor *domain.User) (*ports.SimulationView, error) {
	invs, err := s.repo.ListActive(ctx, ownerScope(actor))
	if err != nil {
		return nil, err
	}

	holdings := make([]ports.SimulatedHolding, 0, len(invs))
	perturbed := make([]*domain.Investment, 0, len(invs))
	for _, inv := range invs {
		simulated := inv.CurrentValue * s.sim.Factor()
		holdings = append(holdings, ports.SimulatedHolding{
			ID:             inv.ID,
			AssetName:      inv.AssetName,
			AssetType:      inv.AssetType,
			CurrentValue:   inv.CurrentValue,
			SimulatedValue: simulated,
		})

		clone := *inv
		clone.CurrentValue = simulated
		perturbed = append(perturbed, &clone)
	}

	return &ports.SimulationView{
		Holdings: holdings,
		Summary:  analytics.PortfolioTotals(perturbed),
	}, nil
}
