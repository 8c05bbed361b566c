// Package analytics computes derived return metrics and portfolio rollups.
// It performs no authorization and no filtering: callers must pass the set
// of investments already scoped to active records visible to the actor.
package analytics

import (
	"sort"

	"github.com/altfolio/portfolio-api/internal/core/domain"
)

// InvestmentMetrics are the derived, never-stored figures for one holding.
type InvestmentMetrics struct {
	ROI          float64 `json:"roi"`
	AbsoluteGain float64 `json:"absolute_gain"`
}

// PortfolioSummary is the portfolio-wide rollup across a set of holdings.
type PortfolioSummary struct {
	TotalInvested     float64 `json:"total_invested"`
	TotalCurrentValue float64 `json:"total_current_value"`
	TotalGain         float64 `json:"total_gain"`
	TotalROI          float64 `json:"total_roi"`
	InvestmentCount   int     `json:"investment_count"`
}

// TypeAllocation is the per-asset-category breakdown of a portfolio.
type TypeAllocation struct {
	AssetType         domain.AssetType `json:"asset_type"`
	TotalInvested     float64          `json:"total_invested"`
	TotalCurrentValue float64          `json:"total_current_value"`
	Count             int              `json:"count"`
}

// Metrics computes the derived figures for a single investment. A zero
// invested amount yields ROI exactly 0, never a division by zero.
func Metrics(inv *domain.Investment) InvestmentMetrics {
	gain := inv.CurrentValue - inv.InvestedAmount
	roi := 0.0
	if inv.InvestedAmount != 0 {
		roi = gain / inv.InvestedAmount * 100
	}
	return InvestmentMetrics{ROI: roi, AbsoluteGain: gain}
}

// PortfolioTotals sums invested amount, current value and gain across the
// input set. An empty input yields the all-zero summary, not an error.
func PortfolioTotals(invs []*domain.Investment) PortfolioSummary {
	var s PortfolioSummary
	for _, inv := range invs {
		s.TotalInvested += inv.InvestedAmount
		s.TotalCurrentValue += inv.CurrentValue
		s.InvestmentCount++
	}
	s.TotalGain = s.TotalCurrentValue - s.TotalInvested
	if s.TotalInvested != 0 {
		s.TotalROI = s.TotalGain / s.TotalInvested * 100
	}
	return s
}

// AllocationByType groups the input by asset category. Only categories
// present in the input produce an entry. The result is sorted by total
// current value descending; ties keep first-seen input order (stable sort).
func AllocationByType(invs []*domain.Investment) []TypeAllocation {
	index := make(map[domain.AssetType]int)
	var out []TypeAllocation

	for _, inv := range invs {
		i, ok := index[inv.AssetType]
		if !ok {
			i = len(out)
			index[inv.AssetType] = i
			out = append(out, TypeAllocation{AssetType: inv.AssetType})
		}
		out[i].TotalInvested += inv.InvestedAmount
		out[i].TotalCurrentValue += inv.CurrentValue
		out[i].Count++
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].TotalCurrentValue > out[b].TotalCurrentValue
	})
	return out
}
