package handler

import (
	"github.com/altfolio/portfolio-api/internal/core/analytics"
	"github.com/altfolio/portfolio-api/internal/core/ports"
)

func toInvestmentResponse(d *ports.InvestmentDetail) investmentResponse {
	inv := d.Investment
	return investmentResponse{
		ID:             inv.ID,
		AssetName:      inv.AssetName,
		AssetType:      string(inv.AssetType),
		InvestedAmount: inv.InvestedAmount,
		CurrentValue:   inv.CurrentValue,
		InvestmentDate: inv.InvestmentDate,
		Owners:         inv.Owners,
		Description:    inv.Description,
		Notes:          inv.Notes,
		IsActive:       inv.IsActive,
		ROI:            d.Metrics.ROI,
		AbsoluteGain:   d.Metrics.AbsoluteGain,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}

func toSummaryResponse(s analytics.PortfolioSummary) portfolioSummaryResponse {
	return portfolioSummaryResponse{
		TotalInvested:     s.TotalInvested,
		TotalCurrentValue: s.TotalCurrentValue,
		TotalGain:         s.TotalGain,
		TotalROI:          s.TotalROI,
		InvestmentCount:   s.InvestmentCount,
	}
}

func toPortfolioViewResponse(v *ports.PortfolioView) portfolioViewResponse {
	allocation := make([]allocationEntryResponse, 0, len(v.Allocation))
	for _, a := range v.Allocation {
		allocation = append(allocation, allocationEntryResponse{
			AssetType:         string(a.AssetType),
			TotalInvested:     a.TotalInvested,
			TotalCurrentValue: a.TotalCurrentValue,
			Count:             a.Count,
		})
	}
	return portfolioViewResponse{
		Summary:    toSummaryResponse(v.Summary),
		Allocation: allocation,
	}
}

func toSimulationResponse(v *ports.SimulationView) simulationResponse {
	holdings := make([]simulatedHoldingResponse, 0, len(v.Holdings))
	for _, h := range v.Holdings {
		holdings = append(holdings, simulatedHoldingResponse{
			ID:             h.ID,
			AssetName:      h.AssetName,
			AssetType:      string(h.AssetType),
			CurrentValue:   h.CurrentValue,
			SimulatedValue: h.SimulatedValue,
		})
	}
	return simulationResponse{
		Holdings: holdings,
		Summary:  toSummaryResponse(v.Summary),
	}
}
