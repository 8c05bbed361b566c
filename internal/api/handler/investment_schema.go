package handler

import "time"

// --- Request types ---

type createInvestmentRequest struct {
	AssetName      string    `json:"asset_name"      validate:"required,min=1,max=100"`
	AssetType      string    `json:"asset_type"      validate:"required,oneof=Startup CryptoFund Farmland Collectible Other"`
	InvestedAmount float64   `json:"invested_amount" validate:"gte=0,lte=1000000000"`
	CurrentValue   float64   `json:"current_value"   validate:"gte=0,lte=1000000000"`
	InvestmentDate time.Time `json:"investment_date" validate:"required"`
	Owners         []string  `json:"owners"          validate:"required,min=1,dive,required"`
	Description    string    `json:"description"     validate:"max=500"`
	Notes          string    `json:"notes"           validate:"max=1000"`
}

// updateInvestmentRequest carries a partial update: absent (null) fields
// keep their stored value. Bounds are re-checked on the merged record by the
// service, so the transport validation here is intentionally shallow.
type updateInvestmentRequest struct {
	AssetName      *string    `json:"asset_name,omitempty"`
	AssetType      *string    `json:"asset_type,omitempty"`
	InvestedAmount *float64   `json:"invested_amount,omitempty"`
	CurrentValue   *float64   `json:"current_value,omitempty"`
	InvestmentDate *time.Time `json:"investment_date,omitempty"`
	Owners         []string   `json:"owners,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

// --- Response types ---
//
// Response-only types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type investmentResponse struct {
	ID             string    `json:"id"`
	AssetName      string    `json:"asset_name"`
	AssetType      string    `json:"asset_type"`
	InvestedAmount float64   `json:"invested_amount"`
	CurrentValue   float64   `json:"current_value"`
	InvestmentDate time.Time `json:"investment_date"`
	Owners         []string  `json:"owners"`
	Description    string    `json:"description,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	IsActive       bool      `json:"is_active"`
	ROI            float64   `json:"roi"`
	AbsoluteGain   float64   `json:"absolute_gain"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type listInvestmentsResponse struct {
	Data  []investmentResponse `json:"data"`
	Count int                  `json:"count"`
}

type portfolioSummaryResponse struct {
	TotalInvested     float64 `json:"total_invested"`
	TotalCurrentValue float64 `json:"total_current_value"`
	TotalGain         float64 `json:"total_gain"`
	TotalROI          float64 `json:"total_roi"`
	InvestmentCount   int     `json:"investment_count"`
}

type allocationEntryResponse struct {
	AssetType         string  `json:"asset_type"`
	TotalInvested     float64 `json:"total_invested"`
	TotalCurrentValue float64 `json:"total_current_value"`
	Count             int     `json:"count"`
}

type portfolioViewResponse struct {
	Summary    portfolioSummaryResponse  `json:"summary"`
	Allocation []allocationEntryResponse `json:"allocation"`
}

type simulatedHoldingResponse struct {
	ID             string  `json:"id"`
	AssetName      string  `json:"asset_name"`
	AssetType      string  `json:"asset_type"`
	CurrentValue   float64 `json:"current_value"`
	SimulatedValue float64 `json:"simulated_value"`
}

type simulationResponse struct {
	Holdings []simulatedHoldingResponse `json:"holdings"`
	Summary  portfolioSummaryResponse   `json:"summary"`
}
