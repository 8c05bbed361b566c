package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// AssetType categorises an alternative-asset holding.
type AssetType string

const (
	AssetStartup     AssetType = "Startup"
	AssetCryptoFund  AssetType = "CryptoFund"
	AssetFarmland    AssetType = "Farmland"
	AssetCollectible AssetType = "Collectible"
	AssetOther       AssetType = "Other"
)

// assetTypes is the closed set of valid asset categories.
var assetTypes = map[AssetType]struct{}{
	AssetStartup:     {},
	AssetCryptoFund:  {},
	AssetFarmland:    {},
	AssetCollectible: {},
	AssetOther:       {},
}

// IsValid reports whether t is one of the known asset categories.
func (t AssetType) IsValid() bool {
	_, ok := assetTypes[t]
	return ok
}

const (
	// MaxAmount is the universal upper bound on monetary fields, enforced
	// for every actor regardless of role.
	MaxAmount = 1_000_000_000
	// ViewerInvestmentCap is the business-policy ceiling on invested amount
	// for non-admin actors. Admins are exempt.
	ViewerInvestmentCap = 1_000_000

	MaxAssetNameLen   = 100
	MaxDescriptionLen = 500
	MaxNotesLen       = 1000
)

var ErrInvestmentNotFound = errors.New("investment not found")
var ErrInvestmentInactive = errors.New("investment is deleted")
var ErrForbidden = errors.New("access forbidden")
var ErrForbiddenOwnerSet = errors.New("owners must include the creating user")
var ErrForbiddenOwnerRemoval = errors.New("cannot remove yourself from owners")
var ErrInvestmentCapExceeded = errors.New("invested amount exceeds the non-admin cap")
var ErrInvalidOwners = errors.New("one or more owners are unknown or inactive")

// ValidationError reports every field-level violation found in a single
// validation pass, so callers see the full list at once.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, "; "))
}

// Investment is the core aggregate root: a single alternative-asset holding
// co-owned by one or more users. Deletion is soft — IsActive=false removes
// the record from listings and aggregation but keeps it addressable by id.
type Investment struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	AssetName      string    `json:"asset_name" bson:"asset_name"`
	AssetType      AssetType `json:"asset_type" bson:"asset_type"`
	InvestedAmount float64   `json:"invested_amount" bson:"invested_amount"`
	CurrentValue   float64   `json:"current_value" bson:"current_value"`
	InvestmentDate time.Time `json:"investment_date" bson:"investment_date"`
	Owners         []string  `json:"owners" bson:"owners"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	Notes          string    `json:"notes,omitempty" bson:"notes,omitempty"`
	IsActive       bool      `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// OwnedBy reports whether userID appears in the investment's owner set.
func (i *Investment) OwnedBy(userID string) bool {
	for _, id := range i.Owners {
		if id == userID {
			return true
		}
	}
	return false
}

// Validate checks every field bound and collects all violations into a
// single ValidationError. It performs no referential checks — owner
// existence is the service layer's job.
func (i *Investment) Validate() error {
	var fields []string

	if l := len(strings.TrimSpace(i.AssetName)); l < 1 || l > MaxAssetNameLen {
		fields = append(fields, fmt.Sprintf("asset_name must be 1-%d characters", MaxAssetNameLen))
	}
	if !i.AssetType.IsValid() {
		fields = append(fields, "asset_type must be one of: Startup, CryptoFund, Farmland, Collectible, Other")
	}
	if i.InvestedAmount < 0 || i.InvestedAmount > MaxAmount {
		fields = append(fields, fmt.Sprintf("invested_amount must be between 0 and %d", MaxAmount))
	}
	if i.CurrentValue < 0 || i.CurrentValue > MaxAmount {
		fields = append(fields, fmt.Sprintf("current_value must be between 0 and %d", MaxAmount))
	}
	if i.InvestmentDate.IsZero() {
		fields = append(fields, "investment_date is required")
	}
	if len(i.Owners) == 0 {
		fields = append(fields, "owners must not be empty")
	}
	if len(i.Description) > MaxDescriptionLen {
		fields = append(fields, fmt.Sprintf("description must be at most %d characters", MaxDescriptionLen))
	}
	if len(i.Notes) > MaxNotesLen {
		fields = append(fields, fmt.Sprintf("notes must be at most %d characters", MaxNotesLen))
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
