package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validInvestment() *Investment {
	return &Investment{
		ID:             "inv-1",
		AssetName:      "Series A - Acme Robotics",
		AssetType:      AssetStartup,
		InvestedAmount: 250_000,
		CurrentValue:   310_000,
		InvestmentDate: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
		Owners:         []string{"u1"},
		IsActive:       true,
	}
}

func TestInvestment_Validate_OK(t *testing.T) {
	if err := validInvestment().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInvestment_Validate_CollectsEveryViolation(t *testing.T) {
	inv := &Investment{
		AssetName:      strings.Repeat("x", 101),
		AssetType:      "Timeshare",
		InvestedAmount: -1,
		CurrentValue:   MaxAmount + 1,
		Owners:         nil,
		Description:    strings.Repeat("d", 501),
		Notes:          strings.Repeat("n", 1001),
	}

	err := inv.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 8 {
		t.Fatalf("expected 8 violations, got %d: %v", len(ve.Fields), ve.Fields)
	}
}

func TestInvestment_Validate_Bounds(t *testing.T) {
	inv := validInvestment()
	inv.InvestedAmount = MaxAmount
	inv.CurrentValue = 0
	if err := inv.Validate(); err != nil {
		t.Fatalf("boundary values must be legal: %v", err)
	}
}

func TestInvestment_Validate_BlankNameRejected(t *testing.T) {
	inv := validInvestment()
	inv.AssetName = "   "
	if inv.Validate() == nil {
		t.Fatal("whitespace-only asset name must fail")
	}
}

func TestInvestment_OwnedBy(t *testing.T) {
	inv := &Investment{Owners: []string{"u1", "u2"}}
	if !inv.OwnedBy("u2") {
		t.Error("expected u2 to be an owner")
	}
	if inv.OwnedBy("u3") {
		t.Error("u3 must not be an owner")
	}
}

func TestAssetType_IsValid(t *testing.T) {
	for _, at := range []AssetType{AssetStartup, AssetCryptoFund, AssetFarmland, AssetCollectible, AssetOther} {
		if !at.IsValid() {
			t.Errorf("%s should be valid", at)
		}
	}
	if AssetType("Bond").IsValid() {
		t.Error("unknown asset type must be invalid")
	}
}
