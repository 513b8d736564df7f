package request

import (
	"errors"
	"testing"

	"importfacil/internal/domain/entities"
)

func TestCostSimulationRequest_ResolveCostInput(t *testing.T) {
	base := CostSimulationRequest{
		Items:        []PurchaseItemRequest{{Quantity: 10, UnitPriceUSD: 50}},
		USDToBRLRate: 5.2,
	}

	t.Run("defaults", func(t *testing.T) {
		in, err := base.ResolveCostInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Incoterm != entities.IncotermFOB {
			t.Fatalf("expected FOB default, got %s", in.Incoterm)
		}
		if in.DeclaredFOBPercent != 100 {
			t.Fatalf("expected declared percent 100, got %v", in.DeclaredFOBPercent)
		}
	})

	t.Run("no items", func(t *testing.T) {
		r := base
		r.Items = nil
		if _, err := r.ResolveCostInput(); !errors.Is(err, ErrNoLineItems) {
			t.Fatalf("expected ErrNoLineItems, got %v", err)
		}
	})

	t.Run("incoterm normalized", func(t *testing.T) {
		r := base
		r.Incoterm = " cif "
		in, err := r.ResolveCostInput()
		if err != nil || in.Incoterm != entities.IncotermCIF {
			t.Fatalf("unexpected result: %+v %v", in, err)
		}
	})

	t.Run("declared percent clamped", func(t *testing.T) {
		r := base
		r.DeclaredFOBPercent = 250
		in, _ := r.ResolveCostInput()
		if in.DeclaredFOBPercent != 100 {
			t.Fatalf("expected clamp to 100, got %v", in.DeclaredFOBPercent)
		}

		r.DeclaredFOBPercent = 0.5
		in, _ = r.ResolveCostInput()
		if in.DeclaredFOBPercent != 1 {
			t.Fatalf("expected clamp to 1, got %v", in.DeclaredFOBPercent)
		}
	})

	t.Run("custom cost currency defaults to BRL", func(t *testing.T) {
		r := base
		r.CustomCosts = []CustomCostRequest{{Name: "storage", Category: "fee", Kind: "fixed", Amount: 120}}
		in, err := r.ResolveCostInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.CustomCosts[0].Currency != entities.CurrencyBRL {
			t.Fatalf("expected BRL, got %s", in.CustomCosts[0].Currency)
		}
	})

	t.Run("unknown currency rejected", func(t *testing.T) {
		r := base
		r.CustomCosts = []CustomCostRequest{{Name: "storage", Category: "fee", Kind: "fixed", Currency: "EUR", Amount: 120}}
		if _, err := r.ResolveCostInput(); !errors.Is(err, ErrInvalidCurrency) {
			t.Fatalf("expected ErrInvalidCurrency, got %v", err)
		}
	})
}

func TestStagePatchRequest_ToPatch(t *testing.T) {
	t.Run("status normalized", func(t *testing.T) {
		s := " Completed "
		patch, err := StagePatchRequest{Status: &s}.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.Status == nil || *patch.Status != entities.StageStatusCompleted {
			t.Fatalf("unexpected patch: %+v", patch)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		s := "teleported"
		if _, err := (StagePatchRequest{Status: &s}).ToPatch(); !errors.Is(err, ErrInvalidStageStatus) {
			t.Fatalf("expected ErrInvalidStageStatus, got %v", err)
		}
	})

	t.Run("absent fields stay nil", func(t *testing.T) {
		patch, err := StagePatchRequest{}.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.StartedAt != nil || patch.CompletedAt != nil || patch.Note != nil || patch.Status != nil {
			t.Fatalf("expected empty patch, got %+v", patch)
		}
	})
}
