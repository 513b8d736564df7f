package pipeline

import (
	"errors"
	"testing"
	"time"

	"importfacil/internal/domain/catalog"
	"importfacil/internal/domain/entities"
)

func mustNewState(t *testing.T, method entities.ShippingMethod) entities.ImportPipelineState {
	t.Helper()
	state, err := NewState(method, time.Now().UTC())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return state
}

func TestNewState(t *testing.T) {
	t.Run("invalid method", func(t *testing.T) {
		_, err := NewState("rail", time.Now())
		if !errors.Is(err, ErrInvalidShippingMethod) {
			t.Fatalf("expected ErrInvalidShippingMethod, got %v", err)
		}
	})

	t.Run("sea", func(t *testing.T) {
		now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		state, err := NewState(entities.ShippingMethodSea, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.CurrentStageID != entities.StageOrderPlaced {
			t.Fatalf("expected first stage, got %s", state.CurrentStageID)
		}
		if len(state.CompletedStageIDs) != 0 {
			t.Fatalf("expected nothing completed")
		}
		if state.StageDetails[entities.StageOrderPlaced].StartedAt == nil {
			t.Fatalf("expected first stage started")
		}
		wantETA := now.AddDate(0, 0, catalog.EstimatedTransitDays(entities.ShippingMethodSea))
		if state.EstimatedDeliveryAt == nil || !state.EstimatedDeliveryAt.Equal(wantETA) {
			t.Fatalf("unexpected ETA: %v", state.EstimatedDeliveryAt)
		}
	})
}

func TestProgress(t *testing.T) {
	for _, method := range []entities.ShippingMethod{entities.ShippingMethodSea, entities.ShippingMethodAir} {
		t.Run(string(method)+" monotonic and ends at 100", func(t *testing.T) {
			state := mustNewState(t, method)
			now := time.Now().UTC()

			last, err := Progress(state)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for {
				next, err := Advance(state, now)
				if errors.Is(err, ErrNoNextStage) {
					break
				}
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				state = next

				p, err := Progress(state)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if p < last {
					t.Fatalf("progress decreased: %d -> %d", last, p)
				}
				last = p
			}

			if last != 100 {
				t.Fatalf("expected 100 at terminal stage, got %d", last)
			}
		})
	}

	t.Run("unknown current stage", func(t *testing.T) {
		state := mustNewState(t, entities.ShippingMethodSea)
		state.CurrentStageID = "warp_drive"
		if _, err := Progress(state); !errors.Is(err, catalog.ErrStageNotFound) {
			t.Fatalf("expected ErrStageNotFound, got %v", err)
		}
	})
}

func TestAdvanceAndRevert(t *testing.T) {
	now := time.Now().UTC()

	t.Run("advance completes current and starts next", func(t *testing.T) {
		state := mustNewState(t, entities.ShippingMethodSea)
		next, err := Advance(state, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.CurrentStageID != entities.StageProduction {
			t.Fatalf("expected production, got %s", next.CurrentStageID)
		}
		if !next.IsCompleted(entities.StageOrderPlaced) {
			t.Fatalf("expected order_placed completed")
		}
		if next.StageDetails[entities.StageProduction].StartedAt == nil {
			t.Fatalf("expected production started")
		}
		// Input untouched.
		if state.CurrentStageID != entities.StageOrderPlaced || len(state.CompletedStageIDs) != 0 {
			t.Fatalf("input state mutated: %+v", state)
		}
	})

	t.Run("advance skips inapplicable stages", func(t *testing.T) {
		state := mustNewState(t, entities.ShippingMethodAir)
		state.CurrentStageID = entities.StageExportClearance
		next, err := Advance(state, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.CurrentStageID != entities.StageAirFreight {
			t.Fatalf("expected air_freight for air shipments, got %s", next.CurrentStageID)
		}
	})

	t.Run("advance at terminal stage", func(t *testing.T) {
		state := mustNewState(t, entities.ShippingMethodSea)
		state.CurrentStageID = entities.StageDelivered
		if _, err := Advance(state, now); !errors.Is(err, ErrNoNextStage) {
			t.Fatalf("expected ErrNoNextStage, got %v", err)
		}
	})

	t.Run("revert at first stage", func(t *testing.T) {
		state := mustNewState(t, entities.ShippingMethodSea)
		if _, err := Revert(state); !errors.Is(err, ErrNoPreviousStage) {
			t.Fatalf("expected ErrNoPreviousStage, got %v", err)
		}
	})

	t.Run("revert is the inverse of advance on the current stage", func(t *testing.T) {
		state := mustNewState(t, entities.ShippingMethodAir)
		advanced, err := Advance(state, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		reverted, err := Revert(advanced)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reverted.CurrentStageID != state.CurrentStageID {
			t.Fatalf("expected %s, got %s", state.CurrentStageID, reverted.CurrentStageID)
		}
		if reverted.IsCompleted(state.CurrentStageID) {
			t.Fatalf("reverted stage still completed")
		}
	})
}

func TestStageStatus(t *testing.T) {
	now := time.Now().UTC()

	t.Run("pending, current, completed", func(t *testing.T) {
		state := mustNewState(t, entities.ShippingMethodSea)
		state, _ = Advance(state, now)

		if got, _ := StageStatus(state, entities.StageOrderPlaced, now); got != entities.StageStatusCompleted {
			t.Fatalf("expected completed, got %s", got)
		}
		if got, _ := StageStatus(state, entities.StageProduction, now); got != entities.StageStatusCurrent {
			t.Fatalf("expected current, got %s", got)
		}
		if got, _ := StageStatus(state, entities.StageDelivered, now); got != entities.StageStatusPending {
			t.Fatalf("expected pending, got %s", got)
		}
	})

	t.Run("delayed when started longer ago than estimated", func(t *testing.T) {
		state := mustNewState(t, entities.ShippingMethodSea)
		stage, _ := catalog.Get(entities.StageProduction)
		startedAt := now.AddDate(0, 0, -(stage.EstimatedDays + 1))
		state.StageDetails[entities.StageProduction] = entities.StageDetail{StartedAt: &startedAt}

		if got, _ := StageStatus(state, entities.StageProduction, now); got != entities.StageStatusDelayed {
			t.Fatalf("expected delayed, got %s", got)
		}

		// Completion clears the delay.
		completedAt := now
		state.StageDetails[entities.StageProduction] = entities.StageDetail{StartedAt: &startedAt, CompletedAt: &completedAt}
		if got, _ := StageStatus(state, entities.StageProduction, now); got != entities.StageStatusCompleted {
			t.Fatalf("expected completed, got %s", got)
		}
	})

	t.Run("unknown stage id", func(t *testing.T) {
		state := mustNewState(t, entities.ShippingMethodSea)
		if _, err := StageStatus(state, "warp_drive", now); !errors.Is(err, catalog.ErrStageNotFound) {
			t.Fatalf("expected ErrStageNotFound, got %v", err)
		}
	})
}

func TestUpdateStageDetails(t *testing.T) {
	now := time.Now().UTC()

	t.Run("merges fields", func(t *testing.T) {
		state := mustNewState(t, entities.ShippingMethodSea)
		note := "container booked"
		startedAt := now.AddDate(0, 0, -1)
		next, err := UpdateStageDetails(state, entities.StageContainerLoading, entities.StageDetailPatch{
			StartedAt: &startedAt,
			Note:      &note,
		}, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		detail := next.StageDetails[entities.StageContainerLoading]
		if detail.Note != note || detail.StartedAt == nil || !detail.StartedAt.Equal(startedAt) {
			t.Fatalf("unexpected detail: %+v", detail)
		}
	})

	t.Run("manual completion out of order", func(t *testing.T) {
		state := mustNewState(t, entities.ShippingMethodSea)
		completed := entities.StageStatusCompleted
		next, err := UpdateStageDetails(state, entities.StageCustomsClearance, entities.StageDetailPatch{Status: &completed}, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !next.IsCompleted(entities.StageCustomsClearance) {
			t.Fatalf("expected customs_clearance completed by override")
		}
		if next.StageDetails[entities.StageCustomsClearance].CompletedAt == nil {
			t.Fatalf("expected completion timestamp stamped")
		}
		if got, _ := StageStatus(next, entities.StageCustomsClearance, now); got != entities.StageStatusCompleted {
			t.Fatalf("expected completed, got %s", got)
		}
	})

	t.Run("delayed flag tracks detail state", func(t *testing.T) {
		state := mustNewState(t, entities.ShippingMethodSea)
		stage, _ := catalog.Get(entities.StageProduction)
		startedAt := now.AddDate(0, 0, -(stage.EstimatedDays + 1))
		next, err := UpdateStageDetails(state, entities.StageProduction, entities.StageDetailPatch{StartedAt: &startedAt}, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !next.StageDetails[entities.StageProduction].Delayed {
			t.Fatalf("expected delayed flag set")
		}

		completedAt := now
		cleared, err := UpdateStageDetails(next, entities.StageProduction, entities.StageDetailPatch{CompletedAt: &completedAt}, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cleared.StageDetails[entities.StageProduction].Delayed {
			t.Fatalf("expected delayed flag cleared after completion")
		}
	})

	t.Run("unknown stage id", func(t *testing.T) {
		state := mustNewState(t, entities.ShippingMethodSea)
		if _, err := UpdateStageDetails(state, "warp_drive", entities.StageDetailPatch{}, now); !errors.Is(err, catalog.ErrStageNotFound) {
			t.Fatalf("expected ErrStageNotFound, got %v", err)
		}
	})
}
