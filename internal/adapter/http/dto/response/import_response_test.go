package response

import (
	"testing"
	"time"

	"importfacil/internal/domain/entities"
	"importfacil/internal/usecase"
)

func TestFromImport(t *testing.T) {
	eta := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	imp := entities.Import{
		ID:                "imp-1",
		ClientID:          "cli-1",
		ShippingMethod:    entities.ShippingMethodSea,
		Incoterm:          entities.IncotermFOB,
		Status:            entities.ImportStatusActive,
		FinancedAmountBRL: 70000,
		DownPaymentBRL:    30000,
		Pipeline: entities.ImportPipelineState{
			CurrentStageID:      entities.StageProduction,
			EstimatedDeliveryAt: &eta,
		},
		Version: 2,
	}

	resp := FromImport(imp)
	if resp.ImportID != "imp-1" || resp.ClientID != "cli-1" {
		t.Fatalf("unexpected identity: %+v", resp)
	}
	if resp.CurrentStageID != "production" {
		t.Fatalf("unexpected current stage: %s", resp.CurrentStageID)
	}
	if resp.EstimatedDeliveryAt == nil || !resp.EstimatedDeliveryAt.Equal(eta) {
		t.Fatalf("unexpected eta: %v", resp.EstimatedDeliveryAt)
	}
	if resp.Version != 2 {
		t.Fatalf("unexpected version: %d", resp.Version)
	}
}

func TestFromPipelineView(t *testing.T) {
	started := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	view := usecase.PipelineView{
		ImportID: "imp-1",
		State: entities.ImportPipelineState{
			CurrentStageID: entities.StageOrderPlaced,
		},
		Progress: 11,
		Stages: []usecase.StageView{
			{
				ID:            entities.StageOrderPlaced,
				Order:         10,
				Name:          "Order placed",
				EstimatedDays: 2,
				Status:        entities.StageStatusCurrent,
				Detail:        entities.StageDetail{StartedAt: &started, Note: "po sent"},
			},
		},
	}

	resp := FromPipelineView(view)
	if resp.ProgressPercent != 11 || len(resp.Stages) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Stages[0].Status != "current" || resp.Stages[0].Note != "po sent" {
		t.Fatalf("unexpected stage: %+v", resp.Stages[0])
	}
	if resp.Stages[0].StartedAt == nil || !resp.Stages[0].StartedAt.Equal(started) {
		t.Fatalf("unexpected started at: %v", resp.Stages[0].StartedAt)
	}
}

func TestFromCreditSnapshot(t *testing.T) {
	resp := FromCreditSnapshot(entities.CreditSnapshot{
		ClientID:           "cli-1",
		ApprovedLimit:      100000,
		UsedAmount:         25000,
		DownPaymentPercent: 30,
		AdminFeePercent:    2,
	})
	if resp.AvailableCredit != 75000 {
		t.Fatalf("unexpected available credit: %v", resp.AvailableCredit)
	}
}
