package usecase

import (
	"context"
	"errors"
	"testing"

	"importfacil/internal/domain/costing"
	"importfacil/internal/domain/creditledger"
	"importfacil/internal/domain/entities"
	mock_interfaces "importfacil/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validCostInput() entities.CostInput {
	return entities.CostInput{
		LineItems: []entities.PurchaseLineItem{
			{Quantity: 100, UnitPriceUSD: 1000},
		},
		Incoterm:                entities.IncotermFOB,
		InternationalFreightUSD: 5000,
		InsuranceUSD:            1000,
		DeclaredFOBPercent:      100,
		USDToBRLRate:            5,
	}
}

func creditSnapshot() entities.CreditSnapshot {
	return entities.CreditSnapshot{
		ClientID:           "cli-1",
		ApprovedLimit:      1_000_000,
		UsedAmount:         0,
		DownPaymentPercent: 30,
		AdminFeePercent:    2,
	}
}

func TestImportUseCase_CreateImport(t *testing.T) {
	t.Run("invalid client id", func(t *testing.T) {
		uc := NewImportUseCase(nil, nil)
		_, err := uc.CreateImport(context.Background(), CreateImportCommand{ClientID: "   ", ShippingMethod: entities.ShippingMethodSea, Costs: validCostInput()})
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("invalid shipping method", func(t *testing.T) {
		uc := NewImportUseCase(nil, nil)
		_, err := uc.CreateImport(context.Background(), CreateImportCommand{ClientID: "cli-1", ShippingMethod: "truck", Costs: validCostInput()})
		if !errors.Is(err, ErrInvalidShippingMethod) {
			t.Fatalf("expected ErrInvalidShippingMethod, got %v", err)
		}
	})

	t.Run("costing rejects bad input", func(t *testing.T) {
		uc := NewImportUseCase(nil, nil)
		in := validCostInput()
		in.USDToBRLRate = 0
		_, err := uc.CreateImport(context.Background(), CreateImportCommand{ClientID: "cli-1", ShippingMethod: entities.ShippingMethodSea, Costs: in})
		if !errors.Is(err, costing.ErrInvalidRate) {
			t.Fatalf("expected ErrInvalidRate, got %v", err)
		}
	})

	t.Run("credit repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		creditRepo := mock_interfaces.NewMockICreditRepository(ctrl)
		uc := NewImportUseCase(nil, creditRepo)

		creditRepo.EXPECT().GetByClientID(gomock.Any(), "cli-1").Return(entities.CreditSnapshot{}, errors.New("db"))

		_, err := uc.CreateImport(context.Background(), CreateImportCommand{ClientID: "cli-1", ShippingMethod: entities.ShippingMethodSea, Costs: validCostInput()})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("credit application not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		creditRepo := mock_interfaces.NewMockICreditRepository(ctrl)
		uc := NewImportUseCase(nil, creditRepo)

		creditRepo.EXPECT().GetByClientID(gomock.Any(), "cli-1").Return(entities.CreditSnapshot{}, nil)

		_, err := uc.CreateImport(context.Background(), CreateImportCommand{ClientID: "cli-1", ShippingMethod: entities.ShippingMethodSea, Costs: validCostInput()})
		if !errors.Is(err, ErrCreditNotFound) {
			t.Fatalf("expected ErrCreditNotFound, got %v", err)
		}
	})

	t.Run("insufficient credit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		creditRepo := mock_interfaces.NewMockICreditRepository(ctrl)
		uc := NewImportUseCase(nil, creditRepo)

		small := creditSnapshot()
		small.ApprovedLimit = 100_000
		creditRepo.EXPECT().GetByClientID(gomock.Any(), "cli-1").Return(small, nil)

		_, err := uc.CreateImport(context.Background(), CreateImportCommand{ClientID: "cli-1", ShippingMethod: entities.ShippingMethodSea, Costs: validCostInput()})
		var insufficient *creditledger.InsufficientCreditError
		if !errors.As(err, &insufficient) {
			t.Fatalf("expected InsufficientCreditError, got %v", err)
		}
		if insufficient.AvailableCredit != 100_000 {
			t.Fatalf("unexpected available credit: %v", insufficient.AvailableCredit)
		}
	})

	t.Run("reservation conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		creditRepo := mock_interfaces.NewMockICreditRepository(ctrl)
		uc := NewImportUseCase(nil, creditRepo)

		creditRepo.EXPECT().GetByClientID(gomock.Any(), "cli-1").Return(creditSnapshot(), nil)
		creditRepo.EXPECT().ReserveCredit(gomock.Any(), "cli-1", 582802.15, 0.0).Return(entities.CreditSnapshot{}, nil)

		_, err := uc.CreateImport(context.Background(), CreateImportCommand{ClientID: "cli-1", ShippingMethod: entities.ShippingMethodSea, Costs: validCostInput()})
		if !errors.Is(err, ErrCreditConflict) {
			t.Fatalf("expected ErrCreditConflict, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIImportRepository(ctrl)
		creditRepo := mock_interfaces.NewMockICreditRepository(ctrl)
		uc := NewImportUseCase(repo, creditRepo)

		snapshot := creditSnapshot()
		creditRepo.EXPECT().GetByClientID(gomock.Any(), "cli-1").Return(snapshot, nil)
		reserved := snapshot
		reserved.UsedAmount = 582802.15
		creditRepo.EXPECT().ReserveCredit(gomock.Any(), "cli-1", 582802.15, 0.0).Return(reserved, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Import{})).DoAndReturn(
			func(_ context.Context, imp entities.Import) (entities.Import, error) {
				if imp.ID == "" || imp.ClientID != "cli-1" {
					t.Fatalf("unexpected identity: %+v", imp)
				}
				if imp.Status != entities.ImportStatusActive || imp.Version != 1 {
					t.Fatalf("unexpected status/version: %s %d", imp.Status, imp.Version)
				}
				if imp.Financials.TotalRealBRL != 832574.50 {
					t.Fatalf("unexpected total: %v", imp.Financials.TotalRealBRL)
				}
				if imp.FinancedAmountBRL != 582802.15 {
					t.Fatalf("unexpected financed amount: %v", imp.FinancedAmountBRL)
				}
				if imp.DownPaymentBRL != 249772.35 {
					t.Fatalf("unexpected down payment: %v", imp.DownPaymentBRL)
				}
				if imp.Pipeline.CurrentStageID != entities.StageOrderPlaced {
					t.Fatalf("unexpected first stage: %s", imp.Pipeline.CurrentStageID)
				}
				if imp.Pipeline.EstimatedDeliveryAt == nil {
					t.Fatalf("expected estimated delivery date")
				}
				if imp.CreatedAt.IsZero() || imp.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return imp, nil
			},
		)

		imp, err := uc.CreateImport(context.Background(), CreateImportCommand{ClientID: " cli-1 ", ShippingMethod: entities.ShippingMethodSea, Costs: validCostInput()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if imp.Incoterm != entities.IncotermFOB {
			t.Fatalf("unexpected incoterm: %s", imp.Incoterm)
		}
	})
}

func TestImportUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewImportUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidImportID) {
			t.Fatalf("expected ErrInvalidImportID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIImportRepository(ctrl)
		uc := NewImportUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "imp-1").Return(entities.Import{}, nil)

		_, err := uc.GetByID(context.Background(), "imp-1")
		if !errors.Is(err, ErrImportNotFound) {
			t.Fatalf("expected ErrImportNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIImportRepository(ctrl)
		uc := NewImportUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "imp-1").Return(entities.Import{ID: "imp-1"}, nil)

		imp, err := uc.GetByID(context.Background(), " imp-1 ")
		if err != nil || imp.ID != "imp-1" {
			t.Fatalf("unexpected result: %+v %v", imp, err)
		}
	})
}

func TestImportUseCase_StatusTransitions(t *testing.T) {
	t.Run("complete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIImportRepository(ctrl)
		uc := NewImportUseCase(repo, nil)

		repo.EXPECT().UpdateStatusByID(gomock.Any(), "imp-1", entities.ImportStatusCompleted).
			Return(entities.Import{ID: "imp-1", Status: entities.ImportStatusCompleted}, nil)

		imp, err := uc.CompleteByID(context.Background(), "imp-1")
		if err != nil || imp.Status != entities.ImportStatusCompleted {
			t.Fatalf("unexpected result: %+v %v", imp, err)
		}
	})

	t.Run("cancel missing import", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIImportRepository(ctrl)
		uc := NewImportUseCase(repo, nil)

		repo.EXPECT().UpdateStatusByID(gomock.Any(), "imp-404", entities.ImportStatusCancelled).
			Return(entities.Import{}, nil)

		_, err := uc.CancelByID(context.Background(), "imp-404")
		if !errors.Is(err, ErrImportNotFound) {
			t.Fatalf("expected ErrImportNotFound, got %v", err)
		}
	})

	t.Run("cancel invalid id", func(t *testing.T) {
		uc := NewImportUseCase(nil, nil)
		_, err := uc.CancelByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidImportID) {
			t.Fatalf("expected ErrInvalidImportID, got %v", err)
		}
	})
}

func TestImportUseCase_SimulateCosts(t *testing.T) {
	uc := NewImportUseCase(nil, nil)

	fin, err := uc.SimulateCosts(context.Background(), validCostInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fin.CIFUSD != 106000 || fin.TotalDeclaredBRL != 832574.50 {
		t.Fatalf("unexpected financials: %+v", fin)
	}

	bad := validCostInput()
	bad.Incoterm = "EXW"
	if _, err := uc.SimulateCosts(context.Background(), bad); !errors.Is(err, costing.ErrInvalidIncoterm) {
		t.Fatalf("expected ErrInvalidIncoterm, got %v", err)
	}
}

func TestImportUseCase_ValidateCredit(t *testing.T) {
	t.Run("invalid client id", func(t *testing.T) {
		uc := NewImportUseCase(nil, nil)
		_, err := uc.ValidateCredit(context.Background(), " ", 1000)
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		creditRepo := mock_interfaces.NewMockICreditRepository(ctrl)
		uc := NewImportUseCase(nil, creditRepo)

		creditRepo.EXPECT().GetByClientID(gomock.Any(), "cli-404").Return(entities.CreditSnapshot{}, nil)

		_, err := uc.ValidateCredit(context.Background(), "cli-404", 1000)
		if !errors.Is(err, ErrCreditNotFound) {
			t.Fatalf("expected ErrCreditNotFound, got %v", err)
		}
	})

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		creditRepo := mock_interfaces.NewMockICreditRepository(ctrl)
		uc := NewImportUseCase(nil, creditRepo)

		creditRepo.EXPECT().GetByClientID(gomock.Any(), "cli-1").Return(creditSnapshot(), nil)

		decision, err := uc.ValidateCredit(context.Background(), "cli-1", 100_000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if decision.FinancedAmount != 70_000 {
			t.Fatalf("unexpected financed amount: %v", decision.FinancedAmount)
		}
		if decision.AvailableCredit != 1_000_000 {
			t.Fatalf("unexpected available credit: %v", decision.AvailableCredit)
		}
	})

	t.Run("rejected with shortfall", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		creditRepo := mock_interfaces.NewMockICreditRepository(ctrl)
		uc := NewImportUseCase(nil, creditRepo)

		snapshot := creditSnapshot()
		snapshot.ApprovedLimit = 50_000
		creditRepo.EXPECT().GetByClientID(gomock.Any(), "cli-1").Return(snapshot, nil)

		_, err := uc.ValidateCredit(context.Background(), "cli-1", 100_000)
		var insufficient *creditledger.InsufficientCreditError
		if !errors.As(err, &insufficient) {
			t.Fatalf("expected InsufficientCreditError, got %v", err)
		}
		if insufficient.Shortfall != 20_000 {
			t.Fatalf("unexpected shortfall: %v", insufficient.Shortfall)
		}
	})
}

func TestImportUseCase_GetCreditByClientID(t *testing.T) {
	t.Run("invalid client id", func(t *testing.T) {
		uc := NewImportUseCase(nil, nil)
		_, err := uc.GetCreditByClientID(context.Background(), "")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		creditRepo := mock_interfaces.NewMockICreditRepository(ctrl)
		uc := NewImportUseCase(nil, creditRepo)

		creditRepo.EXPECT().GetByClientID(gomock.Any(), "cli-404").Return(entities.CreditSnapshot{}, nil)

		_, err := uc.GetCreditByClientID(context.Background(), "cli-404")
		if !errors.Is(err, ErrCreditNotFound) {
			t.Fatalf("expected ErrCreditNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		creditRepo := mock_interfaces.NewMockICreditRepository(ctrl)
		uc := NewImportUseCase(nil, creditRepo)

		creditRepo.EXPECT().GetByClientID(gomock.Any(), "cli-1").Return(creditSnapshot(), nil)

		snapshot, err := uc.GetCreditByClientID(context.Background(), " cli-1 ")
		if err != nil || snapshot.ClientID != "cli-1" {
			t.Fatalf("unexpected result: %+v %v", snapshot, err)
		}
	})
}
