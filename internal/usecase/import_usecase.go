package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"importfacil/internal/domain/costing"
	"importfacil/internal/domain/creditledger"
	"importfacil/internal/domain/entities"
	"importfacil/internal/domain/pipeline"
	"importfacil/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrImportNotFound        = errors.New("import not found")
	ErrImportNotActive       = errors.New("import not active")
	ErrInvalidImportID       = errors.New("invalid import id")
	ErrInvalidClientID       = errors.New("invalid client_id")
	ErrInvalidShippingMethod = errors.New("invalid shipping method")
	ErrCreditNotFound        = errors.New("credit application not found")
	ErrCreditConflict        = errors.New("credit reservation conflict")
)

// CreateImportCommand carries everything needed to register an import:
// identity, shipping method and the full cost input.
type CreateImportCommand struct {
	ClientID       string
	ShippingMethod entities.ShippingMethod
	Costs          entities.CostInput
}

// CreditDecision is the accepted outcome of a standalone credit validation.
type CreditDecision struct {
	ClientID        string
	ImportValueBRL  float64
	FinancedAmount  float64
	AvailableCredit float64
}

// IImportUseCase exposes import registration and the pure cost/credit
// computations.

type IImportUseCase interface {
	CreateImport(ctx context.Context, cmd CreateImportCommand) (entities.Import, error)
	GetByID(ctx context.Context, id string) (entities.Import, error)
	CompleteByID(ctx context.Context, id string) (entities.Import, error)
	CancelByID(ctx context.Context, id string) (entities.Import, error)
	SimulateCosts(ctx context.Context, in entities.CostInput) (entities.ImportFinancials, error)
	ValidateCredit(ctx context.Context, clientID string, importValueBRL float64) (CreditDecision, error)
	GetCreditByClientID(ctx context.Context, clientID string) (entities.CreditSnapshot, error)
}

type ImportUseCase struct {
	repo       interfaces.IImportRepository
	creditRepo interfaces.ICreditRepository
}

var _ IImportUseCase = (*ImportUseCase)(nil)

func NewImportUseCase(repo interfaces.IImportRepository, creditRepo interfaces.ICreditRepository) *ImportUseCase {
	return &ImportUseCase{repo: repo, creditRepo: creditRepo}
}

// CreateImport prices the shipment, gates it against the client's credit line
// and persists the aggregate with a fresh pipeline.
//
// The credit gate runs on the financed portion of the real (undiscounted)
// total: that is the amount actually owed. Reservation is a conditional write
// on used_amount, so a concurrent creation against the same line fails the
// condition instead of double-drawing.
func (u *ImportUseCase) CreateImport(ctx context.Context, cmd CreateImportCommand) (entities.Import, error) {
	clientID := strings.TrimSpace(cmd.ClientID)
	if clientID == "" {
		return entities.Import{}, ErrInvalidClientID
	}
	if !cmd.ShippingMethod.Valid() {
		return entities.Import{}, ErrInvalidShippingMethod
	}

	financials, err := costing.Compute(cmd.Costs)
	if err != nil {
		return entities.Import{}, err
	}

	snapshot, err := u.creditRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return entities.Import{}, err
	}
	if snapshot.ClientID == "" {
		return entities.Import{}, ErrCreditNotFound
	}

	financed, err := creditledger.FinancedAmount(financials.TotalRealBRL, snapshot.DownPaymentPercent)
	if err != nil {
		return entities.Import{}, err
	}
	if err := creditledger.Validate(financed, snapshot); err != nil {
		return entities.Import{}, err
	}

	reserved, err := u.creditRepo.ReserveCredit(ctx, clientID, financed, snapshot.UsedAmount)
	if err != nil {
		return entities.Import{}, err
	}
	if reserved.ClientID == "" {
		return entities.Import{}, ErrCreditConflict
	}

	now := time.Now().UTC()
	state, err := pipeline.NewState(cmd.ShippingMethod, now)
	if err != nil {
		return entities.Import{}, err
	}

	downPayment := decimal.NewFromFloat(financials.TotalRealBRL).
		Sub(decimal.NewFromFloat(financed)).Round(2).InexactFloat64()

	imp := entities.Import{
		ID:                uuid.NewString(),
		ClientID:          clientID,
		ShippingMethod:    cmd.ShippingMethod,
		Incoterm:          cmd.Costs.Incoterm,
		Status:            entities.ImportStatusActive,
		Financials:        financials,
		FinancedAmountBRL: financed,
		DownPaymentBRL:    downPayment,
		Pipeline:          state,
		Version:           1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return u.repo.Create(ctx, imp)
}

func (u *ImportUseCase) GetByID(ctx context.Context, id string) (entities.Import, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Import{}, ErrInvalidImportID
	}

	imp, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Import{}, err
	}
	if imp.ID == "" {
		return entities.Import{}, ErrImportNotFound
	}
	return imp, nil
}

// CompleteByID archives a delivered import. The record is superseded, never
// deleted.
func (u *ImportUseCase) CompleteByID(ctx context.Context, id string) (entities.Import, error) {
	return u.updateStatusByID(ctx, id, entities.ImportStatusCompleted)
}

// CancelByID archives a cancelled import.
func (u *ImportUseCase) CancelByID(ctx context.Context, id string) (entities.Import, error) {
	return u.updateStatusByID(ctx, id, entities.ImportStatusCancelled)
}

func (u *ImportUseCase) updateStatusByID(ctx context.Context, id string, status entities.ImportStatus) (entities.Import, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Import{}, ErrInvalidImportID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Import{}, err
	}
	if updated.ID == "" {
		return entities.Import{}, ErrImportNotFound
	}
	return updated, nil
}

// SimulateCosts runs the cost engine without touching persistence.
func (u *ImportUseCase) SimulateCosts(_ context.Context, in entities.CostInput) (entities.ImportFinancials, error) {
	return costing.Compute(in)
}

// ValidateCredit checks a hypothetical import value against the client's
// stored credit application. It reserves nothing.
func (u *ImportUseCase) ValidateCredit(ctx context.Context, clientID string, importValueBRL float64) (CreditDecision, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return CreditDecision{}, ErrInvalidClientID
	}

	snapshot, err := u.creditRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return CreditDecision{}, err
	}
	if snapshot.ClientID == "" {
		return CreditDecision{}, ErrCreditNotFound
	}

	financed, err := creditledger.FinancedAmount(importValueBRL, snapshot.DownPaymentPercent)
	if err != nil {
		return CreditDecision{}, err
	}
	if err := creditledger.Validate(financed, snapshot); err != nil {
		return CreditDecision{}, err
	}

	return CreditDecision{
		ClientID:        clientID,
		ImportValueBRL:  importValueBRL,
		FinancedAmount:  financed,
		AvailableCredit: snapshot.AvailableCredit(),
	}, nil
}

func (u *ImportUseCase) GetCreditByClientID(ctx context.Context, clientID string) (entities.CreditSnapshot, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.CreditSnapshot{}, ErrInvalidClientID
	}

	snapshot, err := u.creditRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return entities.CreditSnapshot{}, err
	}
	if snapshot.ClientID == "" {
		return entities.CreditSnapshot{}, ErrCreditNotFound
	}
	return snapshot, nil
}
