package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"importfacil/internal/domain/entities"
	"importfacil/internal/usecase/interfaces"
)

var (
	ErrDownPaymentNotFound        = errors.New("down payment not found")
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrNoDownPaymentDue           = errors.New("no down payment due for this import")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IDownPaymentUseCase charges and records the buyer's down payment on an
// import.

type IDownPaymentUseCase interface {
	CreateForImport(ctx context.Context, importID string, providerPayload json.RawMessage) (entities.DownPayment, error)
	GetByID(ctx context.Context, id string) (entities.DownPayment, error)
	GetLatestByImportID(ctx context.Context, importID string) (entities.DownPayment, error)
}

type DownPaymentUseCase struct {
	repo       interfaces.IDownPaymentRepository
	importRepo interfaces.IImportRepository
	gateway    interfaces.IPaymentGateway
}

var _ IDownPaymentUseCase = (*DownPaymentUseCase)(nil)

func NewDownPaymentUseCase(repo interfaces.IDownPaymentRepository, importRepo interfaces.IImportRepository, gateway interfaces.IPaymentGateway) *DownPaymentUseCase {
	return &DownPaymentUseCase{repo: repo, importRepo: importRepo, gateway: gateway}
}

// CreateForImport charges the down payment computed at import creation. The
// amount is never taken from the caller's payload: the persisted import is the
// source of truth.
func (u *DownPaymentUseCase) CreateForImport(ctx context.Context, importID string, providerPayload json.RawMessage) (entities.DownPayment, error) {
	log.Printf("[downpayment][usecase] create start raw_import_id=%q payload_len=%d", importID, len(providerPayload))
	mockMode := isPaymentGatewayMockEnabled()
	importID = strings.TrimSpace(importID)
	if importID == "" {
		return entities.DownPayment{}, ErrInvalidImportID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !mockMode {
			log.Printf("[downpayment][usecase] invalid payload import_id=%s", importID)
			return entities.DownPayment{}, ErrInvalidProviderPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.DownPayment{}, errors.New("payment gateway not configured")
	}
	if u.importRepo == nil {
		return entities.DownPayment{}, errors.New("import repository not configured")
	}

	imp, err := u.importRepo.GetByID(ctx, importID)
	if err != nil {
		log.Printf("[downpayment][usecase] failed loading import import_id=%s err=%v", importID, err)
		return entities.DownPayment{}, err
	}
	if imp.ID == "" {
		return entities.DownPayment{}, ErrImportNotFound
	}
	if imp.Status != entities.ImportStatusActive {
		log.Printf("[downpayment][usecase] import not active import_id=%s status=%s", importID, imp.Status)
		return entities.DownPayment{}, ErrImportNotActive
	}
	if imp.DownPaymentBRL <= 0 {
		log.Printf("[downpayment][usecase] nothing due import_id=%s", importID)
		return entities.DownPayment{}, ErrNoDownPaymentDue
	}

	// Link the charge to the import and pin the amount to the stored value.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = imp.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Import %s down payment", imp.ID)
		}
		reqMap["transaction_amount"] = imp.DownPaymentBRL
		if b, err := json.Marshal(reqMap); err == nil {
			providerPayload = b
		}
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage

	if mockMode {
		log.Printf("[downpayment][usecase] mock mode enabled; skipping external payment gateway import_id=%s", importID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		mockResp := map[string]any{
			"id":                 providerPaymentID,
			"status":             providerStatus,
			"status_detail":      "accredited",
			"external_reference": imp.ID,
			"transaction_amount": imp.DownPaymentBRL,
			"date_approved":      time.Now().UTC().Format(time.RFC3339Nano),
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.DownPayment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, providerPayload)
		if err != nil {
			log.Printf("[downpayment][usecase] payment gateway failed import_id=%s err=%v", importID, err)
			if isGatewayUnauthorized(err) {
				return entities.DownPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.DownPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.DownPayment{}, err
		}
	}
	log.Printf("[downpayment][usecase] gateway success import_id=%s provider_payment_id=%s provider_status=%s", importID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[downpayment][usecase] provider response unmarshal failed import_id=%s err=%v", importID, err)
	}

	p := entities.DownPayment{
		ID:                 providerPaymentID,
		ImportID:           imp.ID,
		AmountBRL:          imp.DownPaymentBRL,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[downpayment][usecase] repository create failed import_id=%s payment_id=%s err=%v", importID, p.ID, err)
		return entities.DownPayment{}, err
	}
	log.Printf("[downpayment][usecase] create success import_id=%s payment_id=%s status=%s", importID, created.ID, created.Status)
	return created, nil
}

func (u *DownPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DownPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DownPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DownPayment{}, err
	}
	if p.ID == "" {
		return entities.DownPayment{}, ErrDownPaymentNotFound
	}
	return p, nil
}

func (u *DownPaymentUseCase) GetLatestByImportID(ctx context.Context, importID string) (entities.DownPayment, error) {
	importID = strings.TrimSpace(importID)
	if importID == "" {
		return entities.DownPayment{}, ErrInvalidImportID
	}

	payments, err := u.repo.ListByImportID(ctx, importID)
	if err != nil {
		return entities.DownPayment{}, err
	}
	if len(payments) == 0 {
		return entities.DownPayment{}, ErrDownPaymentNotFound
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
