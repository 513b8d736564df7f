package response

import (
	"time"

	"importfacil/internal/domain/entities"
)

type ImportResponse struct {
	ImportID            string             `json:"import_id"`
	ClientID            string             `json:"client_id"`
	ShippingMethod      string             `json:"shipping_method"`
	Incoterm            string             `json:"incoterm"`
	Status              string             `json:"status"`
	Financials          FinancialsResponse `json:"financials"`
	FinancedAmountBRL   float64            `json:"financed_amount_brl"`
	DownPaymentBRL      float64            `json:"down_payment_brl"`
	CurrentStageID      string             `json:"current_stage_id"`
	EstimatedDeliveryAt *time.Time         `json:"estimated_delivery_at,omitempty"`
	Version             int64              `json:"version"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

func FromImport(imp entities.Import) ImportResponse {
	return ImportResponse{
		ImportID:            imp.ID,
		ClientID:            imp.ClientID,
		ShippingMethod:      string(imp.ShippingMethod),
		Incoterm:            string(imp.Incoterm),
		Status:              string(imp.Status),
		Financials:          FromFinancials(imp.Financials),
		FinancedAmountBRL:   imp.FinancedAmountBRL,
		DownPaymentBRL:      imp.DownPaymentBRL,
		CurrentStageID:      string(imp.Pipeline.CurrentStageID),
		EstimatedDeliveryAt: imp.Pipeline.EstimatedDeliveryAt,
		Version:             imp.Version,
		CreatedAt:           imp.CreatedAt,
		UpdatedAt:           imp.UpdatedAt,
	}
}
