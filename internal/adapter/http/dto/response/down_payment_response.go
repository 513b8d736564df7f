package response

import (
	"time"

	"importfacil/internal/domain/entities"
)

type DownPaymentResponse struct {
	PaymentID string    `json:"payment_id"`
	ImportID  string    `json:"import_id"`
	AmountBRL float64   `json:"amount_brl"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
}

func FromDownPayment(p entities.DownPayment) DownPaymentResponse {
	return DownPaymentResponse{
		PaymentID: p.ID,
		ImportID:  p.ImportID,
		AmountBRL: p.AmountBRL,
		Date:      p.Date,
		Status:    string(p.Status),
	}
}
