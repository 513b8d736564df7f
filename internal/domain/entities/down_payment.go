package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the down-payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// DownPayment is the buyer's down payment on an import, charged through the
// payment provider before the financed portion draws on the credit line.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (import_id-index): import_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.

type DownPayment struct {
	ID        string        `json:"id"`
	ImportID  string        `json:"import_id"`
	AmountBRL float64       `json:"amount_brl"`
	Date      time.Time     `json:"date"`
	Status    PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
