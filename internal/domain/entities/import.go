package entities

import "time"

// ImportStatus represents the lifecycle of an import record.
//
// Imports are never deleted: completing or cancelling a shipment archives the
// record with its final pipeline state.

type ImportStatus string

const (
	ImportStatusActive    ImportStatus = "active"
	ImportStatusCompleted ImportStatus = "completed"
	ImportStatusCancelled ImportStatus = "cancelled"
)

// Import is the import shipment aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version: number attribute used for optimistic concurrency on pipeline
//     transitions (compare-and-swap on every write).
//
// Financials is the snapshot computed at creation time; the cost engine can
// recompute it on demand from the same inputs.

type Import struct {
	ID                string              `json:"id"`
	ClientID          string              `json:"client_id"`
	ShippingMethod    ShippingMethod      `json:"shipping_method"`
	Incoterm          Incoterm            `json:"incoterm"`
	Status            ImportStatus        `json:"status"`
	Financials        ImportFinancials    `json:"financials"`
	FinancedAmountBRL float64             `json:"financed_amount_brl"`
	DownPaymentBRL    float64             `json:"down_payment_brl"`
	Pipeline          ImportPipelineState `json:"pipeline"`
	Version           int64               `json:"version"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}
