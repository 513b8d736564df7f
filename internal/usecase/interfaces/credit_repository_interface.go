package interfaces

import (
	"context"
	"importfacil/internal/domain/entities"
)

// ICreditRepository abstracts DynamoDB persistence for credit applications.
//
// ReserveCredit must serialize concurrent draws on the same credit line: the
// write is conditional on used_amount still matching expectedUsed, so two
// imports cannot both pass validation against the same stale snapshot. A
// zero-value snapshot with nil error means the condition failed.

type ICreditRepository interface {
	GetByClientID(ctx context.Context, clientID string) (entities.CreditSnapshot, error)
	ReserveCredit(ctx context.Context, clientID string, amount float64, expectedUsed float64) (entities.CreditSnapshot, error)
}
