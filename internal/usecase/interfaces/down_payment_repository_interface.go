package interfaces

import (
	"context"
	"importfacil/internal/domain/entities"
)

// IDownPaymentRepository abstracts DynamoDB persistence for DownPayment.

type IDownPaymentRepository interface {
	Create(ctx context.Context, p entities.DownPayment) (entities.DownPayment, error)
	GetByID(ctx context.Context, id string) (entities.DownPayment, error)
	ListByImportID(ctx context.Context, importID string) ([]entities.DownPayment, error)
}
