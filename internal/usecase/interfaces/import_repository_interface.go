package interfaces

import (
	"context"
	"importfacil/internal/domain/entities"
)

// IImportRepository abstracts DynamoDB persistence for Import aggregates.
//
// UpdatePipeline is a compare-and-swap on the version attribute: concurrent
// transitions against the same shipment apply at most once. A zero-value
// Import with nil error means the conditional write did not apply (missing
// item or stale version); callers that loaded the item first treat it as a
// version conflict.

type IImportRepository interface {
	Create(ctx context.Context, imp entities.Import) (entities.Import, error)
	GetByID(ctx context.Context, id string) (entities.Import, error)
	UpdatePipeline(ctx context.Context, id string, expectedVersion int64, state entities.ImportPipelineState) (entities.Import, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.ImportStatus) (entities.Import, error)
}
