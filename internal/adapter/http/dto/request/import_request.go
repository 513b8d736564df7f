package request

import (
	"strings"

	"importfacil/internal/domain/entities"
)

// CreateImportRequest registers a new import for a client.
type CreateImportRequest struct {
	ClientID       string                `json:"client_id" binding:"required"`
	ShippingMethod string                `json:"shipping_method" binding:"required"`
	Costs          CostSimulationRequest `json:"costs" binding:"required"`
}

func (r CreateImportRequest) ResolveClientID() string {
	return strings.TrimSpace(r.ClientID)
}

func (r CreateImportRequest) ResolveShippingMethod() entities.ShippingMethod {
	return entities.ShippingMethod(strings.ToLower(strings.TrimSpace(r.ShippingMethod)))
}
