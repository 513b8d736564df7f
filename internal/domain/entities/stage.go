package entities

// ShippingMethod selects which subset of the stage catalog applies to a
// shipment.

type ShippingMethod string

const (
	ShippingMethodSea ShippingMethod = "sea"
	ShippingMethodAir ShippingMethod = "air"
)

func (m ShippingMethod) Valid() bool {
	return m == ShippingMethodSea || m == ShippingMethodAir
}

type StageID string

const (
	StageOrderPlaced           StageID = "order_placed"
	StageProduction            StageID = "production"
	StagePreShipmentInspection StageID = "pre_shipment_inspection"
	StageExportClearance       StageID = "export_clearance"
	StageContainerLoading      StageID = "container_loading"
	StageOceanFreight          StageID = "ocean_freight"
	StageAirFreight            StageID = "air_freight"
	StageCustomsClearance      StageID = "customs_clearance"
	StageDomesticTransit       StageID = "domestic_transit"
	StageDelivered             StageID = "delivered"
)

// Stage is an immutable catalog entry. Rendering concerns (icons, labels per
// locale) live in the presentation layer, keyed by ID.
//
// Orders are strictly increasing across the catalog.

type Stage struct {
	ID            StageID          `json:"id"`
	Order         int              `json:"order"`
	Name          string           `json:"name"`
	EstimatedDays int              `json:"estimated_days"`
	AppliesTo     []ShippingMethod `json:"applies_to"`
}

func (s Stage) AppliesToMethod(m ShippingMethod) bool {
	for _, method := range s.AppliesTo {
		if method == m {
			return true
		}
	}
	return false
}
