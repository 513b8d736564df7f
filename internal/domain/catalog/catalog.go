package catalog

import (
	"errors"
	"fmt"

	"importfacil/internal/domain/entities"
)

// ErrStageNotFound signals a lookup with an unknown stage id. This is a
// programming-error class, not a recoverable user error.
var ErrStageNotFound = errors.New("stage not found")

var both = []entities.ShippingMethod{entities.ShippingMethodSea, entities.ShippingMethodAir}
var seaOnly = []entities.ShippingMethod{entities.ShippingMethodSea}
var airOnly = []entities.ShippingMethod{entities.ShippingMethodAir}

// stages is the full catalog, ordered. Orders run 10,20,... so new stages can
// be inserted without renumbering.
var stages = []entities.Stage{
	{ID: entities.StageOrderPlaced, Order: 10, Name: "Order placed", EstimatedDays: 2, AppliesTo: both},
	{ID: entities.StageProduction, Order: 20, Name: "Production", EstimatedDays: 20, AppliesTo: both},
	{ID: entities.StagePreShipmentInspection, Order: 30, Name: "Pre-shipment inspection", EstimatedDays: 3, AppliesTo: both},
	{ID: entities.StageExportClearance, Order: 40, Name: "Export clearance", EstimatedDays: 5, AppliesTo: both},
	{ID: entities.StageContainerLoading, Order: 50, Name: "Container loading", EstimatedDays: 4, AppliesTo: seaOnly},
	{ID: entities.StageOceanFreight, Order: 60, Name: "Ocean freight", EstimatedDays: 30, AppliesTo: seaOnly},
	{ID: entities.StageAirFreight, Order: 70, Name: "Air freight", EstimatedDays: 3, AppliesTo: airOnly},
	{ID: entities.StageCustomsClearance, Order: 80, Name: "Customs clearance", EstimatedDays: 10, AppliesTo: both},
	{ID: entities.StageDomesticTransit, Order: 90, Name: "Domestic transit", EstimatedDays: 7, AppliesTo: both},
	{ID: entities.StageDelivered, Order: 100, Name: "Delivered", EstimatedDays: 0, AppliesTo: both},
}

// All returns a copy of the full ordered catalog.
func All() []entities.Stage {
	out := make([]entities.Stage, len(stages))
	copy(out, stages)
	return out
}

// StagesFor filters the catalog by shipping method, preserving catalog order.
func StagesFor(method entities.ShippingMethod) []entities.Stage {
	out := make([]entities.Stage, 0, len(stages))
	for _, s := range stages {
		if s.AppliesToMethod(method) {
			out = append(out, s)
		}
	}
	return out
}

// Get resolves a stage by id.
func Get(id entities.StageID) (entities.Stage, error) {
	for _, s := range stages {
		if s.ID == id {
			return s, nil
		}
	}
	return entities.Stage{}, fmt.Errorf("%w: %s", ErrStageNotFound, id)
}

func indexOf(list []entities.Stage, id entities.StageID) int {
	for i, s := range list {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Next returns the stage after id in the full catalog order. The second return
// is false at the terminal stage.
func Next(id entities.StageID) (entities.Stage, bool, error) {
	return adjacent(stages, id, +1)
}

// Previous returns the stage before id in the full catalog order. The second
// return is false at the first stage.
func Previous(id entities.StageID) (entities.Stage, bool, error) {
	return adjacent(stages, id, -1)
}

// NextFor is Next restricted to the method-filtered stage list.
func NextFor(method entities.ShippingMethod, id entities.StageID) (entities.Stage, bool, error) {
	return adjacent(StagesFor(method), id, +1)
}

// PreviousFor is Previous restricted to the method-filtered stage list.
func PreviousFor(method entities.ShippingMethod, id entities.StageID) (entities.Stage, bool, error) {
	return adjacent(StagesFor(method), id, -1)
}

func adjacent(list []entities.Stage, id entities.StageID, step int) (entities.Stage, bool, error) {
	idx := indexOf(list, id)
	if idx < 0 {
		return entities.Stage{}, false, fmt.Errorf("%w: %s", ErrStageNotFound, id)
	}
	next := idx + step
	if next < 0 || next >= len(list) {
		return entities.Stage{}, false, nil
	}
	return list[next], true, nil
}

// First returns the first applicable stage for the method.
func First(method entities.ShippingMethod) entities.Stage {
	return StagesFor(method)[0]
}

// EstimatedTransitDays sums the estimated duration of every applicable stage.
func EstimatedTransitDays(method entities.ShippingMethod) int {
	total := 0
	for _, s := range StagesFor(method) {
		total += s.EstimatedDays
	}
	return total
}
