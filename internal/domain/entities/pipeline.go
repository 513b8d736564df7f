package entities

import "time"

// StageStatus is the computed status of a single pipeline stage.

type StageStatus string

const (
	StageStatusPending   StageStatus = "pending"
	StageStatusCurrent   StageStatus = "current"
	StageStatusCompleted StageStatus = "completed"
	StageStatusDelayed   StageStatus = "delayed"
)

// StageDetail carries the operational annotations attached to one stage of a
// shipment's pipeline.

type StageDetail struct {
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Note        string     `json:"note,omitempty"`
	Delayed     bool       `json:"delayed,omitempty"`
}

// StageDetailPatch is a partial update merged into a StageDetail. Nil fields
// are left untouched. Setting Status to StageStatusCompleted marks the stage
// complete even out of strict order (manual operator override).

type StageDetailPatch struct {
	StartedAt   *time.Time   `json:"started_at,omitempty"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	Note        *string      `json:"note,omitempty"`
	Status      *StageStatus `json:"status,omitempty"`
}

// ImportPipelineState is the per-shipment pipeline record. It is a value type:
// transitions never mutate it in place, they return a new state.
//
// Invariants:
//   - CurrentStageID belongs to the stage subset for ShippingMethod.
//   - CompletedStageIDs is a set (insertion order irrelevant); manual
//     overrides may complete stages after the current one.

type ImportPipelineState struct {
	ShippingMethod      ShippingMethod          `json:"shipping_method"`
	CurrentStageID      StageID                 `json:"current_stage_id"`
	CompletedStageIDs   []StageID               `json:"completed_stage_ids"`
	StageDetails        map[StageID]StageDetail `json:"stage_details"`
	CreatedAt           time.Time               `json:"created_at"`
	EstimatedDeliveryAt *time.Time              `json:"estimated_delivery_at,omitempty"`
}

// IsCompleted reports whether the stage is in the completed set.
func (s ImportPipelineState) IsCompleted(id StageID) bool {
	for _, c := range s.CompletedStageIDs {
		if c == id {
			return true
		}
	}
	return false
}

// Clone deep-copies the state so transitions can build a new value without
// sharing the completed set or the details map with the input.
func (s ImportPipelineState) Clone() ImportPipelineState {
	out := s
	out.CompletedStageIDs = make([]StageID, len(s.CompletedStageIDs))
	copy(out.CompletedStageIDs, s.CompletedStageIDs)
	out.StageDetails = make(map[StageID]StageDetail, len(s.StageDetails))
	for k, v := range s.StageDetails {
		out.StageDetails[k] = v
	}
	if s.EstimatedDeliveryAt != nil {
		eta := *s.EstimatedDeliveryAt
		out.EstimatedDeliveryAt = &eta
	}
	return out
}
