package pipeline

import (
	"errors"
	"fmt"
	"math"
	"time"

	"importfacil/internal/domain/catalog"
	"importfacil/internal/domain/entities"
)

var (
	ErrInvalidShippingMethod = errors.New("invalid shipping method")
	ErrNoNextStage           = errors.New("already at the last stage")
	ErrNoPreviousStage       = errors.New("already at the first stage")
)

// NewState builds the pipeline state for a freshly registered shipment: first
// applicable stage current and started, nothing completed, delivery estimated
// from the catalog durations.
func NewState(method entities.ShippingMethod, now time.Time) (entities.ImportPipelineState, error) {
	if !method.Valid() {
		return entities.ImportPipelineState{}, fmt.Errorf("%w: %s", ErrInvalidShippingMethod, method)
	}

	first := catalog.First(method)
	startedAt := now
	eta := now.AddDate(0, 0, catalog.EstimatedTransitDays(method))

	return entities.ImportPipelineState{
		ShippingMethod:    method,
		CurrentStageID:    first.ID,
		CompletedStageIDs: []entities.StageID{},
		StageDetails: map[entities.StageID]entities.StageDetail{
			first.ID: {StartedAt: &startedAt},
		},
		CreatedAt:           now,
		EstimatedDeliveryAt: &eta,
	}, nil
}

// Progress is the position of the current stage within the method-filtered
// list, as an integer percentage. The terminal stage yields exactly 100.
func Progress(state entities.ImportPipelineState) (int, error) {
	applicable := catalog.StagesFor(state.ShippingMethod)
	idx := -1
	for i, s := range applicable {
		if s.ID == state.CurrentStageID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, fmt.Errorf("%w: %s", catalog.ErrStageNotFound, state.CurrentStageID)
	}
	return int(math.Round(float64(idx+1) / float64(len(applicable)) * 100)), nil
}

// StageStatus computes the status of one stage. A started, unfinished stage
// whose elapsed time exceeds its estimated duration reports delayed,
// overriding pending/current; completion clears the delay.
func StageStatus(state entities.ImportPipelineState, stageID entities.StageID, now time.Time) (entities.StageStatus, error) {
	stage, err := catalog.Get(stageID)
	if err != nil {
		return "", err
	}

	detail := state.StageDetails[stageID]
	completed := state.IsCompleted(stageID) || detail.CompletedAt != nil

	if !completed && detail.StartedAt != nil {
		overdue := now.Sub(*detail.StartedAt) > time.Duration(stage.EstimatedDays)*24*time.Hour
		if overdue {
			return entities.StageStatusDelayed, nil
		}
	}
	if completed {
		return entities.StageStatusCompleted, nil
	}
	if stageID == state.CurrentStageID {
		return entities.StageStatusCurrent, nil
	}
	return entities.StageStatusPending, nil
}

// Advance moves the pipeline one step forward within the method-filtered
// list: the current stage joins the completed set and the next stage becomes
// current with its StartedAt stamped if absent.
func Advance(state entities.ImportPipelineState, now time.Time) (entities.ImportPipelineState, error) {
	next, ok, err := catalog.NextFor(state.ShippingMethod, state.CurrentStageID)
	if err != nil {
		return entities.ImportPipelineState{}, err
	}
	if !ok {
		return entities.ImportPipelineState{}, ErrNoNextStage
	}

	out := state.Clone()
	if !out.IsCompleted(state.CurrentStageID) {
		out.CompletedStageIDs = append(out.CompletedStageIDs, state.CurrentStageID)
	}
	out.CurrentStageID = next.ID

	detail := out.StageDetails[next.ID]
	if detail.StartedAt == nil {
		startedAt := now
		detail.StartedAt = &startedAt
		out.StageDetails[next.ID] = detail
	}
	return out, nil
}

// Revert moves the pipeline one step back: the previous stage leaves the
// completed set (if present) and becomes current again.
func Revert(state entities.ImportPipelineState) (entities.ImportPipelineState, error) {
	prev, ok, err := catalog.PreviousFor(state.ShippingMethod, state.CurrentStageID)
	if err != nil {
		return entities.ImportPipelineState{}, err
	}
	if !ok {
		return entities.ImportPipelineState{}, ErrNoPreviousStage
	}

	out := state.Clone()
	filtered := out.CompletedStageIDs[:0]
	for _, id := range out.CompletedStageIDs {
		if id != prev.ID {
			filtered = append(filtered, id)
		}
	}
	out.CompletedStageIDs = filtered
	out.CurrentStageID = prev.ID
	return out, nil
}

// UpdateStageDetails merges a partial edit into one stage's details. Operators
// can mark any stage complete directly, even out of strict order; that escape
// hatch is preserved here.
func UpdateStageDetails(state entities.ImportPipelineState, stageID entities.StageID, patch entities.StageDetailPatch, now time.Time) (entities.ImportPipelineState, error) {
	if _, err := catalog.Get(stageID); err != nil {
		return entities.ImportPipelineState{}, err
	}

	out := state.Clone()
	detail := out.StageDetails[stageID]

	if patch.StartedAt != nil {
		startedAt := *patch.StartedAt
		detail.StartedAt = &startedAt
	}
	if patch.CompletedAt != nil {
		completedAt := *patch.CompletedAt
		detail.CompletedAt = &completedAt
	}
	if patch.Note != nil {
		detail.Note = *patch.Note
	}
	if patch.Status != nil && *patch.Status == entities.StageStatusCompleted {
		if !out.IsCompleted(stageID) {
			out.CompletedStageIDs = append(out.CompletedStageIDs, stageID)
		}
		if detail.CompletedAt == nil {
			completedAt := now
			detail.CompletedAt = &completedAt
		}
	}
	detail.Delayed = false
	if status, err := statusWithDetail(out, stageID, detail, now); err == nil {
		detail.Delayed = status == entities.StageStatusDelayed
	}

	out.StageDetails[stageID] = detail
	return out, nil
}

func statusWithDetail(state entities.ImportPipelineState, stageID entities.StageID, detail entities.StageDetail, now time.Time) (entities.StageStatus, error) {
	probe := state.Clone()
	probe.StageDetails[stageID] = detail
	return StageStatus(probe, stageID, now)
}
