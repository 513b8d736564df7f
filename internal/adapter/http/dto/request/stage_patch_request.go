package request

import (
	"errors"
	"strings"
	"time"

	"importfacil/internal/domain/entities"
)

var ErrInvalidStageStatus = errors.New("invalid stage status")

// StagePatchRequest is a partial edit of one stage's tracking details. Absent
// fields are left untouched.
type StagePatchRequest struct {
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Note        *string    `json:"note"`
	Status      *string    `json:"status"`
}

func (r StagePatchRequest) ToPatch() (entities.StageDetailPatch, error) {
	patch := entities.StageDetailPatch{
		StartedAt:   r.StartedAt,
		CompletedAt: r.CompletedAt,
		Note:        r.Note,
	}
	if r.Status != nil {
		status := entities.StageStatus(strings.ToLower(strings.TrimSpace(*r.Status)))
		switch status {
		case entities.StageStatusPending, entities.StageStatusCurrent, entities.StageStatusCompleted, entities.StageStatusDelayed:
			patch.Status = &status
		default:
			return entities.StageDetailPatch{}, ErrInvalidStageStatus
		}
	}
	return patch, nil
}
