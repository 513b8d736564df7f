package response

import (
	"time"

	"importfacil/internal/usecase"
)

type StageResponse struct {
	StageID       string     `json:"stage_id"`
	Order         int        `json:"order"`
	Name          string     `json:"name"`
	EstimatedDays int        `json:"estimated_days"`
	Status        string     `json:"status"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	Note          string     `json:"note,omitempty"`
}

type PipelineResponse struct {
	ImportID            string          `json:"import_id"`
	CurrentStageID      string          `json:"current_stage_id"`
	ProgressPercent     int             `json:"progress_percent"`
	EstimatedDeliveryAt *time.Time      `json:"estimated_delivery_at,omitempty"`
	Stages              []StageResponse `json:"stages"`
}

func FromPipelineView(view usecase.PipelineView) PipelineResponse {
	stages := make([]StageResponse, 0, len(view.Stages))
	for _, s := range view.Stages {
		stages = append(stages, StageResponse{
			StageID:       string(s.ID),
			Order:         s.Order,
			Name:          s.Name,
			EstimatedDays: s.EstimatedDays,
			Status:        string(s.Status),
			StartedAt:     s.Detail.StartedAt,
			CompletedAt:   s.Detail.CompletedAt,
			Note:          s.Detail.Note,
		})
	}
	return PipelineResponse{
		ImportID:            view.ImportID,
		CurrentStageID:      string(view.State.CurrentStageID),
		ProgressPercent:     view.Progress,
		EstimatedDeliveryAt: view.State.EstimatedDeliveryAt,
		Stages:              stages,
	}
}
