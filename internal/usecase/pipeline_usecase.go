package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"importfacil/internal/domain/catalog"
	"importfacil/internal/domain/entities"
	"importfacil/internal/domain/pipeline"
	"importfacil/internal/usecase/interfaces"
)

var ErrVersionConflict = errors.New("pipeline version conflict")

// StageView is one catalog stage annotated with its computed status for a
// given shipment.
type StageView struct {
	ID            entities.StageID
	Order         int
	Name          string
	EstimatedDays int
	Status        entities.StageStatus
	Detail        entities.StageDetail
}

// PipelineView is the rendered pipeline: state plus progress plus per-stage
// statuses over the method-filtered catalog.
type PipelineView struct {
	ImportID string
	State    entities.ImportPipelineState
	Progress int
	Stages   []StageView
}

// IPipelineUseCase applies pipeline transitions against the persisted import,
// guarding every write with the version compare-and-swap.

type IPipelineUseCase interface {
	GetPipeline(ctx context.Context, importID string) (PipelineView, error)
	AdvanceStage(ctx context.Context, importID string) (entities.Import, error)
	RevertStage(ctx context.Context, importID string) (entities.Import, error)
	PatchStageDetails(ctx context.Context, importID string, stageID entities.StageID, patch entities.StageDetailPatch) (entities.Import, error)
}

type PipelineUseCase struct {
	repo interfaces.IImportRepository
	now  func() time.Time
}

var _ IPipelineUseCase = (*PipelineUseCase)(nil)

func NewPipelineUseCase(repo interfaces.IImportRepository) *PipelineUseCase {
	return &PipelineUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *PipelineUseCase) GetPipeline(ctx context.Context, importID string) (PipelineView, error) {
	imp, err := u.load(ctx, importID)
	if err != nil {
		return PipelineView{}, err
	}

	now := u.now()
	progress, err := pipeline.Progress(imp.Pipeline)
	if err != nil {
		return PipelineView{}, err
	}

	applicable := catalog.StagesFor(imp.ShippingMethod)
	stages := make([]StageView, 0, len(applicable))
	for _, s := range applicable {
		status, err := pipeline.StageStatus(imp.Pipeline, s.ID, now)
		if err != nil {
			return PipelineView{}, err
		}
		stages = append(stages, StageView{
			ID:            s.ID,
			Order:         s.Order,
			Name:          s.Name,
			EstimatedDays: s.EstimatedDays,
			Status:        status,
			Detail:        imp.Pipeline.StageDetails[s.ID],
		})
	}

	return PipelineView{ImportID: imp.ID, State: imp.Pipeline, Progress: progress, Stages: stages}, nil
}

// AdvanceStage moves the persisted pipeline one step forward. The write is
// conditional on the version read here; a concurrent transition surfaces as
// ErrVersionConflict and the caller retries against fresh state.
func (u *PipelineUseCase) AdvanceStage(ctx context.Context, importID string) (entities.Import, error) {
	return u.transition(ctx, importID, "advance", func(state entities.ImportPipelineState) (entities.ImportPipelineState, error) {
		return pipeline.Advance(state, u.now())
	})
}

// RevertStage moves the persisted pipeline one step back.
func (u *PipelineUseCase) RevertStage(ctx context.Context, importID string) (entities.Import, error) {
	return u.transition(ctx, importID, "revert", func(state entities.ImportPipelineState) (entities.ImportPipelineState, error) {
		return pipeline.Revert(state)
	})
}

// PatchStageDetails merges a manual stage-detail edit, including the operator
// override that marks an arbitrary stage complete.
func (u *PipelineUseCase) PatchStageDetails(ctx context.Context, importID string, stageID entities.StageID, patch entities.StageDetailPatch) (entities.Import, error) {
	return u.transition(ctx, importID, "patch-details", func(state entities.ImportPipelineState) (entities.ImportPipelineState, error) {
		return pipeline.UpdateStageDetails(state, stageID, patch, u.now())
	})
}

func (u *PipelineUseCase) transition(
	ctx context.Context,
	importID string,
	action string,
	apply func(entities.ImportPipelineState) (entities.ImportPipelineState, error),
) (entities.Import, error) {
	imp, err := u.load(ctx, importID)
	if err != nil {
		return entities.Import{}, err
	}
	if imp.Status != entities.ImportStatusActive {
		log.Printf("[pipeline][usecase] %s rejected import_id=%s status=%s", action, imp.ID, imp.Status)
		return entities.Import{}, ErrImportNotActive
	}

	newState, err := apply(imp.Pipeline)
	if err != nil {
		return entities.Import{}, err
	}

	updated, err := u.repo.UpdatePipeline(ctx, imp.ID, imp.Version, newState)
	if err != nil {
		return entities.Import{}, err
	}
	if updated.ID == "" {
		// The item existed moments ago; the condition failed on version.
		log.Printf("[pipeline][usecase] %s conflict import_id=%s version=%d", action, imp.ID, imp.Version)
		return entities.Import{}, ErrVersionConflict
	}
	log.Printf("[pipeline][usecase] %s success import_id=%s stage=%s version=%d", action, updated.ID, updated.Pipeline.CurrentStageID, updated.Version)
	return updated, nil
}

func (u *PipelineUseCase) load(ctx context.Context, importID string) (entities.Import, error) {
	importID = strings.TrimSpace(importID)
	if importID == "" {
		return entities.Import{}, ErrInvalidImportID
	}

	imp, err := u.repo.GetByID(ctx, importID)
	if err != nil {
		return entities.Import{}, err
	}
	if imp.ID == "" {
		return entities.Import{}, ErrImportNotFound
	}
	return imp, nil
}
