package handlers

import (
	"errors"
	"log"
	"net/http"

	request "importfacil/internal/adapter/http/dto/request"
	response "importfacil/internal/adapter/http/dto/response"
	"importfacil/internal/domain/catalog"
	"importfacil/internal/domain/entities"
	"importfacil/internal/domain/pipeline"
	"importfacil/internal/usecase"
	"importfacil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidStagePayload = pkg.NewDomainErrorSimple("INVALID_STAGE_INPUT", "Invalid stage payload", http.StatusBadRequest)
)

// PipelineHandler handles HTTP requests for shipment pipeline tracking.

type PipelineHandler struct {
	usecase usecase.IPipelineUseCase
}

func NewPipelineHandler(uc usecase.IPipelineUseCase) *PipelineHandler {
	return &PipelineHandler{usecase: uc}
}

// GetPipeline renders the full stage list with computed statuses.
func (h *PipelineHandler) GetPipeline(c *gin.Context) {
	importID := c.Param("import_id")

	view, err := h.usecase.GetPipeline(c.Request.Context(), importID)
	if err != nil {
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPipelineView(view))
}

// AdvanceStage moves the shipment to the next applicable stage.
func (h *PipelineHandler) AdvanceStage(c *gin.Context) {
	importID := c.Param("import_id")
	log.Printf("[pipeline][handler] advance start import_id=%s", importID)

	imp, err := h.usecase.AdvanceStage(c.Request.Context(), importID)
	if err != nil {
		log.Printf("[pipeline][handler] advance failed import_id=%s err=%v", importID, err)
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromImport(imp))
}

// RevertStage moves the shipment one stage back.
func (h *PipelineHandler) RevertStage(c *gin.Context) {
	importID := c.Param("import_id")
	log.Printf("[pipeline][handler] revert start import_id=%s", importID)

	imp, err := h.usecase.RevertStage(c.Request.Context(), importID)
	if err != nil {
		log.Printf("[pipeline][handler] revert failed import_id=%s err=%v", importID, err)
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromImport(imp))
}

// PatchStage applies a partial edit to one stage's tracking details.
func (h *PipelineHandler) PatchStage(c *gin.Context) {
	importID := c.Param("import_id")
	stageID := entities.StageID(c.Param("stage_id"))

	var payload request.StagePatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStagePayload.HTTPStatus, errInvalidStagePayload.ToHTTPError())
		return
	}

	patch, err := payload.ToPatch()
	if err != nil {
		c.JSON(errInvalidStagePayload.HTTPStatus, errInvalidStagePayload.ToHTTPError())
		return
	}

	imp, err := h.usecase.PatchStageDetails(c.Request.Context(), importID, stageID, patch)
	if err != nil {
		log.Printf("[pipeline][handler] patch failed import_id=%s stage_id=%s err=%v", importID, stageID, err)
		appErr := mapPipelineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromImport(imp))
}

func mapPipelineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidImportID), errors.Is(err, pipeline.ErrInvalidShippingMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImportNotFound):
		return pkg.NewDomainErrorSimple("IMPORT_NOT_FOUND", "Import not found", http.StatusNotFound)
	case errors.Is(err, catalog.ErrStageNotFound):
		return pkg.NewDomainErrorSimple("STAGE_NOT_FOUND", "Stage not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrImportNotActive):
		return pkg.NewDomainErrorSimple("IMPORT_NOT_ACTIVE", "Import is not active", http.StatusConflict)
	case errors.Is(err, pipeline.ErrNoNextStage):
		return pkg.NewDomainErrorSimple("NO_NEXT_STAGE", "Shipment is already at the last stage", http.StatusConflict)
	case errors.Is(err, pipeline.ErrNoPreviousStage):
		return pkg.NewDomainErrorSimple("NO_PREVIOUS_STAGE", "Shipment is already at the first stage", http.StatusConflict)
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Pipeline was modified concurrently, please retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
