package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "importfacil/internal/adapter/http/dto/request"
	response "importfacil/internal/adapter/http/dto/response"
	"importfacil/internal/domain/costing"
	"importfacil/internal/domain/creditledger"
	"importfacil/internal/domain/entities"
	"importfacil/internal/usecase"
	"importfacil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidImportPayload = pkg.NewDomainErrorSimple("INVALID_IMPORT_INPUT", "Invalid import payload", http.StatusBadRequest)
)

// ImportHandler handles HTTP requests for import registration and lifecycle.

type ImportHandler struct {
	usecase usecase.IImportUseCase
}

func NewImportHandler(uc usecase.IImportUseCase) *ImportHandler {
	return &ImportHandler{usecase: uc}
}

// CreateImport prices the shipment, reserves credit and registers the import.
func (h *ImportHandler) CreateImport(c *gin.Context) {
	var payload request.CreateImportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidImportPayload.HTTPStatus, errInvalidImportPayload.ToHTTPError())
		return
	}

	clientID := payload.ResolveClientID()
	if clientID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	costInput, err := payload.Costs.ResolveCostInput()
	if err != nil {
		c.JSON(errInvalidImportPayload.HTTPStatus, errInvalidImportPayload.ToHTTPError())
		return
	}

	imp, err := h.usecase.CreateImport(c.Request.Context(), usecase.CreateImportCommand{
		ClientID:       clientID,
		ShippingMethod: payload.ResolveShippingMethod(),
		Costs:          costInput,
	})
	if err != nil {
		log.Printf("[import][handler] create failed client_id=%s err=%v", clientID, err)
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[import][handler] create success import_id=%s client_id=%s", imp.ID, clientID)

	c.JSON(http.StatusCreated, response.FromImport(imp))
}

// GetImport returns one import by id.
func (h *ImportHandler) GetImport(c *gin.Context) {
	importID := c.Param("import_id")

	imp, err := h.usecase.GetByID(c.Request.Context(), importID)
	if err != nil {
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromImport(imp))
}

func (h *ImportHandler) CompleteImport(c *gin.Context) {
	h.patchImportStatus(c, h.usecase.CompleteByID)
}

func (h *ImportHandler) CancelImport(c *gin.Context) {
	h.patchImportStatus(c, h.usecase.CancelByID)
}

func (h *ImportHandler) patchImportStatus(c *gin.Context, updater func(ctx context.Context, id string) (entities.Import, error)) {
	importID := c.Param("import_id")

	imp, err := updater(c.Request.Context(), importID)
	if err != nil {
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromImport(imp))
}

func mapImportError(err error) *pkg.AppError {
	var insufficient *creditledger.InsufficientCreditError
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidImportID),
		errors.Is(err, usecase.ErrInvalidShippingMethod),
		errors.Is(err, costing.ErrInvalidRate),
		errors.Is(err, costing.ErrInvalidPercent),
		errors.Is(err, costing.ErrInvalidIncoterm),
		errors.Is(err, costing.ErrInvalidLineItem),
		errors.Is(err, creditledger.ErrInvalidDownPaymentPercent):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &insufficient):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_CREDIT", insufficient.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrCreditConflict):
		return pkg.NewDomainErrorSimple("CREDIT_RESERVATION_CONFLICT", "Credit reservation conflict, please retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrCreditNotFound):
		return pkg.NewDomainErrorSimple("CREDIT_APPLICATION_NOT_FOUND", "Credit application not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrImportNotFound):
		return pkg.NewDomainErrorSimple("IMPORT_NOT_FOUND", "Import not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
