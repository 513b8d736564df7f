package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "importfacil/internal/adapter/http/dto/response"
	"importfacil/internal/usecase"
	"importfacil/pkg"

	"github.com/gin-gonic/gin"
)

// DownPaymentHandler handles HTTP requests for import down payments.

type DownPaymentHandler struct {
	usecase usecase.IDownPaymentUseCase
}

func NewDownPaymentHandler(uc usecase.IDownPaymentUseCase) *DownPaymentHandler {
	return &DownPaymentHandler{usecase: uc}
}

// CreateDownPayment charges the down payment computed when the import was
// registered. The body is forwarded to the payment provider as-is, minus the
// fields pinned server-side.
func (h *DownPaymentHandler) CreateDownPayment(c *gin.Context) {
	importID := c.Param("import_id")
	log.Printf("[downpayment][handler] create start import_id=%s", importID)

	providerPayload, err := readProviderPayload(c)
	if err != nil {
		log.Printf("[downpayment][handler] invalid payload import_id=%s err=%v", importID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateForImport(c.Request.Context(), importID, providerPayload)
	if err != nil {
		log.Printf("[downpayment][handler] create failed import_id=%s err=%v", importID, err)
		appErr := mapDownPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[downpayment][handler] create success import_id=%s payment_id=%s status=%s", importID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromDownPayment(created))
}

// GetDownPayment returns the latest down payment recorded for an import.
func (h *DownPaymentHandler) GetDownPayment(c *gin.Context) {
	importID := c.Param("import_id")

	latest, err := h.usecase.GetLatestByImportID(c.Request.Context(), importID)
	if err != nil {
		appErr := mapDownPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDownPayment(latest))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapDownPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidImportID),
		errors.Is(err, usecase.ErrInvalidProviderPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrImportNotFound):
		return pkg.NewDomainErrorSimple("IMPORT_NOT_FOUND", "Import not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrImportNotActive):
		return pkg.NewDomainErrorSimple("IMPORT_NOT_ACTIVE", "Import is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoDownPaymentDue):
		return pkg.NewDomainErrorSimple("NO_DOWN_PAYMENT_DUE", "No down payment due for this import", http.StatusConflict)
	case errors.Is(err, usecase.ErrDownPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
