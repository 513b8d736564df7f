package handlers

import (
	"errors"
	"net/http"

	request "importfacil/internal/adapter/http/dto/request"
	response "importfacil/internal/adapter/http/dto/response"
	"importfacil/internal/domain/creditledger"
	"importfacil/internal/usecase"
	"importfacil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCreditPayload = pkg.NewDomainErrorSimple("INVALID_CREDIT_INPUT", "Invalid credit validation payload", http.StatusBadRequest)
)

// CreditHandler handles credit lookups and standalone validations.

type CreditHandler struct {
	usecase usecase.IImportUseCase
}

func NewCreditHandler(uc usecase.IImportUseCase) *CreditHandler {
	return &CreditHandler{usecase: uc}
}

// ValidateCredit checks a hypothetical import value against the client's
// credit line. A rejection is a successful validation with approved=false.
func (h *CreditHandler) ValidateCredit(c *gin.Context) {
	var payload request.CreditValidationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCreditPayload.HTTPStatus, errInvalidCreditPayload.ToHTTPError())
		return
	}

	clientID := payload.ResolveClientID()
	if clientID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	decision, err := h.usecase.ValidateCredit(c.Request.Context(), clientID, payload.ImportValueBRL)
	if err != nil {
		var insufficient *creditledger.InsufficientCreditError
		if errors.As(err, &insufficient) {
			c.JSON(http.StatusConflict, response.FromInsufficientCredit(clientID, payload.ImportValueBRL, insufficient))
			return
		}
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCreditDecision(decision))
}

// GetCredit returns the stored credit application for a client.
func (h *CreditHandler) GetCredit(c *gin.Context) {
	clientID := c.Param("client_id")

	snapshot, err := h.usecase.GetCreditByClientID(c.Request.Context(), clientID)
	if err != nil {
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCreditSnapshot(snapshot))
}
