package handlers

import (
	"net/http"

	request "importfacil/internal/adapter/http/dto/request"
	response "importfacil/internal/adapter/http/dto/response"
	"importfacil/internal/usecase"
	"importfacil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCostPayload = pkg.NewDomainErrorSimple("INVALID_COST_INPUT", "Invalid cost simulation payload", http.StatusBadRequest)
)

// CostHandler handles landed-cost simulation requests.

type CostHandler struct {
	usecase usecase.IImportUseCase
}

func NewCostHandler(uc usecase.IImportUseCase) *CostHandler {
	return &CostHandler{usecase: uc}
}

// SimulateCosts prices a hypothetical shipment without persisting anything.
func (h *CostHandler) SimulateCosts(c *gin.Context) {
	var payload request.CostSimulationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCostPayload.HTTPStatus, errInvalidCostPayload.ToHTTPError())
		return
	}

	costInput, err := payload.ResolveCostInput()
	if err != nil {
		c.JSON(errInvalidCostPayload.HTTPStatus, errInvalidCostPayload.ToHTTPError())
		return
	}

	financials, err := h.usecase.SimulateCosts(c.Request.Context(), costInput)
	if err != nil {
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFinancials(financials))
}
