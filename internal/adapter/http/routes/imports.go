package routes

import (
	"importfacil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathImports = "/imports"
	PathCosts   = "/costs"
	PathCredit  = "/credit"
)

func addImportRoutes(rg *gin.RouterGroup, importHandler *handlers.ImportHandler, pipelineHandler *handlers.PipelineHandler, downPaymentHandler *handlers.DownPaymentHandler) {
	imports := rg.Group(PathImports)
	{
		imports.POST("", importHandler.CreateImport)
		imports.GET("/:import_id", importHandler.GetImport)
		imports.PATCH("/:import_id/complete", importHandler.CompleteImport)
		imports.PATCH("/:import_id/cancel", importHandler.CancelImport)

		imports.GET("/:import_id/pipeline", pipelineHandler.GetPipeline)
		imports.POST("/:import_id/pipeline/advance", pipelineHandler.AdvanceStage)
		imports.POST("/:import_id/pipeline/revert", pipelineHandler.RevertStage)
		imports.PATCH("/:import_id/pipeline/stages/:stage_id", pipelineHandler.PatchStage)

		imports.POST("/:import_id/down-payment", downPaymentHandler.CreateDownPayment)
		imports.GET("/:import_id/down-payment", downPaymentHandler.GetDownPayment)
	}
}

func addCostRoutes(rg *gin.RouterGroup, costHandler *handlers.CostHandler, creditHandler *handlers.CreditHandler) {
	costs := rg.Group(PathCosts)
	{
		costs.POST("/simulate", costHandler.SimulateCosts)
	}

	credit := rg.Group(PathCredit)
	{
		credit.POST("/validate", creditHandler.ValidateCredit)
		credit.GET("/:client_id", creditHandler.GetCredit)
	}
}
