package routes

import (
	"log"
	"os"
	"strconv"

	_ "importfacil/docs" // This will be auto-generated
	"importfacil/internal/adapter/http/handlers"
	repository2 "importfacil/internal/adapter/persistence/repository"
	"importfacil/internal/infrastructure/database"
	"importfacil/internal/infrastructure/payments"
	"importfacil/internal/usecase"
	"importfacil/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	importRepo := repository2.NewImportDynamoRepository(ddb)
	creditRepo := repository2.NewCreditDynamoRepository(ddb)
	downPaymentRepo := repository2.NewDownPaymentDynamoRepository(ddb)

	importUseCase := usecase.NewImportUseCase(importRepo, creditRepo)
	pipelineUseCase := usecase.NewPipelineUseCase(importRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	downPaymentUseCase := usecase.NewDownPaymentUseCase(downPaymentRepo, importRepo, paymentGateway)

	importHandler := handlers.NewImportHandler(importUseCase)
	pipelineHandler := handlers.NewPipelineHandler(pipelineUseCase)
	costHandler := handlers.NewCostHandler(importUseCase)
	creditHandler := handlers.NewCreditHandler(importUseCase)
	downPaymentHandler := handlers.NewDownPaymentHandler(downPaymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addImportRoutes(v1, importHandler, pipelineHandler, downPaymentHandler)
	addCostRoutes(v1, costHandler, creditHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
