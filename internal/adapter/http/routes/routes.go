package routes

import (
	"log"
	"strconv"

	_ "cabletv_backoffice/docs" // swag generated docs
	"cabletv_backoffice/internal/adapter/http/handlers"
	repository "cabletv_backoffice/internal/adapter/persistence/repository"
	"cabletv_backoffice/internal/infrastructure/database"
	"cabletv_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
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
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ddb := database.ConnectDynamoDB()

	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	requestRepo := repository.NewActionRequestDynamoRepository(ddb)
	areaRepo := repository.NewAreaDynamoRepository(ddb)
	packageRepo := repository.NewPackageDynamoRepository(ddb)
	inventoryRepo := repository.NewVCInventoryDynamoRepository(ddb)

	registryUseCase := usecase.NewRegistryLookupUseCase(areaRepo, packageRepo, inventoryRepo, logger)
	balanceUseCase := usecase.NewBalanceUseCase(customerRepo, logger)
	statusUseCase := usecase.NewStatusUseCase(customerRepo, requestRepo, inventoryRepo, logger)
	actionRequestUseCase := usecase.NewActionRequestUseCase(requestRepo, customerRepo, logger)
	importUseCase := usecase.NewImportUseCase(registryUseCase, customerRepo, inventoryRepo, logger)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo, registryUseCase, inventoryRepo, logger)
	bulkUseCase := usecase.NewBulkUseCase(customerRepo, registryUseCase, logger)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	statusHandler := handlers.NewStatusHandler(statusUseCase)
	balanceHandler := handlers.NewBalanceHandler(balanceUseCase)
	actionRequestHandler := handlers.NewActionRequestHandler(actionRequestUseCase)
	importHandler := handlers.NewImportHandler(importUseCase)
	bulkHandler := handlers.NewBulkHandler(bulkUseCase)
	registryHandler := handlers.NewRegistryHandler(registryUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBackofficeRoutes(v1, backofficeHandlers{
		customers:      customerHandler,
		status:         statusHandler,
		balance:        balanceHandler,
		actionRequests: actionRequestHandler,
		imports:        importHandler,
		bulk:           bulkHandler,
		registries:     registryHandler,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
