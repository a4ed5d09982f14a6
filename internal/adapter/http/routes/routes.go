package routes

import (
	"log"
	"strconv"

	_ "cotafacil/docs" // This will be auto-generated
	"cotafacil/internal/adapter/http/handlers"
	repository2 "cotafacil/internal/adapter/persistence/repository"
	"cotafacil/internal/domain/pricing"
	"cotafacil/internal/infrastructure/cache"
	"cotafacil/internal/infrastructure/database"
	"cotafacil/internal/infrastructure/marketdata"
	"cotafacil/internal/usecase"

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

	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	historyRepo := repository2.NewHistoricalPriceDynamoRepository(ddb)

	// Redis is optional; without it market averages are computed on
	// every request.
	marketData := marketdata.NewHistoricalAverageProvider(historyRepo, cache.ConnectRedis())

	thresholds := pricing.DefaultThresholds()
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, marketData, thresholds)
	pricingUseCase := usecase.NewPricingUseCase(quotationRepo, historyRepo, marketData, thresholds, pricing.DefaultMarkupBand())

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, quotationHandler, pricingHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
