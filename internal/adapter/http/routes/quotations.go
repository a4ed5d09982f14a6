package routes

import (
	"cotafacil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations       = "/quotations"
	PathPricing          = "/pricing"
	PathHistoricalPrices = "/historical-prices"
	PathReports          = "/reports"
)

func addQuotationRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler, pricingHandler *handlers.PricingHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("", quotationHandler.ListQuotations)
		quotations.GET("/:id", quotationHandler.GetQuotation)
		quotations.PUT("/:id", quotationHandler.UpdateQuotation)
		quotations.DELETE("/:id", quotationHandler.DeleteQuotation)
		quotations.PATCH("/:id/status", quotationHandler.UpdateQuotationStatus)

		quotations.POST("/:id/items", quotationHandler.AddItem)
		quotations.PUT("/:id/items/:item_id", quotationHandler.UpdateItem)
		quotations.DELETE("/:id/items/:item_id", quotationHandler.RemoveItem)

		quotations.POST("/:id/risk-analysis", pricingHandler.AnalyzeQuotation)
	}

	pricing := rg.Group(PathPricing)
	{
		pricing.POST("/suggestion", pricingHandler.SuggestPrice)
	}

	historicalPrices := rg.Group(PathHistoricalPrices)
	{
		historicalPrices.POST("", pricingHandler.RecordHistoricalPrice)
		historicalPrices.GET("", pricingHandler.ListHistoricalPrices)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/summary", pricingHandler.SummaryReport)
		reports.POST("/comparison", pricingHandler.CompareQuotations)
	}
}
