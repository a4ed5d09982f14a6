package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "cotafacil/internal/adapter/http/dto/request"
	response "cotafacil/internal/adapter/http/dto/response"
	"cotafacil/internal/domain/entities"
	"cotafacil/internal/usecase"
	"cotafacil/internal/usecase/interfaces"
	"cotafacil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)
)

// PricingHandler handles price suggestions, risk analysis, historical
// price records and summary reports.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// SuggestPrice returns a suggested unit price for an item based on its
// cost, the requested competitive level and recorded historical prices.
func (h *PricingHandler) SuggestPrice(c *gin.Context) {
	var payload request.PriceSuggestionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	in, err := payload.ResolveInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("UNKNOWN_COMPETITIVE_LEVEL", "Unknown competitive level", http.StatusBadRequest).ToHTTPError())
		return
	}

	suggestion, err := h.usecase.SuggestPrice(c.Request.Context(), in)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, suggestion)
}

// AnalyzeQuotation recomputes and returns the profitability metrics,
// risk indicators and market comparisons of a stored quotation.
func (h *PricingHandler) AnalyzeQuotation(c *gin.Context) {
	analysis, err := h.usecase.AnalyzeQuotation(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRiskAnalysis(analysis))
}

func (h *PricingHandler) SummaryReport(c *gin.Context) {
	filter := interfaces.QuotationFilter{
		Status:     entities.QuotationStatus(strings.ToLower(strings.TrimSpace(c.Query("status")))),
		CustomerID: strings.TrimSpace(c.Query("customer_id")),
	}

	report, err := h.usecase.SummaryReport(c.Request.Context(), filter)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

// CompareQuotations compares a set of stored quotations side by side.
func (h *PricingHandler) CompareQuotations(c *gin.Context) {
	var payload request.QuotationComparisonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	comparison, err := h.usecase.CompareQuotations(c.Request.Context(), payload.QuotationIDs)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, comparison)
}

func (h *PricingHandler) RecordHistoricalPrice(c *gin.Context) {
	var payload request.HistoricalPriceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	record, err := h.usecase.RecordHistoricalPrice(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromHistoricalPrice(record))
}

func (h *PricingHandler) ListHistoricalPrices(c *gin.Context) {
	itemName := strings.TrimSpace(c.Query("item_name"))
	if itemName == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	prices, err := h.usecase.ListHistoricalPrices(c.Request.Context(), itemName)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHistoricalPrices(prices))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemName),
		errors.Is(err, usecase.ErrInvalidUnitCost),
		errors.Is(err, usecase.ErrInvalidUnitPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
