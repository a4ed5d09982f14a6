package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "cotafacil/internal/adapter/http/dto/request"
	response "cotafacil/internal/adapter/http/dto/response"
	"cotafacil/internal/domain/entities"
	"cotafacil/internal/domain/pricing"
	"cotafacil/internal/usecase"
	"cotafacil/internal/usecase/interfaces"
	"cotafacil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler handles HTTP requests for quotations and their line items.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// CreateQuotation creates a new draft quotation, optionally with its
// initial line items.
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.QuotationCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(quotation))
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	quotation, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	filter := interfaces.QuotationFilter{
		Status:     entities.QuotationStatus(strings.ToLower(strings.TrimSpace(c.Query("status")))),
		CustomerID: strings.TrimSpace(c.Query("customer_id")),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
			return
		}
		filter.Limit = int32(limit)
	}

	quotations, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotations(quotations))
}

func (h *QuotationHandler) UpdateQuotation(c *gin.Context) {
	var payload request.QuotationUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToUpdate())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateQuotationStatus moves a quotation along its workflow:
// draft -> submitted -> approved/rejected, approved -> awarded/lost.
func (h *QuotationHandler) UpdateQuotationStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	status, err := payload.ResolveStatus()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("UNKNOWN_STATUS", "Unknown quotation status", http.StatusBadRequest).ToHTTPError())
		return
	}

	quotation, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func (h *QuotationHandler) AddItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(quotation))
}

func (h *QuotationHandler) UpdateItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	quotation, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("id"), c.Param("item_id"), payload.ToEntity())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func (h *QuotationHandler) RemoveItem(c *gin.Context) {
	quotation, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(quotation))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrInvalidQuotationTitle):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidLineItem):
		return pkg.NewDomainError("INVALID_LINE_ITEM", "Line item has negative values", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationNotEditable):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_EDITABLE", "Quotation can no longer be edited", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
