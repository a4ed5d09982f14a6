package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cotafacil/internal/adapter/http/handlers/mocks"
	"cotafacil/internal/domain/entities"
	"cotafacil/internal/domain/pricing"
	"cotafacil/internal/usecase"
	"cotafacil/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func quotationFixture() entities.Quotation {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	margin := 0.4
	return entities.Quotation{
		ID:          "q-1",
		ReferenceID: "QT-1001",
		Title:       "Hydraulic overhaul",
		Status:      entities.QuotationStatusDraft,
		Currency:    "BRL",
		CreatedAt:   now,
		UpdatedAt:   now,
		Items: []entities.LineItem{
			{ID: "item-1", Name: "Pump", Quantity: 2, UnitPrice: 500, UnitCost: 300},
		},
		Metrics: entities.ProfitabilityMetrics{
			TotalCost:     600,
			TotalRevenue:  1000,
			Subtotal:      1000,
			TotalAmount:   1000,
			GrossProfit:   400,
			Margin:        margin,
			MarginDefined: true,
		},
	}
}

func TestQuotationHandler_CreateQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(`{"customer_id":"c-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid line item maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Quotation{}, fmt.Errorf("%w: Pump", pricing.ErrInvalidLineItem))

		body := `{"title":"Hydraulic overhaul","items":[{"name":"Pump","quantity":2,"unit_price":500}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(quotationFixture(), nil)

		body := `{"title":"Hydraulic overhaul","items":[{"name":"Pump","quantity":2,"unit_price":500,"unit_cost":300}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if res["id"] != "q-1" {
			t.Fatalf("expected id q-1, got %v", res["id"])
		}
		metrics, ok := res["metrics"].(map[string]any)
		if !ok {
			t.Fatalf("expected metrics object, got %v", res["metrics"])
		}
		if metrics["margin"] != 0.4 {
			t.Fatalf("expected margin 0.4, got %v", metrics["margin"])
		}
	})
}

func TestQuotationHandler_GetQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations/:id", h.GetQuotation)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("undefined margin renders null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations/:id", h.GetQuotation)

		empty := quotationFixture()
		empty.Items = nil
		empty.Metrics = entities.ProfitabilityMetrics{}
		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(empty, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		metrics := res["metrics"].(map[string]any)
		if metrics["margin"] != nil {
			t.Fatalf("expected null margin, got %v", metrics["margin"])
		}
		if metrics["markup_percentage"] != nil {
			t.Fatalf("expected null markup, got %v", metrics["markup_percentage"])
		}
	})
}

func TestQuotationHandler_ListQuotations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations", h.ListQuotations)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations?limit=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("passes filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.GET("/v1/quotations", h.ListQuotations)

		uc.EXPECT().
			List(gomock.Any(), interfaces.QuotationFilter{Status: "draft", CustomerID: "c-1", Limit: 25}).
			Return([]entities.Quotation{quotationFixture()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations?status=draft&customer_id=c-1&limit=25", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var res []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if len(res) != 1 {
			t.Fatalf("expected 1 quotation, got %d", len(res))
		}
	})
}

func TestQuotationHandler_UpdateQuotationStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/status", h.UpdateQuotationStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/status", bytes.NewBufferString(`{"status":"archived"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/status", h.UpdateQuotationStatus)

		uc.EXPECT().
			UpdateStatus(gomock.Any(), "q-1", entities.QuotationStatusAwarded).
			Return(entities.Quotation{}, usecase.ErrInvalidStatusTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/status", bytes.NewBufferString(`{"status":"awarded"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/status", h.UpdateQuotationStatus)

		submitted := quotationFixture()
		submitted.Status = entities.QuotationStatusSubmitted
		uc.EXPECT().
			UpdateStatus(gomock.Any(), "q-1", entities.QuotationStatusSubmitted).
			Return(submitted, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/status", bytes.NewBufferString(`{"status":" Submitted "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if res["status"] != "submitted" {
			t.Fatalf("expected status submitted, got %v", res["status"])
		}
	})
}

func TestQuotationHandler_Items(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add item not editable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations/:id/items", h.AddItem)

		uc.EXPECT().
			AddItem(gomock.Any(), "q-1", gomock.Any()).
			Return(entities.Quotation{}, usecase.ErrQuotationNotEditable)

		body := `{"name":"Valve","quantity":4,"unit_price":150}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/items", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("add item rejects zero quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations/:id/items", h.AddItem)

		body := `{"name":"Valve","quantity":0,"unit_price":150}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/items", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("remove missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.DELETE("/v1/quotations/:id/items/:item_id", h.RemoveItem)

		uc.EXPECT().
			RemoveItem(gomock.Any(), "q-1", "item-9").
			Return(entities.Quotation{}, usecase.ErrItemNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotations/q-1/items/item-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update item success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PUT("/v1/quotations/:id/items/:item_id", h.UpdateItem)

		uc.EXPECT().
			UpdateItem(gomock.Any(), "q-1", "item-1", gomock.Any()).
			Return(quotationFixture(), nil)

		body := `{"name":"Pump","quantity":3,"unit_price":480,"unit_cost":300}`
		req := httptest.NewRequest(http.MethodPut, "/v1/quotations/q-1/items/item-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_DeleteQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not editable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.DELETE("/v1/quotations/:id", h.DeleteQuotation)

		uc.EXPECT().Delete(gomock.Any(), "q-1").Return(usecase.ErrQuotationNotEditable)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotations/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.DELETE("/v1/quotations/:id", h.DeleteQuotation)

		uc.EXPECT().Delete(gomock.Any(), "q-1").Return(errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotations/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.DELETE("/v1/quotations/:id", h.DeleteQuotation)

		uc.EXPECT().Delete(gomock.Any(), "q-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotations/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
