package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cotafacil/internal/adapter/http/handlers/mocks"
	"cotafacil/internal/domain/entities"
	"cotafacil/internal/usecase"
	"cotafacil/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPricingHandler_SuggestPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/suggestion", h.SuggestPrice)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/suggestion", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown competitive level", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/suggestion", h.SuggestPrice)

		body := `{"item_name":"Pump","unit_cost":60,"competitive_level":"extreme"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/suggestion", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/suggestion", h.SuggestPrice)

		uc.EXPECT().
			SuggestPrice(gomock.Any(), usecase.PriceSuggestionInput{
				ItemName:         "Pump",
				UnitCost:         60,
				CompetitiveLevel: usecase.CompetitiveLevelMedium,
			}).
			Return(usecase.PriceSuggestion{
				SuggestedPrice:       120,
				PriceSource:          entities.PriceSourceHistorical,
				ProfitMargin:         50,
				CompetitivenessScore: 50,
				SampleSize:           3,
			}, nil)

		body := `{"item_name":"Pump","unit_cost":60}`
		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/suggestion", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if res["suggested_price"] != 120.0 {
			t.Fatalf("expected suggested_price 120, got %v", res["suggested_price"])
		}
		if res["price_source"] != "historical" {
			t.Fatalf("expected price_source historical, got %v", res["price_source"])
		}
	})

	t.Run("invalid cost maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/suggestion", h.SuggestPrice)

		uc.EXPECT().
			SuggestPrice(gomock.Any(), gomock.Any()).
			Return(usecase.PriceSuggestion{}, usecase.ErrInvalidUnitCost)

		body := `{"item_name":"Pump","unit_cost":10}`
		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/suggestion", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPricingHandler_AnalyzeQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations/:id/risk-analysis", h.AnalyzeQuotation)

		uc.EXPECT().
			AnalyzeQuotation(gomock.Any(), "missing").
			Return(usecase.RiskAnalysis{}, usecase.ErrQuotationNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/missing/risk-analysis", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations/:id/risk-analysis", h.AnalyzeQuotation)

		uc.EXPECT().
			AnalyzeQuotation(gomock.Any(), "q-1").
			Return(usecase.RiskAnalysis{
				QuotationID: "q-1",
				Metrics: entities.ProfitabilityMetrics{
					TotalCost:     8400,
					TotalRevenue:  15600,
					GrossProfit:   7200,
					Margin:        0.46153846,
					MarginDefined: true,
				},
				RiskIndicators: []entities.RiskIndicator{
					{Severity: entities.SeverityLow, Message: "healthy margin", Value: 0.46153846, Threshold: 0.35},
				},
				Comparisons: []entities.PriceComparison{
					{Item: "Valve", CurrentPrice: 180, AveragePrice: 200, Difference: -20, PercentageDifference: -10},
				},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/q-1/risk-analysis", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if res["quotation_id"] != "q-1" {
			t.Fatalf("expected quotation_id q-1, got %v", res["quotation_id"])
		}
		indicators := res["risk_indicators"].([]any)
		if len(indicators) != 1 {
			t.Fatalf("expected 1 indicator, got %d", len(indicators))
		}
		first := indicators[0].(map[string]any)
		if first["severity"] != "low" {
			t.Fatalf("expected severity low, got %v", first["severity"])
		}
	})
}

func TestPricingHandler_HistoricalPrices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("record missing item name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/historical-prices", h.RecordHistoricalPrice)

		req := httptest.NewRequest(http.MethodPost, "/v1/historical-prices", bytes.NewBufferString(`{"unit_price":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("record success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/historical-prices", h.RecordHistoricalPrice)

		recorded := entities.HistoricalPrice{
			ID:         "hp-1",
			ItemName:   "Pump",
			UnitPrice:  100,
			Source:     "internal",
			RecordedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		}
		uc.EXPECT().RecordHistoricalPrice(gomock.Any(), gomock.Any()).Return(recorded, nil)

		body := `{"item_name":"Pump","unit_price":100}`
		req := httptest.NewRequest(http.MethodPost, "/v1/historical-prices", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if res["id"] != "hp-1" {
			t.Fatalf("expected id hp-1, got %v", res["id"])
		}
	})

	t.Run("list requires item name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/v1/historical-prices", h.ListHistoricalPrices)

		req := httptest.NewRequest(http.MethodGet, "/v1/historical-prices", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/v1/historical-prices", h.ListHistoricalPrices)

		uc.EXPECT().
			ListHistoricalPrices(gomock.Any(), "Pump").
			Return([]entities.HistoricalPrice{{ID: "hp-1", ItemName: "Pump", UnitPrice: 100}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/historical-prices?item_name=Pump", nil)
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
			t.Fatalf("expected 1 record, got %d", len(res))
		}
	})
}

func TestPricingHandler_SummaryReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/summary", h.SummaryReport)

		uc.EXPECT().
			SummaryReport(gomock.Any(), gomock.Any()).
			Return(usecase.SummaryReport{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/summary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success with customer filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/summary", h.SummaryReport)

		uc.EXPECT().
			SummaryReport(gomock.Any(), interfaces.QuotationFilter{CustomerID: "c-1"}).
			Return(usecase.SummaryReport{
				TotalQuotations:    4,
				TotalValue:         40000,
				AverageValue:       10000,
				WonQuotations:      2,
				WonValue:           22000,
				WinRate:            50,
				AverageMargin:      30,
				StatusDistribution: map[string]int{"awarded": 2, "lost": 1, "draft": 1},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/summary?customer_id=c-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if res["win_rate"] != 50.0 {
			t.Fatalf("expected win_rate 50, got %v", res["win_rate"])
		}
	})
}

func TestPricingHandler_CompareQuotations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing quotation ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/reports/comparison", h.CompareQuotations)

		req := httptest.NewRequest(http.MethodPost, "/v1/reports/comparison", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/reports/comparison", h.CompareQuotations)

		uc.EXPECT().
			CompareQuotations(gomock.Any(), []string{"q-1", "q-2"}).
			Return(usecase.QuotationComparison{
				QuotationIDs: []string{"q-1", "q-2"},
				Metrics: map[string]usecase.MetricComparison{
					"total_amount": {
						Min:    1000,
						Max:    3000,
						Avg:    2000,
						Values: map[string]float64{"q-1": 3000, "q-2": 1000},
					},
					"item_count": {
						Min:    1,
						Max:    2,
						Avg:    1.5,
						Values: map[string]float64{"q-1": 2, "q-2": 1},
					},
				},
			}, nil)

		body := `{"quotation_ids":["q-1","q-2"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/reports/comparison", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		ids := res["quotation_ids"].([]any)
		if len(ids) != 2 {
			t.Fatalf("expected 2 ids, got %v", ids)
		}
		metrics := res["comparison_metrics"].(map[string]any)
		price := metrics["total_amount"].(map[string]any)
		if price["avg"] != 2000.0 {
			t.Fatalf("expected avg 2000, got %v", price["avg"])
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/reports/comparison", h.CompareQuotations)

		uc.EXPECT().
			CompareQuotations(gomock.Any(), gomock.Any()).
			Return(usecase.QuotationComparison{}, errors.New("dynamo down"))

		body := `{"quotation_ids":["q-1"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/reports/comparison", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
