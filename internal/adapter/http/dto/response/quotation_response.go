package response

import (
	"time"

	"cotafacil/internal/domain/entities"
	"cotafacil/internal/usecase"
)

type LineItemResponse struct {
	ID                 string  `json:"id"`
	SKU                string  `json:"sku,omitempty"`
	Name               string  `json:"name"`
	Description        string  `json:"description,omitempty"`
	Unit               string  `json:"unit,omitempty"`
	Quantity           float64 `json:"quantity"`
	UnitPrice          float64 `json:"unit_price"`
	UnitCost           float64 `json:"unit_cost"`
	TaxRate            float64 `json:"tax_rate"`
	TotalPrice         float64 `json:"total_price"`
	TotalCost          float64 `json:"total_cost"`
	PriceSource        string  `json:"price_source,omitempty"`
	SuggestedPrice     float64 `json:"suggested_price,omitempty"`
	MarketAveragePrice float64 `json:"market_average_price,omitempty"`
}

// ProfitabilityResponse renders undefined metrics as null so clients can
// show "N/A" instead of a misleading zero.
type ProfitabilityResponse struct {
	TotalCost        float64  `json:"total_cost"`
	TotalRevenue     float64  `json:"total_revenue"`
	Subtotal         float64  `json:"subtotal"`
	TaxAmount        float64  `json:"tax_amount"`
	TotalAmount      float64  `json:"total_amount"`
	GrossProfit      float64  `json:"gross_profit"`
	Margin           *float64 `json:"margin"`
	MarkupPercentage *float64 `json:"markup_percentage"`
}

type RiskIndicatorResponse struct {
	Severity  string  `json:"severity"`
	Message   string  `json:"message"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
}

type PriceComparisonResponse struct {
	Item                 string  `json:"item"`
	CurrentPrice         float64 `json:"current_price"`
	AveragePrice         float64 `json:"average_price"`
	Difference           float64 `json:"difference"`
	PercentageDifference float64 `json:"percentage_difference"`
}

type QuotationResponse struct {
	ID           string     `json:"id"`
	ReferenceID  string     `json:"reference_id"`
	Title        string     `json:"title"`
	CustomerID   string     `json:"customer_id,omitempty"`
	Status       string     `json:"status"`
	Currency     string     `json:"currency"`
	Description  string     `json:"description,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	TargetMargin float64    `json:"target_margin,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	SubmittedAt  *time.Time `json:"submitted_at,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`

	Items            []LineItemResponse        `json:"items"`
	Metrics          ProfitabilityResponse     `json:"metrics"`
	RiskIndicators   []RiskIndicatorResponse   `json:"risk_indicators"`
	PriceComparisons []PriceComparisonResponse `json:"price_comparisons"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	res := QuotationResponse{
		ID:               q.ID,
		ReferenceID:      q.ReferenceID,
		Title:            q.Title,
		CustomerID:       q.CustomerID,
		Status:           string(q.Status),
		Currency:         q.Currency,
		Description:      q.Description,
		Notes:            q.Notes,
		TargetMargin:     q.TargetMargin,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
		SubmittedAt:      q.SubmittedAt,
		ExpiresAt:        q.ExpiresAt,
		Items:            []LineItemResponse{},
		Metrics:          fromMetrics(q.Metrics),
		RiskIndicators:   []RiskIndicatorResponse{},
		PriceComparisons: []PriceComparisonResponse{},
	}
	for _, item := range q.Items {
		res.Items = append(res.Items, LineItemResponse{
			ID:                 item.ID,
			SKU:                item.SKU,
			Name:               item.Name,
			Description:        item.Description,
			Unit:               item.Unit,
			Quantity:           item.Quantity,
			UnitPrice:          item.UnitPrice,
			UnitCost:           item.UnitCost,
			TaxRate:            item.TaxRate,
			TotalPrice:         item.TotalPrice(),
			TotalCost:          item.TotalCost(),
			PriceSource:        string(item.PriceSource),
			SuggestedPrice:     item.SuggestedPrice,
			MarketAveragePrice: item.MarketAveragePrice,
		})
	}
	for _, ri := range q.RiskIndicators {
		res.RiskIndicators = append(res.RiskIndicators, fromRiskIndicator(ri))
	}
	for _, pc := range q.PriceComparisons {
		res.PriceComparisons = append(res.PriceComparisons, fromPriceComparison(pc))
	}
	return res
}

func FromQuotations(quotations []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		out = append(out, FromQuotation(q))
	}
	return out
}

type RiskAnalysisResponse struct {
	QuotationID      string                    `json:"quotation_id"`
	Metrics          ProfitabilityResponse     `json:"metrics"`
	RiskIndicators   []RiskIndicatorResponse   `json:"risk_indicators"`
	PriceComparisons []PriceComparisonResponse `json:"price_comparisons"`
}

func FromRiskAnalysis(a usecase.RiskAnalysis) RiskAnalysisResponse {
	res := RiskAnalysisResponse{
		QuotationID:      a.QuotationID,
		Metrics:          fromMetrics(a.Metrics),
		RiskIndicators:   []RiskIndicatorResponse{},
		PriceComparisons: []PriceComparisonResponse{},
	}
	for _, ri := range a.RiskIndicators {
		res.RiskIndicators = append(res.RiskIndicators, fromRiskIndicator(ri))
	}
	for _, pc := range a.Comparisons {
		res.PriceComparisons = append(res.PriceComparisons, fromPriceComparison(pc))
	}
	return res
}

type HistoricalPriceResponse struct {
	ID           string    `json:"id"`
	ItemName     string    `json:"item_name"`
	ItemSKU      string    `json:"item_sku,omitempty"`
	UnitPrice    float64   `json:"unit_price"`
	Source       string    `json:"source"`
	Region       string    `json:"region,omitempty"`
	CustomerType string    `json:"customer_type,omitempty"`
	RecordedAt   time.Time `json:"recorded_at"`
}

func FromHistoricalPrice(p entities.HistoricalPrice) HistoricalPriceResponse {
	return HistoricalPriceResponse{
		ID:           p.ID,
		ItemName:     p.ItemName,
		ItemSKU:      p.ItemSKU,
		UnitPrice:    p.UnitPrice,
		Source:       p.Source,
		Region:       p.Region,
		CustomerType: p.CustomerType,
		RecordedAt:   p.RecordedAt,
	}
}

func FromHistoricalPrices(prices []entities.HistoricalPrice) []HistoricalPriceResponse {
	out := make([]HistoricalPriceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, FromHistoricalPrice(p))
	}
	return out
}

func fromMetrics(m entities.ProfitabilityMetrics) ProfitabilityResponse {
	res := ProfitabilityResponse{
		TotalCost:    m.TotalCost,
		TotalRevenue: m.TotalRevenue,
		Subtotal:     m.Subtotal,
		TaxAmount:    m.TaxAmount,
		TotalAmount:  m.TotalAmount,
		GrossProfit:  m.GrossProfit,
	}
	if m.MarginDefined {
		margin := m.Margin
		res.Margin = &margin
	}
	if m.MarkupDefined {
		markup := m.MarkupPercentage
		res.MarkupPercentage = &markup
	}
	return res
}

func fromRiskIndicator(ri entities.RiskIndicator) RiskIndicatorResponse {
	return RiskIndicatorResponse{
		Severity:  string(ri.Severity),
		Message:   ri.Message,
		Value:     ri.Value,
		Threshold: ri.Threshold,
	}
}

func fromPriceComparison(pc entities.PriceComparison) PriceComparisonResponse {
	return PriceComparisonResponse{
		Item:                 pc.Item,
		CurrentPrice:         pc.CurrentPrice,
		AveragePrice:         pc.AveragePrice,
		Difference:           pc.Difference,
		PercentageDifference: pc.PercentageDifference,
	}
}
