package entities

import "time"

// Severity classifies how much attention a risk indicator deserves.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ProfitabilityMetrics are the aggregate financial metrics of a quotation.
//
// Margin and MarkupPercentage are meaningless when their denominator is
// zero (no revenue, or no cost). Those states are valid for a draft
// quotation, so instead of erroring or producing Inf/NaN the value is
// left at zero and the matching *Defined flag is false. Callers must
// branch on the flags before display.
type ProfitabilityMetrics struct {
	TotalCost    float64 `json:"total_cost"`
	TotalRevenue float64 `json:"total_revenue"`
	Subtotal     float64 `json:"subtotal"`
	TaxAmount    float64 `json:"tax_amount"`
	TotalAmount  float64 `json:"total_amount"`

	GrossProfit      float64 `json:"gross_profit"`
	Margin           float64 `json:"margin"`
	MarginDefined    bool    `json:"margin_defined"`
	MarkupPercentage float64 `json:"markup_percentage"`
	MarkupDefined    bool    `json:"markup_defined"`
}

// RiskIndicator is a flagged condition (low margin, underpricing)
// surfaced to the user. Immutable once generated; the full set is
// regenerated whenever line items change.
type RiskIndicator struct {
	Severity  Severity `json:"severity"`
	Message   string   `json:"message"`
	Value     float64  `json:"value"`
	Threshold float64  `json:"threshold"`
}

// PriceComparison is a per-item delta between the quoted price and an
// external market reference price.
type PriceComparison struct {
	Item                 string  `json:"item"`
	CurrentPrice         float64 `json:"current_price"`
	AveragePrice         float64 `json:"average_price"`
	Difference           float64 `json:"difference"`
	PercentageDifference float64 `json:"percentage_difference"`
}

// HistoricalPrice is a recorded unit price for an item, used as
// read-only reference data for market comparisons and price suggestions.
type HistoricalPrice struct {
	ID           string    `json:"id"`
	ItemName     string    `json:"item_name"`
	ItemSKU      string    `json:"item_sku,omitempty"`
	UnitPrice    float64   `json:"unit_price"`
	Source       string    `json:"source"`
	Region       string    `json:"region,omitempty"`
	CustomerType string    `json:"customer_type,omitempty"`
	RecordedAt   time.Time `json:"recorded_at"`
}
