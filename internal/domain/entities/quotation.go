package entities

import "time"

// QuotationStatus represents the lifecycle of a quotation (cotação).
//
// Domain notes:
//   - The quotation-service is the source of truth for quotation state.
//   - SubmittedAt is stamped on the draft -> submitted transition.
type QuotationStatus string

const (
	QuotationStatusDraft     QuotationStatus = "draft"
	QuotationStatusSubmitted QuotationStatus = "submitted"
	QuotationStatusApproved  QuotationStatus = "approved"
	QuotationStatusRejected  QuotationStatus = "rejected"
	QuotationStatusAwarded   QuotationStatus = "awarded"
	QuotationStatusLost      QuotationStatus = "lost"
)

// PriceSource records where a line item's suggested price came from.
type PriceSource string

const (
	PriceSourceManual     PriceSource = "manual"
	PriceSourceHistorical PriceSource = "historical"
	PriceSourceMarket     PriceSource = "market"
)

// LineItem is one priced entry (product/service) within a quotation.
//
// Derived values (TotalPrice, TotalCost) are intentionally not stored;
// they are recomputed by the pricing core whenever the item list changes.
type LineItem struct {
	ID          string  `json:"id"`
	SKU         string  `json:"sku,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	UnitCost    float64 `json:"unit_cost"`
	TaxRate     float64 `json:"tax_rate"`

	PriceSource        PriceSource `json:"price_source,omitempty"`
	SuggestedPrice     float64     `json:"suggested_price,omitempty"`
	MarketAveragePrice float64     `json:"market_average_price,omitempty"`
}

// TotalPrice is the pre-tax revenue contributed by this item.
func (i LineItem) TotalPrice() float64 {
	return i.Quantity * i.UnitPrice
}

// TotalCost is the cost contributed by this item.
func (i LineItem) TotalCost() float64 {
	return i.Quantity * i.UnitCost
}

// Quotation is the aggregate root persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Line items are embedded in the quotation document; the quotation
//     exclusively owns its items, indicators and comparisons.
//
// Metrics, RiskIndicators and PriceComparisons are derived: they are
// recomputed wholesale by the pricing core on every item mutation and
// stored alongside the quotation for read paths.
type Quotation struct {
	ID           string          `json:"id"`
	ReferenceID  string          `json:"reference_id"`
	Title        string          `json:"title"`
	CustomerID   string          `json:"customer_id"`
	Status       QuotationStatus `json:"status"`
	Currency     string          `json:"currency"`
	Description  string          `json:"description,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	TargetMargin float64         `json:"target_margin,omitempty"`

	Items            []LineItem           `json:"items"`
	Metrics          ProfitabilityMetrics `json:"metrics"`
	RiskIndicators   []RiskIndicator      `json:"risk_indicators"`
	PriceComparisons []PriceComparison    `json:"price_comparisons"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// CanTransitionTo reports whether the status workflow allows moving to next.
func (q Quotation) CanTransitionTo(next QuotationStatus) bool {
	switch q.Status {
	case QuotationStatusDraft:
		return next == QuotationStatusSubmitted
	case QuotationStatusSubmitted:
		return next == QuotationStatusApproved || next == QuotationStatusRejected
	case QuotationStatusApproved:
		return next == QuotationStatusAwarded || next == QuotationStatusLost
	default:
		return false
	}
}

// Editable reports whether line items may still be changed.
func (q Quotation) Editable() bool {
	return q.Status == QuotationStatusDraft
}
