package request

import (
	"errors"
	"strings"
	"time"

	"cotafacil/internal/domain/entities"
	"cotafacil/internal/usecase"
)

var (
	ErrUnknownStatus           = errors.New("unknown quotation status")
	ErrUnknownCompetitiveLevel = errors.New("unknown competitive level")
)

type LineItemRequest struct {
	SKU         string  `json:"sku"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
	UnitCost    float64 `json:"unit_cost" binding:"gte=0"`
	TaxRate     float64 `json:"tax_rate" binding:"gte=0,lte=1"`
}

func (r LineItemRequest) ToEntity() entities.LineItem {
	return entities.LineItem{
		SKU:         strings.TrimSpace(r.SKU),
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Unit:        r.Unit,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		UnitCost:    r.UnitCost,
		TaxRate:     r.TaxRate,
	}
}

type QuotationCreateRequest struct {
	ReferenceID  string            `json:"reference_id"`
	Title        string            `json:"title" binding:"required"`
	CustomerID   string            `json:"customer_id"`
	Currency     string            `json:"currency"`
	Description  string            `json:"description"`
	Notes        string            `json:"notes"`
	TargetMargin float64           `json:"target_margin"`
	ExpiresAt    *time.Time        `json:"expires_at"`
	Items        []LineItemRequest `json:"items"`
}

func (r QuotationCreateRequest) ToEntity() entities.Quotation {
	q := entities.Quotation{
		ReferenceID:  strings.TrimSpace(r.ReferenceID),
		Title:        strings.TrimSpace(r.Title),
		CustomerID:   strings.TrimSpace(r.CustomerID),
		Currency:     strings.ToUpper(strings.TrimSpace(r.Currency)),
		Description:  r.Description,
		Notes:        r.Notes,
		TargetMargin: r.TargetMargin,
		ExpiresAt:    r.ExpiresAt,
	}
	for _, item := range r.Items {
		q.Items = append(q.Items, item.ToEntity())
	}
	return q
}

type QuotationUpdateRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Notes        *string    `json:"notes"`
	TargetMargin *float64   `json:"target_margin"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

func (r QuotationUpdateRequest) ToUpdate() usecase.QuotationUpdate {
	return usecase.QuotationUpdate{
		Title:        r.Title,
		Description:  r.Description,
		Notes:        r.Notes,
		TargetMargin: r.TargetMargin,
		ExpiresAt:    r.ExpiresAt,
	}
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// ResolveStatus validates the requested status against the known set.
func (r StatusUpdateRequest) ResolveStatus() (entities.QuotationStatus, error) {
	status := entities.QuotationStatus(strings.ToLower(strings.TrimSpace(r.Status)))
	switch status {
	case entities.QuotationStatusDraft,
		entities.QuotationStatusSubmitted,
		entities.QuotationStatusApproved,
		entities.QuotationStatusRejected,
		entities.QuotationStatusAwarded,
		entities.QuotationStatusLost:
		return status, nil
	}
	return "", ErrUnknownStatus
}

type PriceSuggestionRequest struct {
	ItemName         string  `json:"item_name" binding:"required"`
	UnitCost         float64 `json:"unit_cost" binding:"required,gt=0"`
	TargetMargin     float64 `json:"target_margin"`
	CompetitiveLevel string  `json:"competitive_level"`
}

// ResolveInput maps the payload to the usecase input, defaulting the
// competitive level to medium.
func (r PriceSuggestionRequest) ResolveInput() (usecase.PriceSuggestionInput, error) {
	level := usecase.CompetitiveLevel(strings.ToLower(strings.TrimSpace(r.CompetitiveLevel)))
	switch level {
	case "":
		level = usecase.CompetitiveLevelMedium
	case usecase.CompetitiveLevelLow, usecase.CompetitiveLevelMedium, usecase.CompetitiveLevelHigh:
	default:
		return usecase.PriceSuggestionInput{}, ErrUnknownCompetitiveLevel
	}
	return usecase.PriceSuggestionInput{
		ItemName:         strings.TrimSpace(r.ItemName),
		UnitCost:         r.UnitCost,
		TargetMargin:     r.TargetMargin,
		CompetitiveLevel: level,
	}, nil
}

type QuotationComparisonRequest struct {
	QuotationIDs []string `json:"quotation_ids" binding:"required,min=1"`
}

type HistoricalPriceCreateRequest struct {
	ItemName     string     `json:"item_name" binding:"required"`
	ItemSKU      string     `json:"item_sku"`
	UnitPrice    float64    `json:"unit_price" binding:"required,gt=0"`
	Source       string     `json:"source"`
	Region       string     `json:"region"`
	CustomerType string     `json:"customer_type"`
	RecordedAt   *time.Time `json:"recorded_at"`
}

func (r HistoricalPriceCreateRequest) ToEntity() entities.HistoricalPrice {
	p := entities.HistoricalPrice{
		ItemName:     strings.TrimSpace(r.ItemName),
		ItemSKU:      strings.TrimSpace(r.ItemSKU),
		UnitPrice:    r.UnitPrice,
		Source:       strings.TrimSpace(r.Source),
		Region:       r.Region,
		CustomerType: r.CustomerType,
	}
	if r.RecordedAt != nil {
		p.RecordedAt = r.RecordedAt.UTC()
	}
	return p
}
