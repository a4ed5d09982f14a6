package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"cotafacil/internal/domain/entities"
	"cotafacil/internal/domain/pricing"
	"cotafacil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidItemName  = errors.New("invalid item name")
	ErrInvalidUnitCost  = errors.New("invalid unit cost")
	ErrInvalidUnitPrice = errors.New("invalid unit price")
)

const (
	defaultTargetMargin = 30.0
	historyWindow       = 365 * 24 * time.Hour
)

// CompetitiveLevel selects the pricing strategy percentile used when
// historical data exists.
type CompetitiveLevel string

const (
	CompetitiveLevelLow    CompetitiveLevel = "low"    // aggressive, 25th percentile
	CompetitiveLevelMedium CompetitiveLevel = "medium" // balanced, median
	CompetitiveLevelHigh   CompetitiveLevel = "high"   // premium, 75th percentile
)

// PriceSuggestionInput are the inputs of a price suggestion request.
type PriceSuggestionInput struct {
	ItemName         string
	UnitCost         float64
	TargetMargin     float64 // percent; <= 0 means "not specified"
	CompetitiveLevel CompetitiveLevel
}

// PriceSuggestion is the outcome of the suggestion pipeline.
type PriceSuggestion struct {
	SuggestedPrice       float64              `json:"suggested_price"`
	PriceSource          entities.PriceSource `json:"price_source"`
	ProfitMargin         float64              `json:"profit_margin"`
	CompetitivenessScore float64              `json:"competitiveness_score"`
	HistoricalMin        float64              `json:"historical_min,omitempty"`
	HistoricalMax        float64              `json:"historical_max,omitempty"`
	HistoricalAvg        float64              `json:"historical_avg,omitempty"`
	SampleSize           int                  `json:"sample_size"`
	Explanation          string               `json:"explanation"`
}

// RiskAnalysis is the on-demand analysis of a stored quotation.
type RiskAnalysis struct {
	QuotationID    string                        `json:"quotation_id"`
	Metrics        entities.ProfitabilityMetrics `json:"metrics"`
	RiskIndicators []entities.RiskIndicator      `json:"risk_indicators"`
	Comparisons    []entities.PriceComparison    `json:"price_comparisons"`
}

// SummaryReport aggregates portfolio-level quotation numbers.
type SummaryReport struct {
	TotalQuotations    int            `json:"total_quotations"`
	TotalValue         float64        `json:"total_value"`
	AverageValue       float64        `json:"average_value"`
	WonQuotations      int            `json:"won_quotations"`
	WonValue           float64        `json:"won_value"`
	WinRate            float64        `json:"win_rate"`
	AverageMargin      float64        `json:"average_profit_margin"`
	StatusDistribution map[string]int `json:"status_distribution"`
}

// MetricComparison summarizes one metric across compared quotations,
// keyed by quotation id in Values.
type MetricComparison struct {
	Min    float64            `json:"min"`
	Max    float64            `json:"max"`
	Avg    float64            `json:"avg"`
	Values map[string]float64 `json:"values"`
}

// QuotationComparison puts a set of quotations side by side.
type QuotationComparison struct {
	QuotationIDs []string                    `json:"quotation_ids"`
	Metrics      map[string]MetricComparison `json:"comparison_metrics"`
}

// IPricingUseCase exposes the analysis operations that sit on top of
// stored quotations and historical price data.

type IPricingUseCase interface {
	SuggestPrice(ctx context.Context, in PriceSuggestionInput) (PriceSuggestion, error)
	AnalyzeQuotation(ctx context.Context, quotationID string) (RiskAnalysis, error)
	SummaryReport(ctx context.Context, filter interfaces.QuotationFilter) (SummaryReport, error)
	CompareQuotations(ctx context.Context, quotationIDs []string) (QuotationComparison, error)
	RecordHistoricalPrice(ctx context.Context, p entities.HistoricalPrice) (entities.HistoricalPrice, error)
	ListHistoricalPrices(ctx context.Context, itemName string) ([]entities.HistoricalPrice, error)
}

type PricingUseCase struct {
	quotations interfaces.IQuotationRepository
	history    interfaces.IHistoricalPriceRepository
	marketData interfaces.IMarketDataProvider
	thresholds pricing.Thresholds
	band       pricing.MarkupBand
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(
	quotations interfaces.IQuotationRepository,
	history interfaces.IHistoricalPriceRepository,
	marketData interfaces.IMarketDataProvider,
	thresholds pricing.Thresholds,
	band pricing.MarkupBand,
) *PricingUseCase {
	return &PricingUseCase{
		quotations: quotations,
		history:    history,
		marketData: marketData,
		thresholds: thresholds,
		band:       band,
	}
}

// SuggestPrice derives a competitive selling price for an item.
//
// With historical records the suggestion is the percentile matching the
// competitive level, floored so the target margin still holds. Without
// history it falls back to cost-plus pricing: the target margin when one
// was given, otherwise the configured markup band.
func (u *PricingUseCase) SuggestPrice(ctx context.Context, in PriceSuggestionInput) (PriceSuggestion, error) {
	in.ItemName = strings.TrimSpace(in.ItemName)
	if in.ItemName == "" {
		return PriceSuggestion{}, ErrInvalidItemName
	}
	if in.UnitCost <= 0 {
		return PriceSuggestion{}, ErrInvalidUnitCost
	}

	targetMargin := in.TargetMargin
	if targetMargin <= 0 {
		targetMargin = defaultTargetMargin
	}
	minPrice := in.UnitCost * (1 + targetMargin/100)

	records, err := u.history.ListByItemName(ctx, in.ItemName, time.Now().UTC().Add(-historyWindow))
	if err != nil {
		return PriceSuggestion{}, err
	}

	if len(records) == 0 {
		suggested := roundCents(minPrice)
		explanation := fmt.Sprintf("No historical data available. Suggested price based on cost plus %.0f%% target margin.", targetMargin)
		if in.TargetMargin <= 0 {
			suggested = pricing.SuggestPrice(in.UnitCost, u.band)
			targetMargin = (suggested - in.UnitCost) / suggested * 100
			explanation = "No historical data available. Suggested price based on cost plus the default markup band."
		}
		return PriceSuggestion{
			SuggestedPrice: suggested,
			PriceSource:    entities.PriceSourceManual,
			ProfitMargin:   roundTenth(targetMargin),
			Explanation:    explanation,
		}, nil
	}

	prices := make([]float64, 0, len(records))
	for _, r := range records {
		prices = append(prices, r.UnitPrice)
	}
	sort.Float64s(prices)

	historicalMin := prices[0]
	historicalMax := prices[len(prices)-1]
	historicalAvg := mean(prices)

	percentile := 0.5
	strategyNote := "balanced pricing strategy (median)"
	switch in.CompetitiveLevel {
	case CompetitiveLevelLow:
		percentile = 0.25
		strategyNote = "aggressive pricing strategy (25th percentile)"
	case CompetitiveLevelHigh:
		percentile = 0.75
		strategyNote = "premium pricing strategy (75th percentile)"
	}

	idx := int(float64(len(prices)) * percentile)
	if idx > len(prices)-1 {
		idx = len(prices) - 1
	}
	suggested := math.Max(prices[idx], minPrice)
	actualMargin := (suggested - in.UnitCost) / suggested * 100

	score := 50.0
	if historicalMax != historicalMin {
		norm := (suggested - historicalMin) / (historicalMax - historicalMin)
		score = 100 - norm*100
	}

	explanation := fmt.Sprintf(
		"Suggested price based on %d historical records (range %.2f-%.2f, average %.2f) using the %s.",
		len(records), historicalMin, historicalMax, historicalAvg, strategyNote,
	)
	if actualMargin < targetMargin {
		explanation += fmt.Sprintf(" Price adjusted upward to keep the minimum %.0f%% profit margin.", targetMargin)
	}

	return PriceSuggestion{
		SuggestedPrice:       roundCents(suggested),
		PriceSource:          entities.PriceSourceHistorical,
		ProfitMargin:         roundTenth(actualMargin),
		CompetitivenessScore: roundTenth(score),
		HistoricalMin:        roundCents(historicalMin),
		HistoricalMax:        roundCents(historicalMax),
		HistoricalAvg:        roundCents(historicalAvg),
		SampleSize:           len(records),
		Explanation:          explanation,
	}, nil
}

// AnalyzeQuotation recomputes the full analysis for a stored quotation
// and persists the refreshed snapshot.
func (u *PricingUseCase) AnalyzeQuotation(ctx context.Context, quotationID string) (RiskAnalysis, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return RiskAnalysis{}, ErrInvalidQuotationID
	}

	q, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return RiskAnalysis{}, err
	}
	if q.ID == "" {
		return RiskAnalysis{}, ErrQuotationNotFound
	}

	metrics, err := pricing.Analyze(q.Items)
	if err != nil {
		return RiskAnalysis{}, err
	}

	comparisons := []entities.PriceComparison{}
	for i := range q.Items {
		avg := q.Items[i].MarketAveragePrice
		if avg <= 0 && u.marketData != nil {
			if resolved, err := u.marketData.AverageUnitPrice(ctx, q.Items[i].Name); err == nil {
				avg = resolved
			}
		}
		if c := pricing.CompareToMarket(q.Items[i], avg); c != nil {
			comparisons = append(comparisons, *c)
		}
	}
	indicators := pricing.EvaluateRisk(metrics, comparisons, u.thresholds)

	q.Metrics = metrics
	q.PriceComparisons = comparisons
	q.RiskIndicators = indicators
	q.UpdatedAt = time.Now().UTC()
	updated, err := u.quotations.Update(ctx, q)
	if err != nil {
		return RiskAnalysis{}, err
	}
	if updated.ID == "" {
		// deleted between read and write
		return RiskAnalysis{}, ErrQuotationNotFound
	}

	return RiskAnalysis{
		QuotationID:    q.ID,
		Metrics:        metrics,
		RiskIndicators: indicators,
		Comparisons:    comparisons,
	}, nil
}

// SummaryReport rolls up every quotation matching the filter.
func (u *PricingUseCase) SummaryReport(ctx context.Context, filter interfaces.QuotationFilter) (SummaryReport, error) {
	quotations, err := u.quotations.List(ctx, filter)
	if err != nil {
		return SummaryReport{}, err
	}

	report := SummaryReport{StatusDistribution: map[string]int{}}
	if len(quotations) == 0 {
		return report, nil
	}

	marginSum := 0.0
	marginCount := 0
	for _, q := range quotations {
		report.TotalValue += q.Metrics.TotalAmount
		report.StatusDistribution[string(q.Status)]++
		if q.Status == entities.QuotationStatusAwarded {
			report.WonQuotations++
			report.WonValue += q.Metrics.TotalAmount
		}
		if q.Metrics.MarginDefined {
			marginSum += q.Metrics.Margin * 100
			marginCount++
		}
	}

	report.TotalQuotations = len(quotations)
	report.AverageValue = roundCents(report.TotalValue / float64(len(quotations)))
	report.TotalValue = roundCents(report.TotalValue)
	report.WonValue = roundCents(report.WonValue)
	report.WinRate = roundTenth(float64(report.WonQuotations) / float64(len(quotations)) * 100)
	if marginCount > 0 {
		report.AverageMargin = roundTenth(marginSum / float64(marginCount))
	}
	return report, nil
}

// CompareQuotations loads the requested quotations and compares them on
// total amount, profit margin, risk indicator count and item count, each
// summarized as min/max/avg plus the per-quotation values. Unknown ids
// are skipped; the profit margin metric only covers quotations whose
// margin is defined and is omitted when none qualify.
func (u *PricingUseCase) CompareQuotations(ctx context.Context, quotationIDs []string) (QuotationComparison, error) {
	result := QuotationComparison{QuotationIDs: []string{}, Metrics: map[string]MetricComparison{}}

	quotations := make([]entities.Quotation, 0, len(quotationIDs))
	for _, id := range quotationIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		q, err := u.quotations.GetByID(ctx, id)
		if err != nil {
			return QuotationComparison{}, err
		}
		if q.ID == "" {
			continue
		}
		quotations = append(quotations, q)
	}
	if len(quotations) == 0 {
		return result, nil
	}

	totals := map[string]float64{}
	margins := map[string]float64{}
	indicatorCounts := map[string]float64{}
	itemCounts := map[string]float64{}
	for _, q := range quotations {
		result.QuotationIDs = append(result.QuotationIDs, q.ID)
		totals[q.ID] = q.Metrics.TotalAmount
		if q.Metrics.MarginDefined {
			margins[q.ID] = roundTenth(q.Metrics.Margin * 100)
		}
		indicatorCounts[q.ID] = float64(len(q.RiskIndicators))
		itemCounts[q.ID] = float64(len(q.Items))
	}

	result.Metrics["total_amount"] = summarizeMetric(totals)
	if len(margins) > 0 {
		result.Metrics["profit_margin"] = summarizeMetric(margins)
	}
	result.Metrics["risk_indicators"] = summarizeMetric(indicatorCounts)
	result.Metrics["item_count"] = summarizeMetric(itemCounts)
	return result, nil
}

func summarizeMetric(values map[string]float64) MetricComparison {
	m := MetricComparison{Values: values}
	first := true
	sum := 0.0
	for _, v := range values {
		if first || v < m.Min {
			m.Min = v
		}
		if first || v > m.Max {
			m.Max = v
		}
		first = false
		sum += v
	}
	m.Avg = roundCents(sum / float64(len(values)))
	return m
}

// RecordHistoricalPrice appends a reference price record.
func (u *PricingUseCase) RecordHistoricalPrice(ctx context.Context, p entities.HistoricalPrice) (entities.HistoricalPrice, error) {
	p.ItemName = strings.TrimSpace(p.ItemName)
	if p.ItemName == "" {
		return entities.HistoricalPrice{}, ErrInvalidItemName
	}
	if p.UnitPrice <= 0 {
		return entities.HistoricalPrice{}, ErrInvalidUnitPrice
	}
	p.ID = uuid.NewString()
	if p.Source == "" {
		p.Source = "internal"
	}
	if p.RecordedAt.IsZero() {
		p.RecordedAt = time.Now().UTC()
	}
	return u.history.Create(ctx, p)
}

// ListHistoricalPrices returns the last year of reference prices for an item.
func (u *PricingUseCase) ListHistoricalPrices(ctx context.Context, itemName string) ([]entities.HistoricalPrice, error) {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return nil, ErrInvalidItemName
	}
	return u.history.ListByItemName(ctx, itemName, time.Now().UTC().Add(-historyWindow))
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
