package pricing

import (
	"fmt"

	"cotafacil/internal/domain/entities"
)

// Thresholds configure the risk classification rules. They are inputs,
// not constants: callers may tighten or relax them per tenant.
type Thresholds struct {
	// LowMargin is the margin below which a quotation is high risk.
	LowMargin float64
	// MediumMargin is the margin below which a quotation is medium risk.
	MediumMargin float64
	// BelowMarket is the (negative) percentage difference versus the
	// market average below which an item counts as underpriced.
	BelowMarket float64
}

// DefaultThresholds mirror the reference configuration shipped with the
// product: 15% / 35% margin bands, 10% under market.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LowMargin:    0.15,
		MediumMargin: 0.35,
		BelowMarket:  -10,
	}
}

// EvaluateRisk classifies the computed margin and each market comparison
// against the thresholds.
//
// The result is deterministic and order-stable: the margin indicator
// comes first, then one indicator per qualifying comparison in input
// order. Indicators are additive, never mutually exclusive. When the
// margin is undefined (no revenue yet) no margin indicator is emitted.
func EvaluateRisk(m entities.ProfitabilityMetrics, comparisons []entities.PriceComparison, th Thresholds) []entities.RiskIndicator {
	indicators := []entities.RiskIndicator{}

	if m.MarginDefined {
		switch {
		case m.Margin < th.LowMargin:
			indicators = append(indicators, entities.RiskIndicator{
				Severity:  entities.SeverityHigh,
				Message:   fmt.Sprintf("profit margin %.1f%% is below the minimum acceptable %.1f%%", m.Margin*100, th.LowMargin*100),
				Value:     m.Margin,
				Threshold: th.LowMargin,
			})
		case m.Margin < th.MediumMargin:
			indicators = append(indicators, entities.RiskIndicator{
				Severity:  entities.SeverityMedium,
				Message:   fmt.Sprintf("profit margin %.1f%% is below the target %.1f%%", m.Margin*100, th.MediumMargin*100),
				Value:     m.Margin,
				Threshold: th.MediumMargin,
			})
		default:
			indicators = append(indicators, entities.RiskIndicator{
				Severity:  entities.SeverityLow,
				Message:   fmt.Sprintf("profit margin %.1f%% meets the target", m.Margin*100),
				Value:     m.Margin,
				Threshold: th.MediumMargin,
			})
		}
	}

	for _, c := range comparisons {
		if c.PercentageDifference >= th.BelowMarket {
			continue
		}
		severity := entities.SeverityMedium
		if c.PercentageDifference < th.BelowMarket*2 {
			severity = entities.SeverityHigh
		}
		indicators = append(indicators, entities.RiskIndicator{
			Severity:  severity,
			Message:   fmt.Sprintf("%s is priced %.1f%% below the market average", c.Item, -c.PercentageDifference),
			Value:     c.PercentageDifference,
			Threshold: th.BelowMarket,
		})
	}

	return indicators
}
