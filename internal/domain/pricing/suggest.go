package pricing

import "math"

// MarkupBand bounds the markup rate applied over cost when no market
// data is available to base a suggestion on.
type MarkupBand struct {
	Min float64
	Max float64
}

// DefaultMarkupBand is the product default of 80%-120% markup over cost.
func DefaultMarkupBand() MarkupBand {
	return MarkupBand{Min: 0.8, Max: 1.2}
}

// MarkupStrategy picks a markup rate within a band. Strategies must be
// deterministic so that repeated suggestions for the same input agree.
type MarkupStrategy func(band MarkupBand) float64

// MidpointMarkup is the default strategy: the middle of the band.
func MidpointMarkup(band MarkupBand) float64 {
	return (band.Min + band.Max) / 2
}

// SuggestPrice derives a suggested selling price from cost using the
// midpoint of the markup band. This is a heuristic fallback: when market
// reference data exists, callers should prefer a suggestion based on the
// market average instead.
func SuggestPrice(cost float64, band MarkupBand) float64 {
	return SuggestPriceWith(cost, band, MidpointMarkup)
}

// SuggestPriceWith is SuggestPrice with an explicit markup strategy.
// The result is always rounded to cents.
func SuggestPriceWith(cost float64, band MarkupBand, strategy MarkupStrategy) float64 {
	return roundCents(cost * (1 + strategy(band)))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
