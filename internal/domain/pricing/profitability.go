package pricing

import "cotafacil/internal/domain/entities"

// ComputeProfitability derives gross profit, margin and markup from
// aggregate cost and revenue.
//
// Zero revenue leaves Margin undefined; zero cost leaves
// MarkupPercentage undefined (an "infinite markup" is meaningless).
// Neither case is an error: a quotation with no items yet is a valid
// business state. The undefined metric stays at zero with its Defined
// flag false, never NaN or Inf.
func ComputeProfitability(totalCost, totalRevenue float64) entities.ProfitabilityMetrics {
	m := entities.ProfitabilityMetrics{
		TotalCost:    totalCost,
		TotalRevenue: totalRevenue,
		GrossProfit:  totalRevenue - totalCost,
	}
	if totalRevenue != 0 {
		m.Margin = m.GrossProfit / totalRevenue
		m.MarginDefined = true
	}
	if totalCost != 0 {
		m.MarkupPercentage = m.GrossProfit / totalCost * 100
		m.MarkupDefined = true
	}
	return m
}

// Analyze aggregates items and computes the full metrics block in one
// pass. This is the recompute entry point used whenever a quotation's
// line items change.
func Analyze(items []entities.LineItem) (entities.ProfitabilityMetrics, error) {
	totals, err := Aggregate(items)
	if err != nil {
		return entities.ProfitabilityMetrics{}, err
	}
	m := ComputeProfitability(totals.TotalCost, totals.TotalRevenue)
	m.Subtotal = totals.Subtotal
	m.TaxAmount = totals.TaxAmount
	m.TotalAmount = totals.TotalAmount
	return m, nil
}
