package pricing

import "cotafacil/internal/domain/entities"

// CompareToMarket diffs an item's unit price against an external market
// average for that item.
//
// An average price of zero (or less) means no reference data exists;
// the item simply produces no comparison, it is not an error.
func CompareToMarket(item entities.LineItem, averagePrice float64) *entities.PriceComparison {
	if averagePrice <= 0 {
		return nil
	}
	diff := item.UnitPrice - averagePrice
	return &entities.PriceComparison{
		Item:                 item.Name,
		CurrentPrice:         item.UnitPrice,
		AveragePrice:         averagePrice,
		Difference:           diff,
		PercentageDifference: diff / averagePrice * 100,
	}
}
