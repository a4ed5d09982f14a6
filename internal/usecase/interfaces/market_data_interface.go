package interfaces

import "context"

// IMarketDataProvider abstracts the external market reference used for
// price comparisons.
//
// AverageUnitPrice returns 0 when no reference data exists for the item;
// callers treat that as "no comparison possible", not as an error.
type IMarketDataProvider interface {
	AverageUnitPrice(ctx context.Context, itemName string) (float64, error)
}
