package pricing

import (
	"errors"
	"fmt"

	"cotafacil/internal/domain/entities"
)

// ErrInvalidLineItem rejects a batch containing a negative quantity,
// price or cost. The whole batch fails; values are never clamped.
var ErrInvalidLineItem = errors.New("invalid line item")

// Totals are the aggregate amounts of an ordered line item sequence.
type Totals struct {
	TotalCost    float64
	TotalRevenue float64
	Subtotal     float64
	TaxAmount    float64
	TotalAmount  float64
}

// Aggregate sums cost, revenue and tax across items.
//
// An empty item list yields all-zero totals, not an error. A negative
// quantity, unit price, unit cost or tax rate fails the whole batch
// with ErrInvalidLineItem.
func Aggregate(items []entities.LineItem) (Totals, error) {
	var t Totals
	for _, it := range items {
		if it.Quantity < 0 || it.UnitPrice < 0 || it.UnitCost < 0 || it.TaxRate < 0 {
			return Totals{}, fmt.Errorf("%w: %s", ErrInvalidLineItem, it.Name)
		}
		revenue := it.Quantity * it.UnitPrice
		t.TotalCost += it.Quantity * it.UnitCost
		t.TotalRevenue += revenue
		t.TaxAmount += revenue * it.TaxRate
	}
	t.Subtotal = t.TotalRevenue
	t.TotalAmount = t.Subtotal + t.TaxAmount
	return t, nil
}
