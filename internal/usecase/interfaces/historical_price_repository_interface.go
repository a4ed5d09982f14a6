package interfaces

import (
	"context"
	"time"

	"cotafacil/internal/domain/entities"
)

// IHistoricalPriceRepository abstracts persistence for recorded unit
// prices. Historical prices are append-only reference data.

type IHistoricalPriceRepository interface {
	Create(ctx context.Context, p entities.HistoricalPrice) (entities.HistoricalPrice, error)
	ListByItemName(ctx context.Context, itemName string, since time.Time) ([]entities.HistoricalPrice, error)
}
