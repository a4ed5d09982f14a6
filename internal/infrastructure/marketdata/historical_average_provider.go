package marketdata

import (
	"context"
	"log"
	"strconv"
	"time"

	"cotafacil/internal/usecase/interfaces"

	redis "github.com/redis/go-redis/v9"
)

const (
	averageCacheKeyPrefix = "marketdata:avg:"
	averageCacheTTL       = 15 * time.Minute
	referenceWindow       = 365 * 24 * time.Hour
)

// HistoricalAverageProvider resolves an item's market average price from
// recorded historical prices, with an optional Redis read-through cache.
//
// A zero result means "no reference data for this item"; comparisons are
// skipped for such items. Cache failures are logged and ignored, the
// repository stays the source of truth.

type HistoricalAverageProvider struct {
	history interfaces.IHistoricalPriceRepository
	cache   *redis.Client
}

var _ interfaces.IMarketDataProvider = (*HistoricalAverageProvider)(nil)

func NewHistoricalAverageProvider(history interfaces.IHistoricalPriceRepository, cache *redis.Client) *HistoricalAverageProvider {
	return &HistoricalAverageProvider{history: history, cache: cache}
}

func (p *HistoricalAverageProvider) AverageUnitPrice(ctx context.Context, itemName string) (float64, error) {
	key := averageCacheKeyPrefix + itemName

	if p.cache != nil {
		cached, err := p.cache.Get(ctx, key).Result()
		if err == nil {
			if avg, parseErr := strconv.ParseFloat(cached, 64); parseErr == nil {
				return avg, nil
			}
		} else if err != redis.Nil {
			log.Printf("[marketdata][cache] get failed item=%q err=%v", itemName, err)
		}
	}

	records, err := p.history.ListByItemName(ctx, itemName, time.Now().UTC().Add(-referenceWindow))
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	sum := 0.0
	for _, r := range records {
		sum += r.UnitPrice
	}
	avg := sum / float64(len(records))

	if p.cache != nil {
		if err := p.cache.Set(ctx, key, strconv.FormatFloat(avg, 'f', -1, 64), averageCacheTTL).Err(); err != nil {
			log.Printf("[marketdata][cache] set failed item=%q err=%v", itemName, err)
		}
	}
	return avg, nil
}
