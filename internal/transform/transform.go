package transform

import (
	"fmt"
	"sort"
	"time"

	"CoinPulse/internal/model"
)

// SchemaError reports an upstream payload whose shape does not match the
// simple-price contract (a coin entry missing the requested currency).
type SchemaError struct {
	Coin     string
	Currency string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("coin %q: missing %q price in API response", e.Coin, e.Currency)
}

// ToRecords converts a quotes mapping into persistable price records, one
// per coin, all stamped with a single observation instant taken at call
// time. A coin entry without the requested currency fails the whole batch.
func ToRecords(quotes model.Quotes, currency string) ([]model.PriceRecord, error) {
	now := time.Now()

	records := make([]model.PriceRecord, 0, len(quotes))
	for coin, prices := range quotes {
		price, ok := prices[currency]
		if !ok {
			return nil, &SchemaError{Coin: coin, Currency: currency}
		}
		records = append(records, model.PriceRecord{
			Coin:      coin,
			PriceUSD:  price,
			Timestamp: now,
		})
	}

	// Map iteration order is random; keep batches stable.
	sort.Slice(records, func(i, j int) bool { return records[i].Coin < records[j].Coin })
	return records, nil
}
