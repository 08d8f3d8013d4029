package job

import (
	"context"
	"fmt"
	"log"

	"CoinPulse/internal/extract"
	"CoinPulse/internal/load"
	"CoinPulse/internal/transform"
)

// Job wires one extract → transform → load run. It holds no state between
// runs; every invocation is an independent append.
type Job struct {
	Fetcher  extract.Fetcher
	Loader   load.Loader
	Coins    []string
	Currency string
}

// New creates a new Job.
func New(fetcher extract.Fetcher, loader load.Loader, coins []string, currency string) *Job {
	return &Job{Fetcher: fetcher, Loader: loader, Coins: coins, Currency: currency}
}

// Run executes one full pipeline pass. Any stage failure aborts the run
// without invoking later stages; the error propagates to the caller.
func (j *Job) Run(ctx context.Context) error {
	quotes, err := j.Fetcher.FetchPrices(j.Coins, j.Currency)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	records, err := transform.ToRecords(quotes, j.Currency)
	if err != nil {
		return fmt.Errorf("transform: %w", err)
	}

	if err := j.Loader.Load(ctx, records); err != nil {
		return fmt.Errorf("load: %w", err)
	}

	log.Printf("[INFO] run complete: %d records loaded", len(records))
	return nil
}
