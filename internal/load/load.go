package load

import (
	"context"
	"fmt"

	"CoinPulse/internal/model"
)

// Loader persists price records for downstream analytics.
type Loader interface {
	Load(ctx context.Context, records []model.PriceRecord) error
	Close() error
}

// LoadError reports a failed load: connection, DDL, or insert failure.
type LoadError struct {
	Op  string // "connect", "ensure", "begin", "insert", "commit"
	Err error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load: %s: %v", e.Op, e.Err) }

func (e *LoadError) Unwrap() error { return e.Err }
