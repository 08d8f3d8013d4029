package load

import (
	"context"

	"CoinPulse/internal/model"
)

// NoopLoader is a no-op implementation used when no database is configured.
type NoopLoader struct{}

func NewNoopLoader() *NoopLoader { return &NoopLoader{} }

func (n *NoopLoader) Load(_ context.Context, _ []model.PriceRecord) error { return nil }
func (n *NoopLoader) Close() error                                        { return nil }
