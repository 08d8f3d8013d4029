package job

import (
	"context"
	"errors"
	"testing"

	"CoinPulse/internal/extract"
	"CoinPulse/internal/load"
	"CoinPulse/internal/model"
	"CoinPulse/internal/transform"
)

// spyLoader records every batch it receives.
type spyLoader struct {
	batches [][]model.PriceRecord
	err     error
}

func (s *spyLoader) Load(_ context.Context, records []model.PriceRecord) error {
	s.batches = append(s.batches, records)
	return s.err
}

func (s *spyLoader) Close() error { return nil }

func TestRun_Success(t *testing.T) {
	fetcher := &extract.MockFetcher{Quotes: model.Quotes{
		"bitcoin":  {"usd": 50000},
		"ethereum": {"usd": 3000},
	}}
	loader := &spyLoader{}

	j := New(fetcher, loader, []string{"bitcoin", "ethereum"}, "usd")
	if err := j.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(loader.batches) != 1 {
		t.Fatalf("expected 1 load call, got %d", len(loader.batches))
	}
	if len(loader.batches[0]) != 2 {
		t.Fatalf("expected 2 records, got %d", len(loader.batches[0]))
	}
	if loader.batches[0][0].Coin != "bitcoin" || loader.batches[0][1].Coin != "ethereum" {
		t.Errorf("unexpected batch: %+v", loader.batches[0])
	}
}

func TestRun_FetchFailureSkipsLoader(t *testing.T) {
	fetchErr := &extract.FetchError{URL: "http://example.invalid", Err: errors.New("connection refused")}
	fetcher := &extract.MockFetcher{Err: fetchErr}
	loader := &spyLoader{}

	j := New(fetcher, loader, []string{"bitcoin"}, "usd")
	err := j.Run(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var fe *extract.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FetchError, got %T: %v", err, err)
	}
	if len(loader.batches) != 0 {
		t.Fatalf("loader must not be invoked after a failed extract, got %d calls", len(loader.batches))
	}
}

func TestRun_SchemaFailureSkipsLoader(t *testing.T) {
	fetcher := &extract.MockFetcher{Quotes: model.Quotes{
		"bitcoin": {"eur": 42000},
	}}
	loader := &spyLoader{}

	j := New(fetcher, loader, []string{"bitcoin"}, "usd")
	err := j.Run(context.Background())

	var se *transform.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %T: %v", err, err)
	}
	if len(loader.batches) != 0 {
		t.Fatal("loader must not be invoked after a failed transform")
	}
}

func TestRun_LoadFailurePropagates(t *testing.T) {
	fetcher := &extract.MockFetcher{Quotes: model.Quotes{"bitcoin": {"usd": 50000}}}
	loader := &spyLoader{err: &load.LoadError{Op: "insert", Err: errors.New("disk full")}}

	j := New(fetcher, loader, []string{"bitcoin"}, "usd")
	err := j.Run(context.Background())

	var le *load.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError, got %T: %v", err, err)
	}
}
