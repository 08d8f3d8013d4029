package transform

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"CoinPulse/internal/model"
)

func TestToRecords_TwoCoins(t *testing.T) {
	quotes := model.Quotes{
		"bitcoin":  {"usd": 50000},
		"ethereum": {"usd": 3000},
	}

	before := time.Now()
	records, err := ToRecords(quotes, "usd")
	after := time.Now()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	// Sorted by coin.
	if records[0].Coin != "bitcoin" || records[0].PriceUSD != 50000 {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].Coin != "ethereum" || records[1].PriceUSD != 3000 {
		t.Errorf("unexpected second record: %+v", records[1])
	}

	// One shared observation instant, inside the test window.
	if !records[0].Timestamp.Equal(records[1].Timestamp) {
		t.Errorf("expected a single shared timestamp, got %v and %v",
			records[0].Timestamp, records[1].Timestamp)
	}
	ts := records[0].Timestamp
	if ts.Before(before) || ts.After(after) {
		t.Errorf("timestamp %v outside window [%v, %v]", ts, before, after)
	}
}

func TestToRecords_OneRecordPerCoin(t *testing.T) {
	quotes := model.Quotes{}
	for i := 0; i < 7; i++ {
		quotes[fmt.Sprintf("coin%d", i)] = map[string]float64{"usd": float64(100 * (i + 1))}
	}

	records, err := ToRecords(quotes, "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != len(quotes) {
		t.Fatalf("expected %d records, got %d", len(quotes), len(records))
	}
	for _, r := range records {
		if quotes[r.Coin]["usd"] != r.PriceUSD {
			t.Errorf("coin %s: price %v does not match input %v", r.Coin, r.PriceUSD, quotes[r.Coin]["usd"])
		}
	}
}

func TestToRecords_MissingCurrency(t *testing.T) {
	quotes := model.Quotes{
		"bitcoin":  {"usd": 50000},
		"ethereum": {"eur": 2800},
	}

	_, err := ToRecords(quotes, "usd")
	if err == nil {
		t.Fatal("expected error for coin entry missing usd")
	}
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %T: %v", err, err)
	}
	if schemaErr.Coin != "ethereum" {
		t.Errorf("expected coin ethereum in error, got %q", schemaErr.Coin)
	}
}

func TestToRecords_Empty(t *testing.T) {
	records, err := ToRecords(model.Quotes{}, "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
