package extract

import (
	"fmt"

	"CoinPulse/internal/model"
)

// Fetcher defines the interface for fetching spot price quotes.
type Fetcher interface {
	FetchPrices(coins []string, currency string) (model.Quotes, error)
	Name() string
}

// FetchError reports a failed extraction: network failure, non-success
// HTTP status, or a malformed response body.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Quotes model.Quotes
	Err    error
	Calls  int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchPrices(coins []string, currency string) (model.Quotes, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Quotes != nil {
		return m.Quotes, nil
	}
	q := model.Quotes{}
	for i, coin := range coins {
		q[coin] = map[string]float64{currency: 1000 * float64(i+1)}
	}
	return q, nil
}
