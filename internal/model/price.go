package model

import "time"

// Quotes is the decoded body of a simple-price API response:
// coin id -> currency code -> price.
type Quotes map[string]map[string]float64

// PriceQuote is a single quoted price as returned by the upstream API.
// It exists only between extraction and transformation.
type PriceQuote struct {
	Coin     string
	Currency string
	Price    float64
}

// PriceRecord is one persisted row. Timestamp is the job's local time at
// transformation, never a value taken from the source API.
type PriceRecord struct {
	Coin      string    `db:"coin"`
	PriceUSD  float64   `db:"usd_price"`
	Timestamp time.Time `db:"timestamp"`
}
