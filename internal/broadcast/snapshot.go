package broadcast

import (
	"time"

	"github.com/SscSPs/forex_marketplace/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateBroadcastEntry is the public view of one active rate.
type RateBroadcastEntry struct {
	CurrencyCode string          `json:"currencyCode"`
	CurrencyName string          `json:"currencyName"`
	BuyRate      decimal.Decimal `json:"buyRate"`
	SellRate     decimal.Decimal `json:"sellRate"`
	LastUpdated  time.Time       `json:"lastUpdated"`
}

// RateSnapshot is the full set of active rates at Timestamp. Subscribers must treat it as read-only.
type RateSnapshot struct {
	Rates     []RateBroadcastEntry `json:"rates"`
	Timestamp time.Time            `json:"timestamp"`
}

func newSnapshot(rates []domain.Rate, at time.Time) RateSnapshot {
	entries := make([]RateBroadcastEntry, len(rates))
	for i, r := range rates {
		entries[i] = RateBroadcastEntry{
			CurrencyCode: r.CurrencyCode,
			CurrencyName: r.CurrencyName,
			BuyRate:      r.BuyRate,
			SellRate:     r.SellRate,
			LastUpdated:  r.LastUpdated,
		}
	}
	return RateSnapshot{Rates: entries, Timestamp: at}
}
