package domain

import "time"

// RealtimeUpdate é o resultado de um ciclo de polling
type RealtimeUpdate struct {
	MarketData  *MarketOverview `json:"market_data"`
	Predictions *PriceForecast  `json:"predictions"`
	Timestamp   time.Time       `json:"timestamp"`
}
