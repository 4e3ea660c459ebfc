package domain

import "time"

type MarketTrend string

const (
	MarketTrendUp   MarketTrend = "up"
	MarketTrendDown MarketTrend = "down"
	MarketTrendFlat MarketTrend = "flat"
)

// ParseMarketTrend aceita tanto os rótulos do backend (상승, 하락, 보합) quanto os internos
func ParseMarketTrend(tag string) (MarketTrend, bool) {
	switch tag {
	case "상승", string(MarketTrendUp):
		return MarketTrendUp, true
	case "하락", string(MarketTrendDown):
		return MarketTrendDown, true
	case "보합", string(MarketTrendFlat):
		return MarketTrendFlat, true
	}
	return "", false
}

// MarketSnapshot é a cotação diária do petróleo Brent e do câmbio KRW/USD
type MarketSnapshot struct {
	Date                  time.Time   `json:"date"`
	BrentOilPrice         float64     `json:"brent_oil_price"`
	ExchangeRateKRWperUSD float64     `json:"exchange_rate"`
	Trend                 MarketTrend `json:"trend"`
}

// MarketOverview agrupa a série de mercado e os valores correntes
type MarketOverview struct {
	Snapshots           []MarketSnapshot `json:"snapshots"`
	CurrentTrend        MarketTrend      `json:"current_trend"`
	CurrentOilPrice     float64          `json:"current_oil_price"`
	CurrentExchangeRate float64          `json:"current_exchange_rate"`
	Synthetic           bool             `json:"synthetic,omitempty"`
}
