package dashboarding

import "fmt"

const (
	DefaultPredictionDays = 7
	DefaultMarketDays     = 30
	DefaultSalesDays      = 30
	TrendSalesDays        = 7
	TrendPredictionDays   = 30
	RealtimeMarketDays    = 1
)

func stationKey(stationID string) string {
	return "station_" + stationID
}

func predictionsKey(stationID string, days int) string {
	return fmt.Sprintf("predictions_%s_%d", stationID, days)
}

func competitorsKey(stationID string) string {
	return "competitors_" + stationID
}

func marketKey(days int) string {
	return fmt.Sprintf("market_%d", days)
}

func salesKey(stationID string, days int) string {
	return fmt.Sprintf("sales_%s_%d", stationID, days)
}

func orDefault(days, fallback int) int {
	if days <= 0 {
		return fallback
	}
	return days
}
