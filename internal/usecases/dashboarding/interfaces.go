package dashboarding

import (
	"context"

	"github.com/vfg2006/gas-station-dashboard/internal/domain"
)

// Reader agrupa as leituras do dashboard. Nenhuma delas retorna erro: falhas do backend
// são registradas em log e substituídas por dados sintéticos.
type Reader interface {
	GetStationInfo(ctx context.Context, stationID string) *domain.Station
	GetPricePredictions(ctx context.Context, stationID string, days int) *domain.PriceForecast
	GetCompetitorPrices(ctx context.Context, stationID string) []domain.CompetitorRecord
	GetMarketData(ctx context.Context, days int) *domain.MarketOverview
	GetSalesData(ctx context.Context, stationID string, days int) *domain.SalesSummary
}

// Writer agrupa as escritas. Falhas são sempre devolvidas ao chamador.
type Writer interface {
	UpdateStationInfo(ctx context.Context, stationID string, patch domain.StationPatch) (*domain.Station, error)
	RecordCurrentPrices(ctx context.Context, stationID string, gasolinePrice, dieselPrice float64) (*domain.PricePrediction, error)
}

// Dashboarder é a interface completa consumida pelos handlers e pelo agendador
type Dashboarder interface {
	Reader
	Writer

	// RefreshAll limpa o cache e recarrega as cinco leituras principais do posto padrão
	RefreshAll(ctx context.Context) RefreshReport

	// RealtimeSnapshot lê o mercado do último dia e a previsão de 7 dias do posto padrão
	RealtimeSnapshot(ctx context.Context) domain.RealtimeUpdate

	GetProfitView(ctx context.Context, stationID string, days int) *domain.ProfitView
	GetTrendView(ctx context.Context, stationID string) *domain.TrendView

	DefaultStationID() string
}
