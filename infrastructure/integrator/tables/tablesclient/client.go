package tablesclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
	"github.com/vfg2006/gas-station-dashboard/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetGasStation(ctx context.Context, stationID string) (*tablesdomain.GasStationRow, error)
	UpdateGasStation(ctx context.Context, stationID string, patch any) (*tablesdomain.GasStationRow, error)
	ListPricePredictions(ctx context.Context, params PricePredictionParams) (*tablesdomain.ListResponse[tablesdomain.PricePredictionRow], error)
	CreatePricePrediction(ctx context.Context, row tablesdomain.PricePredictionRow) (*tablesdomain.PricePredictionRow, error)
	ListCompetitorPrices(ctx context.Context, stationID string) (*tablesdomain.ListResponse[tablesdomain.CompetitorPriceRow], error)
	ListMarketData(ctx context.Context, limit int) (*tablesdomain.ListResponse[tablesdomain.MarketDataRow], error)
	ListSalesData(ctx context.Context, params SalesDataParams) (*tablesdomain.ListResponse[tablesdomain.SalesDataRow], error)
}

type TablesClient struct {
	httpClient *http.Client
	baseURL    string
	retry      RetryConfig
}

// NewClient cria o cliente do backend de tabelas a partir da configuração
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Backend.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &TablesClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.Backend.BaseURL,
		retry: RetryConfig{
			MaxAttempts: cfg.Backend.RetryAttempts,
			BaseDelay:   time.Duration(cfg.Backend.RetryBaseDelayMs) * time.Millisecond,
			MaxDelay:    5 * time.Second,
		},
	}
}
