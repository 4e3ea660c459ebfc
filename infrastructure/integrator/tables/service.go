package tables

import (
	"context"
	"time"

	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
	"github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/tablesclient"
	"github.com/vfg2006/gas-station-dashboard/internal/config"
	"github.com/vfg2006/gas-station-dashboard/internal/domain"
)

// TablesIntegrator converte as linhas do backend de tabelas nos tipos de domínio do dashboard.
// Respostas com formato inesperado retornam erro que satisfaz errors.Is(err, tablesdomain.ErrMalformedResponse).
type TablesIntegrator interface {
	GetStation(ctx context.Context, stationID string) (*domain.Station, error)
	UpdateStation(ctx context.Context, stationID string, patch domain.StationPatch) (*domain.Station, error)
	GetPricePredictions(ctx context.Context, stationID string, days int) (*domain.PriceForecast, error)
	CreatePricePrediction(ctx context.Context, stationID string, prediction domain.PricePrediction) (*domain.PricePrediction, error)
	GetCompetitorPrices(ctx context.Context, stationID string) ([]domain.CompetitorRecord, error)
	GetMarketData(ctx context.Context, days int) (*domain.MarketOverview, error)
	GetSalesRecords(ctx context.Context, stationID string, since time.Time) ([]domain.SaleRecord, error)
}

type TablesService struct {
	cfg    *config.Config
	Client tablesclient.Client
}

func New(cfg *config.Config, client tablesclient.Client) TablesIntegrator {
	return &TablesService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *TablesService) GetStation(ctx context.Context, stationID string) (*domain.Station, error) {
	row, err := s.Client.GetGasStation(ctx, stationID)
	if err != nil {
		return nil, err
	}

	return toStation(row)
}

func (s *TablesService) UpdateStation(ctx context.Context, stationID string, patch domain.StationPatch) (*domain.Station, error) {
	row, err := s.Client.UpdateGasStation(ctx, stationID, patch)
	if err != nil {
		return nil, err
	}

	// Alguns backends respondem o PUT sem o id
	if row.ID == "" {
		row.ID = stationID
	}

	return toStation(row)
}

func (s *TablesService) GetPricePredictions(ctx context.Context, stationID string, days int) (*domain.PriceForecast, error) {
	resp, err := s.Client.ListPricePredictions(ctx, tablesclient.PricePredictionParams{
		StationID: stationID,
		Limit:     days,
	})
	if err != nil {
		return nil, err
	}

	if resp.Data == nil {
		return nil, tablesdomain.Malformed("price_predictions sem o campo data")
	}

	return toPriceForecast(stationID, resp.Data)
}

func (s *TablesService) CreatePricePrediction(ctx context.Context, stationID string, prediction domain.PricePrediction) (*domain.PricePrediction, error) {
	confidence := prediction.ConfidenceScore
	row := tablesdomain.PricePredictionRow{
		StationID:         stationID,
		PredictionDate:    tablesdomain.NewTimestamp(prediction.Date),
		GasolinePrice:     prediction.GasolinePrice,
		DieselPrice:       prediction.DieselPrice,
		ConfidenceScore:   &confidence,
		PredictionFactors: prediction.Factors,
		CreatedAt:         tablesdomain.NewTimestamp(time.Now()),
	}

	created, err := s.Client.CreatePricePrediction(ctx, row)
	if err != nil {
		return nil, err
	}

	result := toPricePrediction(*created)
	return &result, nil
}

func (s *TablesService) GetCompetitorPrices(ctx context.Context, stationID string) ([]domain.CompetitorRecord, error) {
	resp, err := s.Client.ListCompetitorPrices(ctx, stationID)
	if err != nil {
		return nil, err
	}

	if resp.Data == nil {
		return nil, tablesdomain.Malformed("competitor_prices sem o campo data")
	}

	return toCompetitors(resp.Data)
}

func (s *TablesService) GetMarketData(ctx context.Context, days int) (*domain.MarketOverview, error) {
	resp, err := s.Client.ListMarketData(ctx, days)
	if err != nil {
		return nil, err
	}

	if resp.Data == nil {
		return nil, tablesdomain.Malformed("market_data sem o campo data")
	}

	return toMarketOverview(resp.Data)
}

func (s *TablesService) GetSalesRecords(ctx context.Context, stationID string, since time.Time) ([]domain.SaleRecord, error) {
	resp, err := s.Client.ListSalesData(ctx, tablesclient.SalesDataParams{
		StationID: stationID,
		Since:     since,
	})
	if err != nil {
		return nil, err
	}

	if resp.Data == nil {
		return nil, tablesdomain.Malformed("sales_data sem o campo data")
	}

	return toSaleRecords(resp.Data), nil
}
