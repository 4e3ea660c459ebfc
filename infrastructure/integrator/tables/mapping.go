package tables

import (
	"sort"

	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
	"github.com/vfg2006/gas-station-dashboard/internal/domain"
)

func toStation(row *tablesdomain.GasStationRow) (*domain.Station, error) {
	if row == nil || row.ID == "" {
		return nil, tablesdomain.Malformed("gas_stations sem id")
	}

	return &domain.Station{
		ID:            row.ID,
		Name:          row.StationName,
		OwnerName:     row.OwnerName,
		Brand:         row.Brand,
		Address:       row.Address,
		OperationType: row.OperationType,
		FuelTypes:     row.FuelTypes,
		DailyTarget:   row.DailyTarget,
		MarginTarget:  row.MarginTarget,
		Latitude:      row.Latitude,
		Longitude:     row.Longitude,
	}, nil
}

func toPricePrediction(row tablesdomain.PricePredictionRow) domain.PricePrediction {
	confidence := float64(domain.DefaultConfidence)
	if row.ConfidenceScore != nil {
		confidence = *row.ConfidenceScore
	}

	factors := row.PredictionFactors
	if factors == "" {
		factors = domain.DefaultFactors
	}

	return domain.PricePrediction{
		Date:            row.PredictionDate.Time,
		GasolinePrice:   row.GasolinePrice,
		DieselPrice:     row.DieselPrice,
		ConfidenceScore: confidence,
		Factors:         factors,
	}
}

// toPriceForecast ordena a série por data. Confiança e fatores da previsão vêm da data mais próxima.
func toPriceForecast(stationID string, rows []tablesdomain.PricePredictionRow) (*domain.PriceForecast, error) {
	forecast := &domain.PriceForecast{
		StationID:   stationID,
		Predictions: make([]domain.PricePrediction, 0, len(rows)),
		Confidence:  domain.DefaultConfidence,
		Factors:     domain.DefaultFactors,
	}

	for i, row := range rows {
		if row.PredictionDate.IsZero() {
			return nil, tablesdomain.Malformed("price_predictions[%d] sem prediction_date", i)
		}

		prediction := toPricePrediction(row)
		if prediction.ConfidenceScore < 0 || prediction.ConfidenceScore > 100 {
			return nil, tablesdomain.Malformed("price_predictions[%d] com confidence_score fora de 0..100: %v", i, prediction.ConfidenceScore)
		}

		forecast.Predictions = append(forecast.Predictions, prediction)
	}

	sort.SliceStable(forecast.Predictions, func(i, j int) bool {
		return forecast.Predictions[i].Date.Before(forecast.Predictions[j].Date)
	})

	if len(forecast.Predictions) > 0 {
		forecast.Confidence = forecast.Predictions[0].ConfidenceScore
		forecast.Factors = forecast.Predictions[0].Factors
	}

	return forecast, nil
}

func toCompetitors(rows []tablesdomain.CompetitorPriceRow) ([]domain.CompetitorRecord, error) {
	competitors := make([]domain.CompetitorRecord, 0, len(rows))

	for i, row := range rows {
		if row.PriceRank <= 0 {
			return nil, tablesdomain.Malformed("competitor_prices[%d] com price_rank inválido: %d", i, row.PriceRank)
		}
		if row.DistanceKm < 0 {
			return nil, tablesdomain.Malformed("competitor_prices[%d] com distance_km negativa", i)
		}

		competitors = append(competitors, domain.CompetitorRecord{
			Name:          row.CompetitorName,
			Brand:         row.CompetitorBrand,
			DistanceKm:    row.DistanceKm,
			GasolinePrice: row.GasolinePrice,
			DieselPrice:   row.DieselPrice,
			Rank:          row.PriceRank,
			LastUpdated:   row.LastUpdated.Time,
		})
	}

	sort.SliceStable(competitors, func(i, j int) bool {
		return competitors[i].Rank < competitors[j].Rank
	})

	return competitors, nil
}

// toMarketOverview ordena as cotações por data e usa a mais recente como valor corrente
func toMarketOverview(rows []tablesdomain.MarketDataRow) (*domain.MarketOverview, error) {
	overview := &domain.MarketOverview{
		Snapshots:    make([]domain.MarketSnapshot, 0, len(rows)),
		CurrentTrend: domain.MarketTrendUp,
	}

	for i, row := range rows {
		if row.BrentOilPrice <= 0 || row.ExchangeRate <= 0 {
			return nil, tablesdomain.Malformed("market_data[%d] com cotação não positiva", i)
		}

		trend := domain.MarketTrendFlat
		if row.MarketTrend != "" {
			parsed, ok := domain.ParseMarketTrend(row.MarketTrend)
			if !ok {
				return nil, tablesdomain.Malformed("market_data[%d] com market_trend desconhecido: %q", i, row.MarketTrend)
			}
			trend = parsed
		}

		overview.Snapshots = append(overview.Snapshots, domain.MarketSnapshot{
			Date:                  row.DataDate.Time,
			BrentOilPrice:         row.BrentOilPrice,
			ExchangeRateKRWperUSD: row.ExchangeRate,
			Trend:                 trend,
		})
	}

	sort.SliceStable(overview.Snapshots, func(i, j int) bool {
		return overview.Snapshots[i].Date.Before(overview.Snapshots[j].Date)
	})

	if n := len(overview.Snapshots); n > 0 {
		latest := overview.Snapshots[n-1]
		overview.CurrentTrend = latest.Trend
		overview.CurrentOilPrice = latest.BrentOilPrice
		overview.CurrentExchangeRate = latest.ExchangeRateKRWperUSD
	}

	return overview, nil
}

// toSaleRecords só normaliza os campos. A validação de hora e quantidade é feita na agregação.
func toSaleRecords(rows []tablesdomain.SalesDataRow) []domain.SaleRecord {
	records := make([]domain.SaleRecord, 0, len(rows))

	for _, row := range rows {
		records = append(records, domain.SaleRecord{
			SaleDate:     row.SaleDate.Time,
			SaleHour:     row.SaleHour,
			FuelType:     domain.ParseFuelType(row.FuelType),
			QuantitySold: row.QuantitySold,
			GrossProfit:  row.GrossProfit,
		})
	}

	return records
}
