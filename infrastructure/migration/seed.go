package migration

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gas-station-dashboard/infrastructure/database/postgres"
	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
	"github.com/vfg2006/gas-station-dashboard/internal/domain"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/gas-station-dashboard/pkg/utils"
)

const (
	seedPredictionDays = 7
	seedMarketDays     = 30
	seedSalesDays      = 30

	// litros por unidade de volume horário e margem bruta por litro
	gasolineLitersPerUnit = 2.5
	dieselLitersPerUnit   = 1.2
	gasolineMarginPerLtr  = 60.0
	dieselMarginPerLtr    = 50.0

	marketTrendRising = "상승"
	fuelLabelGasoline = "휘발유"
	fuelLabelDiesel   = "경유"
)

// Dataset reúne as linhas de demonstração de um posto
type Dataset struct {
	Station     tablesdomain.GasStationRow
	Predictions []tablesdomain.PricePredictionRow
	Competitors []tablesdomain.CompetitorPriceRow
	Market      []tablesdomain.MarketDataRow
	Sales       []tablesdomain.SalesDataRow
}

// BuildDataset gera os dados de demonstração a partir do gerador sintético do dashboard
func BuildDataset(stationID string, fallback *dashboarding.Fallback, now time.Time, generateID func() (string, error)) (*Dataset, error) {
	if generateID == nil {
		generateID = utils.GenerateID
	}

	station := fallback.Station(stationID)
	ds := &Dataset{
		Station: tablesdomain.GasStationRow{
			ID:            station.ID,
			StationName:   station.Name,
			OwnerName:     station.OwnerName,
			Brand:         station.Brand,
			Address:       station.Address,
			OperationType: station.OperationType,
			FuelTypes:     station.FuelTypes,
			DailyTarget:   station.DailyTarget,
			MarginTarget:  station.MarginTarget,
			Latitude:      station.Latitude,
			Longitude:     station.Longitude,
			CreatedAt:     tablesdomain.NewTimestamp(now),
			UpdatedAt:     tablesdomain.NewTimestamp(now),
		},
	}

	for _, p := range fallback.Predictions(stationID, seedPredictionDays).Predictions {
		id, err := generateID()
		if err != nil {
			return nil, err
		}
		confidence := p.ConfidenceScore
		ds.Predictions = append(ds.Predictions, tablesdomain.PricePredictionRow{
			ID:                id,
			StationID:         stationID,
			PredictionDate:    tablesdomain.NewTimestamp(p.Date),
			GasolinePrice:     p.GasolinePrice,
			DieselPrice:       p.DieselPrice,
			ConfidenceScore:   &confidence,
			PredictionFactors: p.Factors,
			CreatedAt:         tablesdomain.NewTimestamp(now),
		})
	}

	for _, c := range fallback.Competitors() {
		id, err := generateID()
		if err != nil {
			return nil, err
		}
		ds.Competitors = append(ds.Competitors, tablesdomain.CompetitorPriceRow{
			ID:              id,
			StationID:       stationID,
			CompetitorName:  c.Name,
			CompetitorBrand: c.Brand,
			DistanceKm:      c.DistanceKm,
			GasolinePrice:   c.GasolinePrice,
			DieselPrice:     c.DieselPrice,
			PriceRank:       c.Rank,
			LastUpdated:     tablesdomain.NewTimestamp(c.LastUpdated),
		})
	}

	for _, m := range fallback.Market(seedMarketDays).Snapshots {
		id, err := generateID()
		if err != nil {
			return nil, err
		}
		ds.Market = append(ds.Market, tablesdomain.MarketDataRow{
			ID:            id,
			DataDate:      tablesdomain.NewTimestamp(m.Date),
			BrentOilPrice: m.BrentOilPrice,
			ExchangeRate:  m.ExchangeRateKRWperUSD,
			MarketTrend:   marketTrendRising,
		})
	}

	today := domain.DateOf(now).Time()
	for day := seedSalesDays - 1; day >= 0; day-- {
		date := today.AddDate(0, 0, -day)
		for hour := 0; hour < 24; hour++ {
			volume := fallback.HourlyVolume(hour)

			for _, fuel := range []struct {
				name   string
				liters float64
				margin float64
			}{
				{fuelLabelGasoline, volume * gasolineLitersPerUnit, gasolineMarginPerLtr},
				{fuelLabelDiesel, volume * dieselLitersPerUnit, dieselMarginPerLtr},
			} {
				id, err := generateID()
				if err != nil {
					return nil, err
				}
				ds.Sales = append(ds.Sales, tablesdomain.SalesDataRow{
					ID:           id,
					StationID:    stationID,
					SaleDate:     tablesdomain.NewTimestamp(date),
					SaleHour:     hour,
					FuelType:     fuel.name,
					QuantitySold: utils.RoundTo(fuel.liters, 1),
					GrossProfit:  math.Round(fuel.liters * fuel.margin),
				})
			}
		}
	}

	return ds, nil
}

// Seed grava o conjunto de demonstração. Não faz nada se o posto já existir.
func Seed(ctx context.Context, conn postgres.Conn, ds *Dataset) error {
	var existing int
	err := conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM gas_stations WHERE id = $1", ds.Station.ID).Scan(&existing)
	if err != nil {
		return fmt.Errorf("erro ao verificar posto %s: %w", ds.Station.ID, err)
	}

	if existing > 0 {
		logrus.WithField("station_id", ds.Station.ID).Info("Posto já cadastrado, seed ignorado")
		return nil
	}

	builders := seedInserts(ds)

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, builder := range builders {
			query, args, err := builder.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir insert: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao inserir dados de demonstração: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"station_id":  ds.Station.ID,
		"predictions": len(ds.Predictions),
		"competitors": len(ds.Competitors),
		"market":      len(ds.Market),
		"sales":       len(ds.Sales),
	}).Info("Dados de demonstração inseridos")

	return nil
}

// salesBatchSize limita o número de linhas por INSERT de vendas
const salesBatchSize = 240

func seedInserts(ds *Dataset) []squirrel.InsertBuilder {
	s := ds.Station
	builders := []squirrel.InsertBuilder{
		squirrel.Insert("gas_stations").
			Columns("id", "station_name", "owner_name", "brand", "address", "operation_type", "fuel_types",
				"daily_target", "margin_target", "latitude", "longitude", "created_at", "updated_at").
			Values(s.ID, s.StationName, s.OwnerName, s.Brand, s.Address, s.OperationType, pq.Array(s.FuelTypes),
				s.DailyTarget, s.MarginTarget, s.Latitude, s.Longitude, s.CreatedAt.Time, s.UpdatedAt.Time).
			PlaceholderFormat(squirrel.Dollar),
	}

	if len(ds.Predictions) > 0 {
		insert := squirrel.Insert("price_predictions").
			Columns("id", "station_id", "prediction_date", "gasoline_price", "diesel_price",
				"confidence_score", "prediction_factors", "created_at")
		for _, p := range ds.Predictions {
			insert = insert.Values(p.ID, p.StationID, p.PredictionDate.Time, p.GasolinePrice, p.DieselPrice,
				p.ConfidenceScore, p.PredictionFactors, p.CreatedAt.Time)
		}
		builders = append(builders, insert.PlaceholderFormat(squirrel.Dollar))
	}

	if len(ds.Competitors) > 0 {
		insert := squirrel.Insert("competitor_prices").
			Columns("id", "station_id", "competitor_name", "competitor_brand", "distance_km",
				"gasoline_price", "diesel_price", "price_rank", "last_updated")
		for _, c := range ds.Competitors {
			insert = insert.Values(c.ID, c.StationID, c.CompetitorName, c.CompetitorBrand, c.DistanceKm,
				c.GasolinePrice, c.DieselPrice, c.PriceRank, c.LastUpdated.Time)
		}
		builders = append(builders, insert.PlaceholderFormat(squirrel.Dollar))
	}

	if len(ds.Market) > 0 {
		insert := squirrel.Insert("market_data").
			Columns("id", "data_date", "brent_oil_price", "exchange_rate", "market_trend")
		for _, m := range ds.Market {
			insert = insert.Values(m.ID, m.DataDate.Time, m.BrentOilPrice, m.ExchangeRate, m.MarketTrend)
		}
		builders = append(builders, insert.Suffix("ON CONFLICT (data_date) DO NOTHING").PlaceholderFormat(squirrel.Dollar))
	}

	for start := 0; start < len(ds.Sales); start += salesBatchSize {
		end := min(start+salesBatchSize, len(ds.Sales))

		insert := squirrel.Insert("sales_data").
			Columns("id", "station_id", "sale_date", "sale_hour", "fuel_type", "quantity_sold", "gross_profit")
		for _, row := range ds.Sales[start:end] {
			insert = insert.Values(row.ID, row.StationID, row.SaleDate.Time, row.SaleHour, row.FuelType,
				row.QuantitySold, row.GrossProfit)
		}
		builders = append(builders, insert.PlaceholderFormat(squirrel.Dollar))
	}

	return builders
}
