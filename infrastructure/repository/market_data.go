package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/gas-station-dashboard/infrastructure/database/postgres"
	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
)

const marketDataTable = "market_data"

var marketDataColumns = []string{"id", "data_date", "brent_oil_price", "exchange_rate", "market_trend"}

type MarketDataRepository interface {
	List(ctx context.Context, filter ListFilter) ([]tablesdomain.MarketDataRow, int, error)
}

type marketDataRepository struct {
	db postgres.Queryer
}

func NewMarketDataRepository(db postgres.Queryer) MarketDataRepository {
	return &marketDataRepository{db: db}
}

func (r *marketDataRepository) List(ctx context.Context, filter ListFilter) ([]tablesdomain.MarketDataRow, int, error) {
	rows, total, err := listRows(ctx, r.db,
		buildMarketDataList(filter),
		squirrel.Select("COUNT(*)").From(marketDataTable).PlaceholderFormat(squirrel.Dollar),
		scanMarketData,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar dados de mercado: %w", err)
	}
	return rows, total, nil
}

// buildMarketDataList seleciona os dias mais recentes e os devolve em ordem crescente de data
func buildMarketDataList(filter ListFilter) squirrel.SelectBuilder {
	latest := paginate(squirrel.
		Select(marketDataColumns...).
		From(marketDataTable).
		OrderBy("data_date DESC"), filter)

	return squirrel.
		Select(marketDataColumns...).
		FromSelect(latest, "latest").
		OrderBy("data_date ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func scanMarketData(scanner rowScanner) (tablesdomain.MarketDataRow, error) {
	var row tablesdomain.MarketDataRow

	err := scanner.Scan(
		&row.ID,
		&row.DataDate.Time,
		&row.BrentOilPrice,
		&row.ExchangeRate,
		&row.MarketTrend,
	)

	return row, err
}
