package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/gas-station-dashboard/infrastructure/database/postgres"
	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
)

const competitorPricesTable = "competitor_prices"

var competitorPriceColumns = []string{
	"id", "station_id", "competitor_name", "competitor_brand", "distance_km",
	"gasoline_price", "diesel_price", "price_rank", "last_updated",
}

type CompetitorPriceRepository interface {
	List(ctx context.Context, filter ListFilter) ([]tablesdomain.CompetitorPriceRow, int, error)
}

type competitorPriceRepository struct {
	db postgres.Queryer
}

func NewCompetitorPriceRepository(db postgres.Queryer) CompetitorPriceRepository {
	return &competitorPriceRepository{db: db}
}

func (r *competitorPriceRepository) List(ctx context.Context, filter ListFilter) ([]tablesdomain.CompetitorPriceRow, int, error) {
	rows, total, err := listRows(ctx, r.db,
		buildCompetitorPriceList(filter),
		applyFilter(squirrel.Select("COUNT(*)").From(competitorPricesTable), filter, "").PlaceholderFormat(squirrel.Dollar),
		scanCompetitorPrice,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar preços de concorrentes: %w", err)
	}
	return rows, total, nil
}

func buildCompetitorPriceList(filter ListFilter) squirrel.SelectBuilder {
	builder := squirrel.
		Select(competitorPriceColumns...).
		From(competitorPricesTable).
		OrderBy("price_rank ASC").
		PlaceholderFormat(squirrel.Dollar)

	return paginate(applyFilter(builder, filter, ""), filter)
}

func scanCompetitorPrice(scanner rowScanner) (tablesdomain.CompetitorPriceRow, error) {
	var row tablesdomain.CompetitorPriceRow

	err := scanner.Scan(
		&row.ID,
		&row.StationID,
		&row.CompetitorName,
		&row.CompetitorBrand,
		&row.DistanceKm,
		&row.GasolinePrice,
		&row.DieselPrice,
		&row.PriceRank,
		&row.LastUpdated.Time,
	)

	return row, err
}
