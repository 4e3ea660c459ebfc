package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/gas-station-dashboard/infrastructure/database/postgres"
	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
)

const salesDataTable = "sales_data"

var salesDataColumns = []string{
	"id", "station_id", "sale_date", "sale_hour", "fuel_type", "quantity_sold", "gross_profit",
}

type SalesDataRepository interface {
	List(ctx context.Context, filter ListFilter) ([]tablesdomain.SalesDataRow, int, error)
}

type salesDataRepository struct {
	db postgres.Queryer
}

func NewSalesDataRepository(db postgres.Queryer) SalesDataRepository {
	return &salesDataRepository{db: db}
}

func (r *salesDataRepository) List(ctx context.Context, filter ListFilter) ([]tablesdomain.SalesDataRow, int, error) {
	rows, total, err := listRows(ctx, r.db,
		buildSalesDataList(filter),
		applyFilter(squirrel.Select("COUNT(*)").From(salesDataTable), filter, "sale_date").PlaceholderFormat(squirrel.Dollar),
		scanSalesData,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	return rows, total, nil
}

func buildSalesDataList(filter ListFilter) squirrel.SelectBuilder {
	builder := squirrel.
		Select(salesDataColumns...).
		From(salesDataTable).
		OrderBy("sale_date ASC", "sale_hour ASC").
		PlaceholderFormat(squirrel.Dollar)

	return paginate(applyFilter(builder, filter, "sale_date"), filter)
}

func scanSalesData(scanner rowScanner) (tablesdomain.SalesDataRow, error) {
	var row tablesdomain.SalesDataRow

	err := scanner.Scan(
		&row.ID,
		&row.StationID,
		&row.SaleDate.Time,
		&row.SaleHour,
		&row.FuelType,
		&row.QuantitySold,
		&row.GrossProfit,
	)

	return row, err
}
