package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/gas-station-dashboard/infrastructure/database/postgres"
	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
)

const pricePredictionsTable = "price_predictions"

var pricePredictionColumns = []string{
	"id", "station_id", "prediction_date", "gasoline_price", "diesel_price",
	"confidence_score", "prediction_factors", "created_at",
}

type PricePredictionRepository interface {
	List(ctx context.Context, filter ListFilter) ([]tablesdomain.PricePredictionRow, int, error)
	Create(ctx context.Context, row tablesdomain.PricePredictionRow) (*tablesdomain.PricePredictionRow, error)
}

type pricePredictionRepository struct {
	db postgres.Queryer
}

func NewPricePredictionRepository(db postgres.Queryer) PricePredictionRepository {
	return &pricePredictionRepository{db: db}
}

func (r *pricePredictionRepository) List(ctx context.Context, filter ListFilter) ([]tablesdomain.PricePredictionRow, int, error) {
	rows, total, err := listRows(ctx, r.db,
		buildPricePredictionList(filter),
		applyFilter(squirrel.Select("COUNT(*)").From(pricePredictionsTable), filter, "prediction_date").PlaceholderFormat(squirrel.Dollar),
		scanPricePrediction,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar previsões de preço: %w", err)
	}
	return rows, total, nil
}

// buildPricePredictionList ordena por data crescente a partir de filter.Since
func buildPricePredictionList(filter ListFilter) squirrel.SelectBuilder {
	builder := squirrel.
		Select(pricePredictionColumns...).
		From(pricePredictionsTable).
		OrderBy("prediction_date ASC", "created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	return paginate(applyFilter(builder, filter, "prediction_date"), filter)
}

func (r *pricePredictionRepository) Create(ctx context.Context, row tablesdomain.PricePredictionRow) (*tablesdomain.PricePredictionRow, error) {
	var confidence any
	if row.ConfidenceScore != nil {
		confidence = *row.ConfidenceScore
	}

	query, args, err := toSQL(squirrel.
		Insert(pricePredictionsTable).
		Columns(pricePredictionColumns...).
		Values(
			row.ID,
			row.StationID,
			row.PredictionDate.Time,
			row.GasolinePrice,
			row.DieselPrice,
			confidence,
			row.PredictionFactors,
			row.CreatedAt.Time,
		).
		Suffix("RETURNING " + joinColumns(pricePredictionColumns)).
		PlaceholderFormat(squirrel.Dollar))
	if err != nil {
		return nil, err
	}

	created, err := scanPricePrediction(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir previsão de preço: %w", err)
	}

	return &created, nil
}

func scanPricePrediction(scanner rowScanner) (tablesdomain.PricePredictionRow, error) {
	var (
		row        tablesdomain.PricePredictionRow
		confidence sql.NullFloat64
	)

	if err := scanner.Scan(
		&row.ID,
		&row.StationID,
		&row.PredictionDate.Time,
		&row.GasolinePrice,
		&row.DieselPrice,
		&confidence,
		&row.PredictionFactors,
		&row.CreatedAt.Time,
	); err != nil {
		return row, err
	}

	row.ConfidenceScore = nullableFloat(confidence)
	return row, nil
}
