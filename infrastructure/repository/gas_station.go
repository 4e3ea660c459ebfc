package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/gas-station-dashboard/infrastructure/database/postgres"
	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
	"github.com/vfg2006/gas-station-dashboard/internal/domain"
)

const gasStationsTable = "gas_stations"

var gasStationColumns = []string{
	"id", "station_name", "owner_name", "brand", "address", "operation_type", "fuel_types",
	"daily_target", "margin_target", "latitude", "longitude", "created_at", "updated_at",
}

type GasStationRepository interface {
	GetByID(ctx context.Context, id string) (*tablesdomain.GasStationRow, error)
	Update(ctx context.Context, id string, patch domain.StationPatch) (*tablesdomain.GasStationRow, error)
}

type gasStationRepository struct {
	db postgres.Queryer
}

func NewGasStationRepository(db postgres.Queryer) GasStationRepository {
	return &gasStationRepository{db: db}
}

func (r *gasStationRepository) GetByID(ctx context.Context, id string) (*tablesdomain.GasStationRow, error) {
	query, args, err := toSQL(squirrel.
		Select(gasStationColumns...).
		From(gasStationsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar))
	if err != nil {
		return nil, err
	}

	row, err := scanGasStation(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("posto %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("erro ao buscar posto %s: %w", id, err)
	}

	return row, nil
}

func (r *gasStationRepository) Update(ctx context.Context, id string, patch domain.StationPatch) (*tablesdomain.GasStationRow, error) {
	query, args, err := toSQL(buildGasStationUpdate(id, patch, time.Now()))
	if err != nil {
		return nil, err
	}

	row, err := scanGasStation(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("posto %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("erro ao atualizar posto %s: %w", id, err)
	}

	return row, nil
}

// buildGasStationUpdate altera apenas os campos informados no patch
func buildGasStationUpdate(id string, patch domain.StationPatch, now time.Time) squirrel.UpdateBuilder {
	values := map[string]any{}

	if patch.Name != nil {
		values["station_name"] = *patch.Name
	}
	if patch.OwnerName != nil {
		values["owner_name"] = *patch.OwnerName
	}
	if patch.Brand != nil {
		values["brand"] = *patch.Brand
	}
	if patch.Address != nil {
		values["address"] = *patch.Address
	}
	if patch.OperationType != nil {
		values["operation_type"] = *patch.OperationType
	}
	if patch.FuelTypes != nil {
		values["fuel_types"] = pq.Array(*patch.FuelTypes)
	}
	if patch.DailyTarget != nil {
		values["daily_target"] = *patch.DailyTarget
	}
	if patch.MarginTarget != nil {
		values["margin_target"] = *patch.MarginTarget
	}
	if patch.Latitude != nil {
		values["latitude"] = *patch.Latitude
	}
	if patch.Longitude != nil {
		values["longitude"] = *patch.Longitude
	}
	values["updated_at"] = now

	return squirrel.
		Update(gasStationsTable).
		SetMap(values).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(gasStationColumns)).
		PlaceholderFormat(squirrel.Dollar)
}

func scanGasStation(scanner rowScanner) (*tablesdomain.GasStationRow, error) {
	row := &tablesdomain.GasStationRow{}

	if err := scanner.Scan(
		&row.ID,
		&row.StationName,
		&row.OwnerName,
		&row.Brand,
		&row.Address,
		&row.OperationType,
		pq.Array(&row.FuelTypes),
		&row.DailyTarget,
		&row.MarginTarget,
		&row.Latitude,
		&row.Longitude,
		&row.CreatedAt.Time,
		&row.UpdatedAt.Time,
	); err != nil {
		return nil, err
	}

	return row, nil
}
