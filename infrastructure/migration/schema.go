// Package migration cria as tabelas do backend REST e carrega os dados de demonstração
package migration

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gas-station-dashboard/infrastructure/database/postgres"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS gas_stations (
		id             VARCHAR(32) PRIMARY KEY,
		station_name   TEXT NOT NULL,
		owner_name     TEXT NOT NULL DEFAULT '',
		brand          TEXT NOT NULL DEFAULT '',
		address        TEXT NOT NULL DEFAULT '',
		operation_type TEXT NOT NULL DEFAULT '',
		fuel_types     TEXT[] NOT NULL DEFAULT '{}',
		daily_target   NUMERIC(14, 2) NOT NULL DEFAULT 0,
		margin_target  NUMERIC(6, 2) NOT NULL DEFAULT 0,
		latitude       DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude      DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS price_predictions (
		id                 VARCHAR(32) PRIMARY KEY,
		station_id         VARCHAR(32) NOT NULL REFERENCES gas_stations (id),
		prediction_date    TIMESTAMPTZ NOT NULL,
		gasoline_price     NUMERIC(10, 2) NOT NULL CHECK (gasoline_price > 0),
		diesel_price       NUMERIC(10, 2) NOT NULL CHECK (diesel_price > 0),
		confidence_score   NUMERIC(5, 2) CHECK (confidence_score BETWEEN 0 AND 100),
		prediction_factors TEXT NOT NULL DEFAULT '',
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS price_predictions_station_date_idx ON price_predictions (station_id, prediction_date)`,
	`CREATE TABLE IF NOT EXISTS competitor_prices (
		id               VARCHAR(32) PRIMARY KEY,
		station_id       VARCHAR(32) NOT NULL REFERENCES gas_stations (id),
		competitor_name  TEXT NOT NULL,
		competitor_brand TEXT NOT NULL DEFAULT '',
		distance_km      NUMERIC(6, 2) NOT NULL CHECK (distance_km >= 0),
		gasoline_price   NUMERIC(10, 2) NOT NULL,
		diesel_price     NUMERIC(10, 2) NOT NULL,
		price_rank       INTEGER NOT NULL CHECK (price_rank > 0),
		last_updated     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS market_data (
		id              VARCHAR(32) PRIMARY KEY,
		data_date       DATE NOT NULL UNIQUE,
		brent_oil_price NUMERIC(8, 2) NOT NULL CHECK (brent_oil_price > 0),
		exchange_rate   NUMERIC(8, 2) NOT NULL CHECK (exchange_rate > 0),
		market_trend    TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS sales_data (
		id            VARCHAR(32) PRIMARY KEY,
		station_id    VARCHAR(32) NOT NULL REFERENCES gas_stations (id),
		sale_date     TIMESTAMPTZ NOT NULL,
		sale_hour     SMALLINT NOT NULL CHECK (sale_hour BETWEEN 0 AND 23),
		fuel_type     TEXT NOT NULL,
		quantity_sold NUMERIC(12, 3) NOT NULL CHECK (quantity_sold >= 0),
		gross_profit  NUMERIC(14, 2) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS sales_data_station_date_idx ON sales_data (station_id, sale_date)`,
}

// Apply cria as tabelas que ainda não existem
func Apply(ctx context.Context, conn postgres.Conn) error {
	logrus.WithField("statements", len(schema)).Info("Aplicando schema do backend de tabelas")

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, statement := range schema {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("erro ao aplicar o comando %d do schema: %w", i+1, err)
			}
		}
		return nil
	})
}
