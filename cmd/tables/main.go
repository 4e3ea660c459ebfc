package main

import (
	"context"
	"math/rand"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gas-station-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/gas-station-dashboard/infrastructure/migration"
	"github.com/vfg2006/gas-station-dashboard/infrastructure/repository"
	"github.com/vfg2006/gas-station-dashboard/internal/api"
	"github.com/vfg2006/gas-station-dashboard/internal/config"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/tabling"
	"github.com/vfg2006/gas-station-dashboard/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Tables.AutoMigrate {
		if err := migration.Apply(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar o schema")
		}
	}

	if cfg.Tables.Seed {
		seed(ctx, pgConn, cfg.Backend.DefaultStationID)
	}

	service := tabling.NewService(tabling.Repositories{
		GasStations:      repository.NewGasStationRepository(pgConn),
		PricePredictions: repository.NewPricePredictionRepository(pgConn),
		CompetitorPrices: repository.NewCompetitorPriceRepository(pgConn),
		MarketData:       repository.NewMarketDataRepository(pgConn),
		SalesData:        repository.NewSalesDataRepository(pgConn),
	})

	if err := api.NewTablesServer(cfg, service, pgConn).Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func seed(ctx context.Context, conn postgres.Conn, stationID string) {
	now := time.Now()
	fallback := dashboarding.NewFallback(rand.NewSource(now.UnixNano()), func() time.Time { return now })

	ds, err := migration.BuildDataset(stationID, fallback, now, nil)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar dados de demonstração")
	}

	if err := migration.Seed(ctx, conn, ds); err != nil {
		logrus.WithError(err).Fatal("Erro ao inserir dados de demonstração")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do binário")
	}
}
