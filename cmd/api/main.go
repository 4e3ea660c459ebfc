package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables"
	"github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/tablesclient"
	"github.com/vfg2006/gas-station-dashboard/internal/api"
	"github.com/vfg2006/gas-station-dashboard/internal/config"
	"github.com/vfg2006/gas-station-dashboard/internal/domain"
	"github.com/vfg2006/gas-station-dashboard/internal/scheduler"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/gas-station-dashboard/pkg/cache"
	"github.com/vfg2006/gas-station-dashboard/pkg/log"
)

const pollerStopTimeout = 10 * time.Second

func main() {
	// Garante que o .env ao lado do binário seja encontrado
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	responseCache := cache.New(
		cache.WithTTL(cfg.Cache.TTL),
		cache.WithMaxEntries(cfg.Cache.MaxEntries),
	)

	tablesClient := tablesclient.NewClient(cfg)
	tablesIntegrator := tables.New(cfg, tablesClient)

	dashboardService := dashboarding.NewService(cfg, tablesIntegrator, responseCache)

	poller := scheduler.NewPoller(dashboardService)
	if cfg.Polling.Enabled {
		if err := poller.Start(ctx, cfg.PollingInterval(), logRealtimeUpdate); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o polling de mercado e previsões")
		}
	} else {
		logrus.Info("Polling de mercado e previsões desabilitado por configuração")
	}

	refreshSyncService := scheduler.NewRefreshSyncService(dashboardService, cfg)
	if err := refreshSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de renovação do cache")
	} else {
		logrus.Info("Agendador de renovação do cache iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, poller, refreshSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), pollerStopTimeout)
	defer stopCancel()

	if err := poller.Stop(stopCtx); err != nil {
		logrus.WithError(err).Warn("Ciclo de polling não terminou dentro do prazo")
	}
}

func logRealtimeUpdate(_ context.Context, update domain.RealtimeUpdate) {
	fields := logrus.Fields{"timestamp": update.Timestamp.Format(time.RFC3339)}

	if update.MarketData != nil {
		fields["oil_price"] = update.MarketData.CurrentOilPrice
		fields["exchange_rate"] = update.MarketData.CurrentExchangeRate
	}
	if update.Predictions != nil {
		fields["predictions"] = len(update.Predictions.Predictions)
	}

	logrus.WithFields(fields).Debug("Atualização de mercado e previsões recebida")
}

func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do binário")
	}
}
