package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gas-station-dashboard/internal/api/handler"
	"github.com/vfg2006/gas-station-dashboard/internal/api/handler/router"
	"github.com/vfg2006/gas-station-dashboard/internal/config"
	"github.com/vfg2006/gas-station-dashboard/internal/scheduler"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/tabling"
	"github.com/vfg2006/gas-station-dashboard/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	dashboard dashboarding.Dashboarder,
	poller *scheduler.Poller,
	refreshSyncService *scheduler.RefreshSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		RefreshSyncService: refreshSyncService,
		Poller:             poller,
	}

	rt := NewRouter(config, dashboard, poller, cronServices)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           rt,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewRouter monta as rotas do dashboard com a cadeia de middlewares
func NewRouter(
	config *config.Config,
	dashboard dashboarding.Dashboarder,
	poller handler.LatestUpdater,
	cronServices handler.CronJobServices,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(nil)...),
		router.WithRoutes(handler.Stations(dashboard)...),
		router.WithRoutes(handler.Market(dashboard)...),
		router.WithRoutes(handler.Sales()...),
		router.WithRoutes(handler.Realtime(dashboard, poller)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

// NewTablesServer cria o servidor do backend REST de tabelas. O healthcheck verifica o banco.
func NewTablesServer(config *config.Config, service tabling.Tabler, db handler.Pinger) *Server {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(map[string]handler.Pinger{"database": db})...),
		router.WithRoutes(handler.Tables(service)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.TablesPort),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
