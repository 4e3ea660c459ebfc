package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gas-station-dashboard/internal/config"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/dashboarding"
)

// Refresher renova todos os dados em cache do dashboard
type Refresher interface {
	RefreshAll(ctx context.Context) dashboarding.RefreshReport
}

// RefreshSyncConfig representa a configuração da renovação periódica do cache
type RefreshSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// RefreshSyncService agenda a renovação completa do cache do dashboard
type RefreshSyncService struct {
	scheduler           *gocron.Scheduler
	config              RefreshSyncConfig
	refresher           Refresher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *dashboarding.RefreshReport
}

func NewRefreshSyncService(refresher Refresher, appConfig *config.Config) *RefreshSyncService {
	syncConfig := RefreshSyncConfig{
		CronSchedule: appConfig.RefreshSync.CronSchedule,
		SyncEnabled:  appConfig.RefreshSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração da renovação do cache carregada")

	return &RefreshSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		refresher: refresher,
	}
}

// Start agenda a renovação. O agendador é parado quando ctx é cancelado.
func (s *RefreshSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Renovação periódica do cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de renovação do cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a renovação do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de renovação do cache")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RefreshSyncService) refreshAll(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Renovação do cache já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	report := s.refresher.RefreshAll(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastReport = &report
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia uma renovação fora do agendamento. Retorna false se já houver uma em andamento.
func (s *RefreshSyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Renovação do cache já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando renovação manual do cache")
	go s.refreshAll(context.WithoutCancel(ctx))

	return true
}

// GetStatus retorna o status atual do agendador
func (s *RefreshSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastReport != nil {
		status["last_sync_succeeded"] = len(s.lastReport.Succeeded)
		status["last_sync_failed"] = s.lastReport.Failed
	}

	return status
}
