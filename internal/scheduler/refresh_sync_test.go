package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gas-station-dashboard/internal/config"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/dashboarding"
)

type fakeRefresher struct {
	calls   atomic.Int32
	release chan struct{}
}

func (f *fakeRefresher) RefreshAll(ctx context.Context) dashboarding.RefreshReport {
	f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	return dashboarding.RefreshReport{
		Succeeded: []string{"station_1", "market_30"},
		Failed:    map[string]string{"sales_1_30": "network failure"},
	}
}

func newRefreshConfig(enabled bool) *config.Config {
	return &config.Config{
		RefreshSync: config.RefreshSync{CronSchedule: "*/15 * * * *", Enabled: enabled},
	}
}

func TestRefreshSyncService_TriggerManualSync(t *testing.T) {
	refresher := &fakeRefresher{release: make(chan struct{})}
	service := NewRefreshSyncService(refresher, newRefreshConfig(false))

	assert.True(t, service.TriggerManualSync(context.Background()))
	waitFor(t, time.Second, func() bool { return refresher.calls.Load() == 1 })

	assert.False(t, service.TriggerManualSync(context.Background()), "renovação em andamento deve ser ignorada")
	assert.Equal(t, true, service.GetStatus()["sync_running"])

	close(refresher.release)
	waitFor(t, time.Second, func() bool { return service.GetStatus()["sync_running"] == false })

	status := service.GetStatus()
	assert.Equal(t, 2, status["last_sync_succeeded"])
	assert.Equal(t, map[string]string{"sales_1_30": "network failure"}, status["last_sync_failed"])
	assert.Equal(t, int32(1), refresher.calls.Load())
}

func TestRefreshSyncService_StartDisabled(t *testing.T) {
	service := NewRefreshSyncService(&fakeRefresher{}, newRefreshConfig(false))
	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestRefreshSyncService_StartInvalidCron(t *testing.T) {
	cfg := newRefreshConfig(true)
	cfg.RefreshSync.CronSchedule = "não é cron"

	service := NewRefreshSyncService(&fakeRefresher{}, cfg)
	assert.Error(t, service.Start(context.Background()))
}
