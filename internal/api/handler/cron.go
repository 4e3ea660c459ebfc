package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gas-station-dashboard/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeRefresh = "refresh"
)

// ManualSyncer é implementado pelos agendadores que aceitam execução manual
type ManualSyncer interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

type StatusReporter interface {
	GetStatus() map[string]any
}

// CronJobServices contém os agendadores expostos pela API
type CronJobServices struct {
	RefreshSyncService ManualSyncer
	Poller             StatusReporter
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeRefresh:
			if services.RefreshSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de renovação do cache não disponível", nil)
				return
			}
			if !services.RefreshSyncService.TriggerManualSync(r.Context()) {
				apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Renovação do cache já em andamento", nil)
				return
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: refresh", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status dos agendadores
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.RefreshSyncService != nil {
			status["refresh"] = services.RefreshSyncService.GetStatus()
		}
		if services.Poller != nil {
			status["polling"] = services.Poller.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
