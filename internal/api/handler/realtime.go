package handler

import (
	"net/http"

	"github.com/vfg2006/gas-station-dashboard/internal/domain"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/dashboarding"
)

// LatestUpdater expõe o resultado do último ciclo de polling
type LatestUpdater interface {
	Latest() (domain.RealtimeUpdate, bool)
}

// GetRealtimeLatest devolve o último ciclo do polling. Sem ciclo concluído, lê na hora.
func GetRealtimeLatest(service dashboarding.Dashboarder, poller LatestUpdater) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if poller != nil {
			if update, ok := poller.Latest(); ok {
				writeJSON(w, http.StatusOK, update)
				return
			}
		}

		writeJSON(w, http.StatusOK, service.RealtimeSnapshot(r.Context()))
	})
}
