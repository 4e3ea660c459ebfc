package handler

import (
	"net/http"

	"github.com/vfg2006/gas-station-dashboard/internal/domain"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/gas-station-dashboard/pkg/apiErrors"
	"github.com/vfg2006/gas-station-dashboard/pkg/log"
)

func GetStation(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		station := service.GetStationInfo(r.Context(), stationIDParam(r))
		writeJSON(w, http.StatusOK, station)
	})
}

func UpdateStation(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stationID := stationIDParam(r)

		var patch domain.StationPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		station, err := service.UpdateStationInfo(r.Context(), stationID, patch)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"station_id": stationID,
				"error":      err.Error(),
			}).Warn("Falha ao atualizar posto")
			writeWriteError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, station)
	})
}

func GetCompetitors(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		competitors := service.GetCompetitorPrices(r.Context(), stationIDParam(r))
		writeJSON(w, http.StatusOK, map[string]any{
			"data":  competitors,
			"total": len(competitors),
		})
	})
}
