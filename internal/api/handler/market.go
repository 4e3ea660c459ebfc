package handler

import (
	"net/http"

	"github.com/vfg2006/gas-station-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/gas-station-dashboard/pkg/apiErrors"
)

func GetMarketData(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days, err := daysParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, service.GetMarketData(r.Context(), days))
	})
}
