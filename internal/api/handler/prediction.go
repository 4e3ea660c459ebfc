package handler

import (
	"net/http"

	"github.com/vfg2006/gas-station-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/gas-station-dashboard/pkg/apiErrors"
	"github.com/vfg2006/gas-station-dashboard/pkg/log"
	"github.com/vfg2006/gas-station-dashboard/pkg/utils"
)

// currentPricesRequest é o corpo de POST /v1/stations/:id/prices
type currentPricesRequest struct {
	GasolinePrice float64 `json:"gasoline_price"`
	DieselPrice   float64 `json:"diesel_price"`
}

func GetPricePredictions(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days, err := daysParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		forecast := service.GetPricePredictions(r.Context(), stationIDParam(r), days)
		writeJSON(w, http.StatusOK, forecast)
	})
}

func RecordCurrentPrices(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stationID := stationIDParam(r)

		var req currentPricesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.RecordCurrentPrices(r.Context(), stationID, req.GasolinePrice, req.DieselPrice)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"station_id": stationID,
				"error":      err.Error(),
			}).Warn("Falha ao registrar preços atuais")
			writeWriteError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"prediction": created,
			"display": map[string]string{
				"gasoline_price": utils.FormatCurrency(created.GasolinePrice),
				"diesel_price":   utils.FormatCurrency(created.DieselPrice),
			},
		})
	})
}
