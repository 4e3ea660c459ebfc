package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
	"github.com/vfg2006/gas-station-dashboard/internal/api/handler/router"
	"github.com/vfg2006/gas-station-dashboard/internal/domain"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/tabling"
	"github.com/vfg2006/gas-station-dashboard/pkg/apiErrors"
	"github.com/vfg2006/gas-station-dashboard/pkg/log"
)

// Tables retorna as rotas do backend REST de tabelas
func Tables(service tabling.Tabler) []router.Route {
	return []router.Route{
		{
			Path:    "/tables/gas_stations/:id",
			Method:  http.MethodGet,
			Handler: GetGasStationRow(service),
		},
		{
			Path:    "/tables/gas_stations/:id",
			Method:  http.MethodPut,
			Handler: UpdateGasStationRow(service),
		},
		{
			Path:    "/tables/price_predictions",
			Method:  http.MethodGet,
			Handler: listTable(service.ListPricePredictions),
		},
		{
			Path:    "/tables/price_predictions",
			Method:  http.MethodPost,
			Handler: CreatePricePredictionRow(service),
		},
		{
			Path:    "/tables/competitor_prices",
			Method:  http.MethodGet,
			Handler: listTable(service.ListCompetitorPrices),
		},
		{
			Path:    "/tables/market_data",
			Method:  http.MethodGet,
			Handler: listTable(service.ListMarketData),
		},
		{
			Path:    "/tables/sales_data",
			Method:  http.MethodGet,
			Handler: listTable(service.ListSalesData),
		},
	}
}

func GetGasStationRow(service tabling.Tabler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		row, err := service.GetGasStation(r.Context(), stationIDParam(r))
		if err != nil {
			writeTablesError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, row)
	})
}

func UpdateGasStationRow(service tabling.Tabler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var patch domain.StationPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		row, err := service.UpdateGasStation(r.Context(), stationIDParam(r), patch)
		if err != nil {
			writeTablesError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, row)
	})
}

func CreatePricePredictionRow(service tabling.Tabler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var row tablesdomain.PricePredictionRow
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.CreatePricePrediction(r.Context(), row)
		if err != nil {
			writeTablesError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func listTable[T any](list func(ctx context.Context, query tabling.ListQuery) (*tablesdomain.ListResponse[T], error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query, err := parseListQuery(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		resp, err := list(r.Context(), query)
		if err != nil {
			writeTablesError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

// parseListQuery lê station_id, page, limit e o filtro de data "sale_date>="
func parseListQuery(values url.Values) (tabling.ListQuery, error) {
	query := tabling.ListQuery{StationID: values.Get("station_id")}

	var err error
	if query.Page, err = optionalInt(values, "page"); err != nil {
		return query, err
	}
	if query.Limit, err = optionalInt(values, "limit"); err != nil {
		return query, err
	}

	if raw := values.Get(tablesdomain.SaleDateFilter); raw != "" {
		since, err := tablesdomain.ParseTimestamp(raw)
		if err != nil {
			return query, err
		}
		query.Since = since.UTC()
	}

	return query, nil
}

func optionalInt(values url.Values, key string) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("parâmetro " + key + " deve ser inteiro")
	}
	return value, nil
}

func writeTablesError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, tabling.ErrInvalidQuery), errors.Is(err, tabling.ErrInvalidRow):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, tabling.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)

	default:
		log.ForContext(r.Context()).WithFields(log.Fields{
			"path":  r.URL.Path,
			"error": err.Error(),
		}).Error("Erro no backend de tabelas")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o banco de dados", nil)
	}
}
