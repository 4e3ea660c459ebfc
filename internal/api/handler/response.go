package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/gas-station-dashboard/pkg/apiErrors"
	"github.com/vfg2006/gas-station-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxDays limita as janelas de consulta aceitas pela API
const maxDays = 365

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

// stationIDParam obtém o id do posto da rota
func stationIDParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

// daysParam lê o parâmetro days. Ausente retorna 0, que os casos de uso tratam como o padrão.
func daysParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return 0, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 || days > maxDays {
		return 0, errors.New("parâmetro days deve ser um inteiro entre 1 e 365")
	}
	return days, nil
}

// writeWriteError traduz as falhas das escritas do dashboard para a resposta HTTP
func writeWriteError(w http.ResponseWriter, err error) {
	var httpErr *dashboarding.HTTPError

	switch {
	case errors.Is(err, dashboarding.ErrMissingID),
		errors.Is(err, dashboarding.ErrEmptyPatch),
		errors.Is(err, dashboarding.ErrInvalidPrice):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound:
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Posto não encontrado no backend de tabelas", nil)

	case errors.Is(err, dashboarding.ErrNetworkFailure):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Backend de tabelas indisponível", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao gravar no backend de tabelas", map[string]string{"error": err.Error()})
	}
}
