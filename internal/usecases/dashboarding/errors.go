package dashboarding

import (
	"errors"

	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
)

// Falhas de leitura e escrita no backend de tabelas
var (
	ErrNetworkFailure    = tablesdomain.ErrNetworkFailure
	ErrHTTPStatus        = tablesdomain.ErrHTTPStatus
	ErrMalformedResponse = tablesdomain.ErrMalformedResponse
)

type HTTPError = tablesdomain.HTTPError

// Erros de validação das escritas, detectados antes de chamar o backend
var (
	ErrEmptyPatch   = errors.New("nenhum campo informado para atualização")
	ErrInvalidPrice = errors.New("preço deve ser positivo")
	ErrMissingID    = errors.New("id do posto é obrigatório")
)
