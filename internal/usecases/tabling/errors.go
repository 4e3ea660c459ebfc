package tabling

import (
	"errors"

	"github.com/vfg2006/gas-station-dashboard/infrastructure/repository"
)

var (
	ErrNotFound     = repository.ErrNotFound
	ErrInvalidQuery = errors.New("parâmetros de consulta inválidos")
	ErrInvalidRow   = errors.New("registro inválido")
)
