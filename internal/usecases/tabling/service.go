package tabling

import (
	"context"
	"fmt"
	"time"

	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
	"github.com/vfg2006/gas-station-dashboard/infrastructure/repository"
	"github.com/vfg2006/gas-station-dashboard/internal/domain"
	"github.com/vfg2006/gas-station-dashboard/pkg/log"
	"github.com/vfg2006/gas-station-dashboard/pkg/utils"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
	MaxLimit     = 10000
)

// ListQuery são os parâmetros aceitos pelas listagens
type ListQuery struct {
	StationID string
	Since     time.Time
	Page      int
	Limit     int
}

// Tabler é o backend REST de tabelas consumido pelo dashboard
type Tabler interface {
	GetGasStation(ctx context.Context, id string) (*tablesdomain.GasStationRow, error)
	UpdateGasStation(ctx context.Context, id string, patch domain.StationPatch) (*tablesdomain.GasStationRow, error)
	ListPricePredictions(ctx context.Context, query ListQuery) (*tablesdomain.ListResponse[tablesdomain.PricePredictionRow], error)
	CreatePricePrediction(ctx context.Context, row tablesdomain.PricePredictionRow) (*tablesdomain.PricePredictionRow, error)
	ListCompetitorPrices(ctx context.Context, query ListQuery) (*tablesdomain.ListResponse[tablesdomain.CompetitorPriceRow], error)
	ListMarketData(ctx context.Context, query ListQuery) (*tablesdomain.ListResponse[tablesdomain.MarketDataRow], error)
	ListSalesData(ctx context.Context, query ListQuery) (*tablesdomain.ListResponse[tablesdomain.SalesDataRow], error)
}

// Repositories agrupa os repositórios das cinco tabelas
type Repositories struct {
	GasStations      repository.GasStationRepository
	PricePredictions repository.PricePredictionRepository
	CompetitorPrices repository.CompetitorPriceRepository
	MarketData       repository.MarketDataRepository
	SalesData        repository.SalesDataRepository
}

type Service struct {
	repos      Repositories
	now        func() time.Time
	generateID func() (string, error)
}

var _ Tabler = (*Service)(nil)

func NewService(repos Repositories) *Service {
	return &Service{
		repos:      repos,
		now:        time.Now,
		generateID: utils.GenerateID,
	}
}

func (s *Service) GetGasStation(ctx context.Context, id string) (*tablesdomain.GasStationRow, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id do posto ausente", ErrInvalidQuery)
	}
	return s.repos.GasStations.GetByID(ctx, id)
}

func (s *Service) UpdateGasStation(ctx context.Context, id string, patch domain.StationPatch) (*tablesdomain.GasStationRow, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id do posto ausente", ErrInvalidQuery)
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: nenhum campo para atualizar", ErrInvalidRow)
	}

	row, err := s.repos.GasStations.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithField("station_id", id).Info("Posto atualizado")
	return row, nil
}

// ListPricePredictions lista as previsões a partir de hoje quando Since não é informado
func (s *Service) ListPricePredictions(ctx context.Context, query ListQuery) (*tablesdomain.ListResponse[tablesdomain.PricePredictionRow], error) {
	if query.StationID == "" {
		return nil, fmt.Errorf("%w: station_id é obrigatório", ErrInvalidQuery)
	}
	if query.Since.IsZero() {
		query.Since = startOfDay(s.now())
	}

	return list(ctx, query, DefaultLimit, s.repos.PricePredictions.List)
}

func (s *Service) CreatePricePrediction(ctx context.Context, row tablesdomain.PricePredictionRow) (*tablesdomain.PricePredictionRow, error) {
	if err := validatePrediction(row); err != nil {
		return nil, err
	}

	if _, err := s.repos.GasStations.GetByID(ctx, row.StationID); err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da previsão: %w", err)
	}

	now := s.now()
	row.ID = id
	row.CreatedAt = tablesdomain.NewTimestamp(now)
	if row.PredictionDate.IsZero() {
		row.PredictionDate = tablesdomain.NewTimestamp(now)
	}

	created, err := s.repos.PricePredictions.Create(ctx, row)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"station_id": row.StationID,
		"id":         id,
	}).Info("Previsão de preço registrada")

	return created, nil
}

func (s *Service) ListCompetitorPrices(ctx context.Context, query ListQuery) (*tablesdomain.ListResponse[tablesdomain.CompetitorPriceRow], error) {
	if query.StationID == "" {
		return nil, fmt.Errorf("%w: station_id é obrigatório", ErrInvalidQuery)
	}
	return list(ctx, query, DefaultLimit, s.repos.CompetitorPrices.List)
}

// ListMarketData devolve os Limit dias mais recentes em ordem crescente de data
func (s *Service) ListMarketData(ctx context.Context, query ListQuery) (*tablesdomain.ListResponse[tablesdomain.MarketDataRow], error) {
	return list(ctx, query, DefaultLimit, s.repos.MarketData.List)
}

// ListSalesData não pagina por padrão: a agregação do dashboard precisa da janela inteira
func (s *Service) ListSalesData(ctx context.Context, query ListQuery) (*tablesdomain.ListResponse[tablesdomain.SalesDataRow], error) {
	if query.StationID == "" {
		return nil, fmt.Errorf("%w: station_id é obrigatório", ErrInvalidQuery)
	}
	return list(ctx, query, MaxLimit, s.repos.SalesData.List)
}

func list[T any](
	ctx context.Context,
	query ListQuery,
	defaultLimit int,
	fetch func(context.Context, repository.ListFilter) ([]T, int, error),
) (*tablesdomain.ListResponse[T], error) {
	page, limit, err := normalizePage(query.Page, query.Limit, defaultLimit)
	if err != nil {
		return nil, err
	}

	rows, total, err := fetch(ctx, repository.ListFilter{
		StationID: query.StationID,
		Since:     query.Since,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}

	return &tablesdomain.ListResponse[T]{
		Data:  rows,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func normalizePage(page, limit, defaultLimit int) (int, int, error) {
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = defaultLimit
	}
	if page < 1 {
		return 0, 0, fmt.Errorf("%w: page deve ser positivo", ErrInvalidQuery)
	}
	if limit < 1 || limit > MaxLimit {
		return 0, 0, fmt.Errorf("%w: limit deve estar entre 1 e %d", ErrInvalidQuery, MaxLimit)
	}
	return page, limit, nil
}

func validatePrediction(row tablesdomain.PricePredictionRow) error {
	if row.StationID == "" {
		return fmt.Errorf("%w: station_id é obrigatório", ErrInvalidRow)
	}
	if row.GasolinePrice <= 0 || row.DieselPrice <= 0 {
		return fmt.Errorf("%w: preços devem ser positivos", ErrInvalidRow)
	}
	if row.ConfidenceScore != nil && (*row.ConfidenceScore < 0 || *row.ConfidenceScore > 100) {
		return fmt.Errorf("%w: confidence_score fora de 0..100", ErrInvalidRow)
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
