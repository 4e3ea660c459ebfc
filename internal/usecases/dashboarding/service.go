package dashboarding

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables"
	"github.com/vfg2006/gas-station-dashboard/internal/config"
	"github.com/vfg2006/gas-station-dashboard/internal/domain"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/aggregating"
	"github.com/vfg2006/gas-station-dashboard/pkg/cache"
	"github.com/vfg2006/gas-station-dashboard/pkg/log"
	"golang.org/x/sync/singleflight"
)

// Service é o cliente de dados do dashboard: cache, chamadas ao backend de tabelas e fallback sintético
type Service struct {
	cfg        *config.Config
	integrator tables.TablesIntegrator
	cache      *cache.Cache
	group      singleflight.Group
	fallback   *Fallback
	now        func() time.Time

	// versionMu protege epoch e versions. Toda escrita no cache acontece com ele travado.
	versionMu sync.Mutex
	epoch     uint64
	versions  map[string]uint64
}

// cacheVersion identifica o estado de uma chave: epoch muda a cada limpeza total, key a cada invalidação
type cacheVersion struct {
	epoch uint64
	key   uint64
}

var _ Dashboarder = (*Service)(nil)

type Option func(*Service)

// WithFallback substitui o gerador de dados sintéticos
func WithFallback(f *Fallback) Option {
	return func(s *Service) {
		s.fallback = f
	}
}

// WithClock substitui o relógio usado nas escritas e no filtro de vendas
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService cria o cliente de dados. O cache é criado pelo chamador e passa a pertencer ao serviço.
func NewService(cfg *config.Config, integrator tables.TablesIntegrator, c *cache.Cache, opts ...Option) *Service {
	s := &Service{
		cfg:        cfg,
		integrator: integrator,
		cache:      c,
		now:        time.Now,
		versions:   make(map[string]uint64),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.fallback == nil {
		s.fallback = NewFallback(rand.NewSource(time.Now().UnixNano()), s.now)
	}

	return s
}

func (s *Service) DefaultStationID() string {
	return s.cfg.Backend.DefaultStationID
}

// cachedRead devolve o valor em cache ou busca no backend. Leituras simultâneas da mesma chave
// compartilham uma única chamada. Somente resultados bem-sucedidos são guardados, e apenas se
// nenhuma escrita ou limpeza do cache aconteceu durante a busca.
func cachedRead[T any](ctx context.Context, s *Service, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	version := s.versionOf(key)

	if cached, ok := s.cache.Get(key); ok {
		if value, ok := cached.(T); ok {
			return value, nil
		}
	}

	// A versão entra na chave do singleflight: depois de uma invalidação, novas leituras
	// não se juntam a uma busca iniciada antes dela
	flightKey := fmt.Sprintf("%s@%d.%d", key, version.epoch, version.key)

	result, err, shared := s.group.Do(flightKey, func() (any, error) {
		if cached, ok := s.cache.Get(key); ok {
			if value, ok := cached.(T); ok {
				return value, nil
			}
		}

		// A chamada é compartilhada, então não pode ser cancelada pelo primeiro chamador
		value, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		if !s.storeIfCurrent(key, version, value) {
			log.ForContext(ctx).WithField("cache_key", key).Debug("Cache alterado durante a leitura, resultado não será guardado")
		}
		return value, nil
	})
	if err != nil {
		return zero, err
	}

	if shared {
		log.ForContext(ctx).WithField("cache_key", key).Debug("Leitura compartilhada com outra requisição em andamento")
	}

	value, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("tipo inesperado no cache para a chave %s: %T", key, result)
	}

	return value, nil
}

func (s *Service) versionOf(key string) cacheVersion {
	s.versionMu.Lock()
	defer s.versionMu.Unlock()

	return cacheVersion{epoch: s.epoch, key: s.versions[key]}
}

// storeIfCurrent grava o valor somente se a chave continua na versão observada antes da busca
func (s *Service) storeIfCurrent(key string, version cacheVersion, value any) bool {
	s.versionMu.Lock()
	defer s.versionMu.Unlock()

	if s.epoch != version.epoch || s.versions[key] != version.key {
		return false
	}

	s.cache.Put(key, value)
	return true
}

func (s *Service) invalidate(key string) {
	s.versionMu.Lock()
	defer s.versionMu.Unlock()

	s.versions[key]++
	s.cache.Invalidate(key)
}

// clearCache descarta todas as entradas e todas as buscas em andamento
func (s *Service) clearCache() {
	s.versionMu.Lock()
	defer s.versionMu.Unlock()

	s.epoch++
	s.versions = make(map[string]uint64)
	s.cache.Clear()
}

func (s *Service) logFallback(ctx context.Context, resource, key string, err error) {
	log.ForContext(ctx).WithFields(log.Fields{
		"resource":  resource,
		"cache_key": key,
		"error":     err.Error(),
	}).Warn("Falha na leitura do backend de tabelas, usando dados sintéticos")
}

func (s *Service) loadStation(ctx context.Context, stationID string) (*domain.Station, error) {
	return cachedRead(ctx, s, stationKey(stationID), func(ctx context.Context) (*domain.Station, error) {
		return s.integrator.GetStation(ctx, stationID)
	})
}

func (s *Service) loadPredictions(ctx context.Context, stationID string, days int) (*domain.PriceForecast, error) {
	return cachedRead(ctx, s, predictionsKey(stationID, days), func(ctx context.Context) (*domain.PriceForecast, error) {
		return s.integrator.GetPricePredictions(ctx, stationID, days)
	})
}

func (s *Service) loadCompetitors(ctx context.Context, stationID string) ([]domain.CompetitorRecord, error) {
	return cachedRead(ctx, s, competitorsKey(stationID), func(ctx context.Context) ([]domain.CompetitorRecord, error) {
		return s.integrator.GetCompetitorPrices(ctx, stationID)
	})
}

func (s *Service) loadMarket(ctx context.Context, days int) (*domain.MarketOverview, error) {
	return cachedRead(ctx, s, marketKey(days), func(ctx context.Context) (*domain.MarketOverview, error) {
		return s.integrator.GetMarketData(ctx, days)
	})
}

func (s *Service) loadSales(ctx context.Context, stationID string, days int) (*domain.SalesSummary, error) {
	return cachedRead(ctx, s, salesKey(stationID, days), func(ctx context.Context) (*domain.SalesSummary, error) {
		since := s.now().AddDate(0, 0, -days)

		records, err := s.integrator.GetSalesRecords(ctx, stationID, since)
		if err != nil {
			return nil, err
		}

		summary, err := aggregating.Aggregate(records)
		if err != nil {
			// Registro inválido vindo do backend é tratado como resposta malformada
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}

		return summary, nil
	})
}

func (s *Service) GetStationInfo(ctx context.Context, stationID string) *domain.Station {
	station, err := s.loadStation(ctx, stationID)
	if err != nil {
		s.logFallback(ctx, "gas_stations", stationKey(stationID), err)
		return s.fallback.Station(stationID)
	}

	return station
}

func (s *Service) GetPricePredictions(ctx context.Context, stationID string, days int) *domain.PriceForecast {
	days = orDefault(days, DefaultPredictionDays)

	forecast, err := s.loadPredictions(ctx, stationID, days)
	if err != nil {
		s.logFallback(ctx, "price_predictions", predictionsKey(stationID, days), err)
		return s.fallback.Predictions(stationID, days)
	}

	return forecast
}

func (s *Service) GetCompetitorPrices(ctx context.Context, stationID string) []domain.CompetitorRecord {
	competitors, err := s.loadCompetitors(ctx, stationID)
	if err != nil {
		s.logFallback(ctx, "competitor_prices", competitorsKey(stationID), err)
		return s.fallback.Competitors()
	}

	return competitors
}

func (s *Service) GetMarketData(ctx context.Context, days int) *domain.MarketOverview {
	days = orDefault(days, DefaultMarketDays)

	overview, err := s.loadMarket(ctx, days)
	if err != nil {
		s.logFallback(ctx, "market_data", marketKey(days), err)
		return s.fallback.Market(days)
	}

	return overview
}

func (s *Service) GetSalesData(ctx context.Context, stationID string, days int) *domain.SalesSummary {
	days = orDefault(days, DefaultSalesDays)

	summary, err := s.loadSales(ctx, stationID, days)
	if err != nil {
		s.logFallback(ctx, "sales_data", salesKey(stationID, days), err)
		return s.fallback.Sales(days)
	}

	return summary
}
