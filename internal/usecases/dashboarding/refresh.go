package dashboarding

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// RefreshReport resume uma renovação completa do cache
type RefreshReport struct {
	StartedAt time.Time         `json:"started_at"`
	Duration  time.Duration     `json:"duration"`
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed,omitempty"`
}

// RefreshAll limpa o cache e dispara as cinco leituras principais em paralelo.
// Falhas individuais entram no relatório e no log, nunca interrompem a renovação.
func (s *Service) RefreshAll(ctx context.Context) RefreshReport {
	stationID := s.DefaultStationID()
	report := RefreshReport{
		StartedAt: s.now(),
		Failed:    make(map[string]string),
	}

	s.clearCache()

	loads := map[string]func(context.Context) error{
		stationKey(stationID): func(ctx context.Context) error {
			_, err := s.loadStation(ctx, stationID)
			return err
		},
		predictionsKey(stationID, DefaultPredictionDays): func(ctx context.Context) error {
			_, err := s.loadPredictions(ctx, stationID, DefaultPredictionDays)
			return err
		},
		competitorsKey(stationID): func(ctx context.Context) error {
			_, err := s.loadCompetitors(ctx, stationID)
			return err
		},
		marketKey(DefaultMarketDays): func(ctx context.Context) error {
			_, err := s.loadMarket(ctx, DefaultMarketDays)
			return err
		},
		salesKey(stationID, DefaultSalesDays): func(ctx context.Context) error {
			_, err := s.loadSales(ctx, stationID, DefaultSalesDays)
			return err
		},
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for key, load := range loads {
		wg.Add(1)
		go func(key string, load func(context.Context) error) {
			defer wg.Done()

			err := load(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed[key] = err.Error()
				logrus.WithFields(logrus.Fields{
					"cache_key": key,
					"error":     err,
				}).Warn("Falha ao renovar dado do dashboard")
				return
			}
			report.Succeeded = append(report.Succeeded, key)
		}(key, load)
	}

	wg.Wait()

	sort.Strings(report.Succeeded)
	report.Duration = s.now().Sub(report.StartedAt)

	logrus.WithFields(logrus.Fields{
		"succeeded": len(report.Succeeded),
		"failed":    len(report.Failed),
	}).Info("Renovação do cache do dashboard concluída")

	return report
}
