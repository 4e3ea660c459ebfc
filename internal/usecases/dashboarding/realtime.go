package dashboarding

import (
	"context"

	"github.com/vfg2006/gas-station-dashboard/internal/domain"
)

func (s *Service) RealtimeSnapshot(ctx context.Context) domain.RealtimeUpdate {
	market := s.GetMarketData(ctx, RealtimeMarketDays)
	predictions := s.GetPricePredictions(ctx, s.DefaultStationID(), DefaultPredictionDays)

	return domain.RealtimeUpdate{
		MarketData:  market,
		Predictions: predictions,
		Timestamp:   s.now(),
	}
}
