package dashboarding

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
	"github.com/vfg2006/gas-station-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_RefreshAll(t *testing.T) {
	service, integrator := newTestService(t)

	// Valor antigo em cache deve ser descartado
	service.cache.Put(stationKey("1"), &domain.Station{ID: "1", Name: "antigo"})

	integrator.EXPECT().GetStation(gomock.Any(), "1").Return(&domain.Station{ID: "1", Name: "novo"}, nil)
	integrator.EXPECT().GetPricePredictions(gomock.Any(), "1", 7).Return(&domain.PriceForecast{StationID: "1"}, nil)
	integrator.EXPECT().GetCompetitorPrices(gomock.Any(), "1").Return(nil, tablesdomain.ErrNetworkFailure)
	integrator.EXPECT().GetMarketData(gomock.Any(), 30).Return(&domain.MarketOverview{}, nil)
	integrator.EXPECT().GetSalesRecords(gomock.Any(), "1", gomock.Any()).Return(nil, &tablesdomain.HTTPError{StatusCode: 500, Status: "500"})

	report := service.RefreshAll(context.Background())

	assert.ElementsMatch(t, []string{"station_1", "predictions_1_7", "market_30"}, report.Succeeded)
	assert.Len(t, report.Failed, 2)
	assert.Contains(t, report.Failed, "competitors_1")
	assert.Contains(t, report.Failed, "sales_1_30")

	// As leituras bem-sucedidas ficam em cache
	assert.Equal(t, "novo", service.GetStationInfo(context.Background(), "1").Name)
}

func TestService_RefreshAllDiscardsReadsInFlight(t *testing.T) {
	service, integrator := newTestService(t)

	started := make(chan struct{})
	release := make(chan struct{})

	integrator.EXPECT().
		GetMarketData(gomock.Any(), 30).
		DoAndReturn(func(ctx context.Context, days int) (*domain.MarketOverview, error) {
			close(started)
			<-release
			return &domain.MarketOverview{CurrentOilPrice: 80.1}, nil
		})
	integrator.EXPECT().
		GetMarketData(gomock.Any(), 30).
		Return(&domain.MarketOverview{CurrentOilPrice: 85.2}, nil)

	integrator.EXPECT().GetStation(gomock.Any(), "1").Return(nil, tablesdomain.ErrNetworkFailure).AnyTimes()
	integrator.EXPECT().GetPricePredictions(gomock.Any(), "1", 7).Return(nil, tablesdomain.ErrNetworkFailure).AnyTimes()
	integrator.EXPECT().GetCompetitorPrices(gomock.Any(), "1").Return(nil, tablesdomain.ErrNetworkFailure).AnyTimes()
	integrator.EXPECT().GetSalesRecords(gomock.Any(), "1", gomock.Any()).Return(nil, tablesdomain.ErrNetworkFailure).AnyTimes()

	stale := make(chan *domain.MarketOverview)
	go func() {
		stale <- service.GetMarketData(context.Background(), 30)
	}()
	<-started

	done := make(chan RefreshReport)
	go func() {
		done <- service.RefreshAll(context.Background())
	}()

	select {
	case report := <-done:
		assert.Contains(t, report.Succeeded, "market_30")
	case <-time.After(time.Second):
		t.Fatal("renovação ficou presa esperando a leitura antiga")
	}

	close(release)
	assert.Equal(t, 80.1, (<-stale).CurrentOilPrice)

	assert.Equal(t, 85.2, service.GetMarketData(context.Background(), 30).CurrentOilPrice)
}
