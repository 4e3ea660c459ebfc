package dashboarding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
	"github.com/vfg2006/gas-station-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetProfitView(t *testing.T) {
	service, integrator := newTestService(t)

	integrator.EXPECT().
		GetSalesRecords(gomock.Any(), "1", gomock.Any()).
		Return([]domain.SaleRecord{
			{SaleDate: testNow, SaleHour: 9, FuelType: domain.FuelGasoline, QuantitySold: 100, GrossProfit: 200000},
		}, nil)
	integrator.EXPECT().
		GetStation(gomock.Any(), "1").
		Return(&domain.Station{ID: "1", DailyTarget: 250000}, nil)

	view := service.GetProfitView(context.Background(), "1", 30)

	require.NotNil(t, view.Sales)
	assert.Equal(t, 250000.0, view.DailyTarget)
	assert.Equal(t, "₩200,000", view.Display["total_profit"])
	assert.Equal(t, "₩250,000", view.Display["daily_target"])
	assert.Equal(t, "80.0%", view.Display["target_achievement"])
}

func TestService_GetTrendView(t *testing.T) {
	service, integrator := newTestService(t)

	integrator.EXPECT().
		GetSalesRecords(gomock.Any(), "1", testNow.AddDate(0, 0, -TrendSalesDays)).
		Return(nil, tablesdomain.ErrNetworkFailure)
	integrator.EXPECT().
		GetPricePredictions(gomock.Any(), "1", TrendPredictionDays).
		Return(&domain.PriceForecast{StationID: "1"}, nil)

	view := service.GetTrendView(context.Background(), "1")

	assert.Equal(t, domain.WeeklyPattern, view.WeeklyPattern)
	assert.Equal(t, "1", view.Prices.StationID)
	assert.NotZero(t, view.HourlyPattern[12], "fallback de vendas preenche o padrão horário")
}
