package dashboarding

import (
	"context"
	"sync"

	"github.com/vfg2006/gas-station-dashboard/internal/domain"
	"github.com/vfg2006/gas-station-dashboard/pkg/utils"
)

// GetProfitView busca vendas e cadastro do posto em paralelo e calcula o atingimento da meta diária
func (s *Service) GetProfitView(ctx context.Context, stationID string, days int) *domain.ProfitView {
	var (
		sales   *domain.SalesSummary
		station *domain.Station
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		sales = s.GetSalesData(ctx, stationID, days)
	}()

	go func() {
		defer wg.Done()
		station = s.GetStationInfo(ctx, stationID)
	}()

	wg.Wait()

	display := domain.Display{
		"total_profit":         utils.FormatCurrency(sales.TotalProfit),
		"average_daily_profit": utils.FormatCurrency(sales.AverageDailyProfit),
		"daily_target":         utils.FormatCurrency(station.DailyTarget),
		"gasoline_profit":      utils.FormatCurrency(sales.FuelTypeProfit.Gasoline),
		"diesel_profit":        utils.FormatCurrency(sales.FuelTypeProfit.Diesel),
	}

	if station.DailyTarget > 0 {
		display["target_achievement"] = utils.FormatPercent(sales.AverageDailyProfit / station.DailyTarget * 100)
	}

	return &domain.ProfitView{
		Sales:       sales,
		DailyTarget: station.DailyTarget,
		Display:     display,
	}
}

// GetTrendView combina o padrão horário de 7 dias com a previsão de 30 dias
func (s *Service) GetTrendView(ctx context.Context, stationID string) *domain.TrendView {
	var (
		sales  *domain.SalesSummary
		prices *domain.PriceForecast
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		sales = s.GetSalesData(ctx, stationID, TrendSalesDays)
	}()

	go func() {
		defer wg.Done()
		prices = s.GetPricePredictions(ctx, stationID, TrendPredictionDays)
	}()

	wg.Wait()

	return &domain.TrendView{
		HourlyPattern: sales.HourlyPattern,
		WeeklyPattern: domain.WeeklyPattern,
		Prices:        prices,
	}
}
