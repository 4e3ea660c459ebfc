package aggregating

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gas-station-dashboard/internal/domain"
)

// Aggregate resume as vendas brutas em lucro diário, padrão horário e divisão por combustível.
// A função é pura: nenhum estado é mantido entre chamadas.
func Aggregate(records []domain.SaleRecord) (*domain.SalesSummary, error) {
	daily := make(map[domain.CalendarDate]decimal.Decimal)
	var hourly [24]decimal.Decimal

	var (
		gasoline     = decimal.Zero
		diesel       = decimal.Zero
		unrecognized = decimal.Zero
		skipped      int
	)

	for i, record := range records {
		if err := validate(i, record); err != nil {
			return nil, err
		}

		profit := decimal.NewFromFloat(record.GrossProfit)
		date := domain.DateOf(record.SaleDate)

		daily[date] = daily[date].Add(profit)
		hourly[record.SaleHour] = hourly[record.SaleHour].Add(decimal.NewFromFloat(record.QuantitySold))

		switch record.FuelType {
		case domain.FuelGasoline:
			gasoline = gasoline.Add(profit)
		case domain.FuelDiesel:
			diesel = diesel.Add(profit)
		default:
			unrecognized = unrecognized.Add(profit)
			skipped++
			logrus.WithFields(logrus.Fields{
				"index":     i,
				"fuel_type": string(record.FuelType),
				"profit":    record.GrossProfit,
				"error":     ErrUnrecognizedFuelType,
			}).Warn("Tipo de combustível não reconhecido, excluído da divisão por combustível")
		}
	}

	dates := make([]domain.CalendarDate, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	summary := &domain.SalesSummary{
		DailyProfits: make([]domain.DailyProfit, 0, len(dates)),
		FuelTypeProfit: domain.FuelTypeProfit{
			Gasoline: gasoline.InexactFloat64(),
			Diesel:   diesel.InexactFloat64(),
		},
		UnrecognizedProfit:  unrecognized.InexactFloat64(),
		UnrecognizedRecords: skipped,
	}

	total := decimal.Zero
	for _, date := range dates {
		total = total.Add(daily[date])
		summary.DailyProfits = append(summary.DailyProfits, domain.DailyProfit{
			Date:   date,
			Profit: daily[date].InexactFloat64(),
		})
	}

	for hour, quantity := range hourly {
		summary.HourlyPattern[hour] = quantity.InexactFloat64()
	}

	summary.TotalProfit = total.InexactFloat64()

	// Sem datas não há média
	if len(dates) > 0 {
		summary.AverageDailyProfit = total.Div(decimal.NewFromInt(int64(len(dates)))).InexactFloat64()
	}

	return summary, nil
}

func validate(index int, record domain.SaleRecord) error {
	if record.SaleDate.IsZero() {
		return invalidRecord(index, "sale_date", "data ausente")
	}
	if record.SaleHour < 0 || record.SaleHour > 23 {
		return invalidRecord(index, "sale_hour", "hora %d fora de 0..23", record.SaleHour)
	}
	if !isFinite(record.QuantitySold) || record.QuantitySold < 0 {
		return invalidRecord(index, "quantity_sold", "quantidade inválida %v", record.QuantitySold)
	}
	if !isFinite(record.GrossProfit) {
		return invalidRecord(index, "gross_profit", "lucro inválido %v", record.GrossProfit)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
