package dashboarding

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/vfg2006/gas-station-dashboard/internal/domain"
	"github.com/vfg2006/gas-station-dashboard/pkg/utils"
)

// Faixas dos dados sintéticos
const (
	fallbackGasolineBase = 1580.0
	fallbackDieselBase   = 1460.0
	fallbackBrentBase    = 82.0
	fallbackFXBase       = 1300.0

	fallbackDailyProfitMin   = 200000.0
	fallbackDailyProfitRange = 100000.0

	fallbackGasolineProfit = 4056000.0
	fallbackDieselProfit   = 2184000.0
)

// Fallback gera dados sintéticos com formato e faixas plausíveis.
// É determinístico a partir da fonte aleatória e do relógio informados.
type Fallback struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

func NewFallback(src rand.Source, now func() time.Time) *Fallback {
	if now == nil {
		now = time.Now
	}

	return &Fallback{
		rnd: rand.New(src),
		now: now,
	}
}

func (f *Fallback) float() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rnd.Float64()
}

func (f *Fallback) today() time.Time {
	y, m, d := f.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (f *Fallback) Station(stationID string) *domain.Station {
	return &domain.Station{
		ID:            stationID,
		Name:          "KH에너지 가평주유소",
		OwnerName:     "김철수",
		Brand:         "KH에너지",
		Address:       "경기도 가평군 설악면 미사리로 123",
		OperationType: "직영",
		FuelTypes:     []string{"휘발유", "경유"},
		DailyTarget:   250000,
		MarginTarget:  12,
		Latitude:      37.8267,
		Longitude:     127.51,
		Synthetic:     true,
	}
}

// Predictions gera uma série de days dias a partir de hoje, com oscilação senoidal e ruído
func (f *Fallback) Predictions(stationID string, days int) *domain.PriceForecast {
	start := f.today()

	forecast := &domain.PriceForecast{
		StationID:   stationID,
		Predictions: make([]domain.PricePrediction, 0, days),
		Confidence:  domain.DefaultConfidence,
		Factors:     domain.DefaultFactors,
		Synthetic:   true,
	}

	for i := 0; i < days; i++ {
		gasoline := math.Round(fallbackGasolineBase + math.Sin(float64(i)*0.5)*8 + (f.float()-0.5)*10)
		diesel := math.Round(fallbackDieselBase + math.Sin(float64(i)*0.3)*6 + (f.float()-0.5)*8)

		forecast.Predictions = append(forecast.Predictions, domain.PricePrediction{
			Date:            start.AddDate(0, 0, i),
			GasolinePrice:   gasoline,
			DieselPrice:     diesel,
			ConfidenceScore: domain.DefaultConfidence,
			Factors:         domain.DefaultFactors,
		})
	}

	return forecast
}

func (f *Fallback) Competitors() []domain.CompetitorRecord {
	now := f.now()

	return []domain.CompetitorRecord{
		{Name: "ABC주유소", Brand: "SK", DistanceKm: 2.1, GasolinePrice: 1590, DieselPrice: 1470, Rank: 2, LastUpdated: now.Add(-2 * time.Hour)},
		{Name: "XYZ주유소", Brand: "GS칼텍스", DistanceKm: 3.5, GasolinePrice: 1595, DieselPrice: 1465, Rank: 3, LastUpdated: now.Add(-5 * time.Hour)},
		{Name: "DEF주유소", Brand: "현대오일뱅크", DistanceKm: 4.2, GasolinePrice: 1585, DieselPrice: 1475, Rank: 4, LastUpdated: now.Add(-3 * time.Hour)},
		{Name: "GHI주유소", Brand: "S-OIL", DistanceKm: 5.8, GasolinePrice: 1600, DieselPrice: 1480, Rank: 5, LastUpdated: now.Add(-4 * time.Hour)},
	}
}

// Market gera days cotações terminando hoje. O valor corrente é a última cotação gerada.
func (f *Fallback) Market(days int) *domain.MarketOverview {
	today := f.today()

	overview := &domain.MarketOverview{
		Snapshots:    make([]domain.MarketSnapshot, 0, days),
		CurrentTrend: domain.MarketTrendUp,
		Synthetic:    true,
	}

	for i := 0; i < days; i++ {
		oil := utils.RoundTo(fallbackBrentBase+math.Sin(float64(i)*0.2)*4+f.float()*6, 1)
		fx := math.Round(fallbackFXBase + math.Sin(float64(i)*0.1)*20 + f.float()*10)

		overview.Snapshots = append(overview.Snapshots, domain.MarketSnapshot{
			Date:                  today.AddDate(0, 0, i-days+1),
			BrentOilPrice:         oil,
			ExchangeRateKRWperUSD: fx,
			Trend:                 domain.MarketTrendUp,
		})
	}

	if n := len(overview.Snapshots); n > 0 {
		overview.CurrentOilPrice = overview.Snapshots[n-1].BrentOilPrice
		overview.CurrentExchangeRate = overview.Snapshots[n-1].ExchangeRateKRWperUSD
	}

	return overview
}

// Sales gera lucros diários dos últimos days dias e uma curva horária com picos de manhã e à noite
func (f *Fallback) Sales(days int) *domain.SalesSummary {
	today := domain.DateOf(f.now())
	base := today.Time()

	summary := &domain.SalesSummary{
		DailyProfits: make([]domain.DailyProfit, 0, days),
		FuelTypeProfit: domain.FuelTypeProfit{
			Gasoline: fallbackGasolineProfit,
			Diesel:   fallbackDieselProfit,
		},
		Synthetic: true,
	}

	var total float64
	for i := 0; i < days; i++ {
		profit := math.Round(fallbackDailyProfitMin + f.float()*fallbackDailyProfitRange)
		total += profit

		summary.DailyProfits = append(summary.DailyProfits, domain.DailyProfit{
			Date:   domain.DateOf(base.AddDate(0, 0, i-days+1)),
			Profit: profit,
		})
	}

	for hour := range summary.HourlyPattern {
		summary.HourlyPattern[hour] = f.HourlyVolume(hour)
	}

	summary.TotalProfit = total
	if days > 0 {
		summary.AverageDailyProfit = total / float64(days)
	}

	return summary
}

// HourlyVolume sorteia o volume sintético da hora, com picos de manhã e no fim da tarde
func (f *Fallback) HourlyVolume(hour int) float64 {
	low, spread := hourlyBand(hour)
	return math.Round(low + f.float()*spread)
}

// hourlyBand devolve o mínimo e a amplitude do volume sintético de cada hora
func hourlyBand(hour int) (float64, float64) {
	switch {
	case hour < 6:
		return 20, 10
	case hour < 9:
		return 60, 25
	case hour < 17:
		return 70, 20
	case hour < 20:
		return 85, 15
	default:
		return 40, 20
	}
}
