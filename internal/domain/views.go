package domain

// WeeklyPattern é o padrão semanal fixo exibido na aba de tendências (segunda a domingo)
var WeeklyPattern = [7]float64{85, 78, 82, 95, 100, 88, 70}

// ProfitView combina o resumo de vendas com a meta diária do posto
type ProfitView struct {
	Sales       *SalesSummary `json:"sales"`
	DailyTarget float64       `json:"daily_target"`
	Display     Display       `json:"display"`
}

// TrendView combina o padrão de vendas de 7 dias com a série de preços de 30 dias
type TrendView struct {
	HourlyPattern [24]float64    `json:"hourly_pattern"`
	WeeklyPattern [7]float64     `json:"weekly_pattern"`
	Prices        *PriceForecast `json:"prices"`
}

// Display contém valores já formatados para exibição (ko-KR)
type Display map[string]string
