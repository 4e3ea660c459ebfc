package domain

import "time"

type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelDiesel   FuelType = "diesel"
)

// ParseFuelType normaliza os rótulos do backend (휘발유, 경유). Rótulos desconhecidos são preservados.
func ParseFuelType(tag string) FuelType {
	switch tag {
	case "휘발유", string(FuelGasoline):
		return FuelGasoline
	case "경유", string(FuelDiesel):
		return FuelDiesel
	}
	return FuelType(tag)
}

// SaleRecord é uma venda bruta, entrada da agregação
type SaleRecord struct {
	SaleDate     time.Time `json:"sale_date"`
	SaleHour     int       `json:"sale_hour"` // 0..23
	FuelType     FuelType  `json:"fuel_type"`
	QuantitySold float64   `json:"quantity_sold"`
	GrossProfit  float64   `json:"gross_profit"`
}

type DailyProfit struct {
	Date   CalendarDate `json:"date"`
	Profit float64      `json:"profit"`
}

type FuelTypeProfit struct {
	Gasoline float64 `json:"gasoline"`
	Diesel   float64 `json:"diesel"`
}

// SalesSummary é o resultado da agregação das vendas
type SalesSummary struct {
	DailyProfits        []DailyProfit  `json:"daily_profits"`
	HourlyPattern       [24]float64    `json:"hourly_pattern"`
	FuelTypeProfit      FuelTypeProfit `json:"fuel_type_profit"`
	TotalProfit         float64        `json:"total_profit"`
	AverageDailyProfit  float64        `json:"average_daily_profit"`
	UnrecognizedProfit  float64        `json:"unrecognized_profit,omitempty"`
	UnrecognizedRecords int            `json:"unrecognized_records,omitempty"`
	Synthetic           bool           `json:"synthetic,omitempty"`
}
