package domain

import "time"

const (
	// ManualEntryFactors identifica preços informados diretamente pelo operador
	ManualEntryFactors = "사용자 직접 입력"
	// ManualEntryConfidence é a confiança atribuída a preços informados manualmente
	ManualEntryConfidence = 100

	// DefaultConfidence e DefaultFactors são usados quando o backend não informa a confiança e os fatores
	DefaultConfidence = 95
	DefaultFactors    = "국제유가 상승으로 인한 가격 상승 압력"
)

// PricePrediction é um ponto da série de previsão de preços de um posto
type PricePrediction struct {
	Date            time.Time `json:"date"`
	GasolinePrice   float64   `json:"gasoline_price"`
	DieselPrice     float64   `json:"diesel_price"`
	ConfidenceScore float64   `json:"confidence_score"` // 0..100
	Factors         string    `json:"factors"`
}

// PriceForecast é a série de previsões ordenada por data crescente
type PriceForecast struct {
	StationID   string            `json:"station_id"`
	Predictions []PricePrediction `json:"predictions"`
	Confidence  float64           `json:"confidence"`
	Factors     string            `json:"factors"`
	Synthetic   bool              `json:"synthetic,omitempty"`
}

// Gasoline retorna a série de preços da gasolina na ordem das datas
func (f *PriceForecast) Gasoline() []float64 {
	out := make([]float64, len(f.Predictions))
	for i, p := range f.Predictions {
		out[i] = p.GasolinePrice
	}
	return out
}

// Diesel retorna a série de preços do diesel na ordem das datas
func (f *PriceForecast) Diesel() []float64 {
	out := make([]float64, len(f.Predictions))
	for i, p := range f.Predictions {
		out[i] = p.DieselPrice
	}
	return out
}

// CurrentPrices é um registro manual dos preços praticados agora
type CurrentPrices struct {
	StationID     string  `json:"station_id"`
	GasolinePrice float64 `json:"gasoline_price"`
	DieselPrice   float64 `json:"diesel_price"`
}
