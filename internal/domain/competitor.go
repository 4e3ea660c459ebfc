package domain

import "time"

// CompetitorRecord é o preço de um concorrente próximo. Rank crescente = mais barato.
type CompetitorRecord struct {
	Name          string    `json:"name"`
	Brand         string    `json:"brand"`
	DistanceKm    float64   `json:"distance_km"`
	GasolinePrice float64   `json:"gasoline_price"`
	DieselPrice   float64   `json:"diesel_price"`
	Rank          int       `json:"rank"`
	LastUpdated   time.Time `json:"last_updated"`
}
