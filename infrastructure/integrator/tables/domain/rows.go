package tablesdomain

// SaleDateFilter é o parâmetro literal "sale_date>=" das listagens de vendas. Ao ser lido com
// url.ParseQuery ele chega como a chave "sale_date>".
const SaleDateFilter = "sale_date>"

// ListResponse é o envelope das listagens do backend de tabelas
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// GasStationRow representa a tabela gas_stations
type GasStationRow struct {
	ID            string    `json:"id"`
	StationName   string    `json:"station_name"`
	OwnerName     string    `json:"owner_name"`
	Brand         string    `json:"brand"`
	Address       string    `json:"address"`
	OperationType string    `json:"operation_type"`
	FuelTypes     []string  `json:"fuel_types"`
	DailyTarget   float64   `json:"daily_target"`
	MarginTarget  float64   `json:"margin_target"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	CreatedAt     Timestamp `json:"created_at,omitempty"`
	UpdatedAt     Timestamp `json:"updated_at,omitempty"`
}

// PricePredictionRow representa a tabela price_predictions
type PricePredictionRow struct {
	ID                string    `json:"id,omitempty"`
	StationID         string    `json:"station_id"`
	PredictionDate    Timestamp `json:"prediction_date"`
	GasolinePrice     float64   `json:"gasoline_price"`
	DieselPrice       float64   `json:"diesel_price"`
	ConfidenceScore   *float64  `json:"confidence_score,omitempty"`
	PredictionFactors string    `json:"prediction_factors,omitempty"`
	CreatedAt         Timestamp `json:"created_at,omitempty"`
}

// CompetitorPriceRow representa a tabela competitor_prices
type CompetitorPriceRow struct {
	ID              string    `json:"id"`
	StationID       string    `json:"station_id"`
	CompetitorName  string    `json:"competitor_name"`
	CompetitorBrand string    `json:"competitor_brand"`
	DistanceKm      float64   `json:"distance_km"`
	GasolinePrice   float64   `json:"gasoline_price"`
	DieselPrice     float64   `json:"diesel_price"`
	PriceRank       int       `json:"price_rank"`
	LastUpdated     Timestamp `json:"last_updated"`
}

// MarketDataRow representa a tabela market_data
type MarketDataRow struct {
	ID            string    `json:"id"`
	DataDate      Timestamp `json:"data_date"`
	BrentOilPrice float64   `json:"brent_oil_price"`
	ExchangeRate  float64   `json:"exchange_rate"`
	MarketTrend   string    `json:"market_trend"`
}

// SalesDataRow representa a tabela sales_data
type SalesDataRow struct {
	ID           string    `json:"id"`
	StationID    string    `json:"station_id"`
	SaleDate     Timestamp `json:"sale_date"`
	SaleHour     int       `json:"sale_hour"`
	FuelType     string    `json:"fuel_type"`
	QuantitySold float64   `json:"quantity_sold"`
	GrossProfit  float64   `json:"gross_profit"`
}
