package domain

// Station representa o cadastro de um posto de combustível
type Station struct {
	ID            string   `json:"id"`
	Name          string   `json:"station_name"`
	OwnerName     string   `json:"owner_name"`
	Brand         string   `json:"brand"`
	Address       string   `json:"address"`
	OperationType string   `json:"operation_type"`
	FuelTypes     []string `json:"fuel_types"`
	DailyTarget   float64  `json:"daily_target"`
	MarginTarget  float64  `json:"margin_target"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Synthetic     bool     `json:"synthetic,omitempty"`
}

// StationPatch contém os campos alteráveis de um posto. Campos nulos não são enviados.
type StationPatch struct {
	Name          *string   `json:"station_name,omitempty"`
	OwnerName     *string   `json:"owner_name,omitempty"`
	Brand         *string   `json:"brand,omitempty"`
	Address       *string   `json:"address,omitempty"`
	OperationType *string   `json:"operation_type,omitempty"`
	FuelTypes     *[]string `json:"fuel_types,omitempty"`
	DailyTarget   *float64  `json:"daily_target,omitempty"`
	MarginTarget  *float64  `json:"margin_target,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
}

// IsEmpty indica se nenhum campo foi informado
func (p StationPatch) IsEmpty() bool {
	return p.Name == nil && p.OwnerName == nil && p.Brand == nil && p.Address == nil &&
		p.OperationType == nil && p.FuelTypes == nil && p.DailyTarget == nil &&
		p.MarginTarget == nil && p.Latitude == nil && p.Longitude == nil
}
