package tablesclient

import (
	"context"
	"net/http"
	"net/url"

	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
)

func (c *TablesClient) GetGasStation(ctx context.Context, stationID string) (*tablesdomain.GasStationRow, error) {
	var row tablesdomain.GasStationRow

	err := c.do(ctx, request{
		method:   http.MethodGet,
		resource: "gas_stations/" + url.PathEscape(stationID),
	}, &row)
	if err != nil {
		return nil, err
	}

	return &row, nil
}

func (c *TablesClient) UpdateGasStation(ctx context.Context, stationID string, patch any) (*tablesdomain.GasStationRow, error) {
	var row tablesdomain.GasStationRow

	err := c.do(ctx, request{
		method:   http.MethodPut,
		resource: "gas_stations/" + url.PathEscape(stationID),
		body:     patch,
	}, &row)
	if err != nil {
		return nil, err
	}

	return &row, nil
}
