package tablesclient

import (
	"context"
	"net/http"
	"net/url"

	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
)

func (c *TablesClient) ListCompetitorPrices(ctx context.Context, stationID string) (*tablesdomain.ListResponse[tablesdomain.CompetitorPriceRow], error) {
	var response tablesdomain.ListResponse[tablesdomain.CompetitorPriceRow]

	query := url.Values{}
	query.Set("station_id", stationID)
	query.Set("sort", "price_rank")

	err := c.do(ctx, request{
		method:   http.MethodGet,
		resource: "competitor_prices",
		query:    query,
	}, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}
