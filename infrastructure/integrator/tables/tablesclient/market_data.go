package tablesclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
)

func (c *TablesClient) ListMarketData(ctx context.Context, limit int) (*tablesdomain.ListResponse[tablesdomain.MarketDataRow], error) {
	var response tablesdomain.ListResponse[tablesdomain.MarketDataRow]

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("sort", "data_date")

	err := c.do(ctx, request{
		method:   http.MethodGet,
		resource: "market_data",
		query:    query,
	}, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}
