package tablesclient

import (
	"context"
	"net/http"
	"net/url"
	"time"

	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
)

type SalesDataParams struct {
	StationID string
	Since     time.Time
}

func (c *TablesClient) ListSalesData(ctx context.Context, params SalesDataParams) (*tablesdomain.ListResponse[tablesdomain.SalesDataRow], error) {
	var response tablesdomain.ListResponse[tablesdomain.SalesDataRow]

	query := url.Values{}
	query.Set("station_id", params.StationID)
	query.Set("sort", "sale_date")

	err := c.do(ctx, request{
		method:   http.MethodGet,
		resource: "sales_data",
		query:    query,
		rawQuery: tablesdomain.SaleDateFilter + "=" + url.QueryEscape(params.Since.UTC().Format(time.RFC3339)),
	}, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}
