package tablesclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
)

type PricePredictionParams struct {
	StationID string
	Limit     int
}

func (c *TablesClient) ListPricePredictions(ctx context.Context, params PricePredictionParams) (*tablesdomain.ListResponse[tablesdomain.PricePredictionRow], error) {
	var response tablesdomain.ListResponse[tablesdomain.PricePredictionRow]

	query := url.Values{}
	query.Set("station_id", params.StationID)
	query.Set("limit", strconv.Itoa(params.Limit))
	query.Set("sort", "prediction_date")

	err := c.do(ctx, request{
		method:   http.MethodGet,
		resource: "price_predictions",
		query:    query,
	}, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *TablesClient) CreatePricePrediction(ctx context.Context, row tablesdomain.PricePredictionRow) (*tablesdomain.PricePredictionRow, error) {
	var created tablesdomain.PricePredictionRow

	err := c.do(ctx, request{
		method:   http.MethodPost,
		resource: "price_predictions",
		body:     row,
	}, &created)
	if err != nil {
		return nil, err
	}

	return &created, nil
}
