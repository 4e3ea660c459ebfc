package tablesclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
)

func newTestClient(url string) *TablesClient {
	return &TablesClient{
		httpClient: &http.Client{Timeout: 2 * time.Second},
		baseURL:    url,
		retry:      RetryConfig{MaxAttempts: 2, BaseDelay: 10 * time.Millisecond, MaxDelay: 20 * time.Millisecond},
	}
}

func TestTablesClient_GetGasStation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/tables/gas_stations/1", r.URL.Path)
		w.Write([]byte(`{"id":"1","station_name":"KH에너지 가평주유소","fuel_types":["휘발유","경유"],"daily_target":250000,"created_at":1704067200000}`))
	}))
	defer srv.Close()

	row, err := newTestClient(srv.URL).GetGasStation(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", row.ID)
	assert.Equal(t, "KH에너지 가평주유소", row.StationName)
	assert.Equal(t, []string{"휘발유", "경유"}, row.FuelTypes)
	assert.Equal(t, 250000.0, row.DailyTarget)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), row.CreatedAt.Time)
}

func TestTablesClient_UpdateGasStationSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"daily_target":300000}`, string(body))
		w.Write([]byte(`{"id":"1","daily_target":300000}`))
	}))
	defer srv.Close()

	row, err := newTestClient(srv.URL).UpdateGasStation(context.Background(), "1", map[string]any{"daily_target": 300000})
	require.NoError(t, err)
	assert.Equal(t, 300000.0, row.DailyTarget)
}

func TestTablesClient_ListPricePredictionsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tables/price_predictions", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("station_id"))
		assert.Equal(t, "7", r.URL.Query().Get("limit"))
		assert.Equal(t, "prediction_date", r.URL.Query().Get("sort"))
		w.Write([]byte(`{"data":[{"station_id":"1","prediction_date":"2024-01-01T00:00:00Z","gasoline_price":1580,"diesel_price":1460,"confidence_score":92}],"total":1}`))
	}))
	defer srv.Close()

	resp, err := newTestClient(srv.URL).ListPricePredictions(context.Background(), PricePredictionParams{StationID: "1", Limit: 7})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 1580.0, resp.Data[0].GasolinePrice)
	require.NotNil(t, resp.Data[0].ConfidenceScore)
	assert.Equal(t, 92.0, *resp.Data[0].ConfidenceScore)
}

func TestTablesClient_ListSalesDataUsesSaleDateFilter(t *testing.T) {
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "sale_date>=2024-01-01T00%3A00%3A00Z")
		assert.Equal(t, "2024-01-01T00:00:00Z", r.URL.Query().Get(tablesdomain.SaleDateFilter))
		w.Write([]byte(`{"data":[{"sale_date":"2024-01-01","sale_hour":8,"fuel_type":"휘발유","quantity_sold":10,"gross_profit":5000}]}`))
	}))
	defer srv.Close()

	resp, err := newTestClient(srv.URL).ListSalesData(context.Background(), SalesDataParams{StationID: "1", Since: since})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 8, resp.Data[0].SaleHour)
}

func TestTablesClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		validate func(t *testing.T, err error)
	}{
		{
			name: "status não-2xx vira HTTPError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"data":[]}`))
			},
			validate: func(t *testing.T, err error) {
				var httpErr *tablesdomain.HTTPError
				require.True(t, errors.As(err, &httpErr))
				assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
				assert.True(t, errors.Is(err, tablesdomain.ErrHTTPStatus))
			},
		},
		{
			name: "corpo inválido vira MalformedResponse",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>oops</html>`))
			},
			validate: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, tablesdomain.ErrMalformedResponse))
			},
		},
		{
			name: "5xx persistente vira HTTPError após as tentativas",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			validate: func(t *testing.T, err error) {
				var httpErr *tablesdomain.HTTPError
				require.True(t, errors.As(err, &httpErr))
				assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := newTestClient(srv.URL).GetGasStation(context.Background(), "1")
			require.Error(t, err)
			tt.validate(t, err)
		})
	}
}

func TestTablesClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).ListMarketData(context.Background(), 30)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tablesdomain.ErrNetworkFailure))
}

func TestDoWithRetry_RetriesOnServerError(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	resp, err := newTestClient(srv.URL).ListCompetitorPrices(context.Background(), "1")
	require.NoError(t, err)
	assert.NotNil(t, resp.Data)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestDoWithRetry_NoRetryOnClientError(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreatePricePrediction(context.Background(), tablesdomain.PricePredictionRow{StationID: "1"})
	require.Error(t, err)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestTablesClient_CreatePricePredictionIsSentOnce(t *testing.T) {
	var posts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		if posts.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"dup","station_id":"1"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreatePricePrediction(context.Background(), tablesdomain.PricePredictionRow{
		StationID:     "1",
		GasolinePrice: 1590,
		DieselPrice:   1470,
	})
	require.Error(t, err)

	var httpErr *tablesdomain.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, int32(1), posts.Load())
}

func TestTablesClient_RetryFor(t *testing.T) {
	client := newTestClient("http://localhost")

	assert.Equal(t, 2, client.retryFor(http.MethodGet).MaxAttempts)
	assert.Equal(t, 2, client.retryFor(http.MethodPut).MaxAttempts)
	assert.Equal(t, 1, client.retryFor(http.MethodPost).MaxAttempts)
}
