package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gas-station-dashboard/internal/api/handler/router"
	"github.com/vfg2006/gas-station-dashboard/internal/domain"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/gas-station-dashboard/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fakePoller struct {
	update *domain.RealtimeUpdate
}

func (f *fakePoller) Latest() (domain.RealtimeUpdate, bool) {
	if f.update == nil {
		return domain.RealtimeUpdate{}, false
	}
	return *f.update, true
}

func (f *fakePoller) GetStatus() map[string]any {
	return map[string]any{"polling_enabled": f.update != nil}
}

type fakeSyncer struct {
	accept bool
	calls  int
}

func (f *fakeSyncer) TriggerManualSync(ctx context.Context) bool {
	f.calls++
	return f.accept
}

func (f *fakeSyncer) GetStatus() map[string]any {
	return map[string]any{"sync_running": !f.accept}
}

func newTestRouter(service dashboarding.Dashboarder, poller *fakePoller, syncer *fakeSyncer) http.Handler {
	cron := CronJobServices{Poller: poller}
	if syncer != nil {
		cron.RefreshSyncService = syncer
	}

	return router.New(
		router.WithRoutes(Healthcheck(nil)...),
		router.WithRoutes(Stations(service)...),
		router.WithRoutes(Market(service)...),
		router.WithRoutes(Sales()...),
		router.WithRoutes(Realtime(service, poller)...),
		router.WithRoutes(CronJobs(cron)...),
	)
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestGetStation(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)

	service.EXPECT().GetStationInfo(gomock.Any(), "7").Return(&domain.Station{ID: "7", Name: "KH에너지 가평주유소"})

	rec := serve(newTestRouter(service, &fakePoller{}, nil), http.MethodGet, "/v1/stations/7", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var station domain.Station
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &station))
	assert.Equal(t, "7", station.ID)
	assert.Equal(t, "KH에너지 가평주유소", station.Name)
}

func TestGetPricePredictions_DaysParam(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(service *mocks.MockDashboarder)
		wantStatus int
	}{
		{
			name:  "sem days usa o padrão do caso de uso",
			query: "",
			setup: func(service *mocks.MockDashboarder) {
				service.EXPECT().GetPricePredictions(gomock.Any(), "1", 0).Return(&domain.PriceForecast{StationID: "1"})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "days explícito",
			query: "?days=14",
			setup: func(service *mocks.MockDashboarder) {
				service.EXPECT().GetPricePredictions(gomock.Any(), "1", 14).Return(&domain.PriceForecast{StationID: "1"})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "days não numérico",
			query:      "?days=abc",
			setup:      func(service *mocks.MockDashboarder) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "days acima do limite",
			query:      "?days=1000",
			setup:      func(service *mocks.MockDashboarder) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDashboarder(ctrl)
			tt.setup(service)

			rec := serve(newTestRouter(service, &fakePoller{}, nil), http.MethodGet, "/v1/stations/1/predictions"+tt.query, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUpdateStation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(service *mocks.MockDashboarder)
		wantStatus int
		wantCode   string
	}{
		{
			name: "sucesso",
			body: `{"daily_target": 300000}`,
			setup: func(service *mocks.MockDashboarder) {
				service.EXPECT().UpdateStationInfo(gomock.Any(), "1", gomock.Any()).
					DoAndReturn(func(ctx context.Context, stationID string, patch domain.StationPatch) (*domain.Station, error) {
						require.NotNil(t, patch.DailyTarget)
						assert.Equal(t, 300000.0, *patch.DailyTarget)
						assert.Nil(t, patch.Name)
						return &domain.Station{ID: "1", DailyTarget: *patch.DailyTarget}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "corpo inválido",
			body:       `{"daily_target": "muito"`,
			setup:      func(service *mocks.MockDashboarder) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name: "patch vazio",
			body: `{}`,
			setup: func(service *mocks.MockDashboarder) {
				service.EXPECT().UpdateStationInfo(gomock.Any(), "1", gomock.Any()).Return(nil, dashboarding.ErrEmptyPatch)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "posto inexistente no backend",
			body: `{"brand": "SK"}`,
			setup: func(service *mocks.MockDashboarder) {
				service.EXPECT().UpdateStationInfo(gomock.Any(), "1", gomock.Any()).
					Return(nil, fmt.Errorf("erro ao atualizar o posto 1: %w", &dashboarding.HTTPError{StatusCode: http.StatusNotFound, Status: "404 Not Found"}))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrNotFound,
		},
		{
			name: "backend com erro 500",
			body: `{"brand": "SK"}`,
			setup: func(service *mocks.MockDashboarder) {
				service.EXPECT().UpdateStationInfo(gomock.Any(), "1", gomock.Any()).
					Return(nil, fmt.Errorf("erro ao atualizar o posto 1: %w", &dashboarding.HTTPError{StatusCode: http.StatusInternalServerError, Status: "500 Internal Server Error"}))
			},
			wantStatus: http.StatusBadGateway,
			wantCode:   apiErrors.ErrExternalService,
		},
		{
			name: "falha de rede",
			body: `{"brand": "SK"}`,
			setup: func(service *mocks.MockDashboarder) {
				service.EXPECT().UpdateStationInfo(gomock.Any(), "1", gomock.Any()).
					Return(nil, fmt.Errorf("erro ao atualizar o posto 1: %w", dashboarding.ErrNetworkFailure))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   apiErrors.ErrCommunication,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDashboarder(ctrl)
			tt.setup(service)

			rec := serve(newTestRouter(service, &fakePoller{}, nil), http.MethodPut, "/v1/stations/1", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestRecordCurrentPrices(t *testing.T) {
	t.Run("sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboarder(ctrl)

		service.EXPECT().RecordCurrentPrices(gomock.Any(), "1", 1590.0, 1470.0).Return(&domain.PricePrediction{
			GasolinePrice:   1590,
			DieselPrice:     1470,
			ConfidenceScore: domain.ManualEntryConfidence,
			Factors:         domain.ManualEntryFactors,
		}, nil)

		rec := serve(newTestRouter(service, &fakePoller{}, nil), http.MethodPost, "/v1/stations/1/prices",
			`{"gasoline_price": 1590, "diesel_price": 1470}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Prediction domain.PricePrediction `json:"prediction"`
			Display    map[string]string      `json:"display"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 100.0, body.Prediction.ConfidenceScore)
		assert.Equal(t, "₩1,590", body.Display["gasoline_price"])
		assert.Equal(t, "₩1,470", body.Display["diesel_price"])
	})

	t.Run("preço inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboarder(ctrl)

		service.EXPECT().RecordCurrentPrices(gomock.Any(), "1", 0.0, 1470.0).
			Return(nil, fmt.Errorf("%w: gasolina=0 diesel=1470", dashboarding.ErrInvalidPrice))

		rec := serve(newTestRouter(service, &fakePoller{}, nil), http.MethodPost, "/v1/stations/1/prices",
			`{"gasoline_price": 0, "diesel_price": 1470}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})
}

func TestGetCompetitors(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)

	service.EXPECT().GetCompetitorPrices(gomock.Any(), "1").Return([]domain.CompetitorRecord{
		{Name: "가평셀프주유소", Rank: 2},
		{Name: "청평주유소", Rank: 3},
	})

	rec := serve(newTestRouter(service, &fakePoller{}, nil), http.MethodGet, "/v1/stations/1/competitors", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data  []domain.CompetitorRecord `json:"data"`
		Total int                       `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, 2, body.Data[0].Rank)
}

func TestGetMarketData(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)

	service.EXPECT().GetMarketData(gomock.Any(), 30).Return(&domain.MarketOverview{
		CurrentTrend:    domain.MarketTrendUp,
		CurrentOilPrice: 84.2,
		Synthetic:       true,
	})

	rec := serve(newTestRouter(service, &fakePoller{}, nil), http.MethodGet, "/v1/market?days=30", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var market domain.MarketOverview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &market))
	assert.Equal(t, domain.MarketTrendUp, market.CurrentTrend)
	assert.True(t, market.Synthetic)
}

func TestSalesAndViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)

	service.EXPECT().GetSalesData(gomock.Any(), "1", 0).Return(&domain.SalesSummary{TotalProfit: 250000})
	service.EXPECT().GetProfitView(gomock.Any(), "1", 7).Return(&domain.ProfitView{
		DailyTarget: 250000,
		Display:     domain.Display{"total_profit": "₩200,000"},
	})
	service.EXPECT().GetTrendView(gomock.Any(), "1").Return(&domain.TrendView{WeeklyPattern: domain.WeeklyPattern})

	h := newTestRouter(service, &fakePoller{}, nil)

	rec := serve(h, http.MethodGet, "/v1/stations/1/sales", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_profit":250000`)

	rec = serve(h, http.MethodGet, "/v1/stations/1/profit?days=7", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "₩200,000")

	rec = serve(h, http.MethodGet, "/v1/stations/1/trends", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"weekly_pattern":[85,78,82,95,100,88,70]`)
}

func TestSummarizeSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)
	h := newTestRouter(service, &fakePoller{}, nil)

	t.Run("agrega registros com rótulos do backend", func(t *testing.T) {
		body := `{"records": [
			{"sale_date": "2024-01-01", "sale_hour": 9, "fuel_type": "휘발유", "quantity_sold": 100, "gross_profit": 1000},
			{"sale_date": "2024-01-01T10:00:00Z", "sale_hour": 10, "fuel_type": "경유", "quantity_sold": 50, "gross_profit": 500}
		]}`

		rec := serve(h, http.MethodPost, "/v1/sales/summary", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Summary domain.SalesSummary `json:"summary"`
			Display map[string]string   `json:"display"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1500.0, resp.Summary.TotalProfit)
		assert.Equal(t, 1000.0, resp.Summary.FuelTypeProfit.Gasoline)
		assert.Equal(t, 500.0, resp.Summary.FuelTypeProfit.Diesel)
		assert.Equal(t, 1000.0, resp.Summary.HourlyPattern[9])
		assert.Len(t, resp.Summary.DailyProfits, 1)
		assert.Equal(t, "₩1,500", resp.Display["total_profit"])
	})

	t.Run("registro inválido retorna 422 com o índice", func(t *testing.T) {
		body := `{"records": [
			{"sale_date": "2024-01-01", "sale_hour": 9, "fuel_type": "휘발유", "quantity_sold": 100, "gross_profit": 1000},
			{"sale_date": "2024-01-01", "sale_hour": 24, "fuel_type": "경유", "quantity_sold": 50, "gross_profit": 500}
		]}`

		rec := serve(h, http.MethodPost, "/v1/sales/summary", body)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		apiErr := decodeAPIError(t, rec)
		assert.Equal(t, apiErrors.ErrInvalidSalesRecord, apiErr.Code)
		details, ok := apiErr.Details.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 1.0, details["index"])
		assert.Equal(t, "sale_hour", details["field"])
	})

	t.Run("lista vazia", func(t *testing.T) {
		rec := serve(h, http.MethodPost, "/v1/sales/summary", `{"records": []}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_profit":0`)
	})
}

func TestGetRealtimeLatest(t *testing.T) {
	t.Run("usa o último ciclo do polling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboarder(ctrl)

		update := domain.RealtimeUpdate{
			MarketData: &domain.MarketOverview{CurrentOilPrice: 83.5},
			Timestamp:  time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		}

		rec := serve(newTestRouter(service, &fakePoller{update: &update}, nil), http.MethodGet, "/v1/realtime/latest", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"current_oil_price":83.5`)
	})

	t.Run("sem ciclo concluído lê na hora", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboarder(ctrl)

		service.EXPECT().RealtimeSnapshot(gomock.Any()).Return(domain.RealtimeUpdate{
			MarketData: &domain.MarketOverview{CurrentOilPrice: 81.0},
		})

		rec := serve(newTestRouter(service, &fakePoller{}, nil), http.MethodGet, "/v1/realtime/latest", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"current_oil_price":81`)
	})
}

func TestCronJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)

	t.Run("renovação aceita", func(t *testing.T) {
		syncer := &fakeSyncer{accept: true}
		rec := serve(newTestRouter(service, &fakePoller{}, syncer), http.MethodPost, "/v1/cron/refresh/run", "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, syncer.calls)
	})

	t.Run("renovação já em andamento", func(t *testing.T) {
		syncer := &fakeSyncer{accept: false}
		rec := serve(newTestRouter(service, &fakePoller{}, syncer), http.MethodPost, "/v1/cron/refresh/run", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrSyncInProgress, decodeAPIError(t, rec).Code)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		syncer := &fakeSyncer{accept: true}
		rec := serve(newTestRouter(service, &fakePoller{}, syncer), http.MethodPost, "/v1/cron/meta/run", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, syncer.calls)
	})

	t.Run("serviço ausente", func(t *testing.T) {
		rec := serve(newTestRouter(service, &fakePoller{}, nil), http.MethodPost, "/v1/cron/refresh/run", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("status", func(t *testing.T) {
		syncer := &fakeSyncer{accept: true}
		rec := serve(newTestRouter(service, &fakePoller{}, syncer), http.MethodGet, "/v1/cron/status", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var status map[string]map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.Contains(t, status, "refresh")
		assert.Contains(t, status, "polling")
	})
}

func TestRouter_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)

	rec := serve(newTestRouter(service, &fakePoller{}, nil), http.MethodGet, "/v1/inexistente", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeAPIError(t, rec).Code)
}

func TestWriteWriteError_Unknown(t *testing.T) {
	rec := httptest.NewRecorder()
	writeWriteError(rec, errors.New("qualquer"))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(ctx context.Context) error {
	return f.err
}

func TestHealthcheck(t *testing.T) {
	tests := []struct {
		name       string
		deps       map[string]Pinger
		wantStatus int
		wantBody   string
	}{
		{
			name:       "sem dependências",
			wantStatus: http.StatusOK,
			wantBody:   `"status":"ok"`,
		},
		{
			name:       "banco disponível",
			deps:       map[string]Pinger{"database": fakePinger{}},
			wantStatus: http.StatusOK,
			wantBody:   `"database":"ok"`,
		},
		{
			name:       "banco indisponível",
			deps:       map[string]Pinger{"database": fakePinger{err: errors.New("conexão recusada")}},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"status":"degraded"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router.New(router.WithRoutes(Healthcheck(tt.deps)...)), http.MethodGet, "/healthcheck", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
