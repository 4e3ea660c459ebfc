package handler

import (
	"net/http"

	"github.com/vfg2006/gas-station-dashboard/internal/api/handler/router"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/dashboarding"
)

func Healthcheck(deps map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(deps),
		},
	}
}

func Stations(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stations/:id",
			Method:  http.MethodGet,
			Handler: GetStation(service),
		},
		{
			Path:    "/v1/stations/:id",
			Method:  http.MethodPut,
			Handler: UpdateStation(service),
		},
		{
			Path:    "/v1/stations/:id/predictions",
			Method:  http.MethodGet,
			Handler: GetPricePredictions(service),
		},
		{
			Path:    "/v1/stations/:id/prices",
			Method:  http.MethodPost,
			Handler: RecordCurrentPrices(service),
		},
		{
			Path:    "/v1/stations/:id/competitors",
			Method:  http.MethodGet,
			Handler: GetCompetitors(service),
		},
		{
			Path:    "/v1/stations/:id/sales",
			Method:  http.MethodGet,
			Handler: GetSalesData(service),
		},
		{
			Path:    "/v1/stations/:id/profit",
			Method:  http.MethodGet,
			Handler: GetProfitView(service),
		},
		{
			Path:    "/v1/stations/:id/trends",
			Method:  http.MethodGet,
			Handler: GetTrendView(service),
		},
	}
}

func Market(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/market",
			Method:  http.MethodGet,
			Handler: GetMarketData(service),
		},
	}
}

func Sales() []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/summary",
			Method:  http.MethodPost,
			Handler: SummarizeSales(),
		},
	}
}

func Realtime(service dashboarding.Dashboarder, poller LatestUpdater) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/realtime/latest",
			Method:  http.MethodGet,
			Handler: GetRealtimeLatest(service, poller),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
