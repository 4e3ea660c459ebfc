package handler

import (
	"errors"
	"net/http"

	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
	"github.com/vfg2006/gas-station-dashboard/internal/domain"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/aggregating"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/gas-station-dashboard/pkg/apiErrors"
	"github.com/vfg2006/gas-station-dashboard/pkg/log"
	"github.com/vfg2006/gas-station-dashboard/pkg/utils"
)

// salesSummaryRequest é o corpo de POST /v1/sales/summary
type salesSummaryRequest struct {
	Records []saleRecordRequest `json:"records"`
}

type saleRecordRequest struct {
	SaleDate     tablesdomain.Timestamp `json:"sale_date"`
	SaleHour     int                    `json:"sale_hour"`
	FuelType     string                 `json:"fuel_type"`
	QuantitySold float64                `json:"quantity_sold"`
	GrossProfit  float64                `json:"gross_profit"`
}

func (r saleRecordRequest) toDomain() domain.SaleRecord {
	return domain.SaleRecord{
		SaleDate:     r.SaleDate.Time,
		SaleHour:     r.SaleHour,
		FuelType:     domain.ParseFuelType(r.FuelType),
		QuantitySold: r.QuantitySold,
		GrossProfit:  r.GrossProfit,
	}
}

func GetSalesData(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days, err := daysParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, service.GetSalesData(r.Context(), stationIDParam(r), days))
	})
}

// SummarizeSales agrega registros enviados pelo cliente, sem passar pelo backend de tabelas
func SummarizeSales() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req salesSummaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		records := make([]domain.SaleRecord, len(req.Records))
		for i, record := range req.Records {
			records[i] = record.toDomain()
		}

		summary, err := aggregating.Aggregate(records)
		if err != nil {
			var recordErr *aggregating.RecordError
			if errors.As(err, &recordErr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidSalesRecord, err.Error(), map[string]any{
					"index": recordErr.Index,
					"field": recordErr.Field,
				})
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("Erro ao agregar vendas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao agregar vendas", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"summary": summary,
			"display": map[string]string{
				"total_profit":         utils.FormatCurrency(summary.TotalProfit),
				"average_daily_profit": utils.FormatCurrency(summary.AverageDailyProfit),
				"gasoline_profit":      utils.FormatCurrency(summary.FuelTypeProfit.Gasoline),
				"diesel_profit":        utils.FormatCurrency(summary.FuelTypeProfit.Diesel),
			},
		})
	})
}
