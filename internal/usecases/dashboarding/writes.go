package dashboarding

import (
	"context"
	"fmt"

	"github.com/vfg2006/gas-station-dashboard/internal/domain"
	"github.com/vfg2006/gas-station-dashboard/pkg/log"
)

// UpdateStationInfo atualiza o cadastro do posto e invalida o cache correspondente.
// Não há fallback: qualquer falha do backend é devolvida.
func (s *Service) UpdateStationInfo(ctx context.Context, stationID string, patch domain.StationPatch) (*domain.Station, error) {
	if stationID == "" {
		return nil, ErrMissingID
	}
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	station, err := s.integrator.UpdateStation(ctx, stationID, patch)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"station_id": stationID,
			"error":      err.Error(),
		}).Error("Erro ao atualizar o posto")
		return nil, fmt.Errorf("erro ao atualizar o posto %s: %w", stationID, err)
	}

	s.invalidate(stationKey(stationID))

	return station, nil
}

// RecordCurrentPrices grava os preços praticados agora como uma previsão manual (confiança 100)
// e invalida a previsão de 7 dias do posto.
func (s *Service) RecordCurrentPrices(ctx context.Context, stationID string, gasolinePrice, dieselPrice float64) (*domain.PricePrediction, error) {
	if stationID == "" {
		return nil, ErrMissingID
	}
	if gasolinePrice <= 0 || dieselPrice <= 0 {
		return nil, fmt.Errorf("%w: gasolina=%v diesel=%v", ErrInvalidPrice, gasolinePrice, dieselPrice)
	}

	created, err := s.integrator.CreatePricePrediction(ctx, stationID, domain.PricePrediction{
		Date:            s.now(),
		GasolinePrice:   gasolinePrice,
		DieselPrice:     dieselPrice,
		ConfidenceScore: domain.ManualEntryConfidence,
		Factors:         domain.ManualEntryFactors,
	})
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"station_id": stationID,
			"error":      err.Error(),
		}).Error("Erro ao registrar os preços atuais")
		return nil, fmt.Errorf("erro ao registrar os preços do posto %s: %w", stationID, err)
	}

	s.invalidate(predictionsKey(stationID, DefaultPredictionDays))

	return created, nil
}
