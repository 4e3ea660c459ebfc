package dashboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tablesdomain "github.com/vfg2006/gas-station-dashboard/infrastructure/integrator/tables/domain"
	"github.com/vfg2006/gas-station-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_UpdateStationInfo(t *testing.T) {
	target := 300000.0
	patch := domain.StationPatch{DailyTarget: &target}

	t.Run("Falha do backend é devolvida sem fallback", func(t *testing.T) {
		service, integrator := newTestService(t)

		integrator.EXPECT().
			UpdateStation(gomock.Any(), "1", patch).
			Return(nil, tablesdomain.ErrNetworkFailure)

		station, err := service.UpdateStationInfo(context.Background(), "1", patch)
		assert.Nil(t, station)
		assert.True(t, errors.Is(err, ErrNetworkFailure))
	})

	t.Run("Status HTTP de erro é devolvido com o código", func(t *testing.T) {
		service, integrator := newTestService(t)

		integrator.EXPECT().
			UpdateStation(gomock.Any(), "1", patch).
			Return(nil, &tablesdomain.HTTPError{StatusCode: 409, Status: "409 Conflict"})

		_, err := service.UpdateStationInfo(context.Background(), "1", patch)

		var httpErr *HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, 409, httpErr.StatusCode)
	})

	t.Run("Sucesso invalida o cache do posto", func(t *testing.T) {
		service, integrator := newTestService(t)

		gomock.InOrder(
			integrator.EXPECT().
				GetStation(gomock.Any(), "1").
				Return(&domain.Station{ID: "1", DailyTarget: 250000}, nil),
			integrator.EXPECT().
				UpdateStation(gomock.Any(), "1", patch).
				Return(&domain.Station{ID: "1", DailyTarget: target}, nil),
			integrator.EXPECT().
				GetStation(gomock.Any(), "1").
				Return(&domain.Station{ID: "1", DailyTarget: target}, nil),
		)

		assert.Equal(t, 250000.0, service.GetStationInfo(context.Background(), "1").DailyTarget)

		updated, err := service.UpdateStationInfo(context.Background(), "1", patch)
		require.NoError(t, err)
		assert.Equal(t, target, updated.DailyTarget)

		assert.Equal(t, target, service.GetStationInfo(context.Background(), "1").DailyTarget)
	})

	t.Run("Leitura em andamento não sobrescreve a invalidação", func(t *testing.T) {
		service, integrator := newTestService(t)

		started := make(chan struct{})
		release := make(chan struct{})

		gomock.InOrder(
			integrator.EXPECT().
				GetStation(gomock.Any(), "1").
				DoAndReturn(func(ctx context.Context, stationID string) (*domain.Station, error) {
					close(started)
					<-release
					return &domain.Station{ID: "1", DailyTarget: 250000}, nil
				}),
			integrator.EXPECT().
				UpdateStation(gomock.Any(), "1", patch).
				Return(&domain.Station{ID: "1", DailyTarget: target}, nil),
			integrator.EXPECT().
				GetStation(gomock.Any(), "1").
				Return(&domain.Station{ID: "1", DailyTarget: target}, nil),
		)

		stale := make(chan *domain.Station)
		go func() {
			stale <- service.GetStationInfo(context.Background(), "1")
		}()
		<-started

		_, err := service.UpdateStationInfo(context.Background(), "1", patch)
		require.NoError(t, err)

		// Não espera pela busca antiga, que ainda está bloqueada
		assert.Equal(t, target, service.GetStationInfo(context.Background(), "1").DailyTarget)

		close(release)
		assert.Equal(t, 250000.0, (<-stale).DailyTarget)

		// O valor antigo não foi gravado por cima do novo
		assert.Equal(t, target, service.GetStationInfo(context.Background(), "1").DailyTarget)
	})

	t.Run("Patch vazio é rejeitado antes do backend", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.UpdateStationInfo(context.Background(), "1", domain.StationPatch{})
		assert.ErrorIs(t, err, ErrEmptyPatch)
	})
}

func TestService_RecordCurrentPrices(t *testing.T) {
	t.Run("Grava entrada manual e invalida a previsão de 7 dias", func(t *testing.T) {
		service, integrator := newTestService(t)

		gomock.InOrder(
			integrator.EXPECT().
				GetPricePredictions(gomock.Any(), "1", 7).
				Return(&domain.PriceForecast{StationID: "1", Factors: "이전"}, nil),
			integrator.EXPECT().
				CreatePricePrediction(gomock.Any(), "1", domain.PricePrediction{
					Date:            testNow,
					GasolinePrice:   1575,
					DieselPrice:     1455,
					ConfidenceScore: 100,
					Factors:         "사용자 직접 입력",
				}).
				Return(&domain.PricePrediction{Date: testNow, GasolinePrice: 1575, DieselPrice: 1455, ConfidenceScore: 100}, nil),
			integrator.EXPECT().
				GetPricePredictions(gomock.Any(), "1", 7).
				Return(&domain.PriceForecast{StationID: "1", Factors: "사용자 직접 입력"}, nil),
		)

		assert.Equal(t, "이전", service.GetPricePredictions(context.Background(), "1", 7).Factors)

		created, err := service.RecordCurrentPrices(context.Background(), "1", 1575, 1455)
		require.NoError(t, err)
		assert.Equal(t, 100.0, created.ConfidenceScore)

		assert.Equal(t, "사용자 직접 입력", service.GetPricePredictions(context.Background(), "1", 7).Factors)
	})

	t.Run("Falha do backend é devolvida", func(t *testing.T) {
		service, integrator := newTestService(t)

		integrator.EXPECT().
			CreatePricePrediction(gomock.Any(), "1", gomock.Any()).
			Return(nil, tablesdomain.Malformed("corpo inválido"))

		created, err := service.RecordCurrentPrices(context.Background(), "1", 1575, 1455)
		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("Preço não positivo é rejeitado", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.RecordCurrentPrices(context.Background(), "1", 0, 1455)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}
