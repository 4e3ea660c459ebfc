package migration

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gas-station-dashboard/internal/usecases/dashboarding"
)

var seedNow = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

func buildTestDataset(t *testing.T) *Dataset {
	t.Helper()

	fallback := dashboarding.NewFallback(rand.NewSource(42), func() time.Time { return seedNow })

	var seq int
	ds, err := BuildDataset("1", fallback, seedNow, func() (string, error) {
		seq++
		return "id" + strings.Repeat("x", seq%3), nil
	})
	require.NoError(t, err)

	return ds
}

func TestBuildDataset(t *testing.T) {
	ds := buildTestDataset(t)

	assert.Equal(t, "1", ds.Station.ID)
	assert.Equal(t, "KH에너지 가평주유소", ds.Station.StationName)
	assert.Len(t, ds.Predictions, seedPredictionDays)
	assert.Len(t, ds.Competitors, 4)
	assert.Len(t, ds.Market, seedMarketDays)
	assert.Len(t, ds.Sales, seedSalesDays*24*2)

	first := ds.Sales[0]
	last := ds.Sales[len(ds.Sales)-1]
	assert.True(t, first.SaleDate.Equal(time.Date(2023, 12, 12, 0, 0, 0, 0, time.UTC)))
	assert.True(t, last.SaleDate.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 23, last.SaleHour)
	assert.Equal(t, fuelLabelDiesel, last.FuelType)

	for _, row := range ds.Sales {
		assert.GreaterOrEqual(t, row.SaleHour, 0)
		assert.Less(t, row.SaleHour, 24)
		assert.Greater(t, row.QuantitySold, 0.0)
		assert.Greater(t, row.GrossProfit, 0.0)
	}

	for _, p := range ds.Predictions {
		require.NotNil(t, p.ConfidenceScore)
		assert.Equal(t, "1", p.StationID)
	}
}

func TestBuildDataset_DailyProfitInDashboardRange(t *testing.T) {
	ds := buildTestDataset(t)

	daily := map[time.Time]float64{}
	for _, row := range ds.Sales {
		daily[row.SaleDate.Time] += row.GrossProfit
	}

	require.Len(t, daily, seedSalesDays)
	for _, profit := range daily {
		assert.Greater(t, profit, 200000.0)
		assert.Less(t, profit, 500000.0)
	}
}

func TestSeedInserts(t *testing.T) {
	ds := buildTestDataset(t)

	builders := seedInserts(ds)
	// posto, previsões, concorrentes, mercado e vendas em lotes
	require.Len(t, builders, 4+(len(ds.Sales)+salesBatchSize-1)/salesBatchSize)

	query, args, err := builders[0].ToSql()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "INSERT INTO gas_stations (id,station_name"))
	assert.Contains(t, query, "$13")
	assert.Len(t, args, 13)

	query, _, err = builders[3].ToSql()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "INSERT INTO market_data"))
	assert.True(t, strings.HasSuffix(query, "ON CONFLICT (data_date) DO NOTHING"))

	query, args, err = builders[4].ToSql()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(query, "INSERT INTO sales_data"))
	assert.Len(t, args, salesBatchSize*7)
}
