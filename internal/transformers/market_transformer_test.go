package transformers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appraisalhub-properties/internal/models"
)

func TestTransformMarketTrends_DirectCopy(t *testing.T) {
	trans := NewMarketTransformer()

	stats := &models.MarketStatistics{
		MedianPrice:  1100000,
		AnnualGrowth: 5.2,
		SalesVolume:  120,
		DaysOnMarket: 30,
	}

	trends := trans.TransformMarketTrends(stats)
	assert.Equal(t, 1100000.0, trends.MedianPrice)
	// Growth is already a percentage; no rescaling.
	assert.Equal(t, 5.2, trends.AnnualGrowth)
	assert.Equal(t, 120, trends.SalesVolume)
	assert.Equal(t, 30.0, trends.DaysOnMarket)
}

func TestTransformMarketTrends_NilStats(t *testing.T) {
	trans := NewMarketTransformer()
	assert.Equal(t, models.MarketTrends{}, trans.TransformMarketTrends(nil))
}

func TestTransformMarketStatsResponse(t *testing.T) {
	trans := NewMarketTransformer()

	resp, err := trans.TransformMarketStatsResponse(map[string]interface{}{
		"statistics": map[string]interface{}{
			"medianPrice":         1100000.0,
			"annualGrowth":        5.2,
			"salesVolume":         120.0,
			"averageDaysOnMarket": 30.0,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1100000.0, resp.MedianPrice)
	assert.Equal(t, 5.2, resp.AnnualGrowth)
	assert.Equal(t, 120, resp.SalesVolume)
	assert.Equal(t, 30.0, resp.DaysOnMarket)

	_, err = trans.TransformMarketStatsResponse(map[string]interface{}{})
	assert.Error(t, err)
}

func TestTransformValuation(t *testing.T) {
	trans := NewMarketTransformer()

	est := trans.TransformValuation(&models.AVMResponse{
		EstimateLow:  models.FloatPtr(900000),
		EstimateHigh: models.FloatPtr(1050000),
		Confidence:   models.FloatPtr(0.82),
	})
	require.NotNil(t, est)
	assert.Equal(t, 900000.0, est.ValuationLow)
	assert.Equal(t, 1050000.0, est.ValuationHigh)
	assert.Equal(t, 0.82, est.ValuationConfidence)

	assert.Nil(t, trans.TransformValuation(nil))

	// Missing bounds default to zero.
	est = trans.TransformValuation(&models.AVMResponse{})
	require.NotNil(t, est)
	assert.Zero(t, est.ValuationLow)
	assert.Zero(t, est.ValuationHigh)
}

func TestComputeMarketStatistics(t *testing.T) {
	trans := NewMarketTransformer()

	sales := []models.SaleRecord{
		{ID: "a", SaleDate: "2022-03-01", SalePrice: models.FloatPtr(800000)},
		{ID: "b", SaleDate: "2022-09-14", SalePrice: models.FloatPtr(820000)},
		{ID: "c", SaleDate: "2024-01-20", SalePrice: models.FloatPtr(900000)},
		{ID: "d", SaleDate: "2024-06-02", SalePrice: models.FloatPtr(940000)},
		{ID: "no-price", SaleDate: "2024-07-01"},
	}

	result := trans.ComputeMarketStatistics(sales)
	require.NotNil(t, result)
	assert.Equal(t, 4, result.SalesVolume)
	assert.Equal(t, 860000.0, result.MedianPrice)
	// Median 810k in 2022 to 920k in 2024 over two years.
	assert.InDelta(t, 6.79, result.AnnualGrowth, 0.01)
}

func TestComputeMarketStatistics_NoUsableSales(t *testing.T) {
	trans := NewMarketTransformer()
	assert.Nil(t, trans.ComputeMarketStatistics(nil))
	assert.Nil(t, trans.ComputeMarketStatistics([]models.SaleRecord{{ID: "x"}}))
}
