package transformers

import (
	"fmt"
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"appraisalhub-properties/internal/models"
)

type marketTransformer struct{}

func NewMarketTransformer() MarketTransformer {
	return &marketTransformer{}
}

// TransformMarketStatsResponse shapes the provider's market-statistics
// payload. AnnualGrowth arrives as a percentage and is copied through
// unscaled.
func (t *marketTransformer) TransformMarketStatsResponse(apiResponse map[string]interface{}) (*models.MarketStatistics, error) {
	statsObj, ok := apiResponse["statistics"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("statistics field is missing")
	}
	return &models.MarketStatistics{
		MedianPrice:  getFloat(statsObj, "medianPrice"),
		AnnualGrowth: getFloat(statsObj, "annualGrowth"),
		SalesVolume:  getInt(statsObj, "salesVolume"),
		DaysOnMarket: getFloat(statsObj, "averageDaysOnMarket"),
	}, nil
}

// TransformMarketTrends is a direct field copy into the trimmed trends view.
func (t *marketTransformer) TransformMarketTrends(s *models.MarketStatistics) models.MarketTrends {
	if s == nil {
		return models.MarketTrends{}
	}
	return models.MarketTrends{
		MedianPrice:  s.MedianPrice,
		AnnualGrowth: s.AnnualGrowth,
		SalesVolume:  s.SalesVolume,
		DaysOnMarket: s.DaysOnMarket,
	}
}

// TransformAVMResponse shapes the provider's AVM payload.
func (t *marketTransformer) TransformAVMResponse(apiResponse map[string]interface{}) (*models.AVMResponse, error) {
	avm, ok := apiResponse["valuation"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("valuation field is missing")
	}
	return &models.AVMResponse{
		EstimateLow:  getFloatPtr(avm, "lowEstimate"),
		EstimateHigh: getFloatPtr(avm, "highEstimate"),
		Confidence:   getFloatPtr(avm, "confidence"),
	}, nil
}

// TransformValuation maps an AVM estimate to the valuation triple composed
// by callers; missing bounds default to zero rather than failing.
func (t *marketTransformer) TransformValuation(avm *models.AVMResponse) *models.ValuationEstimate {
	if avm == nil {
		return nil
	}
	est := &models.ValuationEstimate{}
	if avm.EstimateLow != nil {
		est.ValuationLow = *avm.EstimateLow
	}
	if avm.EstimateHigh != nil {
		est.ValuationHigh = *avm.EstimateHigh
	}
	if avm.Confidence != nil {
		est.ValuationConfidence = *avm.Confidence
	}
	return est
}

// ComputeMarketStatistics derives statistics from sales history when the
// provider has none for a location. Growth is estimated from median prices of
// the earliest and latest sale years.
func (t *marketTransformer) ComputeMarketStatistics(sales []models.SaleRecord) *models.MarketStatistics {
	prices := make([]float64, 0, len(sales))
	byYear := make(map[string][]float64)
	for _, sale := range sales {
		if sale.SalePrice == nil || *sale.SalePrice <= 0 {
			continue
		}
		prices = append(prices, *sale.SalePrice)
		if len(sale.SaleDate) >= 4 {
			year := sale.SaleDate[:4]
			byYear[year] = append(byYear[year], *sale.SalePrice)
		}
	}
	if len(prices) == 0 {
		return nil
	}

	median, err := stats.Median(prices)
	if err != nil {
		return nil
	}

	result := &models.MarketStatistics{
		MedianPrice: median,
		SalesVolume: len(prices),
	}

	years := make([]string, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Strings(years)
	if len(years) >= 2 {
		first, errFirst := stats.Median(byYear[years[0]])
		last, errLast := stats.Median(byYear[years[len(years)-1]])
		span := yearSpan(years[0], years[len(years)-1])
		if errFirst == nil && errLast == nil && first > 0 && span > 0 {
			result.AnnualGrowth = (last/first - 1) / float64(span) * 100
		}
	}
	return result
}

func yearSpan(first, last string) int {
	a, errA := time.Parse("2006", first)
	b, errB := time.Parse("2006", last)
	if errA != nil || errB != nil {
		return 0
	}
	return b.Year() - a.Year()
}
