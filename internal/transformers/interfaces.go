package transformers

import (
	"appraisalhub-properties/internal/models"
)

// AttributeTransformer shapes raw provider payloads into typed records.
type AttributeTransformer interface {
	TransformAttributesResponse(apiResponse map[string]interface{}) (*models.PropertyAttributes, *models.AddressDetails, error)
	TransformPropertyDetails(propertyID string, attrs *models.PropertyAttributes, addr *models.AddressDetails) models.PropertyDetails
}

// SalesTransformer shapes the provider's sales-history payload.
type SalesTransformer interface {
	TransformSalesResponse(apiResponse map[string]interface{}) ([]models.SaleRecord, error)
}

// ComparableTransformer derives ranked comparable properties from sales
// history.
type ComparableTransformer interface {
	Transform(subject models.PropertyAttributes, sales []models.SaleRecord, limit int) []models.ComparableProperty
}

// MarketTransformer shapes market statistics and AVM estimates.
type MarketTransformer interface {
	TransformMarketStatsResponse(apiResponse map[string]interface{}) (*models.MarketStatistics, error)
	TransformMarketTrends(stats *models.MarketStatistics) models.MarketTrends
	TransformAVMResponse(apiResponse map[string]interface{}) (*models.AVMResponse, error)
	TransformValuation(avm *models.AVMResponse) *models.ValuationEstimate
	ComputeMarketStatistics(sales []models.SaleRecord) *models.MarketStatistics
}

type AddressTransformer interface {
	NormalizeAddressComponent(input string) string
	ParseAddress(search string) (street, suburb, city string)
}
