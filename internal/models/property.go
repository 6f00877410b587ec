package models

// Property types recognized by the provider. Anything else is normalized to
// "other" at the validation boundary.
var ValidPropertyTypes = []string{"house", "apartment", "townhouse", "unit", "villa", "land", "other"}

// PropertyAttributes holds the physical characteristics of a subject or
// comparison property. Numeric fields are pointers: absence means unknown,
// never zero.
type PropertyAttributes struct {
	PropertyType string   `json:"propertyType,omitempty" bson:"propertyType,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Bathrooms    *float64 `json:"bathrooms,omitempty" bson:"bathrooms,omitempty"`
	LandSize     *float64 `json:"landSize,omitempty" bson:"landSize,omitempty"`
	FloorArea    *float64 `json:"floorArea,omitempty" bson:"floorArea,omitempty"`
	YearBuilt    *int     `json:"yearBuilt,omitempty" bson:"yearBuilt,omitempty"`
	Features     []string `json:"features,omitempty" bson:"features,omitempty"`
}

// AddressDetails is the matched address of a subject property as returned by
// the provider's address-match endpoint.
type AddressDetails struct {
	Address string `json:"address" bson:"address"`
	Suburb  string `json:"suburb" bson:"suburb"`
	City    string `json:"city" bson:"city"`
}

// SaleRecord is one historical transaction. The provider sometimes embeds a
// snapshot of the property's attributes in the sale record itself.
type SaleRecord struct {
	ID           string   `json:"id" bson:"id"`
	PropertyID   string   `json:"propertyId" bson:"propertyId"`
	SaleDate     string   `json:"saleDate" bson:"saleDate"` // YYYY-MM-DD
	SalePrice    *float64 `json:"salePrice,omitempty" bson:"salePrice,omitempty"`
	Address      string   `json:"address,omitempty" bson:"address,omitempty"`
	Suburb       string   `json:"suburb,omitempty" bson:"suburb,omitempty"`
	City         string   `json:"city,omitempty" bson:"city,omitempty"`
	PropertyType string   `json:"propertyType,omitempty" bson:"propertyType,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Bathrooms    *float64 `json:"bathrooms,omitempty" bson:"bathrooms,omitempty"`
	LandSize     *float64 `json:"landSize,omitempty" bson:"landSize,omitempty"`
	FloorArea    *float64 `json:"floorArea,omitempty" bson:"floorArea,omitempty"`
	YearBuilt    *int     `json:"yearBuilt,omitempty" bson:"yearBuilt,omitempty"`
}

// ComparableProperty is the derived, read-only comp view handed to portals.
// Bedrooms, bathrooms and property type default from the subject when the
// sale record omits them; land size, floor area and year built do not.
type ComparableProperty struct {
	Address         string   `json:"address" bson:"address"`
	Suburb          string   `json:"suburb,omitempty" bson:"suburb,omitempty"`
	City            string   `json:"city,omitempty" bson:"city,omitempty"`
	PropertyType    string   `json:"propertyType,omitempty" bson:"propertyType,omitempty"`
	Bedrooms        *int     `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Bathrooms       *float64 `json:"bathrooms,omitempty" bson:"bathrooms,omitempty"`
	LandSize        *float64 `json:"landSize,omitempty" bson:"landSize,omitempty"`
	FloorArea       *float64 `json:"floorArea,omitempty" bson:"floorArea,omitempty"`
	YearBuilt       *int     `json:"yearBuilt,omitempty" bson:"yearBuilt,omitempty"`
	SaleDate        string   `json:"saleDate,omitempty" bson:"saleDate,omitempty"`
	SalePrice       float64  `json:"salePrice" bson:"salePrice"`
	SimilarityScore int      `json:"similarityScore" bson:"similarityScore"`
	ImageURL        string   `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}

// MarketStatistics are per-suburb aggregates from the provider. AnnualGrowth
// is a percentage (5.2 means 5.2%), never a fraction.
type MarketStatistics struct {
	MedianPrice  float64 `json:"medianPrice" bson:"medianPrice"`
	AnnualGrowth float64 `json:"annualGrowth" bson:"annualGrowth"`
	SalesVolume  int     `json:"salesVolume" bson:"salesVolume"`
	DaysOnMarket float64 `json:"daysOnMarket" bson:"daysOnMarket"`
}

// MarketTrends is the trimmed trends view exposed in responses.
type MarketTrends struct {
	MedianPrice  float64 `json:"medianPrice" bson:"medianPrice"`
	AnnualGrowth float64 `json:"annualGrowth" bson:"annualGrowth"`
	SalesVolume  int     `json:"salesVolume" bson:"salesVolume"`
	DaysOnMarket float64 `json:"daysOnMarket" bson:"daysOnMarket"`
}

// AVMResponse is the provider's automated valuation model estimate.
type AVMResponse struct {
	EstimateLow  *float64 `json:"estimateLow,omitempty" bson:"estimateLow,omitempty"`
	EstimateHigh *float64 `json:"estimateHigh,omitempty" bson:"estimateHigh,omitempty"`
	Confidence   *float64 `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

// ValuationEstimate is the valuation triple composed into portal views by
// callers; the assembler does not merge it into the main envelope.
type ValuationEstimate struct {
	ValuationLow        float64 `json:"valuationLow" bson:"valuationLow"`
	ValuationHigh       float64 `json:"valuationHigh" bson:"valuationHigh"`
	ValuationConfidence float64 `json:"valuationConfidence" bson:"valuationConfidence"`
}

// PropertyDetails combines attributes with the matched address.
type PropertyDetails struct {
	PropertyID   string   `json:"propertyId" bson:"propertyId"`
	Address      string   `json:"address" bson:"address"`
	Suburb       string   `json:"suburb" bson:"suburb"`
	City         string   `json:"city" bson:"city"`
	PropertyType string   `json:"propertyType,omitempty" bson:"propertyType,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Bathrooms    *float64 `json:"bathrooms,omitempty" bson:"bathrooms,omitempty"`
	LandSize     *float64 `json:"landSize,omitempty" bson:"landSize,omitempty"`
	FloorArea    *float64 `json:"floorArea,omitempty" bson:"floorArea,omitempty"`
	YearBuilt    *int     `json:"yearBuilt,omitempty" bson:"yearBuilt,omitempty"`
	Features     []string `json:"features,omitempty" bson:"features,omitempty"`
}

type PaginationMeta struct {
	Total  int64   `json:"total"`
	Offset int     `json:"offset"`
	Limit  int     `json:"limit"`
	Next   *string `json:"next,omitempty"`
	Prev   *string `json:"prev,omitempty"`
}
