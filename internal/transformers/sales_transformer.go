package transformers

import (
	"fmt"
	"strings"

	"appraisalhub-properties/internal/models"
)

type salesTransformer struct {
	addr AddressTransformer
}

func NewSalesTransformer() SalesTransformer {
	return &salesTransformer{addr: NewAddressTransformer()}
}

// TransformSalesResponse shapes the provider's sales-history payload into
// sale records. Records missing both identifier and price are noise and are
// dropped.
func (t *salesTransformer) TransformSalesResponse(apiResponse map[string]interface{}) ([]models.SaleRecord, error) {
	items, ok := apiResponse["sales"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("sales field is missing")
	}

	records := make([]models.SaleRecord, 0, len(items))
	for _, item := range items {
		sale, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		record := models.SaleRecord{
			ID:           getString(sale, "id"),
			PropertyID:   getString(sale, "propertyId"),
			SaleDate:     getString(sale, "saleDate"),
			SalePrice:    getFloatPtr(sale, "salePrice"),
			Address:      getString(sale, "address"),
			Suburb:       getString(sale, "suburb"),
			City:         getString(sale, "city"),
			PropertyType: strings.ToLower(getString(sale, "propertyType")),
			Bedrooms:     getIntPtr(sale, "bedrooms"),
			Bathrooms:    getFloatPtr(sale, "bathrooms"),
			LandSize:     getFloatPtr(sale, "landAreaSqm"),
			FloorArea:    getFloatPtr(sale, "floorAreaSqm"),
			YearBuilt:    getIntPtr(sale, "yearBuilt"),
		}
		if record.ID == "" && record.SalePrice == nil {
			continue
		}
		// Some feeds carry the location only inside the address string.
		if record.Suburb == "" && record.City == "" && record.Address != "" {
			_, suburb, city := t.addr.ParseAddress(record.Address)
			record.Suburb = suburb
			record.City = city
		}
		records = append(records, record)
	}
	return records, nil
}
