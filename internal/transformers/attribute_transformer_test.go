package transformers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformAttributesResponse(t *testing.T) {
	trans := NewAttributeTransformer()

	attrs, addr, err := trans.TransformAttributesResponse(map[string]interface{}{
		"property": map[string]interface{}{
			"address": map[string]interface{}{
				"fullAddress": "12 Harbour View Rd",
				"suburb":      "Ponsonby",
				"city":        "Auckland",
			},
			"attributes": map[string]interface{}{
				"propertyType": "House",
				"bedrooms":     3.0,
				"bathrooms":    2.0,
				"landAreaSqm":  500.0,
				"floorAreaSqm": 200.0,
				"yearBuilt":    2000.0,
			},
			"features": []interface{}{"garage", "deck"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "house", attrs.PropertyType)
	require.NotNil(t, attrs.Bedrooms)
	assert.Equal(t, 3, *attrs.Bedrooms)
	require.NotNil(t, attrs.LandSize)
	assert.Equal(t, 500.0, *attrs.LandSize)
	assert.Equal(t, []string{"garage", "deck"}, attrs.Features)

	assert.Equal(t, "12 Harbour View Rd", addr.Address)
	assert.Equal(t, "Ponsonby", addr.Suburb)
	assert.Equal(t, "Auckland", addr.City)
}

func TestTransformAttributesResponse_MissingFieldsStayNil(t *testing.T) {
	trans := NewAttributeTransformer()

	attrs, _, err := trans.TransformAttributesResponse(map[string]interface{}{
		"property": map[string]interface{}{
			"attributes": map[string]interface{}{
				"propertyType": "apartment",
			},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, attrs.Bedrooms)
	assert.Nil(t, attrs.Bathrooms)
	assert.Nil(t, attrs.LandSize)
	assert.Nil(t, attrs.FloorArea)
	assert.Nil(t, attrs.YearBuilt)
}

func TestTransformAttributesResponse_MissingProperty(t *testing.T) {
	trans := NewAttributeTransformer()
	_, _, err := trans.TransformAttributesResponse(map[string]interface{}{})
	assert.Error(t, err)
}

func TestTransformSalesResponse(t *testing.T) {
	trans := NewSalesTransformer()

	sales, err := trans.TransformSalesResponse(map[string]interface{}{
		"sales": []interface{}{
			map[string]interface{}{
				"id":         "sale-1",
				"propertyId": "prop-1",
				"saleDate":   "2024-02-15",
				"salePrice":  950000.0,
				"address":    "14 Harbour View Rd",
				"suburb":     "Ponsonby",
				"city":       "Auckland",
				"bedrooms":   3.0,
			},
			// Noise record: no id, no price.
			map[string]interface{}{"address": "somewhere"},
		},
	})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "sale-1", sales[0].ID)
	require.NotNil(t, sales[0].SalePrice)
	assert.Equal(t, 950000.0, *sales[0].SalePrice)
	require.NotNil(t, sales[0].Bedrooms)
	assert.Equal(t, 3, *sales[0].Bedrooms)
	assert.Nil(t, sales[0].LandSize)
}

func TestTransformSalesResponse_MissingSales(t *testing.T) {
	trans := NewSalesTransformer()
	_, err := trans.TransformSalesResponse(map[string]interface{}{})
	assert.Error(t, err)
}

func TestTransformSalesResponse_LocationBackfill(t *testing.T) {
	trans := NewSalesTransformer()

	records, err := trans.TransformSalesResponse(map[string]interface{}{
		"sales": []interface{}{
			map[string]interface{}{
				"id":        "s1",
				"salePrice": 900000.0,
				"address":   "14 Queen St, Ponsonby, Auckland",
			},
			map[string]interface{}{
				"id":        "s2",
				"salePrice": 750000.0,
				"address":   "3 Beach Rd, Takapuna, Auckland",
				"suburb":    "Takapuna",
				"city":      "Auckland",
			},
			map[string]interface{}{
				"id":        "s3",
				"salePrice": 600000.0,
				"address":   "7 Short St",
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Location missing from the feed is recovered from the address string.
	assert.Equal(t, "PONSONBY", records[0].Suburb)
	assert.Equal(t, "AUCKLAND", records[0].City)

	// Explicit location fields win over the address string.
	assert.Equal(t, "Takapuna", records[1].Suburb)
	assert.Equal(t, "Auckland", records[1].City)

	// An address without location components backfills nothing.
	assert.Empty(t, records[2].Suburb)
	assert.Empty(t, records[2].City)
}

func TestParseAddress(t *testing.T) {
	trans := NewAddressTransformer()

	street, suburb, city := trans.ParseAddress("12 Harbour View Rd, Ponsonby, Auckland")
	assert.Equal(t, "12 HARBOUR VIEW RD", street)
	assert.Equal(t, "PONSONBY", suburb)
	assert.Equal(t, "AUCKLAND", city)

	street, suburb, city = trans.ParseAddress("12 Harbour View Rd")
	assert.Equal(t, "12 HARBOUR VIEW RD", street)
	assert.Empty(t, suburb)
	assert.Empty(t, city)
}
