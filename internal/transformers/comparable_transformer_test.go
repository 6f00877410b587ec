package transformers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appraisalhub-properties/internal/models"
)

func testSubject() models.PropertyAttributes {
	return models.PropertyAttributes{
		PropertyType: "house",
		Bedrooms:     models.IntPtr(3),
		Bathrooms:    models.FloatPtr(2),
		LandSize:     models.FloatPtr(500),
		FloorArea:    models.FloatPtr(200),
		YearBuilt:    models.IntPtr(2000),
	}
}

func closeSale(id string, price float64, date string) models.SaleRecord {
	return models.SaleRecord{
		ID:           id,
		PropertyID:   "p-" + id,
		SaleDate:     date,
		SalePrice:    models.FloatPtr(price),
		Address:      id + " Example St",
		Suburb:       "Ponsonby",
		City:         "Auckland",
		PropertyType: "house",
		Bedrooms:     models.IntPtr(3),
		Bathrooms:    models.FloatPtr(2),
		LandSize:     models.FloatPtr(510),
		FloorArea:    models.FloatPtr(198),
		YearBuilt:    models.IntPtr(2001),
	}
}

func TestTransform_EmptySales(t *testing.T) {
	trans := NewComparableTransformer()

	result := trans.Transform(testSubject(), nil, 5)
	require.NotNil(t, result)
	assert.Empty(t, result)

	result = trans.Transform(testSubject(), []models.SaleRecord{}, 5)
	require.NotNil(t, result)
	assert.Empty(t, result)
}

func TestTransform_LimitEnforced(t *testing.T) {
	trans := NewComparableTransformer()

	sales := make([]models.SaleRecord, 12)
	for i := range sales {
		sales[i] = closeSale(fmt.Sprintf("s%d", i), 900000, "2024-01-15")
	}

	result := trans.Transform(testSubject(), sales, 5)
	assert.Len(t, result, 5)

	// Default limit applies when the caller passes zero.
	result = trans.Transform(testSubject(), sales, 0)
	assert.Len(t, result, DefaultComparableLimit)
}

func TestTransform_LowScoresFiltered(t *testing.T) {
	trans := NewComparableTransformer()

	good := closeSale("good", 950000, "2024-02-15")
	bad := models.SaleRecord{
		ID:           "bad",
		SaleDate:     "2024-03-01",
		SalePrice:    models.FloatPtr(200000),
		PropertyType: "land",
		Bedrooms:     models.IntPtr(12),
		Bathrooms:    models.FloatPtr(9),
		LandSize:     models.FloatPtr(9000),
		FloorArea:    models.FloatPtr(10),
		YearBuilt:    models.IntPtr(1900),
	}

	result := trans.Transform(testSubject(), []models.SaleRecord{bad, good}, 10)
	require.Len(t, result, 1)
	assert.Equal(t, "good Example St", result[0].Address)
}

func TestTransform_SortedByScoreDescending(t *testing.T) {
	trans := NewComparableTransformer()

	exact := closeSale("exact", 950000, "2024-02-15")
	exact.LandSize = models.FloatPtr(500)
	exact.FloorArea = models.FloatPtr(200)
	exact.YearBuilt = models.IntPtr(2000)

	offByABit := closeSale("near", 900000, "2024-01-10")
	offByABit.Bedrooms = models.IntPtr(4)
	offByABit.LandSize = models.FloatPtr(650)

	result := trans.Transform(testSubject(), []models.SaleRecord{offByABit, exact}, 10)
	require.Len(t, result, 2)
	assert.Equal(t, "exact Example St", result[0].Address)
	assert.GreaterOrEqual(t, result[0].SimilarityScore, result[1].SimilarityScore)
}

func TestTransform_TieBrokenByRecency(t *testing.T) {
	trans := NewComparableTransformer()

	older := closeSale("older", 900000, "2022-06-01")
	newer := closeSale("newer", 910000, "2024-06-01")

	result := trans.Transform(testSubject(), []models.SaleRecord{older, newer}, 10)
	require.Len(t, result, 2)
	assert.Equal(t, result[0].SimilarityScore, result[1].SimilarityScore)
	assert.Equal(t, "newer Example St", result[0].Address)
}

func TestTransform_SubjectDefaults(t *testing.T) {
	trans := NewComparableTransformer()

	// Sale record with no attribute snapshot at all.
	sale := models.SaleRecord{
		ID:        "s1",
		SaleDate:  "2024-02-15",
		SalePrice: models.FloatPtr(800000),
		Address:   "5 Quiet Ln",
	}

	result := trans.Transform(testSubject(), []models.SaleRecord{sale}, 5)
	require.Len(t, result, 1)

	comp := result[0]
	// Bedrooms, bathrooms and property type default from the subject.
	assert.Equal(t, "house", comp.PropertyType)
	require.NotNil(t, comp.Bedrooms)
	assert.Equal(t, 3, *comp.Bedrooms)
	require.NotNil(t, comp.Bathrooms)
	assert.Equal(t, 2.0, *comp.Bathrooms)
	// Land size, floor area and year built stay absent.
	assert.Nil(t, comp.LandSize)
	assert.Nil(t, comp.FloorArea)
	assert.Nil(t, comp.YearBuilt)
}

func TestTransform_MissingPriceDefaultsToZero(t *testing.T) {
	trans := NewComparableTransformer()

	sale := closeSale("s1", 0, "2024-02-15")
	sale.SalePrice = nil

	result := trans.Transform(testSubject(), []models.SaleRecord{sale}, 5)
	require.Len(t, result, 1)
	assert.Equal(t, 0.0, result[0].SalePrice)
}

func TestTransform_AddressFallbacks(t *testing.T) {
	trans := NewComparableTransformer()

	withID := closeSale("s1", 900000, "2024-02-15")
	withID.Address = ""
	withID.PropertyID = "prop-42"

	anonymous := closeSale("s2", 900000, "2024-02-15")
	anonymous.Address = ""
	anonymous.PropertyID = ""

	result := trans.Transform(testSubject(), []models.SaleRecord{withID, anonymous}, 5)
	require.Len(t, result, 2)
	for _, comp := range result {
		assert.NotEmpty(t, comp.Address)
	}
	addresses := []string{result[0].Address, result[1].Address}
	assert.Contains(t, addresses, "Property prop-42")
	assert.Contains(t, addresses, "Unknown address")
}

func TestTransform_ScoreBounds(t *testing.T) {
	trans := NewComparableTransformer()

	sales := []models.SaleRecord{
		closeSale("s1", 900000, "2024-02-15"),
		closeSale("s2", 1200000, "2023-11-02"),
		{ID: "s3", SaleDate: "2024-01-01", SalePrice: models.FloatPtr(500000)},
	}

	for _, comp := range trans.Transform(testSubject(), sales, 10) {
		assert.GreaterOrEqual(t, comp.SimilarityScore, 0)
		assert.LessOrEqual(t, comp.SimilarityScore, 100)
	}
}
