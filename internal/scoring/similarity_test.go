package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"appraisalhub-properties/internal/models"
)

func subjectHouse() models.PropertyAttributes {
	return models.PropertyAttributes{
		PropertyType: "house",
		Bedrooms:     models.IntPtr(3),
		Bathrooms:    models.FloatPtr(2),
		LandSize:     models.FloatPtr(500),
		FloorArea:    models.FloatPtr(200),
		YearBuilt:    models.IntPtr(2000),
	}
}

func TestScore_NearIdenticalCandidate(t *testing.T) {
	candidate := models.SaleRecord{
		ID:           "s1",
		PropertyType: "house",
		Bedrooms:     models.IntPtr(3),
		Bathrooms:    models.FloatPtr(2),
		LandSize:     models.FloatPtr(520),
		FloorArea:    models.FloatPtr(195),
		YearBuilt:    models.IntPtr(2003),
		SalePrice:    models.FloatPtr(950000),
		SaleDate:     "2024-02-15",
	}

	score := Score(subjectHouse(), candidate)
	assert.GreaterOrEqual(t, score, 85, "near-identical attributes should score high")
	assert.LessOrEqual(t, score, 100)
}

func TestScore_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		candidate models.SaleRecord
	}{
		{"empty candidate", models.SaleRecord{}},
		{"wildly different", models.SaleRecord{
			PropertyType: "land",
			Bedrooms:     models.IntPtr(12),
			Bathrooms:    models.FloatPtr(9),
			LandSize:     models.FloatPtr(12000),
			FloorArea:    models.FloatPtr(15),
			YearBuilt:    models.IntPtr(1890),
		}},
		{"exact match", models.SaleRecord{
			PropertyType: "house",
			Bedrooms:     models.IntPtr(3),
			Bathrooms:    models.FloatPtr(2),
			LandSize:     models.FloatPtr(500),
			FloorArea:    models.FloatPtr(200),
			YearBuilt:    models.IntPtr(2000),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Score(subjectHouse(), tt.candidate)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		})
	}
}

func TestScore_ExactMatchIsPerfect(t *testing.T) {
	candidate := models.SaleRecord{
		PropertyType: "house",
		Bedrooms:     models.IntPtr(3),
		Bathrooms:    models.FloatPtr(2),
		LandSize:     models.FloatPtr(500),
		FloorArea:    models.FloatPtr(200),
		YearBuilt:    models.IntPtr(2000),
	}
	assert.Equal(t, 100, Score(subjectHouse(), candidate))
}

func TestScore_MissingFieldIsNeutral(t *testing.T) {
	// Subject has no year built, so two candidates differing only in year
	// built must score identically.
	subject := subjectHouse()
	subject.YearBuilt = nil

	a := models.SaleRecord{
		PropertyType: "house",
		Bedrooms:     models.IntPtr(3),
		Bathrooms:    models.FloatPtr(2),
		LandSize:     models.FloatPtr(500),
		FloorArea:    models.FloatPtr(200),
		YearBuilt:    models.IntPtr(1950),
	}
	b := a
	b.YearBuilt = models.IntPtr(2020)

	assert.Equal(t, Score(subject, a), Score(subject, b))
}

func TestScore_PropertyTypeMismatch(t *testing.T) {
	match := models.SaleRecord{
		PropertyType: "house",
		Bedrooms:     models.IntPtr(3),
		Bathrooms:    models.FloatPtr(2),
		LandSize:     models.FloatPtr(500),
	}
	mismatch := match
	mismatch.PropertyType = "apartment"

	assert.Equal(t, 20, Score(subjectHouse(), match)-Score(subjectHouse(), mismatch))
}

func TestScore_PropertyTypeCaseInsensitive(t *testing.T) {
	candidate := models.SaleRecord{
		PropertyType: "House",
		Bedrooms:     models.IntPtr(3),
		Bathrooms:    models.FloatPtr(2),
	}
	assert.Equal(t, 100, Score(subjectHouse(), candidate))
}

func TestScore_ConfidencePenalty(t *testing.T) {
	// Only one factor (property type) can be evaluated: 100 - (3-1)*10 = 80.
	candidate := models.SaleRecord{PropertyType: "house"}
	assert.Equal(t, 80, Score(subjectHouse(), candidate))

	// No factors at all: 100 - 3*10 = 70.
	assert.Equal(t, 70, Score(subjectHouse(), models.SaleRecord{}))
}

func TestScore_BedroomDifference(t *testing.T) {
	candidate := models.SaleRecord{
		PropertyType: "house",
		Bedrooms:     models.IntPtr(5),
		Bathrooms:    models.FloatPtr(2),
		LandSize:     models.FloatPtr(500),
		FloorArea:    models.FloatPtr(200),
		YearBuilt:    models.IntPtr(2000),
	}
	// Two bedrooms off costs 10 points.
	assert.Equal(t, 90, Score(subjectHouse(), candidate))
}

func TestScore_AreaTiers(t *testing.T) {
	base := models.SaleRecord{
		PropertyType: "house",
		Bedrooms:     models.IntPtr(3),
		Bathrooms:    models.FloatPtr(2),
		FloorArea:    models.FloatPtr(200),
		YearBuilt:    models.IntPtr(2000),
	}

	tests := []struct {
		land     float64
		expected int
	}{
		{500, 100},  // 0% off
		{520, 100},  // 4%, inside tolerance
		{550, 95},   // 10%
		{600, 90},   // 20%
		{700, 85},   // 40%
		{100, 85},   // 80% below
	}
	for _, tt := range tests {
		candidate := base
		candidate.LandSize = models.FloatPtr(tt.land)
		assert.Equal(t, tt.expected, Score(subjectHouse(), candidate), "land size %v", tt.land)
	}
}

func TestScore_YearGapTiers(t *testing.T) {
	base := models.SaleRecord{
		PropertyType: "house",
		Bedrooms:     models.IntPtr(3),
		Bathrooms:    models.FloatPtr(2),
		LandSize:     models.FloatPtr(500),
		FloorArea:    models.FloatPtr(200),
	}

	tests := []struct {
		year     int
		expected int
	}{
		{2000, 100},
		{1996, 100}, // 4 years
		{1992, 95},  // 8 years
		{1985, 90},  // 15 years
		{1970, 85},  // 30 years
	}
	for _, tt := range tests {
		candidate := base
		candidate.YearBuilt = models.IntPtr(tt.year)
		assert.Equal(t, tt.expected, Score(subjectHouse(), candidate), "year built %d", tt.year)
	}
}
