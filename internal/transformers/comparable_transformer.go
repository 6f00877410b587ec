package transformers

import (
	"fmt"
	"sort"
	"time"

	"appraisalhub-properties/internal/models"
	"appraisalhub-properties/internal/scoring"
	"appraisalhub-properties/pkg/metrics"
)

const (
	// MinComparableScore is the floor below which a sale is not worth showing
	// as a comp.
	MinComparableScore = 50
	// DefaultComparableLimit caps the comp list when the caller does not.
	DefaultComparableLimit = 5
)

type comparableTransformer struct{}

func NewComparableTransformer() ComparableTransformer {
	return &comparableTransformer{}
}

// Transform scores every sale record against the subject, keeps those at or
// above MinComparableScore, and returns the top entries ordered by score
// descending (most recent sale first on ties).
func (t *comparableTransformer) Transform(subject models.PropertyAttributes, sales []models.SaleRecord, limit int) []models.ComparableProperty {
	start := time.Now()
	defer func() {
		metrics.TransformDuration.WithLabelValues("comparables").Observe(time.Since(start).Seconds())
	}()

	if limit <= 0 {
		limit = DefaultComparableLimit
	}

	comparables := make([]models.ComparableProperty, 0, len(sales))
	if len(sales) == 0 {
		return comparables
	}

	for _, sale := range sales {
		score := scoring.Score(subject, sale)
		if score < MinComparableScore {
			continue
		}
		comparables = append(comparables, t.toComparable(subject, sale, score))
	}

	sort.SliceStable(comparables, func(i, j int) bool {
		if comparables[i].SimilarityScore != comparables[j].SimilarityScore {
			return comparables[i].SimilarityScore > comparables[j].SimilarityScore
		}
		// ISO dates compare lexically; blank or malformed dates sort last.
		return comparables[i].SaleDate > comparables[j].SaleDate
	})

	if len(comparables) > limit {
		comparables = comparables[:limit]
	}
	return comparables
}

// toComparable builds the comp view for one sale. Bedrooms, bathrooms and
// property type fall back to the subject; land size, floor area and year
// built deliberately do not.
func (t *comparableTransformer) toComparable(subject models.PropertyAttributes, sale models.SaleRecord, score int) models.ComparableProperty {
	comp := models.ComparableProperty{
		Address:         resolveAddress(sale),
		Suburb:          sale.Suburb,
		City:            sale.City,
		PropertyType:    sale.PropertyType,
		Bedrooms:        sale.Bedrooms,
		Bathrooms:       sale.Bathrooms,
		LandSize:        sale.LandSize,
		FloorArea:       sale.FloorArea,
		YearBuilt:       sale.YearBuilt,
		SaleDate:        sale.SaleDate,
		SimilarityScore: score,
	}
	if comp.PropertyType == "" {
		comp.PropertyType = subject.PropertyType
	}
	if comp.Bedrooms == nil {
		comp.Bedrooms = subject.Bedrooms
	}
	if comp.Bathrooms == nil {
		comp.Bathrooms = subject.Bathrooms
	}
	if sale.SalePrice != nil {
		comp.SalePrice = *sale.SalePrice
	}
	return comp
}

// resolveAddress guarantees a non-empty display address for every comp.
func resolveAddress(sale models.SaleRecord) string {
	if sale.Address != "" {
		return sale.Address
	}
	if sale.PropertyID != "" {
		return fmt.Sprintf("Property %s", sale.PropertyID)
	}
	return "Unknown address"
}
