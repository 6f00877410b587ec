package scoring

import (
	"math"
	"strings"
	"time"

	"appraisalhub-properties/internal/models"
	"appraisalhub-properties/pkg/metrics"
)

// Penalty schedule for the flat-deduction similarity model. A factor is only
// evaluated when both sides carry a value; a missing side skips the factor
// rather than counting as a mismatch.
const (
	propertyTypeMismatchPenalty = 20
	perBedroomPenalty           = 5
	perBathroomPenalty          = 5

	minFactorsForConfidence = 3
	lowConfidencePenalty    = 10
)

// Score compares a subject property's attributes against one sale record and
// returns a similarity score in [0, 100].
func Score(subject models.PropertyAttributes, candidate models.SaleRecord) int {
	start := time.Now()
	defer func() {
		metrics.ScoringDuration.Observe(time.Since(start).Seconds())
	}()

	score := 100.0
	factors := 0

	if subject.PropertyType != "" && candidate.PropertyType != "" {
		factors++
		if !strings.EqualFold(subject.PropertyType, candidate.PropertyType) {
			score -= propertyTypeMismatchPenalty
		}
	}

	if subject.Bedrooms != nil && candidate.Bedrooms != nil {
		factors++
		diff := math.Abs(float64(*subject.Bedrooms - *candidate.Bedrooms))
		score -= diff * perBedroomPenalty
	}

	if subject.Bathrooms != nil && candidate.Bathrooms != nil {
		factors++
		diff := math.Abs(*subject.Bathrooms - *candidate.Bathrooms)
		score -= diff * perBathroomPenalty
	}

	if subject.LandSize != nil && candidate.LandSize != nil && *subject.LandSize > 0 {
		factors++
		score -= areaPenalty(*subject.LandSize, *candidate.LandSize)
	}

	if subject.FloorArea != nil && candidate.FloorArea != nil && *subject.FloorArea > 0 {
		factors++
		score -= areaPenalty(*subject.FloorArea, *candidate.FloorArea)
	}

	if subject.YearBuilt != nil && candidate.YearBuilt != nil {
		factors++
		score -= yearGapPenalty(*subject.YearBuilt, *candidate.YearBuilt)
	}

	// Too few comparable factors means the score is mostly guesswork.
	if factors < minFactorsForConfidence {
		score -= float64(minFactorsForConfidence-factors) * lowConfidencePenalty
	}

	return clamp(score)
}

// areaPenalty deducts by percent-difference tier relative to the subject.
func areaPenalty(subject, candidate float64) float64 {
	pctDiff := math.Abs(candidate-subject) / subject * 100
	switch {
	case pctDiff > 30:
		return 15
	case pctDiff > 15:
		return 10
	case pctDiff > 5:
		return 5
	default:
		return 0
	}
}

func yearGapPenalty(subject, candidate int) float64 {
	gap := subject - candidate
	if gap < 0 {
		gap = -gap
	}
	switch {
	case gap > 20:
		return 15
	case gap > 10:
		return 10
	case gap > 5:
		return 5
	default:
		return 0
	}
}

func clamp(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(math.Round(score))
}
