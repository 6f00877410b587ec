package validators

import (
	"fmt"
	"strings"
	"time"

	"appraisalhub-properties/internal/models"
)

type responseValidator struct{}

func NewResponseValidator() ResponseValidator {
	return &responseValidator{}
}

// ValidateResponse checks an assembled response against the envelope
// contract. These checks are advisory; the pipeline itself never gates on
// them.
func (v *responseValidator) ValidateResponse(resp *models.PropertyDataResponse) []string {
	violations := []string{}
	if resp == nil {
		return append(violations, "response is nil")
	}

	if !resp.Success {
		if resp.Error == "" {
			violations = append(violations, "failed response has an empty error message")
		}
		if resp.Data != nil {
			violations = append(violations, "failed response carries a data payload")
		}
		return violations
	}

	if resp.Error != "" {
		violations = append(violations, "successful response carries an error message")
	}
	if resp.Data == nil {
		return append(violations, "successful response has no data payload")
	}

	violations = append(violations, v.validateDetails(&resp.Data.PropertyDetails)...)
	for i, comp := range resp.Data.ComparableProperties {
		violations = append(violations, v.validateComparable(i, &comp)...)
	}
	return violations
}

func (v *responseValidator) validateDetails(details *models.PropertyDetails) []string {
	var violations []string
	if details.PropertyID == "" {
		violations = append(violations, "propertyDetails.propertyId is empty")
	}
	if details.Address == "" {
		violations = append(violations, "propertyDetails.address is empty")
	}
	if details.Suburb == "" {
		violations = append(violations, "propertyDetails.suburb is empty")
	}
	if details.City == "" {
		violations = append(violations, "propertyDetails.city is empty")
	}
	if details.PropertyType != "" && !isValidPropertyType(details.PropertyType) {
		violations = append(violations, fmt.Sprintf("propertyDetails.propertyType %q is not a recognized type", details.PropertyType))
	}
	return violations
}

func (v *responseValidator) validateComparable(index int, comp *models.ComparableProperty) []string {
	var violations []string
	prefix := fmt.Sprintf("comparableProperties[%d]", index)

	if comp.Address == "" {
		violations = append(violations, prefix+".address is empty")
	}
	if comp.SimilarityScore < 0 || comp.SimilarityScore > 100 {
		violations = append(violations, fmt.Sprintf("%s.similarityScore %d is outside [0,100]", prefix, comp.SimilarityScore))
	}
	if comp.SalePrice < 0 {
		violations = append(violations, fmt.Sprintf("%s.salePrice %v is negative", prefix, comp.SalePrice))
	}
	if comp.SaleDate != "" {
		if _, err := time.Parse("2006-01-02", comp.SaleDate); err != nil {
			violations = append(violations, fmt.Sprintf("%s.saleDate %q is not YYYY-MM-DD", prefix, comp.SaleDate))
		}
	}
	if comp.PropertyType != "" && !isValidPropertyType(comp.PropertyType) {
		violations = append(violations, fmt.Sprintf("%s.propertyType %q is not a recognized type", prefix, comp.PropertyType))
	}
	if comp.Bedrooms != nil && *comp.Bedrooms < 0 {
		violations = append(violations, prefix+".bedrooms is negative")
	}
	if comp.Bathrooms != nil && *comp.Bathrooms < 0 {
		violations = append(violations, prefix+".bathrooms is negative")
	}
	if comp.LandSize != nil && *comp.LandSize < 0 {
		violations = append(violations, prefix+".landSize is negative")
	}
	if comp.FloorArea != nil && *comp.FloorArea < 0 {
		violations = append(violations, prefix+".floorArea is negative")
	}
	return violations
}

func (v *responseValidator) ValidateBatchRequest(req *models.BatchDataRequest) error {
	if req == nil || len(req.PropertyIDs) == 0 {
		return fmt.Errorf("at least one property ID is required")
	}
	for _, id := range req.PropertyIDs {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("property IDs must be non-empty")
		}
	}
	return nil
}

func isValidPropertyType(propertyType string) bool {
	for _, t := range models.ValidPropertyTypes {
		if strings.EqualFold(propertyType, t) {
			return true
		}
	}
	return false
}
