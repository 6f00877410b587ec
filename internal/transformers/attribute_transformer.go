package transformers

import (
	"fmt"
	"strings"

	"appraisalhub-properties/internal/models"
)

type attributeTransformer struct{}

func NewAttributeTransformer() AttributeTransformer {
	return &attributeTransformer{}
}

// TransformAttributesResponse shapes the provider's property-detail payload
// into typed attributes plus the matched address. Provider fields that are
// not modeled are dropped here.
func (t *attributeTransformer) TransformAttributesResponse(apiResponse map[string]interface{}) (*models.PropertyAttributes, *models.AddressDetails, error) {
	property, ok := apiResponse["property"].(map[string]interface{})
	if !ok {
		return nil, nil, fmt.Errorf("property field is missing")
	}

	attrs := &models.PropertyAttributes{
		PropertyType: strings.ToLower(getString(property, "attributes.propertyType")),
		Bedrooms:     getIntPtr(property, "attributes.bedrooms"),
		Bathrooms:    getFloatPtr(property, "attributes.bathrooms"),
		LandSize:     getFloatPtr(property, "attributes.landAreaSqm"),
		FloorArea:    getFloatPtr(property, "attributes.floorAreaSqm"),
		YearBuilt:    getIntPtr(property, "attributes.yearBuilt"),
	}
	if features, ok := property["features"].([]interface{}); ok {
		for _, f := range features {
			if name, ok := f.(string); ok && name != "" {
				attrs.Features = append(attrs.Features, name)
			}
		}
	}

	addr := &models.AddressDetails{
		Address: getString(property, "address.fullAddress"),
		Suburb:  getString(property, "address.suburb"),
		City:    getString(property, "address.city"),
	}

	return attrs, addr, nil
}

// TransformPropertyDetails merges attributes with the matched address into
// the details view.
func (t *attributeTransformer) TransformPropertyDetails(propertyID string, attrs *models.PropertyAttributes, addr *models.AddressDetails) models.PropertyDetails {
	return models.PropertyDetails{
		PropertyID:   propertyID,
		Address:      addr.Address,
		Suburb:       addr.Suburb,
		City:         addr.City,
		PropertyType: attrs.PropertyType,
		Bedrooms:     attrs.Bedrooms,
		Bathrooms:    attrs.Bathrooms,
		LandSize:     attrs.LandSize,
		FloorArea:    attrs.FloorArea,
		YearBuilt:    attrs.YearBuilt,
		Features:     attrs.Features,
	}
}

// Dotted-path accessors for the provider's nested payloads.

func getString(m map[string]interface{}, key string) string {
	keys := strings.Split(key, ".")
	current := m
	for _, k := range keys[:len(keys)-1] {
		if next, ok := current[k].(map[string]interface{}); ok {
			current = next
		} else {
			return ""
		}
	}
	if val, ok := current[keys[len(keys)-1]]; ok && val != nil {
		if s, ok := val.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", val)
	}
	return ""
}

func getIntPtr(m map[string]interface{}, key string) *int {
	if f := getFloatPtr(m, key); f != nil {
		v := int(*f)
		return &v
	}
	return nil
}

func getFloatPtr(m map[string]interface{}, key string) *float64 {
	keys := strings.Split(key, ".")
	current := m
	for _, k := range keys[:len(keys)-1] {
		if next, ok := current[k].(map[string]interface{}); ok {
			current = next
		} else {
			return nil
		}
	}
	val, ok := current[keys[len(keys)-1]]
	if !ok || val == nil {
		return nil
	}
	switch v := val.(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	}
	return nil
}

func getFloat(m map[string]interface{}, key string) float64 {
	if f := getFloatPtr(m, key); f != nil {
		return *f
	}
	return 0
}

func getInt(m map[string]interface{}, key string) int {
	if f := getFloatPtr(m, key); f != nil {
		return int(*f)
	}
	return 0
}
