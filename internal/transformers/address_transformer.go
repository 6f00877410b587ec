package transformers

import (
	"strings"
)

type addressTransformer struct{}

func NewAddressTransformer() AddressTransformer {
	return &addressTransformer{}
}

func (t *addressTransformer) NormalizeAddressComponent(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

// ParseAddress splits a free-text search like
// "12 Harbour View Rd, Ponsonby, Auckland" into street, suburb and city.
// Missing trailing components come back empty.
func (t *addressTransformer) ParseAddress(search string) (street, suburb, city string) {
	search = t.NormalizeAddressComponent(search)
	if search == "" {
		return "", "", ""
	}

	parts := strings.Split(search, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	street = parts[0]
	if len(parts) > 1 {
		suburb = parts[1]
	}
	if len(parts) > 2 {
		city = parts[2]
	}
	return street, suburb, city
}
