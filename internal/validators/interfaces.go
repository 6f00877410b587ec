package validators

import (
	"appraisalhub-properties/internal/models"
)

// ResponseValidator runs advisory shape checks on assembled responses. The
// returned strings are human-readable violations; an empty slice means valid.
type ResponseValidator interface {
	ValidateResponse(resp *models.PropertyDataResponse) []string
	ValidateBatchRequest(req *models.BatchDataRequest) error
}
