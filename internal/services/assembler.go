package services

import (
	"fmt"

	"appraisalhub-properties/internal/models"
	"appraisalhub-properties/internal/transformers"
	"appraisalhub-properties/pkg/logger"
)

// AssemblerService combines property details, comparables and market trends
// into the response envelope. It is pure and synchronous; it never lets a
// panic or error escape, degrading to {success:false, error} instead.
type AssemblerService struct {
	attrTrans   transformers.AttributeTransformer
	compTrans   transformers.ComparableTransformer
	marketTrans transformers.MarketTransformer
}

func NewAssemblerService(
	attrTrans transformers.AttributeTransformer,
	compTrans transformers.ComparableTransformer,
	marketTrans transformers.MarketTransformer,
) *AssemblerService {
	return &AssemblerService{
		attrTrans:   attrTrans,
		compTrans:   compTrans,
		marketTrans: marketTrans,
	}
}

// AssemblePropertyData builds the unified envelope for one property. A
// success always carries a fully populated data object; any failure along the
// way produces {success:false} with a contextual message.
func (s *AssemblerService) AssemblePropertyData(
	propertyID string,
	attrs *models.PropertyAttributes,
	addr *models.AddressDetails,
	sales []models.SaleRecord,
	stats *models.MarketStatistics,
) (resp *models.PropertyDataResponse) {
	defer func() {
		if r := recover(); r != nil {
			logger.GlobalLogger.Errorf("Assembly panicked: propertyId=%s, panic=%v", propertyID, r)
			resp = FailureResponse("failed to assemble property data", fmt.Errorf("%v", r))
		}
	}()

	if propertyID == "" {
		return FailureResponse("invalid input", fmt.Errorf("property ID is required"))
	}
	if attrs == nil {
		return FailureResponse("invalid input", fmt.Errorf("property attributes are required"))
	}
	if addr == nil || addr.Suburb == "" || addr.City == "" {
		return FailureResponse("invalid input", fmt.Errorf("address details with suburb and city are required"))
	}

	details := s.attrTrans.TransformPropertyDetails(propertyID, attrs, addr)
	comparables := s.compTrans.Transform(*attrs, sales, transformers.DefaultComparableLimit)
	trends := s.marketTrans.TransformMarketTrends(stats)

	return &models.PropertyDataResponse{
		Success: true,
		Data: &models.PropertyData{
			PropertyDetails:      details,
			ComparableProperties: comparables,
			MarketTrends:         trends,
		},
	}
}

// FailureResponse wraps an error into the failure envelope.
func FailureResponse(context string, err error) *models.PropertyDataResponse {
	return &models.PropertyDataResponse{
		Success: false,
		Error:   fmt.Sprintf("%s: %v", context, err),
	}
}
