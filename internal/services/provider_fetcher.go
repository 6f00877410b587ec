package services

import (
	"context"

	"appraisalhub-properties/internal/models"
	"appraisalhub-properties/internal/transformers"
	"appraisalhub-properties/internal/utils"
	"appraisalhub-properties/pkg/propertydata"
)

// ProviderFetcher adapts the property-data provider client to the
// DataFetcher contract, shaping raw payloads through the transformers.
type ProviderFetcher struct {
	client      *propertydata.Client
	attrTrans   transformers.AttributeTransformer
	salesTrans  transformers.SalesTransformer
	marketTrans transformers.MarketTransformer
}

func NewProviderFetcher(
	client *propertydata.Client,
	attrTrans transformers.AttributeTransformer,
	salesTrans transformers.SalesTransformer,
	marketTrans transformers.MarketTransformer,
) *ProviderFetcher {
	return &ProviderFetcher{
		client:      client,
		attrTrans:   attrTrans,
		salesTrans:  salesTrans,
		marketTrans: marketTrans,
	}
}

func (f *ProviderFetcher) FetchAttributes(ctx context.Context, propertyID string) (*models.PropertyAttributes, *models.AddressDetails, error) {
	raw, err := f.client.GetPropertyDetail(ctx, propertyID)
	if err != nil {
		return nil, nil, utils.WrapError(err, "failed to fetch attributes for %s", propertyID)
	}
	return f.attrTrans.TransformAttributesResponse(raw)
}

func (f *ProviderFetcher) FetchSalesHistory(ctx context.Context, propertyID string) ([]models.SaleRecord, error) {
	raw, err := f.client.GetSalesHistory(ctx, propertyID)
	if err != nil {
		return nil, utils.WrapError(err, "failed to fetch sales history for %s", propertyID)
	}
	return f.salesTrans.TransformSalesResponse(raw)
}

func (f *ProviderFetcher) FetchAVM(ctx context.Context, propertyID string) (*models.AVMResponse, error) {
	raw, err := f.client.GetAVMEstimate(ctx, propertyID)
	if err != nil {
		return nil, utils.WrapError(err, "failed to fetch AVM estimate for %s", propertyID)
	}
	return f.marketTrans.TransformAVMResponse(raw)
}

func (f *ProviderFetcher) FetchMarketStatistics(ctx context.Context, suburb, city string) (*models.MarketStatistics, error) {
	raw, err := f.client.GetMarketStatistics(ctx, suburb, city)
	if err != nil {
		return nil, utils.WrapError(err, "failed to fetch market statistics for %s, %s", suburb, city)
	}
	return f.marketTrans.TransformMarketStatsResponse(raw)
}
