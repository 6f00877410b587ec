package services

import (
	"context"

	"appraisalhub-properties/internal/models"
)

// DataFetcher supplies the raw inputs of the assembly pipeline. The pipeline
// places no constraint on the transport behind it (provider API, database,
// mock) beyond the returned shapes.
type DataFetcher interface {
	FetchAttributes(ctx context.Context, propertyID string) (*models.PropertyAttributes, *models.AddressDetails, error)
	FetchSalesHistory(ctx context.Context, propertyID string) ([]models.SaleRecord, error)
	FetchAVM(ctx context.Context, propertyID string) (*models.AVMResponse, error)
	FetchMarketStatistics(ctx context.Context, suburb, city string) (*models.MarketStatistics, error)
}
