package repositories

import (
	"context"
	"time"

	"appraisalhub-properties/internal/models"
)

type PropertyDataRepository interface {
	FindByPropertyID(ctx context.Context, propertyID string) (*models.PropertyDataRecord, error)
	Upsert(ctx context.Context, record *models.PropertyDataRecord) error
	FindWithPagination(ctx context.Context, offset, limit int) ([]models.PropertyDataRecord, int64, error)
	Delete(ctx context.Context, propertyID string) error
}

type PropertyDataCache interface {
	GetPropertyData(ctx context.Context, key string) (*models.PropertyDataResponse, error)
	SetPropertyData(ctx context.Context, key string, resp *models.PropertyDataResponse, expiration time.Duration) error
	GetMarketTrends(ctx context.Context, key string) (*models.MarketTrends, error)
	SetMarketTrends(ctx context.Context, key string, trends *models.MarketTrends, expiration time.Duration) error
	GetComparables(ctx context.Context, key string) ([]models.ComparableProperty, error)
	SetComparables(ctx context.Context, key string, comparables []models.ComparableProperty, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}
