package repositories

import (
	"context"
	"errors"
	"time"

	"appraisalhub-properties/internal/models"
	"appraisalhub-properties/pkg/cache"

	"github.com/go-redis/redis/v8"
)

// propertyDataCache stores assembled envelopes, trends views and comparable
// lists as JSON through the shared cache operations. Misses come back as
// (nil, nil) so callers fall through to the next layer.
type propertyDataCache struct{}

func NewPropertyDataCache() PropertyDataCache {
	return &propertyDataCache{}
}

func isMiss(err error) bool {
	return errors.Is(err, redis.Nil)
}

func (c *propertyDataCache) GetPropertyData(ctx context.Context, key string) (*models.PropertyDataResponse, error) {
	var resp models.PropertyDataResponse
	if err := cache.Get(ctx, key, &resp); err != nil {
		if isMiss(err) {
			return nil, nil
		}
		return nil, err
	}
	return &resp, nil
}

func (c *propertyDataCache) SetPropertyData(ctx context.Context, key string, resp *models.PropertyDataResponse, expiration time.Duration) error {
	return cache.Set(ctx, key, resp, expiration)
}

func (c *propertyDataCache) GetMarketTrends(ctx context.Context, key string) (*models.MarketTrends, error) {
	var trends models.MarketTrends
	if err := cache.Get(ctx, key, &trends); err != nil {
		if isMiss(err) {
			return nil, nil
		}
		return nil, err
	}
	return &trends, nil
}

func (c *propertyDataCache) SetMarketTrends(ctx context.Context, key string, trends *models.MarketTrends, expiration time.Duration) error {
	return cache.Set(ctx, key, trends, expiration)
}

func (c *propertyDataCache) GetComparables(ctx context.Context, key string) ([]models.ComparableProperty, error) {
	var comparables []models.ComparableProperty
	if err := cache.Get(ctx, key, &comparables); err != nil {
		if isMiss(err) {
			return nil, nil
		}
		return nil, err
	}
	return comparables, nil
}

func (c *propertyDataCache) SetComparables(ctx context.Context, key string, comparables []models.ComparableProperty, expiration time.Duration) error {
	return cache.Set(ctx, key, comparables, expiration)
}

func (c *propertyDataCache) Delete(ctx context.Context, key string) error {
	return cache.Delete(ctx, key)
}
