package services

import (
	"context"
	"net/url"
	"time"

	"appraisalhub-properties/internal/models"
	"appraisalhub-properties/internal/repositories"
	"appraisalhub-properties/internal/transformers"
	"appraisalhub-properties/internal/utils"
	"appraisalhub-properties/pkg/cache"
	"appraisalhub-properties/pkg/logger"
	"appraisalhub-properties/pkg/metrics"
)

// Assembled responses stay cached for a day; sales history moves slowly.
// Trends and comparable lists churn faster and get a shorter window.
const (
	propertyDataTTL = 24 * time.Hour
	marketTrendsTTL = 6 * time.Hour
	comparablesTTL  = 6 * time.Hour
)

// PropertyDataService serves assembled property data through a cache → store
// → provider read-through chain.
type PropertyDataService struct {
	repo        repositories.PropertyDataRepository
	cache       repositories.PropertyDataCache
	fetcher     DataFetcher
	assembler   *AssemblerService
	compTrans   transformers.ComparableTransformer
	marketTrans transformers.MarketTransformer
	addrTrans   transformers.AddressTransformer
}

func NewPropertyDataService(
	repo repositories.PropertyDataRepository,
	dataCache repositories.PropertyDataCache,
	fetcher DataFetcher,
	assembler *AssemblerService,
	compTrans transformers.ComparableTransformer,
	marketTrans transformers.MarketTransformer,
	addrTrans transformers.AddressTransformer,
) *PropertyDataService {
	return &PropertyDataService{
		repo:        repo,
		cache:       dataCache,
		fetcher:     fetcher,
		assembler:   assembler,
		compTrans:   compTrans,
		marketTrans: marketTrans,
		addrTrans:   addrTrans,
	}
}

// GetPropertyData returns the assembled envelope for one property: Redis
// first, then the store, then a fresh provider fetch. Only successful
// assemblies are persisted and cached.
func (s *PropertyDataService) GetPropertyData(ctx context.Context, propertyID string) *models.PropertyDataResponse {
	key := cache.PropertyDataKey(propertyID)
	if resp, err := s.cache.GetPropertyData(ctx, key); err == nil && resp != nil {
		metrics.CacheHitsTotal.Inc()
		return resp
	}
	metrics.CacheMissesTotal.Inc()

	record, err := s.repo.FindByPropertyID(ctx, propertyID)
	if err != nil {
		logger.GlobalLogger.Errorf("Store lookup failed: propertyId=%s, error=%v", propertyID, err)
	}
	if record != nil {
		resp := &models.PropertyDataResponse{Success: true, Data: &record.Data}
		_ = s.cache.SetPropertyData(ctx, key, resp, propertyDataTTL)
		return resp
	}

	resp := s.assembleFresh(ctx, propertyID)
	if resp.Success {
		if err := s.repo.Upsert(ctx, &models.PropertyDataRecord{
			PropertyID: propertyID,
			Data:       *resp.Data,
			UpdatedAt:  time.Now().UTC(),
		}); err != nil {
			logger.GlobalLogger.Errorf("Store upsert failed: propertyId=%s, error=%v", propertyID, err)
		}
		_ = s.cache.SetPropertyData(ctx, key, resp, propertyDataTTL)
	}
	return resp
}

// assembleFresh pulls everything from the provider and assembles it. When
// the provider has no market statistics for the location, statistics are
// derived locally from the sales history.
func (s *PropertyDataService) assembleFresh(ctx context.Context, propertyID string) *models.PropertyDataResponse {
	attrs, addr, err := s.fetcher.FetchAttributes(ctx, propertyID)
	if err != nil {
		return FailureResponse("failed to fetch property attributes", err)
	}

	sales, err := s.fetcher.FetchSalesHistory(ctx, propertyID)
	if err != nil {
		return FailureResponse("failed to fetch sales history", err)
	}

	stats, err := s.fetcher.FetchMarketStatistics(ctx, addr.Suburb, addr.City)
	if err != nil || stats == nil {
		if err != nil {
			logger.GlobalLogger.Errorf("Market statistics fetch failed, deriving locally: propertyId=%s, error=%v", propertyID, err)
		}
		stats = s.marketTrans.ComputeMarketStatistics(sales)
	}

	return s.assembler.AssemblePropertyData(propertyID, attrs, addr, sales, stats)
}

// GetComparables returns the ranked comp list for a property without the
// rest of the envelope. Lists are cached per property and limit.
func (s *PropertyDataService) GetComparables(ctx context.Context, propertyID string, limit int) ([]models.ComparableProperty, error) {
	if limit <= 0 {
		limit = transformers.DefaultComparableLimit
	}
	key := cache.ComparablesKey(propertyID, limit)
	if comparables, err := s.cache.GetComparables(ctx, key); err == nil && comparables != nil {
		metrics.CacheHitsTotal.Inc()
		return comparables, nil
	}
	metrics.CacheMissesTotal.Inc()

	attrs, _, err := s.fetcher.FetchAttributes(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	sales, err := s.fetcher.FetchSalesHistory(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	comparables := s.compTrans.Transform(*attrs, sales, limit)
	_ = s.cache.SetComparables(ctx, key, comparables, comparablesTTL)
	return comparables, nil
}

// GetValuation returns the AVM valuation triple for a property.
func (s *PropertyDataService) GetValuation(ctx context.Context, propertyID string) (*models.ValuationEstimate, error) {
	avm, err := s.fetcher.FetchAVM(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return s.marketTrans.TransformValuation(avm), nil
}

// GetMarketTrends returns the trends view for a location. Location inputs
// arrive as free text, so they are normalized before hitting the provider,
// and the view is cached per suburb|city.
func (s *PropertyDataService) GetMarketTrends(ctx context.Context, suburb, city string) (*models.MarketTrends, error) {
	suburb = s.addrTrans.NormalizeAddressComponent(suburb)
	city = s.addrTrans.NormalizeAddressComponent(city)

	key := cache.MarketStatsKey(suburb, city)
	if trends, err := s.cache.GetMarketTrends(ctx, key); err == nil && trends != nil {
		metrics.CacheHitsTotal.Inc()
		return trends, nil
	}
	metrics.CacheMissesTotal.Inc()

	stats, err := s.fetcher.FetchMarketStatistics(ctx, suburb, city)
	if err != nil {
		return nil, err
	}
	trends := s.marketTrans.TransformMarketTrends(stats)
	_ = s.cache.SetMarketTrends(ctx, key, &trends, marketTrendsTTL)
	return &trends, nil
}

// InvalidatePropertyData drops the stored assembly and its cached envelope
// so the next read rebuilds from the provider.
func (s *PropertyDataService) InvalidatePropertyData(ctx context.Context, propertyID string) error {
	if err := s.repo.Delete(ctx, propertyID); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, cache.PropertyDataKey(propertyID)); err != nil {
		logger.GlobalLogger.Errorf("Cache invalidation failed: propertyId=%s, error=%v", propertyID, err)
	}
	return nil
}

// GetStoredPropertyData lists persisted assemblies for the admin portal.
func (s *PropertyDataService) GetStoredPropertyData(ctx context.Context, offset, limit int) (*models.PaginatedPropertyDataResponse, error) {
	records, total, err := s.repo.FindWithPagination(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	meta := models.PaginationMeta{Total: total, Offset: offset, Limit: limit}
	if int64(offset+limit) < total {
		next := utils.BuildPaginationURL("/api/properties", offset+limit, limit, url.Values{})
		meta.Next = &next
	}
	if offset > 0 {
		prevOffset := offset - limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		prev := utils.BuildPaginationURL("/api/properties", prevOffset, limit, url.Values{})
		meta.Prev = &prev
	}

	return &models.PaginatedPropertyDataResponse{Data: records, Meta: meta}, nil
}
