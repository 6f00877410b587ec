package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"appraisalhub-properties/internal/models"
	"appraisalhub-properties/internal/utils"
	"appraisalhub-properties/pkg/logger"
	"appraisalhub-properties/pkg/metrics"
)

// BatchService assembles responses for many properties concurrently. Market
// statistics are memoized per suburb|city for the duration of one batch call;
// the memo is owned by the call and discarded with it.
type BatchService struct {
	fetcher   DataFetcher
	assembler *AssemblerService
}

func NewBatchService(fetcher DataFetcher, assembler *AssemblerService) *BatchService {
	return &BatchService{
		fetcher:   fetcher,
		assembler: assembler,
	}
}

// GetBatchPropertyData fans out one goroutine per property ID. A failure in
// one property's pipeline never aborts or delays its siblings, and every
// input ID is present as a key in the result.
func (s *BatchService) GetBatchPropertyData(ctx context.Context, propertyIDs []string) map[string]*models.PropertyDataResponse {
	batchID := uuid.NewString()
	start := time.Now()
	logger.GlobalLogger.Printf("Batch assembly started: batchId=%s, properties=%d", batchID, len(propertyIDs))
	metrics.BatchSize.Observe(float64(len(propertyIDs)))

	statsCache := newMarketStatsCache()
	results := make(map[string]*models.PropertyDataResponse, len(propertyIDs))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, propertyID := range propertyIDs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			resp := s.assembleOne(ctx, id, statsCache)
			mu.Lock()
			results[id] = resp
			mu.Unlock()
		}(propertyID)
	}
	wg.Wait()

	logger.GlobalLogger.Printf("Batch assembly finished: batchId=%s, duration=%v", batchID, time.Since(start))
	return results
}

// assembleOne runs the full pipeline for a single property. Every failure
// mode, including a panicking fetcher, collapses into that property's own
// failure envelope.
func (s *BatchService) assembleOne(ctx context.Context, propertyID string, statsCache *marketStatsCache) (resp *models.PropertyDataResponse) {
	defer func() {
		if r := recover(); r != nil {
			logger.GlobalLogger.Errorf("Batch item panicked: propertyId=%s, panic=%v", propertyID, r)
			resp = FailureResponse("failed to assemble property data", fmt.Errorf("%v", r))
		}
	}()

	attrs, addr, err := s.fetcher.FetchAttributes(ctx, propertyID)
	if err != nil && utils.IsRetryableError(err) {
		attrs, addr, err = s.fetcher.FetchAttributes(ctx, propertyID)
	}
	if err != nil {
		return FailureResponse("failed to fetch property attributes", err)
	}

	// Sales history and AVM are fetched concurrently. The AVM estimate is
	// composed into portal views elsewhere, so its failure is not fatal here.
	var sales []models.SaleRecord
	var salesErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		sales, salesErr = s.fetcher.FetchSalesHistory(ctx, propertyID)
	}()
	if _, avmErr := s.fetcher.FetchAVM(ctx, propertyID); avmErr != nil {
		logger.GlobalLogger.Debugf("AVM fetch failed: propertyId=%s, error=%v", propertyID, avmErr)
	}
	<-done
	if salesErr != nil {
		return FailureResponse("failed to fetch sales history", salesErr)
	}

	stats, err := statsCache.get(locationKey(sales), func() (*models.MarketStatistics, error) {
		suburb, city := location(sales)
		return s.fetcher.FetchMarketStatistics(ctx, suburb, city)
	})
	if err != nil {
		return FailureResponse("failed to fetch market statistics", err)
	}

	return s.assembler.AssemblePropertyData(propertyID, attrs, addr, sales, stats)
}

func location(sales []models.SaleRecord) (suburb, city string) {
	if len(sales) == 0 {
		return "", ""
	}
	return sales[0].Suburb, sales[0].City
}

// locationKey derives the memo key from the first sale record.
func locationKey(sales []models.SaleRecord) string {
	suburb, city := location(sales)
	if suburb == "" && city == "" {
		return "Unknown"
	}
	return suburb + "|" + city
}

// marketStatsCache memoizes market-statistics fetches within one batch call.
// The per-key once guarantees a single fetch per location even when many
// properties in the same suburb are processed concurrently.
type marketStatsCache struct {
	mu      sync.Mutex
	entries map[string]*statsEntry
}

type statsEntry struct {
	once  sync.Once
	stats *models.MarketStatistics
	err   error
}

func newMarketStatsCache() *marketStatsCache {
	return &marketStatsCache{entries: make(map[string]*statsEntry)}
}

func (c *marketStatsCache) get(key string, fetch func() (*models.MarketStatistics, error)) (*models.MarketStatistics, error) {
	c.mu.Lock()
	entry, ok := c.entries[key]
	if !ok {
		entry = &statsEntry{}
		c.entries[key] = entry
	}
	c.mu.Unlock()

	entry.once.Do(func() {
		entry.stats, entry.err = fetch()
	})
	return entry.stats, entry.err
}
