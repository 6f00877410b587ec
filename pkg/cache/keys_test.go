package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyDataKey(t *testing.T) {
	assert.Equal(t, "property-data:prop-1", PropertyDataKey("prop-1"))
}

func TestMarketStatsKey(t *testing.T) {
	assert.Equal(t, "market-stats:ponsonby|auckland", MarketStatsKey("Ponsonby", "Auckland"))
	assert.Equal(t, "market-stats:grey lynn|auckland", MarketStatsKey("  Grey  Lynn ", "auckland"))
	assert.Equal(t, "market-stats:unknown|unknown", MarketStatsKey("", ""))
}

func TestComparablesKey(t *testing.T) {
	assert.Equal(t, "comparables:prop-1:5", ComparablesKey("prop-1", 5))
	assert.Equal(t, "comparables:prop-1:10", ComparablesKey("prop-1", 10))
}
