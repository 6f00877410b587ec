package cache

import (
	"fmt"
	"strings"
)

// cache key for one property's assembled data envelope.
func PropertyDataKey(propertyID string) string {
	return fmt.Sprintf("property-data:%s", propertyID)
}

// cache key for a suburb's market statistics.
func MarketStatsKey(suburb, city string) string {
	return fmt.Sprintf("market-stats:%s|%s", normalizeKeyComponent(suburb), normalizeKeyComponent(city))
}

// cache key for one property's comparable list at a given limit.
func ComparablesKey(propertyID string, limit int) string {
	return fmt.Sprintf("comparables:%s:%d", propertyID, limit)
}

// normalize location components so "Grey Lynn" and "grey lynn " share a key.
func normalizeKeyComponent(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "unknown"
	}
	return strings.Join(strings.Fields(s), " ")
}
