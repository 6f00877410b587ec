package propertydata

import (
	"context"
	"fmt"
	"net/url"

	"appraisalhub-properties/pkg/logger"
)

// GetPropertyDetail retrieves the attribute payload for a property.
func (c *Client) GetPropertyDetail(ctx context.Context, propertyID string) (map[string]interface{}, error) {
	requestURL := fmt.Sprintf("%s/v1/properties/%s/attributes", c.baseURL, url.PathEscape(propertyID))
	detail, err := c.getJSON(ctx, "property_detail", requestURL)
	if err != nil {
		return nil, err
	}
	logger.GlobalLogger.Debugf("Property detail retrieved: propertyId=%s", propertyID)
	return detail, nil
}

// GetSalesHistory retrieves recent comparable sales around a property.
func (c *Client) GetSalesHistory(ctx context.Context, propertyID string) (map[string]interface{}, error) {
	requestURL := fmt.Sprintf("%s/v1/properties/%s/sales-history", c.baseURL, url.PathEscape(propertyID))
	sales, err := c.getJSON(ctx, "sales_history", requestURL)
	if err != nil {
		return nil, err
	}
	logger.GlobalLogger.Debugf("Sales history retrieved: propertyId=%s", propertyID)
	return sales, nil
}

// GetAVMEstimate retrieves the automated valuation estimate for a property.
func (c *Client) GetAVMEstimate(ctx context.Context, propertyID string) (map[string]interface{}, error) {
	requestURL := fmt.Sprintf("%s/v1/properties/%s/avm", c.baseURL, url.PathEscape(propertyID))
	avm, err := c.getJSON(ctx, "avm", requestURL)
	if err != nil {
		return nil, err
	}
	logger.GlobalLogger.Debugf("AVM estimate retrieved: propertyId=%s", propertyID)
	return avm, nil
}

// GetMarketStatistics retrieves aggregate market statistics for a location.
func (c *Client) GetMarketStatistics(ctx context.Context, suburb, city string) (map[string]interface{}, error) {
	query := url.Values{}
	query.Set("suburb", suburb)
	query.Set("city", city)
	requestURL := fmt.Sprintf("%s/v1/market/statistics?%s", c.baseURL, query.Encode())
	stats, err := c.getJSON(ctx, "market_statistics", requestURL)
	if err != nil {
		return nil, err
	}
	logger.GlobalLogger.Debugf("Market statistics retrieved: suburb=%s, city=%s", suburb, city)
	return stats, nil
}
