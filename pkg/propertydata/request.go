package propertydata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"appraisalhub-properties/pkg/logger"
	"appraisalhub-properties/pkg/metrics"
)

// getJSON performs an authenticated GET against a provider endpoint and
// decodes the JSON body into a generic map. The endpoint label is used for
// metrics and log correlation only.
func (c *Client) getJSON(ctx context.Context, endpoint, requestURL string) (map[string]interface{}, error) {
	token, err := c.getToken()
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to get provider token: endpoint=%s, error=%v", endpoint, err)
		metrics.ProviderRequestsTotal.WithLabelValues(endpoint, "auth_error").Inc()
		return nil, fmt.Errorf("failed to get provider token: %v", err)
	}

	maxRetries := 3
	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
		if err != nil {
			logger.GlobalLogger.Errorf("Failed to create provider request: endpoint=%s, url=%s, error=%v", endpoint, requestURL, err)
			return nil, fmt.Errorf("failed to create provider request: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/json")

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		metrics.ProviderRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		if err != nil {
			if ctx.Err() != nil {
				metrics.ProviderRequestsTotal.WithLabelValues(endpoint, "canceled").Inc()
				return nil, ctx.Err()
			}
			logger.GlobalLogger.Errorf("Provider request failed (attempt %d/%d): endpoint=%s, url=%s, error=%v", attempt, maxRetries, endpoint, requestURL, err)
			if attempt == maxRetries {
				metrics.ProviderRequestsTotal.WithLabelValues(endpoint, "error").Inc()
				return nil, fmt.Errorf("provider request failed after %d attempts: %v", maxRetries, err)
			}
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			logger.GlobalLogger.Errorf("Failed to read provider response body: endpoint=%s, status=%s, error=%v", endpoint, resp.Status, err)
			metrics.ProviderRequestsTotal.WithLabelValues(endpoint, "error").Inc()
			return nil, fmt.Errorf("failed to read provider response body: %v", err)
		}

		if resp.StatusCode == http.StatusNotFound {
			metrics.ProviderRequestsTotal.WithLabelValues(endpoint, "not_found").Inc()
			return nil, fmt.Errorf("provider returned 404 for %s", endpoint)
		}
		if resp.StatusCode >= 500 && attempt < maxRetries {
			logger.GlobalLogger.Errorf("Provider server error (attempt %d/%d): endpoint=%s, status=%s", attempt, maxRetries, endpoint, resp.Status)
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			logger.GlobalLogger.Errorf("Provider request failed: endpoint=%s, url=%s, status=%s, response=%s", endpoint, requestURL, resp.Status, string(body))
			metrics.ProviderRequestsTotal.WithLabelValues(endpoint, "error").Inc()
			return nil, fmt.Errorf("provider request failed: %s, response: %s", resp.Status, string(body))
		}

		var result map[string]interface{}
		if err := json.Unmarshal(body, &result); err != nil {
			logger.GlobalLogger.Errorf("Failed to decode provider response: endpoint=%s, response=%s, error=%v", endpoint, string(body), err)
			metrics.ProviderRequestsTotal.WithLabelValues(endpoint, "error").Inc()
			return nil, fmt.Errorf("failed to decode provider response: %v", err)
		}
		metrics.ProviderRequestsTotal.WithLabelValues(endpoint, "success").Inc()
		return result, nil
	}
	return nil, fmt.Errorf("provider request failed: max retries exceeded")
}
