package propertydata

import (
	"net/http"
	"sync"
	"time"
)

// Client manages provider API authentication and requests. One instance is
// shared across request goroutines; the token state is guarded by tokenMu.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	tokenMu      sync.Mutex
	token        string
	tokenExpiry  time.Time
	httpClient   *http.Client
}

// NewClient creates a new property-data provider client.
func NewClient(baseURL, clientID, clientSecret string) *Client {
	return &Client{
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}
