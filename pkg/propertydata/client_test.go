package propertydata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, tokenCalls *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(tokenCalls, 1)
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client-id" || pass != "client-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "test-token",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/v1/properties/prop-1/attributes", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"property": map[string]interface{}{
				"attributes": map[string]interface{}{"bedrooms": 3},
			},
		})
	})
	mux.HandleFunc("/v1/properties/missing/attributes", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/v1/market/statistics", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("suburb") != "Ponsonby" || r.URL.Query().Get("city") != "Auckland" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"statistics": map[string]interface{}{"medianPrice": 850000.0},
		})
	})
	return httptest.NewServer(mux)
}

func TestClient_GetPropertyDetail(t *testing.T) {
	var tokenCalls int32
	server := newTestServer(t, &tokenCalls)
	defer server.Close()

	client := NewClient(server.URL, "client-id", "client-secret")
	detail, err := client.GetPropertyDetail(context.Background(), "prop-1")
	require.NoError(t, err)
	require.Contains(t, detail, "property")

	property := detail["property"].(map[string]interface{})
	attrs := property["attributes"].(map[string]interface{})
	assert.Equal(t, float64(3), attrs["bedrooms"])
}

func TestClient_TokenReuse(t *testing.T) {
	var tokenCalls int32
	server := newTestServer(t, &tokenCalls)
	defer server.Close()

	client := NewClient(server.URL, "client-id", "client-secret")
	_, err := client.GetPropertyDetail(context.Background(), "prop-1")
	require.NoError(t, err)
	_, err = client.GetPropertyDetail(context.Background(), "prop-1")
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestClient_ConcurrentRequestsShareToken(t *testing.T) {
	var tokenCalls int32
	server := newTestServer(t, &tokenCalls)
	defer server.Close()

	client := NewClient(server.URL, "client-id", "client-secret")

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.GetPropertyDetail(context.Background(), "prop-1")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestClient_NotFound(t *testing.T) {
	var tokenCalls int32
	server := newTestServer(t, &tokenCalls)
	defer server.Close()

	client := NewClient(server.URL, "client-id", "client-secret")
	_, err := client.GetPropertyDetail(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_GetMarketStatistics(t *testing.T) {
	var tokenCalls int32
	server := newTestServer(t, &tokenCalls)
	defer server.Close()

	client := NewClient(server.URL, "client-id", "client-secret")
	stats, err := client.GetMarketStatistics(context.Background(), "Ponsonby", "Auckland")
	require.NoError(t, err)
	require.Contains(t, stats, "statistics")
}
