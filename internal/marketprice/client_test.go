package marketprice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	assert.Nil(t, New("", time.Second), "empty URL means no feed")
	assert.NotNil(t, New("http://quotes.test/lumber", time.Second))
}

func TestCurrent(t *testing.T) {
	t.Run("decodes a quote", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"market_price": 4.87, "last_update": "2026-08-20T09:30:00Z"}`)) //nolint:errcheck
		}))
		defer server.Close()

		quote, err := New(server.URL, time.Second).Current(context.Background())
		require.NoError(t, err)
		assert.InDelta(t, 4.87, quote.MarketPrice, 1e-9)
		assert.Equal(t, 2026, quote.LastUpdate.Year())
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := New(server.URL, time.Second).Current(context.Background())
		assert.ErrorContains(t, err, "503")
	})

	t.Run("garbage body is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("not json")) //nolint:errcheck
		}))
		defer server.Close()

		_, err := New(server.URL, time.Second).Current(context.Background())
		assert.ErrorContains(t, err, "decode market price response")
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := New(server.URL, time.Second).Current(ctx)
		assert.Error(t, err)
	})
}
