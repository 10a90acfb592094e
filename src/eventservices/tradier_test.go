package eventservices

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikuMikuMe/smart-asset-tracker/src/eventmodels"
)

func TestTradierQuoteFetcher(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the most recent session", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
			assert.Equal(t, "daily", r.URL.Query().Get("interval"))
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			fmt.Fprint(w, `{
				"history": {
					"day": [
						{"date": "2023-01-05", "open": 149.22, "high": 151.0, "low": 148.9, "close": 150.1, "volume": 1000},
						{"date": "2023-01-06", "open": 150.0, "high": 153.5, "low": 149.8, "close": 153.0, "volume": 2000}
					]
				}
			}`)
		}))
		defer server.Close()

		fetcher := NewTradierQuoteFetcher(server.URL, "test-token")

		record, err := fetcher.FetchDailyRecord(ctx, eventmodels.StockSymbol("AAPL"))
		require.NoError(t, err)

		assert.Equal(t, eventmodels.StockSymbol("AAPL"), record.Symbol)
		assert.Equal(t, "2023-01-06", record.Date)
		assert.Equal(t, 150.0, record.Open)
		assert.Equal(t, 153.0, record.Close)
		assert.Equal(t, 2000.0, record.Volume)
	})

	t.Run("empty history yields ErrNoData", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"history": {"day": []}}`)
		}))
		defer server.Close()

		fetcher := NewTradierQuoteFetcher(server.URL, "test-token")

		_, err := fetcher.FetchDailyRecord(ctx, eventmodels.StockSymbol("GOOGL"))
		require.Error(t, err)
		assert.ErrorIs(t, err, eventmodels.ErrNoData)
	})

	t.Run("non-200 response yields error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		fetcher := NewTradierQuoteFetcher(server.URL, "test-token")

		_, err := fetcher.FetchDailyRecord(ctx, eventmodels.StockSymbol("AAPL"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, eventmodels.ErrNoData)
	})
}
