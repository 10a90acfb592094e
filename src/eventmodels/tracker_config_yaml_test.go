package eventmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTrackerConfigYAML(t *testing.T) {
	t.Run("unmarshals and validates", func(t *testing.T) {
		doc := `
symbols:
  - aapl
  - TSLA
  - GOOGL
poll_interval_seconds: 60
provider: tradier
market_hours_only: true
`
		var config TrackerConfigYAML
		require.NoError(t, yaml.Unmarshal([]byte(doc), &config))
		require.NoError(t, config.Validate())

		assert.Equal(t, []StockSymbol{"AAPL", "TSLA", "GOOGL"}, config.StockSymbols())
		assert.Equal(t, 60*time.Second, config.PollInterval())
		assert.True(t, config.MarketHoursOnly)
	})

	t.Run("rejects empty symbol list", func(t *testing.T) {
		config := TrackerConfigYAML{
			PollIntervalSeconds: 60,
			Provider:            ProviderTradier,
		}

		assert.Error(t, config.Validate())
	})

	t.Run("rejects empty symbol", func(t *testing.T) {
		config := TrackerConfigYAML{
			Symbols:             []string{"AAPL", ""},
			PollIntervalSeconds: 60,
			Provider:            ProviderTradier,
		}

		assert.Error(t, config.Validate())
	})

	t.Run("rejects non-positive interval", func(t *testing.T) {
		config := TrackerConfigYAML{
			Symbols:             []string{"AAPL"},
			PollIntervalSeconds: 0,
			Provider:            ProviderPolygon,
		}

		assert.Error(t, config.Validate())
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		config := TrackerConfigYAML{
			Symbols:             []string{"AAPL"},
			PollIntervalSeconds: 60,
			Provider:            "yahoo",
		}

		assert.Error(t, config.Validate())
	})
}
