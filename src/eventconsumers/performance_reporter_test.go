package eventconsumers

import (
	"sync"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikuMikuMe/smart-asset-tracker/src/eventmodels"
)

func TestPerformanceReporter(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty summary logs a single notice", func(t *testing.T) {
		hook := test.NewGlobal()
		defer hook.Reset()

		wg := sync.WaitGroup{}
		reporter := NewPerformanceReporter(&wg)

		reporter.handlePerformanceSummary(eventmodels.NewPerformanceSummary(now))

		require.Len(t, hook.Entries, 1)
		assert.Equal(t, "no performance data to display", hook.LastEntry().Message)
		assert.Equal(t, log.InfoLevel, hook.LastEntry().Level)
	})

	t.Run("per-symbol blocks are logged in order", func(t *testing.T) {
		hook := test.NewGlobal()
		defer hook.Reset()

		wg := sync.WaitGroup{}
		reporter := NewPerformanceReporter(&wg)

		summary := eventmodels.NewPerformanceSummary(now)
		summary.Add(eventmodels.StockSymbol("AAPL"), eventmodels.PerformanceResult{
			Open:          150.0,
			Close:         153.0,
			ChangePercent: 2.0,
		})
		summary.Add(eventmodels.StockSymbol("MSFT"), eventmodels.PerformanceResult{
			Open:          310.0,
			Close:         308.45,
			ChangePercent: -0.5,
		})

		reporter.handlePerformanceSummary(summary)

		var messages []string
		for _, entry := range hook.AllEntries() {
			messages = append(messages, entry.Message)
		}

		require.NotEmpty(t, messages)
		assert.Equal(t, "displaying performance summary:", messages[0])
		assert.Contains(t, messages, "Symbol: AAPL")
		assert.Contains(t, messages, "  Open Price: 150.00")
		assert.Contains(t, messages, "  Close Price: 153.00")
		assert.Contains(t, messages, "  Change (%): 2.00")
		assert.Contains(t, messages, "Symbol: MSFT")

		aaplIdx, msftIdx := -1, -1
		for i, msg := range messages {
			switch msg {
			case "Symbol: AAPL":
				aaplIdx = i
			case "Symbol: MSFT":
				msftIdx = i
			}
		}
		assert.Less(t, aaplIdx, msftIdx)
	})

	t.Run("cycle stats footer is logged", func(t *testing.T) {
		hook := test.NewGlobal()
		defer hook.Reset()

		wg := sync.WaitGroup{}
		reporter := NewPerformanceReporter(&wg)

		summary := eventmodels.NewPerformanceSummary(now)
		summary.Add(eventmodels.StockSymbol("AAPL"), eventmodels.PerformanceResult{
			Open:          150.0,
			Close:         153.0,
			ChangePercent: 2.0,
		})

		reporter.handlePerformanceSummary(summary)

		last := hook.LastEntry()
		require.NotNil(t, last)
		assert.Contains(t, last.Message, "cycle stats: mean 2.00%")
	})
}
