package eventservices

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/MikuMikuMe/smart-asset-tracker/src/eventmodels"
)

// CalculatePerformance derives a per-symbol performance result from the
// fetched records. A symbol with a zero or missing open or close price is
// skipped with a warning; a zero open would otherwise divide by zero.
// Results follow the order of the symbols slice, so the same input always
// yields the same summary.
func CalculatePerformance(data map[eventmodels.StockSymbol]eventmodels.DailyRecord, symbols []eventmodels.StockSymbol, now time.Time) *eventmodels.PerformanceSummary {
	summary := eventmodels.NewPerformanceSummary(now)

	if len(data) == 0 {
		log.Warn("no data to calculate performance")
		return summary
	}

	log.Info("calculating asset performance ...")

	for _, symbol := range symbols {
		record, found := data[symbol]
		if !found {
			continue
		}

		if record.Open == 0 || record.Close == 0 {
			log.Warnf("CalculatePerformance: invalid data for %v: open or close price is missing", symbol)
			continue
		}

		summary.Add(symbol, eventmodels.PerformanceResult{
			Open:          record.Open,
			Close:         record.Close,
			ChangePercent: (record.Close - record.Open) / record.Open * 100,
		})
	}

	return summary
}
