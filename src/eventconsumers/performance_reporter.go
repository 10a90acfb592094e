package eventconsumers

import (
	"context"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/MikuMikuMe/smart-asset-tracker/src/eventmodels"
	"github.com/MikuMikuMe/smart-asset-tracker/src/eventpubsub"
	"github.com/MikuMikuMe/smart-asset-tracker/src/indicators"
)

// PerformanceReporter renders each published performance summary as a log
// block per symbol, followed by a table and cycle statistics.
type PerformanceReporter struct {
	wg *sync.WaitGroup
}

func NewPerformanceReporter(wg *sync.WaitGroup) *PerformanceReporter {
	return &PerformanceReporter{
		wg: wg,
	}
}

func (r *PerformanceReporter) handlePerformanceSummary(summary *eventmodels.PerformanceSummary) {
	if summary.IsEmpty() {
		log.Info("no performance data to display")
		return
	}

	log.Info("displaying performance summary:")

	for _, symbol := range summary.Symbols {
		result := summary.Results[symbol]

		log.Infof("Symbol: %v", symbol)
		log.Infof("  Open Price: %.2f", result.Open)
		log.Infof("  Close Price: %.2f", result.Close)
		log.Infof("  Change (%%): %.2f", result.ChangePercent)
		log.Info(strings.Repeat("-", 40))
	}

	log.Infof("\n%s", summary.String())

	changeStats, err := indicators.NewChangeStats(summary.ChangePercents())
	if err != nil {
		log.Errorf("PerformanceReporter: failed to calculate change stats: %v", err)
		return
	}

	log.Infof("cycle stats: mean %.2f%%, median %.2f%%, stddev %.2f%%", changeStats.Mean, changeStats.Median, changeStats.StdDev)
}

func (r *PerformanceReporter) Start(ctx context.Context) {
	r.wg.Add(1)

	eventpubsub.Subscribe(eventpubsub.PerformanceSummaryEvent, r.handlePerformanceSummary)

	go func() {
		defer r.wg.Done()

		<-ctx.Done()
		log.Info("stopping PerformanceReporter consumer")
	}()
}
