package eventconsumers

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/MikuMikuMe/smart-asset-tracker/src/eventmodels"
	"github.com/MikuMikuMe/smart-asset-tracker/src/eventpubsub"
	"github.com/MikuMikuMe/smart-asset-tracker/src/eventservices"
)

// TrackerWorker drives the poll loop: once per interval it fetches the
// latest daily record for every watched symbol, computes the performance
// summary and publishes it for the reporter.
type TrackerWorker struct {
	wg              *sync.WaitGroup
	fetcher         eventservices.QuoteFetcher
	symbols         []eventmodels.StockSymbol
	pollInterval    time.Duration
	marketHoursOnly bool
	calendarURL     string
	bearerToken     string
}

func NewTrackerWorker(wg *sync.WaitGroup, fetcher eventservices.QuoteFetcher, symbols []eventmodels.StockSymbol, pollInterval time.Duration) *TrackerWorker {
	return &TrackerWorker{
		wg:           wg,
		fetcher:      fetcher,
		symbols:      symbols,
		pollInterval: pollInterval,
	}
}

// RestrictToMarketHours makes the worker skip fetch cycles while the
// regular trading session is closed, using the Tradier market calendar.
func (w *TrackerWorker) RestrictToMarketHours(calendarURL, bearerToken string) {
	w.marketHoursOnly = true
	w.calendarURL = calendarURL
	w.bearerToken = bearerToken
}

func (w *TrackerWorker) runTick(ctx context.Context, now time.Time) {
	if w.marketHoursOnly {
		calendar, err := eventservices.FetchMarketCalendar(ctx, w.calendarURL, w.bearerToken, now)
		if err != nil {
			log.Errorf("TrackerWorker: failed to fetch market calendar: %v", err)
		} else {
			open, err := eventservices.IsMarketOpen(calendar, now)
			if err != nil {
				log.Errorf("TrackerWorker: failed to check if market is open: %v", err)
			} else if !open {
				log.Debug("market is closed")
				return
			}
		}
	}

	data := eventservices.FetchAssetData(ctx, w.fetcher, w.symbols)
	summary := eventservices.CalculatePerformance(data, w.symbols, now)

	eventpubsub.Publish(eventpubsub.PerformanceSummaryEvent, summary)
}

func (w *TrackerWorker) Start(ctx context.Context) {
	w.wg.Add(1)

	ticker := time.NewTicker(w.pollInterval)

	go func() {
		defer w.wg.Done()
		defer ticker.Stop()

		log.Info("starting asset tracking ...")

		w.runTick(ctx, time.Now())
		log.Info("waiting for the next update cycle ...")

		for {
			select {
			case <-ctx.Done():
				log.Info("tracking stopped by user")
				return
			case t := <-ticker.C:
				w.runTick(ctx, t)
				log.Info("waiting for the next update cycle ...")
			}
		}
	}()
}
