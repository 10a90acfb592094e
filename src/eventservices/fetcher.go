package eventservices

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/MikuMikuMe/smart-asset-tracker/src/eventmodels"
)

// QuoteFetcher retrieves the latest available daily record for a symbol
// from an external market data provider.
type QuoteFetcher interface {
	FetchDailyRecord(ctx context.Context, symbol eventmodels.StockSymbol) (*eventmodels.DailyRecord, error)
}

// FetchAssetData fetches the latest daily record for each symbol in order.
// A provider error or empty response for one symbol never aborts the
// batch: the failure is logged and the symbol is simply absent from the
// returned map.
func FetchAssetData(ctx context.Context, fetcher QuoteFetcher, symbols []eventmodels.StockSymbol) map[eventmodels.StockSymbol]eventmodels.DailyRecord {
	data := make(map[eventmodels.StockSymbol]eventmodels.DailyRecord)

	log.Info("fetching asset data ...")

	for _, symbol := range symbols {
		record, err := fetcher.FetchDailyRecord(ctx, symbol)
		if err != nil {
			if errors.Is(err, eventmodels.ErrNoData) {
				log.Warnf("FetchAssetData: no data fetched for %v", symbol)
			} else {
				log.Errorf("FetchAssetData: error fetching data for %v: %v", symbol, err)
			}

			continue
		}

		data[symbol] = *record
	}

	return data
}
