package eventservices

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"

	"github.com/MikuMikuMe/smart-asset-tracker/src/eventmodels"
)

// PolygonQuoteFetcher pulls the previous close aggregate from the polygon
// api, which carries the open/close pair of the most recent session.
type PolygonQuoteFetcher struct {
	Client *polygon.Client
}

func NewPolygonQuoteFetcher(apiKey string) *PolygonQuoteFetcher {
	return &PolygonQuoteFetcher{
		Client: polygon.New(apiKey),
	}
}

func (f *PolygonQuoteFetcher) FetchDailyRecord(ctx context.Context, symbol eventmodels.StockSymbol) (*eventmodels.DailyRecord, error) {
	params := models.GetPreviousCloseAggParams{
		Ticker: symbol.String(),
	}.WithAdjusted(true)

	resp, err := f.Client.GetPreviousCloseAgg(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("FetchDailyRecord: failed to fetch previous close agg: %w", err)
	}

	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("FetchDailyRecord: %v: %w", symbol, eventmodels.ErrNoData)
	}

	agg := resp.Results[0]

	return &eventmodels.DailyRecord{
		Symbol:    symbol,
		Date:      time.Time(agg.Timestamp).UTC().Format("2006-01-02"),
		Open:      agg.Open,
		High:      agg.High,
		Low:       agg.Low,
		Close:     agg.Close,
		Volume:    agg.Volume,
		FetchedAt: time.Now().UTC(),
		RequestID: uuid.New(),
	}, nil
}
