package eventservices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MikuMikuMe/smart-asset-tracker/src/eventmodels"
)

// TradierQuoteFetcher pulls daily history records from the Tradier markets
// history endpoint.
type TradierQuoteFetcher struct {
	quotesURL   string
	bearerToken string
}

func NewTradierQuoteFetcher(quotesURL, bearerToken string) *TradierQuoteFetcher {
	return &TradierQuoteFetcher{
		quotesURL:   quotesURL,
		bearerToken: bearerToken,
	}
}

// FetchDailyRecord requests the last week of daily history and returns the
// most recent session. Asking for a window rather than a single date keeps
// weekends and market holidays from coming back empty.
func (f *TradierQuoteFetcher) FetchDailyRecord(ctx context.Context, symbol eventmodels.StockSymbol) (*eventmodels.DailyRecord, error) {
	client := http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.quotesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("FetchDailyRecord: failed to create request: %w", err)
	}

	now := time.Now().UTC()

	q := req.URL.Query()
	q.Add("symbol", symbol.String())
	q.Add("interval", "daily")
	q.Add("start", now.AddDate(0, 0, -7).Format("2006-01-02"))
	q.Add("end", now.Format("2006-01-02"))

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", f.bearerToken))

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("FetchDailyRecord: failed to fetch daily history: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchDailyRecord: failed to fetch daily history, http code %v", res.Status)
	}

	var dto eventmodels.TradierMarketsHistoryResponseDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("FetchDailyRecord: failed to decode json: %w", err)
	}

	day, found := dto.LatestDay()
	if !found {
		return nil, fmt.Errorf("FetchDailyRecord: %v: %w", symbol, eventmodels.ErrNoData)
	}

	return day.ToModel(symbol, uuid.New(), now), nil
}
