package eventservices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/MikuMikuMe/smart-asset-tracker/src/eventmodels"
)

var cachedCalendar *eventmodels.MarketCalendar

// IsMarketOpen reports whether the regular trading session is open at the
// given time according to the fetched calendar.
func IsMarketOpen(calendar *eventmodels.MarketCalendar, now time.Time) (bool, error) {
	dateStr := now.Format("2006-01-02")
	timeStr := now.Format("15:04")

	for _, day := range calendar.Calendar.Days.Day {
		if day.Date != dateStr {
			continue
		}

		if day.Status != "open" {
			return false, nil
		}

		start, err := time.Parse("15:04", day.Open.Start)
		if err != nil {
			return false, fmt.Errorf("IsMarketOpen: failed to parse session start: %w", err)
		}

		end, err := time.Parse("15:04", day.Open.End)
		if err != nil {
			return false, fmt.Errorf("IsMarketOpen: failed to parse session end: %w", err)
		}

		currentTime, err := time.Parse("15:04", timeStr)
		if err != nil {
			return false, fmt.Errorf("IsMarketOpen: failed to parse current time: %w", err)
		}

		return currentTime.After(start) && currentTime.Before(end), nil
	}

	return false, nil
}

// FetchMarketCalendar fetches the current month's market calendar. The
// payload only changes once a month, so it is cached until the month rolls
// over.
func FetchMarketCalendar(ctx context.Context, url, bearerToken string, now time.Time) (*eventmodels.MarketCalendar, error) {
	currentMonth := int(now.Month())

	if cachedCalendar != nil && cachedCalendar.Calendar.Month == currentMonth && cachedCalendar.Calendar.Year == now.Year() {
		return cachedCalendar, nil
	}

	log.Debugf("cache invalid, fetching market calendar for %v", now.Format("2006-01"))

	client := http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("FetchMarketCalendar: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("month", fmt.Sprintf("%d", currentMonth))
	q.Add("year", fmt.Sprintf("%d", now.Year()))

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", bearerToken))

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("FetchMarketCalendar: failed to fetch market calendar: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchMarketCalendar: failed to fetch market calendar, http code %v", res.Status)
	}

	var dto eventmodels.MarketCalendar
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("FetchMarketCalendar: failed to decode json: %w", err)
	}

	cachedCalendar = &dto

	return &dto, nil
}
