package eventmodels

import (
	"time"

	"github.com/google/uuid"
)

type TradierHistoryDayDTO struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

type tradierMarketsHistory struct {
	Day []TradierHistoryDayDTO `json:"day"`
}

type TradierMarketsHistoryResponseDTO struct {
	History tradierMarketsHistory `json:"history"`
}

// LatestDay returns the most recent session in the response. Tradier
// returns days in ascending date order.
func (dto *TradierMarketsHistoryResponseDTO) LatestDay() (*TradierHistoryDayDTO, bool) {
	days := dto.History.Day
	if len(days) == 0 {
		return nil, false
	}

	return &days[len(days)-1], true
}

func (d *TradierHistoryDayDTO) ToModel(symbol StockSymbol, requestID uuid.UUID, fetchedAt time.Time) *DailyRecord {
	return &DailyRecord{
		Symbol:    symbol,
		Date:      d.Date,
		Open:      d.Open,
		High:      d.High,
		Low:       d.Low,
		Close:     d.Close,
		Volume:    d.Volume,
		FetchedAt: fetchedAt,
		RequestID: requestID,
	}
}
