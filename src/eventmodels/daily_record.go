package eventmodels

import (
	"time"

	"github.com/google/uuid"
)

// DailyRecord is a snapshot of one symbol's most recent trading session.
// Records are produced fresh on every poll cycle and discarded once the
// cycle's report has been published.
type DailyRecord struct {
	Symbol    StockSymbol
	Date      string
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
	FetchedAt time.Time
	RequestID uuid.UUID
}
