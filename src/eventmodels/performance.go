package eventmodels

import (
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type PerformanceResult struct {
	Open          float64
	Close         float64
	ChangePercent float64
}

// PerformanceSummary holds the per-symbol results computed in one tick.
// Symbols preserves the order in which results were added, which follows
// the configured watch list order.
type PerformanceSummary struct {
	Timestamp time.Time
	Symbols   []StockSymbol
	Results   map[StockSymbol]PerformanceResult
}

func NewPerformanceSummary(timestamp time.Time) *PerformanceSummary {
	return &PerformanceSummary{
		Timestamp: timestamp,
		Results:   make(map[StockSymbol]PerformanceResult),
	}
}

func (s *PerformanceSummary) Add(symbol StockSymbol, result PerformanceResult) {
	if _, found := s.Results[symbol]; !found {
		s.Symbols = append(s.Symbols, symbol)
	}

	s.Results[symbol] = result
}

func (s *PerformanceSummary) IsEmpty() bool {
	return len(s.Results) == 0
}

func (s *PerformanceSummary) ChangePercents() []float64 {
	changes := make([]float64, 0, len(s.Symbols))
	for _, symbol := range s.Symbols {
		changes = append(changes, s.Results[symbol].ChangePercent)
	}

	return changes
}

func (s *PerformanceSummary) String() string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)

	table.SetHeader([]string{"Symbol", "Open", "Close", "Change (%)"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")
	display.WriteString("Performance Summary:\n")

	for _, symbol := range s.Symbols {
		result := s.Results[symbol]

		open := fmt.Sprintf("$%s", p.Sprintf("%.2f", result.Open))
		closePrice := fmt.Sprintf("$%s", p.Sprintf("%.2f", result.Close))
		change := fmt.Sprintf("%.2f%%", result.ChangePercent)

		table.Append([]string{symbol.String(), open, closePrice, change})
	}

	table.Render()
	return display.String()
}
