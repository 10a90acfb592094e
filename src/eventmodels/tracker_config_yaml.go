package eventmodels

import (
	"fmt"
	"time"
)

const (
	ProviderTradier = "tradier"
	ProviderPolygon = "polygon"
)

type TrackerConfigYAML struct {
	Symbols             []string `yaml:"symbols"`
	PollIntervalSeconds int      `yaml:"poll_interval_seconds"`
	Provider            string   `yaml:"provider"`
	MarketHoursOnly     bool     `yaml:"market_hours_only"`
}

func (c *TrackerConfigYAML) Validate() error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("TrackerConfigYAML.Validate: no symbols configured")
	}

	for _, symbol := range c.Symbols {
		if symbol == "" {
			return fmt.Errorf("TrackerConfigYAML.Validate: empty symbol in symbol list")
		}
	}

	if c.PollIntervalSeconds <= 0 {
		return fmt.Errorf("TrackerConfigYAML.Validate: poll_interval_seconds must be positive, got %d", c.PollIntervalSeconds)
	}

	switch c.Provider {
	case ProviderTradier, ProviderPolygon:
	default:
		return fmt.Errorf("TrackerConfigYAML.Validate: unknown provider %q", c.Provider)
	}

	return nil
}

func (c *TrackerConfigYAML) StockSymbols() []StockSymbol {
	symbols := make([]StockSymbol, 0, len(c.Symbols))
	for _, s := range c.Symbols {
		symbols = append(symbols, NewStockSymbol(s))
	}

	return symbols
}

func (c *TrackerConfigYAML) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}
