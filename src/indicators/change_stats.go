package indicators

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// ChangeStats aggregates the change percents of one poll cycle.
type ChangeStats struct {
	Mean   float64
	Median float64
	StdDev float64
}

func NewChangeStats(changes []float64) (*ChangeStats, error) {
	if len(changes) == 0 {
		return nil, fmt.Errorf("NewChangeStats: no change percents")
	}

	mean, err := stats.Mean(changes)
	if err != nil {
		return nil, fmt.Errorf("NewChangeStats: failed to calculate mean: %w", err)
	}

	median, err := stats.Median(changes)
	if err != nil {
		return nil, fmt.Errorf("NewChangeStats: failed to calculate median: %w", err)
	}

	stdDev, err := stats.StdDevP(changes)
	if err != nil {
		return nil, fmt.Errorf("NewChangeStats: failed to calculate standard deviation: %w", err)
	}

	return &ChangeStats{
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
	}, nil
}
