package tracer

import (
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-fundtrace/pkg/safe"
)

// Config bounds a trace.
type Config struct {
	// Depth is the maximum number of rounds.
	Depth uint
	// DaysWithin is the recency window; zero is treated as one day.
	DaysWithin uint64
	// BlockIntervalSeconds converts the window into a block count.
	BlockIntervalSeconds uint64
	// Workers is the number of concurrent address fetches within a round.
	Workers int
}

func (c Config) validate() error {
	if c.BlockIntervalSeconds == 0 {
		return errors.New("block interval is required")
	}
	return nil
}

// StartHeight returns the height at or below which transactions fall outside the window.
// It saturates at zero, including when the window is too large to represent.
func StartHeight(latest, daysWithin, blockIntervalSeconds uint64) uint64 {
	if daysWithin == 0 {
		daysWithin = 1
	}
	seconds, err := safe.MulUint64(daysWithin, secondsPerDay)
	if err != nil {
		return 0
	}
	span := seconds / blockIntervalSeconds
	if span >= latest {
		return 0
	}
	return latest - span
}
