package session

import (
	"math"
	"time"
)

const (
	slowestInterval = 700 * time.Millisecond
	fastestInterval = 10 * time.Millisecond
	speedEaseExp    = 2.2
)

// IntervalFromSpeed maps a slider value in [lo, hi] to a step interval
// The top value means instant (0); below it an ease-out curve runs from 700ms down to 10ms,
// giving finer control at the fast end
func IntervalFromSpeed(value, lo, hi int) time.Duration {
	if value >= hi {
		return 0
	}

	upper := hi - 1
	clamped := min(max(value, lo), upper)
	span := max(1, upper-lo)
	t := float64(clamped-lo) / float64(span)
	eased := 1 - math.Pow(1-t, speedEaseExp)

	ms := float64(slowestInterval.Milliseconds()) - float64((slowestInterval-fastestInterval).Milliseconds())*eased
	d := time.Duration(math.Round(ms)) * time.Millisecond
	return max(d, fastestInterval)
}
