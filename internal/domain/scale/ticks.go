package scale

import (
	"math"
	"sort"
)

// Thresholds d3 uses to round a raw step to 1, 2, 5 or 10.
var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// TickStep returns a "nice" step close to (stop-start)/count, always one of
// 1, 2 or 5 times a power of ten.
func TickStep(start, stop float64, count int) float64 {
	if count <= 0 || stop == start {
		return 0
	}
	raw := math.Abs(stop-start) / float64(count)
	power := math.Floor(math.Log10(raw))
	errRatio := raw / math.Pow(10, power)
	factor := 1.0
	switch {
	case errRatio >= e10:
		factor = 10
	case errRatio >= e5:
		factor = 5
	case errRatio >= e2:
		factor = 2
	}
	return factor * math.Pow(10, power)
}

// TicksEvery returns every multiple of step inside [start, stop].
func TicksEvery(start, stop, step float64) []float64 {
	if start > stop {
		start, stop = stop, start
	}
	if step <= 0 || start == stop {
		return []float64{start}
	}
	first := math.Ceil(start / step)
	last := math.Floor(stop / step)
	out := make([]float64, 0, int(last-first)+1)
	for i := first; i <= last; i++ {
		out = append(out, i*step)
	}
	return out
}

// Ticks returns about count nicely spaced values inside [start, stop].
func Ticks(start, stop float64, count int) []float64 {
	return TicksEvery(start, stop, TickStep(start, stop, count))
}

// secondIntervals are the calendar-free steps offered for time-of-race axes:
// 1s, 5s, 15s, 30s, 1m, 5m, 15m, 30m, 1h.
var secondIntervals = []float64{1, 5, 15, 30, 60, 300, 900, 1800, 3600}

// DurationStep picks the interval from secondIntervals closest (by ratio)
// to span/count seconds.
func DurationStep(spanSeconds float64, count int) float64 {
	if count <= 0 || spanSeconds <= 0 {
		return secondIntervals[0]
	}
	target := spanSeconds / float64(count)
	i := sort.SearchFloat64s(secondIntervals, target)
	// SearchFloat64s finds the first interval >= target; step past an exact
	// hit so the ratio comparison below sees both neighbours.
	for i < len(secondIntervals) && secondIntervals[i] == target {
		i++
	}
	switch {
	case i == 0:
		return secondIntervals[0]
	case i == len(secondIntervals):
		hours := TickStep(0, spanSeconds/3600, count)
		return math.Max(1, hours) * 3600
	}
	if target/secondIntervals[i-1] < secondIntervals[i]/target {
		return secondIntervals[i-1]
	}
	return secondIntervals[i]
}
