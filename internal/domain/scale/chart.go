package scale

import (
	"math"
	"time"

	"github.com/okian/veloplot/internal/domain/model"
)

// yearInstant returns the Unix seconds of January 1st, 00:00 UTC of year.
func yearInstant(year int) float64 {
	return float64(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Unix())
}

// YearScale positions calendar years on the time line: a year sits at its
// January 1st, so leap years are marginally wider than common years.
type YearScale struct {
	lin      Linear
	min, max int
}

// NewYearScale maps [minYear, maxYear] onto rng.
func NewYearScale(minYear, maxYear int, rng [2]float64) YearScale {
	return YearScale{
		lin: NewLinear([2]float64{yearInstant(minYear), yearInstant(maxYear)}, rng),
		min: minYear,
		max: maxYear,
	}
}

// Domain returns the first and last year of the domain.
func (s YearScale) Domain() [2]int { return [2]int{s.min, s.max} }

// Range returns the pixel range.
func (s YearScale) Range() [2]float64 { return s.lin.Range() }

// Position returns the pixel position of year.
func (s YearScale) Position(year int) float64 { return s.lin.Map(yearInstant(year)) }

// Invert returns the instant at pixel position px.
func (s YearScale) Invert(px float64) time.Time {
	return time.Unix(int64(math.Round(s.lin.Invert(px))), 0).UTC()
}

// Ticks returns about count years on a 1, 2 or 5 times 10^k year step.
func (s YearScale) Ticks(count int) []int {
	step := math.Max(1, math.Round(TickStep(float64(s.min), float64(s.max), count)))
	values := TicksEvery(float64(s.min), float64(s.max), step)
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out
}

// TimeScale positions elapsed race times.
type TimeScale struct {
	lin      Linear
	min, max model.Elapsed
}

// NewTimeScale maps [minTime, maxTime] onto rng.
func NewTimeScale(minTime, maxTime model.Elapsed, rng [2]float64) TimeScale {
	return TimeScale{
		lin: NewLinear([2]float64{float64(minTime), float64(maxTime)}, rng),
		min: minTime,
		max: maxTime,
	}
}

// Domain returns the fastest and slowest time of the domain.
func (s TimeScale) Domain() [2]model.Elapsed { return [2]model.Elapsed{s.min, s.max} }

// Range returns the pixel range.
func (s TimeScale) Range() [2]float64 { return s.lin.Range() }

// Position returns the pixel position of t.
func (s TimeScale) Position(t model.Elapsed) float64 { return s.lin.Map(float64(t)) }

// Invert returns the elapsed time at pixel position px, rounded to the second.
func (s TimeScale) Invert(px float64) model.Elapsed {
	return model.Elapsed(math.Round(s.lin.Invert(px)))
}

// Ticks returns time ticks aligned to the interval closest to span/count.
func (s TimeScale) Ticks(count int) []model.Elapsed {
	step := DurationStep(float64(s.max-s.min), count)
	values := TicksEvery(float64(s.min), float64(s.max), step)
	out := make([]model.Elapsed, len(values))
	for i, v := range values {
		out[i] = model.Elapsed(v)
	}
	return out
}
