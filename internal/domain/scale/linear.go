// Package scale maps data domains onto pixel ranges and picks axis ticks.
package scale

// Linear is a continuous, monotonic map from a two-point domain onto a
// two-point range. A zero-width domain maps every value to the middle of
// the range.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear builds a linear scale over domain and range.
func NewLinear(domain, rng [2]float64) Linear {
	return Linear{d0: domain[0], d1: domain[1], r0: rng[0], r1: rng[1]}
}

// Domain returns the domain bounds.
func (s Linear) Domain() [2]float64 { return [2]float64{s.d0, s.d1} }

// Range returns the range bounds.
func (s Linear) Range() [2]float64 { return [2]float64{s.r0, s.r1} }

// Degenerate reports whether the domain has zero width.
func (s Linear) Degenerate() bool { return s.d0 == s.d1 }

// Map returns the range position of v. Values outside the domain
// extrapolate.
func (s Linear) Map(v float64) float64 {
	if s.Degenerate() {
		return (s.r0 + s.r1) / 2
	}
	t := (v - s.d0) / (s.d1 - s.d0)
	return s.r0 + t*(s.r1-s.r0)
}

// Invert returns the domain value at range position px.
func (s Linear) Invert(px float64) float64 {
	if s.Degenerate() || s.r0 == s.r1 {
		return s.d0
	}
	t := (px - s.r0) / (s.r1 - s.r0)
	return s.d0 + t*(s.d1-s.d0)
}
