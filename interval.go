package piecewise

import (
	"fmt"
	"math"
)

// Interval is a closed interval [Lo, Hi] on the real line.
//
// Operations that produce ranges (the bound queries, [Piecewise.Domain])
// return intervals with Lo <= Hi. An interval with Lo >= Hi is considered
// empty; see [Interval.IsEmpty].
type Interval struct {
	Lo float64
	Hi float64
}

// IntervalOf returns the interval spanning a and b, in either order.
func IntervalOf(a, b float64) Interval {
	if b < a {
		a, b = b, a
	}
	return Interval{a, b}
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Lo, iv.Hi)
}

// IsEmpty reports whether the interval contains no extent.
func (iv Interval) IsEmpty() bool {
	return iv.Lo >= iv.Hi
}

// Extent returns the width of the interval.
func (iv Interval) Extent() float64 {
	return iv.Hi - iv.Lo
}

// Contains reports whether v lies in the closed interval.
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Lo && v <= iv.Hi
}

// Lerp linearly interpolates between the interval's endpoints.
func (iv Interval) Lerp(t float64) float64 {
	return (1-t)*iv.Lo + t*iv.Hi
}

// Union returns the smallest interval containing both iv and o.
func (iv Interval) Union(o Interval) Interval {
	return Interval{
		Lo: math.Min(iv.Lo, o.Lo),
		Hi: math.Max(iv.Hi, o.Hi),
	}
}

// ExtendTo returns the smallest interval containing iv and the value v.
func (iv Interval) ExtendTo(v float64) Interval {
	return Interval{
		Lo: math.Min(iv.Lo, v),
		Hi: math.Max(iv.Hi, v),
	}
}
