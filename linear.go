package piecewise

import "math"

// Lin is a linear function over the local parameter [0, 1], stored as its
// values at 0 and 1. It is the degree-one building block of [SBasis] and
// the affine remapping primitive used by composition and portioning.
type Lin struct {
	A0 float64
	A1 float64
}

// ValueAt evaluates the linear function at t.
func (l Lin) ValueAt(t float64) float64 {
	return (1-t)*l.A0 + t*l.A1
}

func (l Lin) At0() float64 { return l.A0 }
func (l Lin) At1() float64 { return l.A1 }

// tri is the end-to-end increase of the function.
func (l Lin) tri() float64 { return l.A1 - l.A0 }

// hat is the value of the function at the midpoint.
func (l Lin) hat() float64 { return 0.5 * (l.A0 + l.A1) }

func (l Lin) IsZero() bool { return l.A0 == 0 && l.A1 == 0 }

// IsConst reports whether the function is constant.
func (l Lin) IsConst() bool { return l.A0 == l.A1 }

func (l Lin) Add(o Lin) Lin       { return Lin{l.A0 + o.A0, l.A1 + o.A1} }
func (l Lin) Sub(o Lin) Lin       { return Lin{l.A0 - o.A0, l.A1 - o.A1} }
func (l Lin) Neg() Lin            { return Lin{-l.A0, -l.A1} }
func (l Lin) Offset(v float64) Lin { return Lin{l.A0 + v, l.A1 + v} }
func (l Lin) Scale(v float64) Lin  { return Lin{l.A0 * v, l.A1 * v} }

// Bounds returns the range of the function over [0, 1].
func (l Lin) Bounds() Interval {
	return Interval{math.Min(l.A0, l.A1), math.Max(l.A0, l.A1)}
}

// SBasis lifts the linear function into the symmetric power basis.
func (l Lin) SBasis() SBasis {
	return SBasis{l}
}

// Root returns the parameter at which the function crosses zero, if there
// is exactly one such crossing in [0, 1].
func (l Lin) Root() (float64, bool) {
	if l.tri() == 0 {
		return 0, false
	}
	t := -l.A0 / l.tri()
	return t, t >= 0 && t <= 1
}
