package piecewise

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSBasisValueAt(t *testing.T) {
	// f(t) = (1−t)·2 + t·4
	sb := SBasis{{2, 4}}
	assertNear(t, 2, sb.ValueAt(0), 0)
	assertNear(t, 4, sb.ValueAt(1), 0)
	assertNear(t, 3, sb.ValueAt(0.5), 1e-15)

	// g(t) = t(1−t), the basis function itself.
	g := SBasis{{0, 0}, {1, 1}}
	assertNear(t, 0, g.ValueAt(0), 0)
	assertNear(t, 0, g.ValueAt(1), 0)
	assertNear(t, 0.25, g.ValueAt(0.5), 1e-15)
	assertNear(t, 0.3*0.7, g.ValueAt(0.3), 1e-15)
}

func TestSBasisEndpoints(t *testing.T) {
	sb := SBasis{{-1, 5}, {2, -3}}
	assertNear(t, sb.At0(), sb.ValueAt(0), 1e-15)
	assertNear(t, sb.At1(), sb.ValueAt(1), 1e-15)
	if (SBasis{}).At0() != 0 || (SBasis{}).At1() != 0 {
		t.Error("zero polynomial must evaluate to 0 at the endpoints")
	}
}

func TestSBasisMul(t *testing.T) {
	a := SBasis{{1, 2}, {-1, 3}}
	b := SBasis{{0, 5}, {2, 2}}
	p := a.Mul(b)
	sampleEqual(t, p.ValueAt, func(x float64) float64 {
		return a.ValueAt(x) * b.ValueAt(x)
	}, Interval{0, 1}, 20, 1e-12)
}

func TestSBasisAddSub(t *testing.T) {
	a := SBasis{{1, 2}, {-1, 3}}
	b := SBasis{{0, 5}}
	sum := a.Add(b)
	diffba := b.Sub(a)
	sampleEqual(t, sum.ValueAt, func(x float64) float64 {
		return a.ValueAt(x) + b.ValueAt(x)
	}, Interval{0, 1}, 10, 1e-13)
	sampleEqual(t, diffba.ValueAt, func(x float64) float64 {
		return b.ValueAt(x) - a.ValueAt(x)
	}, Interval{0, 1}, 10, 1e-13)

	if !a.Sub(a).IsZero() {
		t.Error("a − a must be the zero polynomial")
	}
}

func TestSBasisOffsetScale(t *testing.T) {
	a := SBasis{{1, 2}, {-1, 3}}
	sampleEqual(t, a.Offset(7).ValueAt, func(x float64) float64 {
		return a.ValueAt(x) + 7
	}, Interval{0, 1}, 10, 1e-13)
	sampleEqual(t, a.Scale(-2.5).ValueAt, func(x float64) float64 {
		return -2.5 * a.ValueAt(x)
	}, Interval{0, 1}, 10, 1e-13)

	if got := (SBasis{}).Offset(3).ValueAt(0.25); got != 3 {
		t.Errorf("offsetting the zero polynomial: got %g, want 3", got)
	}
}

func TestSBasisDerivative(t *testing.T) {
	sb := SBasis{{0.5, -2}, {1, 3}, {0, -1}}
	d := sb.Derivative()
	const delta = 1e-6
	for i := 0; i < 11; i++ {
		x := float64(i) / 10
		approx := (sb.ValueAt(x+delta) - sb.ValueAt(x-delta)) / (2 * delta)
		assertNear(t, approx, d.ValueAt(x), 1e-6)
	}
}

func TestSBasisIntegral(t *testing.T) {
	sb := SBasis{{0.5, -2}, {1, 3}}
	in := sb.Integral()
	// The fundamental theorem, sampled.
	sampleEqual(t, in.Derivative().ValueAt, sb.ValueAt, Interval{0, 1}, 20, 1e-10)
}

func TestSBasisCompose(t *testing.T) {
	f := SBasis{{1, 2}, {-1, 3}}
	g := SBasis{{0.2, 0.9}, {0.5, -0.5}}
	fg := f.Compose(g)
	sampleEqual(t, fg.ValueAt, func(x float64) float64 {
		return f.ValueAt(g.ValueAt(x))
	}, Interval{0, 1}, 20, 1e-12)
}

func TestSBasisPortion(t *testing.T) {
	f := SBasis{{1, 2}, {-1, 3}}
	p := f.Portion(0.25, 0.75)
	sampleEqual(t, p.ValueAt, func(x float64) float64 {
		return f.ValueAt(0.25 + 0.5*x)
	}, Interval{0, 1}, 20, 1e-12)

	// Extrapolating portions reach outside [0, 1].
	e := f.Portion(-1, 2)
	sampleEqual(t, e.ValueAt, func(x float64) float64 {
		return f.ValueAt(-1 + 3*x)
	}, Interval{0, 1}, 20, 1e-12)
}

func TestSBasisRootsLinear(t *testing.T) {
	r := (SBasis{{-1, 1}}).Roots()
	diff(t, []float64{0.5}, r, cmpopts.EquateApprox(0, 1e-12))

	if r := (SBasis{{1, 2}}).Roots(); len(r) != 0 {
		t.Errorf("positive function reported roots %v", r)
	}
}

func TestSBasisRootsQuadratic(t *testing.T) {
	// t(1−t) − 0.09 has roots at 0.1 and 0.9.
	sb := SBasis{{-0.09, -0.09}, {1, 1}}
	diff(t, []float64{0.1, 0.9}, sb.Roots(), cmpopts.EquateApprox(0, 1e-12))
}

func TestSBasisRootsHighDegree(t *testing.T) {
	// (t−0.2)(t−0.5)(t−0.8) · (1 + s²) keeps the same sign pattern as the
	// cubic but has power degree 7, forcing the bracketed solver.
	cubic := SBasis{{-0.2, 0.8}}.Mul(SBasis{{-0.5, 0.5}}).Mul(SBasis{{-0.8, 0.2}})
	bump := SBasis{{1, 1}, {0, 0}, {1, 1}}
	sb := cubic.Mul(bump)
	diff(t, []float64{0.2, 0.5, 0.8}, sb.Roots(), cmpopts.EquateApprox(0, 1e-9))
}

func TestSBasisRootsEndpoints(t *testing.T) {
	// t(1−t)(t−0.5)·(1+s²): roots at 0, 0.5, and 1, two of them at the
	// domain boundary.
	sb := SBasis{{0, 0}, {1, 1}}.Mul(SBasis{{-0.5, 0.5}}).Mul(SBasis{{1, 1}, {0, 0}, {1, 1}})
	diff(t, []float64{0, 0.5, 1}, sb.Roots(), cmpopts.EquateApprox(0, 1e-9))
}

func TestSBasisBoundsFast(t *testing.T) {
	sb := SBasis{{1, 2}, {-4, 3}, {2, -2}}
	b := sb.BoundsFast()
	for i := 0; i < 101; i++ {
		x := float64(i) / 100
		if v := sb.ValueAt(x); !b.Contains(v) {
			t.Errorf("value %g at %g escapes fast bounds %v", v, x, b)
		}
	}
}

func TestSBasisBoundsExact(t *testing.T) {
	// f(t) = t(1−t): range [0, 1/4], extremum in the interior.
	sb := SBasis{{0, 0}, {1, 1}}
	b := sb.BoundsExact()
	assertNear(t, 0, b.Lo, 1e-12)
	assertNear(t, 0.25, b.Hi, 1e-12)
}

func TestSBasisBoundsLocal(t *testing.T) {
	sb := SBasis{{0, 0}, {1, 1}}
	b := sb.BoundsLocal(Interval{0, 0.25})
	assertNear(t, 0, b.Lo, 1e-12)
	assertNear(t, 0.25*0.75, b.Hi, 1e-12)

	pt := sb.BoundsLocal(Interval{0.5, 0.5})
	assertNear(t, 0.25, pt.Lo, 1e-12)
	assertNear(t, 0.25, pt.Hi, 1e-12)
}

func TestSBasisNormalization(t *testing.T) {
	sb := SBasis{{1, 2}, {0, 0}}
	if got := sb.Add(SBasis{}); len(got) != 1 {
		t.Errorf("trailing zero coefficients survived: %v", got)
	}
	if got := sb.Sub(sb); len(got) != 0 {
		t.Errorf("cancellation left coefficients behind: %v", got)
	}
}
