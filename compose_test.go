package piecewise

import (
	"testing"
)

func TestCompose(t *testing.T) {
	f := twoRamp()
	// g sweeps [0, 2], crossing f's interior cut at t = 0.5.
	g := SBasis{{0, 2}}

	fg := Compose(f, g)
	if !fg.Invariants() {
		t.Fatal("invariants violated")
	}
	if fg.Len() != 2 {
		t.Fatalf("got %d segments (%v), want 2", fg.Len(), fg.Cuts)
	}
	assertNear(t, 0.5, fg.Cuts[1], 1e-9)
	sampleEqual(t, func(x float64) float64 {
		return f.ValueAt(g.ValueAt(x))
	}, fg.ValueAt, Interval{0, 1}, 50, 1e-9)
}

func TestComposeNonmonotonic(t *testing.T) {
	f := twoRamp()
	// g(t) = 2·(1 − (2t−1)²) rises from 0 to 2 and back, crossing f's
	// interior cut twice.
	g := SBasis{{0, 0}, {8, 8}}

	fg := Compose(f, g)
	if !fg.Invariants() {
		t.Fatal("invariants violated")
	}
	if fg.Len() != 3 {
		t.Fatalf("got %d segments (%v), want 3", fg.Len(), fg.Cuts)
	}
	sampleEqual(t, func(x float64) float64 {
		return f.ValueAt(g.ValueAt(x))
	}, fg.ValueAt, Interval{0, 1}, 60, 1e-9)
}

func TestComposeEndpointOnCut(t *testing.T) {
	// g starting or ending exactly on an interior cut of f must not be
	// mistaken for a missed crossing of that cut.
	var f Piecewise[SBasis]
	f.PushCut(0)
	f.Push(SBasis{{0, 1}}, 1)
	f.Push(SBasis{{1, 3}}, 2)
	f.Push(SBasis{{3, 4}}, 3)

	for _, g := range []SBasis{
		{{1, 2.5}}, // starts on the cut at 1, rises through the cut at 2
		{{2.5, 1}}, // falls through the cut at 2, ends on the cut at 1
	} {
		fg := Compose(f, g)
		if !fg.Invariants() {
			t.Fatal("invariants violated")
		}
		sampleEqual(t, func(x float64) float64 {
			return f.ValueAt(g.ValueAt(x))
		}, fg.ValueAt, Interval{0, 1}, 50, 1e-9)
	}
}

func TestComposeConstant(t *testing.T) {
	f := twoRamp()
	fg := Compose(f, SBasis{{1.5, 1.5}})
	sampleEqual(t, func(x float64) float64 {
		return f.ValueAt(1.5)
	}, fg.ValueAt, Interval{0, 1}, 10, 1e-12)
}

func TestComposeZeroInner(t *testing.T) {
	f := twoRamp()
	fg := Compose(f, SBasis{})
	diff(t, []float64{0, 1}, fg.Cuts)
	assertNear(t, f.ValueAt(0), fg.ValueAt(0.5), 1e-12)
}

func TestComposeEmptyOuter(t *testing.T) {
	var f Piecewise[SBasis]
	if !Compose(f, SBasis{{0, 1}}).Empty() {
		t.Error("composing the empty function must stay empty")
	}
}

func TestComposeOutOfDomain(t *testing.T) {
	f := twoRamp()
	// g's range [5, 6] lies entirely above f's domain; the last segment
	// extrapolates.
	fg := Compose(f, SBasis{{5, 6}})
	if fg.Len() != 1 {
		t.Fatalf("got %d segments, want 1", fg.Len())
	}
	sampleEqual(t, func(x float64) float64 {
		return f.ValueAt(5 + x)
	}, fg.ValueAt, Interval{0, 1}, 20, 1e-9)

	// And below the domain, the first one.
	fg = Compose(f, SBasis{{-3, -2}})
	sampleEqual(t, func(x float64) float64 {
		return f.ValueAt(-3 + x)
	}, fg.ValueAt, Interval{0, 1}, 20, 1e-9)
}

func TestComposePiecewise(t *testing.T) {
	f := twoRamp()
	var g Piecewise[SBasis]
	g.PushCut(0)
	g.Push(SBasis{{0, 2}}, 1)
	g.Push(SBasis{{2, 0}}, 3)

	fg := ComposePiecewise(f, g)
	if !fg.Invariants() {
		t.Fatal("invariants violated")
	}
	diff(t, Interval{0, 3}, fg.Domain())
	sampleEqual(t, func(x float64) float64 {
		return f.ValueAt(g.ValueAt(x))
	}, fg.ValueAt, Interval{0, 3}, 80, 1e-9)
}
