package piecewise

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, want, got, epsilon float64) {
	t.Helper()
	if math.Abs(want-got) > epsilon {
		t.Errorf("got %v, want %v (within %g)", got, want, epsilon)
	}
}

// lin returns the piecewise lift of a single linear segment over [0, 1].
func lin(a0, a1 float64) Piecewise[SBasis] {
	return FromFragment(Lin{a0, a1}.SBasis())
}

// sampleEqual checks that two functions agree at n+1 uniform samples of iv.
func sampleEqual(t *testing.T, f, g func(float64) float64, iv Interval, n int, epsilon float64) {
	t.Helper()
	for i := 0; i <= n; i++ {
		x := iv.Lerp(float64(i) / float64(n))
		if math.Abs(f(x)-g(x)) > epsilon {
			t.Errorf("functions differ at %g: %g vs %g", x, f(x), g(x))
		}
	}
}
