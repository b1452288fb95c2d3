package piecewise

import (
	"fmt"
	"sort"
	"strings"
)

// Fragment is the capability contract for a single segment of a
// [Piecewise] function: a polynomial-like fragment over the local
// parameter [0, 1] that supports evaluation, calculus, algebra,
// root-finding, and bound computation. [SBasis] is the canonical
// implementation.
//
// Methods must treat the receiver as immutable and return new values. The
// zero value of an implementing type must be its zero function.
type Fragment[T any] interface {
	// ValueAt evaluates the fragment at the local parameter t. Values
	// outside [0, 1] extrapolate.
	ValueAt(t float64) float64
	// At0 and At1 return the values at the local endpoints.
	At0() float64
	At1() float64

	// Portion returns the fragment restricted to [from, to], rescaled to
	// the local parameter [0, 1]. The range may extend beyond [0, 1].
	Portion(from, to float64) T

	// Derivative and Integral differentiate and antidifferentiate with
	// respect to the local parameter.
	Derivative() T
	Integral() T

	Add(o T) T
	Sub(o T) T
	Neg() T
	// Offset adds a constant to the fragment's output.
	Offset(v float64) T
	// Scale multiplies the fragment's output by a scalar.
	Scale(v float64) T
	Mul(o T) T

	// Compose returns the fragment evaluated at g, for g mapping into the
	// fragment's local parameter.
	Compose(g SBasis) T
	// Const returns a constant fragment with value v. The receiver is
	// used for method dispatch only; implementations must not read it.
	Const(v float64) T

	// Roots returns the fragment's roots in [0, 1], ascending.
	Roots() []float64

	BoundsFast() Interval
	BoundsExact() Interval
	BoundsLocal(iv Interval) Interval

	IsZero() bool
}

// Piecewise is a function defined piecewise by fragments of type T.
// Segs[i] covers the global interval from Cuts[i] to Cuts[i+1],
// reparametrized so the segment's local parameter runs over [0, 1].
//
// Invariants: Cuts is strictly increasing and len(Cuts) == len(Segs)+1,
// except for the empty function, where both are empty. The zero value is
// the empty function. Violating the invariants through direct field access
// is undefined behavior; [Piecewise.Invariants] checks them.
type Piecewise[T Fragment[T]] struct {
	Cuts []float64
	Segs []T
}

// FromFragment returns the piecewise function consisting of the single
// segment s over the domain [0, 1].
func FromFragment[T Fragment[T]](s T) Piecewise[T] {
	var pw Piecewise[T]
	pw.PushCut(0)
	pw.PushSeg(s)
	pw.PushCut(1)
	return pw
}

// Constant returns the constant function with value v over [0, 1].
func Constant(v float64) Piecewise[SBasis] {
	return FromFragment(SBasis{{v, v}})
}

func (pw Piecewise[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, seg := range pw.Segs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "[%g, %g): %v", pw.Cuts[i], pw.Cuts[i+1], seg)
	}
	b.WriteByte('}')
	return b.String()
}

// Len returns the number of segments.
func (pw Piecewise[T]) Len() int {
	return len(pw.Segs)
}

// Empty reports whether pw is the empty function.
func (pw Piecewise[T]) Empty() bool {
	return len(pw.Segs) == 0
}

// Push appends a segment and its closing cut in one step. It panics if the
// function isn't in a pushable state (one more cut than segments) or if to
// doesn't increase the last cut.
func (pw *Piecewise[T]) Push(s T, to float64) {
	if len(pw.Cuts)-len(pw.Segs) != 1 {
		panic("piecewise: push on function without open cut")
	}
	pw.PushSeg(s)
	pw.PushCut(to)
}

// PushCut appends a cut. It panics unless c is strictly greater than the
// current last cut.
func (pw *Piecewise[T]) PushCut(c float64) {
	if len(pw.Cuts) > 0 && c <= pw.Cuts[len(pw.Cuts)-1] {
		panic("piecewise: cuts must be strictly increasing")
	}
	pw.Cuts = append(pw.Cuts, c)
}

// PushSeg appends a segment.
func (pw *Piecewise[T]) PushSeg(s T) {
	pw.Segs = append(pw.Segs, s)
}

// SegN returns the index of the segment containing the global time t.
// Times before the first cut resolve to the first segment and times at or
// beyond the last cut to the last segment, so evaluation outside the
// domain extrapolates rather than failing.
func (pw Piecewise[T]) SegN(t float64) int {
	if t < pw.Cuts[0] {
		return 0
	}
	if t >= pw.Cuts[len(pw.Cuts)-1] {
		return len(pw.Segs) - 1
	}
	i := sort.SearchFloat64s(pw.Cuts, t)
	if pw.Cuts[i] == t {
		return i
	}
	return i - 1
}

// SegT maps the global time t to segment i's local parameter.
func (pw Piecewise[T]) SegT(t float64, i int) float64 {
	return (t - pw.Cuts[i]) / (pw.Cuts[i+1] - pw.Cuts[i])
}

// MapToDomain maps segment i's local parameter t back to global time.
func (pw Piecewise[T]) MapToDomain(t float64, i int) float64 {
	return (1-t)*pw.Cuts[i] + t*pw.Cuts[i+1]
}

// ValueAt evaluates the function at the global time t, extrapolating the
// boundary segments outside the domain.
func (pw Piecewise[T]) ValueAt(t float64) float64 {
	n := pw.SegN(t)
	return pw.Segs[n].ValueAt(pw.SegT(t, n))
}

// Domain returns the function's domain. It panics on the empty function.
func (pw Piecewise[T]) Domain() Interval {
	return Interval{pw.Cuts[0], pw.Cuts[len(pw.Cuts)-1]}
}

// OffsetDomain shifts the domain by o.
func (pw *Piecewise[T]) OffsetDomain(o float64) {
	if o == 0 {
		return
	}
	for i := range pw.Cuts {
		pw.Cuts[i] += o
	}
}

// ScaleDomain scales the domain by s. A scale of 0 collapses the function
// to the empty function; callers must not rely on shape surviving a
// degenerate scale. Negative scales would reverse the cut order and panic.
func (pw *Piecewise[T]) ScaleDomain(s float64) {
	if s < 0 {
		panic("piecewise: negative domain scale")
	}
	if s == 0 {
		pw.Cuts = nil
		pw.Segs = nil
		return
	}
	for i := range pw.Cuts {
		pw.Cuts[i] *= s
	}
}

// SetDomain remaps the domain onto dom. An empty dom collapses the
// function to the empty function.
func (pw *Piecewise[T]) SetDomain(dom Interval) {
	if pw.Empty() {
		return
	}
	if dom.IsEmpty() {
		pw.Cuts = nil
		pw.Segs = nil
		return
	}
	cf := pw.Cuts[0]
	o := dom.Lo
	s := dom.Extent() / (pw.Cuts[len(pw.Cuts)-1] - cf)
	for i := range pw.Cuts {
		pw.Cuts[i] = (pw.Cuts[i]-cf)*s + o
	}
}

// Concat appends other's segments after pw's, shifting other's cuts so its
// first cut lands on pw's last cut. The splice is purely in the domain; a
// value discontinuity at the seam is allowed.
func (pw *Piecewise[T]) Concat(other Piecewise[T]) {
	if other.Empty() {
		return
	}
	if pw.Empty() {
		pw.Cuts = append(pw.Cuts, other.Cuts...)
		pw.Segs = append(pw.Segs, other.Segs...)
		return
	}
	pw.Segs = append(pw.Segs, other.Segs...)
	t := pw.Cuts[len(pw.Cuts)-1] - other.Cuts[0]
	for i := 0; i < other.Len(); i++ {
		pw.PushCut(other.Cuts[i+1] + t)
	}
}

// ContinuousConcat appends other like [Piecewise.Concat], additionally
// offsetting every appended segment's output by the difference between
// pw's end value and other's start value, so the splice is continuous.
func (pw *Piecewise[T]) ContinuousConcat(other Piecewise[T]) {
	if other.Empty() {
		return
	}
	if pw.Empty() {
		pw.Cuts = append(pw.Cuts, other.Cuts...)
		for _, s := range other.Segs {
			pw.PushSeg(s)
		}
		return
	}
	y := pw.Segs[len(pw.Segs)-1].At1() - other.Segs[0].At0()
	t := pw.Cuts[len(pw.Cuts)-1] - other.Cuts[0]
	for i := 0; i < other.Len(); i++ {
		pw.Push(other.Segs[i].Offset(y), other.Cuts[i+1]+t)
	}
}

// Invariants reports whether the function satisfies its basic invariants:
// strictly increasing cuts and one more cut than segments, or dual
// emptiness for the empty function.
func (pw Piecewise[T]) Invariants() bool {
	if len(pw.Segs)+1 != len(pw.Cuts) && !(len(pw.Segs) == 0 && len(pw.Cuts) == 0) {
		return false
	}
	for i := range pw.Segs {
		if pw.Cuts[i] >= pw.Cuts[i+1] {
			return false
		}
	}
	return true
}
