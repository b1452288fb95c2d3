package piecewise

import "slices"

// Derivative returns the derivative of a with respect to global time. Each
// segment's derivative is divided by the segment's domain width, the chain
// rule for the global-to-local reparametrization. Cuts are unchanged.
func Derivative[T Fragment[T]](a Piecewise[T]) Piecewise[T] {
	ret := Piecewise[T]{
		Cuts: slices.Clone(a.Cuts),
		Segs: make([]T, a.Len()),
	}
	for i := range a.Segs {
		ret.Segs[i] = a.Segs[i].Derivative().Scale(1 / (a.Cuts[i+1] - a.Cuts[i]))
	}
	return ret
}

// Integral returns an antiderivative of a with respect to global time.
// Each segment's integral is scaled by the segment's domain width and
// shifted so it starts where the previous segment ended, producing a
// continuous antiderivative. The integration constant is seeded with the
// first segment's start value.
func Integral[T Fragment[T]](a Piecewise[T]) Piecewise[T] {
	ret := Piecewise[T]{
		Cuts: slices.Clone(a.Cuts),
		Segs: make([]T, a.Len()),
	}
	if a.Empty() {
		return ret
	}
	c := a.Segs[0].At0()
	for i := range a.Segs {
		seg := a.Segs[i].Integral().Scale(a.Cuts[i+1] - a.Cuts[i])
		seg = seg.Offset(c - seg.At0())
		ret.Segs[i] = seg
		c = seg.At1()
	}
	return ret
}

// Roots returns the roots of pw in global time, aggregating each segment's
// local roots through the affine segment-to-domain map. Roots are not
// deduplicated across segment boundaries: a root exactly at a cut may be
// reported twice, once from each adjacent segment.
func Roots[T Fragment[T]](pw Piecewise[T]) []float64 {
	var ret []float64
	for i := range pw.Segs {
		for _, r := range pw.Segs[i].Roots() {
			ret = append(ret, r*(pw.Cuts[i+1]-pw.Cuts[i])+pw.Cuts[i])
		}
	}
	return ret
}

// BoundsFast returns a cheap over-approximation of f's output range.
func BoundsFast[T Fragment[T]](f Piecewise[T]) Interval {
	if f.Empty() {
		return Interval{}
	}
	ret := f.Segs[0].BoundsFast()
	for i := 1; i < f.Len(); i++ {
		ret = ret.Union(f.Segs[i].BoundsFast())
	}
	return ret
}

// BoundsExact returns f's output range.
func BoundsExact[T Fragment[T]](f Piecewise[T]) Interval {
	if f.Empty() {
		return Interval{}
	}
	ret := f.Segs[0].BoundsExact()
	for i := 1; i < f.Len(); i++ {
		ret = ret.Union(f.Segs[i].BoundsExact())
	}
	return ret
}

// BoundsLocal returns f's output range over the global time interval m. An
// empty m yields the single value at m.Lo.
func BoundsLocal[T Fragment[T]](f Piecewise[T], m Interval) Interval {
	if f.Empty() {
		return Interval{}
	}
	if m.IsEmpty() {
		v := f.ValueAt(m.Lo)
		return Interval{v, v}
	}

	fi, ti := f.SegN(m.Lo), f.SegN(m.Hi)
	ft, tt := f.SegT(m.Lo, fi), f.SegT(m.Hi, ti)

	if fi == ti {
		return f.Segs[fi].BoundsLocal(Interval{ft, tt})
	}

	ret := f.Segs[fi].BoundsLocal(Interval{ft, 1})
	for i := fi + 1; i < ti; i++ {
		ret = ret.Union(f.Segs[i].BoundsExact())
	}
	if tt != 0 {
		ret = ret.Union(f.Segs[ti].BoundsLocal(Interval{0, tt}))
	}
	return ret
}
