package piecewise

import "slices"

// Add returns the elementwise sum a + b. Both operands are first
// partitioned onto the union of each other's cuts, then combined pairwise;
// the result's cuts are the refined set.
func Add[T Fragment[T]](a, b Piecewise[T]) Piecewise[T] {
	return combine(a, b, T.Add)
}

// Sub returns the elementwise difference a − b.
func Sub[T Fragment[T]](a, b Piecewise[T]) Piecewise[T] {
	return combine(a, b, T.Sub)
}

// Mul returns the elementwise product a · b.
func Mul[T Fragment[T]](a, b Piecewise[T]) Piecewise[T] {
	return combine(a, b, T.Mul)
}

func combine[T Fragment[T]](a, b Piecewise[T], op func(T, T) T) Piecewise[T] {
	pa := Partition(a, b.Cuts)
	pb := Partition(b, a.Cuts)
	if pa.Len() != pb.Len() {
		panic("piecewise: mutual partition produced misaligned operands")
	}
	ret := Piecewise[T]{Cuts: slices.Clone(pa.Cuts)}
	for i := 0; i < pa.Len(); i++ {
		ret.PushSeg(op(pa.Segs[i], pb.Segs[i]))
	}
	return ret
}

// Neg returns −a. Cuts are unchanged.
func Neg[T Fragment[T]](a Piecewise[T]) Piecewise[T] {
	return mapSegs(a, T.Neg)
}

// AddScalar returns a + v, applied segment-wise with cuts unchanged. The
// empty function stays empty; see [Piecewise.OffsetValue] for the in-place
// variant that synthesizes a domain instead.
func AddScalar[T Fragment[T]](a Piecewise[T], v float64) Piecewise[T] {
	return mapSegs(a, func(s T) T { return s.Offset(v) })
}

// SubScalar returns a − v.
func SubScalar[T Fragment[T]](a Piecewise[T], v float64) Piecewise[T] {
	return mapSegs(a, func(s T) T { return s.Offset(-v) })
}

// MulScalar returns a · v.
func MulScalar[T Fragment[T]](a Piecewise[T], v float64) Piecewise[T] {
	return mapSegs(a, func(s T) T { return s.Scale(v) })
}

// DivScalar returns a / v. Division by zero is not guarded; it yields
// infinities or NaNs in the segment outputs, not a panic.
func DivScalar[T Fragment[T]](a Piecewise[T], v float64) Piecewise[T] {
	return mapSegs(a, func(s T) T { return s.Scale(1 / v) })
}

func mapSegs[T Fragment[T]](a Piecewise[T], op func(T) T) Piecewise[T] {
	ret := Piecewise[T]{Cuts: slices.Clone(a.Cuts)}
	for _, s := range a.Segs {
		ret.PushSeg(op(s))
	}
	return ret
}

// OffsetValue adds v to the function's output in place. Offsetting the
// empty function synthesizes a single constant segment over [0, 1].
func (pw *Piecewise[T]) OffsetValue(v float64) {
	if pw.Empty() {
		var zero T
		pw.PushCut(0)
		pw.Push(zero.Const(v), 1)
		return
	}
	for i := range pw.Segs {
		pw.Segs[i] = pw.Segs[i].Offset(v)
	}
}

// ScaleValue multiplies the function's output by v in place. Cuts are
// unchanged; the empty function stays empty. Dividing in place is
// ScaleValue(1/v), with v = 0 the caller's responsibility.
func (pw *Piecewise[T]) ScaleValue(v float64) {
	for i := range pw.Segs {
		pw.Segs[i] = pw.Segs[i].Scale(v)
	}
}
