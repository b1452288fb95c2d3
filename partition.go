package piecewise

import "slices"

// ElemPortion returns a portion of segment i of pw, with from and to given
// as global times. The range may extend beyond the segment's own interval,
// in which case the fragment extrapolates.
func ElemPortion[T Fragment[T]](pw Piecewise[T], i int, from, to float64) T {
	if i >= pw.Len() {
		panic("piecewise: segment index out of range")
	}
	rwidth := 1 / (pw.Cuts[i+1] - pw.Cuts[i])
	return pw.Segs[i].Portion((from-pw.Cuts[i])*rwidth, (to-pw.Cuts[i])*rwidth)
}

// Partition further subdivides pw such that there is a cut at every value
// in c. c must be sorted ascending and free of duplicates; this is a
// precondition, not checked. Values of c outside pw's domain extend the
// boundary segments by extrapolated portions. Values coinciding with
// existing cuts are absorbed without creating zero-width segments.
//
// For two functions a and b, Partition(a, b.Cuts) and Partition(b, a.Cuts)
// produce identical cut sequences, which is what makes the elementwise
// binary operators well-defined.
func Partition[T Fragment[T]](pw Piecewise[T], c []float64) Piecewise[T] {
	if len(c) == 0 {
		return Piecewise[T]{
			Cuts: slices.Clone(pw.Cuts),
			Segs: slices.Clone(pw.Segs),
		}
	}

	var ret Piecewise[T]
	ret.Cuts = make([]float64, 0, len(c)+len(pw.Cuts))
	ret.Segs = make([]T, 0, len(c)+len(pw.Cuts))

	if pw.Empty() {
		// A partitioned empty function has zero segments between the
		// given cuts.
		ret.Cuts = append(ret.Cuts, c...)
		var zero T
		for i := 0; i < len(c)-1; i++ {
			ret.PushSeg(zero)
		}
		return ret
	}

	// Segment and cut indices.
	si, ci := 0, 0

	// Cuts before pw's domain extrapolate portions of the first segment.
	for ci < len(c) && c[ci] < pw.Cuts[0] {
		isLast := ci == len(c)-1 || c[ci+1] >= pw.Cuts[0]
		to := pw.Cuts[0]
		if !isLast {
			to = c[ci+1]
		}
		ret.PushCut(c[ci])
		ret.PushSeg(ElemPortion(pw, 0, c[ci], to))
		ci++
	}

	ret.PushCut(pw.Cuts[0])
	prev := pw.Cuts[0]
	for si < pw.Len() && ci <= len(c) {
		switch {
		case ci == len(c) && prev <= pw.Cuts[si]:
			// Cuts exhausted; copy the rest verbatim.
			ret.Segs = append(ret.Segs, pw.Segs[si:]...)
			ret.Cuts = append(ret.Cuts, pw.Cuts[si+1:]...)
			return ret
		case ci == len(c) || c[ci] >= pw.Cuts[si+1]:
			// No more cuts within this segment; finalize it.
			if prev > pw.Cuts[si] {
				ret.PushSeg(pw.Segs[si].Portion(pw.SegT(prev, si), 1))
			} else {
				ret.PushSeg(pw.Segs[si])
			}
			ret.PushCut(pw.Cuts[si+1])
			prev = pw.Cuts[si+1]
			si++
		case c[ci] == pw.Cuts[si]:
			// Coincident with an existing cut, already finalized above.
			ci++
		default:
			ret.Push(ElemPortion(pw, si, prev, c[ci]), c[ci])
			prev = c[ci]
			ci++
		}
	}

	// Cuts extend past pw's domain; extrapolate the last segment.
	for ; ci < len(c); ci++ {
		if c[ci] > prev {
			ret.Push(ElemPortion(pw, pw.Len()-1, prev, c[ci]), c[ci])
			prev = c[ci]
		}
	}
	return ret
}

// Portion returns the part of pw over [min(from, to), max(from, to)] as a
// new function whose cuts run low to high. It returns the empty function
// if pw is empty or from == to. Ranges beyond pw's domain extrapolate the
// boundary segments, mirroring [Piecewise.ValueAt].
func Portion[T Fragment[T]](pw Piecewise[T], from, to float64) Piecewise[T] {
	var ret Piecewise[T]
	if pw.Empty() || from == to {
		return ret
	}

	if to < from {
		from, to = to, from
	}

	i := pw.SegN(from)
	ret.PushCut(from)
	if i == pw.Len()-1 || to <= pw.Cuts[i+1] {
		// from and to inhabit the same segment.
		ret.Push(ElemPortion(pw, i, from, to), to)
		return ret
	}
	ret.PushSeg(pw.Segs[i].Portion(pw.SegT(from, i), 1))
	i++
	fi := pw.SegN(to)
	if pw.Cuts[fi] == to {
		// to lands exactly on a cut; it closes the segment to its left.
		fi--
	}

	ret.Segs = append(ret.Segs, pw.Segs[i:fi]...)
	ret.Cuts = append(ret.Cuts, pw.Cuts[i:fi+1]...)

	ret.PushSeg(pw.Segs[fi].Portion(0, pw.SegT(to, fi)))
	if to != ret.Cuts[len(ret.Cuts)-1] {
		ret.PushCut(to)
	}
	return ret
}

// RemoveShortCuts drops every segment narrower than tol, leaving gaps
// spliced shut by the surviving cuts. If every segment is dropped the
// result is the empty function.
func RemoveShortCuts[T Fragment[T]](pw Piecewise[T], tol float64) Piecewise[T] {
	var ret Piecewise[T]
	if pw.Empty() {
		return ret
	}
	ret.PushCut(pw.Cuts[0])
	for i := 0; i < pw.Len(); i++ {
		if pw.Cuts[i+1]-pw.Cuts[i] >= tol {
			ret.Push(pw.Segs[i], pw.Cuts[i+1])
		}
	}
	if ret.Empty() {
		return Piecewise[T]{}
	}
	return ret
}

// RemoveShortCutsExtending drops every segment narrower than tol and
// stretches the surviving neighbors across the removed ranges, keeping the
// domain gap-free. If every segment is dropped the result is the empty
// function.
func RemoveShortCutsExtending[T Fragment[T]](pw Piecewise[T], tol float64) Piecewise[T] {
	var ret Piecewise[T]
	if pw.Empty() {
		return ret
	}
	ret.PushCut(pw.Cuts[0])
	last := pw.Cuts[0]
	for i := 0; i < pw.Len(); i++ {
		if pw.Cuts[i+1]-pw.Cuts[i] >= tol {
			ret.Push(ElemPortion(pw, i, last, pw.Cuts[i+1]), pw.Cuts[i+1])
			last = pw.Cuts[i+1]
		}
	}
	if ret.Empty() {
		return Piecewise[T]{}
	}
	return ret
}
