package piecewise

import (
	"cmp"
	"slices"
	"sort"
)

// pullbackCut is a point in g's domain at which the composition f∘g moves
// from one segment of f to another. level identifies the crossing: 0 for
// the domain endpoints' band markers, i+1 for a crossing of f's interior
// cut level i.
type pullbackCut struct {
	t     float64
	level int
}

// levelBand returns the index of the band between adjacent levels that
// contains v, which is also the index of f's segment active at value v.
// Ties break upward: a value exactly on a level belongs to the band above
// it, matching [Piecewise.SegN]'s treatment of times exactly on a cut.
func levelBand(levels []float64, v float64) int {
	return sort.Search(len(levels), func(i int) bool { return levels[i] > v })
}

// composePullback pulls f's interior cut levels back through g: for every
// level, the points of g's domain where g crosses it. The result is
// ascending and always bracketed by entries for 0 and 1 carrying the band
// of g's value there.
func composePullback(levels []float64, g SBasis) []pullbackCut {
	var cuts []pullbackCut
	for i, lv := range levels {
		for _, r := range g.Offset(-lv).Roots() {
			if r > 0 && r < 1 {
				cuts = append(cuts, pullbackCut{r, i + 1})
			}
		}
	}
	slices.SortFunc(cuts, func(a, b pullbackCut) int {
		return cmp.Compare(a.t, b.t)
	})
	cuts = slices.CompactFunc(cuts, func(a, b pullbackCut) bool {
		return a.t == b.t
	})
	cuts = slices.Insert(cuts, 0, pullbackCut{0, levelBand(levels, g.ValueAt(0))})
	return append(cuts, pullbackCut{1, levelBand(levels, g.ValueAt(1))})
}

// composeSeg composes segment idx of f with g, remapping g into the
// segment's local parameter (the chain rule for the segment's domain-to-
// [0, 1] reparametrization).
func composeSeg[T Fragment[T]](f Piecewise[T], idx int, g SBasis) T {
	t0 := f.Cuts[idx]
	width := f.Cuts[idx+1] - t0
	return f.Segs[idx].Compose(composeLin(Lin{-t0 / width, (1 - t0) / width}, g))
}

// Compose returns f∘g, the piecewise function t ↦ f(g(t)) over g's
// parameter [0, 1].
//
// f's internal cuts are pulled back through g with the root finder, so
// every resulting segment maps into a single segment of f. Where g's range
// leaves f's domain, the boundary segments extrapolate, mirroring
// [Piecewise.ValueAt]. Adjacent pullback points must map to the same or
// adjacent segments of f; a larger jump means the root finder missed a
// crossing, which panics rather than being silently patched over.
func Compose[T Fragment[T]](f Piecewise[T], g SBasis) Piecewise[T] {
	var result Piecewise[T]
	if f.Empty() {
		return result
	}
	if g.IsZero() {
		var zero T
		return FromFragment(zero.Const(f.ValueAt(0)))
	}
	if f.Len() == 1 {
		return FromFragment(composeSeg(f, 0, g))
	}

	// If g's range clears f's domain entirely, only a boundary segment of
	// f can be active.
	bs := g.BoundsFast()
	if f.Cuts[0] > bs.Hi || bs.Lo > f.Cuts[len(f.Cuts)-1] {
		idx := 0
		if bs.Hi >= f.Cuts[1] {
			idx = len(f.Cuts) - 2
		}
		return FromFragment(composeSeg(f, idx, g))
	}

	// The first and last cuts can be forgotten; outside them the boundary
	// segments extrapolate anyway.
	levels := f.Cuts[1 : len(f.Cuts)-1]
	pb := composePullback(levels, g)

	result.PushCut(0)
	for i := 0; i+1 < len(pb); i++ {
		cut, next := pb[i], pb[i+1]
		if d := cut.level - next.level; d < -1 || d > 1 {
			panic("piecewise: pullback skipped a cut level; the root finder missed a crossing")
		}
		idx := f.SegN(g.ValueAt(0.5 * (cut.t + next.t)))
		subG := g.Compose(Lin{cut.t, next.t}.SBasis())
		result.Push(composeSeg(f, idx, subG), next.t)
	}
	return result
}

// ComposePiecewise returns f∘g for piecewise g: f is composed with each
// segment of g independently, each result is retargeted onto that
// segment's cut interval, and the pieces are concatenated in order. The
// splices are domain splices; no continuity is enforced beyond what f and
// g already provide.
func ComposePiecewise[T Fragment[T]](f Piecewise[T], g Piecewise[SBasis]) Piecewise[T] {
	var result Piecewise[T]
	for i := range g.Segs {
		fgi := Compose(f, g.Segs[i])
		fgi.SetDomain(Interval{g.Cuts[i], g.Cuts[i+1]})
		result.Concat(fgi)
	}
	return result
}
