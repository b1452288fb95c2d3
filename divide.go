package piecewise

import (
	"slices"
	"sort"
)

// DivideTruncated divides a by b in the symmetric power basis, truncated
// after k+1 coefficient pairs. The quotient q satisfies a = q·b + s^(k+1)·r
// for some remainder r, so the error is confined to high powers of
// s = t(1−t) and vanishes at the endpoints.
//
// b must not vanish at 0 or 1; the division seeds each term with the
// pointwise quotients there.
func DivideTruncated(a, b SBasis, k int) SBasis {
	if len(b) == 0 || b[0].A0 == 0 || b[0].A1 == 0 {
		panic("piecewise: truncated division by a polynomial vanishing at an endpoint")
	}
	q := make(SBasis, k+1)
	r := make(SBasis, k+1)
	copy(r, a)
	for i := 0; i <= k; i++ {
		ci := Lin{r[i].A0 / b[0].A0, r[i].A1 / b[0].A1}
		q[i] = q[i].Add(ci)
		r = r.Sub(ci.SBasis().Mul(b).shifted(i))
		if len(r) < k+1 {
			r = append(r, make(SBasis, k+1-len(r))...)
		}
	}
	return q.normalized()
}

// maxDivideDepth bounds the adaptive subdivision of Divide. At the limit
// the current truncated quotient is accepted as-is.
const maxDivideDepth = 10

// Divide approximates the quotient a / b under the tolerance tol. The
// denominator is floored in magnitude at the threshold zero, so the result
// behaves like a / max(|b|, zero)·sign(b): where b dips inside (−zero,
// zero) the quotient stays finite and bounded by the numerator's magnitude
// over zero, instead of blowing up at b's roots.
//
// k is the truncation order of each local quotient (see
// [DivideTruncated]). Pieces whose residual a − q·b exceeds tol are
// bisected and re-divided, to a fixed depth limit. The result's cuts
// refine the union of a's and b's cuts with b's threshold crossings.
//
// The residual test is absolute, so the achieved relative error scales
// with the numerator's magnitude.
func Divide(a, b Piecewise[SBasis], tol float64, k int, zero float64) Piecewise[SBasis] {
	var result Piecewise[SBasis]
	if a.Empty() || b.Empty() {
		return result
	}

	// Cut the denominator where it crosses the dead zone boundaries, so
	// every aligned piece is either clear of zero or inside the zone, and
	// at its sign changes, so every zone piece flattens with a definite
	// sign.
	extra := Roots(b)
	extra = append(extra, Roots(AddScalar(b, -zero))...)
	extra = append(extra, Roots(AddScalar(b, zero))...)
	sort.Float64s(extra)
	extra = slices.Compact(extra)

	pa := Partition(Partition(a, b.Cuts), extra)
	pb := Partition(Partition(b, a.Cuts), extra)
	if pa.Len() != pb.Len() {
		panic("piecewise: mutual partition produced misaligned operands")
	}

	for i := 0; i < pa.Len(); i++ {
		q := dividePiece(pa.Segs[i], pb.Segs[i], tol, k, zero, maxDivideDepth)
		q.SetDomain(Interval{pa.Cuts[i], pa.Cuts[i+1]})
		result.Concat(q)
	}
	return result
}

// dividePiece divides a single aligned pair over its local [0, 1] domain.
func dividePiece(a, b SBasis, tol float64, k int, zero float64, depth int) Piecewise[SBasis] {
	bb := b.BoundsExact()
	// The threshold crossings bracketing a piece come from the numeric
	// root finder, so the bounds of a piece inside the dead zone can land
	// a few ulps outside it. Classify with relative slack, and floor any
	// piece whose denominator vanishes at an endpoint: the truncated
	// division cannot handle those, and after partitioning at b's roots
	// they only occur against the zone.
	band := zero * (1 + 1e-9)
	if (bb.Lo >= -band && bb.Hi <= band) || b.At0() == 0 || b.At1() == 0 {
		// Denominator inside the dead zone: divide by the constant
		// ±zero instead.
		s := zero
		if b.ValueAt(0.5) < 0 {
			s = -zero
		}
		return FromFragment(a.Scale(1 / s))
	}

	q := DivideTruncated(a, b, k)
	res := a.Sub(q.Mul(b)).BoundsFast()
	if (res.Lo >= -tol && res.Hi <= tol) || depth == 0 {
		return FromFragment(q)
	}

	left := dividePiece(a.Portion(0, 0.5), b.Portion(0, 0.5), tol, k, zero, depth-1)
	right := dividePiece(a.Portion(0.5, 1), b.Portion(0.5, 1), tol, k, zero, depth-1)
	left.ScaleDomain(0.5)
	right.ScaleDomain(0.5)
	right.OffsetDomain(0.5)
	left.Concat(right)
	return left
}

// DivideSBasis divides two bare s-basis segments, both taken over [0, 1].
func DivideSBasis(a, b SBasis, tol float64, k int, zero float64) Piecewise[SBasis] {
	return Divide(FromFragment(a), FromFragment(b), tol, k, zero)
}

// DividePwSBasis divides a piecewise numerator by a bare s-basis
// denominator. b is taken over [0, 1] and extrapolated across a's domain
// as needed.
func DividePwSBasis(a Piecewise[SBasis], b SBasis, tol float64, k int, zero float64) Piecewise[SBasis] {
	return Divide(a, FromFragment(b), tol, k, zero)
}

// DivideSBasisPw divides a bare s-basis numerator, taken over [0, 1] and
// extrapolated as needed, by a piecewise denominator.
func DivideSBasisPw(a SBasis, b Piecewise[SBasis], tol float64, k int, zero float64) Piecewise[SBasis] {
	return Divide(FromFragment(a), b, tol, k, zero)
}
