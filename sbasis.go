package piecewise

import (
	"fmt"
	"strings"
)

// SBasis is a polynomial in the symmetric power basis: a sum of linear
// functions weighted by powers of s = t(1−t),
//
//	f(t) = Σ ((1−t)·sb[i].A0 + t·sb[i].A1) · s(t)^i
//
// over the local parameter t ∈ [0, 1]. The representation keeps the
// endpoint values in the first coefficient pair and is closed under
// multiplication and composition, which is what the piecewise algebra is
// built on.
//
// The zero-length slice is the zero polynomial. Methods treat the receiver
// as immutable and return new values.
type SBasis []Lin

var _ Fragment[SBasis] = SBasis{}

// ValueAt evaluates the polynomial at t.
func (sb SBasis) ValueAt(t float64) float64 {
	s := t * (1 - t)
	var p0, p1 float64
	for i := len(sb) - 1; i >= 0; i-- {
		p0 = p0*s + sb[i].A0
		p1 = p1*s + sb[i].A1
	}
	return (1-t)*p0 + t*p1
}

// At0 returns the value at t = 0.
func (sb SBasis) At0() float64 {
	if len(sb) == 0 {
		return 0
	}
	return sb[0].A0
}

// At1 returns the value at t = 1.
func (sb SBasis) At1() float64 {
	if len(sb) == 0 {
		return 0
	}
	return sb[0].A1
}

// IsZero reports whether the polynomial is identically zero.
func (sb SBasis) IsZero() bool {
	for _, l := range sb {
		if !l.IsZero() {
			return false
		}
	}
	return true
}

func (sb SBasis) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, l := range sb {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%g, %g)", l.A0, l.A1)
	}
	b.WriteByte('}')
	return b.String()
}

// at returns coefficient i, or the zero coefficient past the end.
func (sb SBasis) at(i int) Lin {
	if i >= len(sb) {
		return Lin{}
	}
	return sb[i]
}

// normalized strips trailing zero coefficients.
func (sb SBasis) normalized() SBasis {
	n := len(sb)
	for n > 0 && sb[n-1].IsZero() {
		n--
	}
	return sb[:n]
}

// shifted multiplies the polynomial by s^k.
func (sb SBasis) shifted(k int) SBasis {
	if len(sb) == 0 {
		return nil
	}
	out := make(SBasis, k+len(sb))
	copy(out[k:], sb)
	return out
}

// Add returns the sum sb + o.
func (sb SBasis) Add(o SBasis) SBasis {
	out := make(SBasis, max(len(sb), len(o)))
	for i := range out {
		out[i] = sb.at(i).Add(o.at(i))
	}
	return out.normalized()
}

// Sub returns the difference sb − o.
func (sb SBasis) Sub(o SBasis) SBasis {
	out := make(SBasis, max(len(sb), len(o)))
	for i := range out {
		out[i] = sb.at(i).Sub(o.at(i))
	}
	return out.normalized()
}

// Neg returns −sb.
func (sb SBasis) Neg() SBasis {
	out := make(SBasis, len(sb))
	for i, l := range sb {
		out[i] = l.Neg()
	}
	return out
}

// Offset returns sb + v.
func (sb SBasis) Offset(v float64) SBasis {
	if len(sb) == 0 {
		return SBasis{{v, v}}.normalized()
	}
	out := make(SBasis, len(sb))
	copy(out, sb)
	out[0] = out[0].Offset(v)
	return out.normalized()
}

// Scale returns sb · v. Dividing by a scalar is Scale(1/v); v = 0 is the
// caller's responsibility.
func (sb SBasis) Scale(v float64) SBasis {
	out := make(SBasis, len(sb))
	for i, l := range sb {
		out[i] = l.Scale(v)
	}
	return out.normalized()
}

// Mul returns the product sb · o.
//
// The product of two linear coefficients splits into a linear part and an
// s-weighted correction: Lin(a0,a1)·Lin(b0,b1) = Lin(a0·b0, a1·b1) −
// (a1−a0)(b1−b0)·s, which is what keeps the basis closed.
func (sb SBasis) Mul(o SBasis) SBasis {
	if sb.IsZero() || o.IsZero() {
		return nil
	}
	out := make(SBasis, len(sb)+len(o))
	for j := range o {
		for i := j; i < len(sb)+j; i++ {
			tri := o[j].tri() * sb[i-j].tri()
			out[i+1].A0 -= tri
			out[i+1].A1 -= tri
			out[i].A0 += o[j].A0 * sb[i-j].A0
			out[i].A1 += o[j].A1 * sb[i-j].A1
		}
	}
	return out.normalized()
}

// composeLin evaluates the linear function l at g: l∘g as a polynomial.
func composeLin(l Lin, g SBasis) SBasis {
	return g.Scale(l.tri()).Offset(l.A0)
}

// Compose returns sb∘g, the polynomial t ↦ sb(g(t)).
func (sb SBasis) Compose(g SBasis) SBasis {
	// s evaluated at g: g·(1−g).
	sg := g.Sub(g.Mul(g))
	var r SBasis
	for i := len(sb) - 1; i >= 0; i-- {
		r = r.Mul(sg).Add(composeLin(sb[i], g))
	}
	return r
}

// Portion returns the polynomial restricted to [from, to], rescaled to the
// local parameter [0, 1]. from and to may lie outside [0, 1], in which case
// the polynomial is extrapolated.
func (sb SBasis) Portion(from, to float64) SBasis {
	return sb.Compose(Lin{from, to}.SBasis())
}

// Const returns the constant fragment with value v. The receiver is used
// for method dispatch only; see [Fragment].
func (SBasis) Const(v float64) SBasis {
	return SBasis{{v, v}}.normalized()
}

// Derivative returns the derivative with respect to the local parameter.
func (sb SBasis) Derivative() SBasis {
	out := make(SBasis, len(sb))
	for k := range sb {
		d := float64(2*k+1) * sb[k].tri()
		out[k].A0 = d
		out[k].A1 = d
		if k+1 < len(sb) {
			out[k].A0 += float64(k+1) * sb[k+1].A0
			out[k].A1 -= float64(k+1) * sb[k+1].A1
		}
	}
	return out.normalized()
}

// Integral returns an antiderivative with respect to the local parameter.
// The integration constant is arbitrary; callers that need a specific
// start value should offset the result.
func (sb SBasis) Integral() SBasis {
	out := make(SBasis, len(sb)+1)
	for k := 1; k < len(sb)+1; k++ {
		ahat := -sb[k-1].tri() / float64(2*k)
		out[k] = Lin{ahat, ahat}
	}
	var aTri float64
	for k := len(sb) - 1; k >= 0; k-- {
		aTri = (sb[k].hat() + float64(k+1)*0.5*aTri) / float64(2*k+1)
		out[k].A0 -= 0.5 * aTri
		out[k].A1 += 0.5 * aTri
	}
	return out.normalized()
}

// BoundsFast returns a cheap over-approximation of the range over [0, 1],
// exploiting s^i ∈ [0, 4^−i].
func (sb SBasis) BoundsFast() Interval {
	if len(sb) == 0 {
		return Interval{}
	}
	iv := sb[0].Bounds()
	scale := 1.0
	for i := 1; i < len(sb); i++ {
		scale *= 0.25
		b := sb[i].Bounds()
		if lo := b.Lo * scale; lo < 0 {
			iv.Lo += lo
		}
		if hi := b.Hi * scale; hi > 0 {
			iv.Hi += hi
		}
	}
	return iv
}

// BoundsExact returns the range over [0, 1], evaluating at the endpoints
// and at the derivative's roots.
func (sb SBasis) BoundsExact() Interval {
	if len(sb) == 0 {
		return Interval{}
	}
	iv := IntervalOf(sb.At0(), sb.At1())
	for _, t := range sb.Derivative().Roots() {
		iv = iv.ExtendTo(sb.ValueAt(t))
	}
	return iv
}

// BoundsLocal returns the range over the sub-interval iv of [0, 1]. An
// empty iv yields the single value at iv.Lo.
func (sb SBasis) BoundsLocal(iv Interval) Interval {
	if len(sb) == 0 {
		return Interval{}
	}
	if iv.IsEmpty() {
		v := sb.ValueAt(iv.Lo)
		return Interval{v, v}
	}
	return sb.Portion(iv.Lo, iv.Hi).BoundsExact()
}

// powerCoefficients expands the polynomial into the power basis,
// c[0] + c[1]·t + c[2]·t² + …, with trailing zero coefficients stripped.
func (sb SBasis) powerCoefficients() []float64 {
	s := []float64{0, 1, -1}
	var p []float64
	for i := len(sb) - 1; i >= 0; i-- {
		p = polyAdd(polyMul(p, s), []float64{sb[i].A0, sb[i].tri()})
	}
	return polyTrim(p)
}

func polyMul(p, q []float64) []float64 {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	out := make([]float64, len(p)+len(q)-1)
	for i, pv := range p {
		for j, qv := range q {
			out[i+j] += pv * qv
		}
	}
	return out
}

func polyAdd(p, q []float64) []float64 {
	out := make([]float64, max(len(p), len(q)))
	copy(out, p)
	for i, qv := range q {
		out[i] += qv
	}
	return out
}

func polyTrim(p []float64) []float64 {
	n := len(p)
	for n > 0 && p[n-1] == 0 {
		n--
	}
	return p[:n]
}

// Roots returns the roots of the polynomial in [0, 1], in ascending order.
//
// Power degrees up to three are solved in closed form. Higher degrees are
// bracketed between the roots of the derivative, within which the
// polynomial is monotonic, and each sign change is polished with
// [SolveITP]. Roots the polynomial touches without crossing can be missed,
// except where they coincide with a derivative root or an endpoint.
//
// The identically zero polynomial reports no roots.
func (sb SBasis) Roots() []float64 {
	p := sb.powerCoefficients()
	switch len(p) {
	case 0, 1:
		return nil
	case 2:
		t := -p[0] / p[1]
		if t >= 0 && t <= 1 {
			return []float64{t}
		}
		return nil
	case 3:
		rs, n := SolveQuadratic(p[0], p[1], p[2])
		return filterUnitRoots(rs[:n])
	case 4:
		rs, n := SolveCubic(p[0], p[1], p[2], p[3])
		return filterUnitRoots(rs[:n])
	default:
		return sb.rootsBracketed()
	}
}

// filterUnitRoots keeps the roots inside [0, 1], sorted ascending.
func filterUnitRoots(rs []float64) []float64 {
	var out []float64
	for _, r := range rs {
		if r >= 0 && r <= 1 {
			out = append(out, r)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

const rootEpsilon = 1e-12

// rootsBracketed finds roots of a high-degree polynomial by splitting
// [0, 1] at the derivative's roots and solving within each monotonic
// bracket.
func (sb SBasis) rootsBracketed() []float64 {
	brackets := make([]float64, 0, 8)
	brackets = append(brackets, 0)
	for _, t := range sb.Derivative().Roots() {
		if t > brackets[len(brackets)-1] && t < 1 {
			brackets = append(brackets, t)
		}
	}
	brackets = append(brackets, 1)

	var out []float64
	for i := 0; i+1 < len(brackets); i++ {
		lo, hi := brackets[i], brackets[i+1]
		ylo, yhi := sb.ValueAt(lo), sb.ValueAt(hi)
		if ylo == 0 {
			out = append(out, lo)
			continue
		}
		if ylo*yhi >= 0 {
			continue
		}
		k1 := 0.2 / (hi - lo)
		var r float64
		if ylo < 0 {
			r = SolveITP(sb.ValueAt, lo, hi, rootEpsilon, 1, k1, ylo, yhi)
		} else {
			neg := func(t float64) float64 { return -sb.ValueAt(t) }
			r = SolveITP(neg, lo, hi, rootEpsilon, 1, k1, -ylo, -yhi)
		}
		out = append(out, r)
	}
	if sb.ValueAt(1) == 0 {
		out = append(out, 1)
	}
	return out
}
