// Package piecewise provides a symbolic piecewise-polynomial function
// algebra: functions defined by a sequence of polynomial segments stitched
// together at breakpoints ("cuts"), together with the arithmetic, calculus,
// composition, and root-finding operations needed to manipulate them. It is
// intended as the analytical core for computational-geometry algorithms
// (intersection, offsetting, curvature), but it is general enough to be
// useful wherever piecewise-defined scalar functions appear.
//
// # Fragments and the symmetric power basis
//
// [Piecewise] is generic over its segment type. The [Fragment] interface is
// the capability contract a segment type must satisfy: evaluation over a
// local parameter in [0, 1], derivative, integral, algebraic operators,
// root-finding, and bound computation.
//
// The package ships [SBasis], a polynomial in the symmetric power basis.
// An s-basis polynomial is a sum of linear functions weighted by powers of
// s = t(1−t):
//
//	f(t) = Σ ((1−t)·a[i] + t·b[i]) · s(t)^i
//
// The basis has two properties that make it attractive for geometric work:
// the first coefficient pair carries the function's endpoint values
// directly, and composition and multiplication stay closed and cheap.
// [Lin] is the degree-one building block, a plain linear interpolation
// between two values.
//
// # Piecewise functions
//
// A [Piecewise] holds an ordered, strictly increasing slice of cuts and one
// fewer segments; segment i covers the global interval from Cuts[i] to
// Cuts[i+1], reparametrized to a local [0, 1]. The zero value is the empty
// function. Evaluation outside the domain extrapolates the boundary
// segment; see [Piecewise.SegN].
//
// The algebra is built in layers:
//
//   - [Partition] refines a function so an external set of points all
//     become cuts; [Portion] extracts a sub-domain. Partition is what makes
//     binary operators well-defined: Partition(a, b.Cuts) and
//     Partition(b, a.Cuts) agree on their cut sequences.
//   - [Add], [Sub], and [Mul] combine two functions segment-by-segment
//     after mutual partitioning. Scalar variants operate per segment with
//     cuts unchanged.
//   - [Divide] approximates a quotient under an explicit tolerance, with a
//     zero threshold that keeps the result finite where the denominator
//     dips toward zero.
//   - [Compose] computes f∘g by pulling f's cuts back through g with a
//     root finder.
//   - [Derivative], [Integral], [Roots], and the bound queries
//     ([BoundsFast], [BoundsExact], [BoundsLocal]) complete the surface.
//
// # Errors
//
// The package reports broken preconditions (non-increasing cuts, length
// mismatches, a missed pullback crossing) by panicking. Degenerate inputs
// that the operations tolerate, such as an empty function or a domain
// collapsed by [Piecewise.ScaleDomain] with zero, produce documented
// silent results instead; callers that care must guard for them.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//   - [Shape specification by parameters] by J. Sánchez-Reyes (the symmetric power basis)
//
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
// [Shape specification by parameters]: https://doi.org/10.1016/S0167-8396(97)00007-4
package piecewise
