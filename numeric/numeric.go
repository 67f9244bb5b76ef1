package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Infinity is the unreachable-cost sentinel used throughout estar for
// value, rhs and meta. It is deliberately math.MaxFloat64 rather than
// math.Inf(1): arithmetic like value+meta must stay finite and comparable
// without producing further +Inf propagation surprises.
const Infinity = math.MaxFloat64

// Epsilon is the tolerance under which two costs are treated as equal.
// It is roughly 10^3 times the machine epsilon for float64.
const Epsilon = 1e3 * 2.220446049250313e-16

// WithinEpsilon reports whether a and b differ by at most Epsilon.
// It delegates to gonum's floats package so the tolerance semantics
// (symmetric absolute comparison) match the rest of the numeric stack.
func WithinEpsilon(a, b float64) bool {
	return floats.EqualWithinAbs(a, b, Epsilon)
}

// Min2 returns the lesser of a and b.
func Min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max2 returns the greater of a and b.
func Max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// IsObstacle reports whether meta is at least Infinity, the
// "impassable" convention of kernels whose obstacle meta is Infinity.
// Only the Alpha kernel calls it.
func IsObstacle(meta float64) bool {
	return meta >= Infinity
}

// SolveQuadratic returns the real roots of a*x^2 + b*x + c = 0.
// It degenerates to a linear solve when |a|<Epsilon, and short-circuits
// to the roots 0 and -b/a when |c|<Epsilon. The returned slice is sorted
// ascending and has length 0, 1 or 2.
func SolveQuadratic(a, b, c float64) []float64 {
	if math.Abs(a) < Epsilon {
		// Linear: b*x + c = 0.
		if math.Abs(b) < Epsilon {
			return nil
		}
		return []float64{-c / b}
	}
	if math.Abs(c) < Epsilon {
		// One root is exactly zero; the other solves a*x+b=0.
		roots := []float64{0, -b / a}
		if roots[0] > roots[1] {
			roots[0], roots[1] = roots[1], roots[0]
		}
		return roots
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	// Numerically stable formulation: avoid cancellation when b and sq
	// have the same sign by computing one root via q and the other via
	// Vieta's formula (q = -0.5*(b + sign(b)*sq)).
	var q float64
	if b >= 0 {
		q = -0.5 * (b + sq)
	} else {
		q = -0.5 * (b - sq)
	}
	r1 := q / a
	var r2 float64
	if math.Abs(q) > Epsilon {
		r2 = c / q
	} else {
		r2 = r1
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}
