// Package numeric provides the small set of floating-point primitives
// shared by every estar package: the unreachable sentinel, the
// consistency tolerance, bounded min/max, and a quadratic-root solver.
//
// What:
//
//   - Infinity: the unreachable-cost sentinel used for value, rhs and meta.
//   - Epsilon: the tolerance under which two costs are considered equal.
//   - Min2/Max2: ordinary bounded min/max for float64.
//   - SolveQuadratic: up to two real roots of a·x²+b·x+c, numerically
//     stable for the degenerate a≈0 and c≈0 cases.
//
// Why:
//
//   - Every kernel and the algorithm driver compares value/rhs pairs
//     within Epsilon rather than exactly. The Algorithm's own "slack"
//     tolerance and the LSM kernel's quadratic interpolation both
//     depend on a single, consistent notion of "close enough to zero".
//
// Complexity: every function here is O(1).
package numeric
