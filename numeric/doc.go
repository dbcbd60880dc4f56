// SPDX-License-Identifier: MIT

// Package numeric defines the arithmetic regimes used by the simplex engine.
//
// What is a numeric policy?
//
//	Every decision taken by the simplex method ("is this coefficient
//	positive?", "are these two ratios tied?", "is this value an integer?")
//	is a comparison. The policy decides how such comparisons behave:
//	  • Rational: exact arithmetic over *big.Rat, no tolerance at all
//	  • Float   : float64 arithmetic with a single epsilon absorbing noise
//
// Key features:
//   - Arith[T]: the minimal field interface (Add/Sub/Mul/Quo/Neg/Floor/Round/…)
//   - Policy[T]: Lt/Eq/Le/Gt/Ge/Ne, all derived from Less and Equal only,
//     so exactly one tolerance constant governs every decision
//   - IsInteger / Frac: integrality test and the non-negative fractional part
//     needed by Gomory cut generation
//
// Usage:
//
//	pol := numeric.NewPolicy[float64](numeric.Float{Eps: numeric.DefaultEpsilon})
//	pol.Gt(1e-12, 0)    // false: below tolerance
//	pol.Frac(-1.25)     // 0.75
//
//	exact := numeric.NewPolicy[*big.Rat](numeric.Rational{})
//	exact.IsInteger(big.NewRat(6, 3)) // true
//
// Values handed to and returned by an Arith are treated as immutable: every
// operation allocates its result. This matters for *big.Rat, where in-place
// mutation would silently alias dictionary cells.
package numeric
