// SPDX-License-Identifier: MIT

package numeric

import "errors"

// DefaultEpsilon is the tolerance of the Float regime when none is configured.
const DefaultEpsilon = 1e-10

// ErrParse is returned by Arith.Parse when a token is not a number of the regime.
var ErrParse = errors.New("numeric: cannot parse number")

// Arith is the field abstraction the simplex engine is written against.
//
// Contracts:
//   - Implementations never mutate their arguments.
//   - Less and Equal are the ONLY comparison primitives; tolerance (if any)
//     lives inside them. Sign is exact and reserved for structural checks
//     (e.g., "exactly zero" degeneracy, zero pivot detection).
//   - Floor returns the greatest integer ≤ v; Round returns the nearest
//     integer (halves away from zero).
type Arith[T any] interface {
	Zero() T
	One() T
	FromInt(v int64) T

	// Parse reads a decimal ("2", "-0.5", "1e-3") or, for exact regimes,
	// a fraction ("3/4"). Errors wrap ErrParse.
	Parse(s string) (T, error)

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Quo(a, b T) T
	Neg(a T) T
	Floor(a T) T
	Round(a T) T

	// Sign reports -1, 0 or +1 without any tolerance.
	Sign(a T) int

	// Less reports a < b under the regime's tolerance.
	Less(a, b T) bool
	// Equal reports a == b under the regime's tolerance.
	Equal(a, b T) bool

	Float64(a T) float64
	Format(a T) string
}
