// SPDX-License-Identifier: MIT

package numeric

// Policy layers the derived comparisons on top of an Arith.
//
// Every predicate below is expressed through Less and Equal so that switching
// the regime (or its epsilon) changes all decisions consistently.
type Policy[T any] struct {
	Arith[T]
}

// NewPolicy wraps ar. A nil ar is a programmer error.
func NewPolicy[T any](ar Arith[T]) Policy[T] {
	if ar == nil {
		panic("numeric: NewPolicy: nil Arith")
	}

	return Policy[T]{Arith: ar}
}

func (p Policy[T]) Lt(a, b T) bool { return p.Less(a, b) }
func (p Policy[T]) Eq(a, b T) bool { return p.Equal(a, b) }
func (p Policy[T]) Le(a, b T) bool { return p.Less(a, b) || p.Equal(a, b) }
func (p Policy[T]) Gt(a, b T) bool { return p.Less(b, a) }
func (p Policy[T]) Ge(a, b T) bool { return p.Le(b, a) }
func (p Policy[T]) Ne(a, b T) bool { return !p.Equal(a, b) }

// IsInteger rounds v and compares the result with v under the policy.
func (p Policy[T]) IsInteger(v T) bool { return p.Equal(v, p.Round(v)) }

// Frac returns v - floor(v), which lies in [0,1) for every v, negative
// values included: Frac(-1.25) == 0.75. Values the policy already treats as
// integers yield exactly zero, so float noise like -1e-17 never turns into a
// fractional part of ~1.
func (p Policy[T]) Frac(v T) T {
	if p.IsInteger(v) {
		return p.Zero()
	}

	return p.Sub(v, p.Floor(v))
}

// Min returns the smallest element of vs and its first index. The ordering is
// exact (sign of the difference) so ties within tolerance keep the earliest
// index only when the values are truly equal. Returns (zero, -1) for an
// empty slice.
func (p Policy[T]) Min(vs []T) (T, int) {
	if len(vs) == 0 {
		return p.Zero(), -1
	}
	best, at := vs[0], 0
	for i := 1; i < len(vs); i++ {
		if p.Sign(p.Sub(vs[i], best)) < 0 {
			best, at = vs[i], i
		}
	}

	return best, at
}
