// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math/big"
)

// Rational is the exact regime. No tolerance is applied anywhere; a nil
// *big.Rat argument is a programmer error and panics inside math/big.
type Rational struct{}

var _ Arith[*big.Rat] = Rational{}

func (Rational) Zero() *big.Rat { return new(big.Rat) }
func (Rational) One() *big.Rat { return big.NewRat(1, 1) }
func (Rational) FromInt(v int64) *big.Rat { return new(big.Rat).SetInt64(v) }

// Parse accepts integers, decimals, exponents and fractions "a/b".
func (Rational) Parse(s string) (*big.Rat, error) {
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}

	return v, nil
}

func (Rational) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (Rational) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (Rational) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (Rational) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// Quo panics on a zero divisor, like big.Rat.Quo.
func (Rational) Quo(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }

// Floor relies on big.Int.Div being Euclidean: with the always-positive
// denominator of a normalized Rat the quotient is the floor.
func (Rational) Floor(a *big.Rat) *big.Rat {
	q := new(big.Int).Div(a.Num(), a.Denom())

	return new(big.Rat).SetInt(q)
}

// Round is floor(a + 1/2) for a ≥ 0 and -floor(-a + 1/2) otherwise.
func (r Rational) Round(a *big.Rat) *big.Rat {
	half := big.NewRat(1, 2)
	if a.Sign() >= 0 {
		return r.Floor(new(big.Rat).Add(a, half))
	}

	return r.Neg(r.Floor(new(big.Rat).Add(r.Neg(a), half)))
}

func (Rational) Sign(a *big.Rat) int { return a.Sign() }
func (Rational) Less(a, b *big.Rat) bool { return a.Cmp(b) < 0 }
func (Rational) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }
func (Rational) Format(a *big.Rat) string { return a.RatString() }

func (Rational) Float64(a *big.Rat) float64 {
	f, _ := a.Float64()

	return f
}
