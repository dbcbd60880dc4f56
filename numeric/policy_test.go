// Package numeric_test checks both regimes through the Policy layer.
// Focus:
//  1. Tolerant comparisons in Float (interval equality, strict Less).
//  2. Exact comparisons in Rational.
//  3. Floor/Round/Frac on negative and fractional values.
//  4. Min ordering and its first-index tie rule.
package numeric_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlp/numeric"
)

func floatPolicy() numeric.Policy[float64] {
	return numeric.NewPolicy[float64](numeric.Float{Eps: numeric.DefaultEpsilon})
}

func ratPolicy() numeric.Policy[*big.Rat] {
	return numeric.NewPolicy[*big.Rat](numeric.Rational{})
}

func TestFloat_ToleranceComparisons(t *testing.T) {
	p := floatPolicy()

	assert.True(t, p.Eq(1, 1+1e-12), "values within eps are equal")
	assert.False(t, p.Eq(1, 1+1e-9), "values beyond eps differ")
	assert.False(t, p.Lt(1, 1+1e-12), "Less needs a gap larger than eps")
	assert.True(t, p.Lt(1, 1+1e-9))
	assert.True(t, p.Le(1+1e-12, 1))
	assert.True(t, p.Ge(1, 1+1e-12))
	assert.False(t, p.Gt(1e-12, 0), "noise is not positive")
	assert.True(t, p.Ne(0, 1e-9))

	// eps itself is outside the open interval.
	assert.False(t, p.Eq(0, numeric.DefaultEpsilon))
}

func TestFloat_SignIsExact(t *testing.T) {
	p := floatPolicy()

	assert.Equal(t, 1, p.Sign(1e-300))
	assert.Equal(t, -1, p.Sign(-1e-300))
	assert.Equal(t, 0, p.Sign(0))
	assert.Equal(t, 0, p.Sign(-0.0))
}

func TestRational_ExactComparisons(t *testing.T) {
	p := ratPolicy()
	third := big.NewRat(1, 3)
	almost := big.NewRat(333333333333, 1000000000000)

	assert.False(t, p.Eq(third, almost), "no tolerance in the exact regime")
	assert.True(t, p.Gt(third, almost))
	assert.True(t, p.Eq(big.NewRat(2, 6), third))
	assert.True(t, p.Le(third, big.NewRat(1, 3)))
}

func TestFloorRoundFrac(t *testing.T) {
	fp := floatPolicy()
	rp := ratPolicy()

	cases := []struct {
		num, den           int64
		floor, round, frac *big.Rat
	}{
		{5, 4, big.NewRat(1, 1), big.NewRat(1, 1), big.NewRat(1, 4)},
		{-5, 4, big.NewRat(-2, 1), big.NewRat(-1, 1), big.NewRat(3, 4)},
		{7, 2, big.NewRat(3, 1), big.NewRat(4, 1), big.NewRat(1, 2)},
		{-7, 2, big.NewRat(-4, 1), big.NewRat(-4, 1), big.NewRat(1, 2)},
		{3, 1, big.NewRat(3, 1), big.NewRat(3, 1), big.NewRat(0, 1)},
		{-3, 1, big.NewRat(-3, 1), big.NewRat(-3, 1), big.NewRat(0, 1)},
	}
	for _, tc := range cases {
		v := big.NewRat(tc.num, tc.den)
		assert.Zero(t, rp.Floor(v).Cmp(tc.floor), "Floor(%s)", v.RatString())
		assert.Zero(t, rp.Round(v).Cmp(tc.round), "Round(%s)", v.RatString())
		assert.Zero(t, rp.Frac(v).Cmp(tc.frac), "Frac(%s)", v.RatString())

		f := float64(tc.num) / float64(tc.den)
		want, _ := tc.frac.Float64()
		assert.InDelta(t, want, fp.Frac(f), 1e-15, "float Frac(%v)", f)
	}
}

func TestFrac_NoiseIsInteger(t *testing.T) {
	p := floatPolicy()

	assert.True(t, p.IsInteger(-1e-17))
	assert.Equal(t, 0.0, p.Frac(-1e-17), "noise below zero must not become ~1")
	assert.True(t, p.IsInteger(2.9999999999999))
	assert.False(t, p.IsInteger(2.5))
}

func TestMin(t *testing.T) {
	p := ratPolicy()

	v, i := p.Min(nil)
	assert.Equal(t, -1, i)
	assert.Zero(t, v.Sign())

	vals := []*big.Rat{big.NewRat(3, 1), big.NewRat(-1, 2), big.NewRat(-1, 2), big.NewRat(0, 1)}
	v, i = p.Min(vals)
	assert.Equal(t, 1, i, "first index wins on exact ties")
	assert.Zero(t, v.Cmp(big.NewRat(-1, 2)))

	fp := floatPolicy()
	_, i = fp.Min([]float64{-1, -1 - 1e-13, 0})
	assert.Equal(t, 1, i, "Min orders exactly, even within eps")
}

func TestParse(t *testing.T) {
	var (
		r numeric.Rational
		f numeric.Float
	)

	v, err := r.Parse("3/4")
	require.NoError(t, err)
	assert.Equal(t, "3/4", r.Format(v))

	v, err = r.Parse("-0.25")
	require.NoError(t, err)
	assert.Equal(t, "-1/4", r.Format(v))

	_, err = r.Parse("x")
	assert.True(t, errors.Is(err, numeric.ErrParse))

	x, err := f.Parse("1e-3")
	require.NoError(t, err)
	assert.Equal(t, 0.001, x)

	_, err = f.Parse("3/4")
	assert.ErrorIs(t, err, numeric.ErrParse)
}

func TestFloatFormat(t *testing.T) {
	var f numeric.Float

	assert.Equal(t, "24.0", f.Format(24))
	assert.Equal(t, "-2.0", f.Format(-2))
	assert.Equal(t, "0.25", f.Format(0.25))
	assert.Equal(t, "0.0", f.Format(math.Copysign(0, -1)))

	// Non-integral values survive a Format/Parse round trip.
	x := 1.0 / 3.0
	back, err := f.Parse(f.Format(x))
	require.NoError(t, err)
	assert.Equal(t, x, back)
}

func TestNewPolicy_NilPanics(t *testing.T) {
	assert.Panics(t, func() { numeric.NewPolicy[float64](nil) })
}
