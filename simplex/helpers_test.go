package simplex_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlp/numeric"
	"github.com/katalvlaran/lvlp/simplex"
)

// problem is an LP in standard form: maximize c·x s.t. A·x ≤ b, x ≥ 0.
type problem struct {
	c []float64
	A [][]float64
	b []float64
}

// Shared fixtures. Values were checked by hand against the dictionary
// method; see the individual tests for the expected optima.
var (
	// lpProduction: max 4x+3y, 2x+y ≤ 10, x+3y ≤ 15 → 24 at (3, 4).
	lpProduction = problem{
		c: []float64{4, 3},
		A: [][]float64{{2, 1}, {1, 3}},
		b: []float64{10, 15},
	}

	// lpInfeasible: x ≥ 5 and x ≤ 2.
	lpInfeasible = problem{
		c: []float64{1},
		A: [][]float64{{-1}, {1}},
		b: []float64{-5, 2},
	}

	// lpUnbounded: |x - y| ≤ 1, maximize x + y.
	lpUnbounded = problem{
		c: []float64{1, 1},
		A: [][]float64{{-1, 1}, {1, -1}},
		b: []float64{1, 1},
	}

	// lpEquality: x + y = 2 as two inequalities, max x+2y → 4.
	lpEquality = problem{
		c: []float64{1, 2},
		A: [][]float64{{-1, -1}, {1, 1}},
		b: []float64{-2, 2},
	}

	// lpKnapsack: 0/1 knapsack relaxation; LP 22, ILP 21 at (0,1,1,1).
	lpKnapsack = problem{
		c: []float64{8, 11, 6, 4},
		A: [][]float64{
			{5, 7, 4, 3},
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
		b: []float64{14, 1, 1, 1, 1},
	}

	// lpSmallILP: max 3x+2y, 2x+2y ≤ 9, 3x+y ≤ 11; LP 49/4, ILP 11 at (3, 1).
	lpSmallILP = problem{
		c: []float64{3, 2},
		A: [][]float64{{2, 2}, {3, 1}},
		b: []float64{9, 11},
	}

	// lpNoInteger: 0.5 ≤ x ≤ 0.7 has no integer point.
	lpNoInteger = problem{
		c: []float64{1},
		A: [][]float64{{1}, {-1}},
		b: []float64{0.7, -0.5},
	}

	// lpCycling: Chvátal's degenerate LP. The largest-coefficient rule with
	// lowest-index ties cycles through six bases; optimum 1 at x1 = x3 = 1.
	lpCycling = problem{
		c: []float64{10, -57, -9, -24},
		A: [][]float64{
			{0.5, -5.5, -2.5, 9},
			{0.5, -1.5, -0.5, 1},
			{1, 0, 0, 0},
		},
		b: []float64{0, 0, 1},
	}
)

// floatDict builds the float dictionary of p with opts.
func floatDict(t testing.TB, p problem, opts simplex.Options) *simplex.Dictionary[float64] {
	t.Helper()
	in, err := simplex.StandardForm[float64](numeric.Float{}, p.c, p.A, p.b)
	require.NoError(t, err)
	d, err := simplex.NewFloat(in, opts)
	require.NoError(t, err)

	return d
}

// ratDict builds the exact dictionary of p with opts. Every float of p is
// converted exactly (the fixtures only use short decimals).
func ratDict(t testing.TB, p problem, opts simplex.Options) *simplex.Dictionary[*big.Rat] {
	t.Helper()
	A := make([][]*big.Rat, len(p.A))
	for i := range p.A {
		A[i] = rats(p.A[i]...)
	}
	in, err := simplex.StandardForm[*big.Rat](numeric.Rational{}, rats(p.c...), A, rats(p.b...))
	require.NoError(t, err)
	d, err := simplex.NewRational(in, opts)
	require.NoError(t, err)

	return d
}

// rats converts decimals through their shortest text form, so 0.7 becomes
// exactly 7/10 rather than the binary approximation.
func rats(vs ...float64) []*big.Rat {
	out := make([]*big.Rat, len(vs))
	var f numeric.Float
	for i, v := range vs {
		r, ok := new(big.Rat).SetString(f.Format(v))
		if !ok {
			panic("bad fixture value")
		}
		out[i] = r
	}

	return out
}

func rat(num, den int64) *big.Rat { return big.NewRat(num, den) }

// requireRat asserts that got equals want exactly.
func requireRat(t testing.TB, want, got *big.Rat, msgAndArgs ...interface{}) {
	t.Helper()
	require.Zerof(t, want.Cmp(got), "want %s, got %s %v", want.RatString(), got.RatString(), msgAndArgs)
}

// valuesByID flattens VariableValues into a map.
func valuesByID[T any](d *simplex.Dictionary[T]) map[int]T {
	out := make(map[int]T)
	for _, v := range d.VariableValues() {
		out[v.ID] = v.Value
	}

	return out
}
