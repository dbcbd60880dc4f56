// Package simplex_test cross-checks SolveLP against gonum's revised simplex.
// Random bounded, feasible problems are generated from a fixed seed; the
// float and exact regimes must both agree with the oracle's optimum.
package simplex_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/lvlp/simplex"
)

// oracleOptimum solves max c·x s.t. A·x ≤ b, x ≥ 0 with gonum by adding one
// slack per row: min -c·x s.t. [A | I]·[x s] = b.
func oracleOptimum(t *testing.T, p problem) (float64, []float64) {
	t.Helper()
	var (
		m = len(p.b)
		n = len(p.c)
	)
	A := mat.NewDense(m, n+m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			A.Set(i, j, p.A[i][j])
		}
		A.Set(i, n+i, 1)
	}
	c := make([]float64, n+m)
	for j := 0; j < n; j++ {
		c[j] = -p.c[j]
	}

	opt, x, err := lp.Simplex(c, A, p.b, 0, nil)
	require.NoError(t, err)

	return -opt, x[:n]
}

// randomLP draws positive constraint coefficients, so every variable is
// bounded, and non-negative right-hand sides, so the origin is feasible.
func randomLP(rng *rand.Rand, m, n int) problem {
	p := problem{c: make([]float64, n), A: make([][]float64, m), b: make([]float64, m)}
	for j := range p.c {
		p.c[j] = float64(rng.Intn(10) + 1)
	}
	for i := range p.A {
		p.A[i] = make([]float64, n)
		for j := range p.A[i] {
			p.A[i][j] = float64(rng.Intn(9) + 1)
		}
		p.b[i] = float64(rng.Intn(50) + 10)
	}

	return p
}

func TestSolveLP_MatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(20240611))
	for k := 0; k < 25; k++ {
		m, n := 2+rng.Intn(4), 2+rng.Intn(4)
		p := randomLP(rng, m, n)

		t.Run(fmt.Sprintf("case%02d_%dx%d", k, m, n), func(t *testing.T) {
			want, _ := oracleOptimum(t, p)

			d := floatDict(t, p, simplex.DefaultOptions())
			res, err := d.SolveLP()
			require.NoError(t, err)
			require.Equal(t, simplex.Optimal, res.Status)
			assert.InDelta(t, want, res.Value, 1e-6)

			// The reported point attains the value and satisfies A·x ≤ b.
			vals := valuesByID(d)
			x := make([]float64, len(p.c))
			for j := range x {
				x[j] = vals[j+1]
				assert.GreaterOrEqual(t, x[j], -1e-9)
			}
			assert.InDelta(t, res.Value, floats.Dot(p.c, x), 1e-6)
			for i := range p.A {
				assert.LessOrEqual(t, floats.Dot(p.A[i], x), p.b[i]+1e-6)
			}

			r := ratDict(t, p, simplex.DefaultOptions())
			rres, err := r.SolveLP()
			require.NoError(t, err)
			exact, _ := rres.Value.Float64()
			assert.InDelta(t, want, exact, 1e-6)
		})
	}
}

func TestSolveLP_OracleWithPhaseOne(t *testing.T) {
	// x + y ≥ 3 forces Phase I on the slack dictionary.
	p := problem{
		c: []float64{-1, -2},
		A: [][]float64{{-1, -1}, {1, 0}, {0, 1}},
		b: []float64{-3, 4, 4},
	}
	// gonum gets the same row as x + y - s = 3 with a surplus s.
	A := mat.NewDense(3, 5, []float64{
		1, 1, -1, 0, 0,
		1, 0, 0, 1, 0,
		0, 1, 0, 0, 1,
	})
	opt, _, err := lp.Simplex([]float64{1, 2, 0, 0, 0}, A, []float64{3, 4, 4}, 0, nil)
	require.NoError(t, err)

	d := floatDict(t, p, simplex.DefaultOptions())
	res, err := d.SolveLP()
	require.NoError(t, err)
	require.Equal(t, simplex.Optimal, res.Status)
	assert.InDelta(t, -opt, res.Value, 1e-9)
	assert.InDelta(t, -3.0, res.Value, 1e-9)
}
