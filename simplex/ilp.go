// SPDX-License-Identifier: MIT

// Package simplex - Integer Solver (Gomory fractional cuts).
//
// For a basic row x_B = v + Σ a_j·x_j with fractional v, every integer
// point satisfies
//
//	s = -frac(v) + Σ frac(-a_j)·x_j ≥ 0,
//
// while the current vertex (all x_j = 0) violates it. s becomes a new basic
// variable. Cuts are never derived from the objective row: the objective is
// not integral in general, so such a cut is not valid.
//
// Control loop (SolveILP):
//  1. SolveLP. Any non-optimal status ends the search.
//  2. Integral basic values: done.
//  3. Cut every fractional row, then re-optimize:
//     - DualAccelerated: Dualize → SolveDualLP → Undualize. The cuts are new
//       columns of the dual whose basis stays dual-feasible, so no Phase I
//       is needed.
//     - PrimalOnly: SolveLP; the cuts make the basis infeasible and Phase I
//       runs again.
//  4. Repeat from 2.
package simplex

import "fmt"

// IsIntegral reports whether every basic value is an integer under the
// policy.
//
// Complexity: O(m).
func (d *Dictionary[T]) IsIntegral() bool {
	for i := 0; i < d.m; i++ {
		if !d.pol.IsInteger(d.b[i]) {
			return false
		}
	}

	return true
}

// AddCut appends the Gomory cut derived from constraint row `row` and
// returns the id of the new basic (slack) variable, which is larger than
// every id in use.
//
// Panics when row is out of range or its value is already integral.
//
// Complexity: O(n).
func (d *Dictionary[T]) AddCut(row int) int {
	if row < 0 || row >= d.m {
		panic(panicCutRowRange)
	}
	if d.pol.IsInteger(d.b[row]) {
		panic(panicCutIntegral)
	}

	cut := make([]T, d.n)
	for j := 0; j < d.n; j++ {
		cut[j] = d.pol.Frac(d.pol.Neg(d.a[row][j]))
	}
	d.maxID++
	id := d.maxID

	d.basic = append(d.basic, id)
	d.b = append(d.b, d.pol.Neg(d.pol.Frac(d.b[row])))
	d.a = append(d.a, cut)
	d.m++

	if d.opts.OnCut != nil {
		d.opts.OnCut(row, id)
	}

	return id
}

// AddAllCuts cuts on every fractional constraint row present before the
// call and returns the number of cuts added.
//
// Complexity: O(m·n).
func (d *Dictionary[T]) AddAllCuts() int {
	var (
		rows  = d.m
		added int
	)
	for i := 0; i < rows; i++ {
		if !d.pol.IsInteger(d.b[i]) {
			d.AddCut(i)
			added++
		}
	}

	return added
}

// SolveILP solves the dictionary as an integer program by cutting planes.
//
// Returns Optimal with the integral optimum; Infeasible when the LP
// relaxation (initially or after cuts) has no feasible point; Unbounded
// when the initial relaxation is unbounded.
//
// Errors: ErrCutLimit after Options.MaxCutRounds rounds without an integral
// optimum; ErrPivotLimit and ErrTimeLimit from the LP solves.
//
// Complexity: O(rounds · LP solve); the dictionary grows by one row per cut.
func (d *Dictionary[T]) SolveILP() (Result[T], error) {
	return d.counted(d.solveILP)
}

func (d *Dictionary[T]) solveILP() (Result[T], error) {
	res, err := d.solveLP(true)
	for rounds := 0; ; rounds++ {
		if err != nil {
			return Result[T]{}, err
		}
		if res.Status != Optimal {
			return res, nil
		}
		if d.IsIntegral() {
			return Result[T]{Status: Optimal, Value: d.z[0]}, nil
		}
		if d.opts.MaxCutRounds > 0 && rounds >= d.opts.MaxCutRounds {
			return Result[T]{}, fmt.Errorf("after %d rounds: %w", rounds, ErrCutLimit)
		}
		if d.expired() {
			return Result[T]{}, fmt.Errorf("after %d rounds: %w", rounds, ErrTimeLimit)
		}

		d.phase(PhaseCutting)
		d.AddAllCuts()

		switch d.opts.Strategy {
		case PrimalOnly:
			res, err = d.solveLP(true)
		default:
			res, err = d.reoptimizeDual()
		}
	}
}

// reoptimizeDual runs the dual leg of the DualAccelerated strategy and
// always returns with the primal dictionary in place.
func (d *Dictionary[T]) reoptimizeDual() (Result[T], error) {
	d.Dualize()
	res, err := d.solveLP(false)
	if d.shadow != nil {
		// Phase I of the dual did not complete; abandon it to undualize.
		d.dropAux()
	}
	d.Undualize()

	return res, err
}
