// SPDX-License-Identifier: MIT

// Package simplex solves linear and integer linear programs with the
// dictionary (tableau) form of the Simplex method.
//
// What is a dictionary?
//
//	Each basic variable is written as an affine function of the nonbasic
//	ones, and so is the objective:
//
//	  x_3 = 10 - 2·x_1 - 1·x_2
//	  x_4 = 15 - 1·x_1 - 3·x_2
//	  z   =  0 + 4·x_1 + 3·x_2
//
//	Nonbasic variables sit at zero, so the current point is read off the
//	constants. A pivot swaps one basic and one nonbasic variable without
//	changing the feasible region.
//
// Key features:
//   - Bland's rule on both entering and leaving selection (no cycling)
//   - two numeric regimes, chosen at construction: exact *big.Rat
//     (NewRational) or float64 with one tolerance (NewFloat)
//   - two-phase method: an auxiliary variable (id 0) finds a feasible basis
//   - Dualize/Undualize: an exact involution used to re-optimize after cuts
//   - SolveILP: Gomory fractional cuts with primal or dual re-optimization
//   - tagged results (Optimal / Unbounded / Infeasible) instead of sentinel
//     values mixed with numbers; errors only for exceeded limits
//
// Usage:
//
//	in, _ := simplex.StandardForm[float64](numeric.Float{},
//		[]float64{4, 3},                 // maximize 4x + 3y
//		[][]float64{{2, 1}, {1, 3}},     // 2x +  y ≤ 10
//		[]float64{10, 15})               //  x + 3y ≤ 15
//	d, err := simplex.NewFloat(in, simplex.DefaultOptions())
//	if err != nil {
//		// ErrDimensionMismatch, ErrDuplicateVariable, …
//	}
//	res, err := d.SolveLP()   // res.Status == simplex.Optimal, res.Value == 24
//	vals := d.VariableValues() // x1 = 3, x2 = 4
//
// Concurrency:
//
//	A Dictionary is mutated in place by every operation and is not safe
//	for concurrent use. Independent dictionaries share nothing.
//
// Programmer errors (pivoting on an unknown id, dualizing during Phase I,
// cutting an integral row) panic; user data errors are returned.
package simplex
