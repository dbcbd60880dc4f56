// Package lvlp is a small, exact-when-you-want-it linear programming toolkit:
// the dictionary (tableau) form of the Simplex method, two-phase start,
// duality and Gomory cutting planes for integer programs.
//
// What is in the box?
//
//	numeric/  arithmetic regimes (exact *big.Rat or float64 with one
//	          tolerance) and the comparison policy built on them
//	simplex/  the Dictionary: Bland's-rule pivots, Phase I/II, Dualize,
//	          SolveLP / SolveDualLP / SolveILP with tagged results
//	lpfile/   plain-text reader and writer for dictionaries
//
// Why two regimes?
//
//   - Rational never cycles and never misjudges a sign; use it to certify.
//   - Float is fast; every decision goes through one epsilon, so the
//     tolerance is tuned in a single place.
//
// Quick example (maximize 4x + 3y, 2x + y ≤ 10, x + 3y ≤ 15):
//
//	in, _ := simplex.StandardForm[float64](numeric.Float{}, c, A, b)
//	d, _ := simplex.NewFloat(in, simplex.DefaultOptions())
//	res, _ := d.SolveLP() // OPTIMAL 24 at x = (3, 4)
//
// Runnable demos live in examples/.
//
//	go get github.com/katalvlaran/lvlp
package lvlp
