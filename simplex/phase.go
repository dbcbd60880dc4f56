// SPDX-License-Identifier: MIT

// Package simplex - Phase Manager (feasibility, Phase I, Phase II).
//
// Phase I ("auxiliarize"):
//
//	x_B = b + A·x_N + 1·x_0      maximize  w = -x_0
//
// The auxiliary variable x_0 (id AuxVariable) first enters replacing the
// most negative row, which makes every b non-negative; the simplex loop then
// drives w to zero iff the original system is feasible. The real objective
// rides along in the shadow row and is restored by Unauxiliarize.
package simplex

import (
	"fmt"
	"time"
)

// deadlineStride is the number of pivots between two wall-clock checks.
const deadlineStride = 64

// IsFeasible reports whether every basic value is ≥ 0 under the policy.
// A dictionary without rows is feasible.
//
// Complexity: O(m).
func (d *Dictionary[T]) IsFeasible() bool {
	if d.m == 0 {
		return true
	}
	lo, _ := d.pol.Min(d.b)

	return d.pol.Ge(lo, d.pol.Zero())
}

// IsDegenerate reports whether the smallest basic value is exactly zero.
// A dictionary without rows is not degenerate.
//
// Complexity: O(m).
func (d *Dictionary[T]) IsDegenerate() bool {
	if d.m == 0 {
		return false
	}
	lo, _ := d.pol.Min(d.b)

	return d.pol.Sign(lo) == 0
}

// Auxiliarize converts the dictionary into its Phase I form: a new nonbasic
// column for AuxVariable with +1 in every row, the current objective (padded
// with a zero for the new column) saved as shadow, and z = -x_0 installed.
//
// Panics if the dictionary is already auxiliary.
//
// Complexity: O(m + n).
func (d *Dictionary[T]) Auxiliarize() {
	if d.shadow != nil {
		panic(panicAlreadyAux)
	}
	one := d.pol.One()
	for i := 0; i < d.m; i++ {
		d.a[i] = append(d.a[i], one)
	}
	d.nonbasic = append(d.nonbasic, AuxVariable)
	d.shadow = append(d.z, d.pol.Zero())

	d.z = make([]T, d.n+2)
	for j := range d.z {
		d.z[j] = d.pol.Zero()
	}
	d.z[d.n+1] = d.pol.Neg(one)
	d.n++
}

// FirstAuxPivot pivots AuxVariable into the basis in place of the basic
// variable with the most negative value (the first such row on exact ties).
// This pivot bypasses the selection rules: x_0 must enter unconditionally.
//
// Panics when the dictionary is not auxiliary or has no rows.
func (d *Dictionary[T]) FirstAuxPivot() T {
	if d.shadow == nil {
		panic(panicNotAux)
	}
	_, r := d.pol.Min(d.b)
	if r < 0 {
		panic(panicEmptyInfeasible)
	}

	return d.Pivot(AuxVariable, d.basic[r])
}

// Unauxiliarize leaves Phase I: the AuxVariable column is removed from A, z
// and shadow, and the saved objective becomes current again.
//
// If AuxVariable finished basic (a degenerate Phase I, value zero) it is
// first pivoted out on the first column with a nonzero coefficient; when its
// row has none, the row is redundant and is dropped.
//
// Panics when the dictionary is not auxiliary or when the auxiliary
// objective is not zero (the original problem is infeasible).
//
// Complexity: O(m·n).
func (d *Dictionary[T]) Unauxiliarize() {
	if d.shadow == nil {
		panic(panicNotAux)
	}
	if d.pol.Ne(d.z[0], d.pol.Zero()) {
		panic(panicAuxNotZero)
	}
	d.dropAux()
}

// dropAux removes AuxVariable and restores the shadow objective without
// checking the Phase I value.
func (d *Dictionary[T]) dropAux() {
	if r := d.rowOf(AuxVariable); r >= 0 && !d.evictAux(r) {
		d.z = d.shadow
		d.shadow = nil

		return
	}
	c := d.colOf(AuxVariable)
	for i := 0; i < d.m; i++ {
		d.a[i] = append(d.a[i][:c], d.a[i][c+1:]...)
	}
	d.nonbasic = append(d.nonbasic[:c], d.nonbasic[c+1:]...)
	d.shadow = append(d.shadow[:c+1], d.shadow[c+2:]...)
	d.n--

	d.z = d.shadow
	d.shadow = nil
}

// evictAux makes a basic AuxVariable (row r) nonbasic and reports true, or
// drops row r and reports false when x_0 is constant on it (no column has a
// nonzero coefficient, so the row carries no constraint).
func (d *Dictionary[T]) evictAux(r int) bool {
	zero := d.pol.Zero()
	for j := 0; j < d.n; j++ {
		if d.pol.Ne(d.a[r][j], zero) {
			d.Pivot(d.nonbasic[j], AuxVariable)

			return true
		}
	}
	d.basic = append(d.basic[:r], d.basic[r+1:]...)
	d.b = append(d.b[:r], d.b[r+1:]...)
	d.a = append(d.a[:r], d.a[r+1:]...)
	d.m--

	return false
}

// RunSimplex pivots with Bland's rule until the dictionary is final
// (Optimal, Value = z[0]) or an entering variable is unbounded (Unbounded).
//
// Errors: ErrPivotLimit when Options.MaxPivots pivots did not suffice;
// ErrTimeLimit when an armed time budget expired.
//
// Complexity: O(pivots·m·n).
func (d *Dictionary[T]) RunSimplex() (Result[T], error) {
	return d.counted(d.runSimplex)
}

func (d *Dictionary[T]) runSimplex() (Result[T], error) {
	var (
		pivots int
		ev, lv int
		ok     bool
	)
	for {
		if ev, ok = d.FindEnteringVariable(); !ok {
			return Result[T]{Status: Optimal, Value: d.z[0]}, nil
		}
		if lv, ok = d.FindLeavingVariable(ev); !ok {
			return Result[T]{Status: Unbounded, Value: d.pol.Zero()}, nil
		}
		if d.opts.MaxPivots > 0 && pivots >= d.opts.MaxPivots {
			return Result[T]{}, fmt.Errorf("after %d pivots: %w", pivots, ErrPivotLimit)
		}
		if d.expired() {
			return Result[T]{}, fmt.Errorf("after %d pivots: %w", pivots, ErrTimeLimit)
		}
		d.Pivot(ev, lv)
		pivots++
	}
}

// SolveLP runs the full two-phase method on the dictionary as a primal LP.
//
// Implementation:
//   - Stage 1: if infeasible, Auxiliarize + FirstAuxPivot + RunSimplex;
//     a nonzero auxiliary optimum means Infeasible (the dictionary is left
//     in its auxiliary form for inspection).
//   - Stage 2: Unauxiliarize and RunSimplex on the real objective.
//
// Returns Optimal with the objective value, Unbounded or Infeasible.
// Errors: ErrPivotLimit, ErrTimeLimit.
func (d *Dictionary[T]) SolveLP() (Result[T], error) {
	return d.counted(func() (Result[T], error) { return d.solveLP(true) })
}

// SolveDualLP is SolveLP for a dictionary that holds the dual of the problem
// of interest (see Dualize). Infeasible and Unbounded are swapped before
// being reported: an unbounded dual means an infeasible primal and an
// infeasible dual is reported as an unbounded primal.
func (d *Dictionary[T]) SolveDualLP() (Result[T], error) {
	return d.counted(func() (Result[T], error) { return d.solveLP(false) })
}

// counted runs solve under the time budget and stamps the number of pivots
// it performed on a successful result.
func (d *Dictionary[T]) counted(solve func() (Result[T], error)) (Result[T], error) {
	defer d.arm()()

	start := d.pivots
	res, err := solve()
	if err != nil {
		return Result[T]{}, err
	}
	res.Pivots = d.pivots - start

	return res, nil
}

func (d *Dictionary[T]) solveLP(primal bool) (Result[T], error) {
	if !d.IsFeasible() {
		d.phase(PhaseFeasibility)
		d.Auxiliarize()
		d.FirstAuxPivot()
		res, err := d.runSimplex()
		if err != nil {
			return Result[T]{}, err
		}
		if res.Status != Optimal || d.pol.Ne(res.Value, d.pol.Zero()) {
			return d.orient(Infeasible, primal), nil
		}
		d.Unauxiliarize()
	}

	d.phase(PhaseOptimality)
	res, err := d.runSimplex()
	if err != nil {
		return Result[T]{}, err
	}
	if res.Status != Optimal {
		return d.orient(res.Status, primal), nil
	}

	return res, nil
}

// orient maps a terminal non-optimal status to the primal point of view.
func (d *Dictionary[T]) orient(s Status, primal bool) Result[T] {
	if !primal {
		switch s {
		case Infeasible:
			s = Unbounded
		case Unbounded:
			s = Infeasible
		}
	}

	return Result[T]{Status: s, Value: d.pol.Zero()}
}

func (d *Dictionary[T]) phase(p Phase) {
	if d.opts.OnPhase != nil {
		d.opts.OnPhase(p)
	}
}

// ---------- Time budget ----------

// arm starts the Options.TimeLimit budget unless one is already running
// (nested calls share the outermost budget). The returned func disarms it.
func (d *Dictionary[T]) arm() func() {
	if d.opts.TimeLimit <= 0 || !d.deadline.IsZero() {
		return func() {}
	}
	d.deadline = time.Now().Add(d.opts.TimeLimit)
	d.steps = 0

	return func() { d.deadline = time.Time{} }
}

// expired performs a sparse deadline check.
func (d *Dictionary[T]) expired() bool {
	if d.deadline.IsZero() {
		return false
	}
	d.steps++
	if d.steps%deadlineStride != 0 {
		return false
	}

	return time.Now().After(d.deadline)
}
