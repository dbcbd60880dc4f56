// SPDX-License-Identifier: MIT

// Package simplex - Pivot Engine (selection rules and the elementary pivot).
//
// Selection follows Bland's rule on both sides:
//   - entering: among columns with z_j > 0, the smallest variable id;
//   - leaving:  among rows limiting the entering variable, the smallest ratio
//     -b_i/a_ij, ties broken by the smallest basic id.
//
// Bland's rule is the only supported strategy: it is the one with a
// termination guarantee (no cycling in exact arithmetic).
//
// Sign convention: every row reads basic = b + Σ a_j·nonbasic_j, so a
// column limits the entering variable only where its coefficient is < 0.
package simplex

// FindEnteringVariable returns the nonbasic variable with a positive
// objective coefficient and the smallest id. ok is false when no column
// improves the objective: the dictionary is final (optimal).
//
// Complexity: O(n).
func (d *Dictionary[T]) FindEnteringVariable() (id int, ok bool) {
	var (
		zero = d.pol.Zero()
		best = d.sentinel()
		j    int
	)
	for j = 0; j < d.n; j++ {
		if d.pol.Gt(d.z[j+1], zero) && d.nonbasic[j] < best {
			best = d.nonbasic[j]
		}
	}
	if best == d.sentinel() {
		return 0, false
	}

	return best, true
}

// FindLeavingVariable returns the basic variable that first reaches zero as
// entering grows. ok is false when no row bounds it: the LP is unbounded
// along that direction.
//
// Panics when entering is not nonbasic or its objective coefficient is
// negative (a pivot on it could only worsen the objective).
//
// Complexity: O(m).
func (d *Dictionary[T]) FindLeavingVariable(entering int) (id int, ok bool) {
	q := d.colOf(entering)
	if q < 0 {
		panic(panicUnknownEntering)
	}
	zero := d.pol.Zero()
	if d.pol.Lt(d.z[q+1], zero) {
		panic(panicEnteringSign)
	}

	var (
		leaving = d.sentinel()
		bound   T
		found   bool
		i       int
		aiq     T
		ratio   T
	)
	for i = 0; i < d.m; i++ {
		aiq = d.a[i][q]
		if !d.pol.Lt(aiq, zero) {
			continue
		}
		ratio = d.pol.Quo(d.pol.Neg(d.b[i]), aiq)
		if !d.pol.Ge(ratio, zero) {
			continue
		}
		v := d.basic[i]
		if !found || d.pol.Lt(ratio, bound) || (d.pol.Eq(ratio, bound) && v < leaving) {
			leaving, bound, found = v, ratio, true
		}
	}
	if !found {
		return 0, false
	}

	return leaving, true
}

// Pivot swaps entering (nonbasic) with leaving (basic) and returns the new
// objective value z[0].
//
// Implementation:
//   - Stage 1: solve the pivot row for entering: set the pivot cell to -1,
//     then divide the row (and its b) by -a_pq.
//   - Stage 2: substitute into every other row; each row's multiplier a_iq
//     is captured before its pivot-column cell is overwritten.
//   - Stage 3: substitute into z and, while auxiliary, into the shadow row.
//   - Stage 4: swap the identifiers.
//
// Panics on unknown identifiers or an exactly zero pivot coefficient.
//
// Complexity: O(m·n).
func (d *Dictionary[T]) Pivot(entering, leaving int) T {
	q := d.colOf(entering)
	if q < 0 {
		panic(panicUnknownEntering)
	}
	p := d.rowOf(leaving)
	if p < 0 {
		panic(panicUnknownLeaving)
	}
	pr := d.a[p]
	if d.pol.Sign(pr[q]) == 0 {
		panic(panicZeroPivot)
	}
	d.pivots++

	// Stage 1: normalize the pivot row.
	var (
		div = d.pol.Neg(pr[q])
		j   int
	)
	pr[q] = d.pol.Neg(d.pol.One())
	for j = 0; j < d.n; j++ {
		pr[j] = d.pol.Quo(pr[j], div)
	}
	d.b[p] = d.pol.Quo(d.b[p], div)

	// Stage 2: eliminate the entering column from the other rows.
	for i := 0; i < d.m; i++ {
		if i == p {
			continue
		}
		d.b[i] = d.eliminate(d.a[i], 0, q, pr, d.b[i], d.b[p])
	}

	// Stage 3: objective rows share the same substitution, offset by the constant.
	d.z[0] = d.eliminate(d.z, 1, q, pr, d.z[0], d.b[p])
	if d.shadow != nil {
		d.shadow[0] = d.eliminate(d.shadow, 1, q, pr, d.shadow[0], d.b[p])
	}

	// Stage 4: swap identifiers.
	d.basic[p] = entering
	d.nonbasic[q] = leaving

	if d.opts.OnPivot != nil {
		d.opts.OnPivot(entering, leaving, d.pol.Float64(d.z[0]))
	}

	return d.z[0]
}

// eliminate substitutes the normalized pivot row pr into row (coefficients
// starting at off) and returns the updated constant c + mul·bp.
// An exactly zero multiplier leaves the row untouched.
func (d *Dictionary[T]) eliminate(row []T, off, q int, pr []T, c, bp T) T {
	mul := row[off+q]
	if d.pol.Sign(mul) == 0 {
		return c
	}
	row[off+q] = d.pol.Zero()
	for j := 0; j < d.n; j++ {
		row[off+j] = d.pol.Add(row[off+j], d.pol.Mul(mul, pr[j]))
	}

	return d.pol.Add(c, d.pol.Mul(mul, bp))
}

// Step performs one Bland's-rule iteration: entering selection, leaving
// selection and, if both exist, the pivot.
//
// Complexity: O(m·n).
func (d *Dictionary[T]) Step() StepResult[T] {
	ev, ok := d.FindEnteringVariable()
	if !ok {
		return StepResult[T]{Kind: Final, Objective: d.z[0]}
	}
	lv, ok := d.FindLeavingVariable(ev)
	if !ok {
		return StepResult[T]{Kind: Unbound, Entering: ev, Objective: d.z[0]}
	}

	return StepResult[T]{Kind: Pivoted, Entering: ev, Leaving: lv, Objective: d.Pivot(ev, lv)}
}
