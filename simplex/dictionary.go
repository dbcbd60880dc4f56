// SPDX-License-Identifier: MIT

// Package simplex - Dictionary construction, accessors and snapshots.
//
// Purpose:
//   - Build a Dictionary from an Input with strict validation (no panics on
//     user data) and a deep copy, so callers keep ownership of their slices.
//   - Expose read-only copies of the tableau for inspection and tests.
//
// Complexity quicksheet:
//   - New: O(m·n); accessors returning slices: O(len); Clone/Equal: O(m·n).
package simplex

import (
	"math/big"
	"sort"

	"github.com/katalvlaran/lvlp/numeric"
)

// New validates in and builds a dictionary over the regime ar.
//
// Errors: ErrInvalidOption, ErrUnsupportedStrategy, ErrBadShape,
// ErrDimensionMismatch, ErrNegativeVariable, ErrReservedVariable,
// ErrDuplicateVariable (possibly wrapped with the offending position).
//
// Complexity: O(m·n) time and space.
func New[T any](ar numeric.Arith[T], in Input[T], opts Options) (*Dictionary[T], error) {
	if ar == nil {
		panic(panicNilArith)
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	maxID, err := validateInput(in)
	if err != nil {
		return nil, err
	}

	return build(ar, in, opts, maxID), nil
}

// build deep-copies a validated input.
func build[T any](ar numeric.Arith[T], in Input[T], opts Options, maxID int) *Dictionary[T] {
	d := &Dictionary[T]{
		pol:      numeric.NewPolicy(ar),
		opts:     opts,
		m:        in.M,
		n:        in.N,
		basic:    append([]int(nil), in.Basic...),
		nonbasic: append([]int(nil), in.Nonbasic...),
		b:        append([]T(nil), in.B...),
		a:        make([][]T, in.M),
		z:        append([]T(nil), in.Z...),
		maxID:    maxID,
	}
	for i := 0; i < in.M; i++ {
		d.a[i] = append([]T(nil), in.A[i]...)
	}

	return d
}

// NewFloat builds a dictionary over the tolerant float64 regime with
// tolerance opts.Epsilon.
//
// Errors: those of New, plus ErrInvalidEpsilon and ErrNaNInf.
func NewFloat(in Input[float64], opts Options) (*Dictionary[float64], error) {
	if err := validateEpsilon(opts.Epsilon); err != nil {
		return nil, err
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	maxID, err := validateInput(in)
	if err != nil {
		return nil, err
	}
	if err = validateFinite(in); err != nil {
		return nil, err
	}

	return build[float64](numeric.Float{Eps: opts.Epsilon}, in, opts, maxID), nil
}

// NewRational builds a dictionary over exact rationals. opts.Epsilon is
// ignored. Entries must be non-nil; they are shared, never mutated.
func NewRational(in Input[*big.Rat], opts Options) (*Dictionary[*big.Rat], error) {
	return New[*big.Rat](numeric.Rational{}, in, opts)
}

// StandardForm builds the slack dictionary of
//
//	maximize c·x  subject to  A·x ≤ b,  x ≥ 0
//
// Decision variables get ids 1..len(c), slacks get len(c)+1..len(c)+len(b).
// The dictionary is feasible iff b ≥ 0; otherwise SolveLP runs Phase I.
//
// Errors: ErrDimensionMismatch when A is not len(b) × len(c).
func StandardForm[T any](ar numeric.Arith[T], c []T, A [][]T, b []T) (Input[T], error) {
	var (
		n = len(c)
		m = len(b)
	)
	if len(A) != m {
		return Input[T]{}, ErrDimensionMismatch
	}
	in := Input[T]{
		M:        m,
		N:        n,
		Basic:    make([]int, m),
		Nonbasic: make([]int, n),
		B:        append([]T(nil), b...),
		A:        make([][]T, m),
		Z:        make([]T, n+1),
	}
	var i, j int
	for j = 0; j < n; j++ {
		in.Nonbasic[j] = j + 1
		in.Z[j+1] = c[j]
	}
	in.Z[0] = ar.Zero()
	for i = 0; i < m; i++ {
		if len(A[i]) != n {
			return Input[T]{}, validatorErrorf("A", i, ErrDimensionMismatch)
		}
		in.Basic[i] = n + i + 1
		in.A[i] = make([]T, n)
		for j = 0; j < n; j++ {
			in.A[i][j] = ar.Neg(A[i][j])
		}
	}

	return in, nil
}

// ---------- Accessors ----------

// M returns the number of basic variables (rows).
func (d *Dictionary[T]) M() int { return d.m }

// N returns the number of nonbasic variables (columns).
func (d *Dictionary[T]) N() int { return d.n }

// Policy returns the numeric policy the dictionary decides with.
func (d *Dictionary[T]) Policy() numeric.Policy[T] { return d.pol }

// Options returns the configuration the dictionary was built with.
func (d *Dictionary[T]) Options() Options { return d.opts }

// Basic returns a copy of the row → variable id mapping.
func (d *Dictionary[T]) Basic() []int { return append([]int(nil), d.basic...) }

// Nonbasic returns a copy of the column → variable id mapping.
func (d *Dictionary[T]) Nonbasic() []int { return append([]int(nil), d.nonbasic...) }

// B returns a copy of the right-hand side.
func (d *Dictionary[T]) B() []T { return append([]T(nil), d.b...) }

// Row returns a copy of row i of A. It panics when i is out of range.
func (d *Dictionary[T]) Row(i int) []T { return append([]T(nil), d.a[i]...) }

// Objective returns a copy of the objective row (constant first).
func (d *Dictionary[T]) Objective() []T { return append([]T(nil), d.z...) }

// Shadow returns a copy of the saved objective during Phase I, nil otherwise.
func (d *Dictionary[T]) Shadow() []T {
	if d.shadow == nil {
		return nil
	}

	return append([]T(nil), d.shadow...)
}

// IsAuxiliary reports whether the dictionary is in its Phase I form.
func (d *Dictionary[T]) IsAuxiliary() bool { return d.shadow != nil }

// Value returns the current objective value z[0].
func (d *Dictionary[T]) Value() T { return d.z[0] }

// VariableValues returns every variable with its current value, sorted by
// id ascending. Nonbasic variables are at zero.
//
// Complexity: O((m+n)·log(m+n)).
func (d *Dictionary[T]) VariableValues() []VarValue[T] {
	out := make([]VarValue[T], 0, d.m+d.n)
	var i int
	for i = 0; i < d.m; i++ {
		out = append(out, VarValue[T]{ID: d.basic[i], Value: d.b[i]})
	}
	for i = 0; i < d.n; i++ {
		out = append(out, VarValue[T]{ID: d.nonbasic[i], Value: d.pol.Zero()})
	}
	sort.Slice(out, func(x, y int) bool { return out[x].ID < out[y].ID })

	return out
}

// ---------- Snapshots ----------

// Clone returns an independent deep copy (cells are shared values, which is
// safe because the regimes never mutate them).
func (d *Dictionary[T]) Clone() *Dictionary[T] {
	c := *d
	c.basic = d.Basic()
	c.nonbasic = d.Nonbasic()
	c.b = d.B()
	c.z = d.Objective()
	c.shadow = d.Shadow()
	c.a = make([][]T, d.m)
	for i := 0; i < d.m; i++ {
		c.a[i] = d.Row(i)
	}

	return &c
}

// Equal reports whether o encodes the same tableau: same dimensions, the
// same id mappings, and every coefficient equal under d's policy. The
// shadow rows must be both absent or equal.
//
// Complexity: O(m·n).
func (d *Dictionary[T]) Equal(o *Dictionary[T]) bool {
	if o == nil || d.m != o.m || d.n != o.n {
		return false
	}
	if !sameInts(d.basic, o.basic) || !sameInts(d.nonbasic, o.nonbasic) {
		return false
	}
	if !d.sameRow(d.b, o.b) || !d.sameRow(d.z, o.z) {
		return false
	}
	if (d.shadow == nil) != (o.shadow == nil) || !d.sameRow(d.shadow, o.shadow) {
		return false
	}
	for i := 0; i < d.m; i++ {
		if !d.sameRow(d.a[i], o.a[i]) {
			return false
		}
	}

	return true
}

func (d *Dictionary[T]) sameRow(x, y []T) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if d.pol.Ne(x[i], y[i]) {
			return false
		}
	}

	return true
}

func sameInts(x, y []int) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}

	return true
}

// ---------- Index helpers ----------

// sentinel is strictly greater than every variable id in use.
func (d *Dictionary[T]) sentinel() int { return d.maxID + 1 }

// colOf returns the column of a nonbasic id, or -1.
func (d *Dictionary[T]) colOf(id int) int {
	for j, v := range d.nonbasic {
		if v == id {
			return j
		}
	}

	return -1
}

// rowOf returns the row of a basic id, or -1.
func (d *Dictionary[T]) rowOf(id int) int {
	for i, v := range d.basic {
		if v == id {
			return i
		}
	}

	return -1
}
