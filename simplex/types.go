// SPDX-License-Identifier: MIT

// Package simplex: domain types.
// This file contains ONLY domain-facing types (results, inputs, dictionary
// state). Errors and options live in errors.go and options.go.
package simplex

import (
	"time"

	"github.com/katalvlaran/lvlp/numeric"
)

// AuxVariable is the identifier of the Phase I auxiliary variable.
const AuxVariable = 0

// Status is the terminal outcome of an LP/ILP solve.
type Status int

const (
	// Optimal means Result.Value holds the optimal objective value.
	Optimal Status = iota
	// Unbounded means the objective improves without limit along a feasible ray.
	Unbounded
	// Infeasible means no point satisfies every constraint.
	Infeasible
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "OPTIMAL"
	case Unbounded:
		return "UNBOUNDED"
	case Infeasible:
		return "INFEASIBLE"
	default:
		return "Status(?)"
	}
}

// Result is the tagged outcome of SolveLP, SolveDualLP, SolveILP and
// RunSimplex. Value is meaningful only when Status == Optimal; otherwise it
// holds the zero of the regime. Pivots counts every pivot the call performed,
// including the Phase I pivots and those of later cutting rounds.
type Result[T any] struct {
	Status Status
	Value  T
	Pivots int
}

// IsOptimal reports Status == Optimal.
func (r Result[T]) IsOptimal() bool { return r.Status == Optimal }

// StepKind classifies one simplex step.
type StepKind int

const (
	// Pivoted means a pivot was performed.
	Pivoted StepKind = iota
	// Final means no entering variable exists: the dictionary is optimal.
	Final
	// Unbound means the entering variable has no limiting row.
	Unbound
)

// StepResult describes one call to Step. Entering and Leaving are set only
// when they were found; Objective is z[0] after the step.
type StepResult[T any] struct {
	Kind      StepKind
	Entering  int
	Leaving   int
	Objective T
}

// Input is the raw dictionary handed over by an external constructor
// (file reader, modeling code, StandardForm).
//
//	x_Basic[i] = B[i] + Σ_j A[i][j] · x_Nonbasic[j]      (i < M)
//	z          = Z[0] + Σ_j Z[j+1] · x_Nonbasic[j]
type Input[T any] struct {
	M, N     int
	Basic    []int
	Nonbasic []int
	B        []T
	A        [][]T
	Z        []T
}

// VarValue pairs a variable identifier with its current value.
type VarValue[T any] struct {
	ID    int
	Value T
}

// Dictionary is the mutable tableau. It is not safe for concurrent use:
// every operation borrows it exclusively until it returns.
type Dictionary[T any] struct {
	pol  numeric.Policy[T]
	opts Options

	m, n     int
	basic    []int // row -> variable id
	nonbasic []int // column -> variable id
	b        []T   // len m
	a        [][]T // m × n
	z        []T   // len n+1, z[0] is the objective constant
	shadow   []T   // len n+1 while auxiliary (Phase I), nil otherwise

	// maxID is the largest id ever used; maxID+1 is both the "no candidate"
	// sentinel and the next fresh id, so it exceeds every id in use.
	maxID int

	pivots   int       // pivots performed over the dictionary's lifetime
	deadline time.Time // zero when no time budget is armed
	steps    int       // sparse deadline checks counter
}
