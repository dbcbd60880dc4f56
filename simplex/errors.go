// SPDX-License-Identifier: MIT
// Package simplex: sentinel error set.
// Constructors and solvers return these sentinels (possibly wrapped with
// fmt.Errorf("...: %w", ErrX)); tests match them via errors.Is.
// Panics are reserved for programmer errors: calling a dictionary operation
// whose structural precondition does not hold (see panic* constants below).

package simplex

import "errors"

// ERROR PRIORITY (enforced by validateInput):
// options -> shape -> identifiers -> numeric values.

var (
	// ErrBadShape is returned when M or N is negative.
	ErrBadShape = errors.New("simplex: invalid shape")

	// ErrDimensionMismatch indicates that a slice length disagrees with M/N
	// (basic ids, nonbasic ids, b, rows of A, z).
	ErrDimensionMismatch = errors.New("simplex: dimension mismatch")

	// ErrDuplicateVariable indicates that a variable id occurs twice among
	// the basic and nonbasic ids.
	ErrDuplicateVariable = errors.New("simplex: duplicate variable id")

	// ErrNegativeVariable indicates a negative variable id.
	ErrNegativeVariable = errors.New("simplex: negative variable id")

	// ErrReservedVariable indicates use of id 0, which is reserved for the
	// Phase I auxiliary variable.
	ErrReservedVariable = errors.New("simplex: variable id 0 is reserved")

	// ErrNaNInf signals a NaN or ±Inf coefficient in a float dictionary.
	ErrNaNInf = errors.New("simplex: NaN or Inf encountered")

	// ErrInvalidEpsilon is returned when the float regime is configured with
	// a non-finite or non-positive tolerance.
	ErrInvalidEpsilon = errors.New("simplex: epsilon must be finite and > 0")

	// ErrInvalidOption signals a negative limit in Options.
	ErrInvalidOption = errors.New("simplex: invalid option")

	// ErrUnsupportedStrategy signals an unknown integer strategy.
	ErrUnsupportedStrategy = errors.New("simplex: unsupported ILP strategy")

	// ErrPivotLimit is returned when a simplex run exceeds Options.MaxPivots.
	ErrPivotLimit = errors.New("simplex: pivot limit exceeded")

	// ErrCutLimit is returned when SolveILP exceeds Options.MaxCutRounds.
	ErrCutLimit = errors.New("simplex: cut round limit exceeded")

	// ErrTimeLimit is returned when a solve exceeds Options.TimeLimit.
	ErrTimeLimit = errors.New("simplex: time limit exceeded")
)

// ---------- Panic messages (programmer errors, no magic strings) ----------

const (
	panicUnknownEntering = "simplex: entering variable is not nonbasic"
	panicUnknownLeaving  = "simplex: leaving variable is not basic"
	panicEnteringSign    = "simplex: entering variable has a negative objective coefficient"
	panicZeroPivot       = "simplex: pivot coefficient is zero"
	panicAlreadyAux      = "simplex: dictionary is already auxiliary"
	panicNotAux          = "simplex: dictionary is not auxiliary"
	panicAuxNotZero      = "simplex: auxiliary objective is not zero"
	panicDualizeAux      = "simplex: cannot dualize an auxiliary dictionary"
	panicCutRowRange     = "simplex: cut row out of range"
	panicCutIntegral     = "simplex: cut row is already integral"
	panicEmptyInfeasible = "simplex: no row drives infeasibility"
	panicNilArith        = "simplex: nil Arith"
)
