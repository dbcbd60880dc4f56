// SPDX-License-Identifier: MIT

// Package simplex: solver configuration.
//
// Options is a plain struct resolved once, when a Dictionary is built; there
// is no process-wide state, so dictionaries with different regimes and
// strategies can be solved side by side.
//
// Design goals:
//   - Deterministic behavior: no randomness, no map iteration in hot paths.
//   - No dead switches: each field impacts behavior and is covered by tests.
//   - Limits are opt-in guards: zero means "no limit".
package simplex

import (
	"math"
	"time"

	"github.com/katalvlaran/lvlp/numeric"
)

// Strategy selects how SolveILP re-optimizes after adding cuts.
type Strategy int

const (
	// DualAccelerated re-optimizes the dual of the cut dictionary: each cut
	// is a new column there, and the dual-feasible basis is kept.
	DualAccelerated Strategy = iota

	// PrimalOnly re-solves the primal from the now infeasible basis,
	// re-entering Phase I after every round of cuts.
	PrimalOnly
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case DualAccelerated:
		return "DualAccelerated"
	case PrimalOnly:
		return "PrimalOnly"
	default:
		return "Strategy(?)"
	}
}

// Phase identifies the stage reported to Options.OnPhase.
type Phase int

const (
	// PhaseFeasibility is Phase I: driving the auxiliary variable to zero.
	PhaseFeasibility Phase = iota + 1
	// PhaseOptimality is Phase II: optimizing the real objective.
	PhaseOptimality
	// PhaseCutting marks the start of a round of Gomory cuts.
	PhaseCutting
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseFeasibility:
		return "PhaseFeasibility"
	case PhaseOptimality:
		return "PhaseOptimality"
	case PhaseCutting:
		return "PhaseCutting"
	default:
		return "Phase(?)"
	}
}

// Defaults (single source of truth for DefaultOptions).
const (
	// DefaultEpsilon is the float regime tolerance.
	DefaultEpsilon = numeric.DefaultEpsilon

	// DefaultStrategy is the ILP re-optimization strategy.
	DefaultStrategy = DualAccelerated

	// DefaultMaxPivots caps a single simplex run. Bland's rule terminates in
	// exact arithmetic, but tolerance effects can still stall a float run.
	DefaultMaxPivots = 1_000_000

	// DefaultMaxCutRounds caps SolveILP rounds of cuts.
	DefaultMaxCutRounds = 10_000
)

// Options configures a Dictionary.
//
// Fields:
//   - Epsilon     : tolerance of the float regime; ignored by NewRational.
//   - Strategy    : DualAccelerated (default) or PrimalOnly for SolveILP.
//   - MaxPivots   : pivots allowed per simplex run; 0 means unlimited.
//   - MaxCutRounds: rounds of cuts allowed per SolveILP; 0 means unlimited.
//   - TimeLimit   : wall budget for SolveLP/SolveDualLP/SolveILP; 0 disables.
//   - OnPivot     : called after every pivot with the new objective value.
//   - OnPhase     : called when a phase starts.
//   - OnCut       : called for every cut with the source row and the new id.
//
// Hooks run synchronously on the solving goroutine and must not mutate the
// dictionary.
type Options struct {
	Epsilon      float64
	Strategy     Strategy
	MaxPivots    int
	MaxCutRounds int
	TimeLimit    time.Duration

	OnPivot func(entering, leaving int, objective float64)
	OnPhase func(p Phase)
	OnCut   func(row, id int)
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Epsilon:      DefaultEpsilon,
		Strategy:     DefaultStrategy,
		MaxPivots:    DefaultMaxPivots,
		MaxCutRounds: DefaultMaxCutRounds,
	}
}

// validateOptions checks regime-independent fields.
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.MaxPivots < 0 || opts.MaxCutRounds < 0 || opts.TimeLimit < 0 {
		return ErrInvalidOption
	}
	switch opts.Strategy {
	case DualAccelerated, PrimalOnly:
		// ok
	default:
		return ErrUnsupportedStrategy
	}

	return nil
}

// validateEpsilon checks the float regime tolerance.
func validateEpsilon(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return ErrInvalidEpsilon
	}

	return nil
}
