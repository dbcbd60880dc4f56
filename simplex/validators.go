// SPDX-License-Identifier: MIT

// Package simplex: input validation.
//
// Deterministic, side-effect free checks run once by the constructors.
// No panics on user input, only sentinel errors from errors.go wrapped with
// the offending position.
package simplex

import (
	"fmt"
	"math"
)

// validatorErrorf wraps a sentinel with the failing field and position.
func validatorErrorf(field string, idx int, err error) error {
	return fmt.Errorf("Input.%s[%d]: %w", field, idx, err)
}

// validateInput checks the shape of in and the identifier partition.
// It returns the largest identifier in use.
//
// Contract:
//   - M, N ≥ 0; len(Basic)==len(B)==len(A)==M; len(Nonbasic)==N;
//     every row of A has N entries; len(Z)==N+1.
//   - ids are ≥ 1 and pairwise distinct across Basic ∪ Nonbasic.
//
// Complexity: O(M·N) time, O(M+N) extra space.
func validateInput[T any](in Input[T]) (int, error) {
	if in.M < 0 || in.N < 0 {
		return 0, ErrBadShape
	}
	switch {
	case len(in.Basic) != in.M:
		return 0, fmt.Errorf("Input.Basic: %w", ErrDimensionMismatch)
	case len(in.Nonbasic) != in.N:
		return 0, fmt.Errorf("Input.Nonbasic: %w", ErrDimensionMismatch)
	case len(in.B) != in.M:
		return 0, fmt.Errorf("Input.B: %w", ErrDimensionMismatch)
	case len(in.A) != in.M:
		return 0, fmt.Errorf("Input.A: %w", ErrDimensionMismatch)
	case len(in.Z) != in.N+1:
		return 0, fmt.Errorf("Input.Z: %w", ErrDimensionMismatch)
	}
	var i int
	for i = 0; i < in.M; i++ {
		if len(in.A[i]) != in.N {
			return 0, validatorErrorf("A", i, ErrDimensionMismatch)
		}
	}

	var (
		seen  = make(map[int]struct{}, in.M+in.N)
		maxID int
	)
	check := func(field string, ids []int) error {
		for k, id := range ids {
			switch {
			case id < 0:
				return validatorErrorf(field, k, ErrNegativeVariable)
			case id == AuxVariable:
				return validatorErrorf(field, k, ErrReservedVariable)
			}
			if _, dup := seen[id]; dup {
				return validatorErrorf(field, k, ErrDuplicateVariable)
			}
			seen[id] = struct{}{}
			if id > maxID {
				maxID = id
			}
		}

		return nil
	}
	if err := check("Basic", in.Basic); err != nil {
		return 0, err
	}
	if err := check("Nonbasic", in.Nonbasic); err != nil {
		return 0, err
	}

	return maxID, nil
}

// validateFinite rejects NaN and ±Inf anywhere in a float input.
// Complexity: O(M·N).
func validateFinite(in Input[float64]) error {
	bad := func(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
	var i, j int
	for i = 0; i < len(in.B); i++ {
		if bad(in.B[i]) {
			return validatorErrorf("B", i, ErrNaNInf)
		}
	}
	for i = 0; i < len(in.A); i++ {
		for j = 0; j < len(in.A[i]); j++ {
			if bad(in.A[i][j]) {
				return validatorErrorf("A", i, ErrNaNInf)
			}
		}
	}
	for j = 0; j < len(in.Z); j++ {
		if bad(in.Z[j]) {
			return validatorErrorf("Z", j, ErrNaNInf)
		}
	}

	return nil
}
