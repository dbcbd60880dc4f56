// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
	"strconv"
)

// Float is the tolerant floating-point regime.
//
// Eps must be finite and > 0: with Eps == 0 the interval equality
// a-eps < b < a+eps is empty and nothing compares equal.
type Float struct {
	Eps float64
}

// Compile-time conformance.
var _ Arith[float64] = Float{}

func (Float) Zero() float64 { return 0 }
func (Float) One() float64 { return 1 }
func (Float) FromInt(v int64) float64 { return float64(v) }
func (Float) Add(a, b float64) float64 { return a + b }
func (Float) Sub(a, b float64) float64 { return a - b }
func (Float) Mul(a, b float64) float64 { return a * b }
func (Float) Quo(a, b float64) float64 { return a / b }
func (Float) Neg(a float64) float64 { return -a }
func (Float) Floor(a float64) float64 { return math.Floor(a) }
func (Float) Round(a float64) float64 { return math.Round(a) }
func (Float) Float64(a float64) float64 { return a }

// Parse accepts anything strconv.ParseFloat accepts.
func (Float) Parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}

	return v, nil
}

// Sign is exact: -0 and +0 both report 0.
func (Float) Sign(a float64) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	default:
		return 0
	}
}

// Less reports a + eps < b.
func (f Float) Less(a, b float64) bool { return a+f.Eps < b }

// Equal is an interval test, symmetric around a: a-eps < b < a+eps.
func (f Float) Equal(a, b float64) bool { return a-f.Eps < b && b < a+f.Eps }

// Format prints integral values with one decimal ("24.0") and others in the
// shortest form that parses back to the same float64. Negative zero prints
// as "0.0".
func (Float) Format(a float64) string {
	if a == 0 {
		a = 0
	}
	if a == math.Trunc(a) && math.Abs(a) < 1e15 {
		return strconv.FormatFloat(a, 'f', 1, 64)
	}

	return strconv.FormatFloat(a, 'g', -1, 64)
}
