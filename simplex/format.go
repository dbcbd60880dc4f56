// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtBar     = "|"
	_fmtRule    = "-"
	_fmtZLabel  = "z"
	_fmtSLabel  = "s"
	_fmtColSep  = " "
	_fmtNewLine = "\n"
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dictionary[float64])(nil)

// String renders the dictionary as a right-aligned table:
//
//	3 | 10.0 -2.0 -1.0
//	4 | 15.0 -1.0 -3.0
//	- -    -    -    -
//	z |  0.0  4.0  3.0
//	            1    2
//
// One line per basic row (id | b a_i1 … a_in), a rule, the objective row,
// the shadow row while auxiliary, and a footer with the nonbasic ids.
func (d *Dictionary[T]) String() string {
	table := make([][]string, 0, d.m+4)
	for i := 0; i < d.m; i++ {
		table = append(table, d.line(strconv.Itoa(d.basic[i]), d.b[i], d.a[i]))
	}

	rule := make([]string, d.n+3)
	for j := range rule {
		rule[j] = _fmtRule
	}
	table = append(table, rule)
	table = append(table, d.line(_fmtZLabel, d.z[0], d.z[1:]))
	if d.shadow != nil {
		table = append(table, d.line(_fmtSLabel, d.shadow[0], d.shadow[1:]))
	}

	footer := make([]string, d.n+3)
	for j := 0; j < d.n; j++ {
		footer[j+3] = strconv.Itoa(d.nonbasic[j])
	}
	table = append(table, footer)

	return renderTable(table)
}

func (d *Dictionary[T]) line(label string, c T, coeffs []T) []string {
	row := make([]string, 0, len(coeffs)+3)
	row = append(row, label, _fmtBar, d.pol.Format(c))
	for _, v := range coeffs {
		row = append(row, d.pol.Format(v))
	}

	return row
}

// renderTable right-aligns every column to its widest cell.
func renderTable(table [][]string) string {
	var widths []int
	for _, row := range table {
		for j, cell := range row {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}

	var sb strings.Builder
	for _, row := range table {
		for j, cell := range row {
			if j > 0 {
				sb.WriteString(_fmtColSep)
			}
			sb.WriteString(strings.Repeat(" ", widths[j]-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteString(_fmtNewLine)
	}

	return sb.String()
}
