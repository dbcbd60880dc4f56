// SPDX-License-Identifier: MIT

// Package lpfile reads and writes the tabular dictionary format:
//
//	m n
//	basic ids             (m integers)
//	nonbasic ids          (n integers)
//	b                     (m numbers)
//	A                     (m lines of n numbers)
//	z                     (n+1 numbers, constant first)
//
// Tokens are whitespace separated; blank lines are ignored. Numbers are
// parsed by the regime's Arith, so an exact reader accepts "3/4" as well.
package lpfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlp/numeric"
	"github.com/katalvlaran/lvlp/simplex"
)

var (
	// ErrSyntax indicates a token that is not a valid integer or number.
	ErrSyntax = errors.New("lpfile: syntax error")

	// ErrShape indicates a line with the wrong number of tokens, a missing
	// line, or trailing content.
	ErrShape = errors.New("lpfile: unexpected shape")
)

// lineReader yields the non-blank lines of r with their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() ([]string, error) {
	for lr.sc.Scan() {
		lr.line++
		if f := strings.Fields(lr.sc.Text()); len(f) > 0 {
			return f, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("line %d: missing line: %w", lr.line+1, ErrShape)
}

// want reads the next line and checks it has exactly n tokens. An empty
// sequence (n == 0) consumes nothing, since blank lines are skipped.
func (lr *lineReader) want(n int, what string) ([]string, error) {
	if n == 0 {
		return nil, nil
	}
	f, err := lr.next()
	if err != nil {
		return nil, err
	}
	if len(f) != n {
		return nil, fmt.Errorf("line %d: %s: got %d values, want %d: %w", lr.line, what, len(f), n, ErrShape)
	}

	return f, nil
}

func (lr *lineReader) ints(n int, what string) ([]int, error) {
	f, err := lr.want(n, what)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(f))
	for i, tok := range f {
		if out[i], err = strconv.Atoi(tok); err != nil {
			return nil, fmt.Errorf("line %d: %s: %q: %w", lr.line, what, tok, ErrSyntax)
		}
	}

	return out, nil
}

func numbers[T any](lr *lineReader, ar numeric.Arith[T], n int, what string) ([]T, error) {
	f, err := lr.want(n, what)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(f))
	for i, tok := range f {
		if out[i], err = ar.Parse(tok); err != nil {
			return nil, fmt.Errorf("line %d: %s: %q: %w", lr.line, what, tok, ErrSyntax)
		}
	}

	return out, nil
}

// Read parses one dictionary from r using ar for the numbers.
//
// The result is not validated beyond its shape; hand it to simplex.New,
// NewFloat or NewRational, which enforce the identifier invariants.
//
// Errors: ErrSyntax, ErrShape (wrapped with the line number) or the
// underlying read error.
func Read[T any](r io.Reader, ar numeric.Arith[T]) (simplex.Input[T], error) {
	lr := &lineReader{sc: bufio.NewScanner(r)}

	dims, err := lr.ints(2, "dimensions")
	if err != nil {
		return simplex.Input[T]{}, err
	}
	m, n := dims[0], dims[1]
	if m < 0 || n < 0 {
		return simplex.Input[T]{}, fmt.Errorf("line %d: dimensions: %w", lr.line, ErrShape)
	}

	// Nothing is sized from the header: a bogus m or n fails on the first
	// short line instead of allocating up front.
	in := simplex.Input[T]{M: m, N: n}
	if in.Basic, err = lr.ints(m, "basic ids"); err != nil {
		return simplex.Input[T]{}, err
	}
	if in.Nonbasic, err = lr.ints(n, "nonbasic ids"); err != nil {
		return simplex.Input[T]{}, err
	}
	if in.B, err = numbers(lr, ar, m, "b"); err != nil {
		return simplex.Input[T]{}, err
	}
	for i := 0; i < m; i++ {
		row, err := numbers(lr, ar, n, "A row "+strconv.Itoa(i))
		if err != nil {
			return simplex.Input[T]{}, err
		}
		in.A = append(in.A, row)
	}
	if in.Z, err = numbers(lr, ar, n+1, "z"); err != nil {
		return simplex.Input[T]{}, err
	}

	if _, err = lr.next(); err == nil {
		return simplex.Input[T]{}, fmt.Errorf("line %d: trailing content: %w", lr.line, ErrShape)
	} else if !errors.Is(err, ErrShape) {
		return simplex.Input[T]{}, err
	}

	return in, nil
}

// Write serializes d in the format accepted by Read. The dictionary must
// not be auxiliary (the shadow row has no place in the format).
func Write[T any](w io.Writer, d *simplex.Dictionary[T]) error {
	if d.IsAuxiliary() {
		return fmt.Errorf("lpfile: auxiliary dictionary: %w", ErrShape)
	}
	var (
		bw  = bufio.NewWriter(w)
		pol = d.Policy()
	)
	ints := func(vs []int) {
		for i, v := range vs {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}
	nums := func(vs []T) {
		for i, v := range vs {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(pol.Format(v))
		}
		bw.WriteByte('\n')
	}

	ints([]int{d.M(), d.N()})
	ints(d.Basic())
	ints(d.Nonbasic())
	nums(d.B())
	for i := 0; i < d.M(); i++ {
		nums(d.Row(i))
	}
	nums(d.Objective())

	return bw.Flush()
}
