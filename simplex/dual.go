// SPDX-License-Identifier: MIT

package simplex

// Dualize replaces the dictionary with the dictionary of its dual LP:
//
//	A' = -Aᵀ    b' = -z[1:]    z' = [-z[0], -b...]
//
// with the basic and nonbasic identifier lists (and m, n) swapped. Only
// negation and transposition are involved, so Dualize is an exact
// involution in both regimes.
//
// Panics when the dictionary is auxiliary: the shadow row has no dual
// counterpart, so Phase I must be finished (or abandoned) first.
//
// Complexity: O(m·n).
func (d *Dictionary[T]) Dualize() {
	if d.shadow != nil {
		panic(panicDualizeAux)
	}

	var (
		at = make([][]T, d.n)
		nb = make([]T, d.n)
		nz = make([]T, d.m+1)
		i  int
		j  int
	)
	for j = 0; j < d.n; j++ {
		at[j] = make([]T, d.m)
		for i = 0; i < d.m; i++ {
			at[j][i] = d.pol.Neg(d.a[i][j])
		}
		nb[j] = d.pol.Neg(d.z[j+1])
	}
	nz[0] = d.pol.Neg(d.z[0])
	for i = 0; i < d.m; i++ {
		nz[i+1] = d.pol.Neg(d.b[i])
	}

	d.m, d.n = d.n, d.m
	d.basic, d.nonbasic = d.nonbasic, d.basic
	d.a, d.b, d.z = at, nb, nz
}

// Undualize returns from the dual dictionary to the primal one; the dual of
// the dual is the primal.
func (d *Dictionary[T]) Undualize() { d.Dualize() }
