package shapedraw

import "fmt"

// SolveTridiagonal solves the tridiagonal linear system
//
//	bd[i]·x[i−1] + d[i]·x[i] + ad[i]·x[i+1] = rhs[i]
//
// using the Thomas algorithm: forward elimination followed by back
// substitution, in O(n) time. bd[0] and ad[n−1] lie outside the matrix and
// are ignored. The x and y coordinates of rhs are solved together but are
// independent systems sharing the same coefficients.
//
// The inputs are not modified. All four slices must have the same length;
// otherwise SolveTridiagonal panics. Pivots are not checked, so a singular or
// near-singular system yields infinite or NaN entries.
func SolveTridiagonal(bd, d, ad []float64, rhs []Vec2) []Vec2 {
	n := len(rhs)
	if len(bd) != n || len(d) != n || len(ad) != n {
		panic(fmt.Sprintf("mismatched tridiagonal system: len(bd)=%d, len(d)=%d, len(ad)=%d, len(rhs)=%d",
			len(bd), len(d), len(ad), n))
	}
	switch n {
	case 0:
		return nil
	case 1:
		return []Vec2{rhs[0].Div(d[0])}
	}

	// c and r hold the modified super-diagonal and right-hand side.
	c := make([]float64, n)
	r := make([]Vec2, n)

	c[0] = ad[0] / d[0]
	r[0] = rhs[0].Div(d[0])
	for i := 1; i < n-1; i++ {
		m := d[i] - bd[i]*c[i-1]
		c[i] = ad[i] / m
		r[i] = rhs[i].Sub(r[i-1].Mul(bd[i])).Div(m)
	}
	last := n - 1
	r[last] = rhs[last].Sub(r[last-1].Mul(bd[last])).Div(d[last] - bd[last]*c[last-1])

	x := r
	for i := last - 1; i >= 0; i-- {
		x[i] = r[i].Sub(x[i+1].Mul(c[i]))
	}
	return x
}
