package noise

import (
	"math"
)

// Skew/unskew constants for the 2D/3D/4D simplex lattices.
var (
	sqrt3 = math.Sqrt(3.0)
	sqrt5 = math.Sqrt(5.0)
	f2    = 0.5 * (sqrt3 - 1.0)
	g2    = (3.0 - sqrt3) / 6.0
	f3    = 1.0 / 3.0
	g3    = 1.0 / 6.0
	f4    = (sqrt5 - 1.0) / 4.0
	g4    = (5.0 - sqrt5) / 20.0
)

// Gradient sets for the 3D (also reused in 2D) and 4D kernels.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

var grad4 = [32][4]float64{
	{0, 1, 1, 1}, {0, 1, 1, -1}, {0, 1, -1, 1}, {0, 1, -1, -1},
	{0, -1, 1, 1}, {0, -1, 1, -1}, {0, -1, -1, 1}, {0, -1, -1, -1},
	{1, 0, 1, 1}, {1, 0, 1, -1}, {1, 0, -1, 1}, {1, 0, -1, -1},
	{-1, 0, 1, 1}, {-1, 0, 1, -1}, {-1, 0, -1, 1}, {-1, 0, -1, -1},
	{1, 1, 0, 1}, {1, 1, 0, -1}, {1, -1, 0, 1}, {1, -1, 0, -1},
	{-1, 1, 0, 1}, {-1, 1, 0, -1}, {-1, -1, 0, 1}, {-1, -1, 0, -1},
	{1, 1, 1, 0}, {1, 1, -1, 0}, {1, -1, 1, 0}, {1, -1, -1, 0},
	{-1, 1, 1, 0}, {-1, 1, -1, 0}, {-1, -1, 1, 0}, {-1, -1, -1, 0},
}

// Traversal order lookup for the 24 valid 4D simplices, indexed by the six
// pairwise coordinate comparisons packed into a 6-bit number.
var simplexOrder = [64][4]int{
	{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 0, 0, 0}, {0, 2, 3, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {1, 2, 3, 0},
	{0, 2, 1, 3}, {0, 0, 0, 0}, {0, 3, 1, 2}, {0, 3, 2, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {1, 3, 2, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{1, 2, 0, 3}, {0, 0, 0, 0}, {1, 3, 0, 2}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {2, 3, 0, 1}, {2, 3, 1, 0},
	{1, 0, 2, 3}, {1, 0, 3, 2}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {2, 0, 3, 1}, {0, 0, 0, 0}, {2, 1, 3, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{2, 0, 1, 3}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {3, 0, 1, 2}, {3, 0, 2, 1}, {0, 0, 0, 0}, {3, 1, 2, 0},
	{2, 1, 0, 3}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {3, 1, 0, 2}, {0, 0, 0, 0}, {3, 2, 0, 1}, {3, 2, 1, 0},
}

// Noise2 is the 2D gradient kernel, nominally in [-1, 1].
func (e *Engine) Noise2(x, y float64) float64 {
	var n0, n1, n2 float64

	s := (x + y) * f2
	i := math.Floor(x + s)
	j := math.Floor(y + s)
	t := (i + j) * g2
	x0 := x - (i - t)
	y0 := y - (j - t)

	var i1, j1 int
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := int(i) & 255
	jj := int(j) & 255
	gi0 := e.perm[ii+e.perm[jj]] % 12
	gi1 := e.perm[ii+i1+e.perm[jj+j1]] % 12
	gi2 := e.perm[ii+1+e.perm[jj+1]] % 12

	if t0 := 0.5 - x0*x0 - y0*y0; t0 >= 0 {
		t0 *= t0
		n0 = t0 * t0 * (grad3[gi0][0]*x0 + grad3[gi0][1]*y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 >= 0 {
		t1 *= t1
		n1 = t1 * t1 * (grad3[gi1][0]*x1 + grad3[gi1][1]*y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 >= 0 {
		t2 *= t2
		n2 = t2 * t2 * (grad3[gi2][0]*x2 + grad3[gi2][1]*y2)
	}

	return 70.0 * (n0 + n1 + n2)
}

// Noise3 is the 3D gradient kernel, nominally in [-1, 1]. Corner
// contributions are summed in a fixed order so results are portable across
// platforms.
func (e *Engine) Noise3(x, y, z float64) float64 {
	var n0, n1, n2, n3 float64

	s := (x + y + z) * f3
	i := math.Floor(x + s)
	j := math.Floor(y + s)
	k := math.Floor(z + s)
	t := (i + j + k) * g3
	x0 := x - (i - t)
	y0 := y - (j - t)
	z0 := z - (k - t)

	// Rank the offsets to find the simplex traversal order.
	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, i2, j2 = 1, 1, 1
		case x0 >= z0:
			i1, i2, k2 = 1, 1, 1
		default:
			k1, i2, k2 = 1, 1, 1
		}
	} else {
		switch {
		case y0 < z0:
			k1, j2, k2 = 1, 1, 1
		case x0 < z0:
			j1, j2, k2 = 1, 1, 1
		default:
			j1, i2, j2 = 1, 1, 1
		}
	}

	x1 := x0 - float64(i1) + g3
	y1 := y0 - float64(j1) + g3
	z1 := z0 - float64(k1) + g3
	x2 := x0 - float64(i2) + 2.0*g3
	y2 := y0 - float64(j2) + 2.0*g3
	z2 := z0 - float64(k2) + 2.0*g3
	x3 := x0 - 1.0 + 3.0*g3
	y3 := y0 - 1.0 + 3.0*g3
	z3 := z0 - 1.0 + 3.0*g3

	ii := int(i) & 255
	jj := int(j) & 255
	kk := int(k) & 255
	gi0 := e.perm[ii+e.perm[jj+e.perm[kk]]] % 12
	gi1 := e.perm[ii+i1+e.perm[jj+j1+e.perm[kk+k1]]] % 12
	gi2 := e.perm[ii+i2+e.perm[jj+j2+e.perm[kk+k2]]] % 12
	gi3 := e.perm[ii+1+e.perm[jj+1+e.perm[kk+1]]] % 12

	if t0 := 0.5 - x0*x0 - y0*y0 - z0*z0; t0 >= 0 {
		t0 *= t0
		n0 = t0 * t0 * (grad3[gi0][0]*x0 + grad3[gi0][1]*y0 + grad3[gi0][2]*z0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1 - z1*z1; t1 >= 0 {
		t1 *= t1
		n1 = t1 * t1 * (grad3[gi1][0]*x1 + grad3[gi1][1]*y1 + grad3[gi1][2]*z1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2 - z2*z2; t2 >= 0 {
		t2 *= t2
		n2 = t2 * t2 * (grad3[gi2][0]*x2 + grad3[gi2][1]*y2 + grad3[gi2][2]*z2)
	}
	if t3 := 0.5 - x3*x3 - y3*y3 - z3*z3; t3 >= 0 {
		t3 *= t3
		n3 = t3 * t3 * (grad3[gi3][0]*x3 + grad3[gi3][1]*y3 + grad3[gi3][2]*z3)
	}

	return 32.0 * (n0 + n1 + n2 + n3)
}

// Noise4 is the 4D gradient kernel, nominally in [-1, 1].
func (e *Engine) Noise4(x, y, z, w float64) float64 {
	var n0, n1, n2, n3, n4 float64

	s := (x + y + z + w) * f4
	i := math.Floor(x + s)
	j := math.Floor(y + s)
	k := math.Floor(z + s)
	l := math.Floor(w + s)
	t := (i + j + k + l) * g4
	x0 := x - (i - t)
	y0 := y - (j - t)
	z0 := z - (k - t)
	w0 := w - (l - t)

	// Pack the six pairwise comparisons into an index over the traversal
	// table; only the 24 entries for consistent orderings are ever hit.
	c := 0
	if x0 > y0 {
		c |= 32
	}
	if x0 > z0 {
		c |= 16
	}
	if y0 > z0 {
		c |= 8
	}
	if x0 > w0 {
		c |= 4
	}
	if y0 > w0 {
		c |= 2
	}
	if z0 > w0 {
		c |= 1
	}
	order := simplexOrder[c]

	var i1, j1, k1, l1, i2, j2, k2, l2, i3, j3, k3, l3 int
	if order[0] >= 3 {
		i1 = 1
	}
	if order[1] >= 3 {
		j1 = 1
	}
	if order[2] >= 3 {
		k1 = 1
	}
	if order[3] >= 3 {
		l1 = 1
	}
	if order[0] >= 2 {
		i2 = 1
	}
	if order[1] >= 2 {
		j2 = 1
	}
	if order[2] >= 2 {
		k2 = 1
	}
	if order[3] >= 2 {
		l2 = 1
	}
	if order[0] >= 1 {
		i3 = 1
	}
	if order[1] >= 1 {
		j3 = 1
	}
	if order[2] >= 1 {
		k3 = 1
	}
	if order[3] >= 1 {
		l3 = 1
	}

	x1 := x0 - float64(i1) + g4
	y1 := y0 - float64(j1) + g4
	z1 := z0 - float64(k1) + g4
	w1 := w0 - float64(l1) + g4
	x2 := x0 - float64(i2) + 2.0*g4
	y2 := y0 - float64(j2) + 2.0*g4
	z2 := z0 - float64(k2) + 2.0*g4
	w2 := w0 - float64(l2) + 2.0*g4
	x3 := x0 - float64(i3) + 3.0*g4
	y3 := y0 - float64(j3) + 3.0*g4
	z3 := z0 - float64(k3) + 3.0*g4
	w3 := w0 - float64(l3) + 3.0*g4
	x4 := x0 - 1.0 + 4.0*g4
	y4 := y0 - 1.0 + 4.0*g4
	z4 := z0 - 1.0 + 4.0*g4
	w4 := w0 - 1.0 + 4.0*g4

	ii := int(i) & 255
	jj := int(j) & 255
	kk := int(k) & 255
	ll := int(l) & 255
	gi0 := e.perm[ii+e.perm[jj+e.perm[kk+e.perm[ll]]]] % 32
	gi1 := e.perm[ii+i1+e.perm[jj+j1+e.perm[kk+k1+e.perm[ll+l1]]]] % 32
	gi2 := e.perm[ii+i2+e.perm[jj+j2+e.perm[kk+k2+e.perm[ll+l2]]]] % 32
	gi3 := e.perm[ii+i3+e.perm[jj+j3+e.perm[kk+k3+e.perm[ll+l3]]]] % 32
	gi4 := e.perm[ii+1+e.perm[jj+1+e.perm[kk+1+e.perm[ll+1]]]] % 32

	if t0 := 0.5 - x0*x0 - y0*y0 - z0*z0 - w0*w0; t0 >= 0 {
		t0 *= t0
		n0 = t0 * t0 * (grad4[gi0][0]*x0 + grad4[gi0][1]*y0 + grad4[gi0][2]*z0 + grad4[gi0][3]*w0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1 - z1*z1 - w1*w1; t1 >= 0 {
		t1 *= t1
		n1 = t1 * t1 * (grad4[gi1][0]*x1 + grad4[gi1][1]*y1 + grad4[gi1][2]*z1 + grad4[gi1][3]*w1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2 - z2*z2 - w2*w2; t2 >= 0 {
		t2 *= t2
		n2 = t2 * t2 * (grad4[gi2][0]*x2 + grad4[gi2][1]*y2 + grad4[gi2][2]*z2 + grad4[gi2][3]*w2)
	}
	if t3 := 0.5 - x3*x3 - y3*y3 - z3*z3 - w3*w3; t3 >= 0 {
		t3 *= t3
		n3 = t3 * t3 * (grad4[gi3][0]*x3 + grad4[gi3][1]*y3 + grad4[gi3][2]*z3 + grad4[gi3][3]*w3)
	}
	if t4 := 0.5 - x4*x4 - y4*y4 - z4*z4 - w4*w4; t4 >= 0 {
		t4 *= t4
		n4 = t4 * t4 * (grad4[gi4][0]*x4 + grad4[gi4][1]*y4 + grad4[gi4][2]*z4 + grad4[gi4][3]*w4)
	}

	return 27.0 * (n0 + n1 + n2 + n3 + n4)
}
