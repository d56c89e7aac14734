package smoothrect

// QuarterRotate rotates v by k quarter turns, each 90° clockwise on screen
// (x to the right, y downwards). k is taken modulo 4, negative values
// included:
//
//	0 = +X +Y
//	1 = -Y +X
//	2 = -X -Y
//	3 = +Y -X
//
// The result is exact: axis values are swapped for odd k and the signs are
// picked from the quadrant of k+1 (x-axis) and of k (y-axis). No
// trigonometry is involved, so |QuarterRotate(v,k)| == |v| holds bit for bit.
func QuarterRotate(v Pair, k int) Pair {
	k = ((k % 4) + 4) % 4
	signX := 1.0
	if (k+1)%4 >= 2 {
		signX = -1.0
	}
	signY := 1.0
	if k >= 2 {
		signY = -1.0
	}
	x, y := v.X(), v.Y()
	if k%2 == 1 {
		x, y = y, x
	}
	return P(signX*x, signY*y)
}

// Transposed returns v with its axes swapped.
func Transposed(v Pair) Pair {
	return P(v.Y(), v.X())
}
