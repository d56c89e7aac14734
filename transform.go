package smoothrect

import (
	"fmt"
	"math"
)

// === Affine Transformations ================================================

// AT is an affine transform, a 3x3 matrix flattened by rows. The last row is
// always (0,0,1).
type AT [9]float64

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	return AT{1, 0, p.X(), 0, 1, p.Y(), 0, 0, 1}
}

// Scaling transform. Scale a point by sx and sy, relative to the origin.
func Scaling(sx, sy float64) AT {
	return AT{sx, 0, 0, 0, sy, 0, 0, 0, 1}
}

// Rotation transform. Rotate a point around the origin by theta radians.
// As y grows downwards, positive angles turn clockwise on screen.
func Rotation(theta float64) AT {
	sin, cos := math.Sincos(theta)
	return AT{cos, -sin, 0, sin, cos, 0, 0, 0, 1}
}

// RotationAround rotates by theta around pivot c.
func RotationAround(c Pair, theta float64) AT {
	return Translation(-c).Combine(Rotation(theta)).Combine(Translation(c))
}

// Combine 2 affine transformation to a new one: m is applied first, then n.
// Neither argument is changed.
func (m AT) Combine(n AT) AT {
	var o AT
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += n[row*3+k] * m[k*3+col]
			}
			o[row*3+col] = sum
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.F()
	return P(m[0]*x+m[1]*y+m[2], m[3]*x+m[4]*y+m[5])
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
