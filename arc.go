package smoothrect

import "math"

// Arc is an elliptical arc in center parameterisation. A point at angle t
// lies at Center + Rotation(XRotation) applied to (RX·cos t, RY·sin t).
// Positive sweeps run clockwise on screen.
type Arc struct {
	Center    Pair
	RX, RY    float64
	XRotation float64 // radians
	Start     float64 // radians
	Sweep     float64 // radians, signed
}

// ArcCenter converts an endpoint arc, as used by SVG and by path.ArcTo,
// into center parameterisation. Radii too small to span from and to are
// scaled up uniformly. rot is the x-axis rotation in degrees.
//
// A zero radius or coinciding end points degrade the arc to a straight
// line; the result then has a zero sweep and its center half way between
// the end points.
func ArcCenter(from, to Pair, rx, ry, rot float64, small, clockwise bool) Arc {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if from.Equal(to) || Is0(rx) || Is0(ry) {
		return Arc{Center: (from + to).Scaled(0.5), RX: rx, RY: ry}
	}
	phi := rot * Deg2Rad
	sin, cos := math.Sincos(phi)
	dx2, dy2 := (from.X()-to.X())/2, (from.Y()-to.Y())/2
	x1p := cos*dx2 + sin*dy2
	y1p := -sin*dx2 + cos*dy2
	if lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry); lambda > 1 {
		tracer().Debugf("arc radii (%g,%g) too small, scaled by %g", rx, ry, math.Sqrt(lambda))
		rx *= math.Sqrt(lambda)
		ry *= math.Sqrt(lambda)
	}
	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1p*y1p - ry2*x1p*x1p
	den := rx2*y1p*y1p + ry2*x1p*x1p
	coef := math.Sqrt(math.Max(0, num/den))
	if small != clockwise { // SVG: large arc flag == sweep flag
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx
	center := P(cos*cxp-sin*cyp+(from.X()+to.X())/2, sin*cxp+cos*cyp+(from.Y()+to.Y())/2)
	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry
	start := math.Atan2(uy, ux)
	sweep := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if clockwise && sweep < 0 {
		sweep += 2 * math.Pi
	} else if !clockwise && sweep > 0 {
		sweep -= 2 * math.Pi
	}
	return Arc{Center: center, RX: rx, RY: ry, XRotation: phi, Start: start, Sweep: sweep}
}

// Point returns the point at angle t.
func (a Arc) Point(t float64) Pair {
	return a.Center + a.radial(t)
}

func (a Arc) radial(t float64) Pair {
	sin, cos := math.Sincos(t)
	return Rotation(a.XRotation).Transform(P(a.RX*cos, a.RY*sin))
}

// Cubics approximates the arc by cubic Bézier segments of at most a quarter
// turn each. Every segment is returned as (control1, control2, end); the
// start of the first segment is a.Point(a.Start).
func (a Arc) Cubics() [][3]Pair {
	if Is0(a.Sweep) {
		return nil
	}
	n := int(math.Ceil(math.Abs(a.Sweep) / (math.Pi / 2)))
	step := a.Sweep / float64(n)
	arm := (4.0 / 3.0) * math.Tan(step/4)
	segs := make([][3]Pair, 0, n)
	t0 := a.Start
	p0 := a.Point(t0)
	for i := 0; i < n; i++ {
		t1 := t0 + step
		p3 := a.Point(t1)
		c1 := p0 + a.radial(t0+math.Pi/2).Scaled(arm)
		c2 := p3 - a.radial(t1+math.Pi/2).Scaled(arm)
		segs = append(segs, [3]Pair{c1, c2, p3})
		t0, p0 = t1, p3
	}
	return segs
}
