package polygon

import (
	"fmt"
	"math"

	"github.com/npillmayer/smoothrect"
	"github.com/npillmayer/smoothrect/path"
)

// maxSubdivision bounds the recursion depth when flattening cubics.
const maxSubdivision = 16

// FromPath flattens a closed path into a polygon. Curves and arcs are
// replaced by line segments deviating at most tolerance from the original
// outline. Sub-paths which are not closed are closed implicitly.
func FromPath(p *path.Path, tolerance float64) (*Polygon, error) {
	if p == nil {
		return nil, path.ErrNilPath
	}
	if !(tolerance > 0) {
		return nil, fmt.Errorf("%w: %g", ErrBadTolerance, tolerance)
	}
	pg := NullPolygon()
	var pen smoothrect.Pair
	for _, c := range p.Commands() {
		switch c.Kind {
		case path.BeginKind:
			if len(pg.pending) > 0 {
				if err := pg.cycle(); err != nil {
					return nil, err
				}
			}
			pg.Knot(c.End())
		case path.LineKind:
			pg.Knot(c.End())
		case path.CubicKind:
			flattenCubic(pg, pen, c.Points[0], c.Points[1], c.Points[2], tolerance, 0)
		case path.ArcKind:
			a := smoothrect.ArcCenter(pen, c.End(), c.RX, c.RY, c.Rotation, c.Small, c.Clockwise)
			flattenArc(pg, a, tolerance)
			pg.Knot(c.End())
		case path.CloseKind:
			if err := pg.cycle(); err != nil {
				return nil, err
			}
		}
		pen = c.End()
	}
	if len(pg.pending) > 0 {
		if err := pg.cycle(); err != nil {
			return nil, err
		}
	}
	L().Debugf("flattened %d path commands into %d knots", p.N(), pg.N())
	return pg, nil
}

// flattenCubic subdivides a cubic until its control points are within
// tolerance of the chord.
func flattenCubic(pg *Polygon, p0, p1, p2, p3 smoothrect.Pair, tolerance float64, depth int) {
	if depth >= maxSubdivision ||
		(chordDistance(p1, p0, p3) <= tolerance && chordDistance(p2, p0, p3) <= tolerance) {
		pg.Knot(p3)
		return
	}
	// de Casteljau at t = 1/2
	p01, p12, p23 := mid(p0, p1), mid(p1, p2), mid(p2, p3)
	p012, p123 := mid(p01, p12), mid(p12, p23)
	m := mid(p012, p123)
	flattenCubic(pg, p0, p01, p012, m, tolerance, depth+1)
	flattenCubic(pg, m, p123, p23, p3, tolerance, depth+1)
}

// flattenArc adds the inner knots of an arc, leaving out both end points.
func flattenArc(pg *Polygon, a smoothrect.Arc, tolerance float64) {
	if smoothrect.Is0(a.Sweep) {
		return
	}
	r := math.Max(a.RX, a.RY)
	step := math.Pi / 2
	if tolerance < r {
		step = math.Min(step, 2*math.Acos(1-tolerance/r))
	}
	n := int(math.Ceil(math.Abs(a.Sweep) / step))
	for i := 1; i < n; i++ {
		pg.Knot(a.Point(a.Start + a.Sweep*float64(i)/float64(n)))
	}
}

func mid(a, b smoothrect.Pair) smoothrect.Pair {
	return (a + b).Scaled(0.5)
}

// chordDistance is the distance of p from the line through a and b.
func chordDistance(p, a, b smoothrect.Pair) float64 {
	d := b - a
	if l := d.Len(); !smoothrect.Is0(l) {
		return math.Abs(d.X()*(p.Y()-a.Y())-d.Y()*(p.X()-a.X())) / l
	}
	return (p - a).Len()
}
