/*
Package polygon turns outlines into polygons, for geometric checks on them.

Polygons are backed by polyclip-go. They are either built knot by knot,

	pg := polygon.NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()

or obtained by flattening a path:

	pg, err := polygon.FromPath(roundrect.Build(0, 0, 100, 50, 1, 10, 10, 10, 10), 0.05)

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smoothrect"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

var (
	// ErrBadTolerance indicates a non-positive flattening tolerance.
	ErrBadTolerance = errors.New("flattening tolerance must be positive")
	// ErrTooFewKnots indicates a contour with less than 3 knots.
	ErrTooFewKnots = errors.New("polygon contour has too few knots")
)

// Polygon is a set of closed contours. Contours are interpreted with the
// even-odd rule.
type Polygon struct {
	contours polyclip.Polygon
	pending  polyclip.Contour
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a point to the current contour. Part of builder functionality.
// A knot within smoothrect.Epsilon of its predecessor is dropped.
func (pg *Polygon) Knot(p smoothrect.Pair) *Polygon {
	if n := len(pg.pending); n > 0 && pair(pg.pending[n-1]).Equal(p) {
		return pg
	}
	pg.pending.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

func pair(pt polyclip.Point) smoothrect.Pair {
	return smoothrect.P(pt.X, pt.Y)
}

// Cycle closes the current contour. Part of builder functionality.
// A contour needs at least 3 knots; cycling a shorter one is a programming
// error and panics.
func (pg *Polygon) Cycle() *Polygon {
	if err := pg.cycle(); err != nil {
		panic(err)
	}
	return pg
}

func (pg *Polygon) cycle() error {
	c := pg.pending
	if n := len(c); n > 1 && pair(c[0]).Equal(pair(c[n-1])) {
		c = c[:n-1]
	}
	if len(c) < 3 {
		return fmt.Errorf("%w: %d", ErrTooFewKnots, len(c))
	}
	pg.contours.Add(c)
	pg.pending = nil
	return nil
}

// Box creates a rectangular polygon from two opposite corners.
func Box(p1, p2 smoothrect.Pair) *Polygon {
	minx, maxx := math.Min(p1.X(), p2.X()), math.Max(p1.X(), p2.X())
	miny, maxy := math.Min(p1.Y(), p2.Y()), math.Max(p1.Y(), p2.Y())
	return NullPolygon().
		Knot(smoothrect.P(minx, miny)).Knot(smoothrect.P(maxx, miny)).
		Knot(smoothrect.P(maxx, maxy)).Knot(smoothrect.P(minx, maxy)).
		Cycle()
}

// N returns the number of knots over all closed contours.
func (pg *Polygon) N() int {
	return pg.contours.NumVertices()
}

// Contours returns the number of closed contours.
func (pg *Polygon) Contours() int {
	return len(pg.contours)
}

// Area returns the area enclosed by the contours. Contours are expected not
// to overlap each other; holes are not subtracted.
func (pg *Polygon) Area() float64 {
	return area(pg.contours)
}

func area(pc polyclip.Polygon) float64 {
	var total float64
	for _, c := range pc {
		var a float64
		for i := range c {
			j := (i + 1) % len(c)
			a += c[i].X*c[j].Y - c[j].X*c[i].Y
		}
		total += math.Abs(a) / 2
	}
	return total
}

// BoundingBox returns the top-left and bottom-right corners of the smallest
// axis-aligned rectangle containing pg.
func (pg *Polygon) BoundingBox() (smoothrect.Pair, smoothrect.Pair) {
	bb := pg.contours.BoundingBox()
	return smoothrect.P(bb.Min.X, bb.Min.Y), smoothrect.P(bb.Max.X, bb.Max.Y)
}

// Contains is a predicate: is pt inside pg (even-odd rule)?
func (pg *Polygon) Contains(pt smoothrect.Pair) bool {
	p := polyclip.Point{X: pt.X(), Y: pt.Y()}
	inside := false
	for _, c := range pg.contours {
		if c.Contains(p) {
			inside = !inside
		}
	}
	return inside
}

// Inside is a predicate: does pg lie completely within outer? Areas are
// compared with a relative tolerance of smoothrect.Epsilon.
func (pg *Polygon) Inside(outer *Polygon) bool {
	own := pg.Area()
	if own == 0 {
		return true
	}
	clipped := area(pg.contours.Construct(polyclip.INTERSECTION, outer.contours))
	L().Debugf("polygon area %g, clipped to outer %g", own, clipped)
	return math.Abs(own-clipped) <= smoothrect.Epsilon*own
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	if pg == nil {
		return "<nil polygon>"
	}
	var b strings.Builder
	for i, c := range pg.contours {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, pt := range c {
			fmt.Fprintf(&b, "(%.4g,%.4g) -- ", pt.X, pt.Y)
		}
		b.WriteString("cycle")
	}
	return b.String()
}
