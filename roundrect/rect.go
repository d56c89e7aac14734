package roundrect

import (
	"fmt"
	"math"

	"github.com/npillmayer/smoothrect"
	"github.com/npillmayer/smoothrect/path"
)

// commandsPerRect is the number of commands of every smoothed rectangle:
// four corners of four commands each, plus the closing command.
const commandsPerRect = 4*4 + 1

// Rect describes a rectangle with smoothed corners.
type Rect struct {
	Origin        smoothrect.Pair // top-left corner
	Width, Height float64
	Smoothness    float64    // shared by all corners, in (0,1]
	Radii         [4]float64 // per corner, indexed by Corner
}

// Uniform creates a rectangle with the same radius at every corner.
func Uniform(x, y, width, height, smoothness, radius float64) Rect {
	return Rect{
		Origin:     smoothrect.P(x, y),
		Width:      width,
		Height:     height,
		Smoothness: smoothness,
		Radii:      [4]float64{radius, radius, radius, radius},
	}
}

// Corner returns the position of a corner point.
func (r Rect) Corner(c Corner) smoothrect.Pair {
	switch c {
	case TopLeft:
		return r.Origin
	case TopRight:
		return r.Origin + smoothrect.P(r.Width, 0)
	case BottomRight:
		return r.Origin + smoothrect.P(r.Width, r.Height)
	case BottomLeft:
		return r.Origin + smoothrect.P(0, r.Height)
	}
	panic(fmt.Errorf("%w: %d", ErrInvalidCorner, int(c)))
}

// Validate checks the preconditions of Emit, Path and Build. Clients with
// untrusted input should call it beforehand, as a violation there is a
// programming error and panics. The error wraps one of ErrInvalidSize,
// ErrInvalidSmoothness or ErrInvalidRadius.
func (r Rect) Validate() error {
	if !(r.Width > 0) || !(r.Height > 0) || math.IsInf(r.Width, 1) || math.IsInf(r.Height, 1) {
		return fmt.Errorf("%w: %g x %g", ErrInvalidSize, r.Width, r.Height)
	}
	if !r.Origin.IsValid() {
		return fmt.Errorf("%w: origin %v", ErrInvalidSize, r.Origin)
	}
	if !(r.Smoothness > 0 && r.Smoothness <= 1) {
		return fmt.Errorf("%w: %g", ErrInvalidSmoothness, r.Smoothness)
	}
	for c, radius := range r.Radii {
		if !(radius > 0) || math.IsInf(radius, 1) {
			return fmt.Errorf("%w: %s radius is %g", ErrInvalidRadius, Corner(c), radius)
		}
	}
	return nil
}

// Emit draws the outline of r into sink: the four corners in clockwise
// order, starting top-left, then a close command, which adds the last edge.
// Every corner gets parameters of its own, even if radii coincide.
//
// Emit panics if r does not pass Validate.
func (r Rect) Emit(sink path.Sink) {
	if err := r.Validate(); err != nil {
		panic(err)
	}
	for _, o := range r.Overlaps() {
		tracer().Infof("smooth rectangle corners overlap: %v", o)
	}
	for c := TopLeft; c <= BottomLeft; c++ {
		radius := r.Radii[c]
		curve := NewCurveParameters(radius, r.Smoothness)
		EmitCorner(sink, r.Corner(c), radius, curve, c)
	}
	sink.Close()
}

// Path returns the outline of r as a new path, owned by the caller.
// Panics if r does not pass Validate.
func (r Rect) Path() *path.Path {
	p := path.New(commandsPerRect)
	r.Emit(p)
	tracer().Debugf("smooth rectangle %v: %d commands", r, p.N())
	return p
}

// String is a debug Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("[%v %gx%g s=%g r=%v]", r.Origin, r.Width, r.Height, r.Smoothness, r.Radii)
}

// Build returns the outline of a rectangle at (x,y) with the given size,
// smoothness and corner radii, listed clockwise from the top-left corner.
// The outline begins on the left edge, where the top-left corner's curve
// starts, at (x, y+(1+smoothness)·radiusTopLeft). The top-left corner is
// left at (x+(1+smoothness)·radiusTopLeft, y) onto the top edge.
//
// All of width, height and the radii must be positive and smoothness must
// lie in (0,1]. Violating this is a programming error and panics with an
// error wrapping ErrInvalidSize, ErrInvalidSmoothness or ErrInvalidRadius.
func Build(x, y, width, height, smoothness,
	radiusTopLeft, radiusTopRight, radiusBottomRight, radiusBottomLeft float64) *path.Path {
	r := Rect{
		Origin:     smoothrect.P(x, y),
		Width:      width,
		Height:     height,
		Smoothness: smoothness,
		Radii:      [4]float64{radiusTopLeft, radiusTopRight, radiusBottomRight, radiusBottomLeft},
	}
	return r.Path()
}
