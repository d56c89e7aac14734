package roundrect

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smoothrect"
)

// tracer writes to trace with key 'roundrect'
func tracer() tracing.Trace {
	return tracing.Select("roundrect")
}

const piDiv4 = math.Pi / 4

// edgeCurvePointRatio places the edge-side control point two thirds of the
// way from the unit arc-side offset towards the edge connecting point.
const edgeCurvePointRatio = 2.0 / 3.0

var (
	// ErrInvalidSize indicates a non-positive width or height.
	ErrInvalidSize = errors.New("width and height must be positive")
	// ErrInvalidSmoothness indicates a smoothness outside of (0,1].
	ErrInvalidSmoothness = errors.New("smoothness must be in (0,1]")
	// ErrInvalidRadius indicates a non-positive corner radius.
	ErrInvalidRadius = errors.New("corner radius must be positive")
	// ErrInvalidCorner indicates a rotation index outside of 0…3.
	ErrInvalidCorner = errors.New("corner index must be in 0…3")
)

// CurveParameters are the landmarks of one smoothed corner. They are
// measured from the rectangle's true corner point along an edge running
// towards that corner.
//
// The two edge offsets are absolute lengths. The arc-side measurements are
// relative to a unit radius and have to be multiplied by the corner radius
// before use. EdgeCurveOffset is derived from the unit ArcCurveOffset, so
// e > EdgeCurveOffset > ArcCurveOffset holds for radii of 1 and above.
type CurveParameters struct {
	// Distance at which the straight edge ends and the curve starts.
	EdgeConnectingOffset float64
	// Edge-side control point of the transition curve.
	EdgeCurveOffset float64
	// Arc-side control point of the transition curve, as a fraction of the radius.
	ArcCurveOffset float64
	// Where the transition curve meets the arc, for radius 1. X runs
	// parallel to the edge, Y perpendicular to it.
	ArcConnectingVector smoothrect.Pair
}

// NewCurveParameters computes the corner landmarks for a radius and a
// smoothness. radius must be positive and smoothness must lie in (0,1];
// anything else is a programming error and panics.
func NewCurveParameters(radius, smoothness float64) CurveParameters {
	mustRadius(radius)
	mustSmoothness(smoothness)
	var c CurveParameters
	c.EdgeConnectingOffset = (1 + smoothness) * radius
	arcAngle := piDiv4 * smoothness
	sin, cos := math.Sincos(arcAngle)
	c.ArcConnectingVector = smoothrect.P(1-sin, 1-cos)
	c.ArcCurveOffset = 1 - math.Tan(arcAngle/2)
	c.EdgeCurveOffset = c.EdgeConnectingOffset -
		(c.EdgeConnectingOffset-c.ArcCurveOffset)*edgeCurvePointRatio
	return c
}

func (c CurveParameters) edgeConnectingVector() smoothrect.Pair {
	return smoothrect.P(c.EdgeConnectingOffset, 0)
}

func (c CurveParameters) edgeCurveVector() smoothrect.Pair {
	return smoothrect.P(c.EdgeCurveOffset, 0)
}

func (c CurveParameters) arcCurveVector(radius float64) smoothrect.Pair {
	return smoothrect.P(c.ArcCurveOffset*radius, 0)
}

func (c CurveParameters) arcConnectingVector(radius float64) smoothrect.Pair {
	return c.ArcConnectingVector.Scaled(radius)
}

// String is a debug Stringer.
func (c CurveParameters) String() string {
	return fmt.Sprintf("curve[edge=%.4g, edge-ctrl=%.4g, arc-ctrl=%.4g, arc=%v]",
		c.EdgeConnectingOffset, c.EdgeCurveOffset, c.ArcCurveOffset, c.ArcConnectingVector)
}

func mustRadius(radius float64) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		panic(fmt.Errorf("%w: %g", ErrInvalidRadius, radius))
	}
}

func mustSmoothness(smoothness float64) {
	if !(smoothness > 0 && smoothness <= 1) {
		panic(fmt.Errorf("%w: %g", ErrInvalidSmoothness, smoothness))
	}
}
