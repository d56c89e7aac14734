package roundrect

import (
	"fmt"

	"github.com/npillmayer/smoothrect"
	"github.com/npillmayer/smoothrect/path"
)

// Corner identifies a rectangle corner. Its value is the number of quarter
// turns which take the top-left corner's geometry into place.
type Corner int

// Corners in clockwise order, starting top-left.
const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	}
	return fmt.Sprintf("Corner(%d)", int(c))
}

// EmitCorner draws one smoothed corner into sink. pt is the rectangle's
// true corner point, radius the corner radius and curve the corner's
// parameters, as computed by NewCurveParameters for the same radius.
//
// The corner is entered from the edge preceding it in clockwise order. The
// top-left corner begins the path; every other corner connects to the
// previous one with a straight line. An invalid corner index panics.
func EmitCorner(sink path.Sink, pt smoothrect.Pair, radius float64, curve CurveParameters, corner Corner) {
	if corner < TopLeft || corner > BottomLeft {
		panic(fmt.Errorf("%w: %d", ErrInvalidCorner, int(corner)))
	}
	k := int(corner)
	at := func(v smoothrect.Pair, quarters int) smoothrect.Pair {
		return pt + smoothrect.QuarterRotate(v, quarters)
	}
	// edge connecting point of the incoming edge
	entry := at(curve.edgeConnectingVector(), k+1)
	if corner == TopLeft {
		sink.BeginAt(entry)
	} else {
		sink.LineTo(entry)
	}
	// first transition curve, ending on the arc; the transpose stands in
	// for three more quarter turns
	sink.CubicTo(
		at(curve.edgeCurveVector(), k+1),
		at(curve.arcCurveVector(radius), k+1),
		at(smoothrect.Transposed(curve.arcConnectingVector(radius)), k),
	)
	arcEnd := at(curve.arcConnectingVector(radius), k)
	sink.ArcTo(radius, radius, 0, true, true, arcEnd)
	// second transition curve, back onto the outgoing edge
	exit := at(curve.edgeConnectingVector(), k)
	sink.CubicTo(
		at(curve.arcCurveVector(radius), k),
		at(curve.edgeCurveVector(), k),
		exit,
	)
	tracer().Debugf("%s corner at %v: %v, entry %v, exit %v", corner, pt, curve, entry, exit)
}
