package roundrect

import "fmt"

// Edge identifies a side of a rectangle.
type Edge int

// Edges in clockwise order, starting with the top edge.
const (
	TopEdge Edge = iota
	RightEdge
	BottomEdge
	LeftEdge
)

func (e Edge) String() string {
	switch e {
	case TopEdge:
		return "top"
	case RightEdge:
		return "right"
	case BottomEdge:
		return "bottom"
	case LeftEdge:
		return "left"
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

// Overlap reports two adjacent corners which claim more of their common
// edge than it has.
type Overlap struct {
	Edge   Edge
	First  Corner  // corner at the start of the edge, clockwise
	Second Corner  // corner at the end of the edge
	Excess float64 // claimed length minus edge length
}

func (o Overlap) String() string {
	return fmt.Sprintf("%s and %s corner exceed %s edge by %.4g", o.First, o.Second, o.Edge, o.Excess)
}

// Overlaps lists the edges on which the curves of adjacent corners run into
// each other. A corner claims (1+smoothness)·radius of both its edges.
// Outlines with overlaps self-intersect; they are drawn nevertheless, as
// radii are never adjusted.
//
// Overlaps expects r to be valid; see Validate.
func (r Rect) Overlaps() []Overlap {
	var overlaps []Overlap
	for e := TopEdge; e <= LeftEdge; e++ {
		first := Corner(e)
		second := Corner((int(e) + 1) % 4)
		length := r.Width
		if e == RightEdge || e == LeftEdge {
			length = r.Height
		}
		claimed := (1 + r.Smoothness) * (r.Radii[first] + r.Radii[second])
		if claimed > length {
			overlaps = append(overlaps, Overlap{
				Edge:   e,
				First:  first,
				Second: second,
				Excess: claimed - length,
			})
		}
	}
	return overlaps
}
