// Package path collects drawing commands into an append-only path.
/*
A path is the output of the corner geometry in package roundrect. It is a
plain list of commands, in the order they were issued:

	BeginAt(pt)                         start a (sub-)path at pt
	LineTo(pt)                          straight line to pt
	CubicTo(c1, c2, pt)                 cubic Bézier to pt
	ArcTo(rx, ry, rot, small, cw, pt)   elliptical arc to pt, SVG semantics
	Close()                             straight line back to the start

The same five operations make up the Sink interface. *Path is a Sink, and
Replay feeds a recorded path into any other Sink, e.g. the renderers in
package render. Keeping the geometry on the Sink interface means it never
sees a graphics library's point type.

A path belongs to whoever requested it; nothing in this module keeps a
reference after handing it out.

For debugging, AsString renders a path in a MetaPost-like notation. The
top-left corner of a fully smoothed square with corner radius 20 reads:

	(0,40)
	  .. controls (0,13.72) and (0,11.72) .. (5.858,5.858)
	  .. arc (20,20) to (5.858,5.858)
	  ...
	  -- cycle

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package path

import (
	"fmt"
	"strings"
)

// AsString returns a path as a (debugging) string. Each command is placed on
// a line of its own. The format loosely follows MetaPost's.
func AsString(p *Path) string {
	if p == nil {
		return "<nil path>"
	}
	var b strings.Builder
	for i, c := range p.cmds {
		switch c.Kind {
		case BeginKind:
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(ptstring(c.End()))
		case LineKind:
			fmt.Fprintf(&b, "\n  -- %s", ptstring(c.End()))
		case CubicKind:
			fmt.Fprintf(&b, "\n  .. controls %s and %s .. %s",
				ptstring(c.Points[0]), ptstring(c.Points[1]), ptstring(c.End()))
		case ArcKind:
			fmt.Fprintf(&b, "\n  .. arc (%.4g,%.4g) to %s", c.RX, c.RY, ptstring(c.End()))
		case CloseKind:
			b.WriteString("\n  -- cycle")
		}
	}
	return b.String()
}
