/*
Package roundrect builds rectangles with continuously smoothed corners.

A plain rounded rectangle joins each straight edge to a quarter circle, which
leaves a visible kink in curvature where edge and arc meet. Here each corner
runs edge → cubic curve → circular arc → cubic curve → edge instead. The
smoothness factor s ∈ (0,1] decides how far the transition reaches into the
edges ((1+s)·radius) and how much of the quarter circle is left over for the
arc: at s = 1 the arc shrinks to a point and the corner consists of the two
transition curves only.

Corner geometry is computed once per corner, in the frame of the top-left
corner, and turned into place by quarter rotations:

	path := roundrect.Build(0, 0, 100, 60, 0.6, 12, 12, 12, 12)

Every path consists of exactly four corner groups (a begin or line, two
cubics and an arc each) followed by a close command.

Radii are not balanced against each other. If the corner footprints of two
adjacent corners together exceed the edge between them, the resulting
outline self-intersects. Rect.Overlaps reports such cases; the geometry
itself is left as is.

Smoothness 0 would be an ordinary rounded rectangle and is not handled by
this package.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package roundrect
