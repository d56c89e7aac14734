package render

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/npillmayer/smoothrect"
	"github.com/npillmayer/smoothrect/path"
)

// GGSink builds a gg.Path. gg paths have no elliptical arc element, so arcs
// are converted to cubic Bézier segments of at most a quarter turn.
type GGSink struct {
	p   *gg.Path
	pen smoothrect.Pair
}

var _ path.Sink = &GGSink{}

// NewGGSink creates a sink appending to p. If p is nil, a new path is
// allocated.
func NewGGSink(p *gg.Path) *GGSink {
	if p == nil {
		p = gg.NewPath()
	}
	return &GGSink{p: p}
}

// Path returns the gg path built so far.
func (s *GGSink) Path() *gg.Path {
	return s.p
}

// BeginAt is part of interface path.Sink.
func (s *GGSink) BeginAt(pt smoothrect.Pair) {
	s.p.MoveTo(pt.X(), pt.Y())
	s.pen = pt
}

// LineTo is part of interface path.Sink.
func (s *GGSink) LineTo(pt smoothrect.Pair) {
	s.p.LineTo(pt.X(), pt.Y())
	s.pen = pt
}

// CubicTo is part of interface path.Sink.
func (s *GGSink) CubicTo(c1, c2, end smoothrect.Pair) {
	s.p.CubicTo(c1.X(), c1.Y(), c2.X(), c2.Y(), end.X(), end.Y())
	s.pen = end
}

// ArcTo is part of interface path.Sink.
func (s *GGSink) ArcTo(rx, ry, rotation float64, small, clockwise bool, end smoothrect.Pair) {
	segs := smoothrect.ArcCenter(s.pen, end, rx, ry, rotation, small, clockwise).Cubics()
	if len(segs) == 0 {
		s.LineTo(end)
		return
	}
	for _, seg := range segs[:len(segs)-1] {
		s.CubicTo(seg[0], seg[1], seg[2])
	}
	last := segs[len(segs)-1]
	s.CubicTo(last[0], last[1], end) // land exactly on end
}

// Close is part of interface path.Sink.
func (s *GGSink) Close() {
	s.p.Close()
}

// ToGG converts p into a new gg.Path.
func ToGG(p *path.Path) (*gg.Path, error) {
	sink := NewGGSink(nil)
	if err := path.Replay(p, sink); err != nil {
		return nil, fmt.Errorf("render gg path: %w", err)
	}
	tracer().Debugf("converted path to %d gg path verbs", sink.p.NumVerbs())
	return sink.Path(), nil
}
