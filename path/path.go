package path

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smoothrect"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

var (
	// ErrNilPath indicates a nil path pointer.
	ErrNilPath = errors.New("path must not be nil")
	// ErrNilSink indicates a nil sink.
	ErrNilSink = errors.New("sink must not be nil")
)

// Sink is the capability of accepting drawing commands. The geometry code
// talks to a Sink only, never to a concrete graphics library.
type Sink interface {
	BeginAt(pt smoothrect.Pair)
	LineTo(pt smoothrect.Pair)
	CubicTo(c1, c2, end smoothrect.Pair)
	// ArcTo draws an elliptical arc from the current point to end, with
	// SVG semantics: radii rx and ry, x-axis rotation in degrees, small
	// selects the smaller of the two candidate arcs, clockwise selects the
	// sweep direction on screen.
	ArcTo(rx, ry, rotation float64, small, clockwise bool, end smoothrect.Pair)
	Close()
}

// Kind is the type of a path command.
type Kind int8

// Kinds of commands.
const (
	BeginKind Kind = iota
	LineKind
	CubicKind
	ArcKind
	CloseKind
)

func (k Kind) String() string {
	switch k {
	case BeginKind:
		return "begin"
	case LineKind:
		return "line"
	case CubicKind:
		return "cubic"
	case ArcKind:
		return "arc"
	case CloseKind:
		return "close"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Command is a single drawing command. Points holds the two control points
// and the end point of a cubic; every other kind uses Points[0] only.
// Close carries the start point of the sub-path it closes.
type Command struct {
	Kind      Kind
	Points    [3]smoothrect.Pair
	RX, RY    float64 // arc radii
	Rotation  float64 // arc x-axis rotation, degrees
	Small     bool    // arc size flag
	Clockwise bool    // arc sweep flag
}

// End returns the point a command leaves the pen at.
func (c Command) End() smoothrect.Pair {
	if c.Kind == CubicKind {
		return c.Points[2]
	}
	return c.Points[0]
}

// Path is an ordered, append-only sequence of drawing commands.
// The zero value is an empty path, ready to use.
type Path struct {
	cmds    []Command
	start   smoothrect.Pair // start of the current sub-path
	current smoothrect.Pair // pen position
	drawing bool            // is there a sub-path to continue?
}

var _ Sink = (*Path)(nil)

// New creates an empty path with room for n commands.
func New(n int) *Path {
	return &Path{cmds: make([]Command, 0, n)}
}

// BeginAt starts a new sub-path at pt.
func (p *Path) BeginAt(pt smoothrect.Pair) {
	p.push(Command{Kind: BeginKind, Points: [3]smoothrect.Pair{pt}})
	p.start = pt
	p.drawing = true
}

// LineTo adds a straight line from the current point to pt.
// Calling LineTo on a path without a current sub-path is a programming error
// and will panic.
func (p *Path) LineTo(pt smoothrect.Pair) {
	p.mustDraw("line")
	p.push(Command{Kind: LineKind, Points: [3]smoothrect.Pair{pt}})
}

// CubicTo adds a cubic Bézier curve with control points c1 and c2 ending at
// end. Panics if there is no current sub-path.
func (p *Path) CubicTo(c1, c2, end smoothrect.Pair) {
	p.mustDraw("curve")
	p.push(Command{Kind: CubicKind, Points: [3]smoothrect.Pair{c1, c2, end}})
}

// ArcTo adds an elliptical arc ending at end, see Sink.ArcTo.
// Panics if there is no current sub-path.
func (p *Path) ArcTo(rx, ry, rotation float64, small, clockwise bool, end smoothrect.Pair) {
	p.mustDraw("arc")
	p.push(Command{
		Kind:      ArcKind,
		Points:    [3]smoothrect.Pair{end},
		RX:        rx,
		RY:        ry,
		Rotation:  rotation,
		Small:     small,
		Clockwise: clockwise,
	})
}

// Close closes the current sub-path with a straight line back to its start.
// Panics if there is no current sub-path.
func (p *Path) Close() {
	p.mustDraw("close")
	p.push(Command{Kind: CloseKind, Points: [3]smoothrect.Pair{p.start}})
	p.drawing = false
}

func (p *Path) mustDraw(what string) {
	if !p.drawing {
		panic(fmt.Sprintf("cannot add %s to path without current point", what))
	}
}

func (p *Path) push(c Command) {
	p.cmds = append(p.cmds, c)
	p.current = c.End()
}

// N returns the number of commands, including Close.
func (p *Path) N() int {
	return len(p.cmds)
}

// At returns command i.
func (p *Path) At(i int) Command {
	return p.cmds[i]
}

// Commands returns a copy of all commands.
func (p *Path) Commands() []Command {
	c := make([]Command, len(p.cmds))
	copy(c, p.cmds)
	return c
}

// IsClosed is a predicate: does this path end with a Close command?
func (p *Path) IsClosed() bool {
	return len(p.cmds) > 0 && p.cmds[len(p.cmds)-1].Kind == CloseKind
}

// Start returns the first point of the path. An empty path starts at the
// origin.
func (p *Path) Start() smoothrect.Pair {
	if len(p.cmds) == 0 {
		return smoothrect.Origin
	}
	return p.cmds[0].End()
}

// Current returns the pen position after the last command.
func (p *Path) Current() smoothrect.Pair {
	return p.current
}

// Replay issues the commands of p, in order, to sink.
func Replay(p *Path, sink Sink) error {
	if p == nil {
		return ErrNilPath
	}
	if sink == nil {
		return ErrNilSink
	}
	for _, c := range p.cmds {
		switch c.Kind {
		case BeginKind:
			sink.BeginAt(c.Points[0])
		case LineKind:
			sink.LineTo(c.Points[0])
		case CubicKind:
			sink.CubicTo(c.Points[0], c.Points[1], c.Points[2])
		case ArcKind:
			sink.ArcTo(c.RX, c.RY, c.Rotation, c.Small, c.Clockwise, c.Points[0])
		case CloseKind:
			sink.Close()
		default:
			return fmt.Errorf("unknown path command %v", c.Kind)
		}
	}
	tracer().Debugf("replayed %d path commands", len(p.cmds))
	return nil
}

// Stats counts the commands of a path by kind.
type Stats struct {
	Begins, Lines, Cubics, Arcs, Closes int
}

// Drawing returns the number of explicit drawing commands, i.e. everything
// except Close.
func (s Stats) Drawing() int {
	return s.Begins + s.Lines + s.Cubics + s.Arcs
}

// Count gathers the command statistics of p.
func Count(p *Path) Stats {
	var s Stats
	if p == nil {
		return s
	}
	for _, c := range p.cmds {
		switch c.Kind {
		case BeginKind:
			s.Begins++
		case LineKind:
			s.Lines++
		case CubicKind:
			s.Cubics++
		case ArcKind:
			s.Arcs++
		case CloseKind:
			s.Closes++
		}
	}
	return s
}

func ptstring(p smoothrect.Pair) string {
	return fmt.Sprintf("(%.4g,%.4g)", smoothrect.Zap(p.X()), smoothrect.Zap(p.Y()))
}
