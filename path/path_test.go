package path

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/smoothrect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func triangle() *Path {
	p := New(4)
	p.BeginAt(smoothrect.P(0, 0))
	p.LineTo(smoothrect.P(10, 0))
	p.CubicTo(smoothrect.P(10, 5), smoothrect.P(8, 8), smoothrect.P(5, 10))
	p.ArcTo(5, 5, 0, true, true, smoothrect.P(0, 5))
	p.Close()
	return p
}

// recorder is a sink which remembers the kinds it has been fed.
type recorder struct {
	kinds []Kind
	last  smoothrect.Pair
}

func (r *recorder) BeginAt(pt smoothrect.Pair) {
	r.kinds = append(r.kinds, BeginKind)
	r.last = pt
}

func (r *recorder) LineTo(pt smoothrect.Pair) {
	r.kinds = append(r.kinds, LineKind)
	r.last = pt
}

func (r *recorder) CubicTo(c1, c2, end smoothrect.Pair) {
	r.kinds = append(r.kinds, CubicKind)
	r.last = end
}

func (r *recorder) ArcTo(rx, ry, rot float64, small, cw bool, end smoothrect.Pair) {
	r.kinds = append(r.kinds, ArcKind)
	r.last = end
}

func (r *recorder) Close() { r.kinds = append(r.kinds, CloseKind) }

func TestBuildPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := triangle()
	if p.N() != 5 {
		t.Fatalf("expected 5 commands, have %d", p.N())
	}
	if !p.IsClosed() {
		t.Errorf("expected path to be closed")
	}
	if p.Start() != smoothrect.P(0, 0) {
		t.Errorf("expected path to start at origin, starts at %v", p.Start())
	}
	if p.Current() != smoothrect.P(0, 0) {
		t.Errorf("expected close to return pen to start, pen at %v", p.Current())
	}
	if p.At(2).End() != smoothrect.P(5, 10) {
		t.Errorf("expected cubic to end at (5,10), ends at %v", p.At(2).End())
	}
}

func TestCommandsAreCopied(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := triangle()
	cmds := p.Commands()
	cmds[0].Points[0] = smoothrect.P(99, 99)
	assert.Equal(t, smoothrect.P(0, 0), p.At(0).End())
}

func TestDrawingWithoutBeginPanics(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mustPanic(t, func() { New(0).LineTo(smoothrect.P(1, 1)) })
	mustPanic(t, func() { New(0).CubicTo(smoothrect.Origin, smoothrect.Origin, smoothrect.P(1, 1)) })
	mustPanic(t, func() { New(0).ArcTo(1, 1, 0, true, true, smoothrect.P(1, 1)) })
	mustPanic(t, func() { New(0).Close() })
	mustPanic(t, func() { triangle().LineTo(smoothrect.P(1, 1)) })
}

func TestReplay(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &recorder{}
	require.NoError(t, Replay(triangle(), rec))
	assert.Equal(t, []Kind{BeginKind, LineKind, CubicKind, ArcKind, CloseKind}, rec.kinds)
	assert.Equal(t, smoothrect.P(0, 5), rec.last)

	copied := New(0)
	require.NoError(t, Replay(triangle(), copied))
	assert.Equal(t, triangle().Commands(), copied.Commands())
}

func TestReplayRejectsNil(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if err := Replay(nil, &recorder{}); !errors.Is(err, ErrNilPath) {
		t.Errorf("expected ErrNilPath, got %v", err)
	}
	if err := Replay(triangle(), nil); !errors.Is(err, ErrNilSink) {
		t.Errorf("expected ErrNilSink, got %v", err)
	}
}

func TestCount(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := Count(triangle())
	assert.Equal(t, Stats{Begins: 1, Lines: 1, Cubics: 1, Arcs: 1, Closes: 1}, s)
	assert.Equal(t, 4, s.Drawing())
	assert.Equal(t, Stats{}, Count(nil))
}

func TestAsString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := AsString(triangle())
	t.Log(s)
	lines := strings.Split(s, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "(0,0)", lines[0])
	assert.Equal(t, "  -- (10,0)", lines[1])
	assert.Equal(t, "  .. controls (10,5) and (8,8) .. (5,10)", lines[2])
	assert.Equal(t, "  .. arc (5,5) to (0,5)", lines[3])
	assert.Equal(t, "  -- cycle", lines[4])
}

func TestKindString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, "cubic", CubicKind.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
