/*
Package render adapts paths to concrete output formats.

Geometry code emits into a path.Sink only. This package supplies sinks for
SVG path data, for PDF pages built with gofpdf and for vector paths of the
gogpu/gg 2D library. Elliptical arcs are passed on natively where the target
format knows them (SVG, PDF) and are converted to cubic Bézier segments
otherwise.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smoothrect"
	"github.com/npillmayer/smoothrect/path"
)

// tracer writes to trace with key 'render'
func tracer() tracing.Trace {
	return tracing.Select("render")
}

// ErrNoShapes is returned when a document would not contain any shape.
var ErrNoShapes = errors.New("no shapes to render")

// SVGSink collects drawing commands as SVG path data (the value of a `d`
// attribute). The zero value is ready to use.
type SVGSink struct {
	b strings.Builder
}

var _ path.Sink = &SVGSink{}

// BeginAt is part of interface path.Sink.
func (s *SVGSink) BeginAt(pt smoothrect.Pair) {
	s.cmd("M", pt)
}

// LineTo is part of interface path.Sink.
func (s *SVGSink) LineTo(pt smoothrect.Pair) {
	s.cmd("L", pt)
}

// CubicTo is part of interface path.Sink.
func (s *SVGSink) CubicTo(c1, c2, end smoothrect.Pair) {
	s.cmd("C", c1, c2, end)
}

// ArcTo is part of interface path.Sink. The arc maps 1:1 onto the SVG `A`
// command; SVG's large-arc flag is the negation of small.
func (s *SVGSink) ArcTo(rx, ry, rotation float64, small, clockwise bool, end smoothrect.Pair) {
	s.sep()
	s.b.WriteString("A ")
	s.b.WriteString(num(rx))
	s.b.WriteByte(' ')
	s.b.WriteString(num(ry))
	s.b.WriteByte(' ')
	s.b.WriteString(num(rotation))
	s.b.WriteByte(' ')
	s.b.WriteString(flag(!small))
	s.b.WriteByte(' ')
	s.b.WriteString(flag(clockwise))
	s.b.WriteByte(' ')
	s.pair(end)
}

// Close is part of interface path.Sink.
func (s *SVGSink) Close() {
	s.sep()
	s.b.WriteString("Z")
}

// String returns the path data collected so far.
func (s *SVGSink) String() string {
	return s.b.String()
}

func (s *SVGSink) cmd(op string, pts ...smoothrect.Pair) {
	s.sep()
	s.b.WriteString(op)
	for _, pt := range pts {
		s.b.WriteByte(' ')
		s.pair(pt)
	}
}

func (s *SVGSink) sep() {
	if s.b.Len() > 0 {
		s.b.WriteByte(' ')
	}
}

func (s *SVGSink) pair(pt smoothrect.Pair) {
	s.b.WriteString(num(pt.X()))
	s.b.WriteByte(',')
	s.b.WriteString(num(pt.Y()))
}

// num formats a coordinate with at most 4 decimals and without exponent.
func num(x float64) string {
	x = math.Round(x*1e4) / 1e4
	if x == 0 {
		x = 0 // no "-0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// SVGPath returns the SVG path data for p, e.g.
//
//	M 0,40 C 0,13.7239 0,11.7157 5.8579,5.8579 A 20 20 0 0 1 ...
//
// A nil path yields an empty string.
func SVGPath(p *path.Path) string {
	var s SVGSink
	if err := path.Replay(p, &s); err != nil {
		return ""
	}
	return s.String()
}

// Shape is a path together with its paint. Empty Fill or Stroke strings
// are written as "none".
type Shape struct {
	Path        *path.Path
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// SVGDocument writes a standalone SVG document of the given size containing
// shapes in order. Shapes with a nil path are skipped. If no shape is left,
// ErrNoShapes is returned and nothing is written.
func SVGDocument(w io.Writer, width, height float64, shapes ...Shape) error {
	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n",
		num(width), num(height), num(width), num(height))
	cnt := 0
	for _, sh := range shapes {
		if sh.Path == nil {
			tracer().Infof("skipping shape without path")
			continue
		}
		b.WriteString("  <path d=\"")
		b.WriteString(SVGPath(sh.Path))
		b.WriteString("\" fill=\"")
		b.WriteString(paint(sh.Fill))
		b.WriteString("\" stroke=\"")
		b.WriteString(paint(sh.Stroke))
		b.WriteByte('"')
		if sh.Stroke != "" && sh.StrokeWidth > 0 {
			fmt.Fprintf(&b, " stroke-width=\"%s\"", num(sh.StrokeWidth))
		}
		b.WriteString("/>\n")
		cnt++
	}
	if cnt == 0 {
		return ErrNoShapes
	}
	b.WriteString("</svg>\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing SVG document: %w", err)
	}
	tracer().Infof("wrote SVG document with %d shapes", cnt)
	return nil
}

func paint(c string) string {
	if c == "" {
		return "none"
	}
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(c))
	return b.String()
}
