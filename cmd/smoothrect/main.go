/*
Command smoothrect draws rectangles with smoothed corners.

Usage:

	smoothrect [-config scene.yaml] [-out shapes.svg|shapes.pdf] [-tolerance 0.25]

The scene file lists the rectangles to draw (see Scene). Without a scene
file a single demo rectangle is drawn. The output format is selected by the
file extension of -out. Shapes with invalid geometry are reported and
skipped; shapes whose corners overlap are drawn as given, with a message.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jung-kurt/gofpdf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/smoothrect/polygon"
	"github.com/npillmayer/smoothrect/render"
)

// tracer writes to trace with key 'smoothrect'
func tracer() tracing.Trace {
	return tracing.Select("smoothrect")
}

// traceSelector hands out one tracer per key, all writing to stderr at the
// configured level.
type traceSelector struct {
	sync.Mutex
	level   tracing.TraceLevel
	tracers map[string]tracing.Trace
}

func newTraceSelector(level tracing.TraceLevel) *traceSelector {
	return &traceSelector{level: level, tracers: make(map[string]tracing.Trace)}
}

// Select is part of interface tracing.TraceSelector.
func (ts *traceSelector) Select(key string) tracing.Trace {
	ts.Lock()
	defer ts.Unlock()
	t, ok := ts.tracers[key]
	if !ok {
		t = gologadapter.New()
		t.SetTraceLevel(ts.level)
		ts.tracers[key] = t
	}
	return t
}

// ErrUnknownFormat is returned for output files other than .svg or .pdf.
var ErrUnknownFormat = errors.New("unknown output format")

func main() {
	config := flag.String("config", "", "YAML scene file")
	out := flag.String("out", "shapes.svg", "output file (.svg or .pdf)")
	tolerance := flag.Float64("tolerance", 0.25, "flattening tolerance for area reports")
	flag.Parse()
	if err := run(*config, *out, *tolerance); err != nil {
		fmt.Fprintf(os.Stderr, "smoothrect: %v\n", err)
		os.Exit(1)
	}
}

func run(config, out string, tolerance float64) error {
	scene := Defaults()
	if config != "" {
		var err error
		if scene, err = LoadScene(config); err != nil {
			return err
		}
	}
	tracing.SetTraceSelector(newTraceSelector(traceLevel(scene.Logging.Level)))
	shapes := buildShapes(scene, tolerance)
	switch ext := strings.ToLower(filepath.Ext(out)); ext {
	case ".svg":
		return writeSVG(out, scene.Page, shapes)
	case ".pdf":
		return writePDF(out, scene.Page, shapes)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// buildShapes creates the outline of every valid shape of a scene.
func buildShapes(scene Scene, tolerance float64) []render.Shape {
	shapes := make([]render.Shape, 0, len(scene.Shapes))
	for i, sc := range scene.Shapes {
		r, err := sc.Rect(scene.Smoothness)
		if err != nil {
			tracer().Infof("skipping shape #%d: %v", i+1, err)
			continue
		}
		p := r.Path() // traces overlaps

		if poly, err := polygon.FromPath(p, tolerance); err == nil {
			tracer().Debugf("shape #%d covers %.2f of %.2f", i+1, poly.Area(), r.Width*r.Height)
		}
		shapes = append(shapes, render.Shape{
			Path:        p,
			Fill:        sc.Fill,
			Stroke:      sc.Stroke,
			StrokeWidth: sc.StrokeWidth,
		})
	}
	return shapes
}

func writeSVG(out string, page PageConfig, shapes []render.Shape) (err error) {
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return render.SVGDocument(f, page.Width, page.Height, shapes...)
}

func writePDF(out string, page PageConfig, shapes []render.Shape) error {
	if len(shapes) == 0 {
		return render.ErrNoShapes
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	pdf.SetTitle("smoothrect", false)
	pdf.AddPage()
	for _, sh := range shapes {
		style := ""
		if r, g, b, ok := rgb(sh.Fill); ok {
			pdf.SetFillColor(r, g, b)
			style += "F"
		}
		if r, g, b, ok := rgb(sh.Stroke); ok {
			pdf.SetDrawColor(r, g, b)
			if sh.StrokeWidth > 0 {
				pdf.SetLineWidth(sh.StrokeWidth)
			}
			style += "D"
		}
		if style == "" {
			style = "D"
		}
		if err := render.DrawPDF(pdf, sh.Path, style); err != nil {
			return err
		}
	}
	return pdf.OutputFileAndClose(out)
}
