package render

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/npillmayer/smoothrect"
	"github.com/npillmayer/smoothrect/path"
)

// PDFSink draws into the current page of a gofpdf document, using the
// document's unit of measure. Elliptical arcs are handed over to gofpdf's
// ArcTo, which expects counter-clockwise angles in degrees.
//
// PDFSink only builds the path; call DrawPath on the document (or use
// DrawPDF) to stroke or fill it.
type PDFSink struct {
	pdf *gofpdf.Fpdf
	pen smoothrect.Pair
}

var _ path.Sink = &PDFSink{}

// NewPDFSink creates a sink drawing into pdf.
func NewPDFSink(pdf *gofpdf.Fpdf) *PDFSink {
	return &PDFSink{pdf: pdf}
}

// BeginAt is part of interface path.Sink.
func (s *PDFSink) BeginAt(pt smoothrect.Pair) {
	s.pdf.MoveTo(pt.X(), pt.Y())
	s.pen = pt
}

// LineTo is part of interface path.Sink.
func (s *PDFSink) LineTo(pt smoothrect.Pair) {
	s.pdf.LineTo(pt.X(), pt.Y())
	s.pen = pt
}

// CubicTo is part of interface path.Sink.
func (s *PDFSink) CubicTo(c1, c2, end smoothrect.Pair) {
	s.pdf.CurveBezierCubicTo(c1.X(), c1.Y(), c2.X(), c2.Y(), end.X(), end.Y())
	s.pen = end
}

// ArcTo is part of interface path.Sink.
func (s *PDFSink) ArcTo(rx, ry, rotation float64, small, clockwise bool, end smoothrect.Pair) {
	arc := smoothrect.ArcCenter(s.pen, end, rx, ry, rotation, small, clockwise)
	if smoothrect.Is0(arc.Sweep) {
		s.LineTo(end)
		return
	}
	// gofpdf measures angles counter-clockwise on the page
	start := -arc.Start / smoothrect.Deg2Rad
	stop := -(arc.Start + arc.Sweep) / smoothrect.Deg2Rad
	s.pdf.ArcTo(arc.Center.X(), arc.Center.Y(), arc.RX, arc.RY,
		-arc.XRotation/smoothrect.Deg2Rad, start, stop)
	s.pen = end
}

// Close is part of interface path.Sink.
func (s *PDFSink) Close() {
	s.pdf.ClosePath()
}

// DrawPDF replays p into the current page of pdf and paints it with the
// gofpdf style string ("D" stroke, "F" fill, "FD" both). Errors already
// recorded by the document are returned.
func DrawPDF(pdf *gofpdf.Fpdf, p *path.Path, style string) error {
	if pdf == nil {
		return fmt.Errorf("render PDF: %w", path.ErrNilSink)
	}
	if err := path.Replay(p, NewPDFSink(pdf)); err != nil {
		return fmt.Errorf("render PDF: %w", err)
	}
	pdf.DrawPath(style)
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render PDF: %w", err)
	}
	return nil
}
