// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package svgsink implements wmf.Sink on top of github.com/ajstarks/svgo,
// the reference graphics backend. It renders the vector drawing and text
// records; bitmap-family records, region fills and flood fills are not
// drawn.
package svgsink

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/wmfgo/wmf"
)

// Sink renders a metafile to an SVG document written to w.
type Sink struct {
	w             io.Writer
	canvas        *svg.SVG
	width, height int
}

// New returns a Sink that writes a complete SVG document to w as the
// metafile plays.
func New(w io.Writer) *Sink {
	return &Sink{w: w, canvas: svg.New(w)}
}

// Begin implements wmf.Sink. It sizes the document from the absolute
// values of the PDC's window extent, using 100 for an axis whose extent is
// zero; the placeable preamble's bounding box is not consulted.
func (s *Sink) Begin(header wmf.MetafileHeader, pdc wmf.PDC) error {
	s.width = deviceUnits(pdc.WindowExtent.X)
	s.height = deviceUnits(pdc.WindowExtent.Y)
	if s.width <= 0 {
		s.width = 100
	}
	if s.height <= 0 {
		s.height = 100
	}
	s.canvas.Start(s.width, s.height)
	return nil
}

// End implements wmf.Sink.
func (s *Sink) End() error {
	s.canvas.End()
	return nil
}

// Escape implements wmf.Sink. The SVG backend has no printer driver to
// hand escapes to; it ignores all of them.
func (s *Sink) Escape(pdc wmf.PDC, escape wmf.EscapeRecord) error {
	return nil
}

// Draw implements wmf.Sink, dispatching on the concrete drawing/bitmap
// record type.
func (s *Sink) Draw(pdc wmf.PDC, payload wmf.RecordPayload) error {
	style := strokeFillStyle(pdc)
	switch v := payload.(type) {
	case wmf.RectangleRecord:
		s.canvas.Rect(int(v.Bounds.Left), int(v.Bounds.Top), rectW(v.Bounds), rectH(v.Bounds), style)
	case wmf.EllipseRecord:
		cx, cy, rx, ry := ellipseParams(v.Bounds)
		s.canvas.Ellipse(cx, cy, rx, ry, style)
	case wmf.RoundRectRecord:
		s.canvas.Roundrect(int(v.Bounds.Left), int(v.Bounds.Top), rectW(v.Bounds), rectH(v.Bounds), int(v.Width/2), int(v.Height/2), style)
	case wmf.LineToRecord:
		s.canvas.Line(int(pdc.CurrentPosition.X), int(pdc.CurrentPosition.Y), int(v.Point.X), int(v.Point.Y), style)
	case wmf.PolylineRecord:
		xs, ys := splitPoints(v.Points)
		s.canvas.Polyline(xs, ys, style)
	case wmf.PolygonRecord:
		xs, ys := splitPoints(v.Points)
		s.canvas.Polygon(xs, ys, style)
	case wmf.PolyPolygonRecord:
		for _, poly := range v.Polygons.Points {
			xs, ys := splitPoints(poly)
			s.canvas.Polygon(xs, ys, style)
		}
	case wmf.SetPixelRecord:
		s.canvas.Rect(int(v.Point.X), int(v.Point.Y), 1, 1, fmt.Sprintf("fill:%s;stroke:none", colorHex(v.Color)))
	case wmf.TextOutRecord:
		s.canvas.Text(int(v.Point.X), int(v.Point.Y), v.Text, textStyle(pdc))
	case wmf.ExtTextOutRecord:
		s.canvas.Text(int(v.Point.X), int(v.Point.Y), v.Text, textStyle(pdc))
	case wmf.ArcRecord:
		s.drawArcLike(v.Bounds, v.StartPoint, v.EndPoint, style, arcOpen)
	case wmf.ChordRecord:
		s.drawArcLike(v.Bounds, v.StartPoint, v.EndPoint, style, arcChord)
	case wmf.PieRecord:
		s.drawArcLike(v.Bounds, v.StartPoint, v.EndPoint, style, arcPie)
	case wmf.PatBltRecord:
		s.canvas.Rect(int(v.XDest), int(v.YDest), int(v.Width), int(v.Height), style)
	default:
		// Bitmap-family records (BitBlt, StretchBlt, DIB variants) and
		// region fills are out of scope for the reference backend: SVG
		// has no direct device-bitmap primitive, and reproducing one
		// faithfully needs a raster decoder this package doesn't carry.
	}
	return nil
}

func deviceUnits(v int32) int {
	if v < 0 {
		return int(-v)
	}
	return int(v)
}

func rectW(r wmf.Rect) int { return deviceUnits(int32(r.Right - r.Left)) }
func rectH(r wmf.Rect) int { return deviceUnits(int32(r.Bottom - r.Top)) }

func ellipseParams(r wmf.Rect) (cx, cy, rx, ry int) {
	cx = int(r.Left+r.Right) / 2
	cy = int(r.Top+r.Bottom) / 2
	rx = rectW(r) / 2
	ry = rectH(r) / 2
	return
}

func splitPoints(points []wmf.PointS) (xs, ys []int) {
	xs = make([]int, len(points))
	ys = make([]int, len(points))
	for i, p := range points {
		xs[i] = int(p.X)
		ys[i] = int(p.Y)
	}
	return
}

type arcClosure int

const (
	arcOpen arcClosure = iota
	arcChord
	arcPie
)

func (s *Sink) drawArcLike(bounds wmf.Rect, start, end wmf.PointS, style string, closure arcClosure) {
	cx, cy, rx, ry := ellipseParams(bounds)
	switch closure {
	case arcPie:
		s.canvas.Path(fmt.Sprintf("M%d,%d L%d,%d A%d,%d 0 0 1 %d,%d Z",
			cx, cy, start.X, start.Y, rx, ry, end.X, end.Y), style)
	case arcChord:
		s.canvas.Path(fmt.Sprintf("M%d,%d A%d,%d 0 0 1 %d,%d Z",
			start.X, start.Y, rx, ry, end.X, end.Y), style)
	default:
		s.canvas.Arc(int(start.X), int(start.Y), rx, ry, 0, false, true, int(end.X), int(end.Y), style)
	}
}

func colorHex(c wmf.ColorRef) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func strokeFillStyle(pdc wmf.PDC) string {
	fill := "none"
	if pdc.SelectedBrush != nil {
		fill = colorHex(pdc.SelectedBrush.Color)
	}
	stroke := "none"
	strokeWidth := 1
	if pdc.SelectedPen != nil {
		stroke = colorHex(pdc.SelectedPen.Color)
		if w := int(pdc.SelectedPen.Width.X); w > 0 {
			strokeWidth = w
		}
	}
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d", fill, stroke, strokeWidth)
}

func textStyle(pdc wmf.PDC) string {
	return fmt.Sprintf("fill:%s", colorHex(pdc.TextColor))
}
