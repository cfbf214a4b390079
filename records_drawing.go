// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import "fmt"

// Drawing records paint into the output using the PDC's current state;
// they never mutate the Object Table. Every Rect-shaped record and every
// standalone point pair is stored on the wire in the reverse of its GDI
// call's parameter order, the convention the state records follow. The
// point arrays of Polyline, Polygon and PolyPolygon are plain PointS
// values, x then y.

// ArcRecord draws an elliptical arc.
type ArcRecord struct {
	Bounds               Rect
	StartPoint, EndPoint PointS
}

func (ArcRecord) RecordType() RecordType { return RecordArc }

// ChordRecord draws a chord (an arc closed by a straight line).
type ChordRecord struct {
	Bounds               Rect
	StartPoint, EndPoint PointS
}

func (ChordRecord) RecordType() RecordType { return RecordChord }

// EllipseRecord draws and fills an ellipse inscribed in Bounds.
type EllipseRecord struct{ Bounds Rect }

func (EllipseRecord) RecordType() RecordType { return RecordEllipse }

// ExtFloodFillRecord flood-fills starting at Point using Mode to decide
// the boundary test.
type ExtFloodFillRecord struct {
	Point PointS
	Color ColorRef
	Mode  FloodFillMode
}

func (ExtFloodFillRecord) RecordType() RecordType { return RecordExtFloodFill }

// ExtTextOutRecord draws a run of text with optional per-glyph spacing and
// an optional clip/opaque rectangle ([MS-WMF] 2.3.5.8).
type ExtTextOutRecord struct {
	Point        PointS
	StringLength uint16
	Options      uint16
	Rect         Rect
	HasRect      bool
	Text         string
	Dx           []int16
}

func (ExtTextOutRecord) RecordType() RecordType { return RecordExtTextOut }

const (
	extTextOutOptClipped uint16 = 0x0004
	extTextOutOptOpaque  uint16 = 0x0002
)

// FillRegionRecord fills a region with a brush.
type FillRegionRecord struct {
	RegionIndex uint16
	BrushIndex  uint16
}

func (FillRegionRecord) RecordType() RecordType { return RecordFillRegion }

// FloodFillRecord flood-fills starting at Point until Color is reached.
type FloodFillRecord struct {
	Color ColorRef
	Point PointS
}

func (FloodFillRecord) RecordType() RecordType { return RecordFloodFill }

// FrameRegionRecord draws a border around a region using a brush of the
// given dimensions.
type FrameRegionRecord struct {
	RegionIndex   uint16
	BrushIndex    uint16
	Height, Width int16
}

func (FrameRegionRecord) RecordType() RecordType { return RecordFrameRegion }

// InvertRegionRecord inverts the colors within a region.
type InvertRegionRecord struct{ RegionIndex uint16 }

func (InvertRegionRecord) RecordType() RecordType { return RecordInvertRegion }

// LineToRecord draws a line from the PDC's current position to Point, then
// moves the current position to Point.
type LineToRecord struct{ Point PointL }

func (LineToRecord) RecordType() RecordType { return RecordLineTo }

// PaintRegionRecord fills a region with the PDC's currently selected
// brush.
type PaintRegionRecord struct{ RegionIndex uint16 }

func (PaintRegionRecord) RecordType() RecordType { return RecordPaintRegion }

// PatBltRecord fills a rectangle using the selected brush combined via a
// ternary raster operation ([MS-WMF] 2.3.5.16).
type PatBltRecord struct {
	RasterOperation uint32
	Height, Width   int16
	YDest, XDest    int16
}

func (PatBltRecord) RecordType() RecordType { return RecordPatBlt }

// PieRecord draws a pie slice.
type PieRecord struct {
	Bounds               Rect
	StartPoint, EndPoint PointS
}

func (PieRecord) RecordType() RecordType { return RecordPie }

// PolylineRecord draws a connected sequence of line segments.
type PolylineRecord struct{ Points []PointS }

func (PolylineRecord) RecordType() RecordType { return RecordPolyLine }

// PolygonRecord fills and strokes a closed polygon.
type PolygonRecord struct{ Points []PointS }

func (PolygonRecord) RecordType() RecordType { return RecordPolygon }

// PolyPolygonRecord fills and strokes a set of polygons sharing the PDC's
// poly-fill mode.
type PolyPolygonRecord struct{ Polygons PolyPolygon }

func (PolyPolygonRecord) RecordType() RecordType { return RecordPolyPolygon }

// RectangleRecord draws and fills a rectangle.
type RectangleRecord struct{ Bounds Rect }

func (RectangleRecord) RecordType() RecordType { return RecordRectangle }

// RoundRectRecord draws and fills a rectangle with rounded corners.
type RoundRectRecord struct {
	Bounds        Rect
	Height, Width int16
}

func (RoundRectRecord) RecordType() RecordType { return RecordRoundRect }

// SetPixelRecord sets one pixel to a color.
type SetPixelRecord struct {
	Color ColorRef
	Point PointS
}

func (SetPixelRecord) RecordType() RecordType { return RecordSetPixel }

// TextOutRecord draws a run of text at the current text position
// ([MS-WMF] 2.3.5.23): unlike ExtTextOut, the string precedes its length's
// companion point and carries no per-glyph spacing.
type TextOutRecord struct {
	StringLength uint16
	Text         string
	Point        PointS
}

func (TextOutRecord) RecordType() RecordType { return RecordTextOut }

func readRectField(r *Reader) (Rect, error) {
	bottom, err := r.I16()
	if err != nil {
		return Rect{}, fmt.Errorf("bottom: %w", err)
	}
	right, err := r.I16()
	if err != nil {
		return Rect{}, fmt.Errorf("right: %w", err)
	}
	top, err := r.I16()
	if err != nil {
		return Rect{}, fmt.Errorf("top: %w", err)
	}
	left, err := r.I16()
	if err != nil {
		return Rect{}, fmt.Errorf("left: %w", err)
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}, nil
}

func readArcLikeFields(r *Reader) (Rect, PointS, PointS, error) {
	yEnd, err := r.I16()
	if err != nil {
		return Rect{}, PointS{}, PointS{}, fmt.Errorf("yEnd: %w", err)
	}
	xEnd, err := r.I16()
	if err != nil {
		return Rect{}, PointS{}, PointS{}, fmt.Errorf("xEnd: %w", err)
	}
	yStart, err := r.I16()
	if err != nil {
		return Rect{}, PointS{}, PointS{}, fmt.Errorf("yStart: %w", err)
	}
	xStart, err := r.I16()
	if err != nil {
		return Rect{}, PointS{}, PointS{}, fmt.Errorf("xStart: %w", err)
	}
	bounds, err := readRectField(r)
	if err != nil {
		return Rect{}, PointS{}, PointS{}, fmt.Errorf("bounds: %w", err)
	}
	return bounds, PointS{X: xStart, Y: yStart}, PointS{X: xEnd, Y: yEnd}, nil
}

func readPolyPoints(r *Reader) ([]PointS, error) {
	n, err := r.U16()
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}
	points := make([]PointS, n)
	for i := range points {
		p, err := ReadPointS(r)
		if err != nil {
			return nil, fmt.Errorf("points[%d]: %w", i, err)
		}
		points[i] = p
	}
	return points, nil
}

func init() {
	registerRecordDecoder(RecordArc, func(r *Reader, _ int) (RecordPayload, error) {
		bounds, start, end, err := readArcLikeFields(r)
		return ArcRecord{Bounds: bounds, StartPoint: start, EndPoint: end}, err
	})
	registerRecordDecoder(RecordChord, func(r *Reader, _ int) (RecordPayload, error) {
		bounds, start, end, err := readArcLikeFields(r)
		return ChordRecord{Bounds: bounds, StartPoint: start, EndPoint: end}, err
	})
	registerRecordDecoder(RecordPie, func(r *Reader, _ int) (RecordPayload, error) {
		bounds, start, end, err := readArcLikeFields(r)
		return PieRecord{Bounds: bounds, StartPoint: start, EndPoint: end}, err
	})
	registerRecordDecoder(RecordEllipse, func(r *Reader, _ int) (RecordPayload, error) {
		bounds, err := readRectField(r)
		return EllipseRecord{Bounds: bounds}, err
	})
	registerRecordDecoder(RecordRectangle, func(r *Reader, _ int) (RecordPayload, error) {
		bounds, err := readRectField(r)
		return RectangleRecord{Bounds: bounds}, err
	})
	registerRecordDecoder(RecordRoundRect, func(r *Reader, _ int) (RecordPayload, error) {
		height, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("RoundRect.height: %w", err)
		}
		width, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("RoundRect.width: %w", err)
		}
		bounds, err := readRectField(r)
		return RoundRectRecord{Bounds: bounds, Height: height, Width: width}, err
	})
	registerRecordDecoder(RecordExtFloodFill, func(r *Reader, _ int) (RecordPayload, error) {
		rawMode, err := r.U16()
		if err != nil {
			return nil, fmt.Errorf("ExtFloodFill.mode: %w", err)
		}
		mode, err := ParseFloodFillMode(uint32(rawMode))
		if err != nil {
			return nil, fmt.Errorf("ExtFloodFill.mode: %w", err)
		}
		color, err := ReadColorRef(r)
		if err != nil {
			return nil, fmt.Errorf("ExtFloodFill.color: %w", err)
		}
		y, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("ExtFloodFill.y: %w", err)
		}
		x, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("ExtFloodFill.x: %w", err)
		}
		return ExtFloodFillRecord{Point: PointS{X: x, Y: y}, Color: color, Mode: mode}, nil
	})
	registerRecordDecoder(RecordFloodFill, func(r *Reader, _ int) (RecordPayload, error) {
		color, err := ReadColorRef(r)
		if err != nil {
			return nil, fmt.Errorf("FloodFill.color: %w", err)
		}
		y, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("FloodFill.y: %w", err)
		}
		x, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("FloodFill.x: %w", err)
		}
		return FloodFillRecord{Color: color, Point: PointS{X: x, Y: y}}, nil
	})
	registerRecordDecoder(RecordSetPixel, func(r *Reader, _ int) (RecordPayload, error) {
		color, err := ReadColorRef(r)
		if err != nil {
			return nil, fmt.Errorf("SetPixel.color: %w", err)
		}
		y, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("SetPixel.y: %w", err)
		}
		x, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("SetPixel.x: %w", err)
		}
		return SetPixelRecord{Color: color, Point: PointS{X: x, Y: y}}, nil
	})
	registerRecordDecoder(RecordLineTo, func(r *Reader, _ int) (RecordPayload, error) {
		p, err := readPointLField(r)
		return LineToRecord{Point: p}, err
	})
	registerRecordDecoder(RecordFillRegion, func(r *Reader, _ int) (RecordPayload, error) {
		brush, err := r.U16()
		if err != nil {
			return nil, fmt.Errorf("FillRegion.brush: %w", err)
		}
		region, err := r.U16()
		return FillRegionRecord{RegionIndex: region, BrushIndex: brush}, err
	})
	registerRecordDecoder(RecordFrameRegion, func(r *Reader, _ int) (RecordPayload, error) {
		height, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("FrameRegion.height: %w", err)
		}
		width, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("FrameRegion.width: %w", err)
		}
		brush, err := r.U16()
		if err != nil {
			return nil, fmt.Errorf("FrameRegion.brush: %w", err)
		}
		region, err := r.U16()
		return FrameRegionRecord{RegionIndex: region, BrushIndex: brush, Height: height, Width: width}, err
	})
	registerRecordDecoder(RecordInvertRegion, func(r *Reader, _ int) (RecordPayload, error) {
		region, err := r.U16()
		return InvertRegionRecord{RegionIndex: region}, err
	})
	registerRecordDecoder(RecordPaintRegion, func(r *Reader, _ int) (RecordPayload, error) {
		region, err := r.U16()
		return PaintRegionRecord{RegionIndex: region}, err
	})
	registerRecordDecoder(RecordPatBlt, func(r *Reader, _ int) (RecordPayload, error) {
		rop, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("PatBlt.rasterOperation: %w", err)
		}
		height, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("PatBlt.height: %w", err)
		}
		width, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("PatBlt.width: %w", err)
		}
		yDest, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("PatBlt.yDest: %w", err)
		}
		xDest, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("PatBlt.xDest: %w", err)
		}
		return PatBltRecord{RasterOperation: rop, Height: height, Width: width, YDest: yDest, XDest: xDest}, nil
	})
	registerRecordDecoder(RecordPolyLine, func(r *Reader, _ int) (RecordPayload, error) {
		pts, err := readPolyPoints(r)
		return PolylineRecord{Points: pts}, err
	})
	registerRecordDecoder(RecordPolygon, func(r *Reader, _ int) (RecordPayload, error) {
		pts, err := readPolyPoints(r)
		return PolygonRecord{Points: pts}, err
	})
	registerRecordDecoder(RecordPolyPolygon, func(r *Reader, _ int) (RecordPayload, error) {
		pp, err := ReadPolyPolygon(r)
		return PolyPolygonRecord{Polygons: pp}, err
	})
	registerRecordDecoder(RecordTextOut, func(r *Reader, _ int) (RecordPayload, error) {
		n, err := r.U16()
		if err != nil {
			return nil, fmt.Errorf("TextOut.stringLength: %w", err)
		}
		raw, _, err := r.Bytes(int(n) + int(n)%2)
		if err != nil {
			return nil, fmt.Errorf("TextOut.string: %w", err)
		}
		text, err := DecodeANSI1252(raw[:n])
		if err != nil {
			return nil, fmt.Errorf("TextOut.string: %w", err)
		}
		y, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("TextOut.y: %w", err)
		}
		x, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("TextOut.x: %w", err)
		}
		return TextOutRecord{StringLength: n, Text: text, Point: PointS{X: x, Y: y}}, nil
	})
	registerRecordDecoder(RecordExtTextOut, func(r *Reader, declaredBytes int) (RecordPayload, error) {
		start := r.Pos()
		y, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("ExtTextOut.y: %w", err)
		}
		x, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("ExtTextOut.x: %w", err)
		}
		n, err := r.U16()
		if err != nil {
			return nil, fmt.Errorf("ExtTextOut.stringLength: %w", err)
		}
		opts, err := r.U16()
		if err != nil {
			return nil, fmt.Errorf("ExtTextOut.options: %w", err)
		}
		out := ExtTextOutRecord{Point: PointS{X: x, Y: y}, StringLength: n, Options: opts}
		if opts&(extTextOutOptClipped|extTextOutOptOpaque) != 0 {
			rect, err := readRectField(r)
			if err != nil {
				return nil, fmt.Errorf("ExtTextOut.rect: %w", err)
			}
			out.Rect = rect
			out.HasRect = true
		}
		raw, _, err := r.Bytes(int(n) + int(n)%2)
		if err != nil {
			return nil, fmt.Errorf("ExtTextOut.string: %w", err)
		}
		text, err := DecodeANSI1252(raw[:n])
		if err != nil {
			return nil, fmt.Errorf("ExtTextOut.string: %w", err)
		}
		out.Text = text

		remaining := (declaredBytes - (r.Pos() - start)) / 2
		if remaining > 0 {
			dx := make([]int16, remaining)
			for i := range dx {
				v, err := r.I16()
				if err != nil {
					return nil, fmt.Errorf("ExtTextOut.dx[%d]: %w", i, err)
				}
				dx[i] = v
			}
			out.Dx = dx
		}
		return out, nil
	})
}
