// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"errors"
	"testing"
)

func TestArcFamilyReversedFieldOrder(t *testing.T) {
	// Stored yEnd, xEnd, yStart, xStart, bottom, right, top, left.
	var body []byte
	for _, v := range []uint16{8, 7, 6, 5, 4, 3, 2, 1} {
		body = put16(body, v)
	}
	wantBounds := Rect{Left: 1, Top: 2, Right: 3, Bottom: 4}
	wantStart := PointS{X: 5, Y: 6}
	wantEnd := PointS{X: 7, Y: 8}

	arc := decodeRecord(t, RecordArc, body).(ArcRecord)
	if arc.Bounds != wantBounds || arc.StartPoint != wantStart || arc.EndPoint != wantEnd {
		t.Fatalf("Arc = %+v, want bounds=%+v start=%+v end=%+v", arc, wantBounds, wantStart, wantEnd)
	}
	chord := decodeRecord(t, RecordChord, body).(ChordRecord)
	if chord.Bounds != wantBounds || chord.EndPoint != wantEnd {
		t.Fatalf("Chord = %+v, want the same field order as Arc", chord)
	}
	pie := decodeRecord(t, RecordPie, body).(PieRecord)
	if pie.Bounds != wantBounds || pie.StartPoint != wantStart {
		t.Fatalf("Pie = %+v, want the same field order as Arc", pie)
	}
}

func TestRectangleReversedFieldOrder(t *testing.T) {
	var body []byte
	for _, v := range []uint16{4, 3, 2, 1} { // bottom, right, top, left
		body = put16(body, v)
	}
	got := decodeRecord(t, RecordRectangle, body).(RectangleRecord)
	if got.Bounds != (Rect{Left: 1, Top: 2, Right: 3, Bottom: 4}) {
		t.Fatalf("Rectangle bounds = %+v, want {1 2 3 4}", got.Bounds)
	}
}

func TestRoundRectDecodes(t *testing.T) {
	var body []byte
	body = put16(body, 6) // corner height
	body = put16(body, 8) // corner width
	for _, v := range []uint16{40, 30, 20, 10} {
		body = put16(body, v)
	}
	got := decodeRecord(t, RecordRoundRect, body).(RoundRectRecord)
	if got.Height != 6 || got.Width != 8 {
		t.Fatalf("RoundRect corner = %dx%d, want 8x6", got.Width, got.Height)
	}
	if got.Bounds != (Rect{Left: 10, Top: 20, Right: 30, Bottom: 40}) {
		t.Fatalf("RoundRect bounds = %+v, want {10 20 30 40}", got.Bounds)
	}
}

func TestPolylineDecodesPointRun(t *testing.T) {
	var body []byte
	body = put16(body, 3)
	for _, v := range []uint16{1, 2, 3, 4, 5, 6} { // (1,2) (3,4) (5,6)
		body = put16(body, v)
	}
	got := decodeRecord(t, RecordPolyLine, body).(PolylineRecord)
	if len(got.Points) != 3 || got.Points[2] != (PointS{X: 5, Y: 6}) {
		t.Fatalf("Polyline points = %+v, want 3 points ending (5,6)", got.Points)
	}
}

func TestPolyPolygonPartitionsPoints(t *testing.T) {
	var body []byte
	body = put16(body, 2) // two polygons
	body = put16(body, 3) // first has 3 points
	body = put16(body, 2) // second has 2
	for _, v := range []uint16{0, 0, 10, 0, 10, 10, 20, 20, 30, 30} {
		body = put16(body, v)
	}
	got := decodeRecord(t, RecordPolyPolygon, body).(PolyPolygonRecord)
	if len(got.Polygons.Points) != 2 {
		t.Fatalf("PolyPolygon polygons = %d, want 2", len(got.Polygons.Points))
	}
	if len(got.Polygons.Points[0]) != 3 || len(got.Polygons.Points[1]) != 2 {
		t.Fatalf("PolyPolygon partition = %d/%d points, want 3/2",
			len(got.Polygons.Points[0]), len(got.Polygons.Points[1]))
	}
	if got.Polygons.Points[1][0] != (PointS{X: 20, Y: 20}) {
		t.Fatalf("PolyPolygon second polygon starts %+v, want (20,20)", got.Polygons.Points[1][0])
	}
}

func TestFloodFillFieldOrder(t *testing.T) {
	var body []byte
	body = append(body, 0x11, 0x22, 0x33, 0x00) // color
	body = put16(body, 9)                       // y
	body = put16(body, 5)                       // x
	got := decodeRecord(t, RecordFloodFill, body).(FloodFillRecord)
	if got.Color != (ColorRef{R: 0x11, G: 0x22, B: 0x33}) || got.Point != (PointS{X: 5, Y: 9}) {
		t.Fatalf("FloodFill = %+v, want color #112233 at (5,9)", got)
	}
}

func TestExtFloodFillValidatesMode(t *testing.T) {
	var body []byte
	body = put16(body, uint16(FloodFillSurface))
	body = append(body, 0, 0, 0, 0) // color
	body = put16(body, 2)           // y
	body = put16(body, 1)           // x
	got := decodeRecord(t, RecordExtFloodFill, body).(ExtFloodFillRecord)
	if got.Mode != FloodFillSurface || got.Point != (PointS{X: 1, Y: 2}) {
		t.Fatalf("ExtFloodFill = %+v, want surface fill at (1,2)", got)
	}

	dec := recordDecoders[RecordExtFloodFill]
	bad := append([]byte{}, 0xFF, 0x00)
	if _, err := dec(NewReader(bad), len(bad)); !errors.Is(err, ErrUnexpectedEnumValue) {
		t.Fatalf("ExtFloodFill(mode=0xFF) error = %v, want ErrUnexpectedEnumValue", err)
	}
}

func TestFrameRegionDecodes(t *testing.T) {
	var body []byte
	body = put16(body, 3) // brush height
	body = put16(body, 4) // brush width
	body = put16(body, 1) // brush index
	body = put16(body, 0) // region index
	got := decodeRecord(t, RecordFrameRegion, body).(FrameRegionRecord)
	want := FrameRegionRecord{RegionIndex: 0, BrushIndex: 1, Height: 3, Width: 4}
	if got != want {
		t.Fatalf("FrameRegion = %+v, want %+v", got, want)
	}
}

func TestTextOutPadsOddStringLength(t *testing.T) {
	var body []byte
	body = put16(body, 3)
	body = append(body, 'a', 'b', 'c', 0x00) // padded to an even run
	body = put16(body, 20)                   // y
	body = put16(body, 10)                   // x
	got := decodeRecord(t, RecordTextOut, body).(TextOutRecord)
	if got.Text != "abc" || got.Point != (PointS{X: 10, Y: 20}) {
		t.Fatalf("TextOut = %+v, want %q at (10,20)", got, "abc")
	}
}

func TestExtTextOutWithRectAndDx(t *testing.T) {
	var body []byte
	body = put16(body, 7)                    // y
	body = put16(body, 5)                    // x
	body = put16(body, 2)                    // stringLength
	body = put16(body, extTextOutOptClipped) // options
	for _, v := range []uint16{4, 3, 2, 1} { // clip rect, bottom..left
		body = put16(body, v)
	}
	body = append(body, 'H', 'i')
	body = put16(body, 9)  // dx[0]
	body = put16(body, 11) // dx[1]

	got := decodeRecord(t, RecordExtTextOut, body).(ExtTextOutRecord)
	if got.Text != "Hi" || got.Point != (PointS{X: 5, Y: 7}) {
		t.Fatalf("ExtTextOut = %+v, want %q at (5,7)", got, "Hi")
	}
	if !got.HasRect || got.Rect != (Rect{Left: 1, Top: 2, Right: 3, Bottom: 4}) {
		t.Fatalf("ExtTextOut rect = %+v (hasRect=%v), want {1 2 3 4}", got.Rect, got.HasRect)
	}
	if len(got.Dx) != 2 || got.Dx[0] != 9 || got.Dx[1] != 11 {
		t.Fatalf("ExtTextOut dx = %v, want [9 11]", got.Dx)
	}
}

func TestExtTextOutWithoutRectOrDx(t *testing.T) {
	var body []byte
	body = put16(body, 0) // y
	body = put16(body, 0) // x
	body = put16(body, 2)
	body = put16(body, 0) // no clip/opaque bits, so no rect follows
	body = append(body, 'o', 'k')

	got := decodeRecord(t, RecordExtTextOut, body).(ExtTextOutRecord)
	if got.HasRect {
		t.Fatalf("ExtTextOut decoded a rect from an option-less record")
	}
	if got.Text != "ok" || got.Dx != nil {
		t.Fatalf("ExtTextOut = %+v, want %q with no dx array", got, "ok")
	}
}
