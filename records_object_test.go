// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"errors"
	"testing"
)

func TestCreateBrushIndirectDecodes(t *testing.T) {
	var body []byte
	body = put16(body, uint16(BrushHatched))
	body = append(body, 0xAA, 0xBB, 0xCC, 0x00) // color
	body = put16(body, uint16(HatchDiagCross))  // hatch
	got := decodeRecord(t, RecordCreateBrushIndirect, body).(CreateBrushIndirectRecord)
	if got.Brush.Style != BrushHatched || got.Brush.Hatch != uint16(HatchDiagCross) {
		t.Fatalf("CreateBrushIndirect = %+v, want hatched HS_DIAGCROSS", got.Brush)
	}
	if got.Brush.Color != (ColorRef{R: 0xAA, G: 0xBB, B: 0xCC}) {
		t.Fatalf("CreateBrushIndirect color = %+v, want #aabbcc", got.Brush.Color)
	}
}

func TestCreatePenIndirectDecodes(t *testing.T) {
	var body []byte
	body = put16(body, uint16(PenDash))
	body = put16(body, 2) // width.x
	body = put16(body, 0) // width.y
	body = append(body, 0x01, 0x02, 0x03, 0x00)
	got := decodeRecord(t, RecordCreatePenIndirect, body).(CreatePenIndirectRecord)
	if got.Pen.Style.Kind != PenDash || got.Pen.Width != (PointS{X: 2}) {
		t.Fatalf("CreatePenIndirect = %+v, want a dashed width-2 pen", got.Pen)
	}
}

func TestCreateFontIndirectDecodes(t *testing.T) {
	var body []byte
	for _, v := range []uint16{
		uint16(0xFFF6), // height -10 (negative selects character height)
		0,              // width
		900,            // escapement, tenths of a degree
		0,              // orientation
		700,            // weight
	} {
		body = put16(body, v)
	}
	body = append(body,
		1, // italic
		0, // underline
		0, // strikeOut
		uint8(CharsetAnsi),
		uint8(OutDefaultPrecis),
		0x03, // clipPrecision: raw flag bits, carried verbatim
		uint8(QualityDraft),
		uint8(PitchFixed)|uint8(FamilySwiss)<<4,
	)
	face := make([]byte, FaceNameLimit)
	copy(face, "Arial")
	body = append(body, face...)

	got := decodeRecord(t, RecordCreateFontIndirect, body).(CreateFontIndirectRecord)
	f := got.Font
	if f.Height != -10 || f.Escapement != 900 || f.Weight != 700 {
		t.Fatalf("CreateFontIndirect = %+v, want height=-10 escapement=900 weight=700", f)
	}
	if !f.Italic || f.Underline {
		t.Fatalf("CreateFontIndirect flags = italic=%v underline=%v, want italic only", f.Italic, f.Underline)
	}
	if f.ClipPrecision != 0x03 || f.Quality != QualityDraft {
		t.Fatalf("CreateFontIndirect = clip=%#x quality=%v, want 0x03/DRAFT", f.ClipPrecision, f.Quality)
	}
	if f.PitchAndFamily.Pitch != PitchFixed || f.PitchAndFamily.Family != FamilySwiss {
		t.Fatalf("CreateFontIndirect pitchAndFamily = %+v, want fixed/swiss", f.PitchAndFamily)
	}
	if f.FaceName != "Arial" {
		t.Fatalf("CreateFontIndirect faceName = %q, want Arial", f.FaceName)
	}
}

func paletteBytes(start uint16, entries ...PaletteEntry) []byte {
	var body []byte
	body = append(body, 0, 0) // objectType, reserved
	body = put16(body, start)
	body = put16(body, uint16(len(entries)))
	for _, e := range entries {
		body = append(body, uint8(e.Flags), e.Blue, e.Green, e.Red)
	}
	return body
}

func TestCreatePaletteRequiresStartMarker(t *testing.T) {
	body := paletteBytes(0x0300, PaletteEntry{Blue: 1, Green: 2, Red: 3})
	got := decodeRecord(t, RecordCreatePalette, body).(CreatePaletteRecord)
	if got.Palette.Start != 0x0300 || len(got.Palette.Entries) != 1 {
		t.Fatalf("CreatePalette = %+v, want start=0x0300 with 1 entry", got.Palette)
	}

	dec := recordDecoders[RecordCreatePalette]
	bad := paletteBytes(0x0200)
	if _, err := dec(NewReader(bad), len(bad)); !errors.Is(err, ErrUnexpectedPattern) {
		t.Fatalf("CreatePalette(start=0x0200) error = %v, want ErrUnexpectedPattern", err)
	}
}

func TestCreatePatternBrushKeepsTrailingBits(t *testing.T) {
	var body []byte
	body = put16(body, 0)     // type
	body = put16(body, 8)     // width
	body = put16(body, 8)     // height
	body = put16(body, 1)     // widthBytes
	body = append(body, 1, 1) // planes, bitsPixel
	body = append(body, 0xDE, 0xAD, 0xBE, 0xEF)
	got := decodeRecord(t, RecordCreatePatternBrush, body).(CreatePatternBrushRecord)
	if got.Bitmap.Width != 8 || got.Bitmap.BitsPixel != 1 {
		t.Fatalf("CreatePatternBrush bitmap = %+v, want 8-wide 1bpp", got.Bitmap)
	}
	if string(got.Bits) != "\xDE\xAD\xBE\xEF" {
		t.Fatalf("CreatePatternBrush bits = % x, want de ad be ef", got.Bits)
	}
}

func TestDIBCreatePatternBrushDecodes(t *testing.T) {
	var body []byte
	body = put32(body, uint32(BrushDIBPatternPT))
	body = put32(body, uint32(ColorUsageRGB))
	body = append(body, coreDIBHeader([]byte{0xAB, 0xCD})...)
	got := decodeRecord(t, RecordDIBCreatePatternBrush, body).(DIBCreatePatternBrushRecord)
	if got.Style != BrushDIBPatternPT || got.Usage != ColorUsageRGB {
		t.Fatalf("DIBCreatePatternBrush = style=%v usage=%v, want BS_DIBPATTERNPT/DIB_RGB_COLORS", got.Style, got.Usage)
	}
	if got.DIB.Header.BitCount != 24 || string(got.DIB.PixelData) != "\xAB\xCD" {
		t.Fatalf("DIBCreatePatternBrush dib = %+v, want 24bpp with 2 pixel bytes", got.DIB)
	}
}

func TestCreateRegionDecodesScans(t *testing.T) {
	var body []byte
	body = put16(body, 0) // next
	body = put16(body, 6) // objectType
	body = put32(body, 0) // regionSize
	body = put16(body, 1) // scanCount
	body = put16(body, 1) // maxScans
	for _, v := range []uint32{0, 0, 10, 5} { // bounds l/t/r/b
		body = put32(body, v)
	}
	body = put16(body, 1) // scan: one span
	body = put16(body, 0) // top
	body = put16(body, 5) // bottom
	body = put16(body, 2) // span left
	body = put16(body, 8) // span right
	body = put16(body, 1) // count sentinel

	got := decodeRecord(t, RecordCreateRegion, body).(CreateRegionRecord)
	reg := got.Region
	if reg.ScanCount != 1 || len(reg.Scans) != 1 {
		t.Fatalf("CreateRegion = %+v, want one scan", reg)
	}
	if reg.Bounds != (RectL{Left: 0, Top: 0, Right: 10, Bottom: 5}) {
		t.Fatalf("CreateRegion bounds = %+v, want {0 0 10 5}", reg.Bounds)
	}
	scan := reg.Scans[0]
	if scan.Top != 0 || scan.Bottom != 5 || len(scan.Spans) != 1 || scan.Spans[0] != (RectL1D{Left: 2, Right: 8}) {
		t.Fatalf("CreateRegion scan = %+v, want span [2,8) over y 0..5", scan)
	}
}

func TestObjectIndexRecordsCarryIndex(t *testing.T) {
	var body []byte
	body = put16(body, 7)
	if got := decodeRecord(t, RecordDeleteObject, body).(DeleteObjectRecord); got.Index != 7 {
		t.Fatalf("DeleteObject index = %d, want 7", got.Index)
	}
	if got := decodeRecord(t, RecordSelectObject, body).(SelectObjectRecord); got.Index != 7 {
		t.Fatalf("SelectObject index = %d, want 7", got.Index)
	}
	if got := decodeRecord(t, RecordSelectClipRegion, body).(SelectClipRegionRecord); got.Index != 7 {
		t.Fatalf("SelectClipRegion index = %d, want 7", got.Index)
	}
	if got := decodeRecord(t, RecordSelectPalette, body).(SelectPaletteRecord); got.Index != 7 {
		t.Fatalf("SelectPalette index = %d, want 7", got.Index)
	}
}
