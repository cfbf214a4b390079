// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import "fmt"

// RecordType is the full 16-bit value of a record's RecordFunction field
// ([MS-WMF] 2.1.1.1).
type RecordType uint16

// RecordType enumerants ([MS-WMF] 2.3), the full ~80-member record set.
const (
	RecordEOF                    RecordType = 0x0000
	RecordRealizePalette         RecordType = 0x0035
	RecordSetPalEntries          RecordType = 0x0037
	RecordCreatePalette          RecordType = 0x00F7
	RecordSetBkMode              RecordType = 0x0102
	RecordSetMapMode             RecordType = 0x0103
	RecordSetROP2                RecordType = 0x0104
	RecordSetRelabs              RecordType = 0x0105
	RecordSetPolyFillMode        RecordType = 0x0106
	RecordSetStretchBltMode      RecordType = 0x0107
	RecordSetTextCharExtra       RecordType = 0x0108
	RecordRestoreDC              RecordType = 0x0127
	RecordResizePalette          RecordType = 0x0139
	RecordDIBCreatePatternBrush  RecordType = 0x0142
	RecordSetLayout              RecordType = 0x0149
	RecordSetBkColor             RecordType = 0x0201
	RecordSetTextColor           RecordType = 0x0209
	RecordSetTextJustification   RecordType = 0x020A
	RecordSetWindowOrg           RecordType = 0x020B
	RecordSetWindowExt           RecordType = 0x020C
	RecordSetViewportOrg         RecordType = 0x020D
	RecordSetViewportExt         RecordType = 0x020E
	RecordOffsetWindowOrg        RecordType = 0x020F
	RecordOffsetViewportOrg      RecordType = 0x0211
	RecordLineTo                 RecordType = 0x0213
	RecordMoveTo                 RecordType = 0x0214
	RecordOffsetClipRgn          RecordType = 0x0220
	RecordFillRegion             RecordType = 0x0228
	RecordSetMapperFlags         RecordType = 0x0231
	RecordSelectPalette          RecordType = 0x0234
	RecordPolygon                RecordType = 0x0324
	RecordPolyLine               RecordType = 0x0325
	RecordEllipse                RecordType = 0x0418
	RecordFloodFill              RecordType = 0x0419
	RecordRectangle              RecordType = 0x041B
	RecordSetPixel               RecordType = 0x041F
	RecordFrameRegion            RecordType = 0x0429
	RecordAnimatePalette         RecordType = 0x0436
	RecordExcludeClipRect        RecordType = 0x0415
	RecordIntersectClipRect      RecordType = 0x0416
	RecordScaleWindowExt         RecordType = 0x0410
	RecordScaleViewportExt       RecordType = 0x0412
	RecordTextOut                RecordType = 0x0521
	RecordPolyPolygon            RecordType = 0x0538
	RecordExtFloodFill           RecordType = 0x0548
	RecordRoundRect              RecordType = 0x061C
	RecordPatBlt                 RecordType = 0x061D
	RecordEscape                 RecordType = 0x0626
	RecordCreateRegion           RecordType = 0x06FF
	RecordArc                    RecordType = 0x0817
	RecordPie                    RecordType = 0x081A
	RecordChord                  RecordType = 0x0830
	RecordBitBlt                 RecordType = 0x0922
	RecordDIBBitBlt              RecordType = 0x0940
	RecordExtTextOut             RecordType = 0x0A32
	RecordStretchBlt             RecordType = 0x0B23
	RecordDIBStretchBlt          RecordType = 0x0B41
	RecordSetDIBToDev            RecordType = 0x0D33
	RecordStretchDIB             RecordType = 0x0F43
	RecordSaveDC                 RecordType = 0x001E
	RecordSelectObject           RecordType = 0x012D
	RecordSelectClipRegion       RecordType = 0x012C
	RecordSetTextAlign           RecordType = 0x012E
	RecordInvertRegion           RecordType = 0x012A
	RecordPaintRegion            RecordType = 0x012B
	RecordDeleteObject           RecordType = 0x01F0
	RecordCreatePatternBrush     RecordType = 0x01F9
	RecordCreatePenIndirect      RecordType = 0x02FA
	RecordCreateFontIndirect     RecordType = 0x02FB
	RecordCreateBrushIndirect    RecordType = 0x02FC
)

var recordTypeNames = map[RecordType]string{
	RecordEOF: "META_EOF", RecordRealizePalette: "META_REALIZEPALETTE",
	RecordSetPalEntries: "META_SETPALENTRIES", RecordCreatePalette: "META_CREATEPALETTE",
	RecordSetBkMode: "META_SETBKMODE", RecordSetMapMode: "META_SETMAPMODE",
	RecordSetROP2: "META_SETROP2", RecordSetRelabs: "META_SETRELABS",
	RecordSetPolyFillMode: "META_SETPOLYFILLMODE", RecordSetStretchBltMode: "META_SETSTRETCHBLTMODE",
	RecordSetTextCharExtra: "META_SETTEXTCHAREXTRA", RecordRestoreDC: "META_RESTOREDC",
	RecordResizePalette: "META_RESIZEPALETTE", RecordDIBCreatePatternBrush: "META_DIBCREATEPATTERNBRUSH",
	RecordSetLayout: "META_SETLAYOUT", RecordSetBkColor: "META_SETBKCOLOR",
	RecordSetTextColor: "META_SETTEXTCOLOR", RecordSetTextJustification: "META_SETTEXTJUSTIFICATION",
	RecordSetWindowOrg: "META_SETWINDOWORG", RecordSetWindowExt: "META_SETWINDOWEXT",
	RecordSetViewportOrg: "META_SETVIEWPORTORG", RecordSetViewportExt: "META_SETVIEWPORTEXT",
	RecordOffsetWindowOrg: "META_OFFSETWINDOWORG", RecordOffsetViewportOrg: "META_OFFSETVIEWPORTORG",
	RecordLineTo: "META_LINETO", RecordMoveTo: "META_MOVETO",
	RecordOffsetClipRgn: "META_OFFSETCLIPRGN", RecordFillRegion: "META_FILLREGION",
	RecordSetMapperFlags: "META_SETMAPPERFLAGS", RecordSelectPalette: "META_SELECTPALETTE",
	RecordPolygon: "META_POLYGON", RecordPolyLine: "META_POLYLINE",
	RecordEllipse: "META_ELLIPSE", RecordFloodFill: "META_FLOODFILL",
	RecordRectangle: "META_RECTANGLE", RecordSetPixel: "META_SETPIXEL",
	RecordFrameRegion: "META_FRAMEREGION", RecordAnimatePalette: "META_ANIMATEPALETTE",
	RecordExcludeClipRect: "META_EXCLUDECLIPRECT", RecordIntersectClipRect: "META_INTERSECTCLIPRECT",
	RecordScaleWindowExt: "META_SCALEWINDOWEXT", RecordScaleViewportExt: "META_SCALEVIEWPORTEXT",
	RecordTextOut: "META_TEXTOUT", RecordPolyPolygon: "META_POLYPOLYGON",
	RecordExtFloodFill: "META_EXTFLOODFILL", RecordRoundRect: "META_ROUNDRECT",
	RecordPatBlt: "META_PATBLT", RecordEscape: "META_ESCAPE",
	RecordCreateRegion: "META_CREATEREGION", RecordArc: "META_ARC",
	RecordPie: "META_PIE", RecordChord: "META_CHORD",
	RecordBitBlt: "META_BITBLT", RecordDIBBitBlt: "META_DIBBITBLT",
	RecordExtTextOut: "META_EXTTEXTOUT", RecordStretchBlt: "META_STRETCHBLT",
	RecordDIBStretchBlt: "META_DIBSTRETCHBLT", RecordSetDIBToDev: "META_SETDIBTODEV",
	RecordStretchDIB: "META_STRETCHDIB", RecordSaveDC: "META_SAVEDC",
	RecordSelectObject: "META_SELECTOBJECT", RecordSelectClipRegion: "META_SELECTCLIPREGION",
	RecordSetTextAlign: "META_SETTEXTALIGN", RecordInvertRegion: "META_INVERTREGION",
	RecordPaintRegion: "META_PAINTREGION", RecordDeleteObject: "META_DELETEOBJECT",
	RecordCreatePatternBrush: "META_CREATEPATTERNBRUSH", RecordCreatePenIndirect: "META_CREATEPENINDIRECT",
	RecordCreateFontIndirect: "META_CREATEFONTINDIRECT", RecordCreateBrushIndirect: "META_CREATEBRUSHINDIRECT",
}

func (v RecordType) String() string { return enumString(recordTypeNames, v) }

// recordTypesByLowByte maps the low byte of a raw RecordFunction word to
// its canonical RecordType. [MS-WMF] record functions descend from 8-bit
// opcodes used by 16-bit Windows: the low byte carries the operation and
// the high byte historically recorded the word-length parameter count, a
// field this decoder never validates. Every RecordType constant has a
// distinct low byte, so the low byte alone identifies the record.
var recordTypesByLowByte = func() map[uint8]RecordType {
	m := make(map[uint8]RecordType, len(recordTypeNames))
	for t := range recordTypeNames {
		m[uint8(t)] = t
	}
	return m
}()

// RecordFunction wraps the raw 16-bit RecordFunction field, resolved to
// its canonical RecordType by low byte. Raw keeps the wire value: EOF is
// the one record whose full word is validated (see the framer), since
// [MS-WMF] requires it to be exactly 0x0000.
type RecordFunction struct {
	Type RecordType
	Raw  uint16
}

// ParseRecordFunction resolves a raw RecordFunction word to its canonical
// RecordType by low byte, ignoring the high byte entirely. A low byte
// with no registered RecordType is ErrUnexpectedEnumValue.
func ParseRecordFunction(raw uint16) (RecordFunction, error) {
	t, ok := recordTypesByLowByte[uint8(raw)]
	if !ok {
		return RecordFunction{}, fmt.Errorf("record function %#04x: no known record type for low byte %#02x: %w", raw, uint8(raw), ErrUnexpectedEnumValue)
	}
	return RecordFunction{Type: t, Raw: raw}, nil
}

// RecordHeader is the common 6-byte prefix of every record ([MS-WMF]
// 2.3): a 4-byte RecordSize in 16-bit words and a 2-byte RecordFunction.
type RecordHeader struct {
	SizeWords uint32
	Function  RecordFunction
}

// SizeBytes converts the word-counted RecordSize to bytes.
func (h RecordHeader) SizeBytes() int { return int(h.SizeWords) * 2 }

// ReadRecordHeader decodes the 6-byte record prefix.
func ReadRecordHeader(r *Reader) (RecordHeader, error) {
	size, err := r.U32()
	if err != nil {
		return RecordHeader{}, fmt.Errorf("RecordHeader.size: %w", err)
	}
	rawFn, err := r.U16()
	if err != nil {
		return RecordHeader{}, fmt.Errorf("RecordHeader.function: %w", err)
	}
	fn, err := ParseRecordFunction(rawFn)
	if err != nil {
		return RecordHeader{}, err
	}
	return RecordHeader{SizeWords: size, Function: fn}, nil
}

const recordHeaderSizeBytes = 6

// RecordPayload is implemented by one concrete struct per RecordType: a
// single record type with one variant per record function. A tagged
// interface plus one struct per variant is the idiomatic Go equivalent
// when the variants' shapes are as heterogeneous as these ~80 record
// bodies are.
type RecordPayload interface {
	RecordType() RecordType
}

// Record is a decoded record: its header plus the one payload selected by
// Header.Function.Type.
type Record struct {
	Header  RecordHeader
	Payload RecordPayload
}

// recordDecoder decodes one record body given the bytes remaining inside
// its declared size (the reader is already positioned just past the
// header). Each record-category file registers its decoders into
// recordDecoders at init.
type recordDecoder func(r *Reader, declaredBytes int) (RecordPayload, error)

var recordDecoders = map[RecordType]recordDecoder{}

func registerRecordDecoder(t RecordType, fn recordDecoder) {
	recordDecoders[t] = fn
}
