// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import "fmt"

// Object records create or select entries in the Object Table; they never
// touch the PDC's drawing state directly.

// CreateBrushIndirectRecord creates a solid, hatched, or null brush.
type CreateBrushIndirectRecord struct{ Brush LogBrush }

func (CreateBrushIndirectRecord) RecordType() RecordType { return RecordCreateBrushIndirect }

// CreateFontIndirectRecord creates a font.
type CreateFontIndirectRecord struct{ Font Font }

func (CreateFontIndirectRecord) RecordType() RecordType { return RecordCreateFontIndirect }

// CreatePaletteRecord creates a palette. Start MUST be 0x0300 ([MS-WMF]
// 2.3.4.4); a different value fails with ErrUnexpectedPattern.
type CreatePaletteRecord struct{ Palette Palette }

func (CreatePaletteRecord) RecordType() RecordType { return RecordCreatePalette }

const createPaletteStartMarker = 0x0300

// CreatePatternBrushRecord creates a brush from a device-dependent bitmap
// pattern.
type CreatePatternBrushRecord struct {
	Bitmap Bitmap16
	Bits   []byte
}

func (CreatePatternBrushRecord) RecordType() RecordType { return RecordCreatePatternBrush }

// DIBCreatePatternBrushRecord creates a brush from a DIB pattern, or (when
// Style is BS_PATTERN) by referencing an existing bitmap's packed-DIB form.
type DIBCreatePatternBrushRecord struct {
	Style BrushStyle
	Usage ColorUsage
	DIB   DIB
}

func (DIBCreatePatternBrushRecord) RecordType() RecordType { return RecordDIBCreatePatternBrush }

// CreatePenIndirectRecord creates a pen.
type CreatePenIndirectRecord struct{ Pen Pen }

func (CreatePenIndirectRecord) RecordType() RecordType { return RecordCreatePenIndirect }

// CreateRegionRecord creates a region.
type CreateRegionRecord struct{ Region Region }

func (CreateRegionRecord) RecordType() RecordType { return RecordCreateRegion }

// DeleteObjectRecord frees an Object Table slot for reuse.
type DeleteObjectRecord struct{ Index uint16 }

func (DeleteObjectRecord) RecordType() RecordType { return RecordDeleteObject }

// SelectObjectRecord makes the referenced object the PDC's current
// brush/font/palette/pen/region, depending on its Kind. The PDC holds the
// object's payload pointer directly, so a later DeleteObject of the same
// index cannot retroactively clear the selection.
type SelectObjectRecord struct{ Index uint16 }

func (SelectObjectRecord) RecordType() RecordType { return RecordSelectObject }

// SelectClipRegionRecord selects a region (or 0, to clear clipping)
// as the PDC's clip region.
type SelectClipRegionRecord struct{ Index uint16 }

func (SelectClipRegionRecord) RecordType() RecordType { return RecordSelectClipRegion }

// SelectPaletteRecord selects a palette as the PDC's current palette.
type SelectPaletteRecord struct{ Index uint16 }

func (SelectPaletteRecord) RecordType() RecordType { return RecordSelectPalette }

func init() {
	registerRecordDecoder(RecordCreateBrushIndirect, func(r *Reader, _ int) (RecordPayload, error) {
		lb, err := ReadLogBrush(r)
		return CreateBrushIndirectRecord{Brush: lb}, err
	})
	registerRecordDecoder(RecordCreateFontIndirect, func(r *Reader, _ int) (RecordPayload, error) {
		f, err := ReadFont(r)
		return CreateFontIndirectRecord{Font: f}, err
	})
	registerRecordDecoder(RecordCreatePalette, func(r *Reader, _ int) (RecordPayload, error) {
		p, err := ReadPalette(r)
		if err != nil {
			return nil, err
		}
		if p.Start != createPaletteStartMarker {
			return nil, fmt.Errorf("CreatePalette.start = %#x, want %#x: %w", p.Start, createPaletteStartMarker, ErrUnexpectedPattern)
		}
		return CreatePaletteRecord{Palette: p}, nil
	})
	registerRecordDecoder(RecordCreatePatternBrush, func(r *Reader, declaredBytes int) (RecordPayload, error) {
		start := r.Pos()
		bm, err := ReadBitmap16(r)
		if err != nil {
			return nil, err
		}
		remaining := declaredBytes - (r.Pos() - start)
		if remaining < 0 {
			return nil, fmt.Errorf("CreatePatternBrush: %w", ErrTruncated)
		}
		bits, _, err := r.Bytes(remaining)
		if err != nil {
			return nil, fmt.Errorf("CreatePatternBrush.bits: %w", err)
		}
		return CreatePatternBrushRecord{Bitmap: bm, Bits: append([]byte(nil), bits...)}, nil
	})
	registerRecordDecoder(RecordDIBCreatePatternBrush, func(r *Reader, declaredBytes int) (RecordPayload, error) {
		start := r.Pos()
		rawStyle, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("DIBCreatePatternBrush.style: %w", err)
		}
		style, err := ParseBrushStyle(uint16(rawStyle))
		if err != nil {
			return nil, fmt.Errorf("DIBCreatePatternBrush.style: %w", err)
		}
		rawUsage, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("DIBCreatePatternBrush.colorUsage: %w", err)
		}
		usage, err := ParseColorUsage(rawUsage)
		if err != nil {
			return nil, fmt.Errorf("DIBCreatePatternBrush.colorUsage: %w", err)
		}
		remaining := declaredBytes - (r.Pos() - start)
		if remaining < 0 {
			return nil, fmt.Errorf("DIBCreatePatternBrush: %w", ErrTruncated)
		}
		dib, err := ReadDIB(r, usage, remaining)
		if err != nil {
			return nil, fmt.Errorf("DIBCreatePatternBrush.dib: %w", err)
		}
		return DIBCreatePatternBrushRecord{Style: style, Usage: usage, DIB: dib}, nil
	})
	registerRecordDecoder(RecordCreatePenIndirect, func(r *Reader, _ int) (RecordPayload, error) {
		p, err := ReadPen(r)
		return CreatePenIndirectRecord{Pen: p}, err
	})
	registerRecordDecoder(RecordCreateRegion, func(r *Reader, _ int) (RecordPayload, error) {
		reg, err := ReadRegion(r)
		return CreateRegionRecord{Region: reg}, err
	})
	registerRecordDecoder(RecordDeleteObject, func(r *Reader, _ int) (RecordPayload, error) {
		idx, err := r.U16()
		return DeleteObjectRecord{Index: idx}, err
	})
	registerRecordDecoder(RecordSelectObject, func(r *Reader, _ int) (RecordPayload, error) {
		idx, err := r.U16()
		return SelectObjectRecord{Index: idx}, err
	})
	registerRecordDecoder(RecordSelectClipRegion, func(r *Reader, _ int) (RecordPayload, error) {
		idx, err := r.U16()
		return SelectClipRegionRecord{Index: idx}, err
	})
	registerRecordDecoder(RecordSelectPalette, func(r *Reader, _ int) (RecordPayload, error) {
		idx, err := r.U16()
		return SelectPaletteRecord{Index: idx}, err
	})
}
