// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import "fmt"

// State records only ever mutate the PDC; they never touch the Object
// Table.

// SetBkColorRecord sets the PDC's background color.
type SetBkColorRecord struct{ Color ColorRef }

func (SetBkColorRecord) RecordType() RecordType { return RecordSetBkColor }

// SetBkModeRecord sets the PDC's background mix mode.
type SetBkModeRecord struct{ Mode MixMode }

func (SetBkModeRecord) RecordType() RecordType { return RecordSetBkMode }

// SetMapModeRecord sets the PDC's mapping mode.
type SetMapModeRecord struct{ Mode MapMode }

func (SetMapModeRecord) RecordType() RecordType { return RecordSetMapMode }

// SetMapperFlagsRecord tunes the font mapper's aspect-preservation bit.
type SetMapperFlagsRecord struct{ Flags uint32 }

func (SetMapperFlagsRecord) RecordType() RecordType { return RecordSetMapperFlags }

// SetPalEntriesRecord replaces a run of palette entries in the selected
// palette.
type SetPalEntriesRecord struct {
	Start   uint16
	Entries []PaletteEntry
}

func (SetPalEntriesRecord) RecordType() RecordType { return RecordSetPalEntries }

// SetPolyFillModeRecord sets the PDC's polygon fill mode.
type SetPolyFillModeRecord struct{ Mode PolyFillMode }

func (SetPolyFillModeRecord) RecordType() RecordType { return RecordSetPolyFillMode }

// SetRelabsRecord is a reserved record; it always decodes, and the player
// logs a warning and ignores it, or under Options.Strict fails with
// ErrUnsupportedFeature.
type SetRelabsRecord struct{}

func (SetRelabsRecord) RecordType() RecordType { return RecordSetRelabs }

// SetROP2Record sets the PDC's binary raster operation.
type SetROP2Record struct{ Op BinaryRasterOperation }

func (SetROP2Record) RecordType() RecordType { return RecordSetROP2 }

// SetStretchBltModeRecord sets the PDC's stretch mode.
type SetStretchBltModeRecord struct{ Mode StretchMode }

func (SetStretchBltModeRecord) RecordType() RecordType { return RecordSetStretchBltMode }

// SetTextAlignRecord replaces the PDC's text-alignment bits wholesale,
// not merged with the prior value.
type SetTextAlignRecord struct{ Align TextAlign }

func (SetTextAlignRecord) RecordType() RecordType { return RecordSetTextAlign }

// SetTextCharExtraRecord sets inter-character extra spacing.
type SetTextCharExtraRecord struct{ Extra uint32 }

func (SetTextCharExtraRecord) RecordType() RecordType { return RecordSetTextCharExtra }

// SetTextColorRecord sets the PDC's text color.
type SetTextColorRecord struct{ Color ColorRef }

func (SetTextColorRecord) RecordType() RecordType { return RecordSetTextColor }

// SetTextJustificationRecord sets the justification extra-space/break-count
// pair ExtTextOut later consults.
type SetTextJustificationRecord struct {
	BreakExtra int32
	BreakCount int32
}

func (SetTextJustificationRecord) RecordType() RecordType { return RecordSetTextJustification }

// SetWindowExtRecord sets the PDC's logical window extent.
type SetWindowExtRecord struct{ Extent PointL }

func (SetWindowExtRecord) RecordType() RecordType { return RecordSetWindowExt }

// SetWindowOrgRecord sets the PDC's logical window origin.
type SetWindowOrgRecord struct{ Origin PointL }

func (SetWindowOrgRecord) RecordType() RecordType { return RecordSetWindowOrg }

// SetViewportExtRecord sets the PDC's device viewport extent.
type SetViewportExtRecord struct{ Extent PointL }

func (SetViewportExtRecord) RecordType() RecordType { return RecordSetViewportExt }

// SetViewportOrgRecord sets the PDC's device viewport origin.
type SetViewportOrgRecord struct{ Origin PointL }

func (SetViewportOrgRecord) RecordType() RecordType { return RecordSetViewportOrg }

// SetLayoutRecord replaces the PDC's layout bits wholesale, like
// SetTextAlign.
type SetLayoutRecord struct{ Layout Layout }

func (SetLayoutRecord) RecordType() RecordType { return RecordSetLayout }

// ScaleWindowExtRecord scales the window extent by Mx/Md and My/Nd
// fractions ([MS-WMF] 2.3.5.15).
type ScaleWindowExtRecord struct{ XNum, XDenom, YNum, YDenom int16 }

func (ScaleWindowExtRecord) RecordType() RecordType { return RecordScaleWindowExt }

// ScaleViewportExtRecord scales the viewport extent the same way.
type ScaleViewportExtRecord struct{ XNum, XDenom, YNum, YDenom int16 }

func (ScaleViewportExtRecord) RecordType() RecordType { return RecordScaleViewportExt }

// OffsetWindowOrgRecord translates the window origin.
type OffsetWindowOrgRecord struct{ DX, DY int16 }

func (OffsetWindowOrgRecord) RecordType() RecordType { return RecordOffsetWindowOrg }

// OffsetViewportOrgRecord translates the viewport origin.
type OffsetViewportOrgRecord struct{ DX, DY int16 }

func (OffsetViewportOrgRecord) RecordType() RecordType { return RecordOffsetViewportOrg }

// OffsetClipRgnRecord translates the current clip region.
type OffsetClipRgnRecord struct{ DX, DY int16 }

func (OffsetClipRgnRecord) RecordType() RecordType { return RecordOffsetClipRgn }

// ExcludeClipRectRecord subtracts a rectangle from the current clip region.
type ExcludeClipRectRecord struct{ Rect Rect }

func (ExcludeClipRectRecord) RecordType() RecordType { return RecordExcludeClipRect }

// IntersectClipRectRecord intersects the current clip region with a
// rectangle.
type IntersectClipRectRecord struct{ Rect Rect }

func (IntersectClipRectRecord) RecordType() RecordType { return RecordIntersectClipRect }

// SaveDCRecord pushes a PDC snapshot.
type SaveDCRecord struct{}

func (SaveDCRecord) RecordType() RecordType { return RecordSaveDC }

// RestoreDCRecord pops to an absolute or relative saved frame.
type RestoreDCRecord struct{ N int32 }

func (RestoreDCRecord) RecordType() RecordType { return RecordRestoreDC }

// AnimatePaletteRecord replaces a run of entries in the selected palette
// and signals an immediate repaint; decoded identically to SetPalEntries.
type AnimatePaletteRecord struct {
	Start   uint16
	Entries []PaletteEntry
}

func (AnimatePaletteRecord) RecordType() RecordType { return RecordAnimatePalette }

// RealizePaletteRecord maps the selected palette's entries into the
// system/device palette; it carries no payload.
type RealizePaletteRecord struct{}

func (RealizePaletteRecord) RecordType() RecordType { return RecordRealizePalette }

// ResizePaletteRecord changes the size of the selected palette.
type ResizePaletteRecord struct{ NumberOfEntries uint16 }

func (ResizePaletteRecord) RecordType() RecordType { return RecordResizePalette }

// MoveToRecord sets the PDC's current position.
type MoveToRecord struct{ Point PointL }

func (MoveToRecord) RecordType() RecordType { return RecordMoveTo }

// readPointLField decodes the y-then-x field pair every Set*Ext/Set*Org/
// MoveTo record uses: like PatBlt's reversed rasterOp..xDest run, WMF
// stores these in the reverse of their GDI call's parameter order.
func readPointLField(r *Reader) (PointL, error) {
	y, err := r.I16()
	if err != nil {
		return PointL{}, err
	}
	x, err := r.I16()
	if err != nil {
		return PointL{}, err
	}
	return PointL{X: int32(x), Y: int32(y)}, nil
}

func readPaletteEntriesRun(r *Reader) (uint16, []PaletteEntry, error) {
	start, err := r.U16()
	if err != nil {
		return 0, nil, fmt.Errorf("start: %w", err)
	}
	n, err := r.U16()
	if err != nil {
		return 0, nil, fmt.Errorf("numberOfEntries: %w", err)
	}
	entries := make([]PaletteEntry, n)
	for i := range entries {
		e, err := ReadPaletteEntry(r)
		if err != nil {
			return 0, nil, fmt.Errorf("entries[%d]: %w", i, err)
		}
		entries[i] = e
	}
	return start, entries, nil
}

func init() {
	registerRecordDecoder(RecordSetBkColor, func(r *Reader, _ int) (RecordPayload, error) {
		c, err := ReadColorRef(r)
		return SetBkColorRecord{Color: c}, err
	})
	registerRecordDecoder(RecordSetBkMode, func(r *Reader, _ int) (RecordPayload, error) {
		raw, err := r.U16()
		if err != nil {
			return nil, err
		}
		mode, err := ParseMixMode(raw)
		return SetBkModeRecord{Mode: mode}, err
	})
	registerRecordDecoder(RecordSetMapMode, func(r *Reader, _ int) (RecordPayload, error) {
		raw, err := r.U16()
		if err != nil {
			return nil, err
		}
		mode, err := ParseMapMode(raw)
		return SetMapModeRecord{Mode: mode}, err
	})
	registerRecordDecoder(RecordSetMapperFlags, func(r *Reader, _ int) (RecordPayload, error) {
		flags, err := r.U32()
		return SetMapperFlagsRecord{Flags: flags}, err
	})
	registerRecordDecoder(RecordSetPalEntries, func(r *Reader, _ int) (RecordPayload, error) {
		start, entries, err := readPaletteEntriesRun(r)
		return SetPalEntriesRecord{Start: start, Entries: entries}, err
	})
	registerRecordDecoder(RecordSetPolyFillMode, func(r *Reader, _ int) (RecordPayload, error) {
		raw, err := r.U16()
		if err != nil {
			return nil, err
		}
		mode, err := ParsePolyFillMode(raw)
		return SetPolyFillModeRecord{Mode: mode}, err
	})
	registerRecordDecoder(RecordSetRelabs, func(r *Reader, _ int) (RecordPayload, error) {
		return SetRelabsRecord{}, nil
	})
	registerRecordDecoder(RecordSetROP2, func(r *Reader, _ int) (RecordPayload, error) {
		raw, err := r.U16()
		if err != nil {
			return nil, err
		}
		op, err := ParseBinaryRasterOperation(raw)
		return SetROP2Record{Op: op}, err
	})
	registerRecordDecoder(RecordSetStretchBltMode, func(r *Reader, _ int) (RecordPayload, error) {
		raw, err := r.U16()
		if err != nil {
			return nil, err
		}
		mode, err := ParseStretchMode(raw)
		return SetStretchBltModeRecord{Mode: mode}, err
	})
	registerRecordDecoder(RecordSetTextAlign, func(r *Reader, _ int) (RecordPayload, error) {
		raw, err := r.U16()
		return SetTextAlignRecord{Align: TextAlign(raw)}, err
	})
	registerRecordDecoder(RecordSetTextCharExtra, func(r *Reader, _ int) (RecordPayload, error) {
		extra, err := r.U32()
		return SetTextCharExtraRecord{Extra: extra}, err
	})
	registerRecordDecoder(RecordSetTextColor, func(r *Reader, _ int) (RecordPayload, error) {
		c, err := ReadColorRef(r)
		return SetTextColorRecord{Color: c}, err
	})
	registerRecordDecoder(RecordSetTextJustification, func(r *Reader, _ int) (RecordPayload, error) {
		extra, err := r.I32()
		if err != nil {
			return nil, err
		}
		count, err := r.I32()
		return SetTextJustificationRecord{BreakExtra: extra, BreakCount: count}, err
	})
	registerRecordDecoder(RecordSetWindowExt, func(r *Reader, _ int) (RecordPayload, error) {
		p, err := readPointLField(r)
		return SetWindowExtRecord{Extent: p}, err
	})
	registerRecordDecoder(RecordSetWindowOrg, func(r *Reader, _ int) (RecordPayload, error) {
		p, err := readPointLField(r)
		return SetWindowOrgRecord{Origin: p}, err
	})
	registerRecordDecoder(RecordSetViewportExt, func(r *Reader, _ int) (RecordPayload, error) {
		p, err := readPointLField(r)
		return SetViewportExtRecord{Extent: p}, err
	})
	registerRecordDecoder(RecordSetViewportOrg, func(r *Reader, _ int) (RecordPayload, error) {
		p, err := readPointLField(r)
		return SetViewportOrgRecord{Origin: p}, err
	})
	registerRecordDecoder(RecordSetLayout, func(r *Reader, _ int) (RecordPayload, error) {
		raw, err := r.U32()
		if err != nil {
			return nil, err
		}
		layout, err := ParseLayout(raw)
		return SetLayoutRecord{Layout: layout}, err
	})
	registerRecordDecoder(RecordScaleWindowExt, func(r *Reader, _ int) (RecordPayload, error) {
		yd, err := r.I16()
		if err != nil {
			return nil, err
		}
		yn, err := r.I16()
		if err != nil {
			return nil, err
		}
		xd, err := r.I16()
		if err != nil {
			return nil, err
		}
		xn, err := r.I16()
		return ScaleWindowExtRecord{XNum: xn, XDenom: xd, YNum: yn, YDenom: yd}, err
	})
	registerRecordDecoder(RecordScaleViewportExt, func(r *Reader, _ int) (RecordPayload, error) {
		yd, err := r.I16()
		if err != nil {
			return nil, err
		}
		yn, err := r.I16()
		if err != nil {
			return nil, err
		}
		xd, err := r.I16()
		if err != nil {
			return nil, err
		}
		xn, err := r.I16()
		return ScaleViewportExtRecord{XNum: xn, XDenom: xd, YNum: yn, YDenom: yd}, err
	})
	registerRecordDecoder(RecordOffsetWindowOrg, func(r *Reader, _ int) (RecordPayload, error) {
		dy, err := r.I16()
		if err != nil {
			return nil, err
		}
		dx, err := r.I16()
		return OffsetWindowOrgRecord{DX: dx, DY: dy}, err
	})
	registerRecordDecoder(RecordOffsetViewportOrg, func(r *Reader, _ int) (RecordPayload, error) {
		dy, err := r.I16()
		if err != nil {
			return nil, err
		}
		dx, err := r.I16()
		return OffsetViewportOrgRecord{DX: dx, DY: dy}, err
	})
	registerRecordDecoder(RecordOffsetClipRgn, func(r *Reader, _ int) (RecordPayload, error) {
		dy, err := r.I16()
		if err != nil {
			return nil, err
		}
		dx, err := r.I16()
		return OffsetClipRgnRecord{DX: dx, DY: dy}, err
	})
	registerRecordDecoder(RecordExcludeClipRect, func(r *Reader, _ int) (RecordPayload, error) {
		bottom, err := r.I16()
		if err != nil {
			return nil, err
		}
		right, err := r.I16()
		if err != nil {
			return nil, err
		}
		top, err := r.I16()
		if err != nil {
			return nil, err
		}
		left, err := r.I16()
		return ExcludeClipRectRecord{Rect: Rect{Left: left, Top: top, Right: right, Bottom: bottom}}, err
	})
	registerRecordDecoder(RecordIntersectClipRect, func(r *Reader, _ int) (RecordPayload, error) {
		bottom, err := r.I16()
		if err != nil {
			return nil, err
		}
		right, err := r.I16()
		if err != nil {
			return nil, err
		}
		top, err := r.I16()
		if err != nil {
			return nil, err
		}
		left, err := r.I16()
		return IntersectClipRectRecord{Rect: Rect{Left: left, Top: top, Right: right, Bottom: bottom}}, err
	})
	registerRecordDecoder(RecordSaveDC, func(r *Reader, _ int) (RecordPayload, error) {
		return SaveDCRecord{}, nil
	})
	registerRecordDecoder(RecordRestoreDC, func(r *Reader, _ int) (RecordPayload, error) {
		n, err := r.I16()
		return RestoreDCRecord{N: int32(n)}, err
	})
	registerRecordDecoder(RecordAnimatePalette, func(r *Reader, _ int) (RecordPayload, error) {
		start, entries, err := readPaletteEntriesRun(r)
		return AnimatePaletteRecord{Start: start, Entries: entries}, err
	})
	registerRecordDecoder(RecordRealizePalette, func(r *Reader, _ int) (RecordPayload, error) {
		return RealizePaletteRecord{}, nil
	})
	registerRecordDecoder(RecordResizePalette, func(r *Reader, _ int) (RecordPayload, error) {
		n, err := r.U16()
		return ResizePaletteRecord{NumberOfEntries: n}, err
	})
	registerRecordDecoder(RecordMoveTo, func(r *Reader, _ int) (RecordPayload, error) {
		p, err := readPointLField(r)
		return MoveToRecord{Point: p}, err
	})
}
