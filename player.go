// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"fmt"

	"github.com/wmfgo/wmf/internal/log"
)

// Player replays a framed Metafile against a Sink, maintaining the PDC and
// Object Table the way the Windows GDI metafile player does. It is the
// component that turns "a sequence of decoded records" into "calls
// against a graphics backend".
type Player struct {
	warn   *log.Helper
	strict bool

	// Warnings lists the reserved-record anomalies observed during Play,
	// in stream order.
	Warnings []string
}

// NewPlayer returns a Player configured from opts (nil means defaults):
// anomalies are reported through opts.Logger, and opts.Strict promotes
// reserved records from warnings to hard errors.
func NewPlayer(opts *Options) *Player {
	opts = normalizeOptions(opts)
	return &Player{warn: opts.Logger, strict: opts.Strict}
}

func (p *Player) warnf(format string, args ...interface{}) {
	p.warn.Warnf(format, args...)
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
}

// Play drives mf against sink. It allocates one ObjectTable sized from the
// header's NumberOfObjects and one PDC at the playback defaults, then
// applies every record in order.
func (p *Player) Play(mf *Metafile, sink Sink) error {
	objects := NewObjectTable(mf.Header.NumberOfObjects)
	pdc := NewPDC()

	if err := sink.Begin(mf.Header, *pdc); err != nil {
		return fmt.Errorf("Sink.Begin: %w", err)
	}

	for _, rec := range mf.Records {
		if err := p.apply(pdc, objects, rec, sink); err != nil {
			return fmt.Errorf("applying %s: %w", rec.Header.Function.Type, err)
		}
	}

	if err := sink.End(); err != nil {
		return fmt.Errorf("Sink.End: %w", err)
	}
	return nil
}

func (p *Player) apply(pdc *PDC, objects *ObjectTable, rec Record, sink Sink) error {
	if escape, ok := rec.Payload.(EscapeRecord); ok {
		return sink.Escape(*pdc, escape)
	}

	if isDrawingPayload(rec.Payload) {
		if err := sink.Draw(*pdc, rec.Payload); err != nil {
			return err
		}
		// LineTo draws from the current position, then moves it.
		if lt, ok := rec.Payload.(LineToRecord); ok {
			pdc.CurrentPosition = lt.Point
		}
		return nil
	}

	switch v := rec.Payload.(type) {
	case EofRecord:
		return nil

	// State records: mutate the PDC only.
	case SetBkColorRecord:
		pdc.BkColor = v.Color
	case SetBkModeRecord:
		pdc.BkMode = v.Mode
	case SetMapModeRecord:
		pdc.MapMode = v.Mode
	case SetMapperFlagsRecord:
		// Aspect-ratio filtering preference for the font mapper; the
		// reference SVG sink has no font mapper to steer.
	case SetPalEntriesRecord:
		if pdc.SelectedPalette != nil {
			applyPaletteEntries(pdc.SelectedPalette, v.Start, v.Entries)
		}
	case SetPolyFillModeRecord:
		pdc.PolyFillMode = v.Mode
	case SetRelabsRecord:
		if p.strict {
			return fmt.Errorf("SetRelabs is reserved: %w", ErrUnsupportedFeature)
		}
		p.warnf("SetRelabs is reserved; ignoring")
	case SetROP2Record:
		pdc.ROP2 = v.Op
	case SetStretchBltModeRecord:
		pdc.StretchBltMode = v.Mode
	case SetTextAlignRecord:
		pdc.TextAlign = v.Align
	case SetTextCharExtraRecord:
		pdc.TextCharExtra = int32(v.Extra)
	case SetTextColorRecord:
		pdc.TextColor = v.Color
	case SetTextJustificationRecord:
		pdc.TextJustification = v.BreakExtra
		pdc.TextJustificationBreakCount = v.BreakCount
	case SetWindowExtRecord:
		pdc.WindowExtent = v.Extent
	case SetWindowOrgRecord:
		pdc.WindowOrigin = v.Origin
	case SetViewportExtRecord:
		pdc.ViewportExtent = v.Extent
	case SetViewportOrgRecord:
		pdc.ViewportOrigin = v.Origin
	case SetLayoutRecord:
		pdc.Layout = v.Layout
	case ScaleWindowExtRecord:
		pdc.WindowExtent = scalePointL(pdc.WindowExtent, v.XNum, v.XDenom, v.YNum, v.YDenom)
	case ScaleViewportExtRecord:
		pdc.ViewportExtent = scalePointL(pdc.ViewportExtent, v.XNum, v.XDenom, v.YNum, v.YDenom)
	case OffsetWindowOrgRecord:
		pdc.WindowOrigin.X += int32(v.DX)
		pdc.WindowOrigin.Y += int32(v.DY)
	case OffsetViewportOrgRecord:
		pdc.ViewportOrigin.X += int32(v.DX)
		pdc.ViewportOrigin.Y += int32(v.DY)
	case OffsetClipRgnRecord:
		// Clip-region translation is deferred to the sink: the decoder
		// keeps ClipRegion as the object's own scanline table rather than
		// a coordinate list it could shift in place.
	case ExcludeClipRectRecord, IntersectClipRectRecord:
		// Rectangle clip composition is likewise left to the sink, which
		// owns the actual clip representation it renders with.
	case SaveDCRecord:
		pdc.Save()
	case RestoreDCRecord:
		if err := pdc.Restore(v.N); err != nil {
			return err
		}
	case AnimatePaletteRecord:
		if pdc.SelectedPalette != nil {
			applyPaletteEntries(pdc.SelectedPalette, v.Start, v.Entries)
		}
	case RealizePaletteRecord:
		// No-op: there is no device palette to realize into outside of
		// Windows itself.
	case ResizePaletteRecord:
		if pdc.SelectedPalette != nil {
			resizePalette(pdc.SelectedPalette, v.NumberOfEntries)
		}
	case MoveToRecord:
		pdc.CurrentPosition = v.Point

	// Object records: mutate the Object Table and/or the PDC's selection.
	case CreateBrushIndirectRecord:
		_, err := objects.Create(newBrushObject(ReadBrush(v.Brush)))
		return err
	case CreateFontIndirectRecord:
		_, err := objects.Create(newFontObject(v.Font))
		return err
	case CreatePaletteRecord:
		_, err := objects.Create(newPaletteObject(v.Palette))
		return err
	case CreatePatternBrushRecord:
		// The device-dependent Bitmap16 pattern has no DIB representation
		// to hang off Brush.Bitmap; a sink that cares about pattern fills
		// reads it straight off the CreatePatternBrushRecord instead.
		_, err := objects.Create(newBrushObject(Brush{Style: BrushPattern}))
		return err
	case DIBCreatePatternBrushRecord:
		dib := v.DIB
		_, err := objects.Create(newBrushObject(Brush{Style: v.Style, Bitmap: &dib}))
		return err
	case CreatePenIndirectRecord:
		_, err := objects.Create(newPenObject(v.Pen))
		return err
	case CreateRegionRecord:
		_, err := objects.Create(newRegionObject(v.Region))
		return err
	case DeleteObjectRecord:
		return objects.Delete(v.Index)
	case SelectObjectRecord:
		return selectObject(pdc, objects, v.Index)
	case SelectClipRegionRecord:
		if v.Index == 0 {
			pdc.ClipRegion = nil
			return nil
		}
		obj, err := objects.Get(v.Index)
		if err != nil {
			return err
		}
		if obj.Kind != ObjectRegion {
			return fmt.Errorf("SelectClipRegion on a %s object: %w", obj.Kind, ErrBadObjectRef)
		}
		pdc.ClipRegion = obj.Region
	case SelectPaletteRecord:
		obj, err := objects.Get(v.Index)
		if err != nil {
			return err
		}
		if obj.Kind != ObjectPalette {
			return fmt.Errorf("SelectPalette on a %s object: %w", obj.Kind, ErrBadObjectRef)
		}
		pdc.SelectedPalette = obj.Palette

	default:
		p.warnf("unhandled payload type %T; ignoring", v)
	}
	return nil
}

// selectObject makes the referenced object the PDC's current brush, font,
// pen, or palette, per its Kind. Because the PDC holds the object's
// payload pointer directly, a later DeleteObject of the same index
// resets the table slot but cannot reach back and clear this selection:
// ObjectTable.Delete always installs a fresh zero-value GraphicsObject
// rather than mutating the one this pointer was taken from.
func selectObject(pdc *PDC, objects *ObjectTable, index uint16) error {
	obj, err := objects.Get(index)
	if err != nil {
		return err
	}
	switch obj.Kind {
	case ObjectBrush:
		pdc.SelectedBrush = obj.Brush
	case ObjectFont:
		pdc.SelectedFont = obj.Font
	case ObjectPalette:
		pdc.SelectedPalette = obj.Palette
	case ObjectPen:
		pdc.SelectedPen = obj.Pen
	case ObjectRegion:
		pdc.ClipRegion = obj.Region
	default:
		return fmt.Errorf("SelectObject on a %s object: %w", obj.Kind, ErrBadObjectRef)
	}
	return nil
}

func applyPaletteEntries(pal *Palette, start uint16, entries []PaletteEntry) {
	for i, e := range entries {
		idx := int(start) + i
		if idx < 0 || idx >= len(pal.Entries) {
			continue
		}
		pal.Entries[idx] = e
	}
}

func resizePalette(pal *Palette, n uint16) {
	if int(n) == len(pal.Entries) {
		return
	}
	resized := make([]PaletteEntry, n)
	copy(resized, pal.Entries)
	pal.Entries = resized
}

// scalePointL implements ScaleWindowExt/ScaleViewportExt's fractional
// rescale: each axis is multiplied by Num/Denom ([MS-WMF] 2.3.5.15/2.3.5.16).
func scalePointL(p PointL, xNum, xDenom, yNum, yDenom int16) PointL {
	out := p
	if xDenom != 0 {
		out.X = p.X * int32(xNum) / int32(xDenom)
	}
	if yDenom != 0 {
		out.Y = p.Y * int32(yNum) / int32(yDenom)
	}
	return out
}
