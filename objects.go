// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import "fmt"

// ObjectKind tags which graphics-object variant an Object Table slot holds.
type ObjectKind int

// ObjectKind values. ObjectNull marks a free (or deleted) slot.
const (
	ObjectNull ObjectKind = iota
	ObjectBrush
	ObjectFont
	ObjectPalette
	ObjectPen
	ObjectRegion
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectNull:
		return "Null"
	case ObjectBrush:
		return "Brush"
	case ObjectFont:
		return "Font"
	case ObjectPalette:
		return "Palette"
	case ObjectPen:
		return "Pen"
	case ObjectRegion:
		return "Region"
	default:
		return "Unknown"
	}
}

// GraphicsObject is the tag-union member stored in one Object Table slot.
// Exactly one of Brush/Font/Palette/Pen/Region is non-nil, selected by Kind.
type GraphicsObject struct {
	Kind    ObjectKind
	Brush   *Brush
	Font    *Font
	Palette *Palette
	Pen     *Pen
	Region  *Region
}

// Brush is a fill/stroke descriptor ([MS-WMF] 2.2.1.1).
type Brush struct {
	Style    BrushStyle
	Color    ColorRef
	Hatch    HatchStyle
	HasHatch bool
	Bitmap   *DIB // present only for BS_DIBPATTERN / BS_DIBPATTERNPT
}

// Font is a text-drawing descriptor ([MS-WMF] 2.2.1.2).
type Font struct {
	Height, Width       int16
	Escapement, Orientation int16 // tenths of a degree
	Weight              int16
	Italic, Underline, StrikeOut bool
	Charset             CharacterSet
	OutPrecision        OutPrecision
	ClipPrecision       uint8 // raw flag bits, not enumerant-validated
	Quality             FontQuality
	PitchAndFamily      PitchAndFamily
	FaceName            string // bounded to 32 ANSI bytes on the wire
}

// Palette is an indexed color table ([MS-WMF] 2.2.1.3).
type Palette struct {
	Start   uint16
	Entries []PaletteEntry
}

// Pen is a stroke descriptor ([MS-WMF] 2.2.1.4).
type Pen struct {
	Style PenStyle
	Width PointS
	Color ColorRef
}

func newBrushObject(b Brush) GraphicsObject { return GraphicsObject{Kind: ObjectBrush, Brush: &b} }
func newFontObject(f Font) GraphicsObject   { return GraphicsObject{Kind: ObjectFont, Font: &f} }
func newPaletteObject(p Palette) GraphicsObject {
	return GraphicsObject{Kind: ObjectPalette, Palette: &p}
}
func newPenObject(p Pen) GraphicsObject       { return GraphicsObject{Kind: ObjectPen, Pen: &p} }
func newRegionObject(r Region) GraphicsObject { return GraphicsObject{Kind: ObjectRegion, Region: &r} }

// clone deep-copies a GraphicsObject so a saved PDC frame survives a later
// DeleteObject on the live Object Table.
func (g GraphicsObject) clone() GraphicsObject {
	out := GraphicsObject{Kind: g.Kind}
	switch g.Kind {
	case ObjectBrush:
		if g.Brush != nil {
			b := *g.Brush
			if b.Bitmap != nil {
				bm := *b.Bitmap
				b.Bitmap = &bm
			}
			out.Brush = &b
		}
	case ObjectFont:
		if g.Font != nil {
			f := *g.Font
			out.Font = &f
		}
	case ObjectPalette:
		if g.Palette != nil {
			p := *g.Palette
			p.Entries = append([]PaletteEntry(nil), p.Entries...)
			out.Palette = &p
		}
	case ObjectPen:
		if g.Pen != nil {
			p := *g.Pen
			out.Pen = &p
		}
	case ObjectRegion:
		if g.Region != nil {
			r := *g.Region
			r.Scans = append([]Scan(nil), r.Scans...)
			out.Region = &r
		}
	}
	return out
}

// FaceNameLimit is the maximum ANSI byte length of Font.FaceName on the
// wire ([MS-WMF] 2.2.1.2).
const FaceNameLimit = 32

// ReadFont decodes a Font object payload ([MS-WMF] 2.2.1.2).
func ReadFont(r *Reader) (Font, error) {
	var f Font
	var err error
	if f.Height, err = r.I16(); err != nil {
		return f, fmt.Errorf("Font.height: %w", err)
	}
	if f.Width, err = r.I16(); err != nil {
		return f, fmt.Errorf("Font.width: %w", err)
	}
	if f.Escapement, err = r.I16(); err != nil {
		return f, fmt.Errorf("Font.escapement: %w", err)
	}
	if f.Orientation, err = r.I16(); err != nil {
		return f, fmt.Errorf("Font.orientation: %w", err)
	}
	if f.Weight, err = r.I16(); err != nil {
		return f, fmt.Errorf("Font.weight: %w", err)
	}
	italic, err := r.U8()
	if err != nil {
		return f, fmt.Errorf("Font.italic: %w", err)
	}
	f.Italic = italic != 0
	underline, err := r.U8()
	if err != nil {
		return f, fmt.Errorf("Font.underline: %w", err)
	}
	f.Underline = underline != 0
	strikeOut, err := r.U8()
	if err != nil {
		return f, fmt.Errorf("Font.strikeOut: %w", err)
	}
	f.StrikeOut = strikeOut != 0
	rawCharset, err := r.U8()
	if err != nil {
		return f, fmt.Errorf("Font.charset: %w", err)
	}
	if f.Charset, err = ParseCharacterSet(rawCharset); err != nil {
		return f, fmt.Errorf("Font.charset: %w", err)
	}
	rawOutPrecision, err := r.U8()
	if err != nil {
		return f, fmt.Errorf("Font.outPrecision: %w", err)
	}
	if f.OutPrecision, err = ParseOutPrecision(rawOutPrecision); err != nil {
		return f, fmt.Errorf("Font.outPrecision: %w", err)
	}
	if f.ClipPrecision, err = r.U8(); err != nil { // raw flags, not validated
		return f, fmt.Errorf("Font.clipPrecision: %w", err)
	}
	rawQuality, err := r.U8()
	if err != nil {
		return f, fmt.Errorf("Font.quality: %w", err)
	}
	if f.Quality, err = ParseFontQuality(rawQuality); err != nil {
		return f, fmt.Errorf("Font.quality: %w", err)
	}
	if f.PitchAndFamily, err = ReadPitchAndFamily(r); err != nil {
		return f, fmt.Errorf("Font.pitchAndFamily: %w", err)
	}
	raw, _, err := r.Bytes(FaceNameLimit)
	if err != nil {
		return f, fmt.Errorf("Font.faceName: %w", err)
	}
	name, err := DecodeANSI1252(raw)
	if err != nil {
		return f, fmt.Errorf("Font.faceName: %w", err)
	}
	f.FaceName = name
	return f, nil
}

// ReadPen decodes a Pen object payload ([MS-WMF] 2.2.1.4).
func ReadPen(r *Reader) (Pen, error) {
	var p Pen
	var err error
	rawStyle, err := r.U16()
	if err != nil {
		return p, fmt.Errorf("Pen.style: %w", err)
	}
	if p.Style, err = ParsePenStyle(rawStyle); err != nil {
		return p, fmt.Errorf("Pen.style: %w", err)
	}
	if p.Width, err = ReadPointS(r); err != nil {
		return p, fmt.Errorf("Pen.width: %w", err)
	}
	if p.Color, err = ReadColorRef(r); err != nil {
		return p, fmt.Errorf("Pen.color: %w", err)
	}
	return p, nil
}

// ReadPalette decodes a Palette object payload ([MS-WMF] 2.2.1.3). start
// MUST equal 0x0300 for a CreatePalette record; callers enforce that,
// since AnimatePalette/SetPalEntries reuse this same structure without
// the constraint.
func ReadPalette(r *Reader) (Palette, error) {
	var p Palette
	var err error
	if _, err = r.U8(); err != nil { // ObjectType, constant, discarded
		return p, fmt.Errorf("Palette.objectType: %w", err)
	}
	if _, err = r.U8(); err != nil { // reserved
		return p, fmt.Errorf("Palette.reserved: %w", err)
	}
	if p.Start, err = r.U16(); err != nil {
		return p, fmt.Errorf("Palette.start: %w", err)
	}
	n, err := r.U16()
	if err != nil {
		return p, fmt.Errorf("Palette.numberOfEntries: %w", err)
	}
	p.Entries = make([]PaletteEntry, n)
	for i := range p.Entries {
		e, err := ReadPaletteEntry(r)
		if err != nil {
			return p, fmt.Errorf("Palette.entries[%d]: %w", i, err)
		}
		p.Entries[i] = e
	}
	return p, nil
}

// ReadBrush builds a Brush object payload from a LogBrush ([MS-WMF]
// 2.2.1.1): style and color, plus the hatch for BS_HATCHED only. It never
// sets Bitmap; the player attaches DIBCreatePatternBrush's DIB itself.
func ReadBrush(lb LogBrush) Brush {
	b := Brush{Style: lb.Style, Color: lb.Color}
	if lb.Style == BrushHatched {
		b.Hatch = HatchStyle(lb.Hatch)
		b.HasHatch = true
	}
	return b
}
