// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import "fmt"

// TextAlign carries the raw TextAlignmentMode bits (horizontal + vertical +
// update-cp), preserved verbatim rather than decoded to an enumerant since
// the bits combine.
type TextAlign uint16

// Horizontal/vertical/update-cp bit masks within TextAlign.
const (
	TextAlignLeft       TextAlign = 0x0000
	TextAlignRight      TextAlign = 0x0002
	TextAlignCenter     TextAlign = 0x0006
	TextAlignTop        TextAlign = 0x0000
	TextAlignBottom     TextAlign = 0x0008
	TextAlignBaseline   TextAlign = 0x0018
	TextAlignUpdateCP   TextAlign = 0x0001
	TextAlignRTLReading TextAlign = 0x0100
)

// PDC is the Playback Device Context: the interpreted graphics state every
// record reads or mutates.
type PDC struct {
	MapMode MapMode

	WindowOrigin, WindowExtent     PointL
	ViewportOrigin, ViewportExtent PointL

	BkColor ColorRef
	BkMode  MixMode

	TextColor                   ColorRef
	TextAlign                   TextAlign
	TextCharExtra               int32
	TextJustification           int32 // extra space to distribute, and the break count it's divided by
	TextJustificationBreakCount int32

	PolyFillMode   PolyFillMode
	StretchBltMode StretchMode
	ROP2           BinaryRasterOperation
	Layout         Layout

	CurrentPosition PointL

	SelectedBrush   *Brush
	SelectedFont    *Font
	SelectedPalette *Palette
	SelectedPen     *Pen
	ClipRegion      *Region

	savedStack []pdcSnapshot
}

// pdcSnapshot is one SaveDC frame: a value-copy of every field that isn't
// itself a pointer into the live Object Table, so a later DeleteObject on
// the live table can never mutate a saved frame.
type pdcSnapshot struct {
	pdc PDC
}

// NewPDC returns a PDC at the GDI playback defaults: black pen, white
// brush, MM_TEXT map mode, TRANSPARENT bk mode, ROP2 = R2_COPYPEN,
// align = TA_LEFT|TA_TOP, current position (0,0).
func NewPDC() *PDC {
	blackPen := Pen{Style: PenStyle{Kind: PenSolid}, Color: ColorRef{}}
	whiteBrush := Brush{Style: BrushSolid, Color: ColorRef{R: 0xFF, G: 0xFF, B: 0xFF}}
	return &PDC{
		MapMode:       MapModeText,
		BkMode:        MixModeTransparent,
		ROP2:          R2CopyPen,
		TextAlign:     TextAlignLeft | TextAlignTop,
		SelectedPen:   &blackPen,
		SelectedBrush: &whiteBrush,
	}
}

// Save pushes a deep copy of the current state onto the saved-state stack,
// implementing SaveDC. Selected objects go through GraphicsObject.clone so
// the deep-copy rules live in one place alongside the object types.
func (p *PDC) Save() {
	snap := pdcSnapshot{pdc: *p}
	snap.pdc.savedStack = nil
	snap.pdc.SelectedBrush = GraphicsObject{Kind: ObjectBrush, Brush: p.SelectedBrush}.clone().Brush
	snap.pdc.SelectedFont = GraphicsObject{Kind: ObjectFont, Font: p.SelectedFont}.clone().Font
	snap.pdc.SelectedPalette = GraphicsObject{Kind: ObjectPalette, Palette: p.SelectedPalette}.clone().Palette
	snap.pdc.SelectedPen = GraphicsObject{Kind: ObjectPen, Pen: p.SelectedPen}.clone().Pen
	snap.pdc.ClipRegion = GraphicsObject{Kind: ObjectRegion, Region: p.ClipRegion}.clone().Region
	p.savedStack = append(p.savedStack, snap)
}

// Restore implements RestoreDC(n): n > 0 restores the absolute n-th saved
// state (1-indexed) and discards every save above it; n < 0 pops the
// |n|-th most recent save; n == 0 is a no-op per [MS-WMF].
func (p *PDC) Restore(n int32) error {
	if n == 0 {
		return nil
	}
	var idx int
	if n > 0 {
		idx = int(n) - 1
	} else {
		idx = len(p.savedStack) + int(n)
	}
	if idx < 0 || idx >= len(p.savedStack) {
		return fmt.Errorf("RestoreDC(%d): no such saved state (depth %d): %w", n, len(p.savedStack), ErrUnexpectedPattern)
	}

	target := p.savedStack[idx]
	stack := p.savedStack[:idx]
	*p = target.pdc
	p.savedStack = stack
	return nil
}

// SaveDepth reports how many frames are on the saved-state stack.
func (p *PDC) SaveDepth() int { return len(p.savedStack) }
