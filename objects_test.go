// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import "testing"

func TestGraphicsObjectCloneIsIndependent(t *testing.T) {
	orig := newPaletteObject(Palette{Start: 0, Entries: []PaletteEntry{{Red: 1}, {Red: 2}}})
	cloned := orig.clone()

	cloned.Palette.Entries[0].Red = 99
	if orig.Palette.Entries[0].Red != 1 {
		t.Fatalf("clone() shares backing array with the original: orig.Entries[0].Red = %d, want 1", orig.Palette.Entries[0].Red)
	}

	cloned.Palette.Start = 7
	if orig.Palette.Start != 0 {
		t.Fatalf("clone() shares the Palette struct: orig.Start = %d, want 0", orig.Palette.Start)
	}
}

func TestGraphicsObjectCloneBrushBitmap(t *testing.T) {
	dib := DIB{}
	orig := newBrushObject(Brush{Style: BrushHatched, Bitmap: &dib})
	cloned := orig.clone()

	if cloned.Brush.Bitmap == orig.Brush.Bitmap {
		t.Fatalf("clone() shares the Bitmap pointer with the original")
	}
}

func TestReadBrushCarriesHatchOnlyForHatchedStyle(t *testing.T) {
	solid := ReadBrush(LogBrush{Style: BrushSolid, Color: ColorRef{R: 1}})
	if solid.HasHatch {
		t.Fatalf("ReadBrush(solid) HasHatch = true, want false")
	}

	hatched := ReadBrush(LogBrush{Style: BrushHatched, Hatch: 3})
	if !hatched.HasHatch || hatched.Hatch != 3 {
		t.Fatalf("ReadBrush(hatched) = %+v, want HasHatch=true Hatch=3", hatched)
	}
}

func TestReadPaletteRequiresExactEntryCount(t *testing.T) {
	buf := []byte{
		0x00, 0x00, // objectType, reserved
		0x00, 0x00, // start
		0x02, 0x00, // numberOfEntries = 2
		0x00, 0x10, 0x20, 0x30,
		0x00, 0x40, 0x50, 0x60,
	}
	p, err := ReadPalette(NewReader(buf))
	if err != nil {
		t.Fatalf("ReadPalette() error = %v", err)
	}
	if len(p.Entries) != 2 {
		t.Fatalf("ReadPalette() entries = %d, want 2", len(p.Entries))
	}
	if p.Entries[1].Red != 0x60 {
		t.Fatalf("ReadPalette() entries[1].Red = %#x, want 0x60", p.Entries[1].Red)
	}
}

func TestReadFontDecodesFaceName(t *testing.T) {
	buf := make([]byte, 0, 18+FaceNameLimit)
	put16 := func(v int16) { buf = append(buf, byte(v), byte(v>>8)) }
	put16(16)              // height
	put16(0)                // width
	put16(0)                // escapement
	put16(0)                // orientation
	put16(400)              // weight
	buf = append(buf, 0, 0, 0) // italic, underline, strikeOut
	buf = append(buf, 0)       // charset = ANSI_CHARSET (0)
	buf = append(buf, 0)       // outPrecision = OUT_DEFAULT_PRECIS (0)
	buf = append(buf, 0)       // clipPrecision
	buf = append(buf, 0)       // quality = DEFAULT_QUALITY (0)
	buf = append(buf, 0)       // pitchAndFamily: default pitch, don't-care family

	name := make([]byte, FaceNameLimit)
	copy(name, "Arial")
	buf = append(buf, name...)

	f, err := ReadFont(NewReader(buf))
	if err != nil {
		t.Fatalf("ReadFont() error = %v", err)
	}
	if f.FaceName != "Arial" {
		t.Fatalf("ReadFont().FaceName = %q, want %q", f.FaceName, "Arial")
	}
	if f.Height != 16 || f.Weight != 400 {
		t.Fatalf("ReadFont() height/weight = %d/%d, want 16/400", f.Height, f.Weight)
	}
}
