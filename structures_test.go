// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"errors"
	"testing"
)

func TestReadRectFieldOrder(t *testing.T) {
	// Left=1 Top=2 Right=3 Bottom=4, wire order left/top/right/bottom.
	r := NewReader([]byte{1, 0, 2, 0, 3, 0, 4, 0})
	got, err := ReadRect(r)
	if err != nil {
		t.Fatalf("ReadRect() error = %v", err)
	}
	want := Rect{Left: 1, Top: 2, Right: 3, Bottom: 4}
	if got != want {
		t.Fatalf("ReadRect() = %+v, want %+v", got, want)
	}
}

func TestRectOverlap(t *testing.T) {
	a := Rect{Left: 0, Top: 10, Right: 10, Bottom: 0}
	b := Rect{Left: 5, Top: 8, Right: 15, Bottom: 2}
	got, ok := a.Overlap(b)
	if !ok {
		t.Fatalf("Overlap() ok = false, want true")
	}
	want := Rect{Left: 5, Top: 8, Right: 10, Bottom: 2}
	if got != want {
		t.Fatalf("Overlap() = %+v, want %+v", got, want)
	}

	c := Rect{Left: 20, Top: 10, Right: 30, Bottom: 0}
	if _, ok := a.Overlap(c); ok {
		t.Fatalf("Overlap() of disjoint rects ok = true, want false")
	}
}

func TestReadColorRefRepairsReservedByte(t *testing.T) {
	r := NewReader([]byte{0x10, 0x20, 0x30, 0xFF})
	var warned string
	r.warn = func(msg string) { warned = msg }
	got, err := ReadColorRef(r)
	if err != nil {
		t.Fatalf("ReadColorRef() error = %v", err)
	}
	want := ColorRef{R: 0x10, G: 0x20, B: 0x30}
	if got != want {
		t.Fatalf("ReadColorRef() = %+v, want %+v", got, want)
	}
	if warned == "" {
		t.Fatalf("ReadColorRef() did not warn about non-zero reserved byte")
	}
}

func TestReadColorRefStrictRejectsReservedByte(t *testing.T) {
	r := NewReader([]byte{0x10, 0x20, 0x30, 0xFF})
	r.strict = true
	if _, err := ReadColorRef(r); !errors.Is(err, ErrUnexpectedPattern) {
		t.Fatalf("ReadColorRef() error = %v, want ErrUnexpectedPattern under strict decoding", err)
	}
}

func TestReadRGBQuadRejectsNonZeroReserved(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 1})
	if _, err := ReadRGBQuad(r); !errors.Is(err, ErrUnexpectedPattern) {
		t.Fatalf("ReadRGBQuad() error = %v, want ErrUnexpectedPattern", err)
	}
}

func TestReadPaletteEntry(t *testing.T) {
	r := NewReader([]byte{0x00, 0x10, 0x20, 0x30})
	got, err := ReadPaletteEntry(r)
	if err != nil {
		t.Fatalf("ReadPaletteEntry() error = %v", err)
	}
	want := PaletteEntry{Blue: 0x10, Green: 0x20, Red: 0x30}
	if got != want {
		t.Fatalf("ReadPaletteEntry() = %+v, want %+v", got, want)
	}
}

func TestReadPitchAndFamilySplitsNibbles(t *testing.T) {
	// pitch bits = FixedPitch (bit pattern 0x01), family in top nibble.
	raw := uint8(PitchFixed) | uint8(FamilySwiss)<<4
	r := NewReader([]byte{raw})
	got, err := ReadPitchAndFamily(r)
	if err != nil {
		t.Fatalf("ReadPitchAndFamily() error = %v", err)
	}
	if got.Pitch != PitchFixed || got.Family != FamilySwiss {
		t.Fatalf("ReadPitchAndFamily() = %+v, want pitch=%v family=%v", got, PitchFixed, FamilySwiss)
	}
}

func TestReadBitmapInfoHeaderCoreValidatesFields(t *testing.T) {
	buf := []byte{}
	put32 := func(v uint32) { buf = append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24)) }
	put16 := func(v uint16) { buf = append(buf, byte(v), byte(v>>8)) }

	put32(bitmapInfoHeaderCoreSize) // size
	put32(10)                      // width
	put32(10)                      // height
	put16(1)                       // planes
	put16(24)                      // bitCount
	put32(0)                       // compression
	put32(0)                       // imageSize
	put32(0)                       // xPels
	put32(0)                       // yPels
	put32(0)                       // colorUsed
	put32(0)                       // colorImportant

	h, err := ReadBitmapInfoHeader(NewReader(buf))
	if err != nil {
		t.Fatalf("ReadBitmapInfoHeader() error = %v", err)
	}
	if h.Version != BitmapInfoHeaderCore {
		t.Fatalf("ReadBitmapInfoHeader() version = %v, want core", h.Version)
	}
	if h.BitCount != 24 {
		t.Fatalf("ReadBitmapInfoHeader() bitCount = %d, want 24", h.BitCount)
	}
}

func TestReadBitmapInfoHeaderCoreRejectsBadBitCount(t *testing.T) {
	buf := []byte{}
	put32 := func(v uint32) { buf = append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24)) }
	put16 := func(v uint16) { buf = append(buf, byte(v), byte(v>>8)) }

	put32(bitmapInfoHeaderCoreSize)
	put32(10)
	put32(10)
	put16(1)
	put16(7) // invalid bit count
	put32(0)
	put32(0)
	put32(0)
	put32(0)
	put32(0)
	put32(0)

	_, err := ReadBitmapInfoHeader(NewReader(buf))
	if !errors.Is(err, ErrUnexpectedPattern) {
		t.Fatalf("ReadBitmapInfoHeader() error = %v, want ErrUnexpectedPattern", err)
	}
}
