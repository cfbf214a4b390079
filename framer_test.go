// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// put16/put32 append little-endian integers; used throughout to hand-build
// literal metafile byte streams the way a real WMF would be laid out on
// disk.
func put16(buf []byte, v uint16) []byte { return append(buf, byte(v), byte(v>>8)) }
func put32(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// minimalHeader returns a bare MetafileHeader with room for numberOfObjects
// object slots and no records yet.
func minimalHeader(numberOfObjects uint16) []byte {
	var buf []byte
	buf = put16(buf, uint16(MetafileTypeMemory))
	buf = put16(buf, metafileHeaderWordSize)
	buf = put16(buf, uint16(MetafileVersion3))
	buf = put32(buf, 0) // fileSize, unused by the framer
	buf = put16(buf, numberOfObjects)
	buf = put32(buf, 0) // maxRecordSize, unused by the framer
	buf = put16(buf, 0) // numberOfMembers (reserved)
	return buf
}

func eofRecord() []byte {
	var buf []byte
	buf = put32(buf, eofRecordWordSize)
	buf = put16(buf, uint16(RecordEOF))
	return buf
}

// placeablePreamble builds a valid 22-byte placeable prefix, checksum
// included.
func placeablePreamble() []byte {
	var buf []byte
	buf = put32(buf, PlaceablePreambleMagic)
	buf = put16(buf, 0) // hwmf
	for _, v := range []uint16{0, 0, 100, 200} {
		buf = put16(buf, v) // bounding box
	}
	buf = put16(buf, 96) // inch
	buf = put32(buf, 0)  // reserved
	var xor uint16
	for i := 0; i < len(buf); i += 2 {
		xor ^= uint16(buf[i]) | uint16(buf[i+1])<<8
	}
	return put16(buf, xor)
}

func TestFrameMinimalMetafile(t *testing.T) {
	data := append(minimalHeader(0), eofRecord()...)

	mf, err := Frame(data, nil)
	if err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	if mf.Placeable != nil {
		t.Fatalf("Frame() found a placeable preamble in a non-placeable stream")
	}
	if mf.Header.Version != MetafileVersion3 {
		t.Fatalf("Frame() header version = %v, want METAVERSION300", mf.Header.Version)
	}
	if len(mf.Records) != 1 {
		t.Fatalf("Frame() records = %d, want 1 (just EOF)", len(mf.Records))
	}
	if _, ok := mf.Records[0].Payload.(EofRecord); !ok {
		t.Fatalf("Frame() last record payload = %T, want EofRecord", mf.Records[0].Payload)
	}
}

func TestFramePlaceableMetafile(t *testing.T) {
	data := append(placeablePreamble(), minimalHeader(0)...)
	data = append(data, eofRecord()...)

	mf, err := Frame(data, nil)
	if err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	if mf.Placeable == nil {
		t.Fatalf("Frame() missed the placeable preamble")
	}
	if mf.Placeable.Inch != 96 {
		t.Fatalf("Frame() placeable inch = %d, want 96", mf.Placeable.Inch)
	}
	if mf.Placeable.BoundingBox != (Rect{Left: 0, Top: 0, Right: 100, Bottom: 200}) {
		t.Fatalf("Frame() placeable bounds = %+v", mf.Placeable.BoundingBox)
	}
}

func TestFrameTestdataMinimalPlaceable(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "minimal-placeable.wmf"))
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	mf, err := Frame(data, nil)
	if err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	if mf.Placeable == nil || mf.Placeable.Inch != 96 {
		t.Fatalf("Frame() placeable = %+v, want inch=96", mf.Placeable)
	}
	if mf.Header.Type != MetafileTypeDisk || mf.Header.NumberOfObjects != 0 {
		t.Fatalf("Frame() header = %+v, want disk metafile with 0 objects", mf.Header)
	}
	if len(mf.Records) != 1 {
		t.Fatalf("Frame() records = %d, want 1 (just EOF)", len(mf.Records))
	}
}

func TestFramePlaceableChecksumMismatch(t *testing.T) {
	pre := placeablePreamble()
	pre[len(pre)-1] ^= 0xFF // corrupt the checksum
	data := append(pre, minimalHeader(0)...)
	data = append(data, eofRecord()...)

	if _, err := Frame(data, nil); !errors.Is(err, ErrUnexpectedPattern) {
		t.Fatalf("Frame() error = %v, want ErrUnexpectedPattern for a checksum mismatch", err)
	}
}

func TestFrameEnforcesMaxRecordCount(t *testing.T) {
	data := minimalHeader(0)
	var rec []byte
	rec = put32(rec, 5)
	rec = put16(rec, uint16(RecordSetBkColor))
	rec = append(rec, 0, 0, 0, 0)
	data = append(data, rec...)
	data = append(data, rec...)
	data = append(data, eofRecord()...)

	if _, err := Frame(data, &Options{MaxRecordCount: 1}); !errors.Is(err, ErrUnexpectedPattern) {
		t.Fatalf("Frame() error = %v, want ErrUnexpectedPattern once the record cap is hit", err)
	}
	if _, err := Frame(data, &Options{MaxRecordCount: 8}); err != nil {
		t.Fatalf("Frame() error = %v, want success under the cap", err)
	}
}

func TestFrameRejectsUnrecognizedRecordType(t *testing.T) {
	data := minimalHeader(0)
	// 0x12AA: low byte 0xAA matches no registered RecordType.
	var rec []byte
	rec = put32(rec, 4) // sizeWords: 6-byte header + 2 bytes = 4 words
	rec = put16(rec, 0x12AA)
	rec = append(rec, 0xAA, 0xBB)
	data = append(data, rec...)
	data = append(data, eofRecord()...)

	if _, err := Frame(data, nil); !errors.Is(err, ErrUnexpectedEnumValue) {
		t.Fatalf("Frame() error = %v, want ErrUnexpectedEnumValue", err)
	}
}

func TestFrameRejectsBadEOFSize(t *testing.T) {
	data := minimalHeader(0)
	var rec []byte
	rec = put32(rec, 4) // wrong size: EOF MUST be 3 words
	rec = put16(rec, uint16(RecordEOF))
	rec = append(rec, 0, 0)
	data = append(data, rec...)

	if _, err := Frame(data, nil); !errors.Is(err, ErrUnexpectedPattern) {
		t.Fatalf("Frame() error = %v, want ErrUnexpectedPattern", err)
	}
}

func TestFrameRejectsEOFWithNonZeroHighByte(t *testing.T) {
	// 0x0200 has EOF's low byte but a non-zero high byte; every other
	// record tolerates that, EOF alone must not.
	data := minimalHeader(0)
	var rec []byte
	rec = put32(rec, eofRecordWordSize)
	rec = put16(rec, 0x0200)
	data = append(data, rec...)

	if _, err := Frame(data, nil); !errors.Is(err, ErrUnexpectedPattern) {
		t.Fatalf("Frame() error = %v, want ErrUnexpectedPattern for EOF function 0x0200", err)
	}
}

func TestFrameTruncatedStreamErrors(t *testing.T) {
	data := minimalHeader(0)
	data = append(data, 0x01, 0x02, 0x03) // a lone partial record header
	if _, err := Frame(data, nil); !errors.Is(err, ErrTruncated) {
		t.Fatalf("Frame() error = %v, want ErrTruncated", err)
	}
}

func TestFrameConsumesDeclaredResidue(t *testing.T) {
	data := minimalHeader(0)
	// META_SETBKCOLOR padded with two trailing bytes inside its declared
	// size; the framer must skip them to land on the EOF record cleanly.
	var rec []byte
	rec = put32(rec, 6)
	rec = put16(rec, uint16(RecordSetBkColor))
	rec = append(rec, 0x11, 0x22, 0x33, 0x00, 0xDE, 0xAD)
	data = append(data, rec...)
	data = append(data, eofRecord()...)

	mf, err := Frame(data, nil)
	if err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	if len(mf.Records) != 2 {
		t.Fatalf("Frame() records = %d, want 2", len(mf.Records))
	}
}

func TestFrameDecodesARealRecordAndRespectsDeclaredSize(t *testing.T) {
	data := minimalHeader(0)
	// META_SETBKCOLOR: ColorRef (4 bytes).
	var rec []byte
	rec = put32(rec, 5) // 6-byte header + 4-byte body = 10 bytes = 5 words
	rec = put16(rec, uint16(RecordSetBkColor))
	rec = append(rec, 0x11, 0x22, 0x33, 0x00)
	data = append(data, rec...)
	data = append(data, eofRecord()...)

	mf, err := Frame(data, nil)
	if err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	if len(mf.Records) != 2 {
		t.Fatalf("Frame() records = %d, want 2", len(mf.Records))
	}
	got, ok := mf.Records[0].Payload.(SetBkColorRecord)
	if !ok {
		t.Fatalf("Frame() first record payload = %T, want SetBkColorRecord", mf.Records[0].Payload)
	}
	if got.Color != (ColorRef{R: 0x11, G: 0x22, B: 0x33}) {
		t.Fatalf("SetBkColorRecord.Color = %+v, want {0x11 0x22 0x33}", got.Color)
	}
}
