// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"errors"
	"testing"
)

func TestReaderScalars(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x03, 0x04, 0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})

	if v, err := r.U8(); err != nil || v != 0x01 {
		t.Fatalf("U8() = %v, %v, want 0x01, nil", v, err)
	}
	if v, err := r.U16(); err != nil || v != 0x0302 {
		t.Fatalf("U16() = %#x, %v, want 0x0302, nil", v, err)
	}
	if v, err := r.I16(); err != nil || v != 0x0403 {
		t.Fatalf("I16() = %#x, %v, want 0x0403, nil", v, err)
	}
	if v, err := r.I16(); err != nil || v != -2 {
		t.Fatalf("I16() = %d, %v, want -2, nil", v, err)
	}
	if v, err := r.I32(); err != nil || v != -1 {
		t.Fatalf("I32() = %d, %v, want -1, nil", v, err)
	}
}

func TestReaderU32LittleEndian(t *testing.T) {
	r := NewReader([]byte{0x78, 0x56, 0x34, 0x12})
	v, err := r.U32()
	if err != nil {
		t.Fatalf("U32() error = %v", err)
	}
	if v != 0x12345678 {
		t.Fatalf("U32() = %#x, want 0x12345678", v)
	}
}

func TestReaderBytesAliasesBackingArray(t *testing.T) {
	r := NewReader([]byte{0xAA, 0xBB, 0xCC})
	b, n, err := r.Bytes(2)
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if n != 2 || len(b) != 2 {
		t.Fatalf("Bytes() = %v, %d, want len 2", b, n)
	}
	if b[0] != 0xAA || b[1] != 0xBB {
		t.Fatalf("Bytes() = %v, want [0xAA 0xBB]", b)
	}
}

func TestReaderSkip(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})
	if err := r.Skip(3); err != nil {
		t.Fatalf("Skip() error = %v", err)
	}
	if r.Pos() != 3 || r.Len() != 2 {
		t.Fatalf("Pos()=%d Len()=%d, want 3, 2", r.Pos(), r.Len())
	}
}

func TestReaderTruncatedReturnsUnexpectedEOF(t *testing.T) {
	r := NewReader([]byte{0x01})
	if _, err := r.U32(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("U32() error = %v, want ErrUnexpectedEOF", err)
	}

	r2 := NewReader(nil)
	if _, err := r2.U8(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("U8() on empty reader error = %v, want ErrUnexpectedEOF", err)
	}

	r3 := NewReader([]byte{1, 2})
	if err := r3.Skip(5); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("Skip() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestReaderLenShrinksAsItReads(t *testing.T) {
	r := NewReader(make([]byte, 10))
	if r.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", r.Len())
	}
	if _, err := r.U32(); err != nil {
		t.Fatalf("U32() error = %v", err)
	}
	if r.Len() != 6 {
		t.Fatalf("Len() after U32 = %d, want 6", r.Len())
	}
}
