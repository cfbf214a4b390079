// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"fmt"
)

// Reader is a little-endian cursor over an in-memory byte slice. Unlike a
// bufio.Reader it never blocks and never errors on its own account; every
// read either returns the requested bytes or a wrapped ErrUnexpectedEOF,
// mirroring the boundary checks File.ReadUint32 and friends perform in the
// teacher's helper.go, generalized to a moving cursor instead of absolute
// offsets (the record framer needs "bytes remaining in this record", which
// an offset-addressed reader does not track for free).
type Reader struct {
	data []byte
	pos  int

	// warn receives repair-and-warn anomaly messages (non-zero
	// ColorRef.reserved and the like); strict turns those anomalies into
	// hard errors instead. Both are installed by the framer from the
	// decoder's Options and stay nil/false for bare NewReader callers.
	warn   func(string)
	strict bool
}

// NewReader wraps data for sequential little-endian reads starting at
// offset 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current absolute byte offset.
func (r *Reader) Pos() int { return r.pos }

// Len returns the number of unread bytes remaining.
func (r *Reader) Len() int { return len(r.data) - r.pos }

// anomaly reports a repair-and-warn field violation: a hard
// ErrUnexpectedPattern under strict decoding, a warning otherwise.
func (r *Reader) anomaly(msg string) error {
	if r.strict {
		return fmt.Errorf("%s: %w", msg, ErrUnexpectedPattern)
	}
	if r.warn != nil {
		r.warn(msg)
	}
	return nil
}

func (r *Reader) require(n int) error {
	if n < 0 || r.Len() < n {
		return fmt.Errorf("reading %d bytes at offset %d: %w", n, r.pos, ErrUnexpectedEOF)
	}
	return nil
}

// U8 reads an unsigned 8-bit integer.
func (r *Reader) U8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// U16 reads a little-endian unsigned 16-bit integer.
func (r *Reader) U16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := uint16(r.data[r.pos]) | uint16(r.data[r.pos+1])<<8
	r.pos += 2
	return v, nil
}

// I16 reads a little-endian signed 16-bit integer.
func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

// U32 reads a little-endian unsigned 32-bit integer.
func (r *Reader) U32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := uint32(r.data[r.pos]) | uint32(r.data[r.pos+1])<<8 |
		uint32(r.data[r.pos+2])<<16 | uint32(r.data[r.pos+3])<<24
	r.pos += 4
	return v, nil
}

// I32 reads a little-endian signed 32-bit integer.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// Bytes reads exactly n raw bytes and returns (value, bytes_consumed). The
// returned slice aliases the reader's backing array; callers that retain
// it past the next read must copy.
func (r *Reader) Bytes(n int) ([]byte, int, error) {
	if err := r.require(n); err != nil {
		return nil, 0, err
	}
	v := r.data[r.pos : r.pos+n]
	r.pos += n
	return v, n, nil
}

// Skip discards n bytes without interpreting them; used by the residue
// policy to consume the unread tail of a record.
func (r *Reader) Skip(n int) error {
	if err := r.require(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}
