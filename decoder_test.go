// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"errors"
	"testing"
)

// Open's mmap-backed path needs a real file descriptor and isn't exercised
// here; NewBytes covers the same Decode/Play logic against an in-memory
// slice, which is how cmd/wmfwasm consumes this package too.

func TestDecoderNewBytesDecode(t *testing.T) {
	data := append(minimalHeader(0), eofRecord()...)

	d := NewBytes(data, nil)
	mf, err := d.Decode()
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(mf.Records) != 1 {
		t.Fatalf("Decode() records = %d, want 1", len(mf.Records))
	}
}

func TestDecoderPlayDrivesPlayer(t *testing.T) {
	data := minimalHeader(0)
	var rec []byte
	rec = put32(rec, 5) // META_SETBKCOLOR: 6-byte header + 4-byte body
	rec = put16(rec, uint16(RecordSetBkColor))
	rec = append(rec, 0x01, 0x02, 0x03, 0x00)
	data = append(data, rec...)
	data = append(data, eofRecord()...)

	sink := &recordingSink{}
	if err := NewBytes(data, nil).Play(sink); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if !sink.began || !sink.ended {
		t.Fatalf("Play() began=%v ended=%v, want both true", sink.began, sink.ended)
	}
}

func TestDecoderPlayPropagatesFramingErrors(t *testing.T) {
	data := minimalHeader(0)
	data = append(data, 0x01, 0x02, 0x03) // truncated record header

	sink := &recordingSink{}
	if err := NewBytes(data, nil).Play(sink); err == nil {
		t.Fatalf("Play() error = nil, want a framing error for a truncated stream")
	}
}

func TestDecoderPenSelectLineScenario(t *testing.T) {
	data := minimalHeader(1)

	// CreatePenIndirect(solid, width=(1,0), color=#000000)
	var rec []byte
	rec = put32(rec, 8) // 6-byte header + 10-byte Pen body
	rec = put16(rec, uint16(RecordCreatePenIndirect))
	rec = put16(rec, 0) // PS_SOLID
	rec = put16(rec, 1) // width.x
	rec = put16(rec, 0) // width.y
	rec = append(rec, 0, 0, 0, 0)
	data = append(data, rec...)

	// SelectObject(0)
	rec = nil
	rec = put32(rec, 4)
	rec = put16(rec, uint16(RecordSelectObject))
	rec = put16(rec, 0)
	data = append(data, rec...)

	// LineTo(10,20), stored y-then-x.
	rec = nil
	rec = put32(rec, 5)
	rec = put16(rec, uint16(RecordLineTo))
	rec = put16(rec, 20)
	rec = put16(rec, 10)
	data = append(data, rec...)
	data = append(data, eofRecord()...)

	sink := &recordingSink{}
	if err := NewBytes(data, nil).Play(sink); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if len(sink.draws) != 1 {
		t.Fatalf("Draw() called %d times, want 1", len(sink.draws))
	}
	lt, ok := sink.draws[0].(LineToRecord)
	if !ok {
		t.Fatalf("Draw() payload = %T, want LineToRecord", sink.draws[0])
	}
	if lt.Point != (PointL{X: 10, Y: 20}) {
		t.Fatalf("LineTo point = %+v, want (10,20)", lt.Point)
	}
	pdc := sink.pdcs[0]
	if pdc.CurrentPosition != (PointL{}) {
		t.Fatalf("line starts at %+v, want the (0,0) default", pdc.CurrentPosition)
	}
	if pdc.SelectedPen == nil || pdc.SelectedPen.Width != (PointS{X: 1}) || pdc.SelectedPen.Style.Kind != PenSolid {
		t.Fatalf("Draw() snapshot pen = %+v, want the solid width-1 pen from slot 0", pdc.SelectedPen)
	}
}

func TestDecoderCollectsRepairWarnings(t *testing.T) {
	data := minimalHeader(0)
	var rec []byte
	rec = put32(rec, 5)
	rec = put16(rec, uint16(RecordSetBkColor))
	rec = append(rec, 1, 2, 3, 0xFF) // non-zero ColorRef reserved byte
	data = append(data, rec...)
	data = append(data, eofRecord()...)

	d := NewBytes(data, nil)
	if _, err := d.Decode(); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(d.Warnings) != 1 {
		t.Fatalf("Decode() warnings = %v, want exactly one ColorRef repair", d.Warnings)
	}
}

func TestDecoderStrictRejectsRepairedFields(t *testing.T) {
	data := minimalHeader(0)
	var rec []byte
	rec = put32(rec, 5)
	rec = put16(rec, uint16(RecordSetBkColor))
	rec = append(rec, 1, 2, 3, 0xFF)
	data = append(data, rec...)
	data = append(data, eofRecord()...)

	d := NewBytes(data, &Options{Strict: true})
	if _, err := d.Decode(); !errors.Is(err, ErrUnexpectedPattern) {
		t.Fatalf("Decode() error = %v, want ErrUnexpectedPattern under strict decoding", err)
	}
}

func TestDecoderCloseWithoutOpenIsNoop(t *testing.T) {
	d := NewBytes(append(minimalHeader(0), eofRecord()...), nil)
	if err := d.Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil for a Decoder with no mmap'd file", err)
	}
}

func TestDecoderNewBytesDefaultsOptions(t *testing.T) {
	d := NewBytes(append(minimalHeader(0), eofRecord()...), nil)
	if d.opts == nil || d.opts.Logger == nil {
		t.Fatalf("NewBytes() left opts/Logger nil, want normalizeOptions to install a default")
	}
}
