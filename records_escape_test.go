// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"errors"
	"testing"
)

func TestEscapeEncapsulatedPostScriptDecodesDataAfterPrefix(t *testing.T) {
	var body []byte
	body = put16(body, uint16(EscapeEncapsulatedPostScript))
	const size = encapsulatedPostScriptPrefixSize + 4 // 4 bytes of PostScript data
	body = put16(body, size)                          // byteCount
	body = put32(body, size)
	body = put32(body, 1) // version
	body = put32(body, 10)
	body = put32(body, 20) // points {x:10, y:20}
	body = append(body, 'D', 'A', 'T', 'A')

	dec, ok := escapeDecoders[EscapeEncapsulatedPostScript]
	if !ok {
		t.Fatalf("no decoder registered for ENCAPSULATED_POSTSCRIPT")
	}
	r := NewReader(body[4:]) // skip function+byteCount; registerEscapeDecoder's caller already consumes those
	got, err := dec(r, size)
	if err != nil {
		t.Fatalf("decode error = %v", err)
	}
	rec, ok := got.(EscapeEncapsulatedPostScriptRecord)
	if !ok {
		t.Fatalf("payload type = %T, want EscapeEncapsulatedPostScriptRecord", got)
	}
	if rec.Size != size || rec.Version != 1 {
		t.Fatalf("rec = %+v, want Size=%d Version=1", rec, size)
	}
	if rec.Points != (PointL{X: 10, Y: 20}) {
		t.Fatalf("rec.Points = %+v, want {10 20}", rec.Points)
	}
	if string(rec.Data) != "DATA" {
		t.Fatalf("rec.Data = %q, want %q", rec.Data, "DATA")
	}
}

func TestEscapeEncapsulatedPostScriptRejectsByteCountSmallerThanSize(t *testing.T) {
	var body []byte
	body = put32(body, 999) // size far larger than the declared byteCount
	body = put32(body, 1)
	body = put32(body, 0)
	body = put32(body, 0)

	dec := escapeDecoders[EscapeEncapsulatedPostScript]
	_, err := dec(NewReader(body), encapsulatedPostScriptPrefixSize)
	if !errors.Is(err, ErrUnexpectedPattern) {
		t.Fatalf("decode error = %v, want ErrUnexpectedPattern", err)
	}
}

func TestEscapeStartDocRejectsOversizedByteCount(t *testing.T) {
	dec := escapeDecoders[EscapeStartDoc]
	_, err := dec(NewReader(nil), 260)
	if !errors.Is(err, ErrUnexpectedPattern) {
		t.Fatalf("decode error = %v, want ErrUnexpectedPattern for byteCount 260", err)
	}
}

func TestEscapeStartDocDecodesDocName(t *testing.T) {
	dec := escapeDecoders[EscapeStartDoc]
	got, err := dec(NewReader([]byte("report\x00...")), 10)
	if err != nil {
		t.Fatalf("decode error = %v", err)
	}
	rec, ok := got.(EscapeStartDocRecord)
	if !ok {
		t.Fatalf("payload type = %T, want EscapeStartDocRecord", got)
	}
	if rec.DocName != "report" {
		t.Fatalf("rec.DocName = %q, want %q", rec.DocName, "report")
	}
}

func TestFrameDecodesEncapsulatedPostScriptEscape(t *testing.T) {
	data := minimalHeader(0)

	const size = encapsulatedPostScriptPrefixSize + 2
	var escBody []byte
	escBody = put16(escBody, uint16(EscapeEncapsulatedPostScript))
	escBody = put16(escBody, size) // byteCount
	escBody = put32(escBody, size)
	escBody = put32(escBody, 0)
	escBody = put32(escBody, 0)
	escBody = put32(escBody, 0)
	escBody = append(escBody, 'P', 'S')

	var rec []byte
	sizeWords := (recordHeaderSizeBytes + len(escBody)) / 2
	rec = put32(rec, uint32(sizeWords))
	rec = put16(rec, uint16(RecordEscape))
	rec = append(rec, escBody...)

	data = append(data, rec...)
	data = append(data, eofRecord()...)

	mf, err := Frame(data, nil)
	if err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	if len(mf.Records) != 2 {
		t.Fatalf("Frame() records = %d, want 2", len(mf.Records))
	}
	esc, ok := mf.Records[0].Payload.(EscapeRecord)
	if !ok {
		t.Fatalf("Frame() first record payload = %T, want EscapeRecord", mf.Records[0].Payload)
	}
	eps, ok := esc.Payload.(EscapeEncapsulatedPostScriptRecord)
	if !ok {
		t.Fatalf("EscapeRecord.Payload = %T, want EscapeEncapsulatedPostScriptRecord", esc.Payload)
	}
	if string(eps.Data) != "PS" {
		t.Fatalf("eps.Data = %q, want %q", eps.Data, "PS")
	}
}
