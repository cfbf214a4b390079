// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import "fmt"

// Metafile is a fully framed, un-interpreted WMF stream: an optional
// placeable preamble, the mandatory header, and the ordered records
// between it and the terminal EOF record. Warnings lists every
// repair-and-warn anomaly observed while framing, in stream order.
type Metafile struct {
	Placeable *PlaceablePreamble
	Header    MetafileHeader
	Records   []Record
	Warnings  []string
}

// Frame reads a complete Metafile out of data. It never reads past the
// EOF record: any bytes trailing it are ignored, matching how Windows
// itself stops at the first EOF.
func Frame(data []byte, opts *Options) (*Metafile, error) {
	opts = normalizeOptions(opts)
	maxRecords := opts.MaxRecordCount
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecordCount
	}

	mf := &Metafile{}
	r := NewReader(data)
	r.strict = opts.Strict
	r.warn = func(msg string) {
		opts.Logger.Warnf("%s", msg)
		mf.Warnings = append(mf.Warnings, msg)
	}

	if r.Len() >= 4 {
		peekPos := r.Pos()
		magic, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("peeking placeable magic: %w", err)
		}
		if magic == PlaceablePreambleMagic {
			preamble, err := ReadPlaceablePreamble(r, magic)
			if err != nil {
				return nil, fmt.Errorf("placeable preamble: %w", err)
			}
			mf.Placeable = &preamble
		} else {
			r.pos = peekPos
		}
	}

	header, err := ReadMetafileHeader(r)
	if err != nil {
		return nil, fmt.Errorf("metafile header: %w", err)
	}
	mf.Header = header

	sawEOF := false
	for !sawEOF {
		if len(mf.Records) >= maxRecords {
			return nil, fmt.Errorf("metafile exceeds %d records: %w", maxRecords, ErrUnexpectedPattern)
		}
		if r.Len() < recordHeaderSizeBytes {
			return nil, fmt.Errorf("stream ended before an EOF record: %w", ErrTruncated)
		}
		rh, err := ReadRecordHeader(r)
		if err != nil {
			return nil, fmt.Errorf("record header at offset %d: %w", r.Pos(), err)
		}

		declaredBytes := rh.SizeBytes() - recordHeaderSizeBytes
		if declaredBytes < 0 {
			return nil, fmt.Errorf("record %s declares size smaller than its own header: %w", rh.Function.Type, ErrTruncated)
		}
		if r.Len() < declaredBytes {
			return nil, fmt.Errorf("record %s declares %d bytes, only %d remain: %w", rh.Function.Type, declaredBytes, r.Len(), ErrTruncated)
		}

		bodyStart := r.Pos()
		var payload RecordPayload
		if rh.Function.Type == RecordEOF {
			// EOF is the one record whose full RecordFunction word is
			// validated, not just its low byte.
			if rh.Function.Raw != uint16(RecordEOF) {
				return nil, fmt.Errorf("EOF record function = %#04x, want 0x0000: %w", rh.Function.Raw, ErrUnexpectedPattern)
			}
			if rh.SizeWords != eofRecordWordSize {
				return nil, fmt.Errorf("EOF record size = %d words, want %d: %w", rh.SizeWords, eofRecordWordSize, ErrUnexpectedPattern)
			}
			payload = EofRecord{}
			sawEOF = true
		} else {
			dec, ok := recordDecoders[rh.Function.Type]
			if !ok {
				return nil, fmt.Errorf("record %s has no registered decoder: %w", rh.Function.Type, ErrUnexpectedEnumValue)
			}
			payload, err = dec(r, declaredBytes)
			if err != nil {
				return nil, fmt.Errorf("decoding %s: %w", rh.Function.Type, err)
			}
		}

		consumed := r.Pos() - bodyStart
		if residue := declaredBytes - consumed; residue > 0 {
			if err := r.Skip(residue); err != nil {
				return nil, fmt.Errorf("skipping %s residue: %w", rh.Function.Type, err)
			}
		} else if residue < 0 {
			return nil, fmt.Errorf("decoder for %s consumed %d bytes beyond its declared size: %w", rh.Function.Type, -residue, ErrUnexpectedPattern)
		}

		mf.Records = append(mf.Records, Record{Header: rh, Payload: payload})
	}

	return mf, nil
}
