// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import "errors"

// Sentinel errors. Every decoding/playback failure wraps exactly one of
// these with fmt.Errorf("...: %w", ...), so callers can classify failures
// with errors.Is regardless of the message attached at the call site.
var (
	// ErrUnexpectedEOF is returned when the byte stream ends in the middle
	// of a field.
	ErrUnexpectedEOF = errors.New("wmf: unexpected end of stream")

	// ErrTruncated is returned when a record's declared size is smaller
	// than the fixed fields the record type requires.
	ErrTruncated = errors.New("wmf: record truncated below its declared size")

	// ErrUnexpectedPattern covers reserved-field violations, magic
	// mismatches, length-constraint violations, checksum mismatches, and
	// malformed record-function values.
	ErrUnexpectedPattern = errors.New("wmf: unexpected bit pattern")

	// ErrUnexpectedEnumValue is returned when a raw integer does not match
	// any enumerant of its declared enumeration.
	ErrUnexpectedEnumValue = errors.New("wmf: value is not a member of its enumeration")

	// ErrTableFull is returned when an object-create record finds no Null
	// slot left in the Object Table.
	ErrTableFull = errors.New("wmf: object table has no free slot")

	// ErrBadObjectRef is returned when a record selects or deletes an
	// out-of-range or Null object-table slot.
	ErrBadObjectRef = errors.New("wmf: invalid object table reference")

	// ErrUnsupportedFeature marks an explicitly reserved record. Playback
	// returns it only under Options.Strict; otherwise it warns and continues.
	ErrUnsupportedFeature = errors.New("wmf: unsupported/reserved feature")
)
