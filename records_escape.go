// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import "fmt"

// EscapeFunction is the driver-specific sub-opcode carried by every
// META_ESCAPE record ([MS-WMF] 2.3.6.1). Unlike RecordType, an unknown
// EscapeFunction is not an error: printer escapes are open-ended, so an
// unrecognized one decodes to EscapeRawRecord instead of failing.
type EscapeFunction uint16

// Known EscapeFunction values ([MS-WMF] 2.1.1.10 and the Windows GDI
// escape catalogue it's drawn from).
const (
	EscapeQueryEscSupport          EscapeFunction = 0x0008
	EscapeStartDoc                 EscapeFunction = 0x000A
	EscapeSetLineCap               EscapeFunction = 0x0015
	EscapeSetLineJoin              EscapeFunction = 0x0016
	EscapeSetMiterLimit            EscapeFunction = 0x0017
	EscapeDrawPatternRect          EscapeFunction = 0x0019
	EscapeGetSetPaperBins          EscapeFunction = 0x001D
	EscapeEPSPrinting              EscapeFunction = 0x0021
	EscapeGetColorTable            EscapeFunction = 0x0005
	EscapeSetColorTable            EscapeFunction = 0x0004
	EscapeGetDeviceUnits           EscapeFunction = 0x002A
	EscapeClipToPath               EscapeFunction = 0x1001
	EscapeCheckJPEGFormat          EscapeFunction = 0x1013
	EscapeCheckPNGFormat           EscapeFunction = 0x1014
	EscapePostScriptIdentify       EscapeFunction = 0x1011
	EscapePostScriptInjection      EscapeFunction = 0x1012
	EscapeSPCLPassthrough2         EscapeFunction = 0x1016
	EscapeEncapsulatedPostScript   EscapeFunction = 0x1018
)

var escapeFunctionNames = map[EscapeFunction]string{
	EscapeQueryEscSupport: "QUERYESCSUPPORT", EscapeStartDoc: "STARTDOC",
	EscapeSetLineCap: "SETLINECAP", EscapeSetLineJoin: "SETLINEJOIN",
	EscapeSetMiterLimit: "SETMITERLIMIT", EscapeDrawPatternRect: "DRAWPATTERNRECT",
	EscapeGetSetPaperBins: "GETSETPAPERBINS", EscapeEPSPrinting: "EPSPRINTING",
	EscapeGetColorTable: "GETCOLORTABLE", EscapeSetColorTable: "SETCOLORTABLE",
	EscapeGetDeviceUnits: "GETDEVICEUNITS", EscapeClipToPath: "CLIP_TO_PATH",
	EscapeCheckJPEGFormat: "CHECKJPEGFORMAT", EscapeCheckPNGFormat: "CHECKPNGFORMAT",
	EscapePostScriptIdentify: "POSTSCRIPT_IDENTIFY", EscapePostScriptInjection: "POSTSCRIPT_INJECTION",
	EscapeSPCLPassthrough2: "SPCLPASSTHROUGH2", EscapeEncapsulatedPostScript: "ENCAPSULATED_POSTSCRIPT",
}

func (v EscapeFunction) String() string { return enumString(escapeFunctionNames, v) }

// EscapeRecord is the decoded META_ESCAPE record ([MS-WMF] 2.3.6.1): a
// function code, a declared byte count, and a function-specific payload.
type EscapeRecord struct {
	Function  EscapeFunction
	ByteCount uint16
	Payload   EscapePayload
}

func (EscapeRecord) RecordType() RecordType { return RecordEscape }

// EscapePayload is implemented by one struct per recognized
// EscapeFunction, plus EscapeRawRecord for anything this decoder doesn't
// special-case.
type EscapePayload interface {
	EscapeFunction() EscapeFunction
}

// EscapeRawRecord carries an escape's body verbatim when no dedicated
// decoder recognizes its Function.
type EscapeRawRecord struct {
	Function EscapeFunction
	Data     []byte
}

func (e EscapeRawRecord) EscapeFunction() EscapeFunction { return e.Function }

// EscapeSetLineCapRecord sets the PostScript line cap style. ByteCount
// MUST be 4 ([MS-WMF] 2.3.6.1 SETLINECAP).
type EscapeSetLineCapRecord struct{ Cap PostScriptCap }

func (EscapeSetLineCapRecord) EscapeFunction() EscapeFunction { return EscapeSetLineCap }

// EscapeSetLineJoinRecord sets the PostScript line join style.
type EscapeSetLineJoinRecord struct{ Join PostScriptJoin }

func (EscapeSetLineJoinRecord) EscapeFunction() EscapeFunction { return EscapeSetLineJoin }

// EscapeSetMiterLimitRecord sets the PostScript miter limit.
type EscapeSetMiterLimitRecord struct{ MiterLimit uint16 }

func (EscapeSetMiterLimitRecord) EscapeFunction() EscapeFunction { return EscapeSetMiterLimit }

// EscapeEPSPrintingRecord toggles EPS passthrough mode. ByteCount MUST be
// 2.
type EscapeEPSPrintingRecord struct{ Enabled bool }

func (EscapeEPSPrintingRecord) EscapeFunction() EscapeFunction { return EscapeEPSPrinting }

// EscapeStartDocRecord names the document being spooled. ByteCount MUST be
// < 260.
type EscapeStartDocRecord struct{ DocName string }

func (EscapeStartDocRecord) EscapeFunction() EscapeFunction { return EscapeStartDoc }

// EscapeQueryEscSupportRecord asks the driver whether it supports a given
// EscapeFunction.
type EscapeQueryEscSupportRecord struct{ Queried EscapeFunction }

func (EscapeQueryEscSupportRecord) EscapeFunction() EscapeFunction { return EscapeQueryEscSupport }

// EscapeGetSetColorTableRecord reads or writes one palette-manager color
// table entry, shared shape for GETCOLORTABLE and SETCOLORTABLE.
type EscapeGetSetColorTableRecord struct {
	Function EscapeFunction
	Index    uint32
	Color    ColorRef
}

func (e EscapeGetSetColorTableRecord) EscapeFunction() EscapeFunction { return e.Function }

// EscapeDrawPatternRectRecord fills a rectangle with a device-specific
// dither pattern.
type EscapeDrawPatternRectRecord struct {
	Position PointL
	Size     PointL
	Style    uint16
	Pattern  uint16
}

func (EscapeDrawPatternRectRecord) EscapeFunction() EscapeFunction { return EscapeDrawPatternRect }

// EscapeGetDeviceUnitsRecord carries no payload; the reply travels out of
// band via the driver.
type EscapeGetDeviceUnitsRecord struct{}

func (EscapeGetDeviceUnitsRecord) EscapeFunction() EscapeFunction { return EscapeGetDeviceUnits }

// EscapeClipToPathRecord clips subsequent output to the currently
// constructed path.
type EscapeClipToPathRecord struct{ Mode uint16 }

func (EscapeClipToPathRecord) EscapeFunction() EscapeFunction { return EscapeClipToPath }

// EscapeCheckFormatRecord answers CHECKJPEGFORMAT/CHECKPNGFORMAT: does the
// driver support rendering this blob's compressed format directly.
type EscapeCheckFormatRecord struct {
	Function EscapeFunction
	Data     []byte
}

func (e EscapeCheckFormatRecord) EscapeFunction() EscapeFunction { return e.Function }

// EscapePostScriptPassthroughRecord carries a raw PostScript fragment for
// POSTSCRIPT_IDENTIFY, POSTSCRIPT_INJECTION, and SPCLPASSTHROUGH2, which all
// share the shape "driver-opaque byte blob, interpretation out of scope for
// playback".
type EscapePostScriptPassthroughRecord struct {
	Function EscapeFunction
	Data     []byte
}

func (e EscapePostScriptPassthroughRecord) EscapeFunction() EscapeFunction { return e.Function }

// EscapeEncapsulatedPostScriptRecord carries an embedded EPS fragment with
// the driver's own bounding-box framing. ByteCount (the enclosing Escape
// record's declared length) MUST be >= Size; the PostScript data itself is
// exactly Size minus the 16-byte Size/Version/Points prefix.
type EscapeEncapsulatedPostScriptRecord struct {
	Size    uint32
	Version uint32
	Points  PointL
	Data    []byte
}

func (EscapeEncapsulatedPostScriptRecord) EscapeFunction() EscapeFunction {
	return EscapeEncapsulatedPostScript
}

// encapsulatedPostScriptPrefixSize is Size(4) + Version(4) + Points(8).
const encapsulatedPostScriptPrefixSize = 16

const escapeStartDocMaxLen = 260

type escapeDecoder func(r *Reader, byteCount int) (EscapePayload, error)

var escapeDecoders = map[EscapeFunction]escapeDecoder{}

func registerEscapeDecoder(fn EscapeFunction, dec escapeDecoder) {
	escapeDecoders[fn] = dec
}

func init() {
	registerRecordDecoder(RecordEscape, func(r *Reader, _ int) (RecordPayload, error) {
		rawFn, err := r.U16()
		if err != nil {
			return nil, fmt.Errorf("Escape.function: %w", err)
		}
		function := EscapeFunction(rawFn)
		byteCount, err := r.U16()
		if err != nil {
			return nil, fmt.Errorf("Escape.byteCount: %w", err)
		}
		bodyStart := r.Pos()
		dec, ok := escapeDecoders[function]
		if !ok {
			data, _, err := r.Bytes(int(byteCount))
			if err != nil {
				return nil, fmt.Errorf("Escape[%s].data: %w", function, err)
			}
			return EscapeRecord{Function: function, ByteCount: byteCount, Payload: EscapeRawRecord{Function: function, Data: append([]byte(nil), data...)}}, nil
		}
		payload, err := dec(r, int(byteCount))
		if err != nil {
			return nil, fmt.Errorf("Escape[%s]: %w", function, err)
		}
		consumed := r.Pos() - bodyStart
		if residue := int(byteCount) - consumed; residue > 0 {
			if err := r.Skip(residue); err != nil {
				return nil, fmt.Errorf("Escape[%s] residue: %w", function, err)
			}
		}
		return EscapeRecord{Function: function, ByteCount: byteCount, Payload: payload}, nil
	})

	registerEscapeDecoder(EscapeSetLineCap, func(r *Reader, byteCount int) (EscapePayload, error) {
		if byteCount != 4 {
			return nil, fmt.Errorf("SETLINECAP byteCount = %d, want 4: %w", byteCount, ErrUnexpectedPattern)
		}
		raw, err := r.I32()
		if err != nil {
			return nil, err
		}
		cap_, err := ParsePostScriptCap(raw)
		return EscapeSetLineCapRecord{Cap: cap_}, err
	})
	registerEscapeDecoder(EscapeSetLineJoin, func(r *Reader, byteCount int) (EscapePayload, error) {
		raw, err := r.I32()
		if err != nil {
			return nil, err
		}
		join, err := ParsePostScriptJoin(raw)
		return EscapeSetLineJoinRecord{Join: join}, err
	})
	registerEscapeDecoder(EscapeSetMiterLimit, func(r *Reader, byteCount int) (EscapePayload, error) {
		n, err := r.U16()
		return EscapeSetMiterLimitRecord{MiterLimit: n}, err
	})
	registerEscapeDecoder(EscapeEPSPrinting, func(r *Reader, byteCount int) (EscapePayload, error) {
		if byteCount != 2 {
			return nil, fmt.Errorf("EPSPRINTING byteCount = %d, want 2: %w", byteCount, ErrUnexpectedPattern)
		}
		enabled, err := r.U16()
		return EscapeEPSPrintingRecord{Enabled: enabled != 0}, err
	})
	registerEscapeDecoder(EscapeStartDoc, func(r *Reader, byteCount int) (EscapePayload, error) {
		if byteCount >= escapeStartDocMaxLen {
			return nil, fmt.Errorf("STARTDOC byteCount = %d, want < %d: %w", byteCount, escapeStartDocMaxLen, ErrUnexpectedPattern)
		}
		raw, _, err := r.Bytes(byteCount)
		if err != nil {
			return nil, err
		}
		name, err := DecodeANSI1252(raw)
		return EscapeStartDocRecord{DocName: name}, err
	})
	registerEscapeDecoder(EscapeQueryEscSupport, func(r *Reader, byteCount int) (EscapePayload, error) {
		raw, err := r.U16()
		return EscapeQueryEscSupportRecord{Queried: EscapeFunction(raw)}, err
	})
	registerEscapeDecoder(EscapeGetColorTable, func(r *Reader, byteCount int) (EscapePayload, error) {
		idx, err := r.U32()
		if err != nil {
			return nil, err
		}
		color, err := ReadColorRef(r)
		return EscapeGetSetColorTableRecord{Function: EscapeGetColorTable, Index: idx, Color: color}, err
	})
	registerEscapeDecoder(EscapeSetColorTable, func(r *Reader, byteCount int) (EscapePayload, error) {
		idx, err := r.U32()
		if err != nil {
			return nil, err
		}
		color, err := ReadColorRef(r)
		return EscapeGetSetColorTableRecord{Function: EscapeSetColorTable, Index: idx, Color: color}, err
	})
	registerEscapeDecoder(EscapeDrawPatternRect, func(r *Reader, byteCount int) (EscapePayload, error) {
		pos, err := ReadPointL(r)
		if err != nil {
			return nil, err
		}
		size, err := ReadPointL(r)
		if err != nil {
			return nil, err
		}
		style, err := r.U16()
		if err != nil {
			return nil, err
		}
		pattern, err := r.U16()
		return EscapeDrawPatternRectRecord{Position: pos, Size: size, Style: style, Pattern: pattern}, err
	})
	registerEscapeDecoder(EscapeGetDeviceUnits, func(r *Reader, byteCount int) (EscapePayload, error) {
		return EscapeGetDeviceUnitsRecord{}, nil
	})
	registerEscapeDecoder(EscapeClipToPath, func(r *Reader, byteCount int) (EscapePayload, error) {
		mode, err := r.U16()
		return EscapeClipToPathRecord{Mode: mode}, err
	})
	registerEscapeDecoder(EscapeCheckJPEGFormat, func(r *Reader, byteCount int) (EscapePayload, error) {
		data, _, err := r.Bytes(byteCount)
		return EscapeCheckFormatRecord{Function: EscapeCheckJPEGFormat, Data: append([]byte(nil), data...)}, err
	})
	registerEscapeDecoder(EscapeCheckPNGFormat, func(r *Reader, byteCount int) (EscapePayload, error) {
		data, _, err := r.Bytes(byteCount)
		return EscapeCheckFormatRecord{Function: EscapeCheckPNGFormat, Data: append([]byte(nil), data...)}, err
	})
	for _, fn := range []EscapeFunction{EscapePostScriptIdentify, EscapePostScriptInjection, EscapeSPCLPassthrough2} {
		fn := fn
		registerEscapeDecoder(fn, func(r *Reader, byteCount int) (EscapePayload, error) {
			data, _, err := r.Bytes(byteCount)
			return EscapePostScriptPassthroughRecord{Function: fn, Data: append([]byte(nil), data...)}, err
		})
	}
	registerEscapeDecoder(EscapeEncapsulatedPostScript, func(r *Reader, byteCount int) (EscapePayload, error) {
		size, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("ENCAPSULATED_POSTSCRIPT.size: %w", err)
		}
		version, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("ENCAPSULATED_POSTSCRIPT.version: %w", err)
		}
		points, err := ReadPointL(r)
		if err != nil {
			return nil, fmt.Errorf("ENCAPSULATED_POSTSCRIPT.points: %w", err)
		}
		if uint32(byteCount) < size {
			return nil, fmt.Errorf("ENCAPSULATED_POSTSCRIPT byteCount %d < size %d: %w", byteCount, size, ErrUnexpectedPattern)
		}
		if size < encapsulatedPostScriptPrefixSize {
			return nil, fmt.Errorf("ENCAPSULATED_POSTSCRIPT size %d smaller than its own prefix: %w", size, ErrUnexpectedPattern)
		}
		data, _, err := r.Bytes(int(size) - encapsulatedPostScriptPrefixSize)
		if err != nil {
			return nil, fmt.Errorf("ENCAPSULATED_POSTSCRIPT.data: %w", err)
		}
		return EscapeEncapsulatedPostScriptRecord{Size: size, Version: version, Points: points, Data: append([]byte(nil), data...)}, nil
	})
}
