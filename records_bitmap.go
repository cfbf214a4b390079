// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import "fmt"

// Bitmap records blit pixel data into the output, combined with the
// destination via a ternary raster operation. RasterOperation is kept as
// a raw 32-bit ROP3 index rather than an enumerant: the ROP3 space has up
// to 256 members and only a handful have well-known names, so validating
// it buys nothing a sink implementation couldn't do itself, mirroring
// PatBlt's treatment of the same field.

// BitBltRecord blits from a device-dependent source bitmap, or (when
// Bitmap is nil) performs a destination-only raster op such as a solid
// fill ([MS-WMF] 2.3.3.1).
type BitBltRecord struct {
	RasterOperation uint32
	SrcPoint        PointS
	Height, Width   int16
	DestPoint       PointS
	Bitmap          *Bitmap16
	Bits            []byte
}

func (BitBltRecord) RecordType() RecordType { return RecordBitBlt }

// DIBBitBltRecord blits from a DIB source, or performs a destination-only
// raster op when DIB is nil ([MS-WMF] 2.3.3.2).
type DIBBitBltRecord struct {
	RasterOperation uint32
	SrcPoint        PointS
	Height, Width   int16
	DestPoint       PointS
	DIB             *DIB
}

func (DIBBitBltRecord) RecordType() RecordType { return RecordDIBBitBlt }

// StretchBltRecord blits from a device-dependent source bitmap, scaling
// between independent source and destination extents ([MS-WMF] 2.3.3.8).
type StretchBltRecord struct {
	RasterOperation       uint32
	SrcHeight, SrcWidth   int16
	SrcPoint              PointS
	DestHeight, DestWidth int16
	DestPoint             PointS
	Bitmap                *Bitmap16
	Bits                  []byte
}

func (StretchBltRecord) RecordType() RecordType { return RecordStretchBlt }

// DIBStretchBltRecord is StretchBlt with a DIB source ([MS-WMF] 2.3.3.3).
type DIBStretchBltRecord struct {
	RasterOperation       uint32
	SrcHeight, SrcWidth   int16
	SrcPoint              PointS
	DestHeight, DestWidth int16
	DestPoint             PointS
	DIB                   DIB
}

func (DIBStretchBltRecord) RecordType() RecordType { return RecordDIBStretchBlt }

// SetDIBToDevRecord copies a run of a DIB's scanlines directly to the
// output device without stretching ([MS-WMF] 2.3.3.4).
type SetDIBToDevRecord struct {
	Usage         ColorUsage
	ScanCount     uint16
	StartScan     uint16
	SrcPoint      PointS
	Height, Width int16
	DestPoint     PointS
	DIB           DIB
}

func (SetDIBToDevRecord) RecordType() RecordType { return RecordSetDIBToDev }

// StretchDIBRecord blits from a DIB source, scaling between independent
// source and destination extents ([MS-WMF] 2.3.3.9).
type StretchDIBRecord struct {
	RasterOperation       uint32
	Usage                 ColorUsage
	SrcHeight, SrcWidth   int16
	SrcPoint              PointS
	DestHeight, DestWidth int16
	DestPoint             PointS
	DIB                   DIB
}

func (StretchDIBRecord) RecordType() RecordType { return RecordStretchDIB }

func readBitBltCommonTail(r *Reader) (srcPoint PointS, height, width int16, destPoint PointS, err error) {
	ySrc, err := r.I16()
	if err != nil {
		return PointS{}, 0, 0, PointS{}, fmt.Errorf("ySrc: %w", err)
	}
	xSrc, err := r.I16()
	if err != nil {
		return PointS{}, 0, 0, PointS{}, fmt.Errorf("xSrc: %w", err)
	}
	height, err = r.I16()
	if err != nil {
		return PointS{}, 0, 0, PointS{}, fmt.Errorf("height: %w", err)
	}
	width, err = r.I16()
	if err != nil {
		return PointS{}, 0, 0, PointS{}, fmt.Errorf("width: %w", err)
	}
	yDest, err := r.I16()
	if err != nil {
		return PointS{}, 0, 0, PointS{}, fmt.Errorf("yDest: %w", err)
	}
	xDest, err := r.I16()
	if err != nil {
		return PointS{}, 0, 0, PointS{}, fmt.Errorf("xDest: %w", err)
	}
	return PointS{X: xSrc, Y: ySrc}, height, width, PointS{X: xDest, Y: yDest}, nil
}

func readOptionalBitmap16(r *Reader, start, declaredBytes int) (*Bitmap16, []byte, error) {
	if r.Pos()-start >= declaredBytes {
		return nil, nil, nil
	}
	bm, err := ReadBitmap16(r)
	if err != nil {
		return nil, nil, fmt.Errorf("bitmap16: %w", err)
	}
	remaining := declaredBytes - (r.Pos() - start)
	if remaining < 0 {
		return nil, nil, fmt.Errorf("bitmap16: %w", ErrTruncated)
	}
	bits, _, err := r.Bytes(remaining)
	if err != nil {
		return nil, nil, fmt.Errorf("bitmap16.bits: %w", err)
	}
	return &bm, append([]byte(nil), bits...), nil
}

func init() {
	registerRecordDecoder(RecordBitBlt, func(r *Reader, declaredBytes int) (RecordPayload, error) {
		start := r.Pos()
		rop, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("BitBlt.rasterOperation: %w", err)
		}
		srcPoint, height, width, destPoint, err := readBitBltCommonTail(r)
		if err != nil {
			return nil, fmt.Errorf("BitBlt.%w", err)
		}
		bm, bits, err := readOptionalBitmap16(r, start, declaredBytes)
		if err != nil {
			return nil, fmt.Errorf("BitBlt.%w", err)
		}
		return BitBltRecord{RasterOperation: rop, SrcPoint: srcPoint, Height: height, Width: width, DestPoint: destPoint, Bitmap: bm, Bits: bits}, nil
	})
	registerRecordDecoder(RecordDIBBitBlt, func(r *Reader, declaredBytes int) (RecordPayload, error) {
		start := r.Pos()
		rop, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("DIBBitBlt.rasterOperation: %w", err)
		}
		srcPoint, height, width, destPoint, err := readBitBltCommonTail(r)
		if err != nil {
			return nil, fmt.Errorf("DIBBitBlt.%w", err)
		}
		out := DIBBitBltRecord{RasterOperation: rop, SrcPoint: srcPoint, Height: height, Width: width, DestPoint: destPoint}
		remaining := declaredBytes - (r.Pos() - start)
		if remaining > 0 {
			dib, err := ReadDIB(r, ColorUsageRGB, remaining)
			if err != nil {
				return nil, fmt.Errorf("DIBBitBlt.dib: %w", err)
			}
			out.DIB = &dib
		}
		return out, nil
	})
	registerRecordDecoder(RecordStretchBlt, func(r *Reader, declaredBytes int) (RecordPayload, error) {
		start := r.Pos()
		rop, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("StretchBlt.rasterOperation: %w", err)
		}
		srcHeight, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("StretchBlt.srcHeight: %w", err)
		}
		srcWidth, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("StretchBlt.srcWidth: %w", err)
		}
		srcPoint, destHeight, destWidth, destPoint, err := readBitBltCommonTail(r)
		if err != nil {
			return nil, fmt.Errorf("StretchBlt.%w", err)
		}
		bm, bits, err := readOptionalBitmap16(r, start, declaredBytes)
		if err != nil {
			return nil, fmt.Errorf("StretchBlt.%w", err)
		}
		return StretchBltRecord{
			RasterOperation: rop, SrcHeight: srcHeight, SrcWidth: srcWidth, SrcPoint: srcPoint,
			DestHeight: destHeight, DestWidth: destWidth, DestPoint: destPoint, Bitmap: bm, Bits: bits,
		}, nil
	})
	registerRecordDecoder(RecordDIBStretchBlt, func(r *Reader, declaredBytes int) (RecordPayload, error) {
		start := r.Pos()
		rop, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("DIBStretchBlt.rasterOperation: %w", err)
		}
		srcHeight, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("DIBStretchBlt.srcHeight: %w", err)
		}
		srcWidth, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("DIBStretchBlt.srcWidth: %w", err)
		}
		srcPoint, destHeight, destWidth, destPoint, err := readBitBltCommonTail(r)
		if err != nil {
			return nil, fmt.Errorf("DIBStretchBlt.%w", err)
		}
		remaining := declaredBytes - (r.Pos() - start)
		if remaining < 0 {
			return nil, fmt.Errorf("DIBStretchBlt: %w", ErrTruncated)
		}
		dib, err := ReadDIB(r, ColorUsageRGB, remaining)
		if err != nil {
			return nil, fmt.Errorf("DIBStretchBlt.dib: %w", err)
		}
		return DIBStretchBltRecord{
			RasterOperation: rop, SrcHeight: srcHeight, SrcWidth: srcWidth, SrcPoint: srcPoint,
			DestHeight: destHeight, DestWidth: destWidth, DestPoint: destPoint, DIB: dib,
		}, nil
	})
	registerRecordDecoder(RecordSetDIBToDev, func(r *Reader, declaredBytes int) (RecordPayload, error) {
		start := r.Pos()
		rawUsage, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("SetDIBToDev.colorUsage: %w", err)
		}
		usage, err := ParseColorUsage(rawUsage)
		if err != nil {
			return nil, fmt.Errorf("SetDIBToDev.colorUsage: %w", err)
		}
		scanCount, err := r.U16()
		if err != nil {
			return nil, fmt.Errorf("SetDIBToDev.scanCount: %w", err)
		}
		startScan, err := r.U16()
		if err != nil {
			return nil, fmt.Errorf("SetDIBToDev.startScan: %w", err)
		}
		srcPoint, height, width, destPoint, err := readBitBltCommonTail(r)
		if err != nil {
			return nil, fmt.Errorf("SetDIBToDev.%w", err)
		}
		remaining := declaredBytes - (r.Pos() - start)
		if remaining < 0 {
			return nil, fmt.Errorf("SetDIBToDev: %w", ErrTruncated)
		}
		dib, err := ReadDIB(r, usage, remaining)
		if err != nil {
			return nil, fmt.Errorf("SetDIBToDev.dib: %w", err)
		}
		return SetDIBToDevRecord{
			Usage: usage, ScanCount: scanCount, StartScan: startScan, SrcPoint: srcPoint,
			Height: height, Width: width, DestPoint: destPoint, DIB: dib,
		}, nil
	})
	registerRecordDecoder(RecordStretchDIB, func(r *Reader, declaredBytes int) (RecordPayload, error) {
		start := r.Pos()
		rop, err := r.U32()
		if err != nil {
			return nil, fmt.Errorf("StretchDIB.rasterOperation: %w", err)
		}
		rawUsage, err := r.U16()
		if err != nil {
			return nil, fmt.Errorf("StretchDIB.colorUsage: %w", err)
		}
		usage, err := ParseColorUsage(uint32(rawUsage))
		if err != nil {
			return nil, fmt.Errorf("StretchDIB.colorUsage: %w", err)
		}
		srcHeight, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("StretchDIB.srcHeight: %w", err)
		}
		srcWidth, err := r.I16()
		if err != nil {
			return nil, fmt.Errorf("StretchDIB.srcWidth: %w", err)
		}
		srcPoint, destHeight, destWidth, destPoint, err := readBitBltCommonTail(r)
		if err != nil {
			return nil, fmt.Errorf("StretchDIB.%w", err)
		}
		remaining := declaredBytes - (r.Pos() - start)
		if remaining < 0 {
			return nil, fmt.Errorf("StretchDIB: %w", ErrTruncated)
		}
		dib, err := ReadDIB(r, usage, remaining)
		if err != nil {
			return nil, fmt.Errorf("StretchDIB.dib: %w", err)
		}
		return StretchDIBRecord{
			RasterOperation: rop, Usage: usage, SrcHeight: srcHeight, SrcWidth: srcWidth, SrcPoint: srcPoint,
			DestHeight: destHeight, DestWidth: destWidth, DestPoint: destPoint, DIB: dib,
		}, nil
	})
}
