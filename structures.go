// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import "fmt"

// PointS is a 16-bit signed (x, y) pair ([MS-WMF] 2.2.2.18).
type PointS struct {
	X, Y int16
}

// ReadPointS decodes a PointS: two i16 fields.
func ReadPointS(r *Reader) (PointS, error) {
	x, err := r.I16()
	if err != nil {
		return PointS{}, fmt.Errorf("PointS.x: %w", err)
	}
	y, err := r.I16()
	if err != nil {
		return PointS{}, fmt.Errorf("PointS.y: %w", err)
	}
	return PointS{X: x, Y: y}, nil
}

// PointL is a 32-bit signed (x, y) pair ([MS-WMF] 2.2.2.17).
type PointL struct {
	X, Y int32
}

// ReadPointL decodes a PointL: two i32 fields.
func ReadPointL(r *Reader) (PointL, error) {
	x, err := r.I32()
	if err != nil {
		return PointL{}, fmt.Errorf("PointL.x: %w", err)
	}
	y, err := r.I32()
	if err != nil {
		return PointL{}, fmt.Errorf("PointL.y: %w", err)
	}
	return PointL{X: x, Y: y}, nil
}

// Rect is a 16-bit signed rectangle ([MS-WMF] 2.2.2.18), stored field order
// Left, Top, Right, Bottom exactly as the wire layout orders them.
type Rect struct {
	Left, Top, Right, Bottom int16
}

// ReadRect decodes a Rect: four i16 fields in Left/Top/Right/Bottom order.
func ReadRect(r *Reader) (Rect, error) {
	left, err := r.I16()
	if err != nil {
		return Rect{}, fmt.Errorf("Rect.left: %w", err)
	}
	top, err := r.I16()
	if err != nil {
		return Rect{}, fmt.Errorf("Rect.top: %w", err)
	}
	right, err := r.I16()
	if err != nil {
		return Rect{}, fmt.Errorf("Rect.right: %w", err)
	}
	bottom, err := r.I16()
	if err != nil {
		return Rect{}, fmt.Errorf("Rect.bottom: %w", err)
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}, nil
}

// Overlap returns the intersecting rectangle of r and other, or (Rect{},
// false) when they are disjoint. This follows a mixed orientation test,
// `left < right` but `bottom < top`, rather than a strictly
// y-down-consistent one; it is the reference behavior, preserved
// deliberately and not a bug.
func (r Rect) Overlap(other Rect) (Rect, bool) {
	left := max16(r.Left, other.Left)
	right := min16(r.Right, other.Right)
	top := min16(r.Top, other.Top)
	bottom := max16(r.Bottom, other.Bottom)

	if left < right && bottom < top {
		return Rect{Left: left, Top: top, Right: right, Bottom: bottom}, true
	}
	return Rect{}, false
}

func max16(a, b int16) int16 {
	if a > b {
		return a
	}
	return b
}

func min16(a, b int16) int16 {
	if a < b {
		return a
	}
	return b
}

// RectL is the 32-bit signed counterpart of Rect ([MS-WMF] 2.2.2.19).
type RectL struct {
	Left, Top, Right, Bottom int32
}

// ReadRectL decodes a RectL.
func ReadRectL(r *Reader) (RectL, error) {
	left, err := r.I32()
	if err != nil {
		return RectL{}, fmt.Errorf("RectL.left: %w", err)
	}
	top, err := r.I32()
	if err != nil {
		return RectL{}, fmt.Errorf("RectL.top: %w", err)
	}
	right, err := r.I32()
	if err != nil {
		return RectL{}, fmt.Errorf("RectL.right: %w", err)
	}
	bottom, err := r.I32()
	if err != nil {
		return RectL{}, fmt.Errorf("RectL.bottom: %w", err)
	}
	return RectL{Left: left, Top: top, Right: right, Bottom: bottom}, nil
}

// SizeL is a 32-bit unsigned (cx, cy) pair ([MS-WMF] 2.2.2.22).
type SizeL struct {
	CX, CY uint32
}

// ReadSizeL decodes a SizeL.
func ReadSizeL(r *Reader) (SizeL, error) {
	cx, err := r.U32()
	if err != nil {
		return SizeL{}, fmt.Errorf("SizeL.cx: %w", err)
	}
	cy, err := r.U32()
	if err != nil {
		return SizeL{}, fmt.Errorf("SizeL.cy: %w", err)
	}
	return SizeL{CX: cx, CY: cy}, nil
}

// ColorRef is a 4-byte color: red, green and blue bytes followed by a
// reserved byte ([MS-WMF] 2.2.2.8).
type ColorRef struct {
	R, G, B uint8
}

// ReadColorRef decodes a ColorRef. A non-zero reserved byte SHOULD be
// zero; when it isn't, the reader's anomaly handler is invoked and the
// value is coerced to zero (or, under strict decoding, the coercion
// becomes an ErrUnexpectedPattern).
func ReadColorRef(r *Reader) (ColorRef, error) {
	red, err := r.U8()
	if err != nil {
		return ColorRef{}, fmt.Errorf("ColorRef.red: %w", err)
	}
	green, err := r.U8()
	if err != nil {
		return ColorRef{}, fmt.Errorf("ColorRef.green: %w", err)
	}
	blue, err := r.U8()
	if err != nil {
		return ColorRef{}, fmt.Errorf("ColorRef.blue: %w", err)
	}
	reserved, err := r.U8()
	if err != nil {
		return ColorRef{}, fmt.Errorf("ColorRef.reserved: %w", err)
	}
	if reserved != 0 {
		if err := r.anomaly("ColorRef.reserved is non-zero; coerced to 0"); err != nil {
			return ColorRef{}, fmt.Errorf("ColorRef.reserved: %w", err)
		}
	}
	return ColorRef{R: red, G: green, B: blue}, nil
}

// RGBQuad is a 4-byte BGR color with a reserved byte that MUST be zero
// ([MS-WMF] 2.2.2.20).
type RGBQuad struct {
	Blue, Green, Red uint8
}

// ReadRGBQuad decodes an RGBQuad, failing with ErrUnexpectedPattern if the
// reserved byte is non-zero.
func ReadRGBQuad(r *Reader) (RGBQuad, error) {
	blue, err := r.U8()
	if err != nil {
		return RGBQuad{}, fmt.Errorf("RGBQuad.blue: %w", err)
	}
	green, err := r.U8()
	if err != nil {
		return RGBQuad{}, fmt.Errorf("RGBQuad.green: %w", err)
	}
	red, err := r.U8()
	if err != nil {
		return RGBQuad{}, fmt.Errorf("RGBQuad.red: %w", err)
	}
	reserved, err := r.U8()
	if err != nil {
		return RGBQuad{}, fmt.Errorf("RGBQuad.reserved: %w", err)
	}
	if reserved != 0 {
		return RGBQuad{}, fmt.Errorf("RGBQuad.reserved = %#x: %w", reserved, ErrUnexpectedPattern)
	}
	return RGBQuad{Blue: blue, Green: green, Red: red}, nil
}

// RGBTriple is a 3-byte BGR color ([MS-WMF] 2.2.2.21).
type RGBTriple struct {
	Blue, Green, Red uint8
}

// ReadRGBTriple decodes an RGBTriple.
func ReadRGBTriple(r *Reader) (RGBTriple, error) {
	blue, err := r.U8()
	if err != nil {
		return RGBTriple{}, fmt.Errorf("RGBTriple.blue: %w", err)
	}
	green, err := r.U8()
	if err != nil {
		return RGBTriple{}, fmt.Errorf("RGBTriple.green: %w", err)
	}
	red, err := r.U8()
	if err != nil {
		return RGBTriple{}, fmt.Errorf("RGBTriple.red: %w", err)
	}
	return RGBTriple{Blue: blue, Green: green, Red: red}, nil
}

// CIEXYZ is a fixed-point CIE tristimulus coordinate ([MS-WMF] 2.2.2.7),
// each axis a Q2.30 value.
type CIEXYZ struct {
	X, Y, Z float64
}

// ReadCIEXYZ decodes a CIEXYZ.
func ReadCIEXYZ(r *Reader) (CIEXYZ, error) {
	x, err := r.I32()
	if err != nil {
		return CIEXYZ{}, fmt.Errorf("CIEXYZ.x: %w", err)
	}
	y, err := r.I32()
	if err != nil {
		return CIEXYZ{}, fmt.Errorf("CIEXYZ.y: %w", err)
	}
	z, err := r.I32()
	if err != nil {
		return CIEXYZ{}, fmt.Errorf("CIEXYZ.z: %w", err)
	}
	return CIEXYZ{X: DecodeQ2_30(x), Y: DecodeQ2_30(y), Z: DecodeQ2_30(z)}, nil
}

// CIEXYZTriple is three CIEXYZ points, one per RGB primary
// ([MS-WMF] 2.2.2.6).
type CIEXYZTriple struct {
	Red, Green, Blue CIEXYZ
}

// ReadCIEXYZTriple decodes a CIEXYZTriple.
func ReadCIEXYZTriple(r *Reader) (CIEXYZTriple, error) {
	red, err := ReadCIEXYZ(r)
	if err != nil {
		return CIEXYZTriple{}, fmt.Errorf("CIEXYZTriple.red: %w", err)
	}
	green, err := ReadCIEXYZ(r)
	if err != nil {
		return CIEXYZTriple{}, fmt.Errorf("CIEXYZTriple.green: %w", err)
	}
	blue, err := ReadCIEXYZ(r)
	if err != nil {
		return CIEXYZTriple{}, fmt.Errorf("CIEXYZTriple.blue: %w", err)
	}
	return CIEXYZTriple{Red: red, Green: green, Blue: blue}, nil
}

// PaletteEntry is one slot of a Palette object ([MS-WMF] 2.2.2.16).
type PaletteEntry struct {
	Flags            PaletteEntryFlag
	Blue, Green, Red uint8
}

// ReadPaletteEntry decodes a PaletteEntry: flags byte then B/G/R bytes,
// validating Flags against {0x00} ∪ PaletteEntryFlag.
func ReadPaletteEntry(r *Reader) (PaletteEntry, error) {
	rawFlags, err := r.U8()
	if err != nil {
		return PaletteEntry{}, fmt.Errorf("PaletteEntry.flags: %w", err)
	}
	flags, err := ParsePaletteEntryFlag(rawFlags)
	if err != nil {
		return PaletteEntry{}, fmt.Errorf("PaletteEntry.flags: %w", err)
	}
	blue, err := r.U8()
	if err != nil {
		return PaletteEntry{}, fmt.Errorf("PaletteEntry.blue: %w", err)
	}
	green, err := r.U8()
	if err != nil {
		return PaletteEntry{}, fmt.Errorf("PaletteEntry.green: %w", err)
	}
	red, err := r.U8()
	if err != nil {
		return PaletteEntry{}, fmt.Errorf("PaletteEntry.red: %w", err)
	}
	return PaletteEntry{Flags: flags, Blue: blue, Green: green, Red: red}, nil
}

// PitchAndFamily splits a single byte into a PitchFont (bottom 2 bits) and
// a FamilyFont (top 4 bits).
type PitchAndFamily struct {
	Pitch  PitchFont
	Family FamilyFont
}

// ReadPitchAndFamily decodes a PitchAndFamily byte.
func ReadPitchAndFamily(r *Reader) (PitchAndFamily, error) {
	raw, err := r.U8()
	if err != nil {
		return PitchAndFamily{}, fmt.Errorf("PitchAndFamily: %w", err)
	}
	pitch, err := ParsePitchFont(raw & 0x03)
	if err != nil {
		return PitchAndFamily{}, fmt.Errorf("PitchAndFamily.pitch: %w", err)
	}
	family, err := ParseFamilyFont((raw >> 4) & 0x0F)
	if err != nil {
		return PitchAndFamily{}, fmt.Errorf("PitchAndFamily.family: %w", err)
	}
	return PitchAndFamily{Pitch: pitch, Family: family}, nil
}

// Bitmap16 is a device-dependent bitmap descriptor ([MS-WMF] 2.2.2.1), used
// by CreatePatternBrush and the BitBlt-family records.
type Bitmap16 struct {
	Type       int16
	Width      int16
	Height     int16
	WidthBytes int16
	Planes     uint8
	BitsPixel  uint8
	Bits       []byte
}

// ReadBitmap16 decodes the fixed Bitmap16 header. Bits, if present, is the
// caller's responsibility to read (its length is not self-described by the
// structure and depends on the owning record).
func ReadBitmap16(r *Reader) (Bitmap16, error) {
	var b Bitmap16
	var err error
	if b.Type, err = r.I16(); err != nil {
		return b, fmt.Errorf("Bitmap16.type: %w", err)
	}
	if b.Width, err = r.I16(); err != nil {
		return b, fmt.Errorf("Bitmap16.width: %w", err)
	}
	if b.Height, err = r.I16(); err != nil {
		return b, fmt.Errorf("Bitmap16.height: %w", err)
	}
	if b.WidthBytes, err = r.I16(); err != nil {
		return b, fmt.Errorf("Bitmap16.widthBytes: %w", err)
	}
	if b.Planes, err = r.U8(); err != nil {
		return b, fmt.Errorf("Bitmap16.planes: %w", err)
	}
	if b.BitsPixel, err = r.U8(); err != nil {
		return b, fmt.Errorf("Bitmap16.bitsPixel: %w", err)
	}
	return b, nil
}

// BitmapInfoHeaderVersion distinguishes the core/V4/V5 BitmapInfoHeader
// shapes by their declared HeaderSize.
type BitmapInfoHeaderVersion int

// BitmapInfoHeader variants.
const (
	BitmapInfoHeaderCore BitmapInfoHeaderVersion = iota
	BitmapInfoHeaderV4
	BitmapInfoHeaderV5
)

const (
	bitmapInfoHeaderCoreSize = 40
	bitmapInfoHeaderV4Size   = 108
	bitmapInfoHeaderV5Size   = 124
)

// BitmapInfoHeader is the DIB pixel-format descriptor ([MS-WMF] 2.2.2.2),
// covering the core 40-byte form and its V4/V5 extensions.
type BitmapInfoHeader struct {
	Version         BitmapInfoHeaderVersion
	HeaderSize      uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	ImageSize       uint32
	XPelsPerMeter   int32
	YPelsPerMeter   int32
	ColorUsed       uint32
	ColorImportant  uint32
	RedMask, GreenMask, BlueMask, AlphaMask uint32
	ColorSpaceType  LogicalColorSpace
	Endpoints       CIEXYZTriple
	GammaRed, GammaGreen, GammaBlue uint32
	Intent          GamutMappingIntent
	ProfileData     uint32
	ProfileSize     uint32
}

// ReadBitmapInfoHeader decodes a BitmapInfoHeader, dispatching on the
// declared HeaderSize. The core form additionally requires planes == 1 and
// bit_count in {1,4,8,24}.
func ReadBitmapInfoHeader(r *Reader) (BitmapInfoHeader, error) {
	var h BitmapInfoHeader
	var err error
	if h.HeaderSize, err = r.U32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.size: %w", err)
	}
	if h.Width, err = r.I32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.width: %w", err)
	}
	if h.Height, err = r.I32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.height: %w", err)
	}
	if h.Planes, err = r.U16(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.planes: %w", err)
	}
	if h.BitCount, err = r.U16(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.bitCount: %w", err)
	}
	if h.Compression, err = r.U32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.compression: %w", err)
	}
	if h.ImageSize, err = r.U32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.imageSize: %w", err)
	}
	if h.XPelsPerMeter, err = r.I32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.xPelsPerMeter: %w", err)
	}
	if h.YPelsPerMeter, err = r.I32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.yPelsPerMeter: %w", err)
	}
	if h.ColorUsed, err = r.U32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.colorUsed: %w", err)
	}
	if h.ColorImportant, err = r.U32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.colorImportant: %w", err)
	}

	switch {
	case h.HeaderSize >= bitmapInfoHeaderV5Size:
		h.Version = BitmapInfoHeaderV5
	case h.HeaderSize >= bitmapInfoHeaderV4Size:
		h.Version = BitmapInfoHeaderV4
	default:
		h.Version = BitmapInfoHeaderCore
		if h.Planes != 1 {
			return h, fmt.Errorf("BitmapInfoHeader.planes = %d: %w", h.Planes, ErrUnexpectedPattern)
		}
		switch h.BitCount {
		case 1, 4, 8, 24:
		default:
			return h, fmt.Errorf("BitmapInfoHeader.bitCount = %d: %w", h.BitCount, ErrUnexpectedPattern)
		}
		return h, nil
	}

	if h.RedMask, err = r.U32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.redMask: %w", err)
	}
	if h.GreenMask, err = r.U32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.greenMask: %w", err)
	}
	if h.BlueMask, err = r.U32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.blueMask: %w", err)
	}
	if h.AlphaMask, err = r.U32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.alphaMask: %w", err)
	}
	rawCS, err := r.U32()
	if err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.colorSpaceType: %w", err)
	}
	if h.ColorSpaceType, err = ParseLogicalColorSpace(rawCS); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.colorSpaceType: %w", err)
	}
	if h.Endpoints, err = ReadCIEXYZTriple(r); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.endpoints: %w", err)
	}
	if h.GammaRed, err = r.U32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.gammaRed: %w", err)
	}
	if h.GammaGreen, err = r.U32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.gammaGreen: %w", err)
	}
	if h.GammaBlue, err = r.U32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.gammaBlue: %w", err)
	}

	if h.Version == BitmapInfoHeaderV4 {
		return h, nil
	}

	rawIntent, err := r.U32()
	if err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.intent: %w", err)
	}
	if h.Intent, err = ParseGamutMappingIntent(rawIntent); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.intent: %w", err)
	}
	if h.ProfileData, err = r.U32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.profileData: %w", err)
	}
	if h.ProfileSize, err = r.U32(); err != nil {
		return h, fmt.Errorf("BitmapInfoHeader.profileSize: %w", err)
	}
	if _, err = r.U32(); err != nil { // reserved
		return h, fmt.Errorf("BitmapInfoHeader.reserved: %w", err)
	}
	return h, nil
}

// DIB is a device-independent bitmap: a BitmapInfoHeader, an optional color
// table, and pixel data ([MS-WMF] 2.2.2.9).
type DIB struct {
	Header     BitmapInfoHeader
	ColorUsage ColorUsage
	Colors     []RGBQuad
	PaletteIdx []uint16
	PixelData  []byte
}

// ReadDIB decodes a DIB given the total byte budget allotted to it by the
// owning record (so trailing pixel data can be read without a second
// length field).
func ReadDIB(r *Reader, usage ColorUsage, totalLen int) (DIB, error) {
	start := r.Pos()
	header, err := ReadBitmapInfoHeader(r)
	if err != nil {
		return DIB{}, fmt.Errorf("DIB.header: %w", err)
	}

	d := DIB{Header: header, ColorUsage: usage}
	consumedHeader := r.Pos() - start
	if consumedHeader > totalLen {
		return DIB{}, fmt.Errorf("DIB header alone exceeds declared length: %w", ErrTruncated)
	}

	numColors := int(header.ColorUsed)
	if numColors == 0 && header.BitCount <= 8 {
		numColors = 1 << header.BitCount
	}

	if numColors > 0 {
		if usage == ColorUsagePaletteColors {
			d.PaletteIdx = make([]uint16, numColors)
			for i := range d.PaletteIdx {
				v, err := r.U16()
				if err != nil {
					return DIB{}, fmt.Errorf("DIB.colors[%d]: %w", i, err)
				}
				d.PaletteIdx[i] = v
			}
		} else {
			d.Colors = make([]RGBQuad, numColors)
			for i := range d.Colors {
				c, err := ReadRGBQuad(r)
				if err != nil {
					return DIB{}, fmt.Errorf("DIB.colors[%d]: %w", i, err)
				}
				d.Colors[i] = c
			}
		}
	}

	remaining := totalLen - (r.Pos() - start)
	if remaining < 0 {
		return DIB{}, fmt.Errorf("DIB color table exceeds declared length: %w", ErrTruncated)
	}
	pixels, _, err := r.Bytes(remaining)
	if err != nil {
		return DIB{}, fmt.Errorf("DIB.pixelData: %w", err)
	}
	d.PixelData = append([]byte(nil), pixels...)
	return d, nil
}

// LogBrush is a brush descriptor shared by CreateBrushIndirect and the
// ExtCreatePen-family escapes ([MS-WMF] 2.2.2.14).
type LogBrush struct {
	Style BrushStyle
	Color ColorRef
	Hatch uint16
}

// ReadLogBrush decodes a LogBrush.
func ReadLogBrush(r *Reader) (LogBrush, error) {
	rawStyle, err := r.U16()
	if err != nil {
		return LogBrush{}, fmt.Errorf("LogBrush.style: %w", err)
	}
	style, err := ParseBrushStyle(rawStyle)
	if err != nil {
		return LogBrush{}, fmt.Errorf("LogBrush.style: %w", err)
	}
	color, err := ReadColorRef(r)
	if err != nil {
		return LogBrush{}, fmt.Errorf("LogBrush.color: %w", err)
	}
	hatch, err := r.U16()
	if err != nil {
		return LogBrush{}, fmt.Errorf("LogBrush.hatch: %w", err)
	}
	return LogBrush{Style: style, Color: color, Hatch: hatch}, nil
}

// LogColorSpace is the ANSI-name form of a color-space profile descriptor
// ([MS-WMF] 2.2.2.15).
type LogColorSpace struct {
	Signature      uint32
	Version        uint32
	ColorSpaceType LogicalColorSpace
	Intent         GamutMappingIntent
	Endpoints      CIEXYZTriple
	GammaRed, GammaGreen, GammaBlue uint32
	FileName       string
}

// LogColorSpaceW is the Unicode-name form ([MS-WMF] 2.2.2.15, "W" variant).
type LogColorSpaceW struct {
	LogColorSpace
	FileNameW string
}

const logColorSpaceFileNameLen = 260

// ReadLogColorSpace decodes a LogColorSpace, ANSI filename form.
func ReadLogColorSpace(r *Reader) (LogColorSpace, error) {
	lcs, _, err := readLogColorSpaceCommon(r)
	if err != nil {
		return LogColorSpace{}, err
	}
	raw, _, err := r.Bytes(logColorSpaceFileNameLen)
	if err != nil {
		return LogColorSpace{}, fmt.Errorf("LogColorSpace.filename: %w", err)
	}
	name, err := DecodeANSI1252(raw)
	if err != nil {
		return LogColorSpace{}, fmt.Errorf("LogColorSpace.filename: %w", err)
	}
	lcs.FileName = name
	return lcs, nil
}

// ReadLogColorSpaceW decodes a LogColorSpaceW, UTF-16LE filename form.
func ReadLogColorSpaceW(r *Reader) (LogColorSpaceW, error) {
	lcs, _, err := readLogColorSpaceCommon(r)
	if err != nil {
		return LogColorSpaceW{}, err
	}
	raw, _, err := r.Bytes(logColorSpaceFileNameLen * 2)
	if err != nil {
		return LogColorSpaceW{}, fmt.Errorf("LogColorSpaceW.filename: %w", err)
	}
	name, err := DecodeUTF16LE(raw)
	if err != nil {
		return LogColorSpaceW{}, fmt.Errorf("LogColorSpaceW.filename: %w", err)
	}
	return LogColorSpaceW{LogColorSpace: lcs, FileNameW: name}, nil
}

func readLogColorSpaceCommon(r *Reader) (LogColorSpace, int, error) {
	var lcs LogColorSpace
	var err error
	if lcs.Signature, err = r.U32(); err != nil {
		return lcs, 0, fmt.Errorf("LogColorSpace.signature: %w", err)
	}
	if lcs.Version, err = r.U32(); err != nil {
		return lcs, 0, fmt.Errorf("LogColorSpace.version: %w", err)
	}
	if _, err = r.U32(); err != nil { // size, unused: the reader tracks its own cursor
		return lcs, 0, fmt.Errorf("LogColorSpace.size: %w", err)
	}
	rawCS, err := r.U32()
	if err != nil {
		return lcs, 0, fmt.Errorf("LogColorSpace.colorSpaceType: %w", err)
	}
	if lcs.ColorSpaceType, err = ParseLogicalColorSpace(rawCS); err != nil {
		return lcs, 0, fmt.Errorf("LogColorSpace.colorSpaceType: %w", err)
	}
	rawIntent, err := r.U32()
	if err != nil {
		return lcs, 0, fmt.Errorf("LogColorSpace.intent: %w", err)
	}
	if lcs.Intent, err = ParseGamutMappingIntent(rawIntent); err != nil {
		return lcs, 0, fmt.Errorf("LogColorSpace.intent: %w", err)
	}
	if lcs.Endpoints, err = ReadCIEXYZTriple(r); err != nil {
		return lcs, 0, fmt.Errorf("LogColorSpace.endpoints: %w", err)
	}
	if lcs.GammaRed, err = r.U32(); err != nil {
		return lcs, 0, fmt.Errorf("LogColorSpace.gammaRed: %w", err)
	}
	if lcs.GammaGreen, err = r.U32(); err != nil {
		return lcs, 0, fmt.Errorf("LogColorSpace.gammaGreen: %w", err)
	}
	if lcs.GammaBlue, err = r.U32(); err != nil {
		return lcs, 0, fmt.Errorf("LogColorSpace.gammaBlue: %w", err)
	}
	return lcs, 0, nil
}

// PolyPolygon is a set of polygons sharing one point list
// ([MS-WMF] 2.2.2.19 poly_polygon): a count, that many 16-bit per-polygon
// point counts, then the concatenated PointS values.
type PolyPolygon struct {
	Counts []uint16
	Points [][]PointS
}

// ReadPolyPolygon decodes a PolyPolygon: n, n counts, then Σcounts PointS
// values, partitioned back into per-polygon slices.
func ReadPolyPolygon(r *Reader) (PolyPolygon, error) {
	n, err := r.U16()
	if err != nil {
		return PolyPolygon{}, fmt.Errorf("PolyPolygon.numberOfPolygons: %w", err)
	}
	counts := make([]uint16, n)
	total := 0
	for i := range counts {
		c, err := r.U16()
		if err != nil {
			return PolyPolygon{}, fmt.Errorf("PolyPolygon.counts[%d]: %w", i, err)
		}
		counts[i] = c
		total += int(c)
	}
	flat := make([]PointS, total)
	for i := range flat {
		p, err := ReadPointS(r)
		if err != nil {
			return PolyPolygon{}, fmt.Errorf("PolyPolygon.points[%d]: %w", i, err)
		}
		flat[i] = p
	}
	points := make([][]PointS, n)
	idx := 0
	for i, c := range counts {
		points[i] = flat[idx : idx+int(c)]
		idx += int(c)
	}
	return PolyPolygon{Counts: counts, Points: points}, nil
}

// Scan is one run of a Region's scanline table ([MS-WMF] 2.2.2.22 scan):
// a count of (left,right) spans, their y-extent, and the spans themselves.
type Scan struct {
	Top, Bottom int16
	Spans       []RectL1D
}

// RectL1D is one horizontal span [Left, Right) within a Scan.
type RectL1D struct {
	Left, Right int16
}

// ReadScan decodes one Scan record: Count, Top, Bottom, then Count
// ScanLines pairs, mirroring the region scan-converted representation
// [MS-WMF] uses for RGN_DATA.
func ReadScan(r *Reader) (Scan, error) {
	count, err := r.U16()
	if err != nil {
		return Scan{}, fmt.Errorf("Scan.count: %w", err)
	}
	top, err := r.I16()
	if err != nil {
		return Scan{}, fmt.Errorf("Scan.top: %w", err)
	}
	bottom, err := r.I16()
	if err != nil {
		return Scan{}, fmt.Errorf("Scan.bottom: %w", err)
	}
	spans := make([]RectL1D, count)
	for i := range spans {
		left, err := r.I16()
		if err != nil {
			return Scan{}, fmt.Errorf("Scan.spans[%d].left: %w", i, err)
		}
		right, err := r.I16()
		if err != nil {
			return Scan{}, fmt.Errorf("Scan.spans[%d].right: %w", i, err)
		}
		spans[i] = RectL1D{Left: left, Right: right}
	}
	if _, err := r.U16(); err != nil { // count repeated as a sentinel
		return Scan{}, fmt.Errorf("Scan.countSentinel: %w", err)
	}
	return Scan{Top: top, Bottom: bottom, Spans: spans}, nil
}

// Region is a scan-converted clip/fill region: a bounding box plus the
// scanlines that make it up ([MS-WMF] 2.2.2.22, the CreateRegion payload).
type Region struct {
	Bounds    RectL
	ScanCount uint16
	MaxScans  uint16
	Scans     []Scan
}

// ReadRegion decodes a Region object payload.
func ReadRegion(r *Reader) (Region, error) {
	var reg Region
	var err error
	if _, err = r.U16(); err != nil { // Next, unused handle-chain field
		return reg, fmt.Errorf("Region.next: %w", err)
	}
	if _, err = r.U16(); err != nil { // ObjectType, constant
		return reg, fmt.Errorf("Region.objectType: %w", err)
	}
	if _, err = r.U32(); err != nil { // RegionSize in bytes
		return reg, fmt.Errorf("Region.regionSize: %w", err)
	}
	if reg.ScanCount, err = r.U16(); err != nil {
		return reg, fmt.Errorf("Region.scanCount: %w", err)
	}
	if reg.MaxScans, err = r.U16(); err != nil {
		return reg, fmt.Errorf("Region.maxScans: %w", err)
	}
	if reg.Bounds, err = ReadRectL(r); err != nil {
		return reg, fmt.Errorf("Region.bounds: %w", err)
	}
	reg.Scans = make([]Scan, reg.ScanCount)
	for i := range reg.Scans {
		s, err := ReadScan(r)
		if err != nil {
			return reg, fmt.Errorf("Region.scans[%d]: %w", i, err)
		}
		reg.Scans[i] = s
	}
	return reg, nil
}
