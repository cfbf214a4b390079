// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import "fmt"

// enumLookup validates raw against names and returns it unchanged, the way
// ntheader.go's Subsystem/Machine String() maps validate membership — here
// generalized into one helper used by every enumerant type below, since the
// spec names ~20 of them with identical parse shape.
func enumLookup[T comparable](kind string, names map[T]string, raw T) (T, error) {
	if _, ok := names[raw]; !ok {
		return raw, fmt.Errorf("%s: value %v: %w", kind, raw, ErrUnexpectedEnumValue)
	}
	return raw, nil
}

func enumString[T comparable](names map[T]string, v T) string {
	if s, ok := names[v]; ok {
		return s
	}
	return "Unknown"
}

// MixMode controls how background color blends with foreground draws.
type MixMode uint16

// MixMode enumerants ([MS-WMF] 2.1.1.31).
const (
	MixModeTransparent MixMode = 1
	MixModeOpaque      MixMode = 2
)

var mixModeNames = map[MixMode]string{
	MixModeTransparent: "TRANSPARENT",
	MixModeOpaque:      "OPAQUE",
}

func (v MixMode) String() string { return enumString(mixModeNames, v) }

// ParseMixMode validates raw against the MixMode enumerants.
func ParseMixMode(raw uint16) (MixMode, error) {
	return enumLookup("MixMode", mixModeNames, MixMode(raw))
}

// MapMode selects the unit-mapping logical-to-device transform.
type MapMode uint16

// MapMode enumerants ([MS-WMF] 2.1.1.22).
const (
	MapModeText      MapMode = 1
	MapModeLoMetric  MapMode = 2
	MapModeHiMetric  MapMode = 3
	MapModeLoEnglish MapMode = 4
	MapModeHiEnglish MapMode = 5
	MapModeTwips     MapMode = 6
	MapModeIsotropic MapMode = 7
	MapModeAnisotropic MapMode = 8
)

var mapModeNames = map[MapMode]string{
	MapModeText:        "MM_TEXT",
	MapModeLoMetric:    "MM_LOMETRIC",
	MapModeHiMetric:    "MM_HIMETRIC",
	MapModeLoEnglish:   "MM_LOENGLISH",
	MapModeHiEnglish:   "MM_HIENGLISH",
	MapModeTwips:       "MM_TWIPS",
	MapModeIsotropic:   "MM_ISOTROPIC",
	MapModeAnisotropic: "MM_ANISOTROPIC",
}

func (v MapMode) String() string { return enumString(mapModeNames, v) }

// ParseMapMode validates raw against the MapMode enumerants.
func ParseMapMode(raw uint16) (MapMode, error) {
	return enumLookup("MapMode", mapModeNames, MapMode(raw))
}

// BinaryRasterOperation is the ROP2 code SetROP2 installs and LineTo/shape
// drawing consults.
type BinaryRasterOperation uint16

// BinaryRasterOperation enumerants ([MS-WMF] 2.1.1.2), R2_BLACK..R2_WHITE.
const (
	R2Black       BinaryRasterOperation = 1
	R2NotMergePen BinaryRasterOperation = 2
	R2MaskNotPen  BinaryRasterOperation = 3
	R2NotCopyPen  BinaryRasterOperation = 4
	R2MaskPenNot  BinaryRasterOperation = 5
	R2Not         BinaryRasterOperation = 6
	R2XorPen      BinaryRasterOperation = 7
	R2NotMaskPen  BinaryRasterOperation = 8
	R2MaskPen     BinaryRasterOperation = 9
	R2NotXorPen   BinaryRasterOperation = 10
	R2Nop         BinaryRasterOperation = 11
	R2MergeNotPen BinaryRasterOperation = 12
	R2CopyPen     BinaryRasterOperation = 13
	R2MergePenNot BinaryRasterOperation = 14
	R2MergePen    BinaryRasterOperation = 15
	R2White       BinaryRasterOperation = 16
)

var binaryRasterOperationNames = map[BinaryRasterOperation]string{
	R2Black: "R2_BLACK", R2NotMergePen: "R2_NOTMERGEPEN", R2MaskNotPen: "R2_MASKNOTPEN",
	R2NotCopyPen: "R2_NOTCOPYPEN", R2MaskPenNot: "R2_MASKPENNOT", R2Not: "R2_NOT",
	R2XorPen: "R2_XORPEN", R2NotMaskPen: "R2_NOTMASKPEN", R2MaskPen: "R2_MASKPEN",
	R2NotXorPen: "R2_NOTXORPEN", R2Nop: "R2_NOP", R2MergeNotPen: "R2_MERGENOTPEN",
	R2CopyPen: "R2_COPYPEN", R2MergePenNot: "R2_MERGEPENNOT", R2MergePen: "R2_MERGEPEN",
	R2White: "R2_WHITE",
}

func (v BinaryRasterOperation) String() string { return enumString(binaryRasterOperationNames, v) }

// ParseBinaryRasterOperation validates raw against the ROP2 enumerants.
func ParseBinaryRasterOperation(raw uint16) (BinaryRasterOperation, error) {
	return enumLookup("BinaryRasterOperation", binaryRasterOperationNames, BinaryRasterOperation(raw))
}

// BrushStyle selects how a Brush fills.
type BrushStyle uint16

// BrushStyle enumerants ([MS-WMF] 2.1.1.4), the subset WMF brushes use.
const (
	BrushSolid      BrushStyle = 0
	BrushNull       BrushStyle = 1
	BrushHatched    BrushStyle = 2
	BrushPattern    BrushStyle = 3
	BrushIndexed    BrushStyle = 4
	BrushDIBPattern BrushStyle = 5
	BrushDIBPatternPT BrushStyle = 6
	BrushPattern8x8 BrushStyle = 7
	BrushDIBPattern8x8 BrushStyle = 8
)

var brushStyleNames = map[BrushStyle]string{
	BrushSolid: "BS_SOLID", BrushNull: "BS_NULL", BrushHatched: "BS_HATCHED",
	BrushPattern: "BS_PATTERN", BrushIndexed: "BS_INDEXED", BrushDIBPattern: "BS_DIBPATTERN",
	BrushDIBPatternPT: "BS_DIBPATTERNPT", BrushPattern8x8: "BS_PATTERN8X8",
	BrushDIBPattern8x8: "BS_DIBPATTERN8X8",
}

func (v BrushStyle) String() string { return enumString(brushStyleNames, v) }

// ParseBrushStyle validates raw against the BrushStyle enumerants.
func ParseBrushStyle(raw uint16) (BrushStyle, error) {
	return enumLookup("BrushStyle", brushStyleNames, BrushStyle(raw))
}

// HatchStyle selects the hatch pattern of a BS_HATCHED brush.
type HatchStyle uint16

// HatchStyle enumerants ([MS-WMF] 2.1.1.13).
const (
	HatchHorizontal HatchStyle = 0
	HatchVertical   HatchStyle = 1
	HatchFDiagonal  HatchStyle = 2
	HatchBDiagonal  HatchStyle = 3
	HatchCross      HatchStyle = 4
	HatchDiagCross  HatchStyle = 5
)

var hatchStyleNames = map[HatchStyle]string{
	HatchHorizontal: "HS_HORIZONTAL", HatchVertical: "HS_VERTICAL", HatchFDiagonal: "HS_FDIAGONAL",
	HatchBDiagonal: "HS_BDIAGONAL", HatchCross: "HS_CROSS", HatchDiagCross: "HS_DIAGCROSS",
}

func (v HatchStyle) String() string { return enumString(hatchStyleNames, v) }

// ParseHatchStyle validates raw against the HatchStyle enumerants.
func ParseHatchStyle(raw uint16) (HatchStyle, error) {
	return enumLookup("HatchStyle", hatchStyleNames, HatchStyle(raw))
}

// PenStyleKind is the base line style, the low nibble of PenStyle.
type PenStyleKind uint16

// PenStyleKind enumerants ([MS-WMF] 2.1.1.33), PS_COSMETIC line styles.
const (
	PenSolid      PenStyleKind = 0
	PenDash       PenStyleKind = 1
	PenDot        PenStyleKind = 2
	PenDashDot    PenStyleKind = 3
	PenDashDotDot PenStyleKind = 4
	PenNull       PenStyleKind = 5
	PenInsideFrame PenStyleKind = 6
	PenUserStyle  PenStyleKind = 7
	PenAlternate  PenStyleKind = 8
)

var penStyleKindNames = map[PenStyleKind]string{
	PenSolid: "PS_SOLID", PenDash: "PS_DASH", PenDot: "PS_DOT", PenDashDot: "PS_DASHDOT",
	PenDashDotDot: "PS_DASHDOTDOT", PenNull: "PS_NULL", PenInsideFrame: "PS_INSIDEFRAME",
	PenUserStyle: "PS_USERSTYLE", PenAlternate: "PS_ALTERNATE",
}

func (v PenStyleKind) String() string { return enumString(penStyleKindNames, v) }

// PenStyle is the full 16-bit PenStyle field: a validated PenStyleKind in
// the low nibble plus raw endcap/join/geometry bits above it, split the way
// PitchAndFamily splits FamilyFont/PitchFont across its own nibble boundary.
type PenStyle struct {
	Kind  PenStyleKind
	Raw   uint16
	Flags uint16 // bits above the low nibble: end cap, line join, cosmetic/geometric
}

// ParsePenStyle validates the Kind nibble and preserves the rest verbatim.
func ParsePenStyle(raw uint16) (PenStyle, error) {
	kind, err := enumLookup("PenStyleKind", penStyleKindNames, PenStyleKind(raw&0x000F))
	if err != nil {
		return PenStyle{}, err
	}
	return PenStyle{Kind: kind, Raw: raw, Flags: raw &^ 0x000F}, nil
}

// PolyFillMode selects even-odd vs winding polygon fill.
type PolyFillMode uint16

// PolyFillMode enumerants ([MS-WMF] 2.1.1.27).
const (
	PolyFillAlternate PolyFillMode = 1
	PolyFillWinding   PolyFillMode = 2
)

var polyFillModeNames = map[PolyFillMode]string{
	PolyFillAlternate: "ALTERNATE", PolyFillWinding: "WINDING",
}

func (v PolyFillMode) String() string { return enumString(polyFillModeNames, v) }

// ParsePolyFillMode validates raw against the PolyFillMode enumerants.
func ParsePolyFillMode(raw uint16) (PolyFillMode, error) {
	return enumLookup("PolyFillMode", polyFillModeNames, PolyFillMode(raw))
}

// StretchMode selects how StretchBlt-family records compress rows/columns.
type StretchMode uint16

// StretchMode enumerants ([MS-WMF] 2.1.1.40).
const (
	StretchBlackOnWhite StretchMode = 1
	StretchWhiteOnBlack StretchMode = 2
	StretchColorOnColor StretchMode = 3
	StretchHalftone     StretchMode = 4
)

var stretchModeNames = map[StretchMode]string{
	StretchBlackOnWhite: "BLACKONWHITE", StretchWhiteOnBlack: "WHITEONBLACK",
	StretchColorOnColor: "COLORONCOLOR", StretchHalftone: "HALFTONE",
}

func (v StretchMode) String() string { return enumString(stretchModeNames, v) }

// ParseStretchMode validates raw against the StretchMode enumerants.
func ParseStretchMode(raw uint16) (StretchMode, error) {
	return enumLookup("StretchMode", stretchModeNames, StretchMode(raw))
}

// FontQuality selects font rendering fidelity.
type FontQuality uint8

// FontQuality enumerants ([MS-WMF] 2.1.1.10).
const (
	QualityDefault       FontQuality = 0
	QualityDraft         FontQuality = 1
	QualityProof         FontQuality = 2
	QualityNonAntialiased FontQuality = 3
	QualityAntialiased   FontQuality = 4
	QualityClearType     FontQuality = 5
)

var fontQualityNames = map[FontQuality]string{
	QualityDefault: "DEFAULT_QUALITY", QualityDraft: "DRAFT_QUALITY", QualityProof: "PROOF_QUALITY",
	QualityNonAntialiased: "NONANTIALIASED_QUALITY", QualityAntialiased: "ANTIALIASED_QUALITY",
	QualityClearType: "CLEARTYPE_QUALITY",
}

func (v FontQuality) String() string { return enumString(fontQualityNames, v) }

// ParseFontQuality validates raw against the FontQuality enumerants.
func ParseFontQuality(raw uint8) (FontQuality, error) {
	return enumLookup("FontQuality", fontQualityNames, FontQuality(raw))
}

// OutPrecision hints the font mapper's glyph-shape fidelity.
type OutPrecision uint8

// OutPrecision enumerants ([MS-WMF] 2.1.1.25).
const (
	OutDefaultPrecis  OutPrecision = 0
	OutStringPrecis   OutPrecision = 1
	OutCharacterPrecis OutPrecision = 2
	OutStrokePrecis   OutPrecision = 3
	OutTTPrecis       OutPrecision = 4
	OutDevicePrecis   OutPrecision = 5
	OutRasterPrecis   OutPrecision = 6
	OutTTOnlyPrecis   OutPrecision = 7
	OutOutlinePrecis  OutPrecision = 8
	OutScreenOutlinePrecis OutPrecision = 9
	OutPSOnlyPrecis   OutPrecision = 10
)

var outPrecisionNames = map[OutPrecision]string{
	OutDefaultPrecis: "OUT_DEFAULT_PRECIS", OutStringPrecis: "OUT_STRING_PRECIS",
	OutCharacterPrecis: "OUT_CHARACTER_PRECIS", OutStrokePrecis: "OUT_STROKE_PRECIS",
	OutTTPrecis: "OUT_TT_PRECIS", OutDevicePrecis: "OUT_DEVICE_PRECIS",
	OutRasterPrecis: "OUT_RASTER_PRECIS", OutTTOnlyPrecis: "OUT_TT_ONLY_PRECIS",
	OutOutlinePrecis: "OUT_OUTLINE_PRECIS", OutScreenOutlinePrecis: "OUT_SCREEN_OUTLINE_PRECIS",
	OutPSOnlyPrecis: "OUT_PS_ONLY_PRECIS",
}

func (v OutPrecision) String() string { return enumString(outPrecisionNames, v) }

// ParseOutPrecision validates raw against the OutPrecision enumerants.
func ParseOutPrecision(raw uint8) (OutPrecision, error) {
	return enumLookup("OutPrecision", outPrecisionNames, OutPrecision(raw))
}

// CharacterSet selects the code page a Font's glyphs are drawn from.
type CharacterSet uint8

// CharacterSet enumerants ([MS-WMF] 2.1.1.5), the common subset.
const (
	CharsetAnsi       CharacterSet = 0
	CharsetDefault    CharacterSet = 1
	CharsetSymbol     CharacterSet = 2
	CharsetMac        CharacterSet = 77
	CharsetShiftJIS   CharacterSet = 128
	CharsetHangul     CharacterSet = 129
	CharsetJohab      CharacterSet = 130
	CharsetGB2312     CharacterSet = 134
	CharsetChineseBig5 CharacterSet = 136
	CharsetGreek      CharacterSet = 161
	CharsetTurkish    CharacterSet = 162
	CharsetVietnamese CharacterSet = 163
	CharsetHebrew     CharacterSet = 177
	CharsetArabic     CharacterSet = 178
	CharsetBaltic     CharacterSet = 186
	CharsetRussian    CharacterSet = 204
	CharsetThai       CharacterSet = 222
	CharsetEastEurope CharacterSet = 238
	CharsetOEM        CharacterSet = 255
)

var characterSetNames = map[CharacterSet]string{
	CharsetAnsi: "ANSI_CHARSET", CharsetDefault: "DEFAULT_CHARSET", CharsetSymbol: "SYMBOL_CHARSET",
	CharsetMac: "MAC_CHARSET", CharsetShiftJIS: "SHIFTJIS_CHARSET", CharsetHangul: "HANGUL_CHARSET",
	CharsetJohab: "JOHAB_CHARSET", CharsetGB2312: "GB2312_CHARSET", CharsetChineseBig5: "CHINESEBIG5_CHARSET",
	CharsetGreek: "GREEK_CHARSET", CharsetTurkish: "TURKISH_CHARSET", CharsetVietnamese: "VIETNAMESE_CHARSET",
	CharsetHebrew: "HEBREW_CHARSET", CharsetArabic: "ARABIC_CHARSET", CharsetBaltic: "BALTIC_CHARSET",
	CharsetRussian: "RUSSIAN_CHARSET", CharsetThai: "THAI_CHARSET", CharsetEastEurope: "EASTEUROPE_CHARSET",
	CharsetOEM: "OEM_CHARSET",
}

func (v CharacterSet) String() string { return enumString(characterSetNames, v) }

// ParseCharacterSet validates raw against the CharacterSet enumerants.
func ParseCharacterSet(raw uint8) (CharacterSet, error) {
	return enumLookup("CharacterSet", characterSetNames, CharacterSet(raw))
}

// FamilyFont is the top 4 bits of PitchAndFamily.
type FamilyFont uint8

// FamilyFont enumerants ([MS-WMF] 2.1.1.9).
const (
	FamilyDontCare   FamilyFont = 0
	FamilyRoman      FamilyFont = 1
	FamilySwiss      FamilyFont = 2
	FamilyModern     FamilyFont = 3
	FamilyScript     FamilyFont = 4
	FamilyDecorative FamilyFont = 5
)

var familyFontNames = map[FamilyFont]string{
	FamilyDontCare: "FF_DONTCARE", FamilyRoman: "FF_ROMAN", FamilySwiss: "FF_SWISS",
	FamilyModern: "FF_MODERN", FamilyScript: "FF_SCRIPT", FamilyDecorative: "FF_DECORATIVE",
}

func (v FamilyFont) String() string { return enumString(familyFontNames, v) }

// ParseFamilyFont validates raw against the FamilyFont enumerants.
func ParseFamilyFont(raw uint8) (FamilyFont, error) {
	return enumLookup("FamilyFont", familyFontNames, FamilyFont(raw))
}

// PitchFont is the bottom 2 bits of PitchAndFamily.
type PitchFont uint8

// PitchFont enumerants ([MS-WMF] 2.1.1.32).
const (
	PitchDefault  PitchFont = 0
	PitchFixed    PitchFont = 1
	PitchVariable PitchFont = 2
)

var pitchFontNames = map[PitchFont]string{
	PitchDefault: "DEFAULT_PITCH", PitchFixed: "FIXED_PITCH", PitchVariable: "VARIABLE_PITCH",
}

func (v PitchFont) String() string { return enumString(pitchFontNames, v) }

// ParsePitchFont validates raw against the PitchFont enumerants.
func ParsePitchFont(raw uint8) (PitchFont, error) {
	return enumLookup("PitchFont", pitchFontNames, PitchFont(raw))
}

// PaletteEntryFlag marks how a PaletteEntry participates in animation.
type PaletteEntryFlag uint8

// PaletteEntryFlag enumerants ([MS-WMF] 2.1.1.26); 0x00 (none) is also
// valid.
const (
	PaletteEntryNone      PaletteEntryFlag = 0x00
	PaletteEntryExplicit  PaletteEntryFlag = 0x02
	PaletteEntryNoCollapse PaletteEntryFlag = 0x04
)

var paletteEntryFlagNames = map[PaletteEntryFlag]string{
	PaletteEntryNone: "NONE", PaletteEntryExplicit: "PC_EXPLICIT", PaletteEntryNoCollapse: "PC_NOCOLLAPSE",
}

func (v PaletteEntryFlag) String() string { return enumString(paletteEntryFlagNames, v) }

// ParsePaletteEntryFlag validates raw against {0x00} ∪ PaletteEntryFlag.
func ParsePaletteEntryFlag(raw uint8) (PaletteEntryFlag, error) {
	return enumLookup("PaletteEntryFlag", paletteEntryFlagNames, PaletteEntryFlag(raw))
}

// LogicalColorSpace names the color space of a LogColorSpace structure.
type LogicalColorSpace uint32

// LogicalColorSpace enumerants ([MS-WMF] 2.1.1.18).
const (
	ColorSpaceCalibratedRGB LogicalColorSpace = 0x00000000
	ColorSpacesRGB          LogicalColorSpace = 0x73524742
	ColorSpaceWindowsColorSpace LogicalColorSpace = 0x57696E20
)

var logicalColorSpaceNames = map[LogicalColorSpace]string{
	ColorSpaceCalibratedRGB: "LCS_CALIBRATED_RGB", ColorSpacesRGB: "LCS_sRGB",
	ColorSpaceWindowsColorSpace: "LCS_WINDOWS_COLOR_SPACE",
}

func (v LogicalColorSpace) String() string { return enumString(logicalColorSpaceNames, v) }

// ParseLogicalColorSpace validates raw against the LogicalColorSpace and
// LogicalColorSpaceV5 enumerants (the V5 structure reuses the same values).
func ParseLogicalColorSpace(raw uint32) (LogicalColorSpace, error) {
	return enumLookup("LogicalColorSpace", logicalColorSpaceNames, LogicalColorSpace(raw))
}

// GamutMappingIntent selects the rendering intent of a V5 color profile.
type GamutMappingIntent uint32

// GamutMappingIntent enumerants ([MS-WMF] 2.1.1.11).
const (
	IntentAbsColorimetric GamutMappingIntent = 0x00000008
	IntentBusiness        GamutMappingIntent = 0x00000001
	IntentGraphics        GamutMappingIntent = 0x00000002
	IntentImages          GamutMappingIntent = 0x00000004
)

var gamutMappingIntentNames = map[GamutMappingIntent]string{
	IntentAbsColorimetric: "LCS_GM_ABS_COLORIMETRIC", IntentBusiness: "LCS_GM_BUSINESS",
	IntentGraphics: "LCS_GM_GRAPHICS", IntentImages: "LCS_GM_IMAGES",
}

func (v GamutMappingIntent) String() string { return enumString(gamutMappingIntentNames, v) }

// ParseGamutMappingIntent validates raw against the GamutMappingIntent enumerants.
func ParseGamutMappingIntent(raw uint32) (GamutMappingIntent, error) {
	return enumLookup("GamutMappingIntent", gamutMappingIntentNames, GamutMappingIntent(raw))
}

// MetafileType distinguishes memory- from disk-resident metafiles.
type MetafileType uint16

// MetafileType enumerants ([MS-WMF] 2.1.1.23).
const (
	MetafileTypeMemory MetafileType = 1
	MetafileTypeDisk   MetafileType = 2
)

var metafileTypeNames = map[MetafileType]string{
	MetafileTypeMemory: "MEMORYMETAFILE", MetafileTypeDisk: "DISKMETAFILE",
}

func (v MetafileType) String() string { return enumString(metafileTypeNames, v) }

// ParseMetafileType validates raw against the MetafileType enumerants.
func ParseMetafileType(raw uint16) (MetafileType, error) {
	return enumLookup("MetafileType", metafileTypeNames, MetafileType(raw))
}

// MetafileVersion is the WMF format revision.
type MetafileVersion uint16

// MetafileVersion enumerants ([MS-WMF] 2.1.1.24).
const (
	MetafileVersion1 MetafileVersion = 0x0100
	MetafileVersion3 MetafileVersion = 0x0300
)

var metafileVersionNames = map[MetafileVersion]string{
	MetafileVersion1: "METAVERSION100", MetafileVersion3: "METAVERSION300",
}

func (v MetafileVersion) String() string { return enumString(metafileVersionNames, v) }

// ParseMetafileVersion validates raw against the MetafileVersion enumerants.
func ParseMetafileVersion(raw uint16) (MetafileVersion, error) {
	return enumLookup("MetafileVersion", metafileVersionNames, MetafileVersion(raw))
}

// FloodFillMode selects ExtFloodFill's match rule.
type FloodFillMode uint32

// FloodFillMode enumerants ([MS-WMF] 2.1.1.12).
const (
	FloodFillBorder  FloodFillMode = 0
	FloodFillSurface FloodFillMode = 1
)

var floodFillModeNames = map[FloodFillMode]string{
	FloodFillBorder: "FLOODFILLBORDER", FloodFillSurface: "FLOODFILLSURFACE",
}

func (v FloodFillMode) String() string { return enumString(floodFillModeNames, v) }

// ParseFloodFillMode validates raw against the FloodFillMode enumerants.
func ParseFloodFillMode(raw uint32) (FloodFillMode, error) {
	return enumLookup("FloodFillMode", floodFillModeNames, FloodFillMode(raw))
}

// ColorUsage tells a DIB record whether its color table holds RGBQuads or
// palette indices.
type ColorUsage uint32

// ColorUsage enumerants ([MS-WMF] 2.1.1.7).
const (
	ColorUsageRGB           ColorUsage = 0x00
	ColorUsagePaletteColors ColorUsage = 0x01
)

var colorUsageNames = map[ColorUsage]string{
	ColorUsageRGB: "DIB_RGB_COLORS", ColorUsagePaletteColors: "DIB_PAL_COLORS",
}

func (v ColorUsage) String() string { return enumString(colorUsageNames, v) }

// ParseColorUsage validates raw against the ColorUsage enumerants.
func ParseColorUsage(raw uint32) (ColorUsage, error) {
	return enumLookup("ColorUsage", colorUsageNames, ColorUsage(raw))
}

// Layout controls left-to-right vs right-to-left coordinate layout.
type Layout uint32

// Layout enumerants ([MS-WMF] 2.1.1.19).
const (
	LayoutLTR                        Layout = 0x00000000
	LayoutRTL                        Layout = 0x00000001
	LayoutBitmapOrientationPreserved Layout = 0x00000008
)

var layoutNames = map[Layout]string{
	LayoutLTR: "LAYOUT_LTR", LayoutRTL: "LAYOUT_RTL",
	LayoutBitmapOrientationPreserved: "LAYOUT_BITMAPORIENTATIONPRESERVED",
}

func (v Layout) String() string { return enumString(layoutNames, v) }

// ParseLayout validates raw against the Layout enumerants.
func ParseLayout(raw uint32) (Layout, error) {
	return enumLookup("Layout", layoutNames, Layout(raw))
}

// PostScriptCap is a SETLINECAP escape payload value.
type PostScriptCap int32

// PostScriptCap enumerants ([MS-WMF] 2.1.1.1).
const (
	PostScriptCapNotSet PostScriptCap = -1
	PostScriptCapFlat   PostScriptCap = 0
	PostScriptCapRound  PostScriptCap = 1
	PostScriptCapSquare PostScriptCap = 2
)

var postScriptCapNames = map[PostScriptCap]string{
	PostScriptCapNotSet: "NOTSET", PostScriptCapFlat: "FLAT", PostScriptCapRound: "ROUND",
	PostScriptCapSquare: "SQUARE",
}

func (v PostScriptCap) String() string { return enumString(postScriptCapNames, v) }

// ParsePostScriptCap validates raw against the PostScriptCap enumerants.
func ParsePostScriptCap(raw int32) (PostScriptCap, error) {
	return enumLookup("PostScriptCap", postScriptCapNames, PostScriptCap(raw))
}

// PostScriptJoin is a SETLINEJOIN escape payload value.
type PostScriptJoin int32

// PostScriptJoin enumerants ([MS-WMF] 2.1.1.20).
const (
	PostScriptJoinNotSet PostScriptJoin = -1
	PostScriptJoinMiter  PostScriptJoin = 0
	PostScriptJoinRound  PostScriptJoin = 1
	PostScriptJoinBevel  PostScriptJoin = 2
)

var postScriptJoinNames = map[PostScriptJoin]string{
	PostScriptJoinNotSet: "NOTSET", PostScriptJoinMiter: "MITER", PostScriptJoinRound: "ROUND",
	PostScriptJoinBevel: "BEVEL",
}

func (v PostScriptJoin) String() string { return enumString(postScriptJoinNames, v) }

// ParsePostScriptJoin validates raw against the PostScriptJoin enumerants.
func ParsePostScriptJoin(raw int32) (PostScriptJoin, error) {
	return enumLookup("PostScriptJoin", postScriptJoinNames, PostScriptJoin(raw))
}

// PostScriptFeatureSetting selects the QUERYESCSUPPORT/GET_PS_FEATURESETTING
// feature family.
type PostScriptFeatureSetting int32

// PostScriptFeatureSetting enumerants ([MS-WMF] 2.1.1.21).
const (
	FeatureSettingNup         PostScriptFeatureSetting = 0
	FeatureSettingOutput      PostScriptFeatureSetting = 1
	FeatureSettingPSLevel     PostScriptFeatureSetting = 2
	FeatureSettingCustomPaper PostScriptFeatureSetting = 3
	FeatureSettingMirror      PostScriptFeatureSetting = 4
	FeatureSettingNegative    PostScriptFeatureSetting = 5
	FeatureSettingProtocol    PostScriptFeatureSetting = 6
)

var postScriptFeatureSettingNames = map[PostScriptFeatureSetting]string{
	FeatureSettingNup: "FEATURESETTING_NUP", FeatureSettingOutput: "FEATURESETTING_OUTPUT",
	FeatureSettingPSLevel: "FEATURESETTING_PSLEVEL", FeatureSettingCustomPaper: "FEATURESETTING_CUSTPAPER",
	FeatureSettingMirror: "FEATURESETTING_MIRROR", FeatureSettingNegative: "FEATURESETTING_NEGATIVE",
	FeatureSettingProtocol: "FEATURESETTING_PROTOCOL",
}

func (v PostScriptFeatureSetting) String() string {
	return enumString(postScriptFeatureSettingNames, v)
}

// ParsePostScriptFeatureSetting validates raw against the
// PostScriptFeatureSetting enumerants.
func ParsePostScriptFeatureSetting(raw int32) (PostScriptFeatureSetting, error) {
	return enumLookup("PostScriptFeatureSetting", postScriptFeatureSettingNames, PostScriptFeatureSetting(raw))
}

// PostScriptClipping is an ENCAPSULATED_POSTSCRIPT payload flag.
type PostScriptClipping int32

// PostScriptClipping enumerants ([MS-WMF] 2.1.1.3).
const (
	PostScriptClippingNone         PostScriptClipping = 0
	PostScriptClippingEncapsulated PostScriptClipping = 1
)

var postScriptClippingNames = map[PostScriptClipping]string{
	PostScriptClippingNone: "NO_CLIPPING", PostScriptClippingEncapsulated: "CLIPPING",
}

func (v PostScriptClipping) String() string { return enumString(postScriptClippingNames, v) }

// ParsePostScriptClipping validates raw against the PostScriptClipping enumerants.
func ParsePostScriptClipping(raw int32) (PostScriptClipping, error) {
	return enumLookup("PostScriptClipping", postScriptClippingNames, PostScriptClipping(raw))
}
