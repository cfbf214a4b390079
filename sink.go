// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

// Sink is the pluggable backend the Player drives. Implementations
// translate interpreted drawing operations into some
// concrete output — an SVG document, a rasterized bitmap, a display list.
// Every draw method receives the PDC snapshot active at the moment of the
// call, since WMF records never carry coordinates pre-mapped to device
// space themselves.
type Sink interface {
	// Begin is called once, after the metafile header has been parsed and
	// before the first record plays, with the device context the playback
	// starts from.
	Begin(header MetafileHeader, pdc PDC) error

	// End is called once, after the EOF record, and gives the sink a
	// chance to flush or finalize its output.
	End() error

	// Draw is called once per drawing or bitmap record, carrying the
	// decoded payload and the PDC state in effect when it ran.
	Draw(pdc PDC, payload RecordPayload) error

	// Escape is called once per META_ESCAPE record. Most sinks ignore
	// printer-driver escapes entirely; a few (EPS passthrough, clip-to-
	// path) are meaningful to a vector output format.
	Escape(pdc PDC, escape EscapeRecord) error
}

// NopSink implements Sink by discarding every call; useful for exercising
// the decoder/player pipeline (fuzzing, benchmarking) without a real
// rendering backend.
type NopSink struct{}

func (NopSink) Begin(MetafileHeader, PDC) error { return nil }
func (NopSink) End() error                      { return nil }
func (NopSink) Draw(PDC, RecordPayload) error   { return nil }
func (NopSink) Escape(PDC, EscapeRecord) error  { return nil }

// isDrawingPayload reports whether payload is one of the drawing/bitmap
// record variants the Player forwards to Sink.Draw, as opposed to a
// control/state/object record that only mutates the PDC or Object Table.
func isDrawingPayload(payload RecordPayload) bool {
	switch payload.(type) {
	case ArcRecord, ChordRecord, EllipseRecord, ExtFloodFillRecord, ExtTextOutRecord,
		FillRegionRecord, FloodFillRecord, FrameRegionRecord, InvertRegionRecord,
		LineToRecord, PaintRegionRecord, PatBltRecord, PieRecord, PolylineRecord,
		PolygonRecord, PolyPolygonRecord, RectangleRecord, RoundRectRecord,
		SetPixelRecord, TextOutRecord,
		BitBltRecord, DIBBitBltRecord, StretchBltRecord, DIBStretchBltRecord,
		SetDIBToDevRecord, StretchDIBRecord:
		return true
	default:
		return false
	}
}
