// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/wmfgo/wmf/internal/log"
)

// DefaultMaxRecordCount caps how many records Frame will decode from one
// metafile when Options.MaxRecordCount is left zero. A hostile stream can
// declare millions of tiny records; this bounds the memory they can pin.
const DefaultMaxRecordCount = 0x10000

// Options configures a Decoder: every field defaults to the
// conservative/complete behavior when the caller passes nil.
type Options struct {
	// Logger receives decode-time anomalies (reserved records, repaired
	// reserved-field violations). An unrecognized escape code decodes to
	// EscapeRawRecord without a log entry, and an unrecognized record code
	// is a hard error. A nil Logger falls back to log.Default(), which only
	// surfaces errors.
	Logger *log.Helper

	// MaxRecordCount bounds the number of records Frame will decode.
	// Zero means DefaultMaxRecordCount.
	MaxRecordCount int

	// Strict turns the repair-and-warn fields (non-zero ColorRef.reserved,
	// the reserved SetRelabs record) into hard errors instead of logged
	// warnings.
	Strict bool
}

// Decoder owns a WMF byte source (mmap'd file or an in-memory slice) and
// produces a framed Metafile from it, via an mmap-backed Open/NewBytes
// split.
type Decoder struct {
	data mmap.MMap
	raw  []byte
	f    *os.File
	opts *Options

	// Warnings accumulates every repair-and-warn and reserved-record
	// anomaly observed across Decode/Play calls, in stream order.
	Warnings []string
}

// Open memory-maps the file at name read-only and returns a Decoder over
// it.
func Open(name string, opts *Options) (*Decoder, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmapping %s: %w", name, err)
	}
	return &Decoder{data: data, f: f, opts: normalizeOptions(opts)}, nil
}

// NewBytes returns a Decoder over an in-memory WMF stream, for callers
// that already have the bytes (an embedded asset, a network fetch, a
// WASM host buffer).
func NewBytes(data []byte, opts *Options) *Decoder {
	return &Decoder{raw: data, opts: normalizeOptions(opts)}
}

func normalizeOptions(opts *Options) *Options {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return opts
}

func (d *Decoder) bytes() []byte {
	if d.data != nil {
		return d.data
	}
	return d.raw
}

// Close unmaps and closes the underlying file, if Open opened one.
func (d *Decoder) Close() error {
	if d.data != nil {
		if err := d.data.Unmap(); err != nil {
			return err
		}
	}
	if d.f != nil {
		return d.f.Close()
	}
	return nil
}

// Decode frames the metafile without playing it back, for callers that
// only want the raw record stream (e.g. a `wmfdump` listing).
func (d *Decoder) Decode() (*Metafile, error) {
	mf, err := Frame(d.bytes(), d.opts)
	if mf != nil {
		d.Warnings = append(d.Warnings, mf.Warnings...)
	}
	return mf, err
}

// Play frames the metafile, then drives it against sink, the common case
// ("decode and render") rolled into one call.
func (d *Decoder) Play(sink Sink) error {
	mf, err := d.Decode()
	if err != nil {
		return err
	}
	p := NewPlayer(d.opts)
	err = p.Play(mf, sink)
	d.Warnings = append(d.Warnings, p.Warnings...)
	return err
}
