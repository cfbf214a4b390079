// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// DecodeUTF16LE decodes a little-endian UTF-16 byte run (V5 color-space
// profile names are the only place the wire format carries UTF-16). The
// input must have even length; an odd length surfaces as
// ErrUnexpectedPattern.
func DecodeUTF16LE(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("utf-16le payload has odd length %d: %w", len(b), ErrUnexpectedPattern)
	}
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			b = b[:i]
			break
		}
	}
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	s, err := decoder.Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decoding utf-16le: %w", err)
	}
	return string(s), nil
}

// DecodeANSI1252 decodes an ANSI (Windows code-page 1252) byte run, used for
// Font.FaceName and the STARTDOC escape's DocName. Decoding stops at the
// first NUL.
func DecodeANSI1252(b []byte) (string, error) {
	if n := bytes.IndexByte(b, 0); n >= 0 {
		b = b[:n]
	}
	s, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decoding windows-1252: %w", err)
	}
	return string(s), nil
}
