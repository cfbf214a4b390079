// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

// Fuzz exercises the full decode+playback pipeline against a NopSink, the
// go-fuzz entry point convention (func Fuzz([]byte) int).
func Fuzz(data []byte) int {
	d := NewBytes(data, nil)
	if err := d.Play(NopSink{}); err != nil {
		return 0
	}
	return 1
}
