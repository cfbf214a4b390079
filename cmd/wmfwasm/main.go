// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

//go:build js && wasm

// Command wmfwasm exposes the decoder/player pipeline to a browser host as
// a single global function, convertWMF(Uint8Array) -> string, for the demo
// page served by wmfserve.
package main

import (
	"bytes"
	"syscall/js"

	"github.com/wmfgo/wmf"
	"github.com/wmfgo/wmf/svgsink"
)

func main() {
	js.Global().Set("convertWMF", js.FuncOf(convertWMF))
	select {}
}

// convertWMF takes the metafile bytes as a Uint8Array and returns either the
// rendered SVG document as a string, or throws a JS Error with the decode
// failure's message.
func convertWMF(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		panic("convertWMF: expected exactly one Uint8Array argument")
	}

	input := args[0]
	data := make([]byte, input.Get("length").Int())
	js.CopyBytesToGo(data, input)

	var out bytes.Buffer
	if err := wmf.NewBytes(data, nil).Play(svgsink.New(&out)); err != nil {
		panic(err.Error())
	}
	return out.String()
}
