// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"
)

// asset is one in-memory file served by AssetFS. Only index.html carries
// content; the wasm_exec.js and main.wasm entries are listed with nil data,
// which Asset and AssetInfo report as os.ErrNotExist.
type asset struct {
	data []byte
}

var assets = map[string]asset{
	"index.html":   {data: []byte(indexHTML)},
	"wasm_exec.js": {data: nil}, // no content in this table
	"main.wasm":    {data: nil}, // no content in this table
}

// Asset, AssetDir and AssetInfo give assetfs.AssetFS the three functions it
// expects from a go-bindata-generated bundle, backed here by the assets
// table instead of generated code.
func Asset(path string) ([]byte, error) {
	a, ok := assets[path]
	if !ok || a.data == nil {
		return nil, fmt.Errorf("asset %s: %w", path, os.ErrNotExist)
	}
	return a.data, nil
}

func AssetDir(path string) ([]string, error) {
	if path != "" {
		return nil, fmt.Errorf("asset dir %s: %w", path, os.ErrNotExist)
	}
	names := make([]string, 0, len(assets))
	for name := range assets {
		names = append(names, name)
	}
	return names, nil
}

func AssetInfo(path string) (os.FileInfo, error) {
	a, ok := assets[path]
	if !ok || a.data == nil {
		return nil, fmt.Errorf("asset %s: %w", path, os.ErrNotExist)
	}
	return assetInfo{name: path, size: int64(len(a.data))}, nil
}

type assetInfo struct {
	name string
	size int64
}

func (i assetInfo) Name() string       { return i.name }
func (i assetInfo) Size() int64        { return i.size }
func (i assetInfo) Mode() os.FileMode  { return 0o444 }
func (i assetInfo) ModTime() time.Time { return time.Time{} }
func (i assetInfo) IsDir() bool        { return false }
func (i assetInfo) Sys() interface{}   { return nil }

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>wmfgo demo</title></head>
<body>
<h1>WMF to SVG</h1>
<input type="file" id="file"/>
<div id="out"></div>
<script src="wasm_exec.js"></script>
<script>
const go = new Go();
WebAssembly.instantiateStreaming(fetch("main.wasm"), go.importObject).then((result) => {
	go.run(result.instance);
	document.getElementById("file").addEventListener("change", (ev) => {
		const reader = new FileReader();
		reader.onload = () => {
			const bytes = new Uint8Array(reader.result);
			document.getElementById("out").innerHTML = convertWMF(bytes);
		};
		reader.readAsArrayBuffer(ev.target.files[0]);
	});
});
</script>
</body>
</html>
`
