// Copyright 2026 The wmfgo Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Command wmfserve serves the wmfwasm demo page through assetfs.AssetFS,
// backed by the in-memory assets table instead of a static directory.
// index.html is served from that table; wasm_exec.js and main.wasm have no
// content in it and are answered as not found.
package main

import (
	"flag"
	"log"
	"net/http"

	assetfs "github.com/elazarl/go-bindata-assetfs"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	fs := &assetfs.AssetFS{
		Asset:     Asset,
		AssetDir:  AssetDir,
		AssetInfo: AssetInfo,
		Prefix:    "",
	}
	http.Handle("/", http.FileServer(fs))

	log.Printf("wmfserve listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
