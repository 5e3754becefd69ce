// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package main

import (
	"io/fs"
	"testing/fstest"

	"github.com/gviegas/folio/internal/sample"
)

// sampleFS returns a file system that holds the sample
// asset under name.
func sampleFS(name string) fs.FS {
	return fstest.MapFS{name: {Data: sample.GLB(), Mode: 0o444}}
}
