// Package levels ships the built-in levels and watches level directories
// for edits.
package levels

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed *.csv *.tmx *.yaml *.tengo
var files embed.FS

// Embedded returns the levels compiled into the binary.
func Embedded() fs.FS {
	return files
}

// Source returns dir on disk when it exists, otherwise the embedded levels.
func Source(dir string) fs.FS {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return os.DirFS(dir)
		}
	}
	return files
}
