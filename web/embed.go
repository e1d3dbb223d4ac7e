package web

import (
	"embed"
	"io/fs"
)

// FS contains all embedded web assets.
// The patterns are relative to this file's directory (the 'web' directory).
//
//go:embed static
var FS embed.FS

// Static returns the assets rooted at the static directory, as served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		// The directory is embedded at build time; a failure here is a build defect.
		panic(err)
	}
	return sub
}
