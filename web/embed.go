// Package web holds the HTML templates rendered by the page handlers.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates
var files embed.FS

// Templates is rooted at the templates directory, so "layouts/main.html"
// is addressed without a prefix.
func Templates() fs.FS {
	sub, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
