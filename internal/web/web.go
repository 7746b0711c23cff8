// Package web embeds the page that drives the resize API from a
// browser: multi-file upload, a scale slider and per-method download
// links.
package web

import (
	"embed"
	"html/template"
	"io"
)

//go:embed index.html
var fs embed.FS

var page = template.Must(template.ParseFS(fs, "index.html"))

// PageData feeds the slider bounds into the page.
type PageData struct {
	MinScale     float64
	MaxScale     float64
	Step         float64
	DefaultScale float64
}

// RenderPage writes the index page for the given slider bounds.
func RenderPage(w io.Writer, data PageData) error {
	return page.Execute(w, data)
}
