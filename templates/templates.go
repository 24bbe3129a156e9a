// Package templates embeds the HTML served by the capture page.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every embedded template.
func Load() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}
