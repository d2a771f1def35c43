// Package web embeds the HTML page templates.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses every page template. Each page is stored under its file
// name, e.g. "dashboard.html"; layout.html provides the shared header/footer.
func Templates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}
