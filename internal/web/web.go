package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// ParsePage parses the weather page template.
func ParsePage() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/index.html")
}

// Static returns the stylesheet and other assets rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
