package api

import (
	"embed"
	"html/template"
	"strings"

	"github.com/jarana/guia/internal/domain"
)

// UploadsPath is where local promoter pictures are served from.
const UploadsPath = "/" + uploadsDir

const uploadsDir = "static/uploads"

//go:embed templates/*.html
var templatesFS embed.FS

func loadTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		// imgsrc resolves local pictures against root, the page's relative
		// path to the site root.
		"imgsrc": func(img domain.Image, root string) string {
			return img.Src(root + uploadsDir)
		},
		"trim": strings.TrimSpace,
	}

	return template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}
