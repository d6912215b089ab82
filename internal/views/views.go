// Package views holds the server-rendered pages: the landing page, the
// dashboard and the public portfolio.
package views

import (
	"embed"
	"html/template"
	"strings"

	"portfolio_backend/internal/utils"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"join": utils.JoinTechnologies,
	"initials": func(name string) string {
		var b strings.Builder
		for _, w := range strings.Fields(name) {
			for _, r := range w {
				b.WriteRune(r)
				break
			}
		}
		return strings.ToUpper(b.String())
	},
	"deref": func(b *bool) bool { return b != nil && *b },
	"derefInt": func(i *int) int {
		if i == nil {
			return 0
		}
		return *i
	},
}

// Load parses every embedded template. Page templates are addressed by file
// name, e.g. "dashboard.html".
func Load() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}

func MustLoad() *template.Template {
	return template.Must(Load())
}
