// Package web embeds the HTML templates and static assets of the portal.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// inputDateLayout is the value format of <input type="date">
const inputDateLayout = "2006-01-02"

// Templates parses every page and partial. Dates are displayed in
// dateLayout.
func Templates(dateLayout string) (*template.Template, error) {
	return template.New("").Funcs(FuncMap(dateLayout)).ParseFS(templateFS, "templates/*.html")
}

// FuncMap holds the helpers the templates use for optional columns
func FuncMap(dateLayout string) template.FuncMap {
	return template.FuncMap{
		"opt": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"date": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format(dateLayout)
		},
		"isoDate": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format(inputDateLayout)
		},
		"score": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		},
		"money": func(v *float64) string {
			if v == nil {
				return ""
			}
			return strconv.FormatFloat(*v, 'f', 2, 64)
		},
		"is": func(id *int64, want int64) bool {
			return id != nil && *id == want
		},
	}
}

// Static serves the files under static/
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
