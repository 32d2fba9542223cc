// Package views holds the server-rendered HTML templates.
package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page template names.
const (
	Index    = "index.html"
	Edit     = "edit.html"
	Login    = "login.html"
	Settings = "settings.html"
	NotFound = "404.html"
	Error    = "500.html"
)

// Parse builds the template set. funcs must provide every function the
// templates call (currently "urlFor").
func Parse(funcs template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}
