package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/pocketbase/pocketbase/core"
)

// RenderPage renders a page template inside the given layout. The base
// template set is cloned per request so page files can redefine the
// "content" block without clobbering each other.
func RenderPage(t *template.Template, e *core.RequestEvent, layoutName string, pagePath string, data interface{}) error {
	tmpl, err := t.Clone()
	if err != nil {
		fmt.Println("Template Clone Error:", err)
		return e.String(http.StatusInternalServerError, "Template error")
	}

	fullPath := filepath.Join("views", "pages", pagePath)
	if _, err := tmpl.ParseFiles(fullPath); err != nil {
		fmt.Printf("Error parsing file %s: %v\n", fullPath, err)
		return e.String(http.StatusInternalServerError, "Page not found")
	}

	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := tmpl.ExecuteTemplate(e.Response, layoutName, data); err != nil {
		fmt.Println("Render Layout Error:", err)
		return e.String(http.StatusInternalServerError, "Render error")
	}

	return nil
}
