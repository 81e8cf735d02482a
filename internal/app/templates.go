package app

import (
	"errors"
	"html/template"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cast"
)

// InitTemplates initializes the HTML templates with custom functions.
func InitTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, errors.New("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, errors.New("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"formatMoney": func(val interface{}) string {
			amount := cast.ToFloat64(val)
			return humanize.CommafWithDigits(amount, 2)
		},
		"markdownLite": MarkdownLite,
		"hasKey": func(m map[string]string, key string) bool {
			_, ok := m[key]
			return ok
		},
		"sub": func(a, b float64) float64 {
			return a - b
		},
		"mul": func(a, b float64) float64 {
			return a * b
		},
		"div": func(a, b float64) float64 {
			if b == 0 {
				return 0
			}
			return a / b
		},
		"substr": func(start, length int, s string) string {
			if start < 0 {
				start = 0
			}
			if start >= len(s) {
				return ""
			}
			end := start + length
			if end > len(s) {
				end = len(s)
			}
			return s[start:end]
		},
	}

	t := template.New("").Funcs(funcMap)

	if _, err := t.ParseGlob("views/layouts/*.html"); err != nil {
		log.Println("Warning: Layouts error:", err)
	}

	return t, nil
}
