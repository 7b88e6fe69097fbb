// Package printing renders the system's PDF documents: invoices, receipts,
// admission letters and student ID cards. HTML templates are filled by a
// template engine and printed to PDF through the Chrome DevTools Protocol.
package printing

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TemplateEngine renders HTML document templates with formatting helpers.
type TemplateEngine struct {
	templates *template.Template
}

// NewTemplateEngine creates a template engine with the built-in document
// templates parsed and ready.
func NewTemplateEngine() (*TemplateEngine, error) {
	funcMap := template.FuncMap{
		"formatMoney": formatMoney,
		"upper":       strings.ToUpper,
		"lower":       strings.ToLower,
		"title":       titleCase,
		"trim":        strings.TrimSpace,
	}

	root := template.New("documents").Funcs(funcMap)
	for name, body := range documentTemplates {
		if _, err := root.New(name).Parse(body); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
	}

	return &TemplateEngine{templates: root}, nil
}

// Render executes the named template with the given data
func (e *TemplateEngine) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}

// formatMoney renders an amount as currency with thousands separators.
// Example: 1234.5 -> "K1,234.50"
func formatMoney(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	s := d.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}

	out := "K" + b.String() + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}

// titleCase converts a string to title case with proper Unicode handling
func titleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}
