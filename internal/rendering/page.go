// Package rendering provides functionality to render resume previews as HTML documents.
package rendering

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/types"
)

//go:embed page.html.tmpl
var pageTemplateSource string

// pageData is passed to the standalone page template. Body is pre-rendered,
// already-escaped markup from RenderDocument.
type pageData struct {
	Title        string
	Body         string
	ScalePercent int
}

// RenderPage renders a record as a complete standalone HTML page suitable for
// saving to disk and printing.
func RenderPage(record *types.Record) (string, error) {
	tmpl, err := template.New("page").Parse(pageTemplateSource)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse page template", Cause: err}
	}

	title := strings.TrimSpace(record.FullName)
	if title == "" {
		title = "Resume"
	}

	data := pageData{
		Title:        EscapeHTML(title),
		Body:         RenderDocument(record),
		ScalePercent: ScalePercent(float64(record.FontScale)),
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{Message: "failed to execute page template", Cause: err}
	}
	return result.String(), nil
}
