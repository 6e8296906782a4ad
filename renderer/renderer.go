// Package renderer turns balance and monthly reports into markdown, ready
// for terminal rendering or plain output.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// BalanceMarkdown renders a balance report to a markdown string.
func BalanceMarkdown(r *BalanceReport) string {
	return renderTemplate("balance", "balance.md", nil, r)
}

// TreeMarkdown renders a hierarchical balance report to a markdown string.
func TreeMarkdown(r *TreeReport) string {
	return renderTemplate("tree", "tree.md", nil, r)
}

// MonthlyMarkdown renders a monthly report to a markdown string.
func MonthlyMarkdown(r *MonthlyReport) string {
	return renderTemplate("monthly", "monthly.md", nil, r)
}

// renderTemplate is a generic utility to render a main template that may
// depend on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, readErr := fs.ReadFile(templates, file)
		if readErr != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
