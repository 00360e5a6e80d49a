// Package reports renders the aggregated scan results as one HTML document.
package reports

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

//go:embed templates/report.html
var templatesFS embed.FS

// Add check on validation
func validateEmbeddedTemplates() error {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read embedded templates root: %w", err)
	}

	if len(entries) == 0 {
		return fmt.Errorf("no embedded templates found (go:embed likely misconfigured)")
	}

	found := false
	for _, e := range entries {
		if !e.IsDir() && e.Name() == "report.html" {
			found = true
			break
		}
	}

	if !found {
		return fmt.Errorf("report.html not found in embedded templates")
	}

	return nil
}

// GenerateHTMLReport renders the view to a self-contained HTML document at
// outputPath, creating the parent directory when absent. Every interpolated
// field passes through html/template's contextual escaping.
func GenerateHTMLReport(view ReportView, outputPath string) error {
	if err := validateEmbeddedTemplates(); err != nil {
		return err
	}

	tplBytes, err := templatesFS.ReadFile("templates/report.html")
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}

	tpl, err := template.New("report").Funcs(template.FuncMap{
		// Pluralization helper for the occurrence counts.
		"plural": func(n int) string {
			if n == 1 {
				return ""
			}
			return "s"
		},
	}).Parse(string(tplBytes))
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := tpl.Execute(f, view); err != nil {
		return fmt.Errorf("render template: %w", err)
	}
	return nil
}
