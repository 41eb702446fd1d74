package output

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"regexp"
	"strings"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// anchorSafe reduces a location ID to characters usable in a fragment
// selector; the Bootstrap collapse toggle feeds the href to jQuery, which
// chokes on colons.
var anchorSafe = regexp.MustCompile(`[^A-Za-z0-9_-]`)

var reportTemplate = template.Must(
	template.New("report.html.tmpl").
		Funcs(template.FuncMap{
			"joinTests": func(tests []string) string {
				return strings.Join(tests, ", ")
			},
			"anchor": func(id string) string {
				return anchorSafe.ReplaceAllString(id, "_") + "_examples"
			},
		}).
		ParseFS(templateFS, "templates/report.html.tmpl"),
)

// HTMLFormatter renders the report as a self-contained HTML document:
// one row per race with a collapsible list of raw examples.
type HTMLFormatter struct{}

// NewHTMLFormatter creates an HTML formatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (f *HTMLFormatter) Name() string {
	return "html"
}

// Format renders the report as HTML.
func (f *HTMLFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if err := reportTemplate.Execute(w, report); err != nil {
		return fmt.Errorf("rendering HTML report: %w", err)
	}
	return nil
}
