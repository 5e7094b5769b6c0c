package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// render executes the named embedded template file with data.
func render(file string, data TemplateData) ([]byte, error) {
	raw, err := fs.ReadFile(templateFS, "templates/"+file)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", file, err)
	}

	tmpl, err := template.New(file).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return nil, fmt.Errorf("rendering template %s: %w", file, err)
	}
	return []byte(b.String()), nil
}
