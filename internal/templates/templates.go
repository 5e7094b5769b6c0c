// Package templates provides the package template system for pack new.
package templates

import (
	"fmt"
	"regexp"
)

// Template represents a package template with its metadata.
type Template struct {
	// Name is the template identifier (lib, app).
	Name string

	// Description explains the template's purpose.
	Description string

	// Default indicates if this is the default template.
	Default bool
}

// TemplateData holds the data passed to template rendering.
type TemplateData struct {
	// PkgName is the name of the new package.
	PkgName string

	// Module is the root module name, derived from PkgName.
	Module string

	// Version is the initial version (hardcoded to 0.1.0).
	Version string
}

// GenerateOptions configures package generation behavior.
type GenerateOptions struct {
	// TargetDir is the directory to generate the package in.
	TargetDir string

	// TemplateName is the template to use (lib or app).
	TemplateName string

	// PkgName is the package name; defaults to the target directory name.
	PkgName string

	// Force allows overwriting files in non-empty directories.
	Force bool
}

var registry = []Template{
	{Name: "lib", Description: "A library package", Default: true},
	{Name: "app", Description: "An executable package"},
}

// ValidTemplates returns all valid template names.
func ValidTemplates() []string {
	names := make([]string, 0, len(registry))
	for _, t := range registry {
		names = append(names, t.Name)
	}
	return names
}

// Get returns the template with the given name.
func Get(name string) (Template, error) {
	for _, t := range registry {
		if t.Name == name {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("unknown template %q (valid: %v)", name, ValidTemplates())
}

var pkgNameRe = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidatePkgName checks that a package name is usable as a database key
// and a filesystem name.
func ValidatePkgName(name string) error {
	if !pkgNameRe.MatchString(name) {
		return fmt.Errorf("invalid package name %q: must start with a lowercase letter and contain only lowercase letters, digits, and dashes", name)
	}
	return nil
}
