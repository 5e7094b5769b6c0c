package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/idrispack/cli/internal/output"
)

// GenerateResult reports what was generated.
type GenerateResult struct {
	// PkgName is the name of the generated package.
	PkgName string

	// Files lists the generated file paths.
	Files []string
}

// Generator handles package generation from templates.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	return &Generator{opts: opts}
}

// Generate creates a new package skeleton from a template: the .ipkg
// manifest plus a source stub under src/.
func (g *Generator) Generate() (*GenerateResult, error) {
	tmpl, err := Get(g.opts.TemplateName)
	if err != nil {
		return nil, err
	}

	pkgName := g.opts.PkgName
	if pkgName == "" {
		pkgName = filepath.Base(g.opts.TargetDir)
	}
	if err := ValidatePkgName(pkgName); err != nil {
		return nil, err
	}

	if err := g.checkTargetDir(); err != nil {
		return nil, err
	}

	data := TemplateData{
		PkgName: pkgName,
		Module:  moduleName(pkgName),
		Version: "0.1.0",
	}

	output.Debug("generating package", "template", tmpl.Name, "name", pkgName, "dir", g.opts.TargetDir)

	files := map[string]string{
		pkgName + ".ipkg": tmpl.Name + ".ipkg.tmpl",
	}
	if tmpl.Name == "app" {
		files[filepath.Join("src", "Main.idr")] = "main.idr.tmpl"
	} else {
		files[filepath.Join("src", data.Module+".idr")] = "lib.idr.tmpl"
	}

	result := &GenerateResult{PkgName: pkgName}
	for rel, tmplFile := range files {
		content, err := render(tmplFile, data)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(g.opts.TargetDir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		result.Files = append(result.Files, path)
	}

	return result, nil
}

// checkTargetDir refuses to generate into a non-empty directory unless
// forced.
func (g *Generator) checkTargetDir() error {
	entries, err := os.ReadDir(g.opts.TargetDir)
	if err != nil {
		if os.IsNotExist(err) {
			return os.MkdirAll(g.opts.TargetDir, 0o755)
		}
		return fmt.Errorf("reading target directory: %w", err)
	}
	if len(entries) > 0 && !g.opts.Force {
		return fmt.Errorf("target directory %s is not empty (use --force to generate anyway)", g.opts.TargetDir)
	}
	return nil
}

// moduleName turns a package name into a source module name:
// "json-utils" becomes "JsonUtils".
func moduleName(pkgName string) string {
	parts := strings.Split(pkgName, "-")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "")
}
