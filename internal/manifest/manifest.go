// Package manifest reads per-package build descriptor (.ipkg) files.
//
// The identity and status model only ever consumes a manifest's
// already-parsed dependency list through core.ManifestData; this package
// is the collaborator that produces those parsed values. Two
// representations exist on purpose: RawManifest is what the load stage
// extracts (name and dependencies, enough to walk the dependency graph),
// Manifest is the plan stage's fuller view with build settings resolved.
// Records move between the two via core.RetagLib / core.RetagApp.
package manifest

import "fmt"

// RawManifest is the load-stage view of a manifest: just enough to
// resolve the dependency graph.
type RawManifest struct {
	// Name is the declared package name.
	Name string

	// Depends lists dependency package names in declaration order,
	// version bounds stripped.
	Depends []string
}

// DependsOn implements core.ManifestData.
func (m RawManifest) DependsOn() []string {
	return m.Depends
}

// Manifest is the plan-stage view of a manifest, with the build settings
// the executor needs.
type Manifest struct {
	// Name is the declared package name.
	Name string

	// Version is the declared package version, if any.
	Version string

	// Depends lists dependency package names in declaration order,
	// version bounds stripped.
	Depends []string

	// Executable is the name of the binary the package builds, empty for
	// pure libraries.
	Executable string

	// Main is the module holding the executable's entry point.
	Main string

	// SourceDir is the source directory relative to the package root.
	SourceDir string
}

// DependsOn implements core.ManifestData.
func (m Manifest) DependsOn() []string {
	return m.Depends
}

// Raw projects the plan-stage view back down to the load-stage one.
func (m Manifest) Raw() RawManifest {
	return RawManifest{Name: m.Name, Depends: m.Depends}
}

// Parser is the manifest-parsing collaborator consumed by the resolution
// pipeline.
type Parser interface {
	// Parse reads and parses the manifest file at path.
	Parse(path string) (Manifest, error)
}

// ParseError reports a manifest file that could not be parsed.
type ParseError struct {
	// Path is the manifest file path.
	Path string

	// Line is the 1-based offending line, 0 if not line-specific.
	Line int

	// Reason describes what was wrong.
	Reason string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing %s:%d: %s", e.Path, e.Line, e.Reason)
	}
	if e.Cause != nil {
		return fmt.Sprintf("parsing %s: %s: %v", e.Path, e.Reason, e.Cause)
	}
	return fmt.Sprintf("parsing %s: %s", e.Path, e.Reason)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Cause
}
