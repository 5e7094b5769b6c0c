package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pkg.ipkg")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestFileParser_Library(t *testing.T) {
	path := writeManifest(t, `-- a parser combinator library
package parser

version   = "0.3.1"
sourcedir = "src"
depends   = base >= 0.5.0, contrib
`)

	m, err := FileParser{}.Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "parser", m.Name)
	assert.Equal(t, "0.3.1", m.Version)
	assert.Equal(t, "src", m.SourceDir)
	assert.Equal(t, []string{"base", "contrib"}, m.Depends)
	assert.Empty(t, m.Executable)
}

func TestFileParser_Executable(t *testing.T) {
	path := writeManifest(t, `package tool

executable = tool
main       = Main
depends    = base
`)

	m, err := FileParser{}.Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "tool", m.Name)
	assert.Equal(t, "tool", m.Executable)
	assert.Equal(t, "Main", m.Main)
	assert.Equal(t, []string{"base"}, m.Depends)
}

func TestFileParser_SkipsUnknownFields(t *testing.T) {
	path := writeManifest(t, `package tiny
authors = "someone"
license = "BSD"
modules = Tiny.Core, Tiny.Extra
`)

	m, err := FileParser{}.Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", m.Name)
	assert.Empty(t, m.Depends)
}

func TestFileParser_MissingPackageDecl(t *testing.T) {
	path := writeManifest(t, "depends = base\n")

	_, err := FileParser{}.Parse(path)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, path, perr.Path)
	assert.Equal(t, "missing package declaration", perr.Reason)
}

func TestFileParser_MissingFile(t *testing.T) {
	_, err := FileParser{}.Parse(filepath.Join(t.TempDir(), "nonesuch.ipkg"))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseDepends_StripsVersionBounds(t *testing.T) {
	assert.Equal(t,
		[]string{"base", "contrib", "network"},
		parseDepends(`base >= 0.5.0, contrib, network == 0.1.0`))

	assert.Empty(t, parseDepends("  "))
}

func TestManifest_Raw(t *testing.T) {
	m := Manifest{Name: "tool", Version: "1.0", Depends: []string{"base"}, Executable: "tool"}
	raw := m.Raw()
	assert.Equal(t, RawManifest{Name: "tool", Depends: []string{"base"}}, raw)
	assert.Equal(t, []string{"base"}, raw.DependsOn())
}
