package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idrispack/cli/internal/manifest"
)

func TestValidTemplates(t *testing.T) {
	assert.Equal(t, []string{"lib", "app"}, ValidTemplates())
}

func TestGet(t *testing.T) {
	tmpl, err := Get("lib")
	require.NoError(t, err)
	assert.True(t, tmpl.Default)

	_, err = Get("service")
	assert.Error(t, err)
}

func TestValidatePkgName(t *testing.T) {
	for _, ok := range []string{"parser", "json-utils", "http2"} {
		assert.NoError(t, ValidatePkgName(ok), ok)
	}
	for _, bad := range []string{"", "Parser", "2fast", "has_underscore", "has space"} {
		assert.Error(t, ValidatePkgName(bad), bad)
	}
}

func TestModuleName(t *testing.T) {
	assert.Equal(t, "Parser", moduleName("parser"))
	assert.Equal(t, "JsonUtils", moduleName("json-utils"))
}

func TestGenerator_Lib(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "json-utils")

	result, err := NewGenerator(GenerateOptions{TargetDir: dir, TemplateName: "lib"}).Generate()
	require.NoError(t, err)
	assert.Equal(t, "json-utils", result.PkgName)
	assert.Len(t, result.Files, 2)

	// The generated manifest must parse back through the package model.
	m, err := manifest.FileParser{}.Parse(filepath.Join(dir, "json-utils.ipkg"))
	require.NoError(t, err)
	assert.Equal(t, "json-utils", m.Name)
	assert.Equal(t, "0.1.0", m.Version)
	assert.Equal(t, "src", m.SourceDir)
	assert.Empty(t, m.Executable)

	stub, err := os.ReadFile(filepath.Join(dir, "src", "JsonUtils.idr"))
	require.NoError(t, err)
	assert.Contains(t, string(stub), "module JsonUtils")
}

func TestGenerator_App(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tool")

	result, err := NewGenerator(GenerateOptions{TargetDir: dir, TemplateName: "app"}).Generate()
	require.NoError(t, err)
	assert.Equal(t, "tool", result.PkgName)

	m, err := manifest.FileParser{}.Parse(filepath.Join(dir, "tool.ipkg"))
	require.NoError(t, err)
	assert.Equal(t, "tool", m.Name)
	assert.Equal(t, "tool", m.Executable)
	assert.Equal(t, "Main", m.Main)

	stub, err := os.ReadFile(filepath.Join(dir, "src", "Main.idr"))
	require.NoError(t, err)
	assert.Contains(t, string(stub), "module Main")
	assert.Contains(t, string(stub), "main :")
}

func TestGenerator_ExplicitName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "workdir")

	result, err := NewGenerator(GenerateOptions{TargetDir: dir, TemplateName: "lib", PkgName: "parser"}).Generate()
	require.NoError(t, err)
	assert.Equal(t, "parser", result.PkgName)
	assert.FileExists(t, filepath.Join(dir, "parser.ipkg"))
}

func TestGenerator_RefusesNonEmptyDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("x"), 0o644))

	_, err := NewGenerator(GenerateOptions{TargetDir: dir, TemplateName: "lib", PkgName: "parser"}).Generate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not empty")

	// --force overrides.
	_, err = NewGenerator(GenerateOptions{TargetDir: dir, TemplateName: "lib", PkgName: "parser", Force: true}).Generate()
	assert.NoError(t, err)
}

func TestGenerator_RejectsBadName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "BadName")

	_, err := NewGenerator(GenerateOptions{TargetDir: dir, TemplateName: "lib"}).Generate()
	require.Error(t, err)
	assert.NoDirExists(t, dir, "nothing may be created for an invalid name")
}
