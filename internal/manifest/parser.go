package manifest

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// FileParser parses .ipkg files from disk. It reads only the fields the
// package model consumes; unknown fields are skipped rather than
// rejected, since the full grammar belongs to the compiler.
type FileParser struct{}

var _ Parser = FileParser{}

// Parse implements Parser.
func (FileParser) Parse(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Manifest{}, &ParseError{Path: path, Reason: "opening manifest", Cause: err}
	}
	defer f.Close()

	m, err := parse(f)
	if err != nil {
		if perr, ok := err.(*ParseError); ok {
			perr.Path = path
		}
		return Manifest{}, err
	}
	return m, nil
}

func parse(r io.Reader) (Manifest, error) {
	var m Manifest

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "--") {
			continue
		}

		if name, ok := strings.CutPrefix(text, "package "); ok {
			m.Name = strings.TrimSpace(name)
			continue
		}

		key, value, ok := strings.Cut(text, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "version":
			m.Version = unquote(value)
		case "depends":
			m.Depends = parseDepends(value)
		case "executable":
			m.Executable = unquote(value)
		case "main":
			m.Main = unquote(value)
		case "sourcedir":
			m.SourceDir = unquote(value)
		}
	}
	if err := sc.Err(); err != nil {
		return Manifest{}, &ParseError{Line: line, Reason: "reading manifest", Cause: err}
	}

	if m.Name == "" {
		return Manifest{}, &ParseError{Reason: "missing package declaration"}
	}
	return m, nil
}

// parseDepends splits a depends field into bare package names. Entries
// are comma-separated and may carry version bounds ("base >= 0.5.0"),
// which the package model does not interpret.
func parseDepends(value string) []string {
	parts := strings.Split(value, ",")
	depends := make([]string, 0, len(parts))
	for _, part := range parts {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		depends = append(depends, fields[0])
	}
	return depends
}

func unquote(s string) string {
	return strings.Trim(s, `"`)
}
