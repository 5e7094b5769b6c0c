package database

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/idrispack/cli/internal/core"
)

// DecodeError reports a package database that could not be decoded.
type DecodeError struct {
	// Entry is the offending [db.*] entry name, empty for file-level
	// failures.
	Entry string

	// Reason describes what was wrong.
	Reason string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("decoding package database: entry %q: %s", e.Entry, e.Reason)
	}
	if e.Cause != nil {
		return fmt.Sprintf("decoding package database: %s: %v", e.Reason, e.Cause)
	}
	return "decoding package database: " + e.Reason
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// The persisted grammar is a TOML subset, so decoding leans on a real
// TOML parser; only the variant mapping below is ours.
type dbFile struct {
	Idris2 compilerSection         `toml:"idris2"`
	DB     map[string]entrySection `toml:"db"`
}

type compilerSection struct {
	URL     string `toml:"url"`
	Version string `toml:"version"`
	Commit  string `toml:"commit"`
}

type entrySection struct {
	Type        string `toml:"type"`
	URL         string `toml:"url"`
	Path        string `toml:"path"`
	Commit      string `toml:"commit"`
	Ipkg        string `toml:"ipkg"`
	PackagePath bool   `toml:"packagePath"`
}

// Decode parses the persisted text form of a package database. It is the
// inverse of Encode: for any database d, Decode(Encode(d)) yields d, and
// re-encoding a decoded text reproduces it byte for byte.
func Decode(text string) (DB, error) {
	var file dbFile
	if _, err := toml.Decode(text, &file); err != nil {
		return DB{}, &DecodeError{Reason: "invalid syntax", Cause: err}
	}

	db := New(file.Idris2.URL, core.Commit(file.Idris2.Commit), file.Idris2.Version)
	for name, entry := range file.DB {
		pkg, err := decodeEntry(name, entry)
		if err != nil {
			return DB{}, err
		}
		db = db.Insert(name, pkg)
	}
	return db, nil
}

func decodeEntry(name string, entry entrySection) (core.Package, error) {
	switch entry.Type {
	case "github":
		if entry.URL == "" {
			return core.Package{}, &DecodeError{Entry: name, Reason: "github entry without url"}
		}
		return core.GitHubPackage(core.GitHubPkg{
			URL:          entry.URL,
			Commit:       core.ParseCommitRef(entry.Commit),
			ManifestPath: entry.Ipkg,
			PackagePath:  entry.PackagePath,
		}), nil
	case "local":
		if entry.Path == "" {
			return core.Package{}, &DecodeError{Entry: name, Reason: "local entry without path"}
		}
		return core.LocalPackage(core.LocalPkg{
			Dir:          entry.Path,
			ManifestPath: entry.Ipkg,
			PackagePath:  entry.PackagePath,
		}), nil
	case "core":
		c, ok := core.ParseCorePkg(name)
		if !ok {
			return core.Package{}, &DecodeError{Entry: name, Reason: "not a core package"}
		}
		return core.CorePackage(c), nil
	default:
		return core.Package{}, &DecodeError{Entry: name, Reason: fmt.Sprintf("unknown entry type %q", entry.Type)}
	}
}
