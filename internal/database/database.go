// Package database holds the durable, named collection of package
// identities for a project: the compiler distribution pinning plus a
// name-keyed set of packages, with a deterministic text serialization.
//
// A database is loaded when a project's configuration is read, is
// immutable for the duration of a build session, and is replaced
// wholesale when the configuration is edited and reloaded. All
// operations are value-semantic: Insert and Remove return a new
// database and never alias the receiver's state.
package database

import (
	"sort"

	"github.com/idrispack/cli/internal/core"
)

// DB is a package database.
type DB struct {
	// URL is the compiler distribution's source URL.
	URL string

	// Commit is the resolved commit of the compiler distribution.
	Commit core.Commit

	// Version is the compiler's semantic version.
	Version string

	packages map[string]core.Package
}

// New creates a database with the given compiler pinning and no packages.
func New(url string, commit core.Commit, version string) DB {
	return DB{URL: url, Commit: commit, Version: version}
}

// Lookup returns the package registered under name.
func (d DB) Lookup(name string) (core.Package, bool) {
	p, ok := d.packages[name]
	return p, ok
}

// Len returns the number of registered packages.
func (d DB) Len() int {
	return len(d.packages)
}

// Names returns the registered package names in sorted order. This is
// the iteration order the serializer emits.
func (d DB) Names() []string {
	names := make([]string, 0, len(d.packages))
	for name := range d.packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Insert returns a copy of the database with name mapped to pkg,
// replacing any existing entry of that name.
func (d DB) Insert(name string, pkg core.Package) DB {
	packages := make(map[string]core.Package, len(d.packages)+1)
	for k, v := range d.packages {
		packages[k] = v
	}
	packages[name] = pkg
	d.packages = packages
	return d
}

// Remove returns a copy of the database without an entry for name.
// Removing an absent name is a no-op.
func (d DB) Remove(name string) DB {
	if _, ok := d.packages[name]; !ok {
		return d
	}
	packages := make(map[string]core.Package, len(d.packages)-1)
	for k, v := range d.packages {
		if k != name {
			packages[k] = v
		}
	}
	d.packages = packages
	return d
}
