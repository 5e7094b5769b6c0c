package core

import "path/filepath"

// CorePkg is one of the libraries bundled with the compiler distribution.
// These never need a remote fetch; each maps to a fixed manifest path
// inside the compiler source tree.
type CorePkg uint8

const (
	// Prelude is the implicitly imported prelude library.
	Prelude CorePkg = iota

	// Base is the base library.
	Base

	// Contrib is the contributed utilities library.
	Contrib

	// Linear is the linear-types library.
	Linear

	// Network is the networking library.
	Network

	// Test is the testing library.
	Test

	// IdrisApi is the compiler's own API library. Unlike the rest, its
	// manifest lives at the root of the compiler source tree.
	IdrisApi

	numCorePkgs int = iota
)

// CorePkgs returns every core package exactly once, in declaration order.
func CorePkgs() []CorePkg {
	return []CorePkg{Prelude, Base, Contrib, Linear, Network, Test, IdrisApi}
}

// Name returns the canonical lowercase identifier of the core package.
func (c CorePkg) Name() string {
	switch c {
	case Prelude:
		return "prelude"
	case Base:
		return "base"
	case Contrib:
		return "contrib"
	case Linear:
		return "linear"
	case Network:
		return "network"
	case Test:
		return "test"
	case IdrisApi:
		return "idris2"
	default:
		return "unknown"
	}
}

// String returns the canonical name.
func (c CorePkg) String() string {
	return c.Name()
}

// ManifestPath returns the manifest file path of the core package,
// relative to the compiler source tree. The API library is special-cased
// to the root; all other core libraries follow the libs/<name> convention.
func (c CorePkg) ManifestPath() string {
	if c == IdrisApi {
		return "idris2.ipkg"
	}
	n := c.Name()
	return filepath.Join("libs", n, n+".ipkg")
}

// ParseCorePkg is the total inverse of Name. It reports false for any
// string that does not name a core package; callers use it as a
// membership test, so a miss is not an error.
func ParseCorePkg(s string) (CorePkg, bool) {
	for _, c := range CorePkgs() {
		if c.Name() == s {
			return c, true
		}
	}
	return 0, false
}

// IsCorePkg reports whether s names a core package.
func IsCorePkg(s string) bool {
	_, ok := ParseCorePkg(s)
	return ok
}
