package core

import "path/filepath"

// PkgKind discriminates the three places a package's source can live.
type PkgKind uint8

const (
	// KindGitHub is a remote repository checkout.
	KindGitHub PkgKind = iota

	// KindLocal is a local directory on disk.
	KindLocal

	// KindCore is a library bundled with the compiler distribution.
	KindCore
)

// String returns the kind's identifier as used in the persisted database.
func (k PkgKind) String() string {
	switch k {
	case KindGitHub:
		return "github"
	case KindLocal:
		return "local"
	case KindCore:
		return "core"
	default:
		return "unknown"
	}
}

// GitHubPkg locates a package in a remote repository. The commit reference
// is as authored: it may still track a branch tip.
type GitHubPkg struct {
	// URL of the repository to fetch.
	URL string

	// Commit selects which state of the repository to use.
	Commit CommitRef

	// ManifestPath is the manifest file path relative to the checkout root.
	ManifestPath string

	// PackagePath marks that the built executable needs the shared
	// package-installation search path available at runtime.
	PackagePath bool
}

// LocalPkg locates a package in a local directory. Unlike a remote
// checkout, its content can change underneath an installation, which is
// why only local packages can ever become Outdated.
type LocalPkg struct {
	// Dir is the absolute path of the package directory.
	Dir string

	// ManifestPath is the manifest file path relative to Dir.
	ManifestPath string

	// PackagePath marks that the built executable needs the shared
	// package-installation search path available at runtime.
	PackagePath bool
}

// Package is the identity of a dependency as authored in a configuration
// file: exactly one of a remote repository, a local directory, or a core
// package. Remote commit references may still be unresolved; Resolve
// lifts a Package into a ResolvedPackage.
type Package struct {
	kind   PkgKind
	github GitHubPkg
	local  LocalPkg
	core   CorePkg
}

// GitHubPackage wraps a remote identity.
func GitHubPackage(g GitHubPkg) Package {
	return Package{kind: KindGitHub, github: g}
}

// LocalPackage wraps a local-directory identity.
func LocalPackage(l LocalPkg) Package {
	return Package{kind: KindLocal, local: l}
}

// CorePackage wraps a core-registry identity.
func CorePackage(c CorePkg) Package {
	return Package{kind: KindCore, core: c}
}

// Kind returns the variant tag. The three As* accessors below are the
// matching witnesses: exactly one of them succeeds for any Package, and
// the returned variant value can be handed to code that requires that
// variant without re-checking.
func (p Package) Kind() PkgKind {
	return p.kind
}

// AsGitHub returns the remote variant, if that is what p is.
func (p Package) AsGitHub() (GitHubPkg, bool) {
	return p.github, p.kind == KindGitHub
}

// AsLocal returns the local variant, if that is what p is.
func (p Package) AsLocal() (LocalPkg, bool) {
	return p.local, p.kind == KindLocal
}

// AsCore returns the core variant, if that is what p is.
func (p Package) AsCore() (CorePkg, bool) {
	return p.core, p.kind == KindCore
}

// NeedsPackagePath reports whether the built executable must see the
// shared package-installation search path at runtime. Core packages
// never do.
func (p Package) NeedsPackagePath() bool {
	switch p.kind {
	case KindGitHub:
		return p.github.PackagePath
	case KindLocal:
		return p.local.PackagePath
	default:
		return false
	}
}

// ManifestFile returns the absolute path of the package's manifest file.
// root is where the package's source tree is materialized: the checkout
// directory for a remote package, the compiler source tree for a core
// package. Local packages carry their own absolute directory and ignore
// root.
func (p Package) ManifestFile(root string) string {
	switch p.kind {
	case KindGitHub:
		return filepath.Join(root, p.github.ManifestPath)
	case KindLocal:
		return filepath.Join(p.local.Dir, p.local.ManifestPath)
	default:
		return filepath.Join(root, p.core.ManifestPath())
	}
}

// MapCommit returns the same identity with its commit reference
// transformed by f. Local and core identities have no commit reference,
// so they are returned unchanged.
func (p Package) MapCommit(f func(CommitRef) CommitRef) Package {
	if p.kind != KindGitHub {
		return p
	}
	g := p.github
	g.Commit = f(g.Commit)
	return GitHubPackage(g)
}

// Resolve pins the package to a concrete commit, producing its resolved
// counterpart. Only remote identities consult the lookup; local and core
// identities pass through unchanged.
func (p Package) Resolve(tips TipLookup) (ResolvedPackage, error) {
	switch p.kind {
	case KindGitHub:
		commit, err := p.github.Commit.Resolve(p.github.URL, tips)
		if err != nil {
			return ResolvedPackage{}, err
		}
		return ResolvedGitHubPackage(ResolvedGitHubPkg{
			URL:          p.github.URL,
			Commit:       commit,
			ManifestPath: p.github.ManifestPath,
			PackagePath:  p.github.PackagePath,
		}), nil
	case KindLocal:
		return ResolvedLocalPackage(p.local), nil
	default:
		return ResolvedCorePackage(p.core), nil
	}
}

// ResolvedGitHubPkg is a remote identity with its commit pinned to a
// concrete hash.
type ResolvedGitHubPkg struct {
	URL          string
	Commit       Commit
	ManifestPath string
	PackagePath  bool
}

// ResolvedPackage is a package identity whose remote commit, if any, has
// been pinned. It is the shape the resolution pipeline and the build
// executor work with; Package is the shape configuration files author.
type ResolvedPackage struct {
	kind   PkgKind
	github ResolvedGitHubPkg
	local  LocalPkg
	core   CorePkg
}

// ResolvedGitHubPackage wraps a pinned remote identity.
func ResolvedGitHubPackage(g ResolvedGitHubPkg) ResolvedPackage {
	return ResolvedPackage{kind: KindGitHub, github: g}
}

// ResolvedLocalPackage wraps a local-directory identity.
func ResolvedLocalPackage(l LocalPkg) ResolvedPackage {
	return ResolvedPackage{kind: KindLocal, local: l}
}

// ResolvedCorePackage wraps a core-registry identity.
func ResolvedCorePackage(c CorePkg) ResolvedPackage {
	return ResolvedPackage{kind: KindCore, core: c}
}

// Kind returns the variant tag.
func (p ResolvedPackage) Kind() PkgKind {
	return p.kind
}

// AsGitHub returns the pinned remote variant, if that is what p is.
func (p ResolvedPackage) AsGitHub() (ResolvedGitHubPkg, bool) {
	return p.github, p.kind == KindGitHub
}

// AsLocal returns the local variant, if that is what p is.
func (p ResolvedPackage) AsLocal() (LocalPkg, bool) {
	return p.local, p.kind == KindLocal
}

// AsCore returns the core variant, if that is what p is.
func (p ResolvedPackage) AsCore() (CorePkg, bool) {
	return p.core, p.kind == KindCore
}

// NeedsPackagePath reports whether the built executable must see the
// shared package-installation search path at runtime.
func (p ResolvedPackage) NeedsPackagePath() bool {
	switch p.kind {
	case KindGitHub:
		return p.github.PackagePath
	case KindLocal:
		return p.local.PackagePath
	default:
		return false
	}
}

// ManifestFile returns the absolute path of the package's manifest file.
// See Package.ManifestFile for the meaning of root.
func (p ResolvedPackage) ManifestFile(root string) string {
	switch p.kind {
	case KindGitHub:
		return filepath.Join(root, p.github.ManifestPath)
	case KindLocal:
		return filepath.Join(p.local.Dir, p.local.ManifestPath)
	default:
		return filepath.Join(root, p.core.ManifestPath())
	}
}
