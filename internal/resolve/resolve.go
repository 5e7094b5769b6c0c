package resolve

import (
	"fmt"

	"github.com/idrispack/cli/internal/core"
	"github.com/idrispack/cli/internal/database"
	"github.com/idrispack/cli/internal/manifest"
)

// ResolveDB pins every remote identity in the database to a concrete
// commit, leaving local and core identities untouched. The result maps
// package name to resolved identity for every entry of the database.
func ResolveDB(db database.DB, tips core.TipLookup) (map[string]core.ResolvedPackage, error) {
	resolved := make(map[string]core.ResolvedPackage, db.Len())
	for _, name := range db.Names() {
		pkg, _ := db.Lookup(name)
		r, err := pkg.Resolve(tips)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", name, err)
		}
		resolved[name] = r
	}
	return resolved, nil
}

// SrcRootFunc maps a resolved identity to the directory where its source
// tree is materialized. This is the fetcher collaborator's knowledge:
// the checkout directory for remote packages, the compiler source tree
// for core packages. Local packages carry their own directory, so the
// returned root is ignored for them.
type SrcRootFunc func(name string, pkg core.ResolvedPackage) string

// StatusFunc reports the installation status of a resolved library. The
// default, used when nil, reports every library missing; the build
// executor supplies the real install-marker check.
type StatusFunc func(name string, pkg core.ResolvedPackage) core.LibStatus

// Loader assembles resolved artifact records. It walks the dependency
// graph seeded by the database, parsing each package's manifest once and
// pre-computing the full transitive closure, so the build executor can
// consume records concurrently without further queries.
type Loader struct {
	DB      database.DB
	Tips    core.TipLookup
	Parser  manifest.Parser
	SrcRoot SrcRootFunc

	// Status is optional; nil means every library reports missing.
	Status StatusFunc
}

// LoadLib resolves the named package and builds its library record at
// the load stage, with the full transitive dependency closure attached.
func (l Loader) LoadLib(name string) (core.ResolvedLib[manifest.RawManifest], error) {
	var zero core.ResolvedLib[manifest.RawManifest]

	pkg, m, err := l.load(name)
	if err != nil {
		return zero, err
	}

	closure, err := l.closure(m.DependsOn(), map[string]bool{name: true})
	if err != nil {
		return zero, fmt.Errorf("closing over dependencies of %s: %w", name, err)
	}

	return core.NewResolvedLib(name, pkg, m.Raw(), l.status(name, pkg), closure)
}

// LoadApp is the executable counterpart of LoadLib. The manifest must
// declare an executable.
func (l Loader) LoadApp(name string) (core.ResolvedApp[manifest.RawManifest], error) {
	var zero core.ResolvedApp[manifest.RawManifest]

	pkg, m, err := l.load(name)
	if err != nil {
		return zero, err
	}
	if m.Executable == "" {
		return zero, fmt.Errorf("package %s declares no executable", name)
	}

	closure, err := l.closure(m.DependsOn(), map[string]bool{name: true})
	if err != nil {
		return zero, fmt.Errorf("closing over dependencies of %s: %w", name, err)
	}

	return core.NewResolvedApp(name, pkg, m.Raw(), l.appStatus(name, pkg), closure, m.Executable)
}

// load resolves one name to its pinned identity and parsed manifest.
func (l Loader) load(name string) (core.ResolvedPackage, manifest.Manifest, error) {
	pkg, ok := l.DB.Lookup(name)
	if !ok {
		return core.ResolvedPackage{}, manifest.Manifest{}, fmt.Errorf("package %s not in database", name)
	}

	resolved, err := pkg.Resolve(l.Tips)
	if err != nil {
		return core.ResolvedPackage{}, manifest.Manifest{}, fmt.Errorf("resolving %s: %w", name, err)
	}

	m, err := l.Parser.Parse(resolved.ManifestFile(l.SrcRoot(name, resolved)))
	if err != nil {
		return core.ResolvedPackage{}, manifest.Manifest{}, err
	}
	return resolved, m, nil
}

// closure walks the dependency graph depth-first and returns the
// transitive closure as dependency entries, each name exactly once, in
// post-order so dependencies precede their dependents.
func (l Loader) closure(names []string, seen map[string]bool) ([]core.DepEntry, error) {
	var entries []core.DepEntry
	for _, dep := range names {
		if seen[dep] {
			continue
		}
		seen[dep] = true

		pkg, m, err := l.load(dep)
		if err != nil {
			return nil, err
		}

		below, err := l.closure(m.DependsOn(), seen)
		if err != nil {
			return nil, err
		}
		entries = append(entries, below...)

		entry, err := core.NewDepEntry(dep, pkg, l.status(dep, pkg))
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (l Loader) status(name string, pkg core.ResolvedPackage) core.LibStatus {
	if l.Status == nil {
		return core.LibMissing()
	}
	return l.Status(name, pkg)
}

func (l Loader) appStatus(name string, pkg core.ResolvedPackage) core.AppStatus {
	// The executor tracks executables separately; at load stage an app is
	// either untouched or carries over its library-level state.
	if l.Status == nil {
		return core.AppMissing()
	}
	s := l.Status(name, pkg)
	switch {
	case s.IsInstalled():
		return core.AppInstalled()
	case s.IsOutdated():
		local, ok := pkg.AsLocal()
		if !ok {
			// unreachable: StatusFunc can only mint outdated from a local witness
			return core.AppMissing()
		}
		return local.OutdatedApp()
	default:
		return core.AppMissing()
	}
}
