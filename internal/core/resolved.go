package core

// ManifestData is the narrow view this model reads from a parsed
// manifest. The manifest grammar itself is a collaborator's concern; the
// records below only ever consume the already-parsed dependency list.
type ManifestData interface {
	// DependsOn returns the package names the manifest depends on, in
	// declaration order.
	DependsOn() []string
}

// DepEntry is one entry of a resolved dependency closure: a package
// identity paired with its library status. The pairing is validated at
// construction, so a closure never contains an outdated remote or core
// entry.
type DepEntry struct {
	name   string
	pkg    ResolvedPackage
	status LibStatus
}

// NewDepEntry pairs a dependency's identity with its status, rejecting
// pairings the lifecycle model forbids.
func NewDepEntry(name string, pkg ResolvedPackage, status LibStatus) (DepEntry, error) {
	if err := checkLibStatus(pkg, status); err != nil {
		return DepEntry{}, err
	}
	return DepEntry{name: name, pkg: pkg, status: status}, nil
}

// Name returns the dependency's package name.
func (d DepEntry) Name() string { return d.name }

// Pkg returns the dependency's resolved identity.
func (d DepEntry) Pkg() ResolvedPackage { return d.pkg }

// Status returns the dependency's library status.
func (d DepEntry) Status() LibStatus { return d.status }

// ResolvedLib is a library identity paired with its parsed manifest,
// installation status, and fully pre-computed dependency closure. The
// manifest payload is generic so the same record shape serves every
// pipeline stage; RetagLib moves a record between stages.
type ResolvedLib[M ManifestData] struct {
	name     string
	pkg      ResolvedPackage
	manifest M
	status   LibStatus
	deps     []DepEntry
}

// NewResolvedLib builds a library record, rejecting identity/status
// pairings the lifecycle model forbids.
func NewResolvedLib[M ManifestData](name string, pkg ResolvedPackage, manifest M, status LibStatus, deps []DepEntry) (ResolvedLib[M], error) {
	if err := checkLibStatus(pkg, status); err != nil {
		return ResolvedLib[M]{}, err
	}
	return ResolvedLib[M]{name: name, pkg: pkg, manifest: manifest, status: status, deps: deps}, nil
}

// Name returns the display name of the library.
func (r ResolvedLib[M]) Name() string { return r.name }

// Identity returns the library's resolved package identity.
func (r ResolvedLib[M]) Identity() ResolvedPackage { return r.pkg }

// Manifest returns the parsed manifest payload.
func (r ResolvedLib[M]) Manifest() M { return r.manifest }

// Status returns the library's installation status.
func (r ResolvedLib[M]) Status() LibStatus { return r.status }

// Deps returns the pre-computed dependency closure.
func (r ResolvedLib[M]) Deps() []DepEntry { return r.deps }

// Dependencies returns the dependency package names as declared in the
// parsed manifest.
func (r ResolvedLib[M]) Dependencies() []string { return r.manifest.DependsOn() }

// WithStatus returns the same record with a new status, re-validated
// against the identity.
func (r ResolvedLib[M]) WithStatus(status LibStatus) (ResolvedLib[M], error) {
	if err := checkLibStatus(r.pkg, status); err != nil {
		return r, err
	}
	r.status = status
	return r, nil
}

// RetagLib replaces the manifest payload of a library record, preserving
// identity, status, and dependency closure. Used when a manifest is
// re-parsed with more build settings resolved at a later pipeline stage.
func RetagLib[M, N ManifestData](r ResolvedLib[M], manifest N) ResolvedLib[N] {
	return ResolvedLib[N]{
		name:     r.name,
		pkg:      r.pkg,
		manifest: manifest,
		status:   r.status,
		deps:     r.deps,
	}
}

// ResolvedApp is the executable counterpart of ResolvedLib. It
// additionally records the name of the generated binary.
type ResolvedApp[M ManifestData] struct {
	name     string
	pkg      ResolvedPackage
	manifest M
	status   AppStatus
	deps     []DepEntry
	exec     string
}

// NewResolvedApp builds an executable record, rejecting identity/status
// pairings the lifecycle model forbids.
func NewResolvedApp[M ManifestData](name string, pkg ResolvedPackage, manifest M, status AppStatus, deps []DepEntry, exec string) (ResolvedApp[M], error) {
	if err := checkAppStatus(pkg, status); err != nil {
		return ResolvedApp[M]{}, err
	}
	return ResolvedApp[M]{name: name, pkg: pkg, manifest: manifest, status: status, deps: deps, exec: exec}, nil
}

// Name returns the display name of the executable's package.
func (r ResolvedApp[M]) Name() string { return r.name }

// Identity returns the executable's resolved package identity.
func (r ResolvedApp[M]) Identity() ResolvedPackage { return r.pkg }

// Manifest returns the parsed manifest payload.
func (r ResolvedApp[M]) Manifest() M { return r.manifest }

// Status returns the executable's installation status.
func (r ResolvedApp[M]) Status() AppStatus { return r.status }

// Deps returns the pre-computed dependency closure.
func (r ResolvedApp[M]) Deps() []DepEntry { return r.deps }

// Dependencies returns the dependency package names as declared in the
// parsed manifest.
func (r ResolvedApp[M]) Dependencies() []string { return r.manifest.DependsOn() }

// Exec returns the name of the generated binary.
func (r ResolvedApp[M]) Exec() string { return r.exec }

// WithStatus returns the same record with a new status, re-validated
// against the identity.
func (r ResolvedApp[M]) WithStatus(status AppStatus) (ResolvedApp[M], error) {
	if err := checkAppStatus(r.pkg, status); err != nil {
		return r, err
	}
	r.status = status
	return r, nil
}

// RetagApp replaces the manifest payload of an executable record,
// preserving everything else.
func RetagApp[M, N ManifestData](r ResolvedApp[M], manifest N) ResolvedApp[N] {
	return ResolvedApp[N]{
		name:     r.name,
		pkg:      r.pkg,
		manifest: manifest,
		status:   r.status,
		deps:     r.deps,
		exec:     r.exec,
	}
}

// LibOrApp lets a build plan treat libraries and executables uniformly
// when extracting name, identity, or dependencies. The executable arm is
// tagged with whether a launcher must be installed for it. Both arms
// share one manifest payload type; a plan mixing stages cannot be
// expressed.
//
// Construct entries with LibEntry or AppEntry. The zero value holds
// neither arm; its projections return zero values.
type LibOrApp[M ManifestData] struct {
	lib            *ResolvedLib[M]
	app            *ResolvedApp[M]
	installWrapper bool
}

// LibEntry wraps a library record.
func LibEntry[M ManifestData](l ResolvedLib[M]) LibOrApp[M] {
	return LibOrApp[M]{lib: &l}
}

// AppEntry wraps an executable record together with the plan's decision
// whether to install its launcher.
func AppEntry[M ManifestData](a ResolvedApp[M], installWrapper bool) LibOrApp[M] {
	return LibOrApp[M]{app: &a, installWrapper: installWrapper}
}

// AsLib returns the library record, if that is what the entry holds.
func (e LibOrApp[M]) AsLib() (ResolvedLib[M], bool) {
	if e.lib == nil {
		return ResolvedLib[M]{}, false
	}
	return *e.lib, true
}

// AsApp returns the executable record, if that is what the entry holds.
func (e LibOrApp[M]) AsApp() (ResolvedApp[M], bool) {
	if e.app == nil {
		return ResolvedApp[M]{}, false
	}
	return *e.app, true
}

// InstallWrapper reports whether a launcher must be installed. Always
// false for the library arm.
func (e LibOrApp[M]) InstallWrapper() bool {
	return e.app != nil && e.installWrapper
}

// PkgName returns the display name of either arm.
func (e LibOrApp[M]) PkgName() string {
	switch {
	case e.app != nil:
		return e.app.Name()
	case e.lib != nil:
		return e.lib.Name()
	default:
		return ""
	}
}

// PkgIdentity returns the resolved identity of either arm.
func (e LibOrApp[M]) PkgIdentity() ResolvedPackage {
	switch {
	case e.app != nil:
		return e.app.Identity()
	case e.lib != nil:
		return e.lib.Identity()
	default:
		return ResolvedPackage{}
	}
}

// PkgDependencies returns the manifest dependency names of either arm.
func (e LibOrApp[M]) PkgDependencies() []string {
	switch {
	case e.app != nil:
		return e.app.Dependencies()
	case e.lib != nil:
		return e.lib.Dependencies()
	default:
		return nil
	}
}

// PkgManifest returns the manifest payload of either arm.
func (e LibOrApp[M]) PkgManifest() M {
	switch {
	case e.app != nil:
		return e.app.Manifest()
	case e.lib != nil:
		return e.lib.Manifest()
	default:
		var zero M
		return zero
	}
}

// PkgDeps returns the pre-computed dependency closure of either arm.
func (e LibOrApp[M]) PkgDeps() []DepEntry {
	switch {
	case e.app != nil:
		return e.app.Deps()
	case e.lib != nil:
		return e.lib.Deps()
	default:
		return nil
	}
}
