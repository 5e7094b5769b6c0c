package core

type statusCode uint8

const (
	codeMissing statusCode = iota
	codeInstalled
	codeBinInstalled
	codeOutdated
)

func (c statusCode) String() string {
	switch c {
	case codeMissing:
		return "missing"
	case codeInstalled:
		return "installed"
	case codeBinInstalled:
		return "bin-installed"
	case codeOutdated:
		return "outdated"
	default:
		return "unknown"
	}
}

// LibStatus is the lifecycle state of a resolved library:
// missing, installed, or outdated.
//
// There is no exported way to construct the outdated state except
// LocalPkg.OutdatedLib: a remote checkout's content is immutable once
// fetched, so "source changed since install" can only ever apply to a
// local directory. Holding a LocalPkg is the proof of that.
type LibStatus struct {
	code statusCode
}

// LibMissing is the state of a library that has not been installed.
func LibMissing() LibStatus {
	return LibStatus{code: codeMissing}
}

// LibInstalled is the state of a library whose build artifacts are
// installed and current.
func LibInstalled() LibStatus {
	return LibStatus{code: codeInstalled}
}

// OutdatedLib is the state of a local library whose source changed after
// its last install.
func (LocalPkg) OutdatedLib() LibStatus {
	return LibStatus{code: codeOutdated}
}

// IsMissing reports whether the library has never been installed.
func (s LibStatus) IsMissing() bool { return s.code == codeMissing }

// IsInstalled reports whether the library is installed and current.
func (s LibStatus) IsInstalled() bool { return s.code == codeInstalled }

// IsOutdated reports whether the library's source changed since install.
func (s LibStatus) IsOutdated() bool { return s.code == codeOutdated }

// String returns "missing", "installed", or "outdated".
func (s LibStatus) String() string { return s.code.String() }

// AfterBuild is the transition taken when a build of the library
// succeeds: missing and outdated both become installed; installed is
// unchanged.
func (s LibStatus) AfterBuild() LibStatus {
	return LibInstalled()
}

// AppStatus is the lifecycle state of a resolved executable: missing,
// installed (compiled), bin-installed (a launcher is on the search
// path), or outdated. The outdated state obeys the same local-only rule
// as LibStatus and is minted solely by LocalPkg.OutdatedApp.
type AppStatus struct {
	code statusCode
}

// AppMissing is the state of an executable that has not been built.
func AppMissing() AppStatus {
	return AppStatus{code: codeMissing}
}

// AppInstalled is the state of an executable that has been compiled but
// has no launcher on the shared bin directory.
func AppInstalled() AppStatus {
	return AppStatus{code: codeInstalled}
}

// AppBinInstalled is the state of an executable whose launcher has been
// written to the shared bin directory.
func AppBinInstalled() AppStatus {
	return AppStatus{code: codeBinInstalled}
}

// OutdatedApp is the state of a local executable whose source changed
// after its last build.
func (LocalPkg) OutdatedApp() AppStatus {
	return AppStatus{code: codeOutdated}
}

// IsMissing reports whether the executable has never been built.
func (s AppStatus) IsMissing() bool { return s.code == codeMissing }

// IsInstalled reports whether the executable is compiled and current.
func (s AppStatus) IsInstalled() bool { return s.code == codeInstalled }

// IsBinInstalled reports whether a launcher is on the shared bin directory.
func (s AppStatus) IsBinInstalled() bool { return s.code == codeBinInstalled }

// IsOutdated reports whether the executable's source changed since its
// last build.
func (s AppStatus) IsOutdated() bool { return s.code == codeOutdated }

// String returns "missing", "installed", "bin-installed", or "outdated".
func (s AppStatus) String() string { return s.code.String() }

// AfterBuild is the transition taken when a build of the executable
// succeeds: missing and outdated become installed; installed and
// bin-installed are unchanged.
func (s AppStatus) AfterBuild() AppStatus {
	if s.code == codeMissing || s.code == codeOutdated {
		return AppInstalled()
	}
	return s
}

// AfterWrapperInstall is the transition taken when the launcher is
// written to the shared bin directory. It is only legal from the
// installed state: missing and outdated executables must be built first,
// and a bin-installed executable already has its launcher.
func (s AppStatus) AfterWrapperInstall() (AppStatus, error) {
	if s.code != codeInstalled {
		return s, &StatusError{
			Status: s.String(),
			Reason: "a launcher can only be installed for a compiled executable",
		}
	}
	return AppBinInstalled(), nil
}

// checkLibStatus enforces the identity/status pairing rule at record
// construction: outdated is only representable for local packages.
func checkLibStatus(p ResolvedPackage, s LibStatus) error {
	if s.IsOutdated() && p.Kind() != KindLocal {
		return &StatusError{
			Status: s.String(),
			Reason: "only a local package can change after install, " + p.Kind().String() + " content is immutable",
		}
	}
	return nil
}

// checkAppStatus is the executable counterpart of checkLibStatus.
func checkAppStatus(p ResolvedPackage, s AppStatus) error {
	if s.IsOutdated() && p.Kind() != KindLocal {
		return &StatusError{
			Status: s.String(),
			Reason: "only a local package can change after install, " + p.Kind().String() + " content is immutable",
		}
	}
	return nil
}
