package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibStatus_States(t *testing.T) {
	assert.True(t, LibMissing().IsMissing())
	assert.True(t, LibInstalled().IsInstalled())

	local := LocalPkg{Dir: "/p", ManifestPath: "p.ipkg"}
	assert.True(t, local.OutdatedLib().IsOutdated())

	assert.Equal(t, "missing", LibMissing().String())
	assert.Equal(t, "installed", LibInstalled().String())
	assert.Equal(t, "outdated", local.OutdatedLib().String())
}

func TestLibStatus_AfterBuild(t *testing.T) {
	local := LocalPkg{Dir: "/p"}

	assert.True(t, LibMissing().AfterBuild().IsInstalled())
	assert.True(t, local.OutdatedLib().AfterBuild().IsInstalled())
	assert.True(t, LibInstalled().AfterBuild().IsInstalled())
}

func TestAppStatus_States(t *testing.T) {
	assert.True(t, AppMissing().IsMissing())
	assert.True(t, AppInstalled().IsInstalled())
	assert.True(t, AppBinInstalled().IsBinInstalled())

	local := LocalPkg{Dir: "/p"}
	assert.True(t, local.OutdatedApp().IsOutdated())
	assert.Equal(t, "bin-installed", AppBinInstalled().String())
}

func TestAppStatus_AfterBuild(t *testing.T) {
	local := LocalPkg{Dir: "/p"}

	assert.True(t, AppMissing().AfterBuild().IsInstalled())
	assert.True(t, local.OutdatedApp().AfterBuild().IsInstalled())

	// A launcher already on the bin directory survives a rebuild.
	assert.True(t, AppBinInstalled().AfterBuild().IsBinInstalled())
}

func TestAppStatus_AfterWrapperInstall(t *testing.T) {
	s, err := AppInstalled().AfterWrapperInstall()
	require.NoError(t, err)
	assert.True(t, s.IsBinInstalled())

	// Missing and outdated executables must be built first, and a
	// bin-installed one already has its launcher.
	local := LocalPkg{Dir: "/p"}
	for _, bad := range []AppStatus{AppMissing(), local.OutdatedApp(), AppBinInstalled()} {
		_, err := bad.AfterWrapperInstall()
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, bad.String(), statusErr.Status)
	}
}

func TestOutdated_RejectedForNonLocalIdentities(t *testing.T) {
	local := LocalPkg{Dir: "/p", ManifestPath: "p.ipkg"}
	outdated := local.OutdatedLib()

	github := ResolvedGitHubPackage(ResolvedGitHubPkg{URL: "https://x/y", Commit: "abc"})
	corePkg := ResolvedCorePackage(Base)

	// Exhaustive per variant: pairing outdated with an immutable
	// identity fails at construction for every record type.
	for _, pkg := range []ResolvedPackage{github, corePkg} {
		_, err := NewDepEntry("dep", pkg, outdated)
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)

		_, err = NewResolvedLib("lib", pkg, stubManifest{}, outdated, nil)
		require.ErrorAs(t, err, &statusErr)

		_, err = NewResolvedApp("app", pkg, stubManifest{}, local.OutdatedApp(), nil, "app")
		require.ErrorAs(t, err, &statusErr)
	}
}

func TestOutdated_AcceptedForLocalIdentity(t *testing.T) {
	local := LocalPkg{Dir: "/p", ManifestPath: "p.ipkg"}
	pkg := ResolvedLocalPackage(local)

	entry, err := NewDepEntry("dep", pkg, local.OutdatedLib())
	require.NoError(t, err)
	assert.True(t, entry.Status().IsOutdated())

	lib, err := NewResolvedLib("lib", pkg, stubManifest{}, local.OutdatedLib(), nil)
	require.NoError(t, err)
	assert.True(t, lib.Status().IsOutdated())

	app, err := NewResolvedApp("app", pkg, stubManifest{}, local.OutdatedApp(), nil, "app")
	require.NoError(t, err)
	assert.True(t, app.Status().IsOutdated())
}

func TestWithStatus_Revalidates(t *testing.T) {
	local := LocalPkg{Dir: "/p"}
	github := ResolvedGitHubPackage(ResolvedGitHubPkg{URL: "https://x/y", Commit: "abc"})

	lib, err := NewResolvedLib("lib", github, stubManifest{}, LibMissing(), nil)
	require.NoError(t, err)

	installed, err := lib.WithStatus(LibInstalled())
	require.NoError(t, err)
	assert.True(t, installed.Status().IsInstalled())

	_, err = lib.WithStatus(local.OutdatedLib())
	var statusErr *StatusError
	assert.ErrorAs(t, err, &statusErr)
}
