package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idrispack/cli/internal/core"
	"github.com/idrispack/cli/internal/database"
	"github.com/idrispack/cli/internal/manifest"
)

// testWorld lays out a fake checkout area: one directory per package,
// each holding its manifest, plus a database that knows them all.
type testWorld struct {
	root string
	db   database.DB
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	return &testWorld{
		root: t.TempDir(),
		db:   database.New("https://github.com/idris-lang/Idris2", "c0ffee", "0.7.0"),
	}
}

func (w *testWorld) addGitHub(t *testing.T, name, text string) {
	t.Helper()
	w.writeManifest(t, name, text)
	w.db = w.db.Insert(name, core.GitHubPackage(core.GitHubPkg{
		URL:          "https://x/" + name,
		Commit:       core.LatestRef("main"),
		ManifestPath: name + ".ipkg",
	}))
}

func (w *testWorld) addLocal(t *testing.T, name, text string) {
	t.Helper()
	dir := w.writeManifest(t, name, text)
	w.db = w.db.Insert(name, core.LocalPackage(core.LocalPkg{
		Dir:          dir,
		ManifestPath: name + ".ipkg",
	}))
}

func (w *testWorld) writeManifest(t *testing.T, name, text string) string {
	t.Helper()
	dir := filepath.Join(w.root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".ipkg"), []byte(text), 0o644))
	return dir
}

func (w *testWorld) loader() Loader {
	return Loader{
		DB:     w.db,
		Tips:   NewCachedResolver(func(url, branch string) (core.Commit, error) { return "deadbeef", nil }),
		Parser: manifest.FileParser{},
		SrcRoot: func(name string, pkg core.ResolvedPackage) string {
			return filepath.Join(w.root, name)
		},
	}
}

func TestResolveDB_PinsRemoteIdentities(t *testing.T) {
	w := newTestWorld(t)
	w.addGitHub(t, "parser", "package parser\n")
	w.addLocal(t, "mine", "package mine\n")
	w.db = w.db.Insert("base", core.CorePackage(core.Base))

	resolved, err := ResolveDB(w.db, w.loader().Tips)
	require.NoError(t, err)
	require.Len(t, resolved, 3)

	g, ok := resolved["parser"].AsGitHub()
	require.True(t, ok)
	assert.Equal(t, core.Commit("deadbeef"), g.Commit)

	_, ok = resolved["mine"].AsLocal()
	assert.True(t, ok)
	_, ok = resolved["base"].AsCore()
	assert.True(t, ok)
}

func TestLoader_LoadLib(t *testing.T) {
	w := newTestWorld(t)
	w.addGitHub(t, "leaf", "package leaf\n")
	w.addGitHub(t, "mid", "package mid\ndepends = leaf\n")
	w.addGitHub(t, "top", "package top\ndepends = mid\n")

	lib, err := w.loader().LoadLib("top")
	require.NoError(t, err)

	assert.Equal(t, "top", lib.Name())
	assert.Equal(t, []string{"mid"}, lib.Dependencies())
	assert.True(t, lib.Status().IsMissing())

	// The closure is transitive, each name once, dependencies first.
	deps := lib.Deps()
	require.Len(t, deps, 2)
	assert.Equal(t, "leaf", deps[0].Name())
	assert.Equal(t, "mid", deps[1].Name())
}

func TestLoader_ClosureDeduplicatesDiamond(t *testing.T) {
	w := newTestWorld(t)
	w.addGitHub(t, "leaf", "package leaf\n")
	w.addGitHub(t, "left", "package left\ndepends = leaf\n")
	w.addGitHub(t, "right", "package right\ndepends = leaf\n")
	w.addGitHub(t, "top", "package top\ndepends = left, right\n")

	lib, err := w.loader().LoadLib("top")
	require.NoError(t, err)

	var names []string
	for _, d := range lib.Deps() {
		names = append(names, d.Name())
	}
	assert.Equal(t, []string{"leaf", "left", "right"}, names)
}

func TestLoader_LoadApp(t *testing.T) {
	w := newTestWorld(t)
	w.addGitHub(t, "leaf", "package leaf\n")
	w.addLocal(t, "tool", "package tool\nexecutable = tool-bin\nmain = Main\ndepends = leaf\n")

	app, err := w.loader().LoadApp("tool")
	require.NoError(t, err)

	assert.Equal(t, "tool", app.Name())
	assert.Equal(t, "tool-bin", app.Exec())
	assert.True(t, app.Status().IsMissing())
	require.Len(t, app.Deps(), 1)
	assert.Equal(t, "leaf", app.Deps()[0].Name())
}

func TestLoader_LoadAppRejectsLibrary(t *testing.T) {
	w := newTestWorld(t)
	w.addGitHub(t, "parser", "package parser\n")

	_, err := w.loader().LoadApp("parser")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares no executable")
}

func TestLoader_UnknownPackage(t *testing.T) {
	w := newTestWorld(t)

	_, err := w.loader().LoadLib("nonesuch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in database")
}

func TestLoader_StatusFuncFeedsRecords(t *testing.T) {
	w := newTestWorld(t)
	w.addGitHub(t, "leaf", "package leaf\n")
	w.addLocal(t, "mine", "package mine\ndepends = leaf\n")

	l := w.loader()
	l.Status = func(name string, pkg core.ResolvedPackage) core.LibStatus {
		if local, ok := pkg.AsLocal(); ok {
			return local.OutdatedLib()
		}
		return core.LibInstalled()
	}

	lib, err := l.LoadLib("mine")
	require.NoError(t, err)
	assert.True(t, lib.Status().IsOutdated())
	require.Len(t, lib.Deps(), 1)
	assert.True(t, lib.Deps()[0].Status().IsInstalled())
}

func TestLoader_RetagToPlanStage(t *testing.T) {
	w := newTestWorld(t)
	w.addLocal(t, "tool", "package tool\nexecutable = tool\nmain = Main\nsourcedir = src\n")

	l := w.loader()
	app, err := l.LoadApp("tool")
	require.NoError(t, err)

	// The plan stage swaps the raw manifest for the full one without
	// disturbing identity, status, or dependency data.
	full, err := manifest.FileParser{}.Parse(
		app.Identity().ManifestFile(filepath.Join(w.root, "tool")))
	require.NoError(t, err)

	planned := core.RetagApp(app, full)
	assert.Equal(t, app.Name(), planned.Name())
	assert.Equal(t, app.Exec(), planned.Exec())
	assert.Equal(t, "src", planned.Manifest().SourceDir)
}
