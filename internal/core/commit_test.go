package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTips is a TipLookup that records which path was taken.
type fakeTips struct {
	commit     Commit
	err        error
	tipCalls   int
	freshCalls int
}

func (f *fakeTips) Tip(url, branch string) (Commit, error) {
	f.tipCalls++
	return f.commit, f.err
}

func (f *fakeTips) FreshTip(url, branch string) (Commit, error) {
	f.freshCalls++
	return f.commit, f.err
}

func TestParseCommitRef_RoundTrip(t *testing.T) {
	for _, s := range []string{"latest:main", "fetch-latest:dev", "abc123"} {
		assert.Equal(t, s, ParseCommitRef(s).String())
	}
}

func TestParseCommitRef_Forms(t *testing.T) {
	branch, ok := ParseCommitRef("latest:main").AsLatest()
	require.True(t, ok)
	assert.Equal(t, "main", branch)

	branch, ok = ParseCommitRef("fetch-latest:dev").AsFetch()
	require.True(t, ok)
	assert.Equal(t, "dev", branch)

	hash, ok := ParseCommitRef("v0.7.0").AsExact()
	require.True(t, ok)
	assert.Equal(t, "v0.7.0", hash)
}

func TestParseCommitRef_PermissiveFallback(t *testing.T) {
	// Unrecognized prefixes deliberately parse as exact references.
	ref := ParseCommitRef("newest:main")
	hash, ok := ref.AsExact()
	require.True(t, ok)
	assert.Equal(t, "newest:main", hash)
	assert.Equal(t, "newest:main", ref.String())
}

func TestCommitRef_PredicatesDisjoint(t *testing.T) {
	refs := []CommitRef{ExactRef("abc"), LatestRef("main"), FetchRef("main")}
	for _, ref := range refs {
		var hits int
		if _, ok := ref.AsExact(); ok {
			hits++
		}
		if _, ok := ref.AsLatest(); ok {
			hits++
		}
		if _, ok := ref.AsFetch(); ok {
			hits++
		}
		assert.Equal(t, 1, hits, "exactly one predicate must hold for %s", ref)
	}
}

func TestCommitRef_ResolveExact(t *testing.T) {
	tips := &fakeTips{commit: "deadbeef"}

	commit, err := ExactRef("abc123").Resolve("https://x/y", tips)
	require.NoError(t, err)
	assert.Equal(t, Commit("abc123"), commit)

	// An exact reference never consults the lookup.
	assert.Zero(t, tips.tipCalls)
	assert.Zero(t, tips.freshCalls)
}

func TestCommitRef_ResolveLatest(t *testing.T) {
	tips := &fakeTips{commit: "deadbeef"}

	commit, err := LatestRef("main").Resolve("https://x/y", tips)
	require.NoError(t, err)
	assert.Equal(t, Commit("deadbeef"), commit)
	assert.Equal(t, 1, tips.tipCalls)
	assert.Zero(t, tips.freshCalls)
}

func TestCommitRef_ResolveFetch(t *testing.T) {
	tips := &fakeTips{commit: "deadbeef"}

	commit, err := FetchRef("dev").Resolve("https://x/y", tips)
	require.NoError(t, err)
	assert.Equal(t, Commit("deadbeef"), commit)
	assert.Zero(t, tips.tipCalls)
	assert.Equal(t, 1, tips.freshCalls)
}

func TestCommitRef_ResolveError(t *testing.T) {
	boom := errors.New("boom")
	tips := &fakeTips{err: boom}

	_, err := LatestRef("main").Resolve("https://x/y", tips)
	assert.ErrorIs(t, err, boom)
}
