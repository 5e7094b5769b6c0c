// Package resolve turns authored package identities into resolved ones
// and assembles resolved artifact records from the external
// collaborators: the branch-tip lookup, the fetcher that materializes
// source trees, and the manifest parser.
package resolve

import (
	"sync"

	"github.com/idrispack/cli/internal/core"
)

// TipFunc is the raw branch-tip query, typically backed by the network.
type TipFunc func(url, branch string) (core.Commit, error)

// CachedResolver memoizes branch-tip lookups for the duration of a
// session. Latest references go through Tip and may hit the cache; Fetch
// references go through FreshTip, which always re-queries and refreshes
// the cache. This is the collaborator to which the Latest/Fetch
// distinction is observable.
type CachedResolver struct {
	tip TipFunc

	mu    sync.Mutex
	cache map[tipKey]core.Commit
}

type tipKey struct {
	url    string
	branch string
}

// NewCachedResolver wraps a raw tip query with a session cache.
func NewCachedResolver(tip TipFunc) *CachedResolver {
	return &CachedResolver{tip: tip, cache: make(map[tipKey]core.Commit)}
}

var _ core.TipLookup = (*CachedResolver)(nil)

// Tip implements core.TipLookup, serving cached results when available.
func (r *CachedResolver) Tip(url, branch string) (core.Commit, error) {
	key := tipKey{url: url, branch: branch}

	r.mu.Lock()
	commit, ok := r.cache[key]
	r.mu.Unlock()
	if ok {
		return commit, nil
	}

	return r.FreshTip(url, branch)
}

// FreshTip implements core.TipLookup, always performing a fresh query
// and refreshing the cache with its result.
func (r *CachedResolver) FreshTip(url, branch string) (core.Commit, error) {
	commit, err := r.tip(url, branch)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.cache[tipKey{url: url, branch: branch}] = commit
	r.mu.Unlock()
	return commit, nil
}
