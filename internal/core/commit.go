package core

import "strings"

// Commit is a fully resolved commit hash (or tag pinned as one).
type Commit string

// String returns the commit hash as a plain string.
func (c Commit) String() string {
	return string(c)
}

// Textual prefixes for the two branch-tracking commit reference forms.
// Anything else parses as an exact reference.
const (
	latestPrefix = "latest:"
	fetchPrefix  = "fetch-latest:"
)

type commitKind uint8

const (
	commitExact commitKind = iota
	commitLatest
	commitFetch
)

// CommitRef selects which state of a remote repository to use: an exact
// hash or tag, the tip of a branch resolved once per session, or the tip
// of a branch re-fetched on every resolution.
type CommitRef struct {
	kind commitKind

	// hash or tag for an exact reference, branch name otherwise
	value string
}

// ExactRef returns a reference pinned to a specific hash or tag.
func ExactRef(hashOrTag string) CommitRef {
	return CommitRef{kind: commitExact, value: hashOrTag}
}

// LatestRef returns a reference to the tip of a branch, resolved once and
// then treated as exact for the rest of the session.
func LatestRef(branch string) CommitRef {
	return CommitRef{kind: commitLatest, value: branch}
}

// FetchRef returns a reference to the tip of a branch that is re-queried
// on every resolution, bypassing any cached result.
func FetchRef(branch string) CommitRef {
	return CommitRef{kind: commitFetch, value: branch}
}

// ParseCommitRef parses the textual form of a commit reference:
// "latest:<branch>", "fetch-latest:<branch>", or anything else as an
// exact hash or tag. It never fails; unrecognized forms deliberately fall
// back to an exact reference so that configuration files in the wild
// keep parsing.
func ParseCommitRef(s string) CommitRef {
	if branch, ok := strings.CutPrefix(s, fetchPrefix); ok {
		return FetchRef(branch)
	}
	if branch, ok := strings.CutPrefix(s, latestPrefix); ok {
		return LatestRef(branch)
	}
	return ExactRef(s)
}

// String renders the canonical textual form. It is the exact inverse of
// ParseCommitRef for all three forms.
func (c CommitRef) String() string {
	switch c.kind {
	case commitLatest:
		return latestPrefix + c.value
	case commitFetch:
		return fetchPrefix + c.value
	default:
		return c.value
	}
}

// AsExact returns the pinned hash or tag if the reference is exact.
func (c CommitRef) AsExact() (string, bool) {
	return c.value, c.kind == commitExact
}

// AsLatest returns the tracked branch if the reference is a
// resolve-once branch tip.
func (c CommitRef) AsLatest() (string, bool) {
	return c.value, c.kind == commitLatest
}

// AsFetch returns the tracked branch if the reference is an
// always-re-fetch branch tip.
func (c CommitRef) AsFetch() (string, bool) {
	return c.value, c.kind == commitFetch
}

// TipLookup is the branch-tip resolution collaborator. Implementations
// perform the actual (network) query; the Tip/FreshTip split is what makes
// the Latest-versus-Fetch distinction observable: Tip may serve a result
// cached earlier in the session, FreshTip must always re-query.
type TipLookup interface {
	// Tip returns the tip commit of branch at url. A cached result from
	// the same session may be returned.
	Tip(url, branch string) (Commit, error)

	// FreshTip returns the tip commit of branch at url, always performing
	// a fresh query.
	FreshTip(url, branch string) (Commit, error)
}

// Resolve pins the reference to a concrete commit. Exact references
// resolve to themselves without consulting the lookup; Latest and Fetch
// invoke the lookup for the tip of their branch, through the cached and
// fresh paths respectively.
func (c CommitRef) Resolve(url string, tips TipLookup) (Commit, error) {
	switch c.kind {
	case commitLatest:
		return tips.Tip(url, c.value)
	case commitFetch:
		return tips.FreshTip(url, c.value)
	default:
		return Commit(c.value), nil
	}
}
