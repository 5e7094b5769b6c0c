package output

import (
	"fmt"

	"github.com/idrispack/cli/internal/core"
)

// shortCommitLen is how many characters of a commit hash are shown in
// human-readable output.
const shortCommitLen = 8

// FormatCommit renders a commit hash shortened for display.
func FormatCommit(c core.Commit) string {
	s := c.String()
	if len(s) > shortCommitLen {
		s = s[:shortCommitLen]
	}
	return StyleDim.Render(s)
}

// FormatLocation renders where a package's source lives: URL and commit
// reference for remote packages, directory for local ones, the bundled
// marker for core ones.
func FormatLocation(pkg core.Package) string {
	switch pkg.Kind() {
	case core.KindGitHub:
		g, _ := pkg.AsGitHub()
		return fmt.Sprintf("%s %s", StyleNoun.Render(g.URL), StyleDim.Render(g.Commit.String()))
	case core.KindLocal:
		l, _ := pkg.AsLocal()
		return StyleNoun.Render(l.Dir)
	default:
		return StyleDim.Render("bundled with compiler")
	}
}

// FormatPackageLine renders one "name  type  location" line for listings.
func FormatPackageLine(name string, pkg core.Package) string {
	return fmt.Sprintf("%s  %-6s  %s", StyleNoun.Render(name), pkg.Kind(), FormatLocation(pkg))
}
