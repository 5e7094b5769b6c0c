package database

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/idrispack/cli/internal/core"
)

// Key columns of the persisted format. External tooling parses this file
// by convention, so the layout is fixed: keys in the [idris2] section are
// padded to the width of "version", keys in [db.*] sections to the width
// of "packagePath".
const (
	headerKeyWidth = len("version")
	entryKeyWidth  = len("packagePath")
)

// Encode renders the database in its persisted text form. The output is
// deterministic: [db.*] sections appear in name-sorted order, so two
// databases with identical contents always serialize identically.
func Encode(d DB) string {
	var b strings.Builder

	b.WriteString("[idris2]\n")
	writeKey(&b, headerKeyWidth, "url", strconv.Quote(d.URL))
	writeKey(&b, headerKeyWidth, "version", strconv.Quote(d.Version))
	writeKey(&b, headerKeyWidth, "commit", strconv.Quote(d.Commit.String()))

	for _, name := range d.Names() {
		pkg, _ := d.Lookup(name)
		b.WriteByte('\n')
		fmt.Fprintf(&b, "[db.%s]\n", sectionKey(name))
		writeEntry(&b, pkg)
	}

	return b.String()
}

// sectionKey renders a package name as a table key. Names that are not
// bare keys (anything beyond letters, digits, dashes, underscores) are
// quoted so Decode can always read the text back.
func sectionKey(name string) string {
	if name == "" {
		return strconv.Quote(name)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return strconv.Quote(name)
		}
	}
	return name
}

func writeEntry(b *strings.Builder, pkg core.Package) {
	writeKey(b, entryKeyWidth, "type", strconv.Quote(pkg.Kind().String()))

	switch pkg.Kind() {
	case core.KindGitHub:
		g, _ := pkg.AsGitHub()
		writeKey(b, entryKeyWidth, "url", strconv.Quote(g.URL))
		writeKey(b, entryKeyWidth, "commit", strconv.Quote(g.Commit.String()))
		writeKey(b, entryKeyWidth, "ipkg", strconv.Quote(g.ManifestPath))
		writeKey(b, entryKeyWidth, "packagePath", strconv.FormatBool(g.PackagePath))
	case core.KindLocal:
		l, _ := pkg.AsLocal()
		writeKey(b, entryKeyWidth, "path", strconv.Quote(l.Dir))
		writeKey(b, entryKeyWidth, "ipkg", strconv.Quote(l.ManifestPath))
		writeKey(b, entryKeyWidth, "packagePath", strconv.FormatBool(l.PackagePath))
	case core.KindCore:
		// core entries carry no location fields
	}
}

func writeKey(b *strings.Builder, width int, key, value string) {
	fmt.Fprintf(b, "%-*s = %s\n", width, key, value)
}
