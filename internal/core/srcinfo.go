package core

import (
	"strings"

	"github.com/APoniatowski/awscli-local/internal/types"
)

// RenderSrcinfo produces the derived metadata text for a descriptor:
// a pkgbase header block with one line per scalar and array element,
// then a pkgname trailer. Array elements keep their source order, so
// regenerating without a descriptor change is byte-identical.
func RenderSrcinfo(pkg types.Pkgbuild) string {
	lines := []string{
		"pkgbase = " + pkg.Name,
		"\tpkgdesc = " + pkg.Description,
		"\tpkgver = " + pkg.Version,
		"\tpkgrel = " + pkg.Release,
		"\turl = " + pkg.URL,
	}
	for _, arch := range pkg.Arch {
		lines = append(lines, "\tarch = "+arch)
	}
	for _, license := range pkg.License {
		lines = append(lines, "\tlicense = "+license)
	}
	for _, dep := range pkg.Depends {
		lines = append(lines, "\tdepends = "+dep)
	}
	for _, dep := range pkg.MakeDepends {
		lines = append(lines, "\tmakedepends = "+dep)
	}
	lines = append(lines, "", "pkgname = "+pkg.Name)
	return strings.Join(lines, "\n") + "\n"
}
