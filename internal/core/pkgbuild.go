package core

import (
	"regexp"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/APoniatowski/awscli-local/internal/types"
)

// Field extraction is pattern based: PKGBUILDs are shell scripts, but
// the fields the tooling cares about are plain key assignments that a
// regexp pulls out without evaluating anything.
var (
	pkgnamePattern = regexp.MustCompile(`pkgname=([^\s]+)`)
	pkgverPattern  = regexp.MustCompile(`pkgver=([^\s]+)`)
	pkgrelPattern  = regexp.MustCompile(`pkgrel=([^\s]+)`)
	pkgdescPattern = regexp.MustCompile(`pkgdesc="([^"]+)"`)
	urlPattern     = regexp.MustCompile(`url="([^"]+)"`)

	// The checker takes the whole remainder of the line so the value
	// round-trips exactly as written.
	checkerVersionPattern = regexp.MustCompile(`pkgver=(.+)`)

	arrayPatterns = map[string]*regexp.Regexp{
		"arch":        regexp.MustCompile(`(?m)^arch=\(([^)]*)\)`),
		"license":     regexp.MustCompile(`(?m)^license=\(([^)]*)\)`),
		"depends":     regexp.MustCompile(`(?m)^depends=\(([^)]*)\)`),
		"makedepends": regexp.MustCompile(`(?m)^makedepends=\(([^)]*)\)`),
	}

	// Array items may be single-quoted, double-quoted, or bare tokens.
	arrayItemPattern = regexp.MustCompile(`'([^']+)'|"([^"]+)"|([^\s'"]+)`)
)

// ExtractVersion returns the value of the pkgver assignment in the
// descriptor text.
func ExtractVersion(content string) (string, error) {
	match := checkerVersionPattern.FindStringSubmatch(content)
	if match == nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("required field not found: pkgver")
	}
	return match[1], nil
}

// ParsePkgbuild extracts the scalar and array fields the derived
// metadata covers. Missing required scalars are an error; dependency
// arrays may be legitimately empty, while empty arch and license
// arrays fall back to single-element defaults.
func ParsePkgbuild(content string) (types.Pkgbuild, error) {
	pkg := types.Pkgbuild{}
	scalars := []struct {
		name    string
		pattern *regexp.Regexp
		target  *string
	}{
		{"pkgname", pkgnamePattern, &pkg.Name},
		{"pkgver", pkgverPattern, &pkg.Version},
		{"pkgrel", pkgrelPattern, &pkg.Release},
		{"pkgdesc", pkgdescPattern, &pkg.Description},
		{"url", urlPattern, &pkg.URL},
	}
	for _, scalar := range scalars {
		match := scalar.pattern.FindStringSubmatch(content)
		if match == nil {
			return types.Pkgbuild{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("required field not found: " + scalar.name)
		}
		*scalar.target = match[1]
	}
	pkg.Arch = ExtractArray(content, "arch")
	if len(pkg.Arch) == 0 {
		pkg.Arch = []string{"any"}
	}
	pkg.License = ExtractArray(content, "license")
	if len(pkg.License) == 0 {
		pkg.License = []string{"unknown"}
	}
	pkg.Depends = ExtractArray(content, "depends")
	pkg.MakeDepends = ExtractArray(content, "makedepends")
	return pkg, nil
}

// ExtractArray returns the items of a name=(...) assignment in source
// order. A missing assignment and an empty one both yield nil.
func ExtractArray(content string, name string) []string {
	pattern, ok := arrayPatterns[name]
	if !ok {
		pattern = regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(name) + `=\(([^)]*)\)`)
	}
	match := pattern.FindStringSubmatch(content)
	if match == nil {
		return nil
	}
	var items []string
	for _, groups := range arrayItemPattern.FindAllStringSubmatch(match[1], -1) {
		for _, value := range groups[1:] {
			if value != "" {
				items = append(items, value)
				break
			}
		}
	}
	return items
}
