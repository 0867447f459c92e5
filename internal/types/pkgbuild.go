package types

// Pkgbuild holds the fields extracted from a PKGBUILD build descriptor.
// Every value is an opaque string; no version ordering or dependency
// semantics are attached at this layer. The descriptor file itself is
// the source of truth and this struct is rebuilt from it on every run.
type Pkgbuild struct {
	Name        string
	Version     string
	Release     string
	Description string
	URL         string
	Arch        []string
	License     []string
	Depends     []string
	MakeDepends []string
}
