package ports

import "github.com/APoniatowski/awscli-local/internal/types"

// PkgbuildPort reads and writes the build descriptor. The descriptor
// is the single source of truth: Load rebuilds the parsed view from
// the text on every call, and WriteText replaces the file wholesale.
type PkgbuildPort interface {
	Load(path string) (types.Pkgbuild, error)
	ReadText(path string) (string, error)
	WriteText(path string, content string) error
}
