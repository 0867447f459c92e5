package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/APoniatowski/awscli-local/internal/core"
	"github.com/APoniatowski/awscli-local/internal/types"
)

type PkgbuildFileAdapter struct{}

func NewPkgbuildFileAdapter() PkgbuildFileAdapter {
	return PkgbuildFileAdapter{}
}

func (a PkgbuildFileAdapter) Load(path string) (types.Pkgbuild, error) {
	content, err := a.ReadText(path)
	if err != nil {
		return types.Pkgbuild{}, err
	}
	return core.ParsePkgbuild(content)
}

func (a PkgbuildFileAdapter) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("pkgbuild file not found").
			WithCause(err)
	}
	return string(data), nil
}

func (a PkgbuildFileAdapter) WriteText(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write pkgbuild").
			WithCause(err)
	}
	return nil
}
