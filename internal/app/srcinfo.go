package app

import (
	"github.com/rs/zerolog/log"

	"github.com/APoniatowski/awscli-local/internal/core"
)

// GenerateSrcinfo regenerates the derived metadata file from the
// descriptor. The output is a pure function of the descriptor text and
// the target file is overwritten unconditionally.
func (s Service) GenerateSrcinfo(req SrcinfoRequest) (SrcinfoResult, error) {
	pkg, err := s.Pkgbuild.Load(req.PkgbuildPath)
	if err != nil {
		return SrcinfoResult{}, err
	}
	content := core.RenderSrcinfo(pkg)
	if err := s.Srcinfo.Write(req.SrcinfoPath, content); err != nil {
		return SrcinfoResult{}, err
	}
	log.Info().
		Str("package", pkg.Name).
		Str("path", req.SrcinfoPath).
		Msg("derived metadata regenerated")
	return SrcinfoResult{PackageName: pkg.Name, Path: req.SrcinfoPath}, nil
}
