package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"

	"github.com/APoniatowski/awscli-local/internal/core"
	"github.com/APoniatowski/awscli-local/internal/shared"
)

// Update fetches the release record for the target version, optionally
// re-downloads the artifact to verify the published digest, and
// rewrites the descriptor. All substitutions happen on an in-memory
// copy; the file is written back only after every stage has succeeded.
func (s Service) Update(ctx context.Context, req UpdateRequest) (UpdateResult, error) {
	name := shared.NormalizePipName(req.Package)
	if name == "" {
		return UpdateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}
	version := strings.TrimSpace(req.Version)
	if version == "" {
		return UpdateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("target version is required")
	}
	if _, err := pep440.Parse(version); err != nil {
		return UpdateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("target version is not a valid PEP 440 version").
			WithCause(err)
	}

	index := s.index(req.IndexURL, req.HTTPTimeoutSec)
	record, err := index.ReleaseRecord(ctx, name, version)
	if err != nil {
		return UpdateResult{}, err
	}
	log.Info().
		Str("package", name).
		Str("version", version).
		Str("url", record.SourceURL).
		Msg("release record fetched")

	if req.Verify {
		// One extra full download buys a trust boundary at the point
		// of ingestion: the descriptor only ever records a digest we
		// computed ourselves from the artifact bytes.
		digest, err := index.DownloadDigest(ctx, record.SourceURL)
		if err != nil {
			return UpdateResult{}, err
		}
		if digest != record.SHA256 {
			return UpdateResult{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("checksum mismatch: index reports " + record.SHA256 + ", calculated " + digest)
		}
		log.Info().Str("sha256", digest).Msg("checksum verification passed")
	}

	content, err := s.Pkgbuild.ReadText(req.PkgbuildPath)
	if err != nil {
		return UpdateResult{}, err
	}
	updated, err := core.ApplyUpdate(ctx, content, version, record)
	if err != nil {
		return UpdateResult{}, err
	}
	if err := s.Pkgbuild.WriteText(req.PkgbuildPath, updated); err != nil {
		return UpdateResult{}, err
	}
	log.Info().
		Str("package", name).
		Str("version", version).
		Msg("descriptor updated")
	return UpdateResult{
		Version:   version,
		SourceURL: record.SourceURL,
		SHA256:    record.SHA256,
	}, nil
}
