package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"

	"github.com/APoniatowski/awscli-local/internal/core"
	"github.com/APoniatowski/awscli-local/internal/shared"
	"github.com/APoniatowski/awscli-local/internal/types"
)

// Check compares the descriptor's pkgver against the latest version on
// the index. The decision is literal string equality: any difference,
// including a downgrade or a non-monotonic version string, registers as
// needing an update so a human reviews it.
func (s Service) Check(ctx context.Context, req CheckRequest) (types.CheckResult, error) {
	name := shared.NormalizePipName(req.Package)
	if name == "" {
		return types.CheckResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}
	content, err := s.Pkgbuild.ReadText(req.PkgbuildPath)
	if err != nil {
		return types.CheckResult{}, err
	}
	current, err := core.ExtractVersion(content)
	if err != nil {
		return types.CheckResult{}, err
	}
	latest, err := s.index(req.IndexURL, req.HTTPTimeoutSec).LatestVersion(ctx, name)
	if err != nil {
		return types.CheckResult{}, err
	}
	result := types.CheckResult{
		CurrentVersion: current,
		LatestVersion:  latest,
		NeedsUpdate:    current != latest,
	}
	logComparison(result)

	if strings.TrimSpace(req.OutputPath) != "" {
		if err := s.Actions.Append(req.OutputPath, result.Entries()); err != nil {
			return types.CheckResult{}, err
		}
	}
	if strings.TrimSpace(req.ReportPath) != "" {
		if err := s.Report.Write(req.ReportPath, result); err != nil {
			return types.CheckResult{}, err
		}
	}
	return result, nil
}

// logComparison annotates the check with the PEP 440 ordering of the
// two versions when both parse. Purely informational; the needs-update
// decision above never consults it.
func logComparison(result types.CheckResult) {
	event := log.Info().
		Str("current", result.CurrentVersion).
		Str("latest", result.LatestVersion).
		Bool("needs_update", result.NeedsUpdate)
	if !result.NeedsUpdate {
		event.Msg("descriptor is up to date")
		return
	}
	current, errCurrent := pep440.Parse(result.CurrentVersion)
	latest, errLatest := pep440.Parse(result.LatestVersion)
	if errCurrent == nil && errLatest == nil {
		switch latest.Compare(current) {
		case -1:
			event.Str("direction", "downgrade")
		case 1:
			event.Str("direction", "upgrade")
		default:
			event.Str("direction", "rebuild")
		}
	}
	event.Msg("update available")
}
