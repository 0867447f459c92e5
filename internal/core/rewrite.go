package core

import (
	"context"
	"regexp"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/APoniatowski/awscli-local/internal/types"
)

var (
	versionAssignPattern  = regexp.MustCompile(`pkgver=.+`)
	releaseAssignPattern  = regexp.MustCompile(`pkgrel=.+`)
	sourceSuffixPattern   = regexp.MustCompile(`(source=\([^)]*https://files\.pythonhosted\.org/packages/)[^")]+([^)]*\))`)
	checksumSkipPattern   = regexp.MustCompile(`sha256sums=\('SKIP'\)`)
	checksumAssignPattern = regexp.MustCompile(`sha256sums=\('[^']*'\)`)
	sourceAssignPattern   = regexp.MustCompile(`source=\([^)]+\)`)
)

// ApplyUpdate rewrites the version, release counter, source URL, and
// checksum assignments on an in-memory copy of the descriptor text.
// The caller persists the result only after every substitution has
// succeeded, so a failed update never leaves a partial rewrite on disk.
func ApplyUpdate(ctx context.Context, content string, version string, record types.ReleaseRecord) (string, error) {
	assert.NotEmpty(ctx, version, "target version must be set")
	assert.NotEmpty(ctx, record.SHA256, "release record digest must be set")

	if !versionAssignPattern.MatchString(content) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("required field not found: pkgver")
	}
	updated := versionAssignPattern.ReplaceAllLiteralString(content, "pkgver="+version)
	// A new upstream version always starts a fresh release lineage.
	updated = releaseAssignPattern.ReplaceAllLiteralString(updated, "pkgrel=1")
	updated = rewriteSourceURL(updated, record.SourceURL)
	updated = rewriteChecksum(updated, record.SHA256)
	return updated, nil
}

// rewriteSourceURL substitutes only the filename-bearing suffix of the
// versioned download path inside the source array, preserving the
// surrounding URL template text.
func rewriteSourceURL(content string, downloadURL string) string {
	if !strings.Contains(content, "source=(") {
		return content
	}
	suffix := downloadURL
	if idx := strings.LastIndex(downloadURL, "packages/"); idx >= 0 {
		suffix = downloadURL[idx+len("packages/"):]
	}
	return sourceSuffixPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := sourceSuffixPattern.FindStringSubmatch(match)
		return groups[1] + suffix + groups[2]
	})
}

// rewriteChecksum applies three branches in priority order: the SKIP
// sentinel is replaced outright, an existing assignment is replaced in
// place, and a descriptor without any checksum assignment gets one
// appended right after the source assignment. Descriptors arrive in
// any of these three states and the rewrite must land in the same
// single-assignment state regardless.
func rewriteChecksum(content string, digest string) string {
	replacement := "sha256sums=('" + digest + "')"
	switch {
	case checksumSkipPattern.MatchString(content):
		return checksumSkipPattern.ReplaceAllLiteralString(content, replacement)
	case strings.Contains(content, "sha256sums=("):
		return checksumAssignPattern.ReplaceAllLiteralString(content, replacement)
	default:
		loc := sourceAssignPattern.FindStringIndex(content)
		if loc == nil {
			return content
		}
		return content[:loc[1]] + "\n" + replacement + content[loc[1]:]
	}
}
