package ports

import (
	"context"

	"github.com/APoniatowski/awscli-local/internal/types"
)

// PackageIndexPort queries the public package index. Every method is a
// single request attempt; callers do not retry.
type PackageIndexPort interface {
	LatestVersion(ctx context.Context, name string) (string, error)
	ReleaseRecord(ctx context.Context, name string, version string) (types.ReleaseRecord, error)
	DownloadDigest(ctx context.Context, url string) (string, error)
}
