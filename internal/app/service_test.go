package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/APoniatowski/awscli-local/internal/types"
)

// fakeIndex satisfies ports.PackageIndexPort without any network. The
// download counter lets tests assert whether verification fetched the
// artifact.
type fakeIndex struct {
	latest    string
	latestErr error
	record    types.ReleaseRecord
	recordErr error
	digest    string
	digestErr error
	downloads int
}

func (f *fakeIndex) LatestVersion(_ context.Context, _ string) (string, error) {
	return f.latest, f.latestErr
}

func (f *fakeIndex) ReleaseRecord(_ context.Context, _ string, _ string) (types.ReleaseRecord, error) {
	return f.record, f.recordErr
}

func (f *fakeIndex) DownloadDigest(_ context.Context, _ string) (string, error) {
	f.downloads++
	return f.digest, f.digestErr
}

// fakeActions records Append calls so tests can assert the outputs
// file is only touched when a path was provided.
type fakeActions struct {
	calls int
}

func (f *fakeActions) Append(_ string, _ []types.OutputEntry) error {
	f.calls++
	return nil
}

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "PKGBUILD")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

const testDescriptor = `pkgname=sample
pkgver=1.0.0
pkgrel=2
pkgdesc="A sample package"
url="https://example.com/sample"
arch=('any')
license=('MIT')
depends=('python')
makedepends=('python-build')
source=("https://files.pythonhosted.org/packages/aa/bb/sample-1.0.0.tar.gz")
sha256sums=('0000000000000000000000000000000000000000000000000000000000000000')
`
