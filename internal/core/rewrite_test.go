package core

import (
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/APoniatowski/awscli-local/internal/types"
)

const updatableDescriptor = `pkgname=sample
pkgver=1.0.0
pkgrel=3
pkgdesc="A sample package"
url="https://example.com/sample"
arch=('any')
license=('MIT')
source=("https://files.pythonhosted.org/packages/aa/bb/sample-1.0.0.tar.gz")
sha256sums=('0000000000000000000000000000000000000000000000000000000000000000')
`

var testRecord = types.ReleaseRecord{
	Version:   "1.1.0",
	SourceURL: "https://files.pythonhosted.org/packages/cc/dd/sample-1.1.0.tar.gz",
	SHA256:    "1111111111111111111111111111111111111111111111111111111111111111",
}

func TestApplyUpdateReplacesVersionAndRelease(t *testing.T) {
	updated, err := ApplyUpdate(t.Context(), updatableDescriptor, "1.1.0", testRecord)
	require.NoError(t, err)
	assert.Contains(t, updated, "pkgver=1.1.0\n")
	assert.Contains(t, updated, "pkgrel=1\n")
	assert.NotContains(t, updated, "pkgver=1.0.0")
	assert.NotContains(t, updated, "pkgrel=3")
}

func TestApplyUpdateRewritesSourceSuffixOnly(t *testing.T) {
	updated, err := ApplyUpdate(t.Context(), updatableDescriptor, "1.1.0", testRecord)
	require.NoError(t, err)
	assert.Contains(t, updated, `source=("https://files.pythonhosted.org/packages/cc/dd/sample-1.1.0.tar.gz")`)
	assert.NotContains(t, updated, "aa/bb/sample-1.0.0.tar.gz")
}

func TestApplyUpdateChecksumBranches(t *testing.T) {
	wantChecksum := "sha256sums=('" + testRecord.SHA256 + "')"
	tests := []struct {
		name       string
		descriptor string
	}{
		{
			name:       "sentinel placeholder replaced",
			descriptor: strings.Replace(updatableDescriptor, "sha256sums=('0000000000000000000000000000000000000000000000000000000000000000')", "sha256sums=('SKIP')", 1),
		},
		{
			name:       "existing checksum replaced in place",
			descriptor: updatableDescriptor,
		},
		{
			name:       "missing checksum appended after source",
			descriptor: strings.Replace(updatableDescriptor, "sha256sums=('0000000000000000000000000000000000000000000000000000000000000000')\n", "", 1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, err := ApplyUpdate(t.Context(), tt.descriptor, "1.1.0", testRecord)
			require.NoError(t, err)
			assert.Equal(t, 1, strings.Count(updated, "sha256sums="), "exactly one checksum assignment")
			assert.Contains(t, updated, wantChecksum)
		})
	}
}

func TestApplyUpdateAppendsChecksumDirectlyAfterSource(t *testing.T) {
	descriptor := strings.Replace(updatableDescriptor, "sha256sums=('0000000000000000000000000000000000000000000000000000000000000000')\n", "", 1)
	updated, err := ApplyUpdate(t.Context(), descriptor, "1.1.0", testRecord)
	require.NoError(t, err)
	assert.Contains(t, updated,
		"source=(\"https://files.pythonhosted.org/packages/cc/dd/sample-1.1.0.tar.gz\")\nsha256sums=('"+testRecord.SHA256+"')")
}

func TestApplyUpdateIdempotent(t *testing.T) {
	once, err := ApplyUpdate(t.Context(), updatableDescriptor, "1.1.0", testRecord)
	require.NoError(t, err)
	twice, err := ApplyUpdate(t.Context(), once, "1.1.0", testRecord)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestApplyUpdateMissingVersionField(t *testing.T) {
	_, err := ApplyUpdate(t.Context(), "pkgname=sample\npkgrel=1\n", "1.1.0", testRecord)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestApplyUpdateWithoutSourceLeavesChecksumAlone(t *testing.T) {
	descriptor := "pkgname=sample\npkgver=1.0.0\npkgrel=1\n"
	updated, err := ApplyUpdate(t.Context(), descriptor, "1.1.0", testRecord)
	require.NoError(t, err)
	assert.NotContains(t, updated, "sha256sums=")
	assert.Contains(t, updated, "pkgver=1.1.0")
}
