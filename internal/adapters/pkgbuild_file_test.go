package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPkgbuildReadTextMissingFile(t *testing.T) {
	adapter := NewPkgbuildFileAdapter()
	_, err := adapter.ReadText(filepath.Join(t.TempDir(), "PKGBUILD"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestPkgbuildWriteAndReadText(t *testing.T) {
	adapter := NewPkgbuildFileAdapter()
	path := filepath.Join(t.TempDir(), "PKGBUILD")

	require.NoError(t, adapter.WriteText(path, "pkgver=1.0.0\n"))
	content, err := adapter.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "pkgver=1.0.0\n", content)
}

func TestPkgbuildLoadParsesFixture(t *testing.T) {
	data, err := os.ReadFile("../../fixtures/PKGBUILD")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "PKGBUILD")
	require.NoError(t, os.WriteFile(path, data, 0644))

	adapter := NewPkgbuildFileAdapter()
	pkg, err := adapter.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "awscli-local", pkg.Name)
	assert.Equal(t, "1.0.0", pkg.Version)
}

func TestPkgbuildLoadMissingField(t *testing.T) {
	adapter := NewPkgbuildFileAdapter()
	path := filepath.Join(t.TempDir(), "PKGBUILD")
	require.NoError(t, os.WriteFile(path, []byte("pkgname=sample\n"), 0644))

	_, err := adapter.Load(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
