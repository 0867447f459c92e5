package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/APoniatowski/awscli-local/internal/adapters"
	"github.com/APoniatowski/awscli-local/internal/core"
	"github.com/APoniatowski/awscli-local/tests/testutil"
)

// TestGoldenSrcinfo renders the derived metadata from the sample
// fixture and compares it against the committed golden file. If the
// golden file does not exist yet (first run), it is written so it can
// be committed.
//
// To update the golden file after an intentional change, delete
// tests/integration/testdata/golden/ and re-run the test.
func TestGoldenSrcinfo(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenPath := filepath.Join(root, "tests", "integration", "testdata", "golden", "SRCINFO")

	pkg, err := adapters.NewPkgbuildFileAdapter().Load(filepath.Join(root, "fixtures", "PKGBUILD"))
	require.NoError(t, err)
	rendered := core.RenderSrcinfo(pkg)

	if _, err := os.Stat(goldenPath); os.IsNotExist(err) {
		require.NoError(t, os.MkdirAll(filepath.Dir(goldenPath), 0755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(rendered), 0644))
		t.Logf("golden file written: %s", goldenPath)
		return
	}

	golden, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	if diff := cmp.Diff(string(golden), rendered); diff != "" {
		t.Errorf("rendered srcinfo differs from golden (-want +got):\n%s", diff)
	}
}
