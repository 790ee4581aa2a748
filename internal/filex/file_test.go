package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNested(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "data", "db", "fruitie.db")

	require.NoError(t, EnsureParentDir(path))

	st, err := os.Stat(filepath.Join(root, "data", "db"))
	require.NoError(t, err)
	require.True(t, st.IsDir())
}

func TestEnsureParentDir_BareFileName(t *testing.T) {
	require.NoError(t, EnsureParentDir("fruitie.db"))
}
