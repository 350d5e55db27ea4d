package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSheets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "verse.cm"), []byte("C G"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("# notes"), 0o644))

	sheets, err := LoadSheets(dir)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Equal(t, "C G", sheets[0].Text)

	single, err := LoadSheets(filepath.Join(dir, "notes.md"))
	require.NoError(t, err)
	assert.Equal(t, "# notes", single[0].Text)

	_, err = LoadSheets(filepath.Join(dir, "missing.cm"))
	assert.Error(t, err)
}
