package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ManifestFilename), []byte(contents), 0o600))

	return root
}

// TestReadVersion reads the version field of a well-formed manifest.
func TestReadVersion(t *testing.T) {
	t.Parallel()

	root := writeManifest(t, `{"name": "@notes/electron", "version": "0.9.4-beta.2"}`)

	version, err := ReadVersion(root)
	require.NoError(t, err)
	require.Equal(t, "0.9.4-beta.2", version)
}

// TestReadVersion_Errors covers missing file, malformed JSON and missing version.
func TestReadVersion_Errors(t *testing.T) {
	t.Parallel()

	_, err := ReadVersion(t.TempDir())
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadVersion(writeManifest(t, `{"version": `))
	require.Error(t, err)

	_, err = ReadVersion(writeManifest(t, `{"name": "notes"}`))
	require.ErrorIs(t, err, ErrVersionMissing)
}
