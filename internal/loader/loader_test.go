package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"paths":{"/things":{"get":{}}}}`), 0644))

	result, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, result.Document.Endpoints, 1)
	require.NotEmpty(t, result.RawData)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading spec file")
}

func TestLoadFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"paths":`), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid specification")
}

func TestStrictWarningsVersionless(t *testing.T) {
	// the lenient path accepts this document; the strict pass flags it
	warnings := StrictWarnings([]byte(`{"paths":{}}`))
	require.NotEmpty(t, warnings)
}
