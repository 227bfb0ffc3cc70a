package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := RootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCheckValidDocument(t *testing.T) {
	path := writeFile(t, "doc.json", `{"a":1}`)

	_, errOut, err := runCommand(t, "check", "-s", path)
	require.NoError(t, err)
	require.Contains(t, errOut, "No problems found")
}

func TestCheckInvalidDocument(t *testing.T) {
	path := writeFile(t, "doc.json", `{"a":}`)

	out, _, err := runCommand(t, "check", "-s", path)
	require.Error(t, err)
	require.Contains(t, out, "error [")
}

func TestCheckYamlModeSkipsJSONDiagnostics(t *testing.T) {
	path := writeFile(t, "doc.yaml", "a: 1\n")

	_, errOut, err := runCommand(t, "check", "-s", path, "--mode", "yaml")
	require.NoError(t, err)
	require.Contains(t, errOut, "No problems found")
}

func TestDocsRendersEndpoints(t *testing.T) {
	path := writeFile(t, "api.json", `{"paths":{"/users":{"get":{"summary":"List users","parameters":[{"name":"limit","in":"query","type":"integer"}]}}}}`)

	out, _, err := runCommand(t, "docs", "-s", path)
	require.NoError(t, err)
	require.Contains(t, out, "GET /users - List users")
	require.Contains(t, out, "Query Parameters")
	require.Contains(t, out, "limit: integer")
}

func TestDocsStrictWarnsOnVersionlessDocument(t *testing.T) {
	path := writeFile(t, "api.json", `{"paths":{}}`)

	_, errOut, err := runCommand(t, "docs", "-s", path, "--strict")
	require.NoError(t, err)
	require.Contains(t, errOut, "Warning:")
}

func TestDocsMissingSpec(t *testing.T) {
	_, _, err := runCommand(t, "docs")
	require.Error(t, err)
	require.Contains(t, err.Error(), "spec file is required")
}
