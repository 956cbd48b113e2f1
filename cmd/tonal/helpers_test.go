package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var blueHexes = []string{
	"#e9fbff", "#c6e4ff", "#a3ccff", "#81b4ff", "#5f9bff", "#3b82f6",
	"#2565ce", "#0d4aa6", "#002f81", "#00145d", "#00003b",
}

// executeCommand runs the root command and returns what it wrote to stdout and stderr.
func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "palettes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
