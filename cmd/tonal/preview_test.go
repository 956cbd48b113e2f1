package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewCommandRendersStaticSwatches(t *testing.T) {
	stdout, _, err := executeCommand("preview", "#3b82f6")
	require.NoError(t, err)

	for _, hex := range blueHexes {
		assert.Contains(t, stdout, hex)
	}
	assert.Contains(t, stdout, "base 500")
	assert.Contains(t, stdout, "oklch(0.623 0.188 259.815)")
}

func TestPreviewCommandNeedsColorWithoutTerminal(t *testing.T) {
	_, _, err := executeCommand("preview")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdout is not a terminal")
}

func TestPreviewCommandInvalidColor(t *testing.T) {
	_, _, err := executeCommand("preview", "#zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid color")
}

func TestCommandErrorFormat(t *testing.T) {
	err := newCommandError("build palettes", "loading palettes.yaml", assert.AnError, "Fix it.")

	assert.Equal(t, "Failed to build palettes: loading palettes.yaml\n\nError: "+assert.AnError.Error()+"\n\nSuggestion: Fix it.", err.Error())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestIsTerminalRejectsBuffers(t *testing.T) {
	assert.False(t, isTerminal(&struct{}{}))
	assert.False(t, isTerminal(nil))
}
