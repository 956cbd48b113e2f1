package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewWithoutPalette(t *testing.T) {
	out := NewModel("").View()

	assert.Contains(t, out, "tonal")
	assert.Contains(t, out, "Type a base color")
	assert.Contains(t, out, helpText)
	assert.NotContains(t, out, "base 500")
}

func TestViewShowsPalette(t *testing.T) {
	m := NewModel("#3b82f6")
	out := m.View()

	p, _ := m.Palette()
	for _, hex := range p.Hexes() {
		assert.Contains(t, out, hex)
	}
	assert.Contains(t, out, "base 500")
	assert.NotContains(t, out, "invalid")
}

func TestViewShowsError(t *testing.T) {
	out := NewModel("#zzz").View()

	assert.Contains(t, out, "invalid")
	assert.Contains(t, out, `invalid color "#zzz"`)
}

func TestViewFitsWindowWidth(t *testing.T) {
	m := NewModel("#3b82f6")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 44, Height: 20})
	m = updated.(Model)

	out := m.View()
	// narrow cells drop the hex row
	assert.NotContains(t, out, "#e9fbff")

	var stripLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "500") && strings.Contains(line, "950") {
			stripLine = line
		}
	}
	require.NotEmpty(t, stripLine)
	assert.LessOrEqual(t, len(strings.TrimRight(stripLine, " ")), 44)
}

func TestViewEmptyWhenQuitting(t *testing.T) {
	updated, _ := NewModel("#3b82f6").Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, updated.(Model).View())
}
