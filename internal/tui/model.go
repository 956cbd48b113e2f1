// Package tui implements the interactive palette preview.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tonal/pkg/palette"
)

const inputCharLimit = 16

// GeneratedMsg carries the result of generating a palette from user input.
type GeneratedMsg struct {
	Input   string
	Palette palette.Palette
	Err     error
}

// Model contains the Bubbletea state for the palette preview.
type Model struct {
	input    textinput.Model
	palette  palette.Palette
	ready    bool
	err      error
	width    int
	quitting bool
}

// NewModel constructs a preview. A non-empty initial color is generated
// immediately so the first frame already shows a palette.
func NewModel(initial string) Model {
	ti := textinput.New()
	ti.Placeholder = "#3b82f6"
	ti.Prompt = "base › "
	ti.CharLimit = inputCharLimit
	ti.SetValue(initial)
	ti.Focus()

	m := Model{input: ti}
	if strings.TrimSpace(initial) != "" {
		m = m.apply(generate(initial))
	}
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Palette returns the palette currently on screen and whether one exists.
func (m Model) Palette() (palette.Palette, bool) {
	return m.palette, m.ready
}

// Err returns the error from the most recent generation, if any.
func (m Model) Err() error {
	return m.err
}

// Value returns the text currently in the input.
func (m Model) Value() string {
	return m.input.Value()
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// apply records a generation result. A failed generation keeps the previous
// palette on screen.
func (m Model) apply(msg GeneratedMsg) Model {
	if msg.Err != nil {
		m.err = msg.Err
		return m
	}
	m.err = nil
	m.palette = msg.Palette
	m.ready = true
	return m
}

func generate(input string) GeneratedMsg {
	p, err := palette.Generate(input)
	return GeneratedMsg{Input: input, Palette: p, Err: err}
}

func generateCmd(input string) tea.Cmd {
	return func() tea.Msg {
		return generate(input)
	}
}
