package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tonal/pkg/palette"
)

const (
	defaultSwatchWidth = 8
	minSwatchWidth     = 3
	hexLabelWidth      = 7

	// swatches lighter than this get dark label text
	lightSwatchThreshold = 0.6
)

// Swatch renders one cell of solid color with a centred label.
func Swatch(hex, label string, width int, textColor lipgloss.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(textColor).
		Width(width).
		Align(lipgloss.Center).
		Render(label)
}

// SwatchStrip renders a palette as a horizontal row of color cells.
type SwatchStrip struct {
	BaseComponent
	palette palette.Palette
	width   int
	showHex bool
	caption bool
}

// NewSwatchStrip creates a strip for p with hex labels and a base caption.
func NewSwatchStrip(p palette.Palette) *SwatchStrip {
	return &SwatchStrip{
		BaseComponent: NewBaseComponent(),
		palette:       p,
		width:         defaultSwatchWidth,
		showHex:       true,
		caption:       true,
	}
}

// WithCellWidth sets the width of each cell.
func (s *SwatchStrip) WithCellWidth(width int) *SwatchStrip {
	if width < minSwatchWidth {
		width = minSwatchWidth
	}
	s.width = width
	return s
}

// WithHex toggles the hex row under the cells.
func (s *SwatchStrip) WithHex(show bool) *SwatchStrip {
	s.showHex = show
	return s
}

// WithCaption toggles the base color caption.
func (s *SwatchStrip) WithCaption(show bool) *SwatchStrip {
	s.caption = show
	return s
}

// View renders the strip.
func (s *SwatchStrip) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the strip, narrowing cells to fit ctx.Width.
func (s *SwatchStrip) ViewWithContext(ctx RenderContext) string {
	width := s.width
	if ctx.Width > 0 && width*palette.Count > ctx.Width {
		width = ctx.Width / palette.Count
		if width < minSwatchWidth {
			width = minSwatchWidth
		}
	}

	swatches := s.palette.Swatches()
	light := lipgloss.Color(swatches[0].Hex)
	dark := lipgloss.Color(swatches[palette.Count-1].Hex)

	cells := make([]string, len(swatches))
	hexes := make([]string, len(swatches))
	for i, sw := range swatches {
		text := light
		if sw.Color.L > lightSwatchThreshold {
			text = dark
		}
		cells[i] = Swatch(sw.Hex, string(sw.Stop), width, text)
		hexes[i] = lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(sw.Hex)
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, cells...)}
	if s.showHex && width >= hexLabelWidth {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, hexes...))
	}
	if s.caption {
		home := swatches[s.palette.Home()]
		badge := PrimaryBadge("base " + string(home.Stop)).ViewWithContext(ctx.WithTheme(ctx.Theme.WithPrimary(s.palette)))
		rows = append(rows, badge+" "+home.Hex+"  "+s.palette.Base().String())
	}

	return s.ComputeStyle(ctx.Theme).Render(strings.Join(rows, "\n"))
}

// RenderSwatches renders p with the default theme.
func RenderSwatches(p palette.Palette) string {
	return NewSwatchStrip(p).View()
}
