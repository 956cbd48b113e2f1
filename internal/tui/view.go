package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tonal/internal/ui/components"
)

const helpText = "enter: generate   esc: quit"

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := components.DefaultContext().WithWidth(m.width)
	if m.ready {
		ctx = ctx.WithTheme(ctx.Theme.WithPrimary(m.palette))
	}

	sections := []string{
		components.NewHeader("tonal").
			WithSubtitle("Type a base color and press enter").
			ViewWithContext(ctx),
		sectionStyle.Render(m.input.View()),
	}

	if m.err != nil {
		badge := components.ErrorBadge("invalid").ViewWithContext(ctx)
		sections = append(sections, sectionStyle.Render(badge+" "+errorStyle.Render(m.err.Error())))
	}

	if m.ready {
		strip := components.NewSwatchStrip(m.palette).ViewWithContext(ctx)
		sections = append(sections, sectionStyle.Render(strip))
	}

	sections = append(sections, helpStyle.Render(helpText))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
