package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Header represents a title with an optional subtitle line.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a new header with the given title.
func NewHeader(title string) *Header {
	h := &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
	h.SetAppliers(Typography(TypographyVariantTitle))
	return h
}

// View renders the header.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given theme context.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	style := h.ComputeStyle(ctx.Theme)

	if h.subtitle == "" {
		return style.Render(h.title)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		style.Render(h.title),
		TypographyStyle(ctx.Theme, TypographyVariantSubtitle).Render(h.subtitle),
	)
}

// WithAppliers replaces the header's style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.SetAppliers(appliers...)
	return h
}

// WithSubtitle adds a subtitle to the header.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the header subtitle.
func (h *Header) Subtitle() string {
	return h.subtitle
}
