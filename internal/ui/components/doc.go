// Package components renders palettes in the terminal with lipgloss.
//
// Themes are generated rather than hand-written: every color family is a
// palette produced from a single base color, and the semantic slots
// (Primary, Surface, Danger, ...) are picked from positions on those scales.
// Themes are immutable and passed explicitly through RenderContext:
//
//	theme := components.DefaultTheme().WithPrimary(p)
//	out := components.NewSwatchStrip(p).ViewWithContext(
//		components.DefaultContext().WithTheme(theme).WithWidth(80),
//	)
//
// Components accept theme-aware style functions through WithAppliers, for
// example Background(PalettePrimary) or Border(BorderVariantRounded).
package components
