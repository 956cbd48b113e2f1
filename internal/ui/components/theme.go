package components

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tonal/pkg/palette"
)

// PaletteShades represents a generated tonal scale with 11 shades from lightest to darkest.
// Shades are indexed from 50 (lightest) to 950 (darkest).
type PaletteShades struct {
	colors [palette.Count]lipgloss.Color
	home   PaletteShade
}

// NewPaletteShades creates a palette shade scale from the provided colors.
// Colors should be ordered from lightest to darkest. Accepts up to 11 colors.
func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < palette.Count && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	shades.home = PaletteShade500
	return shades
}

// NewPaletteShadesFrom converts a generated palette into lipgloss colors.
func NewPaletteShadesFrom(p palette.Palette) PaletteShades {
	var shades PaletteShades
	for i, hex := range p.Hexes() {
		shades.colors[i] = lipgloss.Color(hex)
	}
	shades.home = PaletteShade(p.Home())
	return shades
}

// Color returns the color at the specified shade level.
// Returns an empty string if the shade is out of bounds.
func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= palette.Count {
		return ""
	}
	return ps.colors[index]
}

// Home returns the shade holding the family's base color.
func (ps PaletteShades) Home() PaletteShade {
	return ps.home
}

// offset returns the shade n steps away from home, pinned to the scale.
func (ps PaletteShades) offset(n int) lipgloss.Color {
	index := int(ps.home) + n
	if index < 0 {
		index = 0
	}
	if index >= palette.Count {
		index = palette.Count - 1
	}
	return ps.colors[index]
}

// PaletteFamily names a color family such as "blue" or a user-defined "brand".
type PaletteFamily string

const (
	PaletteSlate  PaletteFamily = "slate"
	PaletteBlue   PaletteFamily = "blue"
	PaletteGreen  PaletteFamily = "green"
	PaletteRed    PaletteFamily = "red"
	PaletteYellow PaletteFamily = "yellow"
	PalettePurple PaletteFamily = "purple"
	PaletteCyan   PaletteFamily = "cyan"

	// PaletteBrand holds a user-supplied primary family; see Theme.WithPrimary.
	PaletteBrand PaletteFamily = "brand"
)

// DefaultBases returns the base colors the default theme generates its families from.
func DefaultBases() map[PaletteFamily]string {
	return map[PaletteFamily]string{
		PaletteSlate:  "#64748b",
		PaletteBlue:   "#3b82f6",
		PaletteGreen:  "#22c55e",
		PaletteRed:    "#ef4444",
		PaletteYellow: "#eab308",
		PalettePurple: "#a855f7",
		PaletteCyan:   "#06b6d4",
	}
}

// ColorPalette maps family names to their shade scales.
type ColorPalette struct {
	families map[PaletteFamily]PaletteShades
}

// GenerateColorPalette builds every family from its base color.
func GenerateColorPalette(bases map[PaletteFamily]string) (ColorPalette, error) {
	cp := ColorPalette{families: make(map[PaletteFamily]PaletteShades, len(bases))}
	for family, base := range bases {
		p, err := palette.Generate(base)
		if err != nil {
			return ColorPalette{}, fmt.Errorf("family %s: %w", family, err)
		}
		cp.families[family] = NewPaletteShadesFrom(p)
	}
	return cp, nil
}

// With returns a copy of the palette with family set to shades.
func (cp ColorPalette) With(family PaletteFamily, shades PaletteShades) ColorPalette {
	next := make(map[PaletteFamily]PaletteShades, len(cp.families)+1)
	for k, v := range cp.families {
		next[k] = v
	}
	next[family] = shades
	return ColorPalette{families: next}
}

// Shades returns the scale for family, falling back to slate when it is unknown.
func (cp ColorPalette) Shades(family PaletteFamily) PaletteShades {
	if shades, ok := cp.families[family]; ok {
		return shades
	}
	return cp.families[PaletteSlate]
}

// Families lists the known family names in sorted order.
func (cp ColorPalette) Families() []PaletteFamily {
	out := make([]PaletteFamily, 0, len(cp.families))
	for family := range cp.families {
		out = append(out, family)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type PaletteShade int

const (
	PaletteShade50 PaletteShade = iota
	PaletteShade100
	PaletteShade200
	PaletteShade300
	PaletteShade400
	PaletteShade500
	PaletteShade600
	PaletteShade700
	PaletteShade800
	PaletteShade900
	PaletteShade950
)

type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCode
	TypographyVariantEmphasis
)

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// Theme represents an immutable styling theme for components.
// All modification operations return new theme instances rather than
// mutating the original.
type Theme struct {
	Palette    Palette
	Colors     ColorPalette
	Borders    BorderSet
	Typography TypographyScale
}

// DefaultTheme returns a theme whose families are generated from DefaultBases.
func DefaultTheme() Theme {
	colors, err := GenerateColorPalette(DefaultBases())
	if err != nil {
		panic(fmt.Sprintf("components: default bases: %v", err))
	}
	return NewTheme(colors)
}

// NewTheme derives semantic colour slots from generated families.
func NewTheme(colors ColorPalette) Theme {
	slots := Palette{
		Primary:   semanticSet(colors.Shades(PaletteBlue)),
		Secondary: semanticSet(colors.Shades(PalettePurple)),
		Surface:   surfaceSet(colors.Shades(PaletteSlate), colors.Shades(PaletteBlue)),
		Success:   semanticSet(colors.Shades(PaletteGreen)),
		Warning:   semanticSet(colors.Shades(PaletteYellow)),
		Danger:    semanticSet(colors.Shades(PaletteRed)),
		Info:      semanticSet(colors.Shades(PaletteCyan)),
		Neutral:   semanticSet(colors.Shades(PaletteSlate)),
	}

	return Theme{
		Palette: slots,
		Colors:  colors,
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
		Typography: defaultTypography(slots),
	}
}

// WithPrimary returns a copy of the theme whose primary slot is built from p.
func (t Theme) WithPrimary(p palette.Palette) Theme {
	shades := NewPaletteShadesFrom(p)
	t.Colors = t.Colors.With(PaletteBrand, shades)
	t.Palette.Primary = semanticSet(shades)
	t.Palette.Surface.Contrast = t.Palette.Primary.Base
	t.Typography = defaultTypography(t.Palette)
	return t
}

// semanticSet anchors a slot on the family's base color. Dark mode moves one
// stop lighter; on-base text takes whichever end of the scale contrasts.
func semanticSet(shades PaletteShades) ColourSet {
	onBase := lipgloss.AdaptiveColor{
		Light: string(shades.Color(PaletteShade50)),
		Dark:  string(shades.Color(PaletteShade50)),
	}
	if shades.Home() < PaletteShade400 {
		onBase = lipgloss.AdaptiveColor{
			Light: string(shades.Color(PaletteShade950)),
			Dark:  string(shades.Color(PaletteShade950)),
		}
	}

	return ColourSet{
		Base:     ac(shades.offset(0), shades.offset(-1)),
		OnBase:   onBase,
		Muted:    ac(shades.offset(1), shades.offset(2)),
		Contrast: ac(shades.Color(PaletteShade100), shades.Color(PaletteShade900)),
	}
}

func surfaceSet(neutral, accent PaletteShades) ColourSet {
	return ColourSet{
		Base:     ac(neutral.Color(PaletteShade50), neutral.Color(PaletteShade950)),
		OnBase:   ac(neutral.Color(PaletteShade950), neutral.Color(PaletteShade50)),
		Muted:    ac(neutral.Color(PaletteShade200), neutral.Color(PaletteShade800)),
		Contrast: ac(accent.offset(0), accent.offset(-1)),
	}
}

func ac(light, dark lipgloss.Color) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: string(light), Dark: string(dark)}
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Neutral.Base).Faint(true),
		Body:     base,
		Code:     base.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: base.Bold(true),
	}
}

// PaletteColor returns the color for a given palette family and shade.
// Returns an empty string and false if the shade is invalid.
func PaletteColor(theme Theme, family PaletteFamily, shade PaletteShade) (lipgloss.Color, bool) {
	color := theme.Colors.Shades(family).Color(shade)
	if color == "" {
		return "", false
	}
	return color, true
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	default:
		return typo.Base
	}
}

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors:
//
//   - Base: the family's own color
//   - OnBase: text color that stays legible on Base
//   - Muted: a darker neighbour of Base for subtle accents
//   - Contrast: a far end of the scale for highlights
//
// All colors are adaptive, providing both light and dark mode variants.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots for type-safe theme access.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour and matching foreground.
//
// Example:
//
//	badge := NewBadge("500").WithAppliers(Background(PalettePrimary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// BackgroundPalette creates a style with a background color from a specific palette shade.
func BackgroundPalette(theme Theme, family PaletteFamily, shade PaletteShade) lipgloss.Style {
	if color, ok := PaletteColor(theme, family, shade); ok {
		return lipgloss.NewStyle().Background(color)
	}
	return lipgloss.NewStyle()
}

// TextPalette creates a style with a foreground color from a specific palette shade.
func TextPalette(theme Theme, family PaletteFamily, shade PaletteShade) lipgloss.Style {
	if color, ok := PaletteColor(theme, family, shade); ok {
		return lipgloss.NewStyle().Foreground(color)
	}
	return lipgloss.NewStyle()
}
