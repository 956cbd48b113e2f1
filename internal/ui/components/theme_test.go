package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tonal/pkg/palette"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "#3b82f6", theme.Palette.Primary.Base.Light)
	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.Equal(t, lipgloss.ThickBorder(), theme.Borders.Thick)
	assert.True(t, theme.Typography.Title.GetBold(), "title typography should be bold")

	for family := range DefaultBases() {
		shades := theme.Colors.Shades(family)
		for shade := PaletteShade50; shade <= PaletteShade950; shade++ {
			assert.NotEmpty(t, shades.Color(shade), "%s %d", family, shade)
		}
	}
}

func TestPaletteColor(t *testing.T) {
	theme := DefaultTheme()

	color, ok := PaletteColor(theme, PaletteBlue, PaletteShade500)
	assert.True(t, ok)
	assert.Equal(t, lipgloss.Color("#3b82f6"), color)

	color, ok = PaletteColor(theme, PaletteBlue, PaletteShade950)
	assert.True(t, ok)
	assert.Equal(t, lipgloss.Color("#00003b"), color)

	_, ok = PaletteColor(theme, PaletteBlue, PaletteShade(99))
	assert.False(t, ok, "out-of-range shades should report missing")
}

func TestUnknownFamilyFallsBackToSlate(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, theme.Colors.Shades(PaletteSlate), theme.Colors.Shades("teal"))
}

func TestNewPaletteShadesFrom(t *testing.T) {
	p, err := palette.Generate("#d97706")
	require.NoError(t, err)

	shades := NewPaletteShadesFrom(p)
	assert.Equal(t, PaletteShade400, shades.Home())
	assert.Equal(t, lipgloss.Color("#d97706"), shades.Color(PaletteShade400))
	assert.Equal(t, lipgloss.Color("#fff5e2"), shades.Color(PaletteShade50))
	assert.Equal(t, lipgloss.Color(""), shades.Color(PaletteShade(-1)))
}

func TestNewPaletteShadesTruncates(t *testing.T) {
	colors := make([]lipgloss.Color, 14)
	for i := range colors {
		colors[i] = lipgloss.Color("#000000")
	}
	shades := NewPaletteShades(colors...)
	assert.Equal(t, lipgloss.Color("#000000"), shades.Color(PaletteShade950))
	assert.Equal(t, PaletteShade500, shades.Home())
}

func TestGenerateColorPalette(t *testing.T) {
	cp, err := GenerateColorPalette(map[PaletteFamily]string{"brand": "#6b21a8", "neutral": "#737373"})
	require.NoError(t, err)
	assert.Equal(t, []PaletteFamily{"brand", "neutral"}, cp.Families())
	assert.Equal(t, lipgloss.Color("#737373"), cp.Shades("neutral").Color(PaletteShade500))

	_, err = GenerateColorPalette(map[PaletteFamily]string{"broken": "#12"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "family broken")
}

func TestWithPrimary(t *testing.T) {
	p, err := palette.Generate("#d97706")
	require.NoError(t, err)

	base := DefaultTheme()
	theme := base.WithPrimary(p)

	assert.Equal(t, "#d97706", theme.Palette.Primary.Base.Light)
	assert.Equal(t, "#e89755", theme.Palette.Primary.Base.Dark)
	assert.Equal(t, "#d97706", theme.Palette.Surface.Contrast.Light)
	assert.Contains(t, theme.Colors.Families(), PaletteBrand)

	// the receiver is untouched
	assert.Equal(t, "#3b82f6", base.Palette.Primary.Base.Light)
	assert.NotContains(t, base.Colors.Families(), PaletteBrand)
}

func TestSemanticOnBaseContrasts(t *testing.T) {
	theme := DefaultTheme()

	// yellow sits on a light stop so its text comes from the dark end
	yellow := theme.Colors.Shades(PaletteYellow)
	assert.Less(t, int(yellow.Home()), int(PaletteShade400))
	assert.Equal(t, string(yellow.Color(PaletteShade950)), theme.Palette.Warning.OnBase.Light)

	blue := theme.Colors.Shades(PaletteBlue)
	assert.Equal(t, string(blue.Color(PaletteShade50)), theme.Palette.Primary.OnBase.Light)
}

func TestBorderForVariant(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, lipgloss.NormalBorder(), BorderForVariant(theme, BorderVariantNormal))
	assert.Equal(t, lipgloss.DoubleBorder(), BorderForVariant(theme, BorderVariantDouble))
	assert.Equal(t, lipgloss.Border{}, BorderForVariant(theme, BorderVariant(42)))
}

func TestTypographyStyle(t *testing.T) {
	theme := DefaultTheme()
	assert.True(t, TypographyStyle(theme, TypographyVariantEmphasis).GetBold())
	assert.Equal(t, theme.Typography.Base, TypographyStyle(theme, TypographyVariant(99)))
}

func TestPaletteStyles(t *testing.T) {
	theme := DefaultTheme()

	bg := BackgroundPalette(theme, PaletteRed, PaletteShade500)
	assert.NotEqual(t, lipgloss.NoColor{}, bg.GetBackground())

	fg := TextPalette(theme, PaletteRed, PaletteShade(20))
	assert.Equal(t, lipgloss.NoColor{}, fg.GetForeground())
}
