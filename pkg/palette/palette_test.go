package palette

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tonal/pkg/color"
	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
)

func TestGenerateGoldenPalettes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		home Stop
		want []string
	}{
		{
			name: "neutral gray",
			base: "#737373",
			home: Stop500,
			want: []string{
				"#fbfafa", "#dedddd", "#c2c1c2", "#a7a7a7", "#8d8c8c", "#737373",
				"#5e5b5c", "#494445", "#352e30", "#22191c", "#10070a",
			},
		},
		{
			name: "amber",
			base: "#d97706",
			home: Stop400,
			want: []string{
				"#fff5e2", "#ffd6b4", "#f6b686", "#e89755", "#d97706", "#b85f00",
				"#984700", "#793100", "#5c1a00", "#3f0300", "#240000",
			},
		},
		{
			name: "blue",
			base: "#3b82f6",
			home: Stop500,
			want: []string{
				"#e9fbff", "#c6e4ff", "#a3ccff", "#81b4ff", "#5f9bff", "#3b82f6",
				"#2565ce", "#0d4aa6", "#002f81", "#00145d", "#00003b",
			},
		},
		{
			name: "white",
			base: "#ffffff",
			home: Stop50,
			want: []string{
				"#ffffff", "#e4e2e3", "#c9c6c7", "#afaaac", "#969091", "#7d7678",
				"#655d5f", "#4e4548", "#382f31", "#241a1d", "#10070a",
			},
		},
		{
			name: "black",
			base: "#000000",
			home: Stop950,
			want: []string{
				"#fbfafa", "#dad9d9", "#bab9ba", "#9c9b9b", "#7e7d7d", "#616161",
				"#464646", "#2d2c2d", "#151515", "#030303", "#000000",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := Generate(tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.home, p.HomeStop())
			assert.Equal(t, tt.want, p.Hexes())
			assert.Equal(t, tt.base, p.Hex(tt.home))
		})
	}
}

func TestGenerateStructure(t *testing.T) {
	t.Parallel()

	for _, base := range []string{"#ff0000", "#00ff00", "#0000ff", "#d97706", "#3b82f6", "#123456", "#fafafa", "#0a0a0a"} {
		p, err := Generate(base)
		require.NoError(t, err, base)

		swatches := p.Swatches()
		require.Len(t, swatches, Count)
		for i, s := range swatches {
			assert.Equal(t, Labels()[i], s.Stop, base)
			assert.Regexp(t, `^#[0-9a-f]{6}$`, s.Hex, base)
			assert.Equal(t, p.Base().H, s.Color.H, "hue drift at %s for %s", s.Stop, base)
			if i > 0 {
				assert.LessOrEqual(t, s.Color.L, swatches[i-1].Color.L, "lightness at %s for %s", s.Stop, base)
			}
		}
		assert.Equal(t, base, swatches[p.Home()].Hex)
		assert.Equal(t, p.Base(), swatches[p.Home()].Color)
	}
}

func TestGenerateAchromaticKeepsZeroHue(t *testing.T) {
	t.Parallel()

	for _, base := range []string{"#000000", "#333333", "#737373", "#bdbdbd", "#ffffff"} {
		p, err := Generate(base)
		require.NoError(t, err)
		assert.True(t, p.Base().Achromatic(), base)
		for _, s := range p.Swatches() {
			assert.Equal(t, 0.0, s.Color.H, "%s at %s", base, s.Stop)
		}
	}
}

func TestGenerateIsIdempotentOnHomeHex(t *testing.T) {
	t.Parallel()

	for _, base := range []string{"#d97706", "#3b82f6", "#737373", "#6b21a8", "#ecfccb"} {
		first, err := Generate(base)
		require.NoError(t, err)

		second, err := Generate(first.Hex(first.HomeStop()))
		require.NoError(t, err)

		assert.Equal(t, first.Hexes(), second.Hexes(), base)
		assert.Equal(t, first.HomeStop(), second.HomeStop(), base)
	}
}

func TestGenerateChromaPeaksAtHome(t *testing.T) {
	t.Parallel()

	p, err := Generate("#d97706")
	require.NoError(t, err)

	swatches := p.Swatches()
	home := p.Home()
	for i, s := range swatches {
		if i != home {
			assert.Less(t, s.Color.C, swatches[home].Color.C, "stop %s", s.Stop)
		}
	}
	assert.InDelta(t, swatches[home].Color.C*0.24, swatches[0].Color.C, 1e-9)
	assert.InDelta(t, swatches[home].Color.C*0.64, swatches[Count-1].Color.C, 1e-9)
}

func TestGenerateAcceptedInputForms(t *testing.T) {
	t.Parallel()

	fromHex, err := Generate("#3b82f6")
	require.NoError(t, err)

	fromBare, err := Generate("3B82F6")
	require.NoError(t, err)
	assert.Equal(t, fromHex.Hexes(), fromBare.Hexes())

	rgb := color.MustParse("#3b82f6")
	fromRGB, err := Generate(rgb)
	require.NoError(t, err)
	assert.Equal(t, fromHex.Hexes(), fromRGB.Hexes())

	fromPtr, err := Generate(&rgb)
	require.NoError(t, err)
	assert.Equal(t, fromHex.Hexes(), fromPtr.Hexes())
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	inputs := []any{
		"",
		"   ",
		"#12345",
		"#gggggg",
		"blue",
		42,
		nil,
		color.RGB{R: 1.5, G: 0, B: 0},
	}

	for _, input := range inputs {
		_, err := Generate(input)
		require.Error(t, err, "%v", input)

		var invalid *tonalerrors.InvalidColorError
		assert.True(t, errors.As(err, &invalid), "%v", input)
	}
}

func TestPaletteLookup(t *testing.T) {
	t.Parallel()

	p, err := Generate("#3b82f6")
	require.NoError(t, err)

	s, ok := p.Swatch(Stop900)
	require.True(t, ok)
	assert.Equal(t, Stop900, s.Stop)
	assert.Equal(t, "#00145d", s.Hex)

	_, ok = p.Swatch("975")
	assert.False(t, ok)
	assert.Empty(t, p.Hex("975"))
}

func TestPaletteSwatchesReturnsCopy(t *testing.T) {
	t.Parallel()

	p, err := Generate("#3b82f6")
	require.NoError(t, err)

	swatches := p.Swatches()
	swatches[0].Hex = "#000000"
	assert.Equal(t, "#e9fbff", p.Hex(Stop50))
}

func TestGenerateConcurrentCallsAgree(t *testing.T) {
	t.Parallel()

	want, err := Generate("#6b21a8")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := Generate("#6b21a8")
			if err == nil {
				results[i] = p.Hexes()
			}
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want.Hexes(), got)
	}
}
