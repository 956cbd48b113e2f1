package color

import (
	stdcolor "image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
)

func TestParseAcceptedForms(t *testing.T) {
	t.Parallel()

	amber := RGB{R: 217.0 / 255, G: 119.0 / 255, B: 6.0 / 255}

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"hex with hash", "#d97706", "#d97706"},
		{"hex without hash", "d97706", "#d97706"},
		{"uppercase hex", "#D97706", "#d97706"},
		{"surrounding whitespace", "  #d97706\n", "#d97706"},
		{"short hex", "#abc", "#aabbcc"},
		{"rgb value", amber, "#d97706"},
		{"rgb pointer", &amber, "#d97706"},
		{"image color", stdcolor.RGBA{R: 0xd9, G: 0x77, B: 0x06, A: 0xff}, "#d97706"},
		{"image color nrgba", stdcolor.NRGBA{R: 0x73, G: 0x73, B: 0x73, A: 0xff}, "#737373"},
		{"rgb bounds", RGB{R: 0, G: 1, B: 1}, "#00ffff"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Hex())
		})
	}
}

func TestParseRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	var nilRGB *RGB

	tests := []struct {
		name   string
		input  any
		reason string
	}{
		{"empty string", "", "empty color"},
		{"blank string", "   ", "empty color"},
		{"named color", "red", "expected #rgb or #rrggbb"},
		{"bad digits", "#zzzzzz", "expected #rgb or #rrggbb"},
		{"alpha hex", "#d97706ff", "expected #rgb or #rrggbb"},
		{"five digits", "#12345", "expected #rgb or #rrggbb"},
		{"channel above range", RGB{R: 1.5}, "channel r must be within [0,1]"},
		{"channel below range", RGB{G: -0.1}, "channel g must be within [0,1]"},
		{"nan channel", RGB{B: math.NaN()}, "channel is NaN"},
		{"nil pointer", nilRGB, "nil RGB value"},
		{"transparent", stdcolor.RGBA{}, "color is fully transparent"},
		{"integer", 0xd97706, "unsupported color input"},
		{"map", map[string]float64{"r": 1}, "unsupported color input"},
		{"nil", nil, "unsupported color input"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input)
			require.Error(t, err)

			var colorErr *tonalerrors.InvalidColorError
			require.ErrorAs(t, err, &colorErr)
			assert.Equal(t, tt.reason, colorErr.Reason)
		})
	}
}

func TestMustParsePanicsOnInvalidInput(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustParse("nope") })
	assert.NotPanics(t, func() { MustParse("#fff") })
}

func TestRGBString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "rgb(217 119 6)", MustParse("#d97706").String())
}
