// Package color converts between display sRGB colors and the OKLCH
// perceptual space.
//
// Display colors are sRGB triples with channels in [0,1]. Perceptual colors
// are OKLCH triples: lightness in [0,1], chroma >= 0 and hue in degrees.
// Conversions toward the display space clamp each channel to [0,1]; colors
// outside the sRGB gamut are not mapped back into it.
package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// AchromaticEpsilon is the chroma below which a color is treated as gray
// and its hue is reported as 0.
const AchromaticEpsilon = 1e-4

// RGB is a display color. Channels are in [0,1] for colors inside the gamut.
type RGB struct {
	R float64 `json:"r" yaml:"r" validate:"gte=0,lte=1"`
	G float64 `json:"g" yaml:"g" validate:"gte=0,lte=1"`
	B float64 `json:"b" yaml:"b" validate:"gte=0,lte=1"`
}

// LCH is a color in OKLCH coordinates.
type LCH struct {
	L float64 `json:"l" yaml:"l"`
	C float64 `json:"c" yaml:"c"`
	H float64 `json:"h" yaml:"h"`
}

// Hex returns the #rrggbb encoding of the color.
func (c RGB) Hex() string {
	return ToHex(c)
}

// Perceptual returns the OKLCH form of the color.
func (c RGB) Perceptual() LCH {
	return ToPerceptual(c)
}

// Clamped returns the color with every channel limited to [0,1].
func (c RGB) Clamped() RGB {
	return fromColorful(c.colorful().Clamped())
}

// String formats the color as a CSS rgb() function with 0-255 channels.
func (c RGB) String() string {
	r, g, b := c.bytes()
	return fmt.Sprintf("rgb(%d %d %d)", r, g, b)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func (c RGB) bytes() (r, g, b uint8) {
	clamped := c.Clamped()
	return channelByte(clamped.R), channelByte(clamped.G), channelByte(clamped.B)
}

func fromColorful(c colorful.Color) RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Display returns the clamped sRGB form of the color.
func (c LCH) Display() RGB {
	return ToDisplay(c)
}

// Hex returns the #rrggbb encoding of the clamped display color.
func (c LCH) Hex() string {
	return ToHex(ToDisplay(c))
}

// Achromatic reports whether the color has no meaningful hue.
func (c LCH) Achromatic() bool {
	return c.C < AchromaticEpsilon
}

// String formats the color as a CSS oklch() function.
func (c LCH) String() string {
	return fmt.Sprintf("oklch(%.3f %.3f %.3f)", c.L, c.C, c.H)
}

// channelByte rounds half away from zero; the argument is already clamped.
func channelByte(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
