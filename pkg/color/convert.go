package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Ottosson's OKLab matrices for linear sRGB, D65.
var (
	linearToLMS = [3][3]float64{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	lmsToLab = [3][3]float64{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	labToLMS = [3][3]float64{
		{1, 0.3963377774, 0.2158037573},
		{1, -0.1055613458, -0.0638541728},
		{1, -0.0894841775, -1.2914855480},
	}
	lmsToLinear = [3][3]float64{
		{4.0767416621, -3.3077115913, 0.2309699292},
		{-1.2684380046, 2.6097574011, -0.3413193965},
		{-0.0041960863, -0.7034186147, 1.7076147010},
	}
)

// ToPerceptual converts a display color to OKLCH. Grays get hue 0.
func ToPerceptual(c RGB) LCH {
	r, g, b := c.colorful().LinearRgb()

	l, m, s := mul(linearToLMS, r, g, b)
	l, m, s = math.Cbrt(l), math.Cbrt(m), math.Cbrt(s)

	lightness, a, bb := mul(lmsToLab, l, m, s)
	chroma := math.Hypot(a, bb)

	hue := 0.0
	if chroma >= AchromaticEpsilon {
		hue = normalizeHue(math.Atan2(bb, a) * 180 / math.Pi)
	}

	return LCH{L: lightness, C: chroma, H: hue}
}

// ToDisplay converts an OKLCH color to sRGB. Each channel is clamped to
// [0,1] after the transfer function; out-of-gamut colors are not mapped.
func ToDisplay(c LCH) RGB {
	rad := c.H * math.Pi / 180
	a := c.C * math.Cos(rad)
	b := c.C * math.Sin(rad)

	l, m, s := mul(labToLMS, c.L, a, b)
	l, m, s = l*l*l, m*m*m, s*s*s

	r, g, bl := mul(lmsToLinear, l, m, s)
	return fromColorful(colorful.LinearRgb(r, g, bl).Clamped())
}

// ToHex encodes a display color as #rrggbb. Channels are clamped and then
// rounded half away from zero onto 0-255.
func ToHex(c RGB) string {
	r, g, b := c.bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func mul(m [3][3]float64, x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// a tiny negative angle wraps to exactly 360
	if h >= 360 {
		h = 0
	}
	return h
}
