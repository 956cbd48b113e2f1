package palette

import (
	"github.com/alexisbeaulieu97/tonal/pkg/color"
)

const (
	lighterChromaRate = 0.8
	darkerChromaRate  = 0.9
)

// Ramp computes the OKLCH color of every stop for the given base color.
// The base lands unchanged on its home stop; stops on either side are
// interpolated toward the light or dark endpoint. Hue is held constant.
func Ramp(base color.LCH) []color.LCH {
	home := Locate(base.L)
	out := make([]color.LCH, Count)
	out[home] = base

	if home > 0 {
		light := LightEndpoint(base)
		for i := 0; i < home; i++ {
			factor := float64(home-i) / float64(home)
			out[i] = color.LCH{
				L: lerp(base.L, light.L, factor),
				C: lerp(base.C, light.C, factor*lighterChromaRate),
				H: base.H,
			}
		}
	}

	if last := Count - 1; home < last {
		dark := DarkEndpoint(base)
		span := float64(last - home)
		for i := home + 1; i <= last; i++ {
			factor := float64(i-home) / span
			out[i] = color.LCH{
				L: lerp(base.L, dark.L, factor),
				C: lerp(base.C, dark.C, factor*darkerChromaRate),
				H: base.H,
			}
		}
	}

	return out
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
