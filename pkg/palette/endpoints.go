package palette

import (
	"math"

	"github.com/alexisbeaulieu97/tonal/pkg/color"
)

const (
	lightEndpointLightness = 0.985
	darkEndpointLightness  = 0.145

	lightChromaScale = 0.05
	lightChromaFloor = 0.002
	darkChromaScale  = 0.6
	darkChromaFloor  = 0.02
)

// LightEndpoint is the near-white color the lighter stops move toward.
// Chroma almost vanishes so the lightest stop works as a surface color.
func LightEndpoint(base color.LCH) color.LCH {
	return color.LCH{
		L: lightEndpointLightness,
		C: math.Max(lightChromaFloor, base.C*lightChromaScale),
		H: base.H,
	}
}

// DarkEndpoint is the near-black color the darker stops move toward.
func DarkEndpoint(base color.LCH) color.LCH {
	return color.LCH{
		L: darkEndpointLightness,
		C: math.Max(darkChromaFloor, base.C*darkChromaScale),
		H: base.H,
	}
}
