// Package palette derives an 11-stop tonal scale from a single base color.
//
// The scale follows the "50".."950" numbering common in design systems. The
// base color is placed on the stop whose canonical lightness is closest to
// its own, and the remaining stops are interpolated in OKLCH toward fixed
// light and dark endpoints. Generation is a pure function of its input.
package palette

import (
	"github.com/alexisbeaulieu97/tonal/pkg/color"
)

// Swatch is one entry of a palette.
type Swatch struct {
	Stop  Stop
	Hex   string
	Color color.LCH
}

// Palette is an ordered, immutable set of Count swatches.
type Palette struct {
	base     color.LCH
	home     int
	swatches [Count]Swatch
}

// Generate parses input and builds its palette. Input accepts the same forms
// as color.Parse; anything else returns an *errors.InvalidColorError.
func Generate(input any) (Palette, error) {
	rgb, err := color.Parse(input)
	if err != nil {
		return Palette{}, err
	}

	p := FromLCH(color.ToPerceptual(rgb))
	// the home stop keeps the caller's exact encoding
	p.swatches[p.home].Hex = color.ToHex(rgb)
	return p, nil
}

// FromLCH builds the palette of a color already in OKLCH form.
func FromLCH(base color.LCH) Palette {
	p := Palette{base: base, home: Locate(base.L)}
	for i, lch := range Ramp(base) {
		p.swatches[i] = Swatch{
			Stop:  anchorTable[i].Label,
			Hex:   color.ToHex(color.ToDisplay(lch)),
			Color: lch,
		}
	}
	return p
}

// Base returns the OKLCH base color the palette was built from.
func (p Palette) Base() color.LCH {
	return p.base
}

// Home returns the index of the stop holding the base color.
func (p Palette) Home() int {
	return p.home
}

// HomeStop returns the label of the stop holding the base color.
func (p Palette) HomeStop() Stop {
	return p.swatches[p.home].Stop
}

// Swatches returns the palette entries from lightest to darkest.
func (p Palette) Swatches() []Swatch {
	out := make([]Swatch, Count)
	copy(out, p.swatches[:])
	return out
}

// Hexes returns the hex encodings from lightest to darkest.
func (p Palette) Hexes() []string {
	out := make([]string, Count)
	for i, s := range p.swatches {
		out[i] = s.Hex
	}
	return out
}

// Swatch returns the entry for a stop label.
func (p Palette) Swatch(stop Stop) (Swatch, bool) {
	i, ok := IndexOf(stop)
	if !ok {
		return Swatch{}, false
	}
	return p.swatches[i], true
}

// Hex returns the hex encoding for a stop label, or "" when the label is unknown.
func (p Palette) Hex(stop Stop) string {
	s, ok := p.Swatch(stop)
	if !ok {
		return ""
	}
	return s.Hex
}
