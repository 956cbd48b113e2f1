package palette

// Stop is the label of a tonal position, from "50" (lightest) to "950" (darkest).
type Stop string

const (
	Stop50  Stop = "50"
	Stop100 Stop = "100"
	Stop200 Stop = "200"
	Stop300 Stop = "300"
	Stop400 Stop = "400"
	Stop500 Stop = "500"
	Stop600 Stop = "600"
	Stop700 Stop = "700"
	Stop800 Stop = "800"
	Stop900 Stop = "900"
	Stop950 Stop = "950"
)

// Count is the number of stops in every palette.
const Count = 11

// Anchor pairs a stop with its canonical OKLCH lightness.
type Anchor struct {
	Index     int
	Label     Stop
	Lightness float64
}

// anchorTable is ordered by strictly decreasing lightness.
var anchorTable = [Count]Anchor{
	{Index: 0, Label: Stop50, Lightness: 0.985},
	{Index: 1, Label: Stop100, Lightness: 0.967},
	{Index: 2, Label: Stop200, Lightness: 0.922},
	{Index: 3, Label: Stop300, Lightness: 0.870},
	{Index: 4, Label: Stop400, Lightness: 0.708},
	{Index: 5, Label: Stop500, Lightness: 0.556},
	{Index: 6, Label: Stop600, Lightness: 0.439},
	{Index: 7, Label: Stop700, Lightness: 0.371},
	{Index: 8, Label: Stop800, Lightness: 0.269},
	{Index: 9, Label: Stop900, Lightness: 0.205},
	{Index: 10, Label: Stop950, Lightness: 0.145},
}

// Anchors returns a copy of the anchor table.
func Anchors() []Anchor {
	out := make([]Anchor, Count)
	copy(out, anchorTable[:])
	return out
}

// Labels returns the stop labels in palette order.
func Labels() []Stop {
	out := make([]Stop, Count)
	for i, a := range anchorTable {
		out[i] = a.Label
	}
	return out
}

// IndexOf returns the palette position of a stop label.
func IndexOf(stop Stop) (int, bool) {
	for _, a := range anchorTable {
		if a.Label == stop {
			return a.Index, true
		}
	}
	return 0, false
}

// Locate returns the index of the anchor whose lightness is closest to l.
// On an exact tie the lighter anchor wins.
func Locate(l float64) int {
	best := 0
	bestDistance := distance(anchorTable[0].Lightness, l)
	for i := 1; i < Count; i++ {
		if d := distance(anchorTable[i].Lightness, l); d < bestDistance {
			best = i
			bestDistance = d
		}
	}
	return best
}

func distance(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
