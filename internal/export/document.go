package export

import (
	"encoding/json"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tonal/pkg/color"
	"github.com/alexisbeaulieu97/tonal/pkg/palette"
)

// DocumentVersion is the schema version written to JSON and YAML output.
const DocumentVersion = "1.0"

// coordinates are written with this many decimal places
const coordinateScale = 1e4

// Document is the JSON and YAML representation of a set of palettes.
type Document struct {
	Version  string          `json:"version" yaml:"version"`
	Name     string          `json:"name,omitempty" yaml:"name,omitempty"`
	Count    int             `json:"count" yaml:"count"`
	Palettes []PaletteRecord `json:"palettes" yaml:"palettes"`
}

// PaletteRecord is one palette inside a Document.
type PaletteRecord struct {
	Name  string       `json:"name,omitempty" yaml:"name,omitempty"`
	Base  string       `json:"base" yaml:"base"`
	Home  palette.Stop `json:"home" yaml:"home"`
	Stops []StopRecord `json:"stops" yaml:"stops"`
}

// StopRecord is one swatch inside a PaletteRecord.
type StopRecord struct {
	Stop  palette.Stop `json:"stop" yaml:"stop"`
	Hex   string       `json:"hex" yaml:"hex"`
	OKLCH color.LCH    `json:"oklch" yaml:"oklch"`
}

// NewDocument builds the serializable form of palettes.
func NewDocument(title string, palettes []Named) Document {
	doc := Document{
		Version:  DocumentVersion,
		Name:     title,
		Count:    len(palettes),
		Palettes: make([]PaletteRecord, len(palettes)),
	}

	for i, named := range palettes {
		swatches := named.Palette.Swatches()
		record := PaletteRecord{
			Name:  named.Name,
			Base:  swatches[named.Palette.Home()].Hex,
			Home:  named.Palette.HomeStop(),
			Stops: make([]StopRecord, len(swatches)),
		}
		for j, sw := range swatches {
			record.Stops[j] = StopRecord{Stop: sw.Stop, Hex: sw.Hex, OKLCH: roundLCH(sw.Color)}
		}
		doc.Palettes[i] = record
	}

	return doc
}

func renderJSON(w io.Writer, palettes []Named, opts Options) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewDocument(opts.Title, palettes))
}

func renderYAML(w io.Writer, palettes []Named, opts Options) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(NewDocument(opts.Title, palettes)); err != nil {
		return err
	}
	return encoder.Close()
}

func roundLCH(c color.LCH) color.LCH {
	return color.LCH{L: round(c.L), C: round(c.C), H: round(c.H)}
}

func round(v float64) float64 {
	r := math.Round(v*coordinateScale) / coordinateScale
	if r == 0 {
		// avoid "-0" in output
		return 0
	}
	return r
}
