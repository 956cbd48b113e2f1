// Package export writes generated palettes as tables, data documents or
// stylesheets.
package export

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/tonal/pkg/palette"
)

// Named pairs a palette with the family name it is published under.
type Named struct {
	Name    string
	Palette palette.Palette
}

// Options tune rendering. Zero values are valid.
type Options struct {
	// Title names the document; written by formats that carry metadata.
	Title string
	// Prefix is prepended to CSS custom property names.
	Prefix string
	// Swatches adds a colored cell to each table row.
	Swatches bool
}

type renderer func(w io.Writer, palettes []Named, opts Options) error

var renderers = map[Format]renderer{
	FormatTable:    renderTable,
	FormatJSON:     renderJSON,
	FormatYAML:     renderYAML,
	FormatCSS:      renderCSS,
	FormatTailwind: renderTailwind,
}

// Render writes palettes to w in the given format, in the order supplied.
func Render(w io.Writer, format Format, palettes []Named, opts Options) error {
	render, ok := renderers[format]
	if !ok {
		return fmt.Errorf("unknown format %q (expected one of %s)", format, formatList())
	}
	return render(w, palettes, opts)
}
