package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Tailwind reads theme colors from this namespace regardless of any prefix.
const tailwindNamespace = "color"

func renderCSS(w io.Writer, palettes []Named, opts Options) error {
	return writeCustomProperties(w, ":root", palettes, func(named Named, i int) (string, string) {
		sw := named.Palette.Swatches()[i]
		return propertyName(opts.Prefix, named.Name, string(sw.Stop)), sw.Hex
	})
}

// renderTailwind emits a Tailwind v4 @theme block. Values stay in OKLCH so
// wide-gamut displays get the unclamped color.
func renderTailwind(w io.Writer, palettes []Named, _ Options) error {
	return writeCustomProperties(w, "@theme", palettes, func(named Named, i int) (string, string) {
		sw := named.Palette.Swatches()[i]
		return propertyName(tailwindNamespace, named.Name, string(sw.Stop)), sw.Color.String()
	})
}

func writeCustomProperties(w io.Writer, selector string, palettes []Named, property func(Named, int) (string, string)) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s {\n", selector)
	for i, named := range palettes {
		if i > 0 {
			fmt.Fprintln(bw)
		}

		swatches := named.Palette.Swatches()
		home := swatches[named.Palette.Home()]
		label := named.Name
		if label == "" {
			label = "palette"
		}
		fmt.Fprintf(bw, "  /* %s: base %s at %s */\n", label, home.Hex, home.Stop)

		for j := range swatches {
			name, value := property(named, j)
			fmt.Fprintf(bw, "  %s: %s;\n", name, value)
		}
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

// propertyName joins the non-empty parts into a custom property name.
func propertyName(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return "--" + strings.Join(kept, "-")
}
