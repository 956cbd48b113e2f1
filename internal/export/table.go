package export

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tonal/internal/ui/components"
)

const tableSwatchWidth = 6

func renderTable(w io.Writer, palettes []Named, opts Options) error {
	for i, named := range palettes {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := renderTableSection(w, named, opts); err != nil {
			return err
		}
	}
	return nil
}

func renderTableSection(w io.Writer, named Named, opts Options) error {
	p := named.Palette
	home := p.Swatches()[p.Home()]

	if named.Name != "" {
		if _, err := fmt.Fprintf(w, "%s (base %s at %s)\n", named.Name, home.Hex, home.Stop); err != nil {
			return err
		}
	}

	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "STOP\tHEX\tOKLCH")

	for i, sw := range p.Swatches() {
		stop := string(sw.Stop)
		if i == p.Home() {
			stop += " (base)"
		}

		if opts.Swatches {
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", stop, sw.Hex, sw.Color, components.Swatch(sw.Hex, "", tableSwatchWidth, lipgloss.Color(sw.Hex)))
			continue
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", stop, sw.Hex, sw.Color)
	}

	return writer.Flush()
}
