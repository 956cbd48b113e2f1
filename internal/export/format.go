package export

import (
	"fmt"
	"strings"
)

// Format selects how palettes are written.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCSS      Format = "css"
	FormatTailwind Format = "tailwind"
)

var formats = []Format{FormatTable, FormatJSON, FormatYAML, FormatCSS, FormatTailwind}

// Formats lists every supported format.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat resolves a format name, ignoring case and surrounding space.
func ParseFormat(name string) (Format, error) {
	candidate := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, f := range formats {
		if f == candidate {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (expected one of %s)", name, formatList())
}

func formatList() string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func (f Format) String() string {
	return string(f)
}
