package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tonal/internal/config"
	"github.com/alexisbeaulieu97/tonal/internal/export"
	"github.com/alexisbeaulieu97/tonal/pkg/color"
	"github.com/alexisbeaulieu97/tonal/pkg/palette"
)

const colorSuggestion = "Use a hex color such as #3b82f6, or --rgb 0.23,0.51,0.96 for channel values in [0,1]."

type generateOptions struct {
	format string
	name   string
	prefix string
	rgb    string
}

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [color]",
		Short: "Generate the palette for one base color",
		Long: `Generate places the base color at its nearest stop and prints all eleven
stops from 50 (lightest) to 950 (darkest).`,
		Example: `  tonal generate "#3b82f6"
  tonal generate d97706 --format css --name amber
  tonal generate --rgb 0.85,0.47,0.02 --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", string(export.FormatTable), "Output format: table, json, yaml, css or tailwind")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Family name used in property names and documents")
	cmd.Flags().StringVar(&opts.prefix, "prefix", config.DefaultPrefix, "CSS custom property prefix")
	cmd.Flags().StringVar(&opts.rgb, "rgb", "", "Base color as comma separated channels in [0,1], e.g. 0.23,0.51,0.96")

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootFlags, opts *generateOptions, args []string) error {
	log, err := root.logger(cmd)
	if err != nil {
		return err
	}

	input, err := generateInput(opts, args)
	if err != nil {
		return newCommandError("generate palette", "reading the base color", err, colorSuggestion)
	}

	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return newCommandError("generate palette", "choosing the output format", err, "Pass --format with one of the listed values.")
	}

	p, err := palette.Generate(input)
	if err != nil {
		return newCommandError("generate palette", "parsing the base color", err, colorSuggestion)
	}

	log.WithPalette(opts.name, p.Hex(p.HomeStop())).WithFields(map[string]any{
		"home":   string(p.HomeStop()),
		"format": format.String(),
	}).Debug("generated palette")

	out := cmd.OutOrStdout()
	return export.Render(out, format, []export.Named{{Name: opts.name, Palette: p}}, export.Options{
		Prefix:   opts.prefix,
		Swatches: format == export.FormatTable && isTerminal(out),
	})
}

func generateInput(opts *generateOptions, args []string) (any, error) {
	switch {
	case opts.rgb != "" && len(args) > 0:
		return nil, errors.New("pass either a color argument or --rgb, not both")
	case opts.rgb != "":
		return parseRGBFlag(opts.rgb)
	case len(args) == 1:
		return args[0], nil
	default:
		return nil, errors.New("no base color given")
	}
}

// parseRGBFlag reads "r,g,b". Range checks are left to color.Parse.
func parseRGBFlag(value string) (color.RGB, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return color.RGB{}, fmt.Errorf("--rgb expects three comma separated channels, got %q", value)
	}

	var channels [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return color.RGB{}, fmt.Errorf("--rgb channel %d: %w", i+1, err)
		}
		channels[i] = v
	}
	return color.RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}
