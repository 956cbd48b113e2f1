package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tonal/internal/tui"
	"github.com/alexisbeaulieu97/tonal/internal/ui/components"
	"github.com/alexisbeaulieu97/tonal/pkg/palette"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [color]",
		Short: "Preview palettes interactively in the terminal",
		Long: `Preview opens an interactive view where base colors can be typed and their
palettes inspected. When stdout is not a terminal the palette for the given
color is rendered once instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := ""
			if len(args) == 1 {
				initial = args[0]
			}
			return runPreview(cmd, initial)
		},
	}

	return cmd
}

func runPreview(cmd *cobra.Command, initial string) error {
	out := cmd.OutOrStdout()

	if !isTerminal(out) {
		if initial == "" {
			return newCommandError("preview palette", "stdout is not a terminal", errors.New("no base color given"), "Pass a color, e.g. tonal preview \"#3b82f6\".")
		}
		p, err := palette.Generate(initial)
		if err != nil {
			return newCommandError("preview palette", "parsing the base color", err, colorSuggestion)
		}
		_, err = fmt.Fprintln(out, components.RenderSwatches(p))
		return err
	}

	program := tea.NewProgram(tui.NewModel(initial), tea.WithOutput(out), tea.WithContext(cmd.Context()))
	_, err := program.Run()
	return err
}
