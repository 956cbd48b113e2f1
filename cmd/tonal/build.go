package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tonal/internal/config"
	"github.com/alexisbeaulieu97/tonal/internal/export"
	"github.com/alexisbeaulieu97/tonal/internal/logger"
	"github.com/alexisbeaulieu97/tonal/internal/watch"
	"github.com/alexisbeaulieu97/tonal/pkg/diff"
	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
	"github.com/alexisbeaulieu97/tonal/pkg/palette"
)

const outputFileMode = 0o644

type buildOptions struct {
	configPath string
	out        string
	format     string
	watch      bool
	check      bool
}

func newBuildCmd(root *rootFlags) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate every palette family in a configuration file",
		Long: `Build reads a palettes file, generates one palette per family and writes
them in the configured format. Flags override the file's settings.

With --check nothing is written: the output is regenerated in memory and
compared with the existing file, and the command fails if they differ.`,
		Example: `  tonal build -c palettes.yaml
  tonal build -c palettes.yaml --format tailwind --out theme.css
  tonal build -c palettes.yaml --watch
  tonal build -c palettes.yaml --check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to palettes configuration file")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write output to this file instead of settings.output")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Override settings.format")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Rebuild whenever the configuration file changes")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Fail if the output file is out of date instead of writing it")
	cmd.MarkFlagRequired("config") //nolint:errcheck
	cmd.MarkFlagsMutuallyExclusive("watch", "check")

	return cmd
}

func runBuild(cmd *cobra.Command, root *rootFlags, opts *buildOptions) error {
	log, err := root.logger(cmd)
	if err != nil {
		return err
	}

	if !opts.watch {
		return buildOnce(cmd, log, opts)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(opts.configPath, watch.Options{
		OnError: func(err error) { log.Error(err, "rebuild failed") },
	})
	if err != nil {
		return newCommandError("watch configuration", opts.configPath, err, "Check that the configuration directory exists and is readable.")
	}

	if err := buildOnce(cmd, log, opts); err != nil {
		log.Error(err, "initial build failed")
	}

	log.WithFields(map[string]any{"config": w.Path()}).Info("watching for changes")
	return w.Run(ctx, func() error {
		log.Debug("configuration changed")
		return buildOnce(cmd, log, opts)
	})
}

func buildOnce(cmd *cobra.Command, log *logger.Logger, opts *buildOptions) error {
	cfg, err := config.ParseConfig(opts.configPath)
	if err != nil {
		return newCommandError("build palettes", fmt.Sprintf("loading %s", opts.configPath), err, "Fix the reported field and run the command again.")
	}

	formatName := cfg.Settings.Format
	if opts.format != "" {
		formatName = opts.format
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return newCommandError("build palettes", "choosing the output format", err, "Set settings.format or pass --format with one of the listed values.")
	}

	palettes := make([]export.Named, 0, len(cfg.Families))
	for _, family := range cfg.Families {
		p, err := palette.Generate(family.Input())
		if err != nil {
			return newCommandError("build palettes", fmt.Sprintf("generating family %q", family.Name), err, colorSuggestion)
		}
		log.WithPalette(family.Name, p.Hex(p.HomeStop())).WithFields(map[string]any{
			"home": string(p.HomeStop()),
		}).Debug("generated palette")
		palettes = append(palettes, export.Named{Name: family.Name, Palette: p})
	}

	var buf bytes.Buffer
	if err := export.Render(&buf, format, palettes, export.Options{Title: cfg.Name, Prefix: cfg.Settings.Prefix}); err != nil {
		return err
	}

	outPath := outputPath(opts, cfg)
	if opts.check {
		return checkOutput(cmd, log, outPath, buf.Bytes())
	}

	if outPath == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(outPath, buf.Bytes(), outputFileMode); err != nil {
		return newCommandError("build palettes", fmt.Sprintf("writing %s", outPath), err, "Check that the output directory exists and is writable.")
	}

	log.WithFields(map[string]any{
		"output":   outPath,
		"format":   format.String(),
		"families": len(palettes),
	}).Info("wrote palettes")
	return nil
}

// outputPath prefers --out. settings.output is relative to the configuration file.
func outputPath(opts *buildOptions, cfg *config.Config) string {
	if opts.out != "" {
		return opts.out
	}
	if cfg.Settings.Output == "" || filepath.IsAbs(cfg.Settings.Output) {
		return cfg.Settings.Output
	}
	return filepath.Join(filepath.Dir(opts.configPath), cfg.Settings.Output)
}

func checkOutput(cmd *cobra.Command, log *logger.Logger, path string, generated []byte) error {
	if path == "" {
		return newCommandError("check palettes", "no output file configured", errors.New("nothing to compare against"), "Set settings.output or pass --out.")
	}

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return newCommandError("check palettes", fmt.Sprintf("reading %s", path), err, "Check the output file permissions.")
	}

	if d := diff.GenerateUnifiedDiff(existing, generated, path, "generated"); d != "" {
		fmt.Fprint(cmd.OutOrStdout(), d)
		return tonalerrors.NewStaleOutputError(path, d)
	}

	log.WithFields(map[string]any{"output": path}).Info("output is up to date")
	return nil
}
