package config

import (
	"github.com/alexisbeaulieu97/tonal/pkg/color"
)

const (
	// DefaultFormat is used when settings.format is omitted.
	DefaultFormat = "css"
	// DefaultPrefix is the CSS custom property prefix used when settings.prefix is omitted.
	DefaultPrefix = "color"
)

// Config represents a palettes file: a set of named color families.
type Config struct {
	Version     string   `yaml:"version" validate:"required,semver"`
	Name        string   `yaml:"name" validate:"required,min=1,max=100"`
	Description string   `yaml:"description,omitempty"`
	Settings    Settings `yaml:"settings,omitempty"`
	Families    []Family `yaml:"families" validate:"required,min=1,dive"`
}

// Settings controls how generated palettes are written.
type Settings struct {
	Format string `yaml:"format,omitempty" validate:"omitempty,format"`
	Prefix string `yaml:"prefix,omitempty" validate:"omitempty,family_name"`
	Output string `yaml:"output,omitempty"`
}

// Family names one palette and the base color it is generated from.
// Exactly one of Base and RGB is set.
type Family struct {
	Name string     `yaml:"name" validate:"required,family_name"`
	Base string     `yaml:"base,omitempty" validate:"omitempty,color"`
	RGB  *color.RGB `yaml:"rgb,omitempty"`
}

// Input returns the family's base color in a form accepted by palette.Generate.
func (f Family) Input() any {
	if f.RGB != nil {
		return f.RGB
	}
	return f.Base
}

// ApplyDefaults fills unset settings with their default values.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Settings.Format == "" {
		cfg.Settings.Format = DefaultFormat
	}
	if cfg.Settings.Prefix == "" {
		cfg.Settings.Prefix = DefaultPrefix
	}
}
