package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/combogen/pkg/combos"
	"github.com/arthur-debert/combogen/pkg/errors"
)

// Config is the full set of options for one run. ClassName and SpecName
// are labels for the summary line only.
type Config struct {
	ClassName         string   `koanf:"class_name" toml:"class_name"`
	SpecName          string   `koanf:"spec_name" toml:"spec_name"`
	OutputFilename    string   `koanf:"output_filename" toml:"output_filename"`
	PlaceholderPrefix string   `koanf:"placeholder_prefix" toml:"placeholder_prefix"`
	Positions         []int    `koanf:"talent_positions" toml:"talent_positions"`
	Values            []string `koanf:"talent_values" toml:"talent_values"`
	Template          string   `koanf:"template" toml:"template,multiline,omitempty"`
	TemplateFile      string   `koanf:"template_file" toml:"template_file,omitempty"`
	Destinations      []string `koanf:"destinations" toml:"destinations"`
	MaxCombinations   int      `koanf:"max_combinations" toml:"max_combinations"`

	// Source is the config file that was loaded, empty when none was found.
	Source string `koanf:"-" toml:"-"`
}

// Validate checks the options that do not depend on the template. The
// remaining checks happen when the generator is built.
func (c *Config) Validate() error {
	name := c.OutputFilename
	if strings.TrimSpace(name) == "" {
		return errors.New(errors.ErrConfigInvalid, "output_filename is empty")
	}
	if filepath.Base(name) != name || name == "." || name == ".." {
		return errors.Newf(errors.ErrConfigInvalid, "output_filename %q must be a plain file name", name)
	}

	if len(c.Destinations) == 0 {
		return errors.New(errors.ErrConfigInvalid, "no destinations configured")
	}
	for i, d := range c.Destinations {
		if strings.TrimSpace(d) == "" {
			return errors.Newf(errors.ErrConfigInvalid, "destination %d is empty", i+1)
		}
	}

	if len(c.Positions) == 0 {
		return errors.New(errors.ErrConfigInvalid, "talent_positions is empty")
	}
	if len(c.Values) == 0 {
		return errors.New(errors.ErrConfigInvalid, "talent_values is empty")
	}
	if c.Template == "" {
		return errors.New(errors.ErrConfigInvalid, "template is empty")
	}
	return nil
}

// GeneratorOptions maps the config onto combos.Options.
func (c *Config) GeneratorOptions() combos.Options {
	return combos.Options{
		Prefix:          c.PlaceholderPrefix,
		Positions:       c.Positions,
		Values:          c.Values,
		Template:        c.Template,
		MaxCombinations: c.MaxCombinations,
	}
}

// Label returns "spec class" for the summary line, skipping empty parts.
func (c *Config) Label() string {
	var parts []string
	for _, s := range []string{c.SpecName, c.ClassName} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
