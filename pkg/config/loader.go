package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/combogen/pkg/errors"
	"github.com/arthur-debert/combogen/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override config keys.
const EnvPrefix = "COMBOGEN_"

// AppName is the directory name used under XDG base directories.
const AppName = "combogen"

// listKeys hold comma separated values when set from the environment.
var listKeys = map[string]bool{
	"talent_positions": true,
	"talent_values":    true,
	"destinations":     true,
}

// localConfigNames are searched, in order, in the working directory.
var localConfigNames = []string{"combogen.toml", "combogen.yaml", "combogen.yml"}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// Path is an explicit config file. When empty the working directory
	// and then $XDG_CONFIG_HOME/combogen are searched.
	Path string

	// Dir overrides the working directory for the local search.
	Dir string

	// Overrides are applied last, keyed by config key.
	Overrides map[string]interface{}
}

// Load builds a Config from all sources and validates it.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path, err := resolvePath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("loaded config file")
	}

	// 3. Environment
	err = k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = path

	if err := resolveTemplate(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info().
		Str("source", cfg.Source).
		Ints("positions", cfg.Positions).
		Strs("values", cfg.Values).
		Strs("destinations", cfg.Destinations).
		Msg("configuration loaded")

	return &cfg, nil
}

// envValue maps COMBOGEN_TALENT_POSITIONS=1,3 to talent_positions: [1 3].
func envValue(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if !listKeys[key] {
		return key, value
	}
	parts := strings.Split(value, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return key, parts
}

// resolvePath picks the config file to load, or "" when none exists.
func resolvePath(opts LoadOptions) (string, error) {
	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", opts.Path).
				WithDetail("path", opts.Path)
		}
		return opts.Path, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	for _, name := range localConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if path, err := xdg.SearchConfigFile(filepath.Join(AppName, "config.toml")); err == nil {
		return path, nil
	}
	return "", nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format %q", filepath.Ext(path)).
		WithDetail("path", path)
}

// resolveTemplate reads template_file into Template. Relative paths are
// taken from the config file's directory.
func resolveTemplate(cfg *Config) error {
	if cfg.TemplateFile == "" {
		return nil
	}
	if cfg.Template != "" {
		return errors.New(errors.ErrConfigInvalid, "template and template_file are mutually exclusive")
	}

	path := cfg.TemplateFile
	if !filepath.IsAbs(path) && cfg.Source != "" {
		path = filepath.Join(filepath.Dir(cfg.Source), path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read template file %s", path).
			WithDetail("path", path)
	}
	cfg.Template = string(data)
	return nil
}
