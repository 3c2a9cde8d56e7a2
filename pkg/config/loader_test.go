package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/combogen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlConfig = `
class_name = "paladin"
spec_name = "Prot"
output_filename = "prot.txt"
talent_positions = [1, 3]
talent_values = [1, 2]
template = "X={t1},Y={t3}"
destinations = ["out/a", "out/b"]
`

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func isolateXDG(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "combogen.toml"), tomlConfig)

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)

	assert.Equal(t, "paladin", cfg.ClassName)
	assert.Equal(t, "Prot", cfg.SpecName)
	assert.Equal(t, "prot.txt", cfg.OutputFilename)
	assert.Equal(t, []int{1, 3}, cfg.Positions)
	assert.Equal(t, []string{"1", "2"}, cfg.Values)
	assert.Equal(t, "X={t1},Y={t3}", cfg.Template)
	assert.Equal(t, []string{"out/a", "out/b"}, cfg.Destinations)
	assert.Equal(t, path, cfg.Source)

	// defaults survive where the file is silent
	assert.Equal(t, "t", cfg.PlaceholderPrefix)
	assert.Equal(t, 1000000, cfg.MaxCombinations)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "combogen.yaml"), `
output_filename: out.txt
talent_positions: [2]
talent_values: ["a", "b", "c"]
template: "v={t2}"
destinations:
  - dest
`)

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, cfg.Positions)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Values)
	assert.Equal(t, []string{"dest"}, cfg.Destinations)
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "combogen.toml"), tomlConfig)

	cfg, err := Load(LoadOptions{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "combogen.toml"), cfg.Source)
}

func TestLoadSearchesXDGConfigHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	path := writeFile(t, filepath.Join(home, "combogen", "config.toml"), tomlConfig)

	cfg, err := Load(LoadOptions{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Source)
}

func TestLoadWithoutFileFailsValidation(t *testing.T) {
	isolateXDG(t)

	_, err := Load(LoadOptions{Dir: t.TempDir()})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "combogen.toml"), tomlConfig)
	t.Setenv("COMBOGEN_OUTPUT_FILENAME", "env.txt")
	t.Setenv("COMBOGEN_DESTINATIONS", "x,y,z")
	t.Setenv("COMBOGEN_TALENT_VALUES", "4,5")

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "env.txt", cfg.OutputFilename)
	assert.Equal(t, []string{"x", "y", "z"}, cfg.Destinations)
	assert.Equal(t, []string{"4", "5"}, cfg.Values)
}

func TestLoadEnvironmentOverridesPositions(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "combogen.toml"), tomlConfig)
	t.Setenv("COMBOGEN_TALENT_POSITIONS", "1, 3,6")
	t.Setenv("COMBOGEN_TEMPLATE", "{t1}{t3}{t6}")

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 6}, cfg.Positions)
	assert.Equal(t, "{t1}{t3}{t6}", cfg.Template)
}

func TestEnvValue(t *testing.T) {
	key, val := envValue("COMBOGEN_DESTINATIONS", "a,b")
	assert.Equal(t, "destinations", key)
	assert.Equal(t, []string{"a", "b"}, val)

	key, val = envValue("COMBOGEN_OUTPUT_FILENAME", "x,y.txt")
	assert.Equal(t, "output_filename", key)
	assert.Equal(t, "x,y.txt", val)
}

func TestLoadFlagOverridesWinOverEnvironment(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "combogen.toml"), tomlConfig)
	t.Setenv("COMBOGEN_OUTPUT_FILENAME", "env.txt")

	cfg, err := Load(LoadOptions{
		Path: path,
		Overrides: map[string]interface{}{
			"output_filename": "flag.txt",
			"destinations":    []string{"only"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "flag.txt", cfg.OutputFilename)
	assert.Equal(t, []string{"only"}, cfg.Destinations)
}

func TestLoadTemplateFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "templates", "monk.simc"), "talents={t1}{t3}\n")
	path := writeFile(t, filepath.Join(dir, "combogen.toml"), `
output_filename = "monk.txt"
talent_positions = [1, 3]
talent_values = [1, 2]
template_file = "templates/monk.simc"
destinations = ["out"]
`)

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "talents={t1}{t3}\n", cfg.Template)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		content string
		code    errors.ErrorCode
	}{
		{
			name: "missing explicit file",
			path: filepath.Join(dir, "nope.toml"),
			code: errors.ErrConfigLoad,
		},
		{
			name:    "unsupported extension",
			path:    filepath.Join(dir, "combogen.ini"),
			content: "x=1",
			code:    errors.ErrConfigLoad,
		},
		{
			name:    "malformed toml",
			path:    filepath.Join(dir, "bad.toml"),
			content: "talent_positions = [1,",
			code:    errors.ErrConfigParse,
		},
		{
			name: "template and template_file",
			path: filepath.Join(dir, "both.toml"),
			content: `
talent_positions = [1]
talent_values = [1]
template = "{t1}"
template_file = "t.txt"
destinations = ["out"]
`,
			code: errors.ErrConfigInvalid,
		},
		{
			name: "missing template file",
			path: filepath.Join(dir, "missing-tmpl.toml"),
			content: `
talent_positions = [1]
talent_values = [1]
template_file = "absent.txt"
destinations = ["out"]
`,
			code: errors.ErrConfigLoad,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.content != "" {
				writeFile(t, tt.path, tt.content)
			}
			_, err := Load(LoadOptions{Path: tt.path})
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err), err.Error())
			assert.True(t, errors.IsConfigError(err))
		})
	}
}
