package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "setbuilder.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Options{Dir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, "selectors_gen.go", cfg.Gen.Filename)
	assert.Empty(t, cfg.Gen.Prefix)
	assert.Empty(t, cfg.Gen.Types)
	assert.False(t, cfg.Gen.DryRun)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Development)
	assert.Equal(t, FormatSpew, cfg.Demo.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
gen:
  filename: sel_gen.go
  prefix: Sel
  types: [Person, Product]
log:
  level: debug
  development: true
demo:
  format: yaml
`)

	cfg, err := Load(Options{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, "sel_gen.go", cfg.Gen.Filename)
	assert.Equal(t, "Sel", cfg.Gen.Prefix)
	assert.Equal(t, []string{"Person", "Product"}, cfg.Gen.Types)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, FormatYAML, cfg.Demo.Format)
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gen:\n  prefix: Custom\n"), 0o644))

	cfg, err := Load(Options{File: path})
	require.NoError(t, err)
	assert.Equal(t, "Custom", cfg.Gen.Prefix)

	_, err = Load(Options{File: filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "gen:\n  prefix: File\n")

	t.Setenv("SETBUILDER_GEN_PREFIX", "Env")
	t.Setenv("SETBUILDER_LOG_LEVEL", "warn")

	cfg, err := Load(Options{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, "Env", cfg.Gen.Prefix)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "gen:\n  prefix: File\n")
	t.Setenv("SETBUILDER_GEN_PREFIX", "Env")

	flags := pflag.NewFlagSet("gen", pflag.ContinueOnError)
	flags.String("prefix", "", "")
	flags.Bool("dry-run", false, "")
	require.NoError(t, flags.Parse([]string{"--prefix", "Flag"}))

	cfg, err := Load(Options{
		Dir: dir,
		Flags: map[string]*pflag.Flag{
			"gen.prefix":  flags.Lookup("prefix"),
			"gen.dry_run": flags.Lookup("dry-run"),
			"log.level":   nil,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Flag", cfg.Gen.Prefix)
	assert.False(t, cfg.Gen.DryRun)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"filename", "gen:\n  filename: selectors.txt\n", "gen.filename"},
		{"prefix", "gen:\n  prefix: 9lives\n", "gen.prefix"},
		{"keyword prefix", "gen:\n  prefix: type\n", "gen.prefix"},
		{"level", "log:\n  level: chatty\n", "log.level"},
		{"format", "demo:\n  format: json\n", "demo.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := Load(Options{Dir: dir})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "gen: [unclosed\n")

	_, err := Load(Options{Dir: dir})
	assert.Error(t, err)
}
