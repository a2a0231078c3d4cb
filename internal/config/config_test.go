package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sparkle/internal/sparkles"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `text: Hello
count: 24
colors:
  first: "#ff0000"
class: title
logging:
  file: /tmp/sparkle.log
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello", cfg.Text)
	assert.Equal(t, 24, cfg.Count)
	assert.Equal(t, "#ff0000", cfg.Colors.First)
	assert.Equal(t, sparkles.DefaultColors().Second, cfg.Colors.Second)
	assert.Equal(t, "title", cfg.Class)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/sparkle.log", cfg.Logging.File)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: [oops"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SPARKLE_TEXT", "")
	t.Setenv("SPARKLE_COUNT", "3")
	t.Setenv("SPARKLE_FIRST_COLOR", "#111111")
	t.Setenv("SPARKLE_SECOND_COLOR", "#222")
	t.Setenv("SPARKLE_CLASS", "hint")
	t.Setenv("SPARKLE_LOG_LEVEL", "warn")

	cfg, err := ApplyEnv(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Text)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, sparkles.Colors{First: "#111111", Second: "#222"}, cfg.Colors)
	assert.Equal(t, "hint", cfg.Class)
	assert.Equal(t, "warn", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestApplyEnv_BadCount(t *testing.T) {
	t.Setenv("SPARKLE_COUNT", "ten")

	_, err := ApplyEnv(DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty text", func(c *Config) { c.Text = "" }, false},
		{"zero count", func(c *Config) { c.Count = 0 }, true},
		{"negative count", func(c *Config) { c.Count = -4 }, true},
		{"max count", func(c *Config) { c.Count = MaxCount }, false},
		{"too many", func(c *Config) { c.Count = MaxCount + 1 }, true},
		{"named color", func(c *Config) { c.Colors.First = "violet" }, true},
		{"short hex", func(c *Config) { c.Colors.Second = "#abc" }, false},
		{"bad hex", func(c *Config) { c.Colors.Second = "#abcd" }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Class = "title"

	p := cfg.Props()
	assert.Equal(t, cfg.Text, p.Text)
	assert.Equal(t, cfg.Count, p.Count)
	assert.Equal(t, cfg.Colors, p.Colors)
	assert.Equal(t, "title", p.ClassName)
}

func TestLoad_SchemaRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"typo key", "cnt: 12\n"},
		{"typo nested key", "colours:\n  first: \"#fff\"\n"},
		{"unknown color key", "colors:\n  third: \"#fff\"\n"},
		{"count as string", "count: lots\n"},
		{"count too big", "count: 500\n"},
		{"count zero", "count: 0\n"},
		{"named color", "colors:\n  first: violet\n"},
		{"bad level", "logging:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))

			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
