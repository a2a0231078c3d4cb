package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sparkle/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"SPARKLE_TEXT", "SPARKLE_COUNT", "SPARKLE_FIRST_COLOR",
		"SPARKLE_SECOND_COLOR", "SPARKLE_CLASS", "SPARKLE_LOG_FILE", "SPARKLE_LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	missing := filepath.Join(t.TempDir(), "none.yaml")
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append(args, "--config", missing))
	t.Cleanup(resetFlags)

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags undoes flag values left over from a previous Execute.
func resetFlags() {
	rootCmd.SetArgs(nil)
	for _, fs := range []*pflag.FlagSet{rootCmd.PersistentFlags(), rootCmd.Flags(), frameCmd.Flags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "sparkle (devel)\n", out)
}

func TestFrame_PrintsLabel(t *testing.T) {
	out, err := execute(t, "frame", "--ticks", "3", "--seed", "7", "--text", "Hello", "--width", "30", "--height", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[2], "Hello")
}

func TestFrame_SeedIsReproducible(t *testing.T) {
	args := []string{"frame", "--ticks", "12", "--seed", "42", "--count", "30", "--text", "x"}
	a, err := execute(t, args...)
	require.NoError(t, err)
	b, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFrame_RejectsBadSize(t *testing.T) {
	_, err := execute(t, "frame", "--width", "0")
	assert.Error(t, err)
}

func TestSetup_FlagBeatsEnv(t *testing.T) {
	t.Setenv("SPARKLE_COUNT", "50")
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"version", "--count", "12", "--config", filepath.Join(t.TempDir(), "c.yaml")})
	t.Cleanup(resetFlags)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, 12, cfg.Count)
}

func TestSetup_InvalidColor(t *testing.T) {
	_, err := execute(t, "version", "--first-color", "violet")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestFrame_Live(t *testing.T) {
	out, err := execute(t, "frame", "--live", "--ticks", "2", "--seed", "3", "--text", "Live", "--width", "20", "--height", "3")
	require.NoError(t, err)

	frames := strings.Split(strings.TrimRight(out, "\n"), "\n\n")
	assert.Len(t, frames, 3)
	for _, f := range frames {
		assert.Contains(t, f, "Live")
	}
}
