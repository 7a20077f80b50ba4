package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "minirepl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("minirepl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "> ", cfg.Prompt)
	assert.True(t, cfg.Rollback)
	assert.True(t, cfg.Banner)
	assert.False(t, cfg.ShowIR)
	assert.False(t, cfg.Verbose)
	if cfg.HistoryFile != "" {
		assert.Equal(t, historyFileName, filepath.Base(cfg.HistoryFile))
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "prompt: \"calc> \"\nshow_ir: true\nrollback: false\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	expected := Default()
	expected.Prompt = "calc> "
	expected.ShowIR = true
	expected.Rollback = false
	assert.Equal(t, expected, cfg)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(writeFile(t, "promt: \"> \"\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "promt")
	})
	t.Run("wrong type", func(t *testing.T) {
		_, err := Load(writeFile(t, "show_ir: maybe\n"))
		require.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		fs := newFlagSet()
		cfg, err := Parse(fs, nil)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("flags", func(t *testing.T) {
		fs := newFlagSet()
		cfg, err := Parse(fs, []string{"-ir", "-v", "-rollback=false", "-history", "", "script.mr"})
		require.NoError(t, err)
		assert.True(t, cfg.ShowIR)
		assert.True(t, cfg.Verbose)
		assert.False(t, cfg.Rollback)
		assert.Empty(t, cfg.HistoryFile)
		assert.Equal(t, []string{"script.mr"}, fs.Args())
	})

	t.Run("flags override file", func(t *testing.T) {
		path := writeFile(t, "prompt: \"file> \"\nshow_ir: true\nbanner: false\n")
		fs := newFlagSet()
		cfg, err := Parse(fs, []string{"-config", path, "-ir=false"})
		require.NoError(t, err)
		assert.Equal(t, "file> ", cfg.Prompt, "unset flag keeps the file value")
		assert.False(t, cfg.ShowIR)
		assert.False(t, cfg.Banner)
	})

	t.Run("extra flags", func(t *testing.T) {
		fs := newFlagSet()
		src := fs.String("e", "", "")
		_, err := Parse(fs, []string{"-e", "print(1);"})
		require.NoError(t, err)
		assert.Equal(t, "print(1);", *src)
	})

	t.Run("bad config", func(t *testing.T) {
		_, err := Parse(newFlagSet(), []string{"-config", writeFile(t, "nope: 1\n")})
		require.Error(t, err)
	})
}
