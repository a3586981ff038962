package main

import (
	"io"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitalone/digitlist"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DIGITCONV_INPUT", "in.txt")
		t.Setenv("DIGITCONV_OUTPUT", "out.txt")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, Config{
			Dir:      ".",
			Input:    "in.txt",
			Output:   "out.txt",
			Base:     16,
			LogLevel: "info",
		}, cfg)
	})

	t.Run("missing input", func(t *testing.T) {
		t.Setenv("DIGITCONV_OUTPUT", "out.txt")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("bad base", func(t *testing.T) {
		t.Setenv("DIGITCONV_INPUT", "in.txt")
		t.Setenv("DIGITCONV_OUTPUT", "out.txt")
		t.Setenv("DIGITCONV_BASE", "40")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "DIGITCONV_BASE")
	})

	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("DIGITCONV_INPUT", "in.txt")
		t.Setenv("DIGITCONV_OUTPUT", "out.txt")
		t.Setenv("DIGITCONV_LOG_LEVEL", "loud")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "DIGITCONV_LOG_LEVEL")
	})
}

func TestRun(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "a.txt", []byte("1000\n"), 0o644))
	require.NoError(t, util.WriteFile(fs, "b.txt", []byte("7"), 0o644))
	require.NoError(t, util.WriteFile(fs, "zero.txt", []byte("0"), 0o644))

	t.Run("convert", func(t *testing.T) {
		cfg := Config{Input: "a.txt", Output: "hex.txt", Base: 16}
		require.NoError(t, run(cfg, fs, zerolog.Nop()))

		content, err := readFile(fs, "hex.txt")
		require.NoError(t, err)
		assert.Equal(t, "3E8", content)
	})

	t.Run("divide", func(t *testing.T) {
		cfg := Config{Input: "a.txt", Output: "q.txt", Divisor: "b.txt", Base: 16}
		require.NoError(t, run(cfg, fs, zerolog.Nop()))

		content, err := readFile(fs, "q.txt")
		require.NoError(t, err)
		assert.Equal(t, "142", content)
	})

	t.Run("divide by zero", func(t *testing.T) {
		cfg := Config{Input: "a.txt", Output: "never.txt", Divisor: "zero.txt", Base: 16}
		err := run(cfg, fs, zerolog.Nop())
		assert.ErrorIs(t, err, digitlist.ErrDivisionByZero)

		_, err = fs.Stat("never.txt")
		assert.Error(t, err)
	})

	t.Run("missing input converts to empty", func(t *testing.T) {
		cfg := Config{Input: "missing.txt", Output: "empty.txt", Base: 2}
		require.NoError(t, run(cfg, fs, zerolog.Nop()))

		content, err := readFile(fs, "empty.txt")
		require.NoError(t, err)
		assert.Equal(t, "", content)
	})
}

func readFile(fs billy.Filesystem, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	return string(b), err
}
