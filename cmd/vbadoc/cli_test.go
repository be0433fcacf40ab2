package main_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/vbadoc"
	main "github.com/fwojciec/vbadoc/cmd/vbadoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T, cli *main.CLI, stdout *bytes.Buffer) *kong.Kong {
	t.Helper()

	parser, err := kong.New(cli,
		kong.Writers(stdout, &bytes.Buffer{}),
		kong.Exit(func(int) {}),
		main.Vars(),
	)
	require.NoError(t, err)
	return parser
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	parser := newParser(t, &main.CLI{}, stdout)

	_, _ = parser.Parse([]string{"--help"})

	for _, cmd := range []string{"resolve", "docs", "examples", "libraries", "cache"} {
		assert.Contains(t, stdout.String(), cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_Config(t *testing.T) {
	t.Parallel()

	t.Run("defaults match the documented configuration", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser := newParser(t, cli, &bytes.Buffer{})

		_, err := parser.Parse([]string{"libraries"})
		require.NoError(t, err)

		cfg := cli.Config()
		want := vbadoc.DefaultConfig()
		assert.Equal(t, want.APIBaseURL, cfg.APIBaseURL)
		assert.Equal(t, want.DocsBaseURL, cfg.DocsBaseURL)
		assert.Equal(t, want.Timeout, cfg.Timeout)
		assert.Equal(t, want.CacheTTL, cfg.CacheTTL)
		assert.Equal(t, want.MaxResults, cfg.MaxResults)
		assert.Equal(t, want.DefaultTokens, cfg.DefaultTokens)
	})

	t.Run("converts units of flags", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser := newParser(t, cli, &bytes.Buffer{})

		_, err := parser.Parse([]string{"--timeout", "2500", "--cache-ttl", "60", "--api-key", "k", "libraries"})
		require.NoError(t, err)

		cfg := cli.Config()
		assert.Equal(t, 2500*time.Millisecond, cfg.Timeout)
		assert.Equal(t, time.Minute, cfg.CacheTTL)
		assert.Equal(t, "k", cfg.APIKey)
	})

	t.Run("rejects unknown extractor", func(t *testing.T) {
		t.Parallel()

		parser := newParser(t, &main.CLI{}, &bytes.Buffer{})

		_, err := parser.Parse([]string{"docs", "/vba/excel-range", "--extractor", "boilerpipe"})

		require.Error(t, err)
	})
}
