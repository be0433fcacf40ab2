package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/vbadoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Config   vbadoc.Config
	Catalog  vbadoc.CatalogService
	Sitemaps vbadoc.SitemapService
	Cache    vbadoc.Cache
	Tokens   vbadoc.TokenCounter
	Pages    vbadoc.PageWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	APIBaseURL    string  `name:"api-base-url" env:"VBA_API_BASE_URL" default:"${api_base_url}" help:"VBA catalog API root"`
	DocsBaseURL   string  `name:"docs-base-url" env:"VBA_DOCS_BASE_URL" default:"${docs_base_url}" help:"Documentation host root"`
	APIKey        string  `name:"api-key" env:"MICROSOFT_API_KEY" help:"Bearer token for the catalog API"`
	Timeout       int     `env:"VBA_API_TIMEOUT" default:"${timeout_ms}" help:"Request timeout in milliseconds"`
	CacheTTL      int     `name:"cache-ttl" env:"VBA_CACHE_TTL" default:"${cache_ttl_s}" help:"Cache lifetime in seconds (0 disables)"`
	MaxResults    int     `name:"max-limit" env:"VBA_MAX_RESULTS" default:"${max_results}" help:"Largest result limit sent to the catalog"`
	DefaultTokens int     `env:"VBA_DEFAULT_TOKENS" default:"${default_tokens}" help:"Documentation token budget when --tokens is not given"`
	CacheDB       string  `name:"cache-db" env:"VBA_CACHE_DB" default:"${cache_db}" help:"Cache database path"`
	NoCache       bool    `help:"Bypass the result cache"`
	RateLimit     float64 `help:"Maximum outbound requests per second (0 for unlimited)"`
	Verbose       bool    `short:"v" help:"Log requests to stderr"`

	Resolve   ResolveCmd   `cmd:"" help:"Search the catalog for VBA libraries"`
	Docs      DocsCmd      `cmd:"" help:"Show documentation for a library"`
	Examples  ExamplesCmd  `cmd:"" help:"Show code examples for a library"`
	Libraries LibrariesCmd `cmd:"" help:"List libraries published on the documentation host"`
	Cache     CacheCmd     `cmd:"" help:"Manage the result cache"`
}

// Config builds the catalog configuration from global flags.
func (c *CLI) Config() vbadoc.Config {
	return vbadoc.Config{
		APIBaseURL:    c.APIBaseURL,
		DocsBaseURL:   c.DocsBaseURL,
		APIKey:        c.APIKey,
		Timeout:       time.Duration(c.Timeout) * time.Millisecond,
		CacheTTL:      time.Duration(c.CacheTTL) * time.Second,
		MaxResults:    c.MaxResults,
		DefaultTokens: c.DefaultTokens,
	}
}

// Vars returns the interpolation variables for CLI flag defaults.
func Vars() kong.Vars {
	return kong.Vars{
		"api_base_url":   vbadoc.DefaultAPIBaseURL,
		"docs_base_url":  vbadoc.DefaultDocsBaseURL,
		"timeout_ms":     strconv.FormatInt(vbadoc.DefaultTimeout.Milliseconds(), 10),
		"cache_ttl_s":    strconv.Itoa(int(vbadoc.DefaultCacheTTL.Seconds())),
		"max_results":    strconv.Itoa(vbadoc.DefaultMaxResults),
		"default_tokens": strconv.Itoa(vbadoc.DefaultTokens),
		"cache_db":       defaultCacheDBPath(),
	}
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Query          string `arg:"" help:"Library name or keywords"`
	App            string `help:"Office application filter"`
	Category       string `help:"Example category filter"`
	APIVersion     string `name:"api-version" help:"Office API version filter"`
	Limit          int    `help:"Number of results requested from the catalog"`
	MaxResults     int    `name:"max-results" help:"Maximum libraries to display"`
	ShowExamples   bool   `help:"Show example counts per difficulty"`
	ShowTrustScore bool   `help:"Show library trust scores"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	LibraryID   string `arg:"" name:"library-id" help:"Library ID, e.g. /vba/excel-worksheet"`
	Topic       string `help:"Narrow documentation to a topic"`
	App         string `help:"Office application"`
	Difficulty  string `help:"Example difficulty"`
	Tokens      int    `help:"Token budget for the documentation"`
	Examples    bool   `help:"Append code examples"`
	Markdown    bool   `help:"Render main content as Markdown instead of the built-in assembler"`
	Outline     bool   `help:"Print only the heading outline of the documentation"`
	Output      string `type:"path" help:"Save the documentation as markdown under this directory instead of printing it"`
	Extractor   string `enum:"trafilatura,readability" default:"trafilatura" help:"Main-content extractor for --markdown"`
	Browser     bool   `help:"Render pages with headless Chrome"`
	CountTokens bool   `help:"Report the Gemini token count of the documentation on stderr"`
}

// ExamplesCmd is the "examples" subcommand.
type ExamplesCmd struct {
	LibraryID  string `arg:"" name:"library-id" help:"Library ID, e.g. /vba/excel-worksheet"`
	Difficulty string `help:"Example difficulty filter"`
	Category   string `help:"Example category filter"`
	Limit      int    `help:"Maximum number of examples"`
}

// LibrariesCmd is the "libraries" subcommand.
type LibrariesCmd struct{}

// CacheCmd groups cache maintenance subcommands.
type CacheCmd struct {
	Purge CachePurgeCmd `cmd:"" help:"Delete expired cache entries"`
}

// CachePurgeCmd is the "cache purge" subcommand.
type CachePurgeCmd struct{}

func defaultCacheDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "vbadoc.db"
	}
	return filepath.Join(home, ".vbadoc", "cache.db")
}
