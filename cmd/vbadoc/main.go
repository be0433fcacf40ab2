package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/vbadoc"
	"github.com/fwojciec/vbadoc/cache"
	"github.com/fwojciec/vbadoc/fs"
	"github.com/fwojciec/vbadoc/gemini"
	"github.com/fwojciec/vbadoc/goquery"
	"github.com/fwojciec/vbadoc/htmltomarkdown"
	vbahttp "github.com/fwojciec/vbadoc/http"
	"github.com/fwojciec/vbadoc/readability"
	"github.com/fwojciec/vbadoc/rod"
	vbaslog "github.com/fwojciec/vbadoc/slog"
	"github.com/fwojciec/vbadoc/sqlite"
	"github.com/fwojciec/vbadoc/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database backing the result cache. Nil when caching is off.
	DB *sqlite.DB

	// closers are released by Close in reverse order.
	closers []io.Closer
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("vbadoc"),
		kong.Description("Search the VBA library catalog and read library documentation."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		Vars(),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'vbadoc --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command := strings.Fields(kongCtx.Command())[0]

	cfg := cli.Config()
	if err := cfg.Validate(); err != nil {
		return err
	}
	deps.Config = cfg

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	defer m.Close()

	switch command {
	case "libraries":
		deps.Sitemaps = vbaslog.NewLoggingSitemapService(vbahttp.NewSitemapService(nil), logger)
		return kongCtx.Run(deps)
	case "cache":
		if !cli.NoCache {
			if err := m.openCache(cli.CacheDB, stderr); err != nil {
				return err
			}
			deps.Cache = sqlite.NewCacheService(m.DB)
		}
		return kongCtx.Run(deps)
	}

	fetcher, err := m.fetcher(cli, cfg, command, stderr)
	if err != nil {
		return err
	}

	links, err := goquery.NewLinkExtractor(cfg.DocsBaseURL)
	if err != nil {
		return err
	}

	var catalog vbadoc.CatalogService = vbahttp.NewClient(cfg,
		vbahttp.WithFetcher(vbaslog.NewLoggingFetcher(fetcher, logger)),
		vbahttp.WithAssembler(assembler(cli, cfg, command)),
		vbahttp.WithLinkExtractor(links),
		vbahttp.WithRateLimit(cli.RateLimit),
		vbahttp.WithLogger(logger),
	)

	if !cli.NoCache && cfg.CacheTTL > 0 {
		if err := m.openCache(cli.CacheDB, stderr); err != nil {
			return err
		}
		catalog, err = cache.New(ctx, catalog, sqlite.NewCacheService(m.DB), cfg.CacheTTL, cache.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("failed to load cache: %w", err)
		}
	}

	deps.Catalog = vbaslog.NewLoggingCatalogService(catalog, logger)

	if command == "docs" && cli.Docs.CountTokens {
		counter, err := gemini.NewTokenCounter(gemini.DefaultModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		deps.Tokens = counter
	}

	if command == "docs" && cli.Docs.Output != "" {
		deps.Pages = fs.NewWriter(cli.Docs.Output)
	}

	return kongCtx.Run(deps)
}

// openCache opens the cache database at path, creating its directory.
func (m *Main) openCache(path string, stderr io.Writer) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set VBA_CACHE_DB to use a different cache path, or pass --no-cache")
		return fmt.Errorf("failed to open cache at %q: %w", path, err)
	}
	m.closers = append(m.closers, m.DB)
	return nil
}

// fetcher returns the documentation page fetcher for the command.
func (m *Main) fetcher(cli *CLI, cfg vbadoc.Config, command string, stderr io.Writer) (vbadoc.Fetcher, error) {
	if command != "docs" || !cli.Docs.Browser {
		return vbahttp.NewFetcher(vbahttp.WithTimeout(cfg.Timeout)), nil
	}

	f, err := rod.NewFetcher()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	m.closers = append(m.closers, f)
	return f, nil
}

// assembler returns the documentation assembler for the command. Nil
// selects the client's built-in assembler.
func assembler(cli *CLI, cfg vbadoc.Config, command string) vbadoc.Assembler {
	if command != "docs" || !cli.Docs.Markdown {
		return nil
	}

	var extractor vbadoc.Extractor = trafilatura.NewExtractor()
	if cli.Docs.Extractor == "readability" {
		extractor = readability.NewExtractor(cfg.DocsBaseURL)
	}
	return &vbadoc.MarkdownAssembler{
		Extractor: extractor,
		Converter: htmltomarkdown.NewConverter(),
	}
}
