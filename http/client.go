package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fwojciec/vbadoc"
	"github.com/fwojciec/vbadoc/markup"
	"golang.org/x/time/rate"
)

// Ensure Client implements vbadoc.CatalogService at compile time.
var _ vbadoc.CatalogService = (*Client)(nil)

// Client talks to the VBA catalog API and the documentation host.
// Each operation issues a single request bounded by Config.Timeout and is
// never retried. Client is safe for concurrent use.
type Client struct {
	config    vbadoc.Config
	client    *http.Client
	fetcher   vbadoc.Fetcher
	assembler vbadoc.Assembler
	links     vbadoc.LinkExtractor
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for catalog API requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// WithFetcher sets the fetcher used for documentation pages.
// Defaults to an HTTP Fetcher using Config.Timeout.
func WithFetcher(f vbadoc.Fetcher) ClientOption {
	return func(c *Client) {
		c.fetcher = f
	}
}

// WithAssembler sets the assembler that formats documentation markup.
// Defaults to markup.NewAssembler().
func WithAssembler(a vbadoc.Assembler) ClientOption {
	return func(c *Client) {
		c.assembler = a
	}
}

// WithLinkExtractor enables related-library discovery on documentation pages.
func WithLinkExtractor(e vbadoc.LinkExtractor) ClientOption {
	return func(c *Client) {
		c.links = e
	}
}

// WithRateLimit limits outbound requests to rps per second.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		} else {
			c.limiter = nil
		}
	}
}

// WithLogger sets the logger for recovered failures.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Client for cfg.
func NewClient(cfg vbadoc.Config, opts ...ClientOption) *Client {
	c := &Client{
		config: cfg,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{Timeout: cfg.Timeout}
	}
	if c.fetcher == nil {
		c.fetcher = NewFetcher(WithTimeout(cfg.Timeout))
	}
	if c.assembler == nil {
		c.assembler = markup.NewAssembler()
	}

	return c
}

// SearchLibraries implements vbadoc.CatalogService.
func (c *Client) SearchLibraries(ctx context.Context, query string, opts vbadoc.SearchOptions) *vbadoc.SearchOutcome {
	begin := time.Now()

	outcome, err := c.searchLibraries(ctx, query, opts)
	if err != nil {
		c.logger.Error("VBA library search failed", "query", query, "err", err)
		return &vbadoc.SearchOutcome{
			Results:    []vbadoc.Library{},
			TotalCount: 0,
			SearchTime: time.Since(begin).Milliseconds(),
			Error:      "Failed to search VBA libraries: " + failureText(err),
		}
	}

	outcome.SearchTime = time.Since(begin).Milliseconds()
	return outcome
}

func (c *Client) searchLibraries(ctx context.Context, query string, opts vbadoc.SearchOptions) (*vbadoc.SearchOutcome, error) {
	params := url.Values{}
	params.Set("q", vbadoc.SanitizeQuery(query))
	params.Set("api-version", vbadoc.DefaultAPIVersion)
	setParam(params, "app", string(opts.OfficeApp))
	setParam(params, "category", string(opts.Category))
	setParam(params, "version", opts.APIVersion)
	setIntParam(params, "limit", c.limit(opts.Limit))

	target, err := buildURL(c.config.APIBaseURL, params, "search")
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := c.getJSON(ctx, target, &resp); err != nil {
		return nil, err
	}

	results := libraries(resp.Results)

	total := len(results)
	if resp.TotalCount.ok && int(resp.TotalCount.value) != 0 {
		total = int(resp.TotalCount.value)
	}

	suggestions := []string(resp.Suggestions)
	if suggestions == nil {
		suggestions = []string{}
	}

	return &vbadoc.SearchOutcome{
		Results:     results,
		TotalCount:  total,
		Suggestions: suggestions,
	}, nil
}

// FetchDocumentation implements vbadoc.CatalogService.
func (c *Client) FetchDocumentation(ctx context.Context, libraryID string, opts vbadoc.DocumentationOptions) (string, bool) {
	page, ok := c.FetchDocumentationPage(ctx, libraryID, opts)
	if !ok {
		return "", false
	}
	return page.Content, true
}

// FetchDocumentationPage implements vbadoc.CatalogService.
func (c *Client) FetchDocumentationPage(ctx context.Context, libraryID string, opts vbadoc.DocumentationOptions) (*vbadoc.DocumentationPage, bool) {
	params := url.Values{}
	setParam(params, "topic", opts.Topic)
	setParam(params, "app", string(opts.OfficeApp))
	setParam(params, "difficulty", string(opts.Difficulty))
	setIntParam(params, "tokens", opts.Tokens)

	target, err := buildURL(c.config.DocsBaseURL, params, vbadoc.TrimLibraryIDPrefix(libraryID))
	if err != nil {
		c.logger.Error("VBA documentation fetch failed", "library", libraryID, "err", err)
		return nil, false
	}

	html, err := c.fetchPage(ctx, target)
	if err != nil {
		c.logger.Warn("VBA documentation not found", "library", libraryID, "url", target, "err", err)
		return nil, false
	}

	tokens := opts.Tokens
	if tokens <= 0 {
		tokens = c.config.DefaultTokens
	}

	page := &vbadoc.DocumentationPage{
		LibraryID:        libraryID,
		Content:          c.assembler.Assemble(html, tokens),
		RelatedLibraries: []string{},
		Source:           target,
		FetchedAt:        time.Now().UTC(),
	}

	if c.links != nil {
		related, err := c.links.ExtractLibraryLinks(html, target)
		if err != nil {
			c.logger.Debug("related library extraction failed", "library", libraryID, "err", err)
		} else if related != nil {
			page.RelatedLibraries = related
		}
	}

	return page, true
}

// FetchCodeExamples implements vbadoc.CatalogService.
func (c *Client) FetchCodeExamples(ctx context.Context, libraryID string, opts vbadoc.ExamplesOptions) []vbadoc.Example {
	params := url.Values{}
	setParam(params, "difficulty", string(opts.Difficulty))
	setParam(params, "category", string(opts.Category))
	setIntParam(params, "limit", c.limit(opts.Limit))

	target, err := buildURL(c.config.APIBaseURL, params, "examples", vbadoc.TrimLibraryIDPrefix(libraryID))
	if err != nil {
		c.logger.Error("VBA code examples fetch failed", "library", libraryID, "err", err)
		return []vbadoc.Example{}
	}

	var resp examplesResponse
	if err := c.getJSON(ctx, target, &resp); err != nil {
		c.logger.Error("VBA code examples fetch failed", "library", libraryID, "err", err)
		return []vbadoc.Example{}
	}

	return examples(resp.Examples)
}

// getJSON performs an authorized GET against the catalog API and decodes
// the JSON body into v.
func (c *Client) getJSON(ctx context.Context, target string, v any) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	if err := c.wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", vbadoc.DefaultUserAgent)
	req.Header.Set("Accept", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return vbadoc.Errorf(vbadoc.EUNAVAILABLE, "VBA API error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding catalog response: %w", err)
	}
	return nil
}

// fetchPage retrieves a documentation page through the configured fetcher.
func (c *Client) fetchPage(ctx context.Context, target string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	if err := c.wait(ctx); err != nil {
		return "", err
	}
	return c.fetcher.Fetch(ctx, target)
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// limit clamps a requested limit to Config.MaxResults. Zero means unset.
func (c *Client) limit(n int) int {
	if n <= 0 {
		return 0
	}
	if c.config.MaxResults > 0 && n > c.config.MaxResults {
		return c.config.MaxResults
	}
	return n
}

// buildURL joins path segments onto base and attaches params.
func buildURL(base string, params url.Values, elem ...string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", vbadoc.Errorf(vbadoc.EINVALID, "invalid base URL %q: %v", base, err)
	}
	u = u.JoinPath(elem...)
	u.RawQuery = params.Encode()
	return u.String(), nil
}

func setParam(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func setIntParam(params url.Values, key string, value int) {
	if value > 0 {
		params.Set(key, strconv.Itoa(value))
	}
}

// failureText renders err for display, preferring application messages.
func failureText(err error) string {
	if vbadoc.ErrorCode(err) != vbadoc.EINTERNAL {
		return vbadoc.ErrorMessage(err)
	}
	return err.Error()
}
