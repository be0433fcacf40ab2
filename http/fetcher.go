// Package http implements the catalog transport: the vbadoc.CatalogService
// client for the catalog API and documentation host, a plain HTTP
// vbadoc.Fetcher for documentation pages, and sitemap-based library
// discovery.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/vbadoc"
)

// DefaultFetchTimeout is the default timeout for documentation requests.
const DefaultFetchTimeout = vbadoc.DefaultTimeout

// htmlAccept is the Accept header sent for documentation pages.
const htmlAccept = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

// Ensure Fetcher implements vbadoc.Fetcher at compile time.
var _ vbadoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documentation pages with plain HTTP GET requests.
// It does not execute JavaScript; see rod.Fetcher for rendered pages.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: vbadoc.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the markup served at url. Any non-2xx status is an
// error: ENOTFOUND for 404, EUNAVAILABLE otherwise.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", htmlAccept)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, url); err != nil {
		return "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// checkStatus converts a non-2xx response into an application error.
func checkStatus(resp *http.Response, url string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	code := vbadoc.EUNAVAILABLE
	if resp.StatusCode == http.StatusNotFound {
		code = vbadoc.ENOTFOUND
	}
	return vbadoc.Errorf(code, "HTTP %d %s for %s", resp.StatusCode, http.StatusText(resp.StatusCode), url)
}
