// Package rod fetches documentation pages that need JavaScript to render,
// driving headless Chrome through go-rod.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/vbadoc"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultSettle is how long the DOM must stay unchanged after load before
// the page counts as rendered.
const DefaultSettle = 300 * time.Millisecond

// Ensure Fetcher implements vbadoc.Fetcher at compile time.
var _ vbadoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	userAgent string
	settle    time.Duration
	bin       string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithUserAgent overrides the browser's User-Agent for every page.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithSettle sets how long the DOM must be stable before HTML is read.
// Zero skips the stability wait.
func WithSettle(d time.Duration) Option {
	return func(f *Fetcher) {
		f.settle = d
	}
}

// WithBrowserBin uses the Chrome binary at path instead of the one rod
// finds or downloads.
func WithBrowserBin(path string) Option {
	return func(f *Fetcher) {
		f.bin = path
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		userAgent: vbadoc.DefaultUserAgent,
		settle:    DefaultSettle,
	}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().Headless(true)
	if f.bin != "" {
		l = l.Bin(f.bin)
	}
	u, err := l.Launch()
	if err != nil {
		return nil, vbadoc.Errorf(vbadoc.EUNAVAILABLE, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, vbadoc.Errorf(vbadoc.EUNAVAILABLE, "connecting to browser: %v", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", err
		}
	}

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}
	if f.settle > 0 {
		if err := page.WaitStable(f.settle); err != nil {
			return "", err
		}
	}

	return page.HTML()
}

// LauncherPID returns the PID of the launched browser process.
func (f *Fetcher) LauncherPID() int {
	return f.launcher.PID()
}

// Close releases browser resources and terminates the browser process.
func (f *Fetcher) Close() error {
	err := f.browser.Close()
	f.launcher.Kill()
	return err
}
