package vbadoc

import "context"

// Fetcher retrieves documentation pages as raw markup.
type Fetcher interface {
	// Fetch returns the body served at url. A non-success response is an
	// error. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (markup string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
