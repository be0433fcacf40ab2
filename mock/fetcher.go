package mock

import (
	"context"

	"github.com/fwojciec/vbadoc"
)

var _ vbadoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of vbadoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
