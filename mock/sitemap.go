package mock

import (
	"context"

	"github.com/fwojciec/vbadoc"
)

var _ vbadoc.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of vbadoc.SitemapService.
type SitemapService struct {
	DiscoverLibrariesFn func(ctx context.Context, docsBaseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverLibraries(ctx context.Context, docsBaseURL string) ([]string, error) {
	return s.DiscoverLibrariesFn(ctx, docsBaseURL)
}
