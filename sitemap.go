package vbadoc

import "context"

// SitemapService discovers the libraries published on the documentation host.
type SitemapService interface {
	// DiscoverLibraries reads the host's sitemaps (via robots.txt, falling
	// back to /sitemap.xml) and returns the IDs of libraries documented
	// under docsBaseURL, de-duplicated in first-seen order.
	DiscoverLibraries(ctx context.Context, docsBaseURL string) ([]string, error)
}
