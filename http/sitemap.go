package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/vbadoc"
)

// Ensure SitemapService implements vbadoc.SitemapService.
var _ vbadoc.SitemapService = (*SitemapService)(nil)

// SitemapService discovers documented libraries from the documentation
// host's sitemaps.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverLibraries implements vbadoc.SitemapService.
//
// Every sitemap URL whose path lies below docsBaseURL's path contributes the
// library named by its first path segment under that prefix, lower-cased.
// Segments that do not form a valid library ID are skipped.
func (s *SitemapService) DiscoverLibraries(ctx context.Context, docsBaseURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(docsBaseURL)
	if err != nil {
		return nil, vbadoc.Errorf(vbadoc.EINVALID, "invalid docs base URL: %v", err)
	}

	// Sitemaps live at the host root regardless of the docs path.
	root := *base
	root.Path = ""
	root.RawQuery = ""

	sitemapURLs, err := s.findSitemapURLs(ctx, &root)
	if err != nil {
		return nil, err
	}

	ids := []string{}
	seenIDs := make(map[string]bool)
	seenSitemaps := make(map[string]bool)

	for _, sitemapURL := range sitemapURLs {
		pageURLs, err := s.processSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			return nil, err
		}
		for _, pageURL := range pageURLs {
			id, ok := libraryIDFromURL(pageURL, base.Path)
			if !ok || seenIDs[id] {
				continue
			}
			seenIDs[id] = true
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// libraryIDFromURL maps a documentation page URL to the ID of the library
// it documents.
func libraryIDFromURL(rawURL, docsPath string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	return vbadoc.LibraryIDForPath(u.Path, docsPath)
}

// findSitemapURLs discovers sitemap URLs from robots.txt or falls back to /sitemap.xml.
func (s *SitemapService) findSitemapURLs(ctx context.Context, root *url.URL) ([]string, error) {
	robotsURL := root.ResolveReference(&url.URL{Path: "/robots.txt"})
	sitemaps, err := s.parseSitemapsFromRobots(ctx, robotsURL.String())
	if err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	sitemapURL := root.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	exists, err := s.urlExists(ctx, sitemapURL.String())
	if err != nil {
		// Propagate context errors, treat other errors as "not found"
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if exists {
		return []string{sitemapURL.String()}, nil
	}

	return nil, nil
}

// parseSitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (s *SitemapService) parseSitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.fetchURL(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) > len("sitemap:") && strings.EqualFold(line[:len("sitemap:")], "sitemap:") {
			if loc := strings.TrimSpace(line[len("sitemap:"):]); loc != "" {
				sitemaps = append(sitemaps, loc)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}

	return sitemaps, nil
}

// processSitemap fetches and parses a sitemap, following sitemap indexes.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetchURL(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML")
	}

	if root.Tag != "sitemapindex" {
		return locs(root, "url"), nil
	}

	var pageURLs []string
	for _, child := range locs(root, "sitemap") {
		urls, err := s.processSitemap(ctx, child, seen)
		if err != nil {
			return nil, err
		}
		pageURLs = append(pageURLs, urls...)
	}
	return pageURLs, nil
}

// locs returns the non-empty <loc> values of root's children named tag.
func locs(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if v := strings.TrimSpace(loc.Text()); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// fetchURL fetches a URL and returns the response body.
func (s *SitemapService) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", vbadoc.DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	if err := checkStatus(resp, targetURL); err != nil {
		resp.Body.Close()
		return nil, err
	}

	return resp.Body, nil
}

// urlExists checks if a URL answers a HEAD request with 200 OK.
func (s *SitemapService) urlExists(ctx context.Context, targetURL string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
