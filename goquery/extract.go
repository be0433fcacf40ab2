// Package goquery finds library cross-references in documentation pages
// using goquery's CSS selectors.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/vbadoc"
)

// Ensure LinkExtractor implements vbadoc.LinkExtractor at compile time.
var _ vbadoc.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor reports the libraries a documentation page links to.
// Only same-host links below the documentation base path count.
type LinkExtractor struct {
	docsPath string
}

// NewLinkExtractor creates a LinkExtractor for pages served under
// docsBaseURL.
func NewLinkExtractor(docsBaseURL string) (*LinkExtractor, error) {
	base, err := url.Parse(docsBaseURL)
	if err != nil {
		return nil, vbadoc.Errorf(vbadoc.EINVALID, "invalid docs base URL: %v", err)
	}
	return &LinkExtractor{docsPath: base.Path}, nil
}

// ExtractLibraryLinks implements vbadoc.LinkExtractor.
func (e *LinkExtractor) ExtractLibraryLinks(html string, pageURL string) ([]string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, vbadoc.Errorf(vbadoc.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, vbadoc.Errorf(vbadoc.EINVALID, "failed to parse HTML: %v", err)
	}

	self, _ := vbadoc.LibraryIDForPath(base.Path, e.docsPath)

	seen := make(map[string]bool)
	ids := []string{}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		// Skip non-HTTP links (javascript:, mailto:, etc.)
		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == nil || resolved.Host != base.Host {
			return
		}

		id, ok := vbadoc.LibraryIDForPath(resolved.Path, e.docsPath)
		if !ok || id == self || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	})

	return ids, nil
}

// resolveURL resolves a relative URL against a base URL with the fragment
// stripped. Returns nil if href cannot be parsed.
func resolveURL(base *url.URL, href string) *url.URL {
	ref, err := url.Parse(href)
	if err != nil {
		return nil
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
