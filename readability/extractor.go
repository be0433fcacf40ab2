// Package readability extracts the main content of documentation pages with
// go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/vbadoc"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements vbadoc.Extractor at compile time.
var _ vbadoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	pageURL *url.URL
}

// NewExtractor creates a new Extractor. When docsBaseURL parses, relative
// links in the extracted content are resolved against it.
func NewExtractor(docsBaseURL string) *Extractor {
	e := &Extractor{}
	if u, err := url.Parse(docsBaseURL); err == nil && u.IsAbs() {
		e.pageURL = u
	}
	return e
}

// Extract implements vbadoc.Extractor.
func (e *Extractor) Extract(rawHTML string) (*vbadoc.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, vbadoc.Errorf(vbadoc.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, err
	}

	return &vbadoc.ExtractResult{
		Title:       vbadoc.CleanTitle(article.Title),
		ContentHTML: article.Content,
	}, nil
}
