package mock

import "github.com/fwojciec/vbadoc"

var _ vbadoc.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of vbadoc.LinkExtractor.
type LinkExtractor struct {
	ExtractLibraryLinksFn func(html string, pageURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLibraryLinks(html string, pageURL string) ([]string, error) {
	return e.ExtractLibraryLinksFn(html, pageURL)
}
