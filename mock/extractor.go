package mock

import "github.com/fwojciec/vbadoc"

var _ vbadoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of vbadoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*vbadoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*vbadoc.ExtractResult, error) {
	return e.ExtractFn(html)
}
