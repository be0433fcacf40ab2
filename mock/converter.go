package mock

import "github.com/fwojciec/vbadoc"

var _ vbadoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of vbadoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
