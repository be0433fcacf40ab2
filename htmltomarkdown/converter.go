// Package htmltomarkdown converts documentation HTML to Markdown with
// html-to-markdown, labelling bare code fences as VBA.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/vbadoc"
)

// DefaultCodeLanguage labels fenced code blocks that carry no language.
const DefaultCodeLanguage = "vba"

const fence = "```"

// Ensure Converter implements vbadoc.Converter at compile time.
var _ vbadoc.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv     *converter.Converter
	codeLang string
}

// Option configures a Converter.
type Option func(*Converter)

// WithCodeLanguage sets the language given to unlabelled code fences.
// An empty language leaves fences bare.
func WithCodeLanguage(lang string) Option {
	return func(c *Converter) {
		c.codeLang = lang
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
		codeLang: DefaultCodeLanguage,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert implements vbadoc.Converter.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", vbadoc.Errorf(vbadoc.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	if c.codeLang == "" {
		return md, nil
	}
	return labelFences(md, c.codeLang), nil
}

// labelFences adds lang to every opening fence without a language.
func labelFences(md, lang string) string {
	lines := strings.Split(md, "\n")
	inFence := false
	for i, line := range lines {
		if !strings.HasPrefix(line, fence) {
			continue
		}
		if !inFence && line == fence {
			lines[i] = fence + lang
		}
		inFence = !inFence
	}
	return strings.Join(lines, "\n")
}
