package vbadoc_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/vbadoc"
	"github.com/fwojciec/vbadoc/mock"
	"github.com/stretchr/testify/assert"
)

func TestTruncateTokens(t *testing.T) {
	t.Parallel()

	t.Run("keeps exactly maxTokens characters and appends marker", func(t *testing.T) {
		t.Parallel()

		got := vbadoc.TruncateTokens(strings.Repeat("x", 500), 50)

		assert.Equal(t, strings.Repeat("x", 50)+vbadoc.TruncationMarker, got)
	})

	t.Run("returns input at or under the budget", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "12345", vbadoc.TruncateTokens("12345", 5))
	})

	t.Run("non-positive budget disables truncation", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "abc", vbadoc.TruncateTokens("abc", 0))
		assert.Equal(t, "abc", vbadoc.TruncateTokens("abc", -1))
	})
}

func TestMarkdownAssembler_Assemble(t *testing.T) {
	t.Parallel()

	t.Run("converts extracted content and prepends title", func(t *testing.T) {
		t.Parallel()

		var converted string
		a := &vbadoc.MarkdownAssembler{
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*vbadoc.ExtractResult, error) {
					return &vbadoc.ExtractResult{Title: "Range object", ContentHTML: "<p>main</p>"}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					converted = html
					return "main\n", nil
				},
			},
		}

		result := a.Assemble("<nav>x</nav><p>main</p>", 0)

		assert.Equal(t, "<p>main</p>", converted)
		assert.Equal(t, "# Range object\n\nmain", result)
	})

	t.Run("converts whole markup without extractor", func(t *testing.T) {
		t.Parallel()

		a := &vbadoc.MarkdownAssembler{
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					return "# Heading\n\nbody", nil
				},
			},
		}

		assert.Equal(t, "# Heading\n\nbody", a.Assemble("<h1>Heading</h1><p>body</p>", 0))
	})

	t.Run("uses raw markup when extraction yields no content", func(t *testing.T) {
		t.Parallel()

		var converted string
		a := &vbadoc.MarkdownAssembler{
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*vbadoc.ExtractResult, error) {
					return &vbadoc.ExtractResult{}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					converted = html
					return "ok", nil
				},
			},
		}

		a.Assemble("<p>raw</p>", 0)

		assert.Equal(t, "<p>raw</p>", converted)
	})

	t.Run("applies token budget", func(t *testing.T) {
		t.Parallel()

		a := &vbadoc.MarkdownAssembler{
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					return strings.Repeat("m", 100), nil
				},
			},
		}

		assert.Equal(t, strings.Repeat("m", 10)+vbadoc.TruncationMarker, a.Assemble("<p/>", 10))
	})

	t.Run("falls back to markup on extractor error", func(t *testing.T) {
		t.Parallel()

		a := &vbadoc.MarkdownAssembler{
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*vbadoc.ExtractResult, error) {
					return nil, errors.New("no content")
				},
			},
		}

		assert.Equal(t, "<p>raw</p>", a.Assemble("<p>raw</p>", 0))
	})

	t.Run("falls back to markup on converter error", func(t *testing.T) {
		t.Parallel()

		a := &vbadoc.MarkdownAssembler{
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					return "", errors.New("bad html")
				},
			},
		}

		assert.Equal(t, "<p>raw</p>", a.Assemble("<p>raw</p>", 0))
	})

	t.Run("falls back to markup on panic", func(t *testing.T) {
		t.Parallel()

		a := &vbadoc.MarkdownAssembler{} // nil converter panics

		assert.Equal(t, "<p>raw</p>", a.Assemble("<p>raw</p>", 0))
	})
}
