// Package markup extracts readable content from documentation markup using
// independent pattern scans over the raw text. It does not build a DOM:
// malformed or partial markup yields partial or empty results, never an
// error.
package markup

import (
	"regexp"
	"strings"

	"github.com/fwojciec/vbadoc"
)

var (
	scriptRe     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe      = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	preRe    = regexp.MustCompile(`(?is)<pre[^>]*>(.*?)</pre>`)
	codeRe   = regexp.MustCompile(`(?is)<code[^>]*>(.*?)</code>`)
	headerRe = regexp.MustCompile(`(?is)<h[1-6][^>]*>(.*?)</h[1-6]>`)
)

// ExtractText returns the prose of markup. Script and style blocks are
// removed with their contents before the remaining tags are stripped, then
// whitespace runs collapse to single spaces.
func ExtractText(markup string) string {
	s := scriptRe.ReplaceAllString(markup, "")
	s = styleRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ExtractCode returns the inner content of every <pre> block followed by
// every <code> element, each family in document order. A <code> nested in
// a <pre> is reported twice.
func ExtractCode(markup string) []string {
	blocks := innerMatches(preRe, markup)
	return append(blocks, innerMatches(codeRe, markup)...)
}

// ExtractHeaders returns the inner content of <h1> through <h6> elements in
// document order. Tags inside a header are kept as-is.
func ExtractHeaders(markup string) []string {
	return innerMatches(headerRe, markup)
}

// Extract runs all three scans over markup.
func Extract(markup string) *vbadoc.ExtractedDocument {
	return &vbadoc.ExtractedDocument{
		Text:       ExtractText(markup),
		Headers:    ExtractHeaders(markup),
		CodeBlocks: ExtractCode(markup),
	}
}

func innerMatches(re *regexp.Regexp, s string) []string {
	matches := re.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
