package vbadoc

import "strings"

// ExtractedDocument is the structured content scanned out of raw markup.
type ExtractedDocument struct {
	// Text is the prose with markup, scripts and styles removed.
	Text string

	// Headers holds header inner content in document order.
	// Embedded tags are not stripped.
	Headers []string

	// CodeBlocks holds block code regions followed by inline code regions.
	CodeBlocks []string
}

// Assembler turns raw documentation markup into a formatted document.
type Assembler interface {
	// Assemble formats markup, capping the result at maxTokens when
	// maxTokens is positive. It never fails: on any internal error the
	// original markup is returned unchanged.
	Assemble(markup string, maxTokens int) string
}

// TruncateTokens caps s at maxTokens characters and appends
// TruncationMarker when s is longer. Tokens are approximated by characters;
// no tokenizer is involved. A non-positive maxTokens leaves s unchanged.
func TruncateTokens(s string, maxTokens int) string {
	if maxTokens <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxTokens {
		return s
	}
	return string(runes[:maxTokens]) + TruncationMarker
}

// Ensure MarkdownAssembler implements Assembler at compile time.
var _ Assembler = (*MarkdownAssembler)(nil)

// MarkdownAssembler renders documentation by extracting the main content
// and converting it to Markdown, instead of scanning the raw markup.
type MarkdownAssembler struct {
	// Extractor removes boilerplate. Optional; when nil the whole markup is
	// converted.
	Extractor Extractor

	// Converter renders the (extracted) HTML as Markdown.
	Converter Converter
}

// Assemble implements Assembler.
func (a *MarkdownAssembler) Assemble(markup string, maxTokens int) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = markup
		}
	}()

	contentHTML := markup
	var title string
	if a.Extractor != nil {
		extracted, err := a.Extractor.Extract(markup)
		if err != nil {
			return markup
		}
		title = extracted.Title
		if strings.TrimSpace(extracted.ContentHTML) != "" {
			contentHTML = extracted.ContentHTML
		}
	}

	md, err := a.Converter.Convert(contentHTML)
	if err != nil {
		return markup
	}
	md = strings.TrimSpace(md)

	if title != "" && !strings.HasPrefix(md, "# ") {
		md = "# " + title + "\n\n" + md
	}

	return TruncateTokens(md, maxTokens)
}
