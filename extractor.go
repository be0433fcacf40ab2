package vbadoc

import "strings"

// ExtractResult holds the main content extracted from a documentation page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with navigation,
	// footers and sidebars removed.
	ContentHTML string
}

// Extractor extracts the main content from documentation pages.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}

// titleSeparators split a page title from its site suffix.
var titleSeparators = []string{" | ", " - ", " – "}

// CleanTitle strips a trailing site name such as " | Microsoft Learn" from a
// page title.
func CleanTitle(title string) string {
	title = strings.TrimSpace(title)
	for _, sep := range titleSeparators {
		if i := strings.LastIndex(title, sep); i > 0 {
			title = strings.TrimSpace(title[:i])
		}
	}
	return title
}
