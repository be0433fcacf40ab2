package vbadoc

import "strings"

// LinkExtractor finds references to other libraries in documentation markup.
type LinkExtractor interface {
	// ExtractLibraryLinks returns the IDs of libraries linked from html,
	// resolving relative links against pageURL. IDs are unique and in
	// document order; the page's own library is excluded.
	ExtractLibraryLinks(html string, pageURL string) ([]string, error)
}

// LibraryIDForPath maps a documentation URL path to the ID of the library it
// documents: the first segment below docsPath, lower-cased and prefixed with
// LibraryIDPrefix. It reports false when path is outside docsPath or the
// segment does not form a valid library ID.
func LibraryIDForPath(path, docsPath string) (string, bool) {
	if !strings.HasSuffix(docsPath, "/") {
		docsPath += "/"
	}
	rest, ok := strings.CutPrefix(path, docsPath)
	if !ok {
		return "", false
	}
	segment, _, _ := strings.Cut(rest, "/")
	if segment == "" {
		return "", false
	}

	id := LibraryIDPrefix + strings.ToLower(segment)
	if !ValidateLibraryID(id) {
		return "", false
	}
	return id, true
}
