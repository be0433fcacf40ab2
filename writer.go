package vbadoc

import "context"

// PageWriter persists documentation pages outside the cache, such as to a
// local docs directory.
type PageWriter interface {
	// WritePage stores page and returns where it was written.
	WritePage(ctx context.Context, page *DocumentationPage) (string, error)
}
