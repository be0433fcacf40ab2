package mock

import (
	"context"

	"github.com/fwojciec/vbadoc"
)

var _ vbadoc.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of vbadoc.CatalogService.
type CatalogService struct {
	SearchLibrariesFn        func(ctx context.Context, query string, opts vbadoc.SearchOptions) *vbadoc.SearchOutcome
	FetchDocumentationFn     func(ctx context.Context, libraryID string, opts vbadoc.DocumentationOptions) (string, bool)
	FetchDocumentationPageFn func(ctx context.Context, libraryID string, opts vbadoc.DocumentationOptions) (*vbadoc.DocumentationPage, bool)
	FetchCodeExamplesFn      func(ctx context.Context, libraryID string, opts vbadoc.ExamplesOptions) []vbadoc.Example
}

func (s *CatalogService) SearchLibraries(ctx context.Context, query string, opts vbadoc.SearchOptions) *vbadoc.SearchOutcome {
	return s.SearchLibrariesFn(ctx, query, opts)
}

func (s *CatalogService) FetchDocumentation(ctx context.Context, libraryID string, opts vbadoc.DocumentationOptions) (string, bool) {
	return s.FetchDocumentationFn(ctx, libraryID, opts)
}

func (s *CatalogService) FetchDocumentationPage(ctx context.Context, libraryID string, opts vbadoc.DocumentationOptions) (*vbadoc.DocumentationPage, bool) {
	return s.FetchDocumentationPageFn(ctx, libraryID, opts)
}

func (s *CatalogService) FetchCodeExamples(ctx context.Context, libraryID string, opts vbadoc.ExamplesOptions) []vbadoc.Example {
	return s.FetchCodeExamplesFn(ctx, libraryID, opts)
}
