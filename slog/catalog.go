package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/vbadoc"
	"github.com/google/uuid"
)

// Ensure LoggingCatalogService implements vbadoc.CatalogService.
var _ vbadoc.CatalogService = (*LoggingCatalogService)(nil)

// LoggingCatalogService wraps a CatalogService with logging. Every call is
// tagged with a fresh request_id.
type LoggingCatalogService struct {
	next   vbadoc.CatalogService
	logger *slog.Logger
}

// NewLoggingCatalogService creates a new LoggingCatalogService.
func NewLoggingCatalogService(next vbadoc.CatalogService, logger *slog.Logger) *LoggingCatalogService {
	return &LoggingCatalogService{next: next, logger: logger}
}

// SearchLibraries delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) SearchLibraries(ctx context.Context, query string, opts vbadoc.SearchOptions) (outcome *vbadoc.SearchOutcome) {
	defer func(begin time.Time) {
		attrs := []any{
			"request_id", uuid.NewString(),
			"query", query,
			"app", opts.OfficeApp,
			"duration", time.Since(begin),
		}
		if outcome != nil {
			attrs = append(attrs, "results", len(outcome.Results), "total", outcome.TotalCount)
			if outcome.Error != "" {
				s.logger.Warn("search libraries", append(attrs, "err", outcome.Error)...)
				return
			}
		}
		s.logger.Info("search libraries", attrs...)
	}(time.Now())
	return s.next.SearchLibraries(ctx, query, opts)
}

// FetchDocumentation delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) FetchDocumentation(ctx context.Context, libraryID string, opts vbadoc.DocumentationOptions) (content string, found bool) {
	defer func(begin time.Time) {
		s.logger.Info("fetch documentation",
			"request_id", uuid.NewString(),
			"library", libraryID,
			"topic", opts.Topic,
			"found", found,
			"bytes", len(content),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FetchDocumentation(ctx, libraryID, opts)
}

// FetchDocumentationPage delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) FetchDocumentationPage(ctx context.Context, libraryID string, opts vbadoc.DocumentationOptions) (page *vbadoc.DocumentationPage, found bool) {
	defer func(begin time.Time) {
		attrs := []any{
			"request_id", uuid.NewString(),
			"library", libraryID,
			"topic", opts.Topic,
			"found", found,
			"duration", time.Since(begin),
		}
		if page != nil {
			attrs = append(attrs, "bytes", len(page.Content), "related", len(page.RelatedLibraries))
		}
		s.logger.Info("fetch documentation page", attrs...)
	}(time.Now())
	return s.next.FetchDocumentationPage(ctx, libraryID, opts)
}

// FetchCodeExamples delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) FetchCodeExamples(ctx context.Context, libraryID string, opts vbadoc.ExamplesOptions) (examples []vbadoc.Example) {
	defer func(begin time.Time) {
		s.logger.Info("fetch code examples",
			"request_id", uuid.NewString(),
			"library", libraryID,
			"count", len(examples),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FetchCodeExamples(ctx, libraryID, opts)
}
