// Package slog decorates vbadoc services with structured logging via
// log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/vbadoc"
)

// Ensure LoggingSitemapService implements vbadoc.SitemapService.
var _ vbadoc.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with logging.
type LoggingSitemapService struct {
	next   vbadoc.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next vbadoc.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverLibraries delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) DiscoverLibraries(ctx context.Context, docsBaseURL string) (ids []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("library discovery",
			"url", docsBaseURL,
			"count", len(ids),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverLibraries(ctx, docsBaseURL)
}
