// Package cache memoizes catalog results in a vbadoc.Cache for a fixed
// lifetime. Only successful results are stored.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/vbadoc"
	"github.com/fwojciec/vbadoc/bloom"
)

// Key kinds, one per cached operation.
const (
	KindSearch   = "search"
	KindDocs     = "docs"
	KindExamples = "examples"
)

// Bloom filter sizing for the key prefilter.
const (
	minFilterSize = 1024
	filterFPRate  = 0.01
)

// Ensure CatalogService implements vbadoc.CatalogService at compile time.
var _ vbadoc.CatalogService = (*CatalogService)(nil)

// CatalogService caches the results of another CatalogService.
// A Bloom filter of stored keys lets cold lookups skip the store.
type CatalogService struct {
	next   vbadoc.CatalogService
	store  vbadoc.Cache
	ttl    time.Duration
	filter *bloom.Filter
	logger *slog.Logger
}

// Option configures a CatalogService.
type Option func(*CatalogService)

// WithLogger sets the logger for store failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *CatalogService) {
		s.logger = logger
	}
}

// New creates a CatalogService in front of next, warming its key filter
// from the unexpired entries in store. A non-positive ttl disables caching
// and New returns a pass-through service.
func New(ctx context.Context, next vbadoc.CatalogService, store vbadoc.Cache, ttl time.Duration, opts ...Option) (*CatalogService, error) {
	s := &CatalogService{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	if !s.enabled() {
		return s, nil
	}

	keys, err := store.Keys(ctx)
	if err != nil {
		return nil, err
	}
	s.filter = bloom.NewFilter(uint(max(2*len(keys), minFilterSize)), filterFPRate)
	s.filter.AddAll(keys)
	s.logger.Debug("cache filter warmed", "keys", len(keys), "estimated", s.filter.EstimatedCount())

	return s, nil
}

func (s *CatalogService) enabled() bool {
	return s.ttl > 0 && s.store != nil
}

// SearchLibraries implements vbadoc.CatalogService.
func (s *CatalogService) SearchLibraries(ctx context.Context, query string, opts vbadoc.SearchOptions) *vbadoc.SearchOutcome {
	if !s.enabled() {
		return s.next.SearchLibraries(ctx, query, opts)
	}

	key := Key(KindSearch, struct {
		Query string               `json:"q"`
		Opts  vbadoc.SearchOptions `json:"opts"`
	}{strings.ToLower(vbadoc.SanitizeQuery(query)), opts})

	var cached vbadoc.SearchOutcome
	if s.load(ctx, key, &cached) {
		return &cached
	}

	outcome := s.next.SearchLibraries(ctx, query, opts)
	if outcome != nil && outcome.Error == "" {
		s.save(ctx, key, outcome)
	}
	return outcome
}

// FetchDocumentation implements vbadoc.CatalogService.
func (s *CatalogService) FetchDocumentation(ctx context.Context, libraryID string, opts vbadoc.DocumentationOptions) (string, bool) {
	if !s.enabled() {
		return s.next.FetchDocumentation(ctx, libraryID, opts)
	}

	page, ok := s.FetchDocumentationPage(ctx, libraryID, opts)
	if !ok {
		return "", false
	}
	return page.Content, true
}

// FetchDocumentationPage implements vbadoc.CatalogService.
func (s *CatalogService) FetchDocumentationPage(ctx context.Context, libraryID string, opts vbadoc.DocumentationOptions) (*vbadoc.DocumentationPage, bool) {
	if !s.enabled() {
		return s.next.FetchDocumentationPage(ctx, libraryID, opts)
	}

	key := Key(KindDocs, struct {
		ID   string                      `json:"id"`
		Opts vbadoc.DocumentationOptions `json:"opts"`
	}{libraryID, opts})

	var cached vbadoc.DocumentationPage
	if s.load(ctx, key, &cached) {
		return &cached, true
	}

	page, ok := s.next.FetchDocumentationPage(ctx, libraryID, opts)
	if ok && page != nil {
		s.save(ctx, key, page)
	}
	return page, ok
}

// FetchCodeExamples implements vbadoc.CatalogService. Empty results are not
// cached since they cannot be told apart from a failed fetch.
func (s *CatalogService) FetchCodeExamples(ctx context.Context, libraryID string, opts vbadoc.ExamplesOptions) []vbadoc.Example {
	if !s.enabled() {
		return s.next.FetchCodeExamples(ctx, libraryID, opts)
	}

	key := Key(KindExamples, struct {
		ID   string                 `json:"id"`
		Opts vbadoc.ExamplesOptions `json:"opts"`
	}{libraryID, opts})

	var cached []vbadoc.Example
	if s.load(ctx, key, &cached) {
		return cached
	}

	examples := s.next.FetchCodeExamples(ctx, libraryID, opts)
	if len(examples) > 0 {
		s.save(ctx, key, examples)
	}
	return examples
}

// load decodes the entry stored under key into v. It reports false on a
// miss; store and decode failures count as misses.
func (s *CatalogService) load(ctx context.Context, key string, v any) bool {
	if !s.filter.Test(key) {
		return false
	}

	data, err := s.store.Get(ctx, key)
	if err != nil {
		if vbadoc.ErrorCode(err) != vbadoc.ENOTFOUND {
			s.logger.Warn("cache read failed", "key", key, "err", err)
		}
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn("cache entry corrupt", "key", key, "err", err)
		return false
	}
	return true
}

func (s *CatalogService) save(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("cache encode failed", "key", key, "err", err)
		return
	}
	if err := s.store.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("cache write failed", "key", key, "err", err)
		return
	}
	s.filter.Add(key)
}

// Key derives the cache key of a request: kind, a colon, then the hex
// xxhash of the request's JSON encoding.
func Key(kind string, request any) string {
	data, err := json.Marshal(request)
	if err != nil {
		data = []byte(err.Error())
	}
	return kind + ":" + strconv.FormatUint(xxhash.Sum64(data), 16)
}
