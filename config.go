package vbadoc

import "time"

// Configuration defaults.
const (
	DefaultAPIBaseURL    = "https://api.microsoft.com/vba"
	DefaultDocsBaseURL   = "https://docs.microsoft.com/en-us/office/vba"
	DefaultTimeout       = 15000 * time.Millisecond
	DefaultCacheTTL      = 3600 * time.Second
	DefaultMaxResults    = 50
	DefaultTokens        = 10000
	DefaultAPIVersion    = "2023-11-01"
	DefaultUserAgent     = "vbadoc/1.0"
	LibraryIDPrefix      = "/vba/"
	TruncationMarker     = "\n\n... (content truncated)"
	MaxSanitizedQueryLen = 100
)

// Config holds the settings shared by catalog operations.
// It is passed explicitly to constructors rather than read from the
// environment by the packages that use it.
type Config struct {
	// APIBaseURL is the catalog service root (search and examples endpoints).
	APIBaseURL string `json:"apiBaseUrl"`

	// DocsBaseURL is the documentation host root.
	DocsBaseURL string `json:"docsBaseUrl"`

	// APIKey is sent as a bearer token when non-empty.
	APIKey string `json:"-"`

	// Timeout bounds every outbound request.
	Timeout time.Duration `json:"timeout"`

	// CacheTTL is the lifetime of cached catalog results.
	// Zero or negative disables caching.
	CacheTTL time.Duration `json:"cacheTtl"`

	// MaxResults caps the limit sent to the catalog.
	MaxResults int `json:"maxResults"`

	// DefaultTokens is the token budget applied to documentation when the
	// caller does not supply one.
	DefaultTokens int `json:"defaultTokens"`
}

// DefaultConfig returns a Config populated with the documented defaults.
func DefaultConfig() Config {
	return Config{
		APIBaseURL:    DefaultAPIBaseURL,
		DocsBaseURL:   DefaultDocsBaseURL,
		Timeout:       DefaultTimeout,
		CacheTTL:      DefaultCacheTTL,
		MaxResults:    DefaultMaxResults,
		DefaultTokens: DefaultTokens,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return Errorf(EINVALID, "API base URL required")
	}
	if c.DocsBaseURL == "" {
		return Errorf(EINVALID, "docs base URL required")
	}
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive")
	}
	if c.MaxResults < 0 {
		return Errorf(EINVALID, "max results must not be negative")
	}
	if c.DefaultTokens < 0 {
		return Errorf(EINVALID, "default tokens must not be negative")
	}
	return nil
}
