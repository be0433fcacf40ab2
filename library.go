package vbadoc

import (
	"context"
	"strings"
	"time"
)

// OfficeApp identifies the Office application a library targets.
type OfficeApp string

// OfficeApp constants. This is the single authoritative enumeration used by
// both the data model and parameter validation.
const (
	OfficeAppExcel      OfficeApp = "Excel"
	OfficeAppWord       OfficeApp = "Word"
	OfficeAppAccess     OfficeApp = "Access"
	OfficeAppPowerPoint OfficeApp = "PowerPoint"
	OfficeAppOutlook    OfficeApp = "Outlook"
	OfficeAppProject    OfficeApp = "Project"
	OfficeAppPublisher  OfficeApp = "Publisher"
)

// OfficeApps lists every supported Office application.
var OfficeApps = []OfficeApp{
	OfficeAppExcel,
	OfficeAppWord,
	OfficeAppAccess,
	OfficeAppPowerPoint,
	OfficeAppOutlook,
	OfficeAppProject,
	OfficeAppPublisher,
}

// Valid reports whether a is a member of OfficeApps.
func (a OfficeApp) Valid() bool {
	for _, app := range OfficeApps {
		if a == app {
			return true
		}
	}
	return false
}

// Category classifies a code example by the object model area it covers.
type Category string

// Category constants.
const (
	CategoryWorkbook   Category = "Workbook"
	CategoryWorksheet  Category = "Worksheet"
	CategoryRange      Category = "Range"
	CategoryChart      Category = "Chart"
	CategoryPivotTable Category = "PivotTable"
	CategoryDocument   Category = "Document"
	CategoryTable      Category = "Table"
	CategoryForm       Category = "Form"
	CategoryQuery      Category = "Query"
	CategorySlide      Category = "Slide"
	CategoryShape      Category = "Shape"
	CategoryEmail      Category = "Email"
	CategoryCalendar   Category = "Calendar"
)

// Categories lists every example category.
var Categories = []Category{
	CategoryWorkbook,
	CategoryWorksheet,
	CategoryRange,
	CategoryChart,
	CategoryPivotTable,
	CategoryDocument,
	CategoryTable,
	CategoryForm,
	CategoryQuery,
	CategorySlide,
	CategoryShape,
	CategoryEmail,
	CategoryCalendar,
}

// Valid reports whether c is a member of Categories.
func (c Category) Valid() bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Difficulty is the skill level a code example is aimed at.
type Difficulty string

// Difficulty constants.
const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Difficulties lists every difficulty level in ascending order.
var Difficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
}

// Valid reports whether d is a member of Difficulties.
func (d Difficulty) Valid() bool {
	for _, diff := range Difficulties {
		if d == diff {
			return true
		}
	}
	return false
}

// Example is a code sample owned by a Library.
type Example struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Code        string     `json:"code"`
	Category    Category   `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Tags        []string   `json:"tags"`
	Author      string     `json:"author,omitempty"`
	CreatedDate time.Time  `json:"createdDate"`
	Rating      float64    `json:"rating"`
}

// Library is a catalog entry describing one Office-application code library.
type Library struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	OfficeApp     OfficeApp `json:"officeApp"`
	APIVersion    string    `json:"apiVersion"`
	Examples      []Example `json:"examples"`
	Documentation string    `json:"documentation"`
	LastUpdated   time.Time `json:"lastUpdated"`

	// TrustScore is intended to fall in 0-10 but is not clamped.
	TrustScore float64 `json:"trustScore"`
	UsageCount int     `json:"usageCount"`
}

// Validate returns an error if the library contains invalid fields.
// An empty ID is allowed; a present ID must satisfy ValidateLibraryID.
func (l *Library) Validate() error {
	if l.ID != "" && !ValidateLibraryID(l.ID) {
		return Errorf(EINVALID, "invalid library ID %q", l.ID)
	}
	if l.UsageCount < 0 {
		return Errorf(EINVALID, "library usage count must not be negative")
	}
	return nil
}

// HasCategory reports whether any of the library's examples has category c.
func (l *Library) HasCategory(c Category) bool {
	for _, ex := range l.Examples {
		if ex.Category == c {
			return true
		}
	}
	return false
}

// SearchOutcome is the result of a library search. An outcome carrying an
// Error normally has no results.
type SearchOutcome struct {
	Results     []Library `json:"results"`
	TotalCount  int       `json:"totalCount"`
	SearchTime  int64     `json:"searchTime"` // milliseconds
	Suggestions []string  `json:"suggestions,omitempty"`
	Error       string    `json:"error,omitempty"`
}

// DocumentationPage is the documentation of one library as served by the
// documentation host.
type DocumentationPage struct {
	LibraryID string `json:"libraryId"`

	// Content is the assembled, token-capped documentation text.
	Content string `json:"content"`

	// RelatedLibraries holds library IDs linked from the page.
	RelatedLibraries []string `json:"relatedLibraries"`

	// Source is the URL the page was fetched from.
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// SearchOptions narrows a library search.
type SearchOptions struct {
	OfficeApp  OfficeApp `json:"officeApp,omitempty"`
	Category   Category  `json:"category,omitempty"`
	APIVersion string    `json:"apiVersion,omitempty"`
	Limit      int       `json:"limit,omitempty"`
}

// DocumentationOptions narrows a documentation fetch.
type DocumentationOptions struct {
	Topic      string     `json:"topic,omitempty"`
	OfficeApp  OfficeApp  `json:"officeApp,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`

	// Tokens is the token budget. Zero means not supplied.
	Tokens int `json:"tokens,omitempty"`
}

// ExamplesOptions narrows a code example fetch.
type ExamplesOptions struct {
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Category   Category   `json:"category,omitempty"`
	Limit      int        `json:"limit,omitempty"`
}

// CatalogService resolves libraries and their documentation from the catalog.
//
// Operations never return errors: upstream failures are recovered at the
// operation boundary and surface as an empty or absent result.
type CatalogService interface {
	// SearchLibraries finds libraries matching query. Failures are reported
	// through SearchOutcome.Error with empty results.
	SearchLibraries(ctx context.Context, query string, opts SearchOptions) *SearchOutcome

	// FetchDocumentation returns the assembled documentation for a library.
	// The boolean is false when the documentation could not be retrieved.
	FetchDocumentation(ctx context.Context, libraryID string, opts DocumentationOptions) (string, bool)

	// FetchDocumentationPage is like FetchDocumentation but also reports the
	// page source and the libraries it links to.
	FetchDocumentationPage(ctx context.Context, libraryID string, opts DocumentationOptions) (*DocumentationPage, bool)

	// FetchCodeExamples returns the code examples of a library.
	// Any failure yields an empty slice.
	FetchCodeExamples(ctx context.Context, libraryID string, opts ExamplesOptions) []Example
}

// TrimLibraryIDPrefix strips a leading "/vba/" from a library ID, leaving
// the slug used in request paths.
func TrimLibraryIDPrefix(libraryID string) string {
	return strings.TrimPrefix(libraryID, LibraryIDPrefix)
}
