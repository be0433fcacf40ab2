package vbadoc

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// NoResultsMessage is rendered when a search yields no libraries and carries
// no error.
const NoResultsMessage = "No VBA libraries found matching your query."

// LastUpdatedLayout renders dates in the short month/day/year form.
const LastUpdatedLayout = "1/2/2006"

// FormatOptions controls which libraries are rendered and how.
type FormatOptions struct {
	// OfficeApp keeps only libraries for this application when set.
	OfficeApp OfficeApp

	// Category keeps only libraries with at least one example in this
	// category when set.
	Category Category

	// ShowExamples adds a per-difficulty breakdown of example counts.
	ShowExamples bool

	// ShowTrustScore adds the trust score out of 10.
	ShowTrustScore bool

	// MaxResults keeps only the first N libraries after filtering and
	// before sorting. Zero means no limit.
	MaxResults int
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// FormatLibraries renders libraries as display text.
//
// Libraries are filtered by OfficeApp then Category, truncated to
// MaxResults, and only then sorted by trust score, example count and last
// update, all descending. The input slice is not modified.
func FormatLibraries(libs []Library, opts FormatOptions) string {
	filtered := make([]Library, 0, len(libs))
	for _, lib := range libs {
		if opts.OfficeApp != "" && lib.OfficeApp != opts.OfficeApp {
			continue
		}
		if opts.Category != "" && !lib.HasCategory(opts.Category) {
			continue
		}
		filtered = append(filtered, lib)
	}

	if opts.MaxResults > 0 && len(filtered) > opts.MaxResults {
		filtered = filtered[:opts.MaxResults]
	}

	SortLibraries(filtered)

	parts := make([]string, 0, len(filtered))
	for i := range filtered {
		parts = append(parts, formatLibrary(&filtered[i], opts))
	}
	return strings.Join(parts, "\n\n")
}

// SortLibraries orders libraries by trust score, then example count, then
// last update, all descending.
func SortLibraries(libs []Library) {
	slices.SortStableFunc(libs, func(a, b Library) int {
		if c := cmp.Compare(b.TrustScore, a.TrustScore); c != 0 {
			return c
		}
		if c := cmp.Compare(len(b.Examples), len(a.Examples)); c != 0 {
			return c
		}
		return b.LastUpdated.Compare(a.LastUpdated)
	})
}

func formatLibrary(lib *Library, opts FormatOptions) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "**%s**\n", lib.Name)
	fmt.Fprintf(&sb, "- **Office App**: %s\n", lib.OfficeApp)
	fmt.Fprintf(&sb, "- **API Version**: %s\n", lib.APIVersion)
	fmt.Fprintf(&sb, "- **Examples**: %d total\n", len(lib.Examples))

	if opts.ShowExamples && len(lib.Examples) > 0 {
		counts := make(map[Difficulty]int, len(Difficulties))
		for _, ex := range lib.Examples {
			counts[ex.Difficulty]++
		}
		for _, d := range Difficulties {
			fmt.Fprintf(&sb, "  - %s: %d\n", d, counts[d])
		}
	}

	if opts.ShowTrustScore {
		fmt.Fprintf(&sb, "- **Trust Score**: %s/10\n", strconv.FormatFloat(lib.TrustScore, 'f', -1, 64))
	}

	fmt.Fprintf(&sb, "- **Description**: %s\n", lib.Description)
	fmt.Fprintf(&sb, "- **Library ID**: %s\n", DisplayLibraryID(lib.ID))
	fmt.Fprintf(&sb, "- **Last Updated**: %s\n", lib.LastUpdated.UTC().Format(LastUpdatedLayout))
	sb.WriteString("\n---\n")

	return sb.String()
}

// DisplayLibraryID derives the identifier shown to users: the ID lower-cased
// with whitespace runs replaced by a hyphen, prefixed with "/vba/" unless it
// already carries that prefix.
func DisplayLibraryID(id string) string {
	slug := whitespaceRe.ReplaceAllString(strings.ToLower(id), "-")
	if strings.HasPrefix(slug, LibraryIDPrefix) {
		return slug
	}
	return LibraryIDPrefix + slug
}

// FormatSearchOutcome renders a search outcome: a summary line, the
// formatted libraries, the search time and any suggestions. An outcome
// without results renders its error, or NoResultsMessage.
func FormatSearchOutcome(outcome *SearchOutcome, opts FormatOptions) string {
	if outcome == nil || len(outcome.Results) == 0 {
		if outcome != nil && outcome.Error != "" {
			return outcome.Error
		}
		return NoResultsMessage
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Available VBA Libraries (%d found):\n\n", len(outcome.Results))
	sb.WriteString(FormatLibraries(outcome.Results, opts))

	if outcome.SearchTime != 0 {
		fmt.Fprintf(&sb, "\nSearch completed in %dms.", outcome.SearchTime)
	}

	if len(outcome.Suggestions) > 0 {
		fmt.Fprintf(&sb, "\n\nSuggestions: %s", strings.Join(outcome.Suggestions, ", "))
	}

	return sb.String()
}

// FormatExamples renders code examples as Markdown, one section per example
// with its code fenced as VBA. It returns an empty string for no examples.
func FormatExamples(examples []Example) string {
	if len(examples) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## Code Examples (%d)\n", len(examples))

	for _, ex := range examples {
		fmt.Fprintf(&sb, "\n### %s\n\n", ex.Title)

		var meta []string
		if ex.Difficulty != "" {
			meta = append(meta, string(ex.Difficulty))
		}
		if ex.Category != "" {
			meta = append(meta, string(ex.Category))
		}
		if ex.Rating > 0 {
			meta = append(meta, "rated "+strconv.FormatFloat(ex.Rating, 'f', -1, 64))
		}
		if len(meta) > 0 {
			fmt.Fprintf(&sb, "_%s_\n\n", strings.Join(meta, " · "))
		}

		if ex.Description != "" {
			sb.WriteString(ex.Description + "\n\n")
		}
		fmt.Fprintf(&sb, "```vba\n%s\n```\n", strings.TrimSpace(ex.Code))
	}

	return sb.String()
}
