// Package fs provides file-based storage for documentation pages.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/vbadoc"
)

// PathForLibrary converts a library ID to a relative file path.
// Example: /vba/excel-worksheet → excel-worksheet.md
func PathForLibrary(libraryID string) (string, error) {
	if !vbadoc.ValidateLibraryID(libraryID) {
		return "", vbadoc.Errorf(vbadoc.EINVALID, "invalid library ID %q", libraryID)
	}
	return vbadoc.TrimLibraryIDPrefix(libraryID) + ".md", nil
}

// FormatPage formats a documentation page with YAML frontmatter.
func FormatPage(page *vbadoc.DocumentationPage) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("library: ")
	b.WriteString(page.LibraryID)
	if page.Source != "" {
		b.WriteString("\nsource: ")
		b.WriteString(page.Source)
	}
	if !page.FetchedAt.IsZero() {
		b.WriteString("\nfetched: ")
		b.WriteString(page.FetchedAt.UTC().Format(time.DateOnly))
	}
	if len(page.RelatedLibraries) > 0 {
		b.WriteString("\nrelated:")
		for _, id := range page.RelatedLibraries {
			b.WriteString("\n  - ")
			b.WriteString(id)
		}
	}
	b.WriteString("\n---\n\n")
	b.WriteString(page.Content)
	if !strings.HasSuffix(page.Content, "\n") {
		b.WriteByte('\n')
	}
	return b.String()
}

// Ensure Writer implements vbadoc.PageWriter at compile time.
var _ vbadoc.PageWriter = (*Writer)(nil)

// Writer writes documentation pages as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WritePage writes page to disk as a markdown file named after its
// library. Existing files are replaced atomically.
func (w *Writer) WritePage(ctx context.Context, page *vbadoc.DocumentationPage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	relPath, err := PathForLibrary(page.LibraryID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	tmp, err := os.CreateTemp(w.baseDir, ".vbadoc-*.md")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(FormatPage(page)); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", err
	}

	return fullPath, nil
}
