package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/vbadoc"
	"github.com/fwojciec/vbadoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathForLibrary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{name: "prefixed ID", id: "/vba/excel-worksheet", want: "excel-worksheet.md"},
		{name: "nested name", id: "/vba/word-content-control", want: "word-content-control.md"},
		{name: "missing prefix", id: "excel-worksheet", wantErr: true},
		{name: "path traversal", id: "/vba/../etc", wantErr: true},
		{name: "empty", id: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.PathForLibrary(tt.id)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, vbadoc.EINVALID, vbadoc.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPage(t *testing.T) {
	t.Parallel()

	t.Run("includes frontmatter", func(t *testing.T) {
		t.Parallel()

		page := &vbadoc.DocumentationPage{
			LibraryID:        "/vba/excel-worksheet",
			Content:          "# VBA Documentation\n\nBody",
			RelatedLibraries: []string{"/vba/excel-range", "/vba/excel-chart"},
			Source:           "https://learn.microsoft.com/en-us/office/vba/api/excel-worksheet",
			FetchedAt:        time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		}

		got := fs.FormatPage(page)

		want := "---\n" +
			"library: /vba/excel-worksheet\n" +
			"source: https://learn.microsoft.com/en-us/office/vba/api/excel-worksheet\n" +
			"fetched: 2024-01-15\n" +
			"related:\n" +
			"  - /vba/excel-range\n" +
			"  - /vba/excel-chart\n" +
			"---\n\n" +
			"# VBA Documentation\n\nBody\n"
		assert.Equal(t, want, got)
	})

	t.Run("omits empty fields", func(t *testing.T) {
		t.Parallel()

		got := fs.FormatPage(&vbadoc.DocumentationPage{LibraryID: "/vba/word-table", Content: "Body\n"})

		assert.Equal(t, "---\nlibrary: /vba/word-table\n---\n\nBody\n", got)
	})
}

func TestWriter_WritePage(t *testing.T) {
	t.Parallel()

	t.Run("writes page to file named after library", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "docs")
		w := fs.NewWriter(dir)

		path, err := w.WritePage(context.Background(), &vbadoc.DocumentationPage{
			LibraryID: "/vba/excel-worksheet",
			Content:   "Body",
		})

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "excel-worksheet.md"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "library: /vba/excel-worksheet")
		assert.Contains(t, string(content), "Body\n")
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		ctx := context.Background()

		_, err := w.WritePage(ctx, &vbadoc.DocumentationPage{LibraryID: "/vba/excel-range", Content: "old"})
		require.NoError(t, err)
		path, err := w.WritePage(ctx, &vbadoc.DocumentationPage{LibraryID: "/vba/excel-range", Content: "new"})
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "new")
		assert.NotContains(t, string(content), "old")

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary files should be cleaned up")
	})

	t.Run("rejects invalid library ID", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		_, err := w.WritePage(context.Background(), &vbadoc.DocumentationPage{LibraryID: "../escape"})

		require.Error(t, err)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewWriter(t.TempDir()).WritePage(ctx, &vbadoc.DocumentationPage{LibraryID: "/vba/excel-range"})

		require.ErrorIs(t, err, context.Canceled)
	})
}
