package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/vbadoc"
	main "github.com/fwojciec/vbadoc/cmd/vbadoc"
	"github.com/fwojciec/vbadoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docsPage(content string, related ...string) func(context.Context, string, vbadoc.DocumentationOptions) (*vbadoc.DocumentationPage, bool) {
	return func(_ context.Context, libraryID string, _ vbadoc.DocumentationOptions) (*vbadoc.DocumentationPage, bool) {
		if related == nil {
			related = []string{}
		}
		return &vbadoc.DocumentationPage{LibraryID: libraryID, Content: content, RelatedLibraries: related}, true
	}
}

func TestDocsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints documentation and related libraries", func(t *testing.T) {
		t.Parallel()

		var gotOpts vbadoc.DocumentationOptions
		catalog := &mock.CatalogService{
			FetchDocumentationPageFn: func(ctx context.Context, libraryID string, opts vbadoc.DocumentationOptions) (*vbadoc.DocumentationPage, bool) {
				gotOpts = opts
				return docsPage("# VBA Documentation\n\nBody", "/vba/excel-range")(ctx, libraryID, opts)
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Catalog: catalog}

		cmd := &main.DocsCmd{LibraryID: "/vba/excel-worksheet", Topic: "Select", App: "Excel", Difficulty: "Beginner", Tokens: 500}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, vbadoc.DocumentationOptions{
			Topic:      "Select",
			OfficeApp:  vbadoc.OfficeAppExcel,
			Difficulty: vbadoc.DifficultyBeginner,
			Tokens:     500,
		}, gotOpts)
		assert.Equal(t, "# VBA Documentation\n\nBody\n\nRelated libraries: /vba/excel-range\n", stdout.String())
	})

	t.Run("appends examples when requested", func(t *testing.T) {
		t.Parallel()

		catalog := &mock.CatalogService{
			FetchDocumentationPageFn: docsPage("Body"),
			FetchCodeExamplesFn: func(_ context.Context, libraryID string, opts vbadoc.ExamplesOptions) []vbadoc.Example {
				assert.Equal(t, "/vba/excel-worksheet", libraryID)
				assert.Equal(t, vbadoc.DifficultyAdvanced, opts.Difficulty)
				return []vbadoc.Example{{Title: "Protect", Code: "ActiveSheet.Protect"}}
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Catalog: catalog}

		cmd := &main.DocsCmd{LibraryID: "/vba/excel-worksheet", Difficulty: "Advanced", Examples: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Body\n\n## Code Examples (1)\n")
		assert.Contains(t, stdout.String(), "```vba\nActiveSheet.Protect\n```")
	})

	t.Run("does not fetch examples by default", func(t *testing.T) {
		t.Parallel()

		catalog := &mock.CatalogService{FetchDocumentationPageFn: docsPage("Body")}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Catalog: catalog}

		err := (&main.DocsCmd{LibraryID: "/vba/excel-worksheet"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Body\n", stdout.String())
	})

	t.Run("returns not found for missing documentation", func(t *testing.T) {
		t.Parallel()

		catalog := &mock.CatalogService{
			FetchDocumentationPageFn: func(_ context.Context, _ string, _ vbadoc.DocumentationOptions) (*vbadoc.DocumentationPage, bool) {
				return nil, false
			},
			FetchCodeExamplesFn: func(_ context.Context, _ string, _ vbadoc.ExamplesOptions) []vbadoc.Example {
				return []vbadoc.Example{}
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr, Catalog: catalog}

		err := (&main.DocsCmd{LibraryID: "/vba/word-table", Examples: true}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, vbadoc.ENOTFOUND, vbadoc.ErrorCode(err))
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "vbadoc resolve")
	})

	t.Run("rejects malformed library ID", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Catalog: &mock.CatalogService{}}

		err := (&main.DocsCmd{LibraryID: "excel-worksheet"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, vbadoc.EINVALID, vbadoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "invalid library ID")
	})

	t.Run("rejects unknown difficulty", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Catalog: &mock.CatalogService{}}

		err := (&main.DocsCmd{LibraryID: "/vba/excel-worksheet", Difficulty: "Expert"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "unknown difficulty")
	})

	t.Run("reports token count on stderr", func(t *testing.T) {
		t.Parallel()

		catalog := &mock.CatalogService{FetchDocumentationPageFn: docsPage("Body")}
		tokens := &mock.TokenCounter{
			CountTokensFn: func(_ context.Context, text string) (int, error) {
				assert.Equal(t, "Body", text)
				return 42, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr, Catalog: catalog, Tokens: tokens}

		err := (&main.DocsCmd{LibraryID: "/vba/excel-worksheet", CountTokens: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Body\n", stdout.String())
		assert.Equal(t, "tokens: 42\n", stderr.String())
	})

	t.Run("token count failure is a warning", func(t *testing.T) {
		t.Parallel()

		catalog := &mock.CatalogService{FetchDocumentationPageFn: docsPage("Body")}
		tokens := &mock.TokenCounter{
			CountTokensFn: func(_ context.Context, _ string) (int, error) {
				return 0, errors.New("quota exceeded")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Catalog: catalog, Tokens: tokens}

		err := (&main.DocsCmd{LibraryID: "/vba/excel-worksheet", CountTokens: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "warning: token count unavailable: quota exceeded")
	})
}

func TestDocsCmd_Outline(t *testing.T) {
	t.Parallel()

	catalog := &mock.CatalogService{
		FetchDocumentationPageFn: docsPage("# VBA Documentation\n\n## Worksheet object\n\nBody\n\n### Methods\n"),
	}

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Catalog: catalog}

	err := (&main.DocsCmd{LibraryID: "/vba/excel-worksheet", Outline: true}).Run(deps)

	require.NoError(t, err)
	assert.Equal(t, "- [VBA Documentation](#vba-documentation)\n  - [Worksheet object](#worksheet-object)\n    - [Methods](#methods)\n", stdout.String())
}

func TestDocsCmd_Output(t *testing.T) {
	t.Parallel()

	t.Run("saves page instead of printing it", func(t *testing.T) {
		t.Parallel()

		var saved *vbadoc.DocumentationPage
		pages := &mock.PageWriter{
			WritePageFn: func(_ context.Context, page *vbadoc.DocumentationPage) (string, error) {
				saved = page
				return "/tmp/docs/excel-worksheet.md", nil
			},
		}
		catalog := &mock.CatalogService{FetchDocumentationPageFn: docsPage("Body")}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Catalog: catalog, Pages: pages}

		err := (&main.DocsCmd{LibraryID: "/vba/excel-worksheet", Output: "/tmp/docs"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "Body", saved.Content)
		assert.Equal(t, "Saved documentation for /vba/excel-worksheet to /tmp/docs/excel-worksheet.md\n", stdout.String())
	})

	t.Run("returns write error", func(t *testing.T) {
		t.Parallel()

		pages := &mock.PageWriter{
			WritePageFn: func(_ context.Context, _ *vbadoc.DocumentationPage) (string, error) {
				return "", errors.New("permission denied")
			},
		}
		catalog := &mock.CatalogService{FetchDocumentationPageFn: docsPage("Body")}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Catalog: catalog, Pages: pages}

		err := (&main.DocsCmd{LibraryID: "/vba/excel-worksheet", Output: "/tmp/docs"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "saving documentation")
	})
}
