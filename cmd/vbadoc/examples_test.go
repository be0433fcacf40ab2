package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/vbadoc"
	main "github.com/fwojciec/vbadoc/cmd/vbadoc"
	"github.com/fwojciec/vbadoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamplesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints formatted examples", func(t *testing.T) {
		t.Parallel()

		catalog := &mock.CatalogService{
			FetchCodeExamplesFn: func(_ context.Context, libraryID string, opts vbadoc.ExamplesOptions) []vbadoc.Example {
				assert.Equal(t, "/vba/outlook-mail", libraryID)
				assert.Equal(t, vbadoc.ExamplesOptions{
					Difficulty: vbadoc.DifficultyIntermediate,
					Category:   vbadoc.CategoryEmail,
					Limit:      3,
				}, opts)
				return []vbadoc.Example{{Title: "Send", Code: "olMail.Send"}}
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Catalog: catalog}

		cmd := &main.ExamplesCmd{LibraryID: "/vba/outlook-mail", Difficulty: "Intermediate", Category: "Email", Limit: 3}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "## Code Examples (1)\n\n### Send\n\n```vba\nolMail.Send\n```\n", stdout.String())
	})

	t.Run("prints message when there are no examples", func(t *testing.T) {
		t.Parallel()

		catalog := &mock.CatalogService{
			FetchCodeExamplesFn: func(_ context.Context, _ string, _ vbadoc.ExamplesOptions) []vbadoc.Example {
				return []vbadoc.Example{}
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Catalog: catalog}

		err := (&main.ExamplesCmd{LibraryID: "/vba/outlook-mail"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "No code examples found for /vba/outlook-mail.\n", stdout.String())
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Catalog: &mock.CatalogService{}}

		err := (&main.ExamplesCmd{LibraryID: "/vba/outlook-mail", Category: "Macro"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, vbadoc.EINVALID, vbadoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "unknown category")
	})
}
