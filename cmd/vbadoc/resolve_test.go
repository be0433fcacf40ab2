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

func TestResolveCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes filters and renders outcome", func(t *testing.T) {
		t.Parallel()

		catalog := &mock.CatalogService{
			SearchLibrariesFn: func(_ context.Context, query string, opts vbadoc.SearchOptions) *vbadoc.SearchOutcome {
				assert.Equal(t, "pivot", query)
				assert.Equal(t, vbadoc.OfficeAppExcel, opts.OfficeApp)
				assert.Equal(t, vbadoc.CategoryPivotTable, opts.Category)
				assert.Equal(t, 5, opts.Limit)
				return &vbadoc.SearchOutcome{
					Results: []vbadoc.Library{
						{ID: "/vba/excel-pivot", Name: "Excel.PivotTable", OfficeApp: vbadoc.OfficeAppExcel, Examples: []vbadoc.Example{{Category: vbadoc.CategoryPivotTable}}},
					},
					TotalCount: 1,
				}
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Catalog: catalog,
		}

		cmd := &main.ResolveCmd{Query: "pivot", App: "Excel", Category: string(vbadoc.CategoryPivotTable), Limit: 5}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Available VBA Libraries (1 found):")
		assert.Contains(t, stdout.String(), "**Excel.PivotTable**")
	})

	t.Run("prints no results message", func(t *testing.T) {
		t.Parallel()

		catalog := &mock.CatalogService{
			SearchLibrariesFn: func(_ context.Context, _ string, _ vbadoc.SearchOptions) *vbadoc.SearchOutcome {
				return &vbadoc.SearchOutcome{Results: []vbadoc.Library{}}
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Catalog: catalog}

		err := (&main.ResolveCmd{Query: "nothing"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, vbadoc.NoResultsMessage+"\n", stdout.String())
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Catalog: &mock.CatalogService{}}

		err := (&main.ResolveCmd{Query: "x", Category: "Spreadsheets"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, vbadoc.EINVALID, vbadoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "unknown category")
	})

	t.Run("rejects empty query", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Catalog: &mock.CatalogService{}}

		err := (&main.ResolveCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "library name is required")
	})
}
