package vbadoc_test

import (
	"testing"

	"github.com/fwojciec/vbadoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutline(t *testing.T) {
	t.Parallel()

	t.Run("collects headings with levels and anchors", func(t *testing.T) {
		t.Parallel()

		content := "# VBA Documentation\n\n## Range.Select method (Excel)\n\nBody\n\n### Return value\n"

		headings := vbadoc.Outline(content)

		require.Len(t, headings, 3)
		assert.Equal(t, vbadoc.Heading{Level: 1, Title: "VBA Documentation", Anchor: "vba-documentation"}, headings[0])
		assert.Equal(t, vbadoc.Heading{Level: 2, Title: "Range.Select method (Excel)", Anchor: "range-select-method-excel"}, headings[1])
		assert.Equal(t, 3, headings[2].Level)
	})

	t.Run("ignores comment lines inside code fences", func(t *testing.T) {
		t.Parallel()

		content := "## Example\n\n```vba\n# Not a heading\n```\n\n## Remarks\n"

		headings := vbadoc.Outline(content)

		require.Len(t, headings, 2)
		assert.Equal(t, "Remarks", headings[1].Title)
	})

	t.Run("suffixes repeated anchors", func(t *testing.T) {
		t.Parallel()

		headings := vbadoc.Outline("## Example\n## Example\n## Example\n")

		require.Len(t, headings, 3)
		assert.Equal(t, []string{"example", "example-1", "example-2"},
			[]string{headings[0].Anchor, headings[1].Anchor, headings[2].Anchor})
	})

	t.Run("strips closing hashes", func(t *testing.T) {
		t.Parallel()

		headings := vbadoc.Outline("## Syntax ##\n")

		require.Len(t, headings, 1)
		assert.Equal(t, "Syntax", headings[0].Title)
	})

	t.Run("returns nil without headings", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, vbadoc.Outline("plain text\n#hashtag"))
		assert.Nil(t, vbadoc.Outline(""))
	})
}

func TestFormatOutline(t *testing.T) {
	t.Parallel()

	headings := []vbadoc.Heading{
		{Level: 2, Title: "Syntax", Anchor: "syntax"},
		{Level: 3, Title: "Parameters", Anchor: "parameters"},
		{Level: 2, Title: "Example", Anchor: "example"},
	}

	assert.Equal(t, "- [Syntax](#syntax)\n  - [Parameters](#parameters)\n- [Example](#example)\n", vbadoc.FormatOutline(headings))
	assert.Empty(t, vbadoc.FormatOutline(nil))
}
