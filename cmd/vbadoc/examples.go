package main

import (
	"fmt"

	"github.com/fwojciec/vbadoc"
)

// Run executes the examples command.
func (c *ExamplesCmd) Run(deps *Dependencies) error {
	if err := validateLibraryID(c.LibraryID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vbadoc.ErrorMessage(err))
		return err
	}
	if err := validateFilters(c.LibraryID, "", c.Difficulty, c.Category); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vbadoc.ErrorMessage(err))
		return err
	}

	examples := deps.Catalog.FetchCodeExamples(deps.Ctx, c.LibraryID, vbadoc.ExamplesOptions{
		Difficulty: vbadoc.Difficulty(c.Difficulty),
		Category:   vbadoc.Category(c.Category),
		Limit:      c.Limit,
	})

	if len(examples) == 0 {
		fmt.Fprintf(deps.Stdout, "No code examples found for %s.\n", c.LibraryID)
		return nil
	}

	fmt.Fprint(deps.Stdout, vbadoc.FormatExamples(examples))
	return nil
}
