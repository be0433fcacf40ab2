package main

import (
	"fmt"

	"github.com/fwojciec/vbadoc"
)

// Run executes the libraries command.
func (c *LibrariesCmd) Run(deps *Dependencies) error {
	ids, err := deps.Sitemaps.DiscoverLibraries(deps.Ctx, deps.Config.DocsBaseURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vbadoc.ErrorMessage(err))
		return err
	}

	if len(ids) == 0 {
		fmt.Fprintf(deps.Stdout, "No libraries found under %s.\n", deps.Config.DocsBaseURL)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Libraries (%d found):\n\n", len(ids))
	for _, id := range ids {
		fmt.Fprintf(deps.Stdout, "  %s\n", id)
	}
	return nil
}
