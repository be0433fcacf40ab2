package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/vbadoc"
	"golang.org/x/sync/errgroup"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	if err := validateLibraryID(c.LibraryID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vbadoc.ErrorMessage(err))
		return err
	}
	if err := validateFilters(c.LibraryID, c.App, c.Difficulty, ""); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vbadoc.ErrorMessage(err))
		return err
	}

	var (
		page     *vbadoc.DocumentationPage
		examples []vbadoc.Example
	)

	// A missing page cancels the examples fetch.
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		var ok bool
		page, ok = deps.Catalog.FetchDocumentationPage(ctx, c.LibraryID, vbadoc.DocumentationOptions{
			Topic:      c.Topic,
			OfficeApp:  vbadoc.OfficeApp(c.App),
			Difficulty: vbadoc.Difficulty(c.Difficulty),
			Tokens:     c.Tokens,
		})
		if !ok {
			return vbadoc.Errorf(vbadoc.ENOTFOUND, "documentation for %q not found", c.LibraryID)
		}
		return nil
	})
	if c.Examples {
		g.Go(func() error {
			examples = deps.Catalog.FetchCodeExamples(ctx, c.LibraryID, vbadoc.ExamplesOptions{
				Difficulty: vbadoc.Difficulty(c.Difficulty),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'vbadoc resolve <name>' to find library IDs.\n", vbadoc.ErrorMessage(err))
		return err
	}

	if c.Output != "" && deps.Pages != nil {
		path, err := deps.Pages.WritePage(deps.Ctx, page)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: saving documentation: %s\n", vbadoc.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved documentation for %s to %s\n", c.LibraryID, path)
		return nil
	}

	if c.Outline {
		fmt.Fprint(deps.Stdout, vbadoc.FormatOutline(vbadoc.Outline(page.Content)))
		return nil
	}

	fmt.Fprintln(deps.Stdout, page.Content)

	if len(page.RelatedLibraries) > 0 {
		fmt.Fprintf(deps.Stdout, "\nRelated libraries: %s\n", strings.Join(page.RelatedLibraries, ", "))
	}

	if len(examples) > 0 {
		fmt.Fprintf(deps.Stdout, "\n%s", vbadoc.FormatExamples(examples))
	}

	if c.CountTokens && deps.Tokens != nil {
		reportTokens(deps.Ctx, deps, page.Content)
	}

	return nil
}

// reportTokens writes the token count of content to stderr. Counting
// failures are reported but do not fail the command.
func reportTokens(ctx context.Context, deps *Dependencies, content string) {
	n, err := deps.Tokens.CountTokens(ctx, content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "warning: token count unavailable: %v\n", err)
		return
	}
	fmt.Fprintf(deps.Stderr, "tokens: %d\n", n)
}
