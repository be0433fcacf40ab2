package main

import (
	"fmt"

	"github.com/fwojciec/vbadoc"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	if err := validateFilters(c.Query, c.App, "", c.Category); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vbadoc.ErrorMessage(err))
		return err
	}

	outcome := deps.Catalog.SearchLibraries(deps.Ctx, c.Query, vbadoc.SearchOptions{
		OfficeApp:  vbadoc.OfficeApp(c.App),
		Category:   vbadoc.Category(c.Category),
		APIVersion: c.APIVersion,
		Limit:      c.Limit,
	})

	if outcome.Error != "" && len(outcome.Results) == 0 {
		fmt.Fprintf(deps.Stderr, "error: %s\n", outcome.Error)
		return vbadoc.Errorf(vbadoc.EUNAVAILABLE, "%s", outcome.Error)
	}

	fmt.Fprintln(deps.Stdout, vbadoc.FormatSearchOutcome(outcome, vbadoc.FormatOptions{
		OfficeApp:      vbadoc.OfficeApp(c.App),
		Category:       vbadoc.Category(c.Category),
		ShowExamples:   c.ShowExamples,
		ShowTrustScore: c.ShowTrustScore,
		MaxResults:     c.MaxResults,
	}))
	return nil
}

// validateFilters checks a command's name and filter flags, returning an
// EINVALID error naming the accepted values. Empty filters are unset.
func validateFilters(name, app, difficulty, category string) error {
	params := map[string]any{
		vbadoc.ParamLibraryName: name,
		vbadoc.ParamOfficeApp:   app,
		vbadoc.ParamDifficulty:  difficulty,
	}
	if !vbadoc.ValidateParameters(params) {
		switch {
		case name == "":
			return vbadoc.Errorf(vbadoc.EINVALID, "a library name is required")
		case app != "" && !vbadoc.OfficeApp(app).Valid():
			return vbadoc.Errorf(vbadoc.EINVALID, "unknown Office app %q; expected one of %v", app, vbadoc.OfficeApps)
		default:
			return vbadoc.Errorf(vbadoc.EINVALID, "unknown difficulty %q; expected one of %v", difficulty, vbadoc.Difficulties)
		}
	}
	if category != "" && !vbadoc.Category(category).Valid() {
		return vbadoc.Errorf(vbadoc.EINVALID, "unknown category %q; expected one of %v", category, vbadoc.Categories)
	}
	return nil
}

// validateLibraryID rejects malformed library IDs.
func validateLibraryID(id string) error {
	if !vbadoc.ValidateLibraryID(id) {
		return vbadoc.Errorf(vbadoc.EINVALID, "invalid library ID %q. Library IDs look like /vba/excel-worksheet; use 'vbadoc resolve' to find one", id)
	}
	return nil
}
