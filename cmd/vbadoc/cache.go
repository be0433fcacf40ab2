package main

import (
	"fmt"

	"github.com/fwojciec/vbadoc"
)

// Run executes the cache purge command.
func (c *CachePurgeCmd) Run(deps *Dependencies) error {
	if deps.Cache == nil {
		fmt.Fprintln(deps.Stderr, "error: cache is disabled")
		return vbadoc.Errorf(vbadoc.EINVALID, "cache is disabled")
	}

	n, err := deps.Cache.DeleteExpired(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vbadoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Purged %d expired cache entries.\n", n)
	return nil
}
