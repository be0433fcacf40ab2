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

func TestCachePurgeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports purged entries", func(t *testing.T) {
		t.Parallel()

		store := &mock.Cache{
			DeleteExpiredFn: func(_ context.Context) (int, error) {
				return 7, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Cache: store}

		err := (&main.CachePurgeCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Purged 7 expired cache entries.\n", stdout.String())
	})

	t.Run("fails when cache is disabled", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr}

		err := (&main.CachePurgeCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, vbadoc.EINVALID, vbadoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "cache is disabled")
	})
}
