package installer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDiffToolPreservesExistingPager(t *testing.T) {
	run := &fakeRunner{
		paths:   map[string]string{"diff-so-fancy": "/usr/bin/diff-so-fancy"},
		outputs: map[string]string{"git config --global core.pager": "delta\n"},
	}
	ctx := testContext(nil, run)

	require.NoError(t, (&EnsureDiffTool{}).Run(ctx))

	assert.NotContains(t, run.calls, "yarn global add diff-so-fancy", "tool present, no install")
	for _, call := range run.calls {
		assert.NotContains(t, call, diffPager, "configured pager must never be overwritten")
	}
}

func TestEnsureDiffToolWiresPagerWhenUnset(t *testing.T) {
	// git config exits non-zero when core.pager has never been set.
	run := &fakeRunner{
		paths: map[string]string{"diff-so-fancy": "/usr/bin/diff-so-fancy"},
		errs:  map[string]error{"git config --global core.pager": errors.New("exit status 1")},
	}
	ctx := testContext(nil, run)

	require.NoError(t, (&EnsureDiffTool{}).Run(ctx))

	assert.Contains(t, run.calls, "git config --global core.pager "+diffPager)
}

func TestEnsureDiffToolInstallsWhenMissing(t *testing.T) {
	run := &fakeRunner{
		errs: map[string]error{"git config --global core.pager": errors.New("exit status 1")},
	}
	ctx := testContext(nil, run)

	require.NoError(t, (&EnsureDiffTool{}).Run(ctx))

	assert.Contains(t, run.calls, "yarn global add diff-so-fancy")
}
