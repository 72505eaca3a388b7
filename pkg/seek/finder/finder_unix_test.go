//go:build unix

package finder

import (
	"errors"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FIFOIsReportedNotEmitted(t *testing.T) {
	inTempDir(t)
	makeTree(t, "r/a", "r/z")

	pipe := filepath.Join("r", "pipe")
	if err := syscall.Mkfifo(pipe, 0o644); err != nil {
		t.Skipf("mkfifo unavailable: %v", err)
	}

	rec, stats := run(t, NewConfig(WithPaths("r")))

	assert.Equal(t, []string{"r", filepath.Join("r", "a"), filepath.Join("r", "z")}, rec.paths)
	require.Len(t, rec.errs, 1)
	assert.Equal(t, pipe, rec.errs[0].Path)
	assert.True(t, errors.Is(rec.errs[0], ErrUnclassified))
	assert.Equal(t, int64(1), stats.Errors)
	assert.Equal(t, int64(4), stats.Visited)
}
