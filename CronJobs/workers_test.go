package CronJobs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepRemovesOnlyStaleFiles(t *testing.T) {
	dir := t.TempDir()

	stale := filepath.Join(dir, "quotation_1.pdf")
	fresh := filepath.Join(dir, "quotation_2.pdf")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(fresh, []byte("new"), 0o644))

	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(stale, past, past))

	janitor := NewExportJanitor(dir)
	require.NoError(t, janitor.Sweep())

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	assert.NoError(t, err)
}

func TestSweepToleratesMissingDir(t *testing.T) {
	janitor := NewExportJanitor(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.NoError(t, janitor.Sweep())
}
