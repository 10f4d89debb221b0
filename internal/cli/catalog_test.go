package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogDump(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "catalog.yaml")
	out := filepath.Join(dir, "events.yaml")

	require.NoError(t, os.WriteFile(manifest, []byte(`
events:
    BlockBreakEvent:
        class: org.bukkit.event.block.BlockBreakEvent
        cancellable: true
        origin: org.bukkit.event.block
`), 0o644))

	stdout, err := runCLI(t, "catalog", "dump", "--manifest", manifest, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote 1 events")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BlockBreakEvent")
	assert.Contains(t, string(data), "cancellable: true")
}

func TestCatalogDumpMissingManifest(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "catalog", "dump",
		"--manifest", filepath.Join(dir, "absent.yaml"),
		"--out", filepath.Join(dir, "events.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestJournalRecordsEdits(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "hush.yaml")
	db := filepath.Join(dir, "journal.db")

	_, err := runCLI(t, "--config", cfg, "--journal", db, "rule", "add", "BlockBreakEvent", "GLOBAL")
	require.NoError(t, err)
	_, err = runCLI(t, "--config", cfg, "--journal", db, "rule", "remove", "BlockBreakEvent", "GLOBAL")
	require.NoError(t, err)

	out, err := runCLI(t, "--journal", db, "journal")
	require.NoError(t, err)
	assert.Contains(t, out, "rule.add")
	assert.Contains(t, out, "rule.remove")
}

func TestJournalRequiresPath(t *testing.T) {
	_, err := runCLI(t, "journal")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
