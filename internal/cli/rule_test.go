package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "hush.yaml")
}

func TestRuleAddAndList(t *testing.T) {
	cfg := tempConfig(t)

	out, err := runCLI(t, "--config", cfg, "rule", "add", "BlockBreakEvent", "GLOBAL")
	require.NoError(t, err)
	assert.Contains(t, out, "added rule")

	out, err = runCLI(t, "--config", cfg, "rule", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "BlockBreakEvent")
	assert.Contains(t, out, "GLOBAL")
}

func TestRuleAddReplacesDuplicate(t *testing.T) {
	cfg := tempConfig(t)

	_, err := runCLI(t, "--config", cfg, "rule", "add", "BlockBreakEvent", "GLOBAL")
	require.NoError(t, err)
	_, err = runCLI(t, "--config", cfg, "rule", "add", "BlockBreakEvent", "GLOBAL")
	require.NoError(t, err)

	out, err := runCLI(t, "--config", cfg, "--format", "json", "rule", "list")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   []ruleView `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Len(t, resp.Data, 1)
}

func TestRuleScopeTargetValidation(t *testing.T) {
	cfg := tempConfig(t)

	tests := []struct {
		name string
		args []string
	}{
		{"world scope without --world", []string{"rule", "add", "X", "WORLD"}},
		{"region scope without --region", []string{"rule", "add", "X", "REGION"}},
		{"global scope with --world", []string{"rule", "add", "X", "GLOBAL", "--world", "world"}},
		{"unknown scope", []string{"rule", "add", "X", "EVERYWHERE"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", cfg}, tt.args...)
			_, err := runCLI(t, args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestRuleRemoveExactIdentity(t *testing.T) {
	cfg := tempConfig(t)

	_, err := runCLI(t, "--config", cfg, "rule", "add", "X", "WORLD", "--world", "world")
	require.NoError(t, err)
	_, err = runCLI(t, "--config", cfg, "rule", "add", "X", "GLOBAL")
	require.NoError(t, err)

	out, err := runCLI(t, "--config", cfg, "rule", "remove", "X", "WORLD", "--world", "world")
	require.NoError(t, err)
	assert.Contains(t, out, "rule removed")

	// The GLOBAL rule survives.
	out, err = runCLI(t, "--config", cfg, "check", "X", "--world", "world")
	require.NoError(t, err)
	assert.Contains(t, out, "cancelled: true")
}

func TestRuleDisableEnable(t *testing.T) {
	cfg := tempConfig(t)

	_, err := runCLI(t, "--config", cfg, "rule", "add", "X", "GLOBAL")
	require.NoError(t, err)

	_, err = runCLI(t, "--config", cfg, "rule", "disable", "X", "GLOBAL")
	require.NoError(t, err)
	out, err := runCLI(t, "--config", cfg, "check", "X")
	require.NoError(t, err)
	assert.Contains(t, out, "cancelled: false")

	_, err = runCLI(t, "--config", cfg, "rule", "enable", "X", "GLOBAL")
	require.NoError(t, err)
	out, err = runCLI(t, "--config", cfg, "check", "X")
	require.NoError(t, err)
	assert.Contains(t, out, "cancelled: true")
}

func TestDebugToggle(t *testing.T) {
	cfg := tempConfig(t)

	out, err := runCLI(t, "--config", cfg, "debug", "on")
	require.NoError(t, err)
	assert.Contains(t, out, "debug on")

	_, err = runCLI(t, "--config", cfg, "debug", "sideways")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRuleEnableUnknownRule(t *testing.T) {
	cfg := tempConfig(t)

	_, err := runCLI(t, "--config", cfg, "rule", "enable", "X", "GLOBAL")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
