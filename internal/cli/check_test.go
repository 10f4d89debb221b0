package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushd/hush/internal/region"
)

func TestCheckRegionScenario(t *testing.T) {
	cfg := tempConfig(t)

	_, err := runCLI(t, "--config", cfg, "region", "add", "spawn", "world",
		"100", "64", "100", "200", "128", "200")
	require.NoError(t, err)
	_, err = runCLI(t, "--config", cfg, "rule", "add", "PlayerInteractEvent", "REGION", "--region", "spawn")
	require.NoError(t, err)

	out, err := runCLI(t, "--config", cfg, "check", "PlayerInteractEvent",
		"--world", "world", "--at", "150,70,150")
	require.NoError(t, err)
	assert.Contains(t, out, "cancelled: true")

	out, err = runCLI(t, "--config", cfg, "check", "PlayerInteractEvent",
		"--world", "world", "--at", "50,70,150")
	require.NoError(t, err)
	assert.Contains(t, out, "cancelled: false")

	out, err = runCLI(t, "--config", cfg, "check", "PlayerInteractEvent",
		"--world", "world_nether", "--at", "150,70,150")
	require.NoError(t, err)
	assert.Contains(t, out, "cancelled: false")
}

func TestCheckJSONOutput(t *testing.T) {
	cfg := tempConfig(t)

	_, err := runCLI(t, "--config", cfg, "rule", "add", "BlockBreakEvent", "GLOBAL")
	require.NoError(t, err)

	out, err := runCLI(t, "--config", cfg, "--format", "json", "check", "BlockBreakEvent", "--world", "world")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   checkResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Cancelled)
	assert.Equal(t, "BlockBreakEvent", resp.Data.Event)
}

func TestCheckInvalidPoint(t *testing.T) {
	cfg := tempConfig(t)

	_, err := runCLI(t, "--config", cfg, "check", "X", "--at", "1,2")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("150, 70 ,150")
	require.NoError(t, err)
	assert.Equal(t, region.Point{X: 150, Y: 70, Z: 150}, p)

	_, err = parsePoint("150,70")
	assert.Error(t, err)

	_, err = parsePoint("a,b,c")
	assert.Error(t, err)
}

func TestRegionRemoveCascadesThroughCLI(t *testing.T) {
	cfg := tempConfig(t)

	_, err := runCLI(t, "--config", cfg, "region", "add", "spawn", "world",
		"0", "0", "0", "10", "10", "10")
	require.NoError(t, err)
	_, err = runCLI(t, "--config", cfg, "rule", "add", "X", "REGION", "--region", "spawn")
	require.NoError(t, err)

	_, err = runCLI(t, "--config", cfg, "region", "remove", "spawn")
	require.NoError(t, err)

	out, err := runCLI(t, "--config", cfg, "rule", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no rules")
}
