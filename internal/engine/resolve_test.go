package engine

import (
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushd/hush/internal/region"
	"github.com/hushd/hush/internal/rules"
)

func TestShouldCancel_AnyRegionRuleSuffices(t *testing.T) {
	eng, _ := newTestEngine(t)

	for _, name := range []string{"east", "west"} {
		added, err := eng.AddRegion(region.New(name, "world",
			region.Point{X: 0, Y: 0, Z: 0}, region.Point{X: 10, Y: 10, Z: 10}, ""))
		require.NoError(t, err)
		require.True(t, added)
	}
	// Distinct region rules for the same event coexist; the decision is
	// existential, any one match at the tier is enough.
	require.NoError(t, eng.AddRule(rules.NewRule("X", rules.ScopeRegion, "", "east")))
	require.NoError(t, eng.AddRule(rules.NewRule("X", rules.ScopeRegion, "", "west")))

	found, err := eng.SetRuleEnabled(rules.NewKey("X", rules.ScopeRegion, "", "east"), false)
	require.NoError(t, err)
	require.True(t, found)

	assert.True(t, eng.ShouldCancel("X", "world", point(5, 5, 5)), "west still matches")
}

func TestShouldCancel_RegionRuleForMissingRegion(t *testing.T) {
	eng, _ := newTestEngine(t)

	// A region rule whose region does not exist simply never matches;
	// lower tiers are still consulted.
	eng.mu.Lock()
	eng.rules.Put(rules.NewRule("X", rules.ScopeRegion, "", "ghost"))
	eng.rules.Put(rules.NewRule("X", rules.ScopeGlobal, "", ""))
	eng.mu.Unlock()

	assert.True(t, eng.ShouldCancel("X", "world", point(1, 1, 1)))
}

func TestShouldCancel_ConcurrentReaders(t *testing.T) {
	eng, _ := newTestEngine(t)
	require.NoError(t, eng.AddRule(rules.NewRule("X", rules.ScopeGlobal, "", "")))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				eng.ShouldCancel("X", "world", point(1, 1, 1))
			}
		}()
	}
	for i := 0; i < 20; i++ {
		require.NoError(t, eng.AddRule(rules.NewRule(fmt.Sprintf("E%d", i), rules.ScopeGlobal, "", "")))
	}
	wg.Wait()

	assert.True(t, eng.ShouldCancel("X", "world", nil))
}

func TestShouldCancel_FailsOpenOnInternalError(t *testing.T) {
	// An engine with broken internals must answer false, never panic:
	// suppressing unrelated events is the worse failure mode.
	eng := &Engine{log: slog.Default()}

	assert.NotPanics(t, func() {
		assert.False(t, eng.ShouldCancel("X", "world", point(1, 1, 1)))
	})
}

func TestShouldCancel_ObservesPriorMutation(t *testing.T) {
	eng, _ := newTestEngine(t)

	require.NoError(t, eng.AddRule(rules.NewRule("X", rules.ScopeGlobal, "", "")))
	assert.True(t, eng.ShouldCancel("X", "", nil), "add visible once the call returned")

	removed, err := eng.RemoveRule(rules.NewKey("X", rules.ScopeGlobal, "", ""))
	require.NoError(t, err)
	require.True(t, removed)
	assert.False(t, eng.ShouldCancel("X", "", nil), "remove visible once the call returned")
}
