package engine

import (
	"github.com/hushd/hush/internal/region"
	"github.com/hushd/hush/internal/rules"
)

// Rules returns a flattened snapshot of every rule.
func (e *Engine) Rules() []rules.Rule {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rules.All()
}

// RulesFor returns a snapshot of the rules for one event.
func (e *Engine) RulesFor(event string) []rules.Rule {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rules.RulesFor(event)
}

// Regions returns a snapshot of every region in insertion order.
func (e *Engine) Regions() []region.Region {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.regions.All()
}

// Region looks up one region by name.
func (e *Engine) Region(name string) (region.Region, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.regions.Get(name)
}

// RegionsForWorld returns the regions whose world matches exactly.
func (e *Engine) RegionsForWorld(world string) []region.Region {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.regions.ForWorld(world)
}

// Contains reports whether the named region exists and contains the point.
func (e *Engine) Contains(name, world string, p region.Point) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.regions.Contains(name, world, p)
}

// Debug reports the persisted debug flag.
func (e *Engine) Debug() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.debug
}
