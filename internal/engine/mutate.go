package engine

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/hushd/hush/internal/region"
	"github.com/hushd/hush/internal/rules"
)

// AddRule inserts a rule, replacing any existing rule with the same
// identity key. The event name is never validated against a catalog -
// discovery is a separate concern and rules may predate it.
//
// A save is triggered unconditionally, even when the new rule is
// field-for-field identical to the one it replaced.
func (e *Engine) AddRule(r rules.Rule) error {
	if !r.Scope.Valid() {
		return fmt.Errorf("invalid scope %q", r.Scope)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.rules.Put(r)
	e.record("rule.add", r.String())
	return e.save()
}

// RemoveRule removes the rule whose identity key equals k exactly - all
// four fields, including empty world/region, must match. Returns whether a
// rule was removed. A save is triggered either way.
func (e *Engine) RemoveRule(k rules.Key) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	removed := e.rules.Delete(k) > 0
	if removed {
		e.record("rule.remove", fmt.Sprintf("%s [%s world=%s region=%s]", k.Event, k.Scope, k.World, k.Region))
	}
	err := e.save()
	return removed, err
}

// SetRuleEnabled flips the enabled flag on the rule with identity key k
// without deleting it. Returns false if no such rule exists, in which case
// nothing is saved.
func (e *Engine) SetRuleEnabled(k rules.Key, enabled bool) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.rules.SetEnabled(k, enabled) {
		return false, nil
	}
	op := "rule.enable"
	if !enabled {
		op = "rule.disable"
	}
	e.record(op, fmt.Sprintf("%s [%s world=%s region=%s]", k.Event, k.Scope, k.World, k.Region))
	return true, e.save()
}

// AddRegion inserts a region. Returns false with no mutation and no save
// if a region with the same name already exists.
func (e *Engine) AddRegion(r region.Region) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.regions.Put(r) {
		return false, nil
	}
	e.record("region.add", fmt.Sprintf("%s world=%s min=%v max=%v", r.Name, r.World, r.Min, r.Max))
	return true, e.save()
}

// RemoveRegion removes the named region and cascades: every REGION-scoped
// rule referencing it is deleted too, then a single save covers both.
// Returns false with no mutation and no save if no such region exists.
func (e *Engine) RemoveRegion(name string) (bool, error) {
	name = norm.NFC.String(name)

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.regions.Delete(name) {
		return false, nil
	}

	cascaded := 0
	for _, r := range e.rules.All() {
		if r.Scope == rules.ScopeRegion && r.Region == name {
			cascaded += e.rules.Delete(r.Key())
		}
	}

	e.record("region.remove", fmt.Sprintf("%s (cascaded %d rules)", name, cascaded))
	if cascaded > 0 {
		e.log.Info("cascaded rule deletion with region", "region", name, "rules", cascaded)
	}
	return true, e.save()
}

// SetDebug flips the persisted debug flag, which gates per-decision debug
// logging in ShouldCancel.
func (e *Engine) SetDebug(debug bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.debug = debug
	e.record("debug.set", fmt.Sprintf("%t", debug))
	return e.save()
}
