package engine

import (
	"golang.org/x/text/unicode/norm"

	"github.com/hushd/hush/internal/region"
	"github.com/hushd/hush/internal/rules"
)

// ShouldCancel decides whether an occurrence of the named event should be
// suppressed.
//
// world may be empty and at may be nil when the occurrence has no location
// (a server-wide event, say); the corresponding tiers are then skipped.
//
// Tiers are consulted in fixed priority order - REGION, then WORLD, then
// GLOBAL - and the first tier with any enabled matching rule wins. The
// match is existential: it does not matter which rule at the winning tier
// matched, only that one did. Disabled rules never match at any tier.
//
// ShouldCancel never panics: an internal error during evaluation is
// treated as "no match". Failing open here is deliberate - silently
// cancelling unrelated events is a worse failure mode for an operator than
// an occasional missed cancellation.
func (e *Engine) ShouldCancel(event, world string, at *region.Point) (cancelled bool) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("resolver panic; treating as no match", "event", event, "panic", r)
			cancelled = false
		}
	}()

	world = norm.NFC.String(world)

	e.mu.RLock()
	defer e.mu.RUnlock()

	group := e.rules.RulesFor(event)
	if len(group) == 0 {
		return false
	}

	if at != nil {
		for _, r := range group {
			if r.Enabled && r.Scope == rules.ScopeRegion && r.Region != "" &&
				e.regions.Contains(r.Region, world, *at) {
				e.debugf("cancel: region rule matched", event, "region", r.Region)
				return true
			}
		}
	}

	if world != "" {
		for _, r := range group {
			if r.Enabled && r.Scope == rules.ScopeWorld && r.World == world {
				e.debugf("cancel: world rule matched", event, "world", r.World)
				return true
			}
		}
	}

	for _, r := range group {
		if r.Enabled && r.Scope == rules.ScopeGlobal {
			e.debugf("cancel: global rule matched", event)
			return true
		}
	}

	e.debugf("no match", event)
	return false
}

// debugf emits a decision-path debug line when the debug flag is set.
// Caller must hold at least the read lock.
func (e *Engine) debugf(msg, event string, args ...any) {
	if !e.debug {
		return
	}
	e.log.Debug(msg, append([]any{"event", event}, args...)...)
}
