package rules

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Scope defines the breadth of applicability of a suppression rule.
type Scope string

const (
	// ScopeGlobal suppresses the event everywhere.
	ScopeGlobal Scope = "GLOBAL"

	// ScopeWorld suppresses the event within one named world.
	ScopeWorld Scope = "WORLD"

	// ScopeRegion suppresses the event within one named region.
	ScopeRegion Scope = "REGION"
)

// ParseScope converts a string (any case) to a Scope.
// Returns an error if s is not one of global, world, region.
func ParseScope(s string) (Scope, error) {
	switch Scope(normalizeScopeString(s)) {
	case ScopeGlobal:
		return ScopeGlobal, nil
	case ScopeWorld:
		return ScopeWorld, nil
	case ScopeRegion:
		return ScopeRegion, nil
	default:
		return "", fmt.Errorf("invalid scope %q: must be GLOBAL, WORLD, or REGION", s)
	}
}

func normalizeScopeString(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// Valid reports whether s is a known scope.
func (s Scope) Valid() bool {
	switch s {
	case ScopeGlobal, ScopeWorld, ScopeRegion:
		return true
	}
	return false
}

// Rule is one suppression directive: when matched and enabled, occurrences
// of the named event are cancelled within the rule's scope.
//
// Event is opaque to the resolution engine - it is validated only by the
// external catalog, never here. World is meaningful only for ScopeWorld,
// Region only for ScopeRegion; both are empty otherwise.
type Rule struct {
	Event   string
	Scope   Scope
	Enabled bool
	World   string
	Region  string
}

// Key identifies a rule for replace and remove: two rules with equal keys
// are the same rule. Enabled is not part of identity.
type Key struct {
	Event  string
	Scope  Scope
	World  string
	Region string
}

// NewRule builds an enabled rule with NFC-normalized names.
func NewRule(event string, scope Scope, world, region string) Rule {
	return Rule{
		Event:   norm.NFC.String(event),
		Scope:   scope,
		Enabled: true,
		World:   norm.NFC.String(world),
		Region:  norm.NFC.String(region),
	}
}

// Key returns the rule's identity tuple.
func (r Rule) Key() Key {
	return Key{Event: r.Event, Scope: r.Scope, World: r.World, Region: r.Region}
}

// NewKey builds a lookup key with NFC-normalized names, matching the
// normalization NewRule applies on insert.
func NewKey(event string, scope Scope, world, region string) Key {
	return Key{
		Event:  norm.NFC.String(event),
		Scope:  scope,
		World:  norm.NFC.String(world),
		Region: norm.NFC.String(region),
	}
}

// String renders the rule for logs and text output.
func (r Rule) String() string {
	state := "enabled"
	if !r.Enabled {
		state = "disabled"
	}
	switch r.Scope {
	case ScopeWorld:
		return fmt.Sprintf("%s [%s world=%s] (%s)", r.Event, r.Scope, r.World, state)
	case ScopeRegion:
		return fmt.Sprintf("%s [%s region=%s] (%s)", r.Event, r.Scope, r.Region, state)
	default:
		return fmt.Sprintf("%s [%s] (%s)", r.Event, r.Scope, state)
	}
}
