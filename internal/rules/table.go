package rules

import "golang.org/x/text/unicode/norm"

// Table holds the live rule set, grouped by event name.
//
// Rules for one event keep insertion order. A group is created lazily when
// the first rule for an event is added and dropped when its last rule is
// removed - an event name with zero rules has no entry at all, which keeps
// the hot-path "no rules for this event" check a single map lookup.
//
// Table is a plain data structure with no locking of its own. The engine
// coordinator serializes access; see internal/engine.
type Table struct {
	byEvent map[string][]Rule
}

// NewTable creates an empty rule table.
func NewTable() *Table {
	return &Table{byEvent: make(map[string][]Rule)}
}

// Put inserts a rule, replacing any existing rule with the same identity
// key. The replacement is atomic from the caller's view: the old rule is
// removed and the new one appended in a single call.
func (t *Table) Put(r Rule) {
	key := r.Key()
	group := t.byEvent[r.Event]
	for i, existing := range group {
		if existing.Key() == key {
			group = append(group[:i], group[i+1:]...)
			break
		}
	}
	t.byEvent[r.Event] = append(group, r)
}

// Delete removes every rule whose identity key equals k exactly - all four
// fields, including empty world/region, must match. Returns the number of
// rules removed (0 or 1, since keys are unique within the table). If the
// event's group becomes empty it is dropped entirely.
func (t *Table) Delete(k Key) int {
	group, ok := t.byEvent[k.Event]
	if !ok {
		return 0
	}
	removed := 0
	kept := group[:0]
	for _, r := range group {
		if r.Key() == k {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) == 0 {
		delete(t.byEvent, k.Event)
	} else {
		t.byEvent[k.Event] = kept
	}
	return removed
}

// SetEnabled flips the enabled flag on the rule with identity key k.
// Returns false if no such rule exists.
func (t *Table) SetEnabled(k Key, enabled bool) bool {
	group, ok := t.byEvent[k.Event]
	if !ok {
		return false
	}
	for i := range group {
		if group[i].Key() == k {
			group[i].Enabled = enabled
			return true
		}
	}
	return false
}

// Get looks up the rule with identity key k.
func (t *Table) Get(k Key) (Rule, bool) {
	for _, r := range t.byEvent[k.Event] {
		if r.Key() == k {
			return r, true
		}
	}
	return Rule{}, false
}

// RulesFor returns a snapshot of the rules for one event, in insertion
// order. The snapshot is safe for the caller to iterate while the table is
// mutated elsewhere.
func (t *Table) RulesFor(event string) []Rule {
	group, ok := t.byEvent[norm.NFC.String(event)]
	if !ok {
		return nil
	}
	out := make([]Rule, len(group))
	copy(out, group)
	return out
}

// All returns a flattened snapshot of every rule across all events.
func (t *Table) All() []Rule {
	var out []Rule
	for _, group := range t.byEvent {
		out = append(out, group...)
	}
	return out
}

// Events returns the event names that currently have at least one rule.
func (t *Table) Events() []string {
	out := make([]string, 0, len(t.byEvent))
	for event := range t.byEvent {
		out = append(out, event)
	}
	return out
}

// Len returns the total number of rules.
func (t *Table) Len() int {
	n := 0
	for _, group := range t.byEvent {
		n += len(group)
	}
	return n
}
