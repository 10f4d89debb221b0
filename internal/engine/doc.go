// Package engine is the rule resolution engine: it decides, per event
// occurrence, whether that occurrence should be suppressed.
//
// The Engine composes the rule table, the region table, and the
// configuration store. It is the only component that locks - the tables
// themselves are plain data structures - and the only component that
// writes: every mutating operation saves the full configuration document
// synchronously before returning, so durability is coupled to each logical
// edit with no separate commit step.
//
// Resolution applies a fixed scope priority, region over world over
// global, with an existential match per tier. The hot path touches only
// the rules indexed under the event's name plus the regions those rules
// reference, never the whole rule set.
package engine
