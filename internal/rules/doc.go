// Package rules provides the suppression rule model and the in-memory rule
// table.
//
// A Rule targets one event name at one of three scopes (GLOBAL, WORLD,
// REGION). Identity is the tuple (event, scope, world, region): adding a
// rule whose key matches an existing one replaces it rather than
// duplicating it, and removal matches the full tuple exactly. Distinct
// rules for the same event at different scopes or targets coexist.
//
// The Table groups rules by event name so resolution touches only the
// rules for the event in question, never the whole set. It performs no
// locking; internal/engine owns the readers-writer discipline.
package rules
