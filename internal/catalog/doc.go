// Package catalog provides the capability table: the set of event names
// the host exposes, with per-event metadata (host type, cancellability,
// origin).
//
// The table is supplied by an external, host-specific Provider and is
// diagnostic only. Rule resolution never validates event names against it;
// a rule may name an event the catalog has never heard of and the resolver
// will evaluate it all the same.
package catalog
