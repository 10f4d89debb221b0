// Package cli implements the hush command tree: the operator surface for
// editing rules and regions, dry-running the resolver, dumping the event
// catalog, validating the configuration document, and inspecting the
// mutation journal.
//
// Commands load the configuration, apply one edit (which saves
// synchronously), and exit - the document on disk is the shared state
// between invocations and the embedding host.
package cli
