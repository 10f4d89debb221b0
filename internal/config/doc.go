// Package config persists the engine's configuration document.
//
// The document has exactly three top-level fields: the rule list, the
// region list, and the debug flag. It is YAML so operators can edit it by
// hand; unknown fields are ignored on load to tolerate format drift in
// either direction.
//
// Durability model:
//   - Save replaces the whole document atomically (temp file + rename)
//   - Load of a missing file establishes and persists an empty default
//   - Load failures leave the caller's in-memory state untouched
//
// A second artifact, the catalog dump, is write-only diagnostics and is
// never read back by the engine.
package config
