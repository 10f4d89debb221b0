package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Entry describes one event kind known to the host.
type Entry struct {
	// Class is the host's type name for the event.
	Class string `yaml:"class"`

	// Cancellable reports whether the host allows this event to be
	// suppressed at all.
	Cancellable bool `yaml:"cancellable"`

	// Origin is the host package or namespace the event comes from.
	Origin string `yaml:"origin"`
}

// Catalog maps event names to their host metadata.
//
// The catalog is purely diagnostic: the resolution engine treats event
// names as uninterpreted keys and never consults it when deciding whether
// to cancel.
type Catalog map[string]Entry

// Lookup returns the entry for an event name.
func (c Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c[name]
	return e, ok
}

// Names returns every known event name, sorted.
func (c Catalog) Names() []string {
	out := make([]string, 0, len(c))
	for name := range c {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Provider supplies the full set of event kinds the host exposes.
// Implementations are host-specific adapters; the engine only ever sees
// the resulting name-to-metadata table.
type Provider interface {
	Discover() (Catalog, error)
}

// ManifestProvider reads the catalog from a YAML manifest on disk. It is
// the data-driven stand-in for host-side type discovery: whatever process
// enumerates the host's events writes the manifest, and this provider
// loads it.
type ManifestProvider struct {
	Path string
}

// manifest is the on-disk shape: a single mapping of event name to entry.
// Unknown fields in entries are ignored so manifests written by newer
// discovery tools still load.
type manifest struct {
	Events map[string]Entry `yaml:"events"`
}

// Discover loads and parses the manifest.
func (p ManifestProvider) Discover() (Catalog, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog manifest: %w", err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse catalog manifest %s: %w", p.Path, err)
	}
	if m.Events == nil {
		return Catalog{}, nil
	}
	return Catalog(m.Events), nil
}

// Static wraps an in-memory catalog as a Provider. Used by tests and by
// hosts that build the table directly.
type Static Catalog

// Discover returns the wrapped catalog.
func (s Static) Discover() (Catalog, error) {
	return Catalog(s), nil
}
