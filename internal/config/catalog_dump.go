package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hushd/hush/internal/catalog"
)

// catalogRecord is one line of the diagnostic catalog artifact.
type catalogRecord struct {
	Event       string `yaml:"event"`
	Class       string `yaml:"class"`
	Cancellable bool   `yaml:"cancellable"`
	Origin      string `yaml:"origin"`
}

// WriteCatalog writes the diagnostic catalog artifact: every event name
// the provider discovered, with its host type, whether the host allows it
// to be cancelled, and its originating namespace.
//
// The artifact is write-only from the engine's perspective - nothing ever
// reads it back; it exists so operators can inspect what is controllable.
// Entries are sorted by event name for stable diffs between dumps.
func WriteCatalog(path string, c catalog.Catalog) error {
	records := make([]catalogRecord, 0, len(c))
	for _, name := range c.Names() {
		e := c[name]
		records = append(records, catalogRecord{
			Event:       name,
			Class:       e.Class,
			Cancellable: e.Cancellable,
			Origin:      e.Origin,
		})
	}

	data, err := yaml.Marshal(struct {
		Events []catalogRecord `yaml:"events"`
	}{Events: records})
	if err != nil {
		return fmt.Errorf("encode catalog dump: %w", err)
	}
	if err := writeAtomic(path, data); err != nil {
		return fmt.Errorf("write catalog dump: %w", err)
	}
	return nil
}
