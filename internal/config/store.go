package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store reads and writes the configuration document at a fixed path.
//
// Store owns no live state: it only transforms between the Document and
// its durable byte form. Saves are atomic from a reader's point of view -
// the document is written to a temp file in the same directory and then
// renamed over the target, so a concurrent or subsequent Load never sees a
// partial write.
type Store struct {
	path string
}

// NewStore creates a store for the document at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the document's location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document. If no file exists yet, an empty default
// document is established and immediately persisted, so a readable
// configuration always exists after Load returns successfully.
//
// On a malformed document or I/O failure the error is returned and nothing
// is written; the caller keeps whatever state it already had.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := &Document{}
		if err := s.Save(doc); err != nil {
			return nil, fmt.Errorf("establish default configuration: %w", err)
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read configuration %s: %w", s.path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse configuration %s: %w", s.path, err)
	}
	return &doc, nil
}

// Save writes the document, replacing any prior content atomically.
func (s *Store) Save(doc *Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	return writeAtomic(s.path, data)
}

// writeAtomic writes data to path via a same-directory temp file and
// rename. The temp file is removed on any failure before the rename.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create configuration directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write configuration: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace configuration: %w", err)
	}
	return nil
}
