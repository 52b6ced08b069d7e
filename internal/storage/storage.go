// Package storage holds the JSON-file collection store backing the catalog.
//
// Each collection is one JSON document on disk holding every record. Writes
// replace the whole file via write-to-temp-then-rename, so readers never see
// a truncated document. There is no cross-process locking around the
// read-modify-write cycle: if two processes mutate the same collection
// concurrently, the last full-file write wins and the other write is lost.
// Callers that need in-process serialization take their own lock around
// Load/Save (see internal/repository).
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Collection loads and saves a whole record set. Save must be atomic with
// respect to readers (no partially written state ever observable).
type Collection[T any] interface {
	Load() ([]T, error)
	Save(records []T) error
}

// JSONFile persists a collection as {"<key>": [records...]} pretty-printed
// JSON, matching the portal's data/apps.json and data/docs.json layout.
type JSONFile[T any] struct {
	path string
	key  string
}

func NewJSONFile[T any](path, key string) (*JSONFile[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &JSONFile[T]{path: path, key: key}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.Save(nil); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return s, nil
}

func (s *JSONFile[T]) Load() ([]T, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	var records []T
	if msg, ok := doc[s.key]; ok {
		if err := json.Unmarshal(msg, &records); err != nil {
			return nil, fmt.Errorf("parse %s %q: %w", s.path, s.key, err)
		}
	}
	return records, nil
}

func (s *JSONFile[T]) Save(records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.MarshalIndent(map[string][]T{s.key: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
