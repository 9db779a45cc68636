package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File is a Store backed by a single JSON file of name-to-path records.
// It serves platforms whose browsers discover hosts by manifest directory
// rather than a registry, and survives process restarts, unlike Memory.
//
// Each mutation rewrites the whole file via a rename, so a crashed writer
// never leaves a half-written store behind.
type File struct {
	path string
}

// NewFile returns a store persisted at path.  The file is created lazily on
// the first Set.
func NewFile(path string) *File {
	return &File{path: path}
}

func (s *File) Lookup(name string) (string, bool, error) {
	records, err := s.load()
	if err != nil {
		return "", false, err
	}
	path, ok := records[name]
	return path, ok, nil
}

func (s *File) Set(name, path string) error {
	records, err := s.load()
	if err != nil {
		return err
	}
	records[name] = path
	return s.save(records)
}

func (s *File) Delete(name string) error {
	records, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := records[name]; !ok {
		return nil
	}
	delete(records, name)
	return s.save(records)
}

func (s *File) load() (map[string]string, error) {
	buf, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading registration store: %w", err)
	}

	records := make(map[string]string)
	if err := json.Unmarshal(buf, &records); err != nil {
		return nil, fmt.Errorf("decoding registration store %s: %w", s.path, err)
	}
	return records, nil
}

func (s *File) save(records map[string]string) error {
	buf, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding registration store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating registration store directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0644); err != nil {
		return fmt.Errorf("writing registration store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing registration store: %w", err)
	}
	return nil
}
