package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is the store document in the user's home directory.
const DefaultFileName = ".teleproj.toml"

// document is the on-disk shape of the store.
type document struct {
	Paths []string `toml:"paths"`
}

// FileBackend persists the project list as a TOML document.
type FileBackend struct {
	Path string
}

// DefaultPath returns ~/.teleproj.toml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// NewFileBackend returns a backend for the document at path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{Path: path}
}

// Load reads the project list.
// Returns an empty list if the file doesn't exist.
func (b *FileBackend) Load() (ProjectList, error) {
	data, err := os.ReadFile(b.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ProjectList{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %w", ErrPersistence, b.Path, err)
	}

	var doc document
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedStore, b.Path, err)
	}

	for i, p := range doc.Paths {
		if p == "" {
			return nil, fmt.Errorf("%w: %s: entry %d is empty", ErrMalformedStore, b.Path, i)
		}
	}

	if doc.Paths == nil {
		return ProjectList{}, nil
	}
	return ProjectList(doc.Paths), nil
}

// Save writes the whole project list atomically.
// TOML strings must be UTF-8, so a list holding any other path is rejected
// before anything is written.
func (b *FileBackend) Save(list ProjectList) error {
	for i, p := range list {
		if !utf8.ValidString(p) {
			return fmt.Errorf("%w: entry %d %q", ErrInvalidPath, i, p)
		}
	}

	data, err := encode(list)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrPersistence, err)
	}

	if err := os.MkdirAll(filepath.Dir(b.Path), 0o755); err != nil {
		return fmt.Errorf("%w: create directory: %w", ErrPersistence, err)
	}

	// Write to temp file first for atomic operation
	tmp := b.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrPersistence, tmp, err)
	}

	if err := os.Rename(tmp, b.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: save %s: %w", ErrPersistence, b.Path, err)
	}

	return nil
}

func encode(list ProjectList) ([]byte, error) {
	doc := document{Paths: []string(list)}
	if doc.Paths == nil {
		doc.Paths = []string{}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
