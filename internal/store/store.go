// Package store manages the saved project list at ~/.teleproj.toml
package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"unicode/utf8"
)

// Errors for store operations.
var (
	ErrOutOfRange     = errors.New("index out of range")
	ErrEmptyPath      = errors.New("path must not be empty")
	ErrInvalidPath    = errors.New("path is not valid UTF-8")
	ErrMalformedStore = errors.New("store file is malformed")
	ErrPersistence    = errors.New("store file could not be accessed")
)

// OutOfRangeError reports an index that does not address any saved project.
// Input, when set, is the index as the user typed it. It is reported in
// place of Index, which saturates for numbers too large to parse.
type OutOfRangeError struct {
	Index uint64
	Input string
	Len   int
}

func (e *OutOfRangeError) Error() string {
	index := e.Input
	if index == "" {
		index = strconv.FormatUint(e.Index, 10)
	}
	if e.Len == 0 {
		return fmt.Sprintf("index %s is out of range (no projects saved)", index)
	}
	return fmt.Sprintf("index %s is out of range (0-%d)", index, e.Len-1)
}

// Is makes errors.Is(err, ErrOutOfRange) match.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// ProjectList is the ordered list of saved project paths.
// An entry's identity is its position; duplicates are allowed.
type ProjectList []string

// Entry is a saved path annotated with its position in the list.
type Entry struct {
	Index int
	Path  string
}

// Name returns the project name shown to the user (the path's basename).
func (e Entry) Name() string {
	return filepath.Base(e.Path)
}

// Entries returns every saved path together with its index.
func (l ProjectList) Entries() []Entry {
	entries := make([]Entry, len(l))
	for i, p := range l {
		entries[i] = Entry{Index: i, Path: p}
	}
	return entries
}

// Get returns the entry at index.
func (l ProjectList) Get(index uint64) (Entry, error) {
	if index >= uint64(len(l)) {
		return Entry{}, &OutOfRangeError{Index: index, Len: len(l)}
	}
	return Entry{Index: int(index), Path: l[index]}, nil
}

// IndexOf returns the first index holding path, or -1.
func (l ProjectList) IndexOf(path string) int {
	return slices.Index(l, path)
}

// Backend loads and saves the whole project list.
type Backend interface {
	Load() (ProjectList, error)
	Save(ProjectList) error
}

// Store applies add/remove to a project list and persists the result.
// Lists are passed in and returned as values; the Store holds no list itself.
type Store struct {
	backend Backend
}

// New creates a Store on top of the given backend.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load reads the current project list.
func (s *Store) Load() (ProjectList, error) {
	return s.backend.Load()
}

// Add appends path to list and saves the result.
// Returns the new list and the index of the added entry.
func (s *Store) Add(list ProjectList, path string) (ProjectList, int, error) {
	if path == "" {
		return list, -1, ErrEmptyPath
	}
	if !utf8.ValidString(path) {
		return list, -1, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	updated := make(ProjectList, len(list), len(list)+1)
	copy(updated, list)
	updated = append(updated, path)
	index := len(updated) - 1

	if err := s.backend.Save(updated); err != nil {
		return updated, index, err
	}
	return updated, index, nil
}

// Remove deletes the entry at index and saves the result.
// Later entries shift down by one. When saving fails the returned list
// still reflects the removal.
func (s *Store) Remove(list ProjectList, index uint64) (ProjectList, string, error) {
	entry, err := list.Get(index)
	if err != nil {
		return list, "", err
	}

	updated := slices.Delete(slices.Clone(list), entry.Index, entry.Index+1)

	if err := s.backend.Save(updated); err != nil {
		return updated, entry.Path, err
	}
	return updated, entry.Path, nil
}
