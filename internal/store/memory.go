package store

import "slices"

// MemoryBackend keeps the project list in memory.
type MemoryBackend struct {
	list  ProjectList
	Saves int
	Err   error // returned by Save when set
}

// NewMemoryBackend returns a backend preloaded with paths.
func NewMemoryBackend(paths ...string) *MemoryBackend {
	return &MemoryBackend{list: ProjectList(slices.Clone(paths))}
}

func (b *MemoryBackend) Load() (ProjectList, error) {
	if b.list == nil {
		return ProjectList{}, nil
	}
	return slices.Clone(b.list), nil
}

func (b *MemoryBackend) Save(list ProjectList) error {
	if b.Err != nil {
		return b.Err
	}
	b.Saves++
	b.list = slices.Clone(list)
	return nil
}
