package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectList_Entries(t *testing.T) {
	t.Parallel()

	list := ProjectList{"/src/blog-app", "/src/todo-cli", "/src/blog-app"}
	entries := list.Entries()

	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, i, e.Index)
		assert.Equal(t, list[i], e.Path)
	}
	assert.Equal(t, "todo-cli", entries[1].Name())
}

func TestProjectList_EntriesEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ProjectList{}.Entries())
	assert.Empty(t, ProjectList(nil).Entries())
}

func TestProjectList_Get(t *testing.T) {
	t.Parallel()

	list := ProjectList{"/a", "/b"}

	e, err := list.Get(1)
	require.NoError(t, err)
	assert.Equal(t, Entry{Index: 1, Path: "/b"}, e)

	_, err = list.Get(2)
	require.ErrorIs(t, err, ErrOutOfRange)

	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, uint64(2), oor.Index)
	assert.Equal(t, 2, oor.Len)
}

func TestEntry_Name(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"/home/me/src/Blog-App", "Blog-App"},
		{"/home/me/src/blog/", "blog"},
		{"/", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Entry{Path: tt.path}.Name())
		})
	}
}

func TestOutOfRangeError_Message(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "index 3 is out of range (0-1)", (&OutOfRangeError{Index: 3, Len: 2}).Error())
	assert.Equal(t, "index 0 is out of range (no projects saved)", (&OutOfRangeError{Index: 0, Len: 0}).Error())
	assert.Equal(t, "index 99999999999999999999 is out of range (0-1)",
		(&OutOfRangeError{Index: ^uint64(0), Input: "99999999999999999999", Len: 2}).Error())
}

func TestStore_Add(t *testing.T) {
	t.Parallel()

	backend := NewMemoryBackend("/a", "/b")
	s := New(backend)

	list, err := s.Load()
	require.NoError(t, err)

	updated, index, err := s.Add(list, "/c")
	require.NoError(t, err)
	assert.Equal(t, 2, index)
	assert.Equal(t, ProjectList{"/a", "/b", "/c"}, updated)
	assert.Equal(t, ProjectList{"/a", "/b"}, list, "input list must not be mutated")
	assert.Equal(t, 1, backend.Saves)

	persisted, err := backend.Load()
	require.NoError(t, err)
	assert.Equal(t, updated, persisted)
}

func TestStore_AddDuplicate(t *testing.T) {
	t.Parallel()

	s := New(NewMemoryBackend("/a"))
	list, _ := s.Load()

	updated, index, err := s.Add(list, "/a")
	require.NoError(t, err)
	assert.Equal(t, 1, index)
	assert.Equal(t, ProjectList{"/a", "/a"}, updated)
}

func TestStore_AddEmptyPath(t *testing.T) {
	t.Parallel()

	backend := NewMemoryBackend("/a")
	s := New(backend)

	_, _, err := s.Add(ProjectList{"/a"}, "")
	require.ErrorIs(t, err, ErrEmptyPath)
	assert.Zero(t, backend.Saves)
}

func TestStore_AddInvalidUTF8(t *testing.T) {
	t.Parallel()

	backend := NewMemoryBackend("/a")
	s := New(backend)

	updated, _, err := s.Add(ProjectList{"/a"}, "/src/bad\xff")
	require.ErrorIs(t, err, ErrInvalidPath)
	assert.Equal(t, ProjectList{"/a"}, updated)
	assert.Zero(t, backend.Saves)
}

func TestStore_AddPersistFailure(t *testing.T) {
	t.Parallel()

	backend := NewMemoryBackend()
	backend.Err = fmt.Errorf("%w: disk full", ErrPersistence)
	s := New(backend)

	updated, index, err := s.Add(ProjectList{}, "/a")
	require.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, 0, index)
	assert.Equal(t, ProjectList{"/a"}, updated)
}

func TestStore_RemoveShiftsIndices(t *testing.T) {
	t.Parallel()

	original := ProjectList{"/p0", "/p1", "/p2", "/p3", "/p4"}

	for k := range original {
		t.Run(fmt.Sprintf("remove %d", k), func(t *testing.T) {
			t.Parallel()

			s := New(NewMemoryBackend(original...))
			list, err := s.Load()
			require.NoError(t, err)

			updated, removed, err := s.Remove(list, uint64(k))
			require.NoError(t, err)
			assert.Equal(t, original[k], removed)
			require.Len(t, updated, len(original)-1)

			for i := range updated {
				if i < k {
					assert.Equal(t, original[i], updated[i], "entry %d before removal point changed", i)
				} else {
					assert.Equal(t, original[i+1], updated[i], "entry %d should shift down by one", i+1)
				}
			}
		})
	}
}

func TestStore_RemoveOutOfRange(t *testing.T) {
	t.Parallel()

	backend := NewMemoryBackend("/a", "/b")
	s := New(backend)
	list, _ := s.Load()

	for _, idx := range []uint64{2, 3, 1 << 40} {
		updated, removed, err := s.Remove(list, idx)
		require.ErrorIs(t, err, ErrOutOfRange)
		assert.Empty(t, removed)
		assert.Equal(t, list, updated)
	}
	assert.Zero(t, backend.Saves)
}

func TestStore_RemovePersistFailureKeepsRemoval(t *testing.T) {
	t.Parallel()

	backend := NewMemoryBackend("/a", "/b")
	s := New(backend)
	list, _ := s.Load()

	backend.Err = errors.Join(ErrPersistence, errors.New("read-only file system"))

	updated, removed, err := s.Remove(list, 0)
	require.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, "/a", removed)
	assert.Equal(t, ProjectList{"/b"}, updated)
}

func TestStore_AddThenRemoveRestores(t *testing.T) {
	t.Parallel()

	backend := NewMemoryBackend("/a", "/b")
	s := New(backend)
	list, _ := s.Load()

	added, index, err := s.Add(list, "/c")
	require.NoError(t, err)

	restored, removed, err := s.Remove(added, uint64(index))
	require.NoError(t, err)
	assert.Equal(t, "/c", removed)
	assert.Equal(t, list, restored)
}
