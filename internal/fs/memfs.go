package fs

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"syscall"
)

// MemFS is an in-memory VFS. It is safe for concurrent use.
type MemFS struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool
}

// NewMemFS creates an empty in-memory filesystem.
func NewMemFS() *MemFS {
	return &MemFS{
		files: make(map[string][]byte),
		dirs:  map[string]bool{"": true},
	}
}

var _ VFS = (*MemFS)(nil)

func cleanPath(p string) string {
	p = path.Clean("/" + p)
	return strings.TrimPrefix(p, "/")
}

// ReadFile reads the entire file content.
func (m *MemFS) ReadFile(p string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p = cleanPath(p)
	data, ok := m.files[p]
	if !ok {
		if m.dirs[p] {
			return nil, &fs.PathError{Op: "read", Path: p, Err: syscall.EISDIR}
		}
		return nil, &fs.PathError{Op: "read", Path: p, Err: fs.ErrNotExist}
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// WriteFile creates or replaces a file. The parent directory must exist.
func (m *MemFS) WriteFile(p string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = cleanPath(p)
	if m.dirs[p] {
		return &fs.PathError{Op: "write", Path: p, Err: syscall.EISDIR}
	}
	if dir := parent(p); !m.dirs[dir] {
		return &fs.PathError{Op: "write", Path: p, Err: fs.ErrNotExist}
	}

	owned := make([]byte, len(data))
	copy(owned, data)
	m.files[p] = owned
	return nil
}

// ReadDir lists a directory sorted by name.
func (m *MemFS) ReadDir(p string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p = cleanPath(p)
	if !m.dirs[p] {
		if _, ok := m.files[p]; ok {
			return nil, &fs.PathError{Op: "readdir", Path: p, Err: syscall.ENOTDIR}
		}
		return nil, &fs.PathError{Op: "readdir", Path: p, Err: fs.ErrNotExist}
	}

	var entries []Entry
	for name := range m.files {
		if parent(name) == p {
			entries = append(entries, Entry{Name: path.Base(name)})
		}
	}
	for name, ok := range m.dirs {
		if ok && name != "" && parent(name) == p {
			entries = append(entries, Entry{Name: path.Base(name), Dir: true})
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Exists reports whether p names a file or directory.
func (m *MemFS) Exists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p = cleanPath(p)
	_, ok := m.files[p]
	return ok || m.dirs[p]
}

// IsDir reports whether p names a directory.
func (m *MemFS) IsDir(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirs[cleanPath(p)]
}

// Mkdir creates a directory. The parent must exist.
func (m *MemFS) Mkdir(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = cleanPath(p)
	if p == "" || m.dirs[p] {
		return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrExist}
	}
	if _, ok := m.files[p]; ok {
		return &fs.PathError{Op: "mkdir", Path: p, Err: syscall.ENOTDIR}
	}
	if dir := parent(p); !m.dirs[dir] {
		return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrNotExist}
	}

	m.dirs[p] = true
	return nil
}

// Remove deletes a file or an empty directory.
func (m *MemFS) Remove(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = cleanPath(p)
	if _, ok := m.files[p]; ok {
		delete(m.files, p)
		return nil
	}
	if !m.dirs[p] || p == "" {
		return &fs.PathError{Op: "remove", Path: p, Err: fs.ErrNotExist}
	}

	for name := range m.files {
		if parent(name) == p {
			return &fs.PathError{Op: "remove", Path: p, Err: syscall.ENOTEMPTY}
		}
	}
	for name, ok := range m.dirs {
		if ok && name != p && parent(name) == p {
			return &fs.PathError{Op: "remove", Path: p, Err: syscall.ENOTEMPTY}
		}
	}

	delete(m.dirs, p)
	return nil
}

// RemoveAll deletes a directory and everything under it. Deleting a file or
// a missing path is not an error, matching os.RemoveAll.
func (m *MemFS) RemoveAll(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = cleanPath(p)
	if p == "" {
		return &fs.PathError{Op: "removeall", Path: p, Err: fs.ErrInvalid}
	}

	prefix := p + "/"
	for name := range m.files {
		if name == p || strings.HasPrefix(name, prefix) {
			delete(m.files, name)
		}
	}
	for name := range m.dirs {
		if name == p || strings.HasPrefix(name, prefix) {
			delete(m.dirs, name)
		}
	}
	return nil
}

func parent(p string) string {
	dir := path.Dir(p)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir
}
