// Package fs provides the virtual filesystem the console browses: an
// in-memory implementation for tests and a sandboxed OS-backed one for
// real use, plus the current-directory wrapper the console talks to.
package fs

// Entry is one directory listing entry.
type Entry struct {
	Name string
	Dir  bool
}

// VFS is a minimal virtual filesystem rooted at a single directory. Paths
// are slash separated and relative to the root; the empty path is the root
// itself.
type VFS interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error

	// ReadDir lists a directory sorted by name.
	ReadDir(path string) ([]Entry, error)

	Exists(path string) bool
	IsDir(path string) bool

	Mkdir(path string) error

	// Remove deletes a file or an empty directory.
	Remove(path string) error

	// RemoveAll deletes a directory and everything under it.
	RemoveAll(path string) error
}
