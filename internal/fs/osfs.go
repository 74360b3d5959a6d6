package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

var errNotUnderRoot = errors.New("path escapes the root directory")

// OSFS is a VFS over a real directory. All paths resolve inside the root;
// anything that would escape it is rejected.
type OSFS struct {
	root string
}

// NewOSFS creates a filesystem rooted at dir, creating it if needed.
func NewOSFS(dir string) (*OSFS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return &OSFS{root: abs}, nil
}

var _ VFS = (*OSFS)(nil)

// Root returns the absolute root directory.
func (o *OSFS) Root() string { return o.root }

func (o *OSFS) resolve(p string) (string, error) {
	full := filepath.Join(o.root, filepath.FromSlash(cleanPath(p)))
	rel, err := filepath.Rel(o.root, full)
	if err != nil || rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator) {
		return "", &fs.PathError{Op: "resolve", Path: p, Err: errNotUnderRoot}
	}
	return full, nil
}

// ReadFile reads the entire file content.
func (o *OSFS) ReadFile(p string) ([]byte, error) {
	full, err := o.resolve(p)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(full)
}

// WriteFile creates or replaces a file.
func (o *OSFS) WriteFile(p string, data []byte) error {
	full, err := o.resolve(p)
	if err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}

// ReadDir lists a directory sorted by name.
func (o *OSFS) ReadDir(p string) ([]Entry, error) {
	full, err := o.resolve(p)
	if err != nil {
		return nil, err
	}
	dirents, err := os.ReadDir(full)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		entries = append(entries, Entry{Name: d.Name(), Dir: d.IsDir()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Exists reports whether p names a file or directory.
func (o *OSFS) Exists(p string) bool {
	full, err := o.resolve(p)
	if err != nil {
		return false
	}
	_, err = os.Stat(full)
	return err == nil
}

// IsDir reports whether p names a directory.
func (o *OSFS) IsDir(p string) bool {
	full, err := o.resolve(p)
	if err != nil {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.IsDir()
}

// Mkdir creates a directory.
func (o *OSFS) Mkdir(p string) error {
	full, err := o.resolve(p)
	if err != nil {
		return err
	}
	return os.Mkdir(full, 0o755)
}

// Remove deletes a file or an empty directory.
func (o *OSFS) Remove(p string) error {
	full, err := o.resolve(p)
	if err != nil {
		return err
	}
	return os.Remove(full)
}

// RemoveAll deletes a directory and everything under it.
func (o *OSFS) RemoveAll(p string) error {
	full, err := o.resolve(p)
	if err != nil {
		return err
	}
	if full == o.root {
		return &fs.PathError{Op: "removeall", Path: p, Err: fs.ErrInvalid}
	}
	return os.RemoveAll(full)
}
