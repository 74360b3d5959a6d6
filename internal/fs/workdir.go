package fs

import "path"

// Workdir tracks a current directory inside a VFS and exposes the
// callback-shaped surface the console consumes. Browsing never leaves the
// VFS root; DirBack at the root is a no-op.
//
// The VFS here is synchronous, so the asynchronous methods invoke their
// callbacks before returning. The console does not care either way.
type Workdir struct {
	vfs VFS
	cur string
}

// NewWorkdir creates a workdir at the root of vfs.
func NewWorkdir(vfs VFS) *Workdir {
	return &Workdir{vfs: vfs}
}

// Dir returns the current directory path, empty at the root.
func (w *Workdir) Dir() string { return w.cur }

// Path returns the display path of name in the current directory.
func (w *Workdir) Path(name string) string {
	if w.cur == "" {
		return name
	}
	return w.cur + "/" + name
}

func (w *Workdir) join(name string) string {
	return path.Join(w.cur, name)
}

// Enum lists the current directory. each runs per entry until it returns
// false; done always runs, even when listing fails.
func (w *Workdir) Enum(each func(name string, dir bool) bool, done func()) {
	defer done()

	entries, err := w.vfs.ReadDir(w.cur)
	if err != nil {
		return
	}
	for _, e := range entries {
		if !each(e.Name, e.Dir) {
			return
		}
	}
}

// Load reads a file from the current directory.
func (w *Workdir) Load(name string) ([]byte, bool) {
	data, err := w.vfs.ReadFile(w.join(name))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Save writes a file into the current directory. It refuses to replace an
// existing file unless overwrite is set.
func (w *Workdir) Save(name string, data []byte, overwrite bool) bool {
	p := w.join(name)
	if !overwrite && w.vfs.Exists(p) {
		return false
	}
	return w.vfs.WriteFile(p, data) == nil
}

// Exists reports whether name exists in the current directory.
func (w *Workdir) Exists(name string) bool {
	return w.vfs.Exists(w.join(name))
}

// IsDir reports whether name is a directory.
func (w *Workdir) IsDir(name string) bool {
	return w.vfs.IsDir(w.join(name))
}

// IsDirAsync probes name and reports the result through done.
func (w *Workdir) IsDirAsync(name string, done func(bool)) {
	done(w.IsDir(name))
}

// ChangeDir enters a subdirectory of the current directory.
func (w *Workdir) ChangeDir(name string) {
	w.cur = w.join(name)
}

// DirBack moves to the parent directory.
func (w *Workdir) DirBack() {
	if w.cur == "" {
		return
	}
	w.cur = parent(w.cur)
}

// HomeDir moves to the root.
func (w *Workdir) HomeDir() { w.cur = "" }

// MakeDir creates a subdirectory of the current directory.
func (w *Workdir) MakeDir(name string) error {
	return w.vfs.Mkdir(w.join(name))
}

// DeleteFile removes a file from the current directory.
func (w *Workdir) DeleteFile(name string) error {
	return w.vfs.Remove(w.join(name))
}

// DeleteDir removes a directory and its contents.
func (w *Workdir) DeleteDir(name string) error {
	return w.vfs.RemoveAll(w.join(name))
}
