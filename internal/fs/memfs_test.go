package fs

import (
	"errors"
	"io/fs"
	"syscall"
	"testing"
)

func TestMemFSWriteRead(t *testing.T) {
	m := NewMemFS()
	if err := m.WriteFile("a.cart", []byte("data")); err != nil {
		t.Fatalf("expected write to succeed, got %v", err)
	}

	data, err := m.ReadFile("a.cart")
	if err != nil {
		t.Fatalf("expected read to succeed, got %v", err)
	}
	if string(data) != "data" {
		t.Errorf("expected data, got %q", data)
	}
}

func TestMemFSReadMissing(t *testing.T) {
	m := NewMemFS()
	if _, err := m.ReadFile("nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestMemFSMkdirNeedsParent(t *testing.T) {
	m := NewMemFS()
	if err := m.Mkdir("a/b"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist for missing parent, got %v", err)
	}

	if err := m.Mkdir("a"); err != nil {
		t.Fatalf("expected mkdir a to succeed, got %v", err)
	}
	if err := m.Mkdir("a/b"); err != nil {
		t.Errorf("expected mkdir a/b to succeed, got %v", err)
	}
	if err := m.Mkdir("a"); !errors.Is(err, fs.ErrExist) {
		t.Errorf("expected ErrExist, got %v", err)
	}
}

func TestMemFSRemoveNonEmptyDir(t *testing.T) {
	m := NewMemFS()
	m.Mkdir("d")
	m.WriteFile("d/f", []byte("x"))

	if err := m.Remove("d"); !errors.Is(err, syscall.ENOTEMPTY) {
		t.Errorf("expected ENOTEMPTY, got %v", err)
	}
	if err := m.RemoveAll("d"); err != nil {
		t.Fatalf("expected RemoveAll to succeed, got %v", err)
	}
	if m.Exists("d") || m.Exists("d/f") {
		t.Error("expected directory and contents gone")
	}
}

func TestMemFSReadDirSorted(t *testing.T) {
	m := NewMemFS()
	m.WriteFile("b", nil)
	m.WriteFile("a", nil)
	m.Mkdir("c")

	entries, err := m.ReadDir("")
	if err != nil {
		t.Fatalf("expected listing to succeed, got %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Name != "a" || entries[1].Name != "b" || entries[2].Name != "c" {
		t.Errorf("expected sorted listing, got %v", entries)
	}
	if !entries[2].Dir {
		t.Error("expected c to be a directory")
	}
}

func TestMemFSIsDir(t *testing.T) {
	m := NewMemFS()
	m.Mkdir("d")
	m.WriteFile("f", nil)

	if !m.IsDir("d") {
		t.Error("expected d to be a directory")
	}
	if m.IsDir("f") {
		t.Error("expected f to be a file")
	}
	if !m.IsDir("") {
		t.Error("expected root to be a directory")
	}
}
