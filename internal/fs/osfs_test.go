package fs

import (
	"path/filepath"
	"testing"
)

func TestOSFSBasicOps(t *testing.T) {
	o, err := NewOSFS(filepath.Join(t.TempDir(), "carts"))
	if err != nil {
		t.Fatalf("expected root creation to succeed, got %v", err)
	}

	if err := o.WriteFile("a.cart", []byte("x")); err != nil {
		t.Fatalf("expected write to succeed, got %v", err)
	}
	data, err := o.ReadFile("a.cart")
	if err != nil || string(data) != "x" {
		t.Errorf("expected x, got %q err=%v", data, err)
	}

	if err := o.Mkdir("sub"); err != nil {
		t.Fatalf("expected mkdir to succeed, got %v", err)
	}
	entries, err := o.ReadDir("")
	if err != nil {
		t.Fatalf("expected listing to succeed, got %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %v", entries)
	}

	if !o.IsDir("sub") || o.IsDir("a.cart") {
		t.Error("expected IsDir to distinguish files and dirs")
	}
}

func TestOSFSStaysUnderRoot(t *testing.T) {
	dir := t.TempDir()
	o, err := NewOSFS(filepath.Join(dir, "carts"))
	if err != nil {
		t.Fatal(err)
	}

	// Dot-dot segments normalize away instead of escaping the root.
	if err := o.WriteFile("../escape", []byte("x")); err != nil {
		t.Fatalf("expected normalized write, got %v", err)
	}
	if !o.Exists("escape") {
		t.Error("expected the file inside the root")
	}

	if o.RemoveAll("") == nil {
		t.Error("expected RemoveAll of the root to be refused")
	}
}
