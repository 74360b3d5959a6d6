package command

import (
	"sort"
	"testing"
)

func testRegistry() *Registry[string] {
	return NewRegistry([]Spec[string]{
		{Name: "load", Handler: "load"},
		{Name: "cls", Alias: "clear", Handler: "cls"},
		{Name: "dir", Alias: "ls", Handler: "dir"},
		{Name: "help", Handler: "help"},
	})
}

func TestRegistrySorted(t *testing.T) {
	names := testRegistry().Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("expected sorted names, got %v", names)
	}
	if len(names) != 4 {
		t.Errorf("expected 4 names, got %d", len(names))
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	r := testRegistry()
	for _, name := range []string{"load", "LOAD", "Load"} {
		spec, ok := r.Lookup(name)
		if !ok {
			t.Fatalf("expected to find %q", name)
		}
		if spec.Handler != "load" {
			t.Errorf("expected load handler, got %q", spec.Handler)
		}
	}
}

func TestLookupAlias(t *testing.T) {
	r := testRegistry()
	spec, ok := r.Lookup("ls")
	if !ok {
		t.Fatal("expected to find alias ls")
	}
	if spec.Name != "dir" {
		t.Errorf("expected dir, got %q", spec.Name)
	}
	if _, ok := r.Lookup("CLEAR"); !ok {
		t.Error("expected alias lookup to be case-insensitive")
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := testRegistry().Lookup("nope"); ok {
		t.Error("expected unknown command to miss")
	}
}

func TestRegistryCopiesInput(t *testing.T) {
	specs := []Spec[string]{{Name: "b"}, {Name: "a"}}
	r := NewRegistry(specs)
	specs[0].Name = "mutated"
	if _, ok := r.Lookup("b"); !ok {
		t.Error("expected registry to own a copy of the specs")
	}
}

func TestSortAPI(t *testing.T) {
	items := SortAPI([]APIItem{{Name: "spr"}, {Name: "btn"}, {Name: "cls"}})
	if items[0].Name != "btn" || items[2].Name != "spr" {
		t.Errorf("expected sorted API items, got %v", items)
	}
}
