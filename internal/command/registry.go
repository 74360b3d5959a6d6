package command

import (
	"sort"
	"strings"
)

// Spec is one static command record. H is the handler type; the registry
// never calls handlers itself, it only stores and finds them.
type Spec[H any] struct {
	// Name is the primary command name, lower case.
	Name string

	// Alias is an optional secondary name.
	Alias string

	// Help is the one-paragraph description shown by `help <name>`.
	Help string

	// Usage is the usage line, empty when the bare name is the usage.
	Usage string

	// Handler executes the command.
	Handler H
}

// Registry is the fixed command table. It is sorted by name once at
// construction and never mutated afterwards; lookup is a linear scan since
// the table stays small.
type Registry[H any] struct {
	specs []Spec[H]
}

// NewRegistry builds a registry from specs. The input slice is copied and
// sorted; construction is idempotent.
func NewRegistry[H any](specs []Spec[H]) *Registry[H] {
	owned := make([]Spec[H], len(specs))
	copy(owned, specs)
	sort.Slice(owned, func(i, j int) bool { return owned[i].Name < owned[j].Name })
	return &Registry[H]{specs: owned}
}

// Lookup finds a command by name or alias, case-insensitively.
func (r *Registry[H]) Lookup(name string) (Spec[H], bool) {
	for _, s := range r.specs {
		if strings.EqualFold(name, s.Name) || (s.Alias != "" && strings.EqualFold(name, s.Alias)) {
			return s, true
		}
	}
	var zero Spec[H]
	return zero, false
}

// Specs returns the sorted command table.
func (r *Registry[H]) Specs() []Spec[H] { return r.specs }

// Names returns all command names in sorted order.
func (r *Registry[H]) Names() []string {
	names := make([]string, len(r.specs))
	for i, s := range r.specs {
		names[i] = s.Name
	}
	return names
}

// APIItem is one entry of the runtime's API reference table, used by the
// help command.
type APIItem struct {
	Name string
	Def  string
	Help string
}

// SortAPI returns a name-sorted copy of an API table.
func SortAPI(items []APIItem) []APIItem {
	owned := make([]APIItem, len(items))
	copy(owned, items)
	sort.Slice(owned, func(i, j int) bool { return owned[i].Name < owned[j].Name })
	return owned
}
