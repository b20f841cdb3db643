package config

import (
	"sort"
)

// Source is a hierarchical, read-only configuration capability. Values are
// string-typed; coercion happens at bind time.
type Source interface {
	// Get returns the value at path, if present.
	Get(path PropertyPath) (string, bool)

	// Leaves returns the canonical paths of every property present under
	// root, sorted. Used to record which properties a source actually
	// supplies, independent of their values.
	Leaves(root PropertyPath) []PropertyPath
}

// MapSource is a Source backed by a flat map of dotted property names.
// Keys are canonicalized at construction so lookups are exact-match.
type MapSource struct {
	values map[string]string
}

// NewMapSource builds a MapSource from dotted-name keys.
func NewMapSource(values map[string]string) *MapSource {
	s := &MapSource{values: make(map[string]string, len(values))}
	for k, v := range values {
		s.values[NewPath(k).String()] = v
	}
	return s
}

// Get implements Source.
func (s *MapSource) Get(path PropertyPath) (string, bool) {
	v, ok := s.values[path.String()]
	return v, ok
}

// Leaves implements Source.
func (s *MapSource) Leaves(root PropertyPath) []PropertyPath {
	var keys []string
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []PropertyPath
	for _, k := range keys {
		p := NewPath(k)
		if root.IsAncestorOf(p) {
			out = append(out, p)
		}
	}
	return out
}
