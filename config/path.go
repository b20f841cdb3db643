package config

import (
	"strings"
)

// PropertyPath is an immutable, ordered sequence of configuration name
// elements in canonical form. Canonicalization lowercases each element and
// strips '-' and '_' so that "bindingRetryInterval", "binding-retry-interval"
// and "binding_retry_interval" all address the same property. Lookups against
// a Source are exact-match on the canonical form.
type PropertyPath struct {
	elements []string
}

// NewPath parses a dotted property name into a PropertyPath. Empty segments
// are dropped, so "a..b" and "a.b" are the same path.
func NewPath(name string) PropertyPath {
	parts := strings.Split(name, ".")
	elements := make([]string, 0, len(parts))
	for _, p := range parts {
		c := canonicalElement(p)
		if c != "" {
			elements = append(elements, c)
		}
	}
	return PropertyPath{elements: elements}
}

// PathOf builds a PropertyPath from individual elements.
func PathOf(elements ...string) PropertyPath {
	p := PropertyPath{}
	for _, e := range elements {
		p = p.Append(e)
	}
	return p
}

func canonicalElement(element string) string {
	var b strings.Builder
	b.Grow(len(element))
	for _, r := range strings.ToLower(element) {
		if r == '-' || r == '_' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsEmpty reports whether the path has no elements.
func (p PropertyPath) IsEmpty() bool {
	return len(p.elements) == 0
}

// NumElements returns the number of elements in the path.
func (p PropertyPath) NumElements() int {
	return len(p.elements)
}

// Element returns the canonical element at index i.
func (p PropertyPath) Element(i int) string {
	return p.elements[i]
}

// LastElement returns the final element, or "" for an empty path.
func (p PropertyPath) LastElement() string {
	if len(p.elements) == 0 {
		return ""
	}
	return p.elements[len(p.elements)-1]
}

// Elements returns a copy of the path's elements.
func (p PropertyPath) Elements() []string {
	out := make([]string, len(p.elements))
	copy(out, p.elements)
	return out
}

// Append returns a new path with element appended in canonical form. If the
// element itself contains dots it is split into multiple elements.
func (p PropertyPath) Append(element string) PropertyPath {
	suffix := NewPath(element)
	elements := make([]string, 0, len(p.elements)+len(suffix.elements))
	elements = append(elements, p.elements...)
	elements = append(elements, suffix.elements...)
	return PropertyPath{elements: elements}
}

// Parent returns the path with the last element removed. The parent of an
// empty path is the empty path.
func (p PropertyPath) Parent() PropertyPath {
	if len(p.elements) == 0 {
		return PropertyPath{}
	}
	elements := make([]string, len(p.elements)-1)
	copy(elements, p.elements[:len(p.elements)-1])
	return PropertyPath{elements: elements}
}

// IsAncestorOf reports whether p's elements are a non-strict prefix of
// other's. Every path is an ancestor of itself.
func (p PropertyPath) IsAncestorOf(other PropertyPath) bool {
	if len(p.elements) > len(other.elements) {
		return false
	}
	for i, e := range p.elements {
		if other.elements[i] != e {
			return false
		}
	}
	return true
}

// Equal reports structural equality of the canonical forms.
func (p PropertyPath) Equal(other PropertyPath) bool {
	if len(p.elements) != len(other.elements) {
		return false
	}
	for i, e := range p.elements {
		if other.elements[i] != e {
			return false
		}
	}
	return true
}

// String returns the canonical dotted form.
func (p PropertyPath) String() string {
	return strings.Join(p.elements, ".")
}
