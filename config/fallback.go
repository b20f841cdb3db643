package config

// FallbackRule maps a channel-specific configuration root to a shared
// default root. A property unset under Source can be answered by the same
// suffix re-rooted under Fallback.
type FallbackRule struct {
	Source   PropertyPath
	Fallback PropertyPath
}

// DefaultResolver holds an ordered table of fallback rules. Rules are
// evaluated in insertion order and the first match wins; this is a total
// order, not a best-match search.
type DefaultResolver struct {
	rules []FallbackRule
}

// NewDefaultResolver creates a resolver with the given rules.
func NewDefaultResolver(rules ...FallbackRule) *DefaultResolver {
	r := &DefaultResolver{}
	r.rules = append(r.rules, rules...)
	return r
}

// AddRule appends a rule to the table.
func (r *DefaultResolver) AddRule(source, fallback PropertyPath) {
	r.rules = append(r.rules, FallbackRule{Source: source, Fallback: fallback})
}

// Resolve computes the fallback path for path. The first rule whose Source
// is a strict ancestor of path (path must have at least one element beyond
// the rule root) wins; the result is the rule's Fallback with every element
// of path beyond the rule root appended. Returns false when no rule matches.
func (r *DefaultResolver) Resolve(path PropertyPath) (PropertyPath, bool) {
	for _, rule := range r.rules {
		if !rule.Source.IsAncestorOf(path) {
			continue
		}
		if path.NumElements() <= rule.Source.NumElements() {
			continue
		}
		fallback := rule.Fallback
		for i := rule.Source.NumElements(); i < path.NumElements(); i++ {
			fallback = fallback.Append(path.Element(i))
		}
		return fallback, true
	}
	return PropertyPath{}, false
}

// Lookup reads path from src, falling back to the resolver's rewritten path
// when the direct lookup misses. A nil resolver disables fallback.
func Lookup(src Source, resolver *DefaultResolver, path PropertyPath) (string, bool) {
	if v, ok := src.Get(path); ok {
		return v, true
	}
	if resolver != nil {
		if fallback, ok := resolver.Resolve(path); ok {
			return src.Get(fallback)
		}
	}
	return "", false
}
