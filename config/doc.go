// Package config provides the hierarchical configuration primitives the
// binding layer is built on.
//
// Core pieces:
//   - PropertyPath: canonical, immutable configuration names with ancestor
//     tests and suffix-preserving rewriting
//   - DefaultResolver: an ordered fallback-rule table that re-roots a
//     channel-specific path onto a shared default root (first match wins)
//   - Source: the read-only configuration capability, with map- and
//     YAML-backed implementations
//   - BindStruct / BindStructRecorded: reflection-based struct population
//     from a Source, with an optional presence-recording pass
//   - MergeUnset: one-directional defaults merge that never overwrites a
//     user-supplied field
//
// Canonical form lowercases elements and strips '-' and '_', so lookups are
// exact-match regardless of how keys were spelled in the source.
package config
