// Package preset defines the named quality-criteria configurations a file is
// classified against, and the admission gate that decides whether a file is
// eligible for analysis at all under the active preset.
//
// The catalog is split into two variants behind one lookup: an immutable
// built-in table that never mutates at runtime, and exactly one mutable
// "custom" slot whose fields come from caller-supplied state. Custom edits
// are copy-on-write: WithCustom returns a new Registry, so in-flight batch
// classification never observes a half-edited preset.
//
// The registry performs no validation of the criteria it stores. Empty
// allow-sets mean "no restriction", not "reject everything"; callers needing
// strict preset validation must check externally.
package preset
