// Package compact merges structurally interchangeable packages of an SPDX
// relationship graph.
//
// # Signatures
//
// The signature of a package is the pair (inbound, outbound). Outbound maps
// every relationship type the package is the subject of to the set of
// objects reached through it; inbound is the same for relationships the
// package is the object of. Two packages are equivalent when their
// signatures are identical: they have the same typed connections to the
// same neighbours.
//
// # Merging
//
// [Compact] partitions the packages into equivalence classes. For every class
// with more than one member the first member, in document order, is the
// primary. Relationships of the other members are redundant (the primary has
// the same ones) and are dropped; relationships of the primary are rewritten
// to reference the class key instead. The class key is the sorted list of
// member identifiers, truncated to [DefaultMaxMembers] with a "... (k more)"
// summary, joined with [LineBreak].
//
// Packages without any relationship share the empty signature, so all of them
// end up in one class. They are interchangeable in the graph and are merged
// like any other class.
//
// Classes are computed from an immutable snapshot first and the relationship
// list is rebuilt in a single pass, so the result does not depend on the
// order classes are visited in.
package compact
