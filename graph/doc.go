// Package graph builds in-memory concept graphs from SNOMED CT relationship
// rows and answers structural queries over them.
//
// A Registry owns one view's universe of concepts (stated or inferred).
// Concepts are created lazily the first time a relationship references them,
// as source or destination; is-a rows additionally wire the destination in
// as a parent of the source. Registration is append-only and the graph is
// read-only once loading completes: callers must finish registering a view
// before querying it.
//
// # Queries
//
// Three query families run against a loaded registry:
//
//   - Ancestor tests: Concept.HasAncestor walks the parent closure with a
//     visited set, so it terminates even if the release content contains a
//     cycle (a cycle simply yields "not found").
//   - Group matching: Concept.MatchingRelationships and friends filter a
//     concept's outgoing relationships by type, group and destination.
//     Registry.MatchingRelationshipsWithAncestor adds an ancestor constraint
//     on the destination, filtering by type and group first so the ancestor
//     walk only runs on the cheap matches.
//   - Group content hashing: Registry.GroupHash reduces a relationship group
//     to a deterministic digest of its sorted content keys, and
//     Registry.FindEquivalentGroup locates a group with the same content
//     regardless of the group number a classifier run happened to assign.
//
// Content hashing lets classifier output be checked against authored
// content: an inferred group is "the same" as a stated group when both hash
// to the same digest, even though their numeric group ids are unrelated.
//
// # Views
//
// The stated and inferred views are two independent Registry instances that
// happen to share an identifier space; the same concept id resolves to two
// unrelated Concept values, one per view. The Views helper bundles the pair
// and routes registration by each row's characteristic.
package graph
