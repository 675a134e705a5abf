// Package rf2 provides the value types and row parsing for SNOMED CT RF2
// relationship release files.
//
// An RF2 relationship snapshot is a tab-separated file with one row per
// relationship. Each active row carries a source concept, a destination
// concept, a relationship type, a relationship group number and a
// characteristic type identifying which view of the terminology the row
// belongs to: the stated view (authored content) or the inferred view
// (output of the classifier).
//
// # Core Types
//
// The package provides the following types:
//
//   - Characteristic: which relationship view a row belongs to (stated or
//     inferred). The two views share an identifier space but are otherwise
//     independent graphs.
//   - Relationship: a single immutable release row. The is-a flag is derived
//     once at construction from the reserved is-a type identifier.
//   - Parser: a streaming reader for RF2 relationship files that hands each
//     usable row to a callback, so rows can flow straight into a graph
//     registry without materializing the file.
//
// # Canonical Keys
//
// Relationship.TripleKey returns the canonical encoding of a row's
// (source, type, destination) identity. Relationship.ContentKey returns the
// (type, destination) encoding that feeds the group content hash in the
// graph package. Both encodings have fixed field order and separator; see
// the respective methods for the exact formats.
package rf2
