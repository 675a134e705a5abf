package rf2

import (
	"fmt"
	"strconv"
)

// IsATypeID is the reserved SNOMED CT relationship type for the hierarchical
// "is a" relationship. Rows with this type define a concept's parents.
const IsATypeID int64 = 116680003

// Relationship is a single release row: one directed, typed edge between two
// concepts within one view. Values are immutable once constructed; the
// parsing layer produces them and the graph registry only reads them.
type Relationship struct {
	// SourceID is the concept the relationship is asserted on.
	SourceID int64

	// DestinationID is the concept the relationship points at.
	DestinationID int64

	// TypeID is the relationship type concept.
	TypeID int64

	// Group is the relationship group number. Group 0 means ungrouped:
	// each member is interpreted independently.
	Group int

	// Characteristic is the view this row belongs to.
	Characteristic Characteristic

	// IsA is derived at construction: true iff TypeID is the reserved
	// is-a type.
	IsA bool
}

// New constructs a Relationship and derives its is-a flag from IsATypeID.
func New(sourceID, destinationID, typeID int64, group int, characteristic Characteristic) Relationship {
	return newWithIsAType(sourceID, destinationID, typeID, group, characteristic, IsATypeID)
}

func newWithIsAType(sourceID, destinationID, typeID int64, group int, characteristic Characteristic, isaTypeID int64) Relationship {
	return Relationship{
		SourceID:       sourceID,
		DestinationID:  destinationID,
		TypeID:         typeID,
		Group:          group,
		Characteristic: characteristic,
		IsA:            typeID == isaTypeID,
	}
}

// MatchesTypeAndGroup reports whether the relationship has the given type
// and group.
func (r Relationship) MatchesTypeAndGroup(typeID int64, group int) bool {
	return r.TypeID == typeID && r.Group == group
}

// MatchesGroup reports whether the relationship belongs to the given group.
func (r Relationship) MatchesGroup(group int) bool {
	return r.Group == group
}

// TripleKey returns the canonical encoding of the relationship's
// (source, type, destination) identity, independent of its group number.
//
// The encoding is "<sourceId>:<typeId>:<destinationId>" with ASCII colons
// as separators. This is the identity encoding for logs and comparisons;
// the group content hash is fed by ContentKey, not TripleKey.
func (r Relationship) TripleKey() string {
	return strconv.FormatInt(r.SourceID, 10) + ":" +
		strconv.FormatInt(r.TypeID, 10) + ":" +
		strconv.FormatInt(r.DestinationID, 10)
}

// ContentKey returns the encoding of the relationship's (type, destination)
// pair used as group content-hash input: "<typeId>:<destinationId>".
//
// The source is deliberately excluded: every attribute in a group shares its
// source concept, and leaving it out makes group content comparable across
// concepts and across the stated and inferred views. Field order and
// separator are part of the hash contract and must not change.
func (r Relationship) ContentKey() string {
	return strconv.FormatInt(r.TypeID, 10) + ":" +
		strconv.FormatInt(r.DestinationID, 10)
}

// String returns a readable rendering for logs and test failures.
func (r Relationship) String() string {
	return fmt.Sprintf("%s[%d -%d-> %d g%d]", r.Characteristic, r.SourceID, r.TypeID, r.DestinationID, r.Group)
}
