package graph

import (
	"fmt"
	"sort"

	"github.com/snograph/snograph/rf2"
)

// Registry owns one view's universe of concepts. It mediates lazy concept
// creation and relationship registration during the load phase and serves
// read-only queries afterwards.
//
// A Registry is not safe for concurrent use; the stated and inferred
// registries are independent, so the two views may be loaded concurrently
// as long as each registry has a single writer and no queries run before
// its load completes.
type Registry struct {
	characteristic rf2.Characteristic
	concepts       map[int64]*Concept
	hasher         TripleHasher
}

// New creates a Registry for the given view.
//
// The hasher is required up front: group content hashing is part of the
// query surface, and a misconfigured hash primitive should fail here, before
// any row is registered. Returns ErrNilHasher or ErrInvalidCharacteristic
// accordingly.
func New(characteristic rf2.Characteristic, hasher TripleHasher) (*Registry, error) {
	if !characteristic.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCharacteristic, characteristic)
	}
	if hasher == nil {
		return nil, ErrNilHasher
	}
	return &Registry{
		characteristic: characteristic,
		concepts:       make(map[int64]*Concept),
		hasher:         hasher,
	}, nil
}

// Characteristic returns the view this registry owns.
func (r *Registry) Characteristic() rf2.Characteristic {
	return r.characteristic
}

// Register records one relationship row. Both endpoint concepts are created
// on first reference; is-a rows additionally add the destination to the
// source's parents, and every row is appended to the source's attributes.
//
// Returns ErrCharacteristicMismatch if the row belongs to the other view.
// Duplicate registration is not detected; callers stream each row once.
func (r *Registry) Register(rel rf2.Relationship) error {
	if rel.Characteristic != r.characteristic {
		return fmt.Errorf("%w: got %s, registry is %s", ErrCharacteristicMismatch, rel.Characteristic, r.characteristic)
	}

	source := r.ensureConcept(rel.SourceID)
	destination := r.ensureConcept(rel.DestinationID)

	if rel.IsA {
		source.addParent(destination)
	}
	source.addAttribute(rel)
	return nil
}

// ensureConcept returns the concept for id, creating it on first reference.
func (r *Registry) ensureConcept(id int64) *Concept {
	if c, ok := r.concepts[id]; ok {
		return c
	}
	c := newConcept(id)
	r.concepts[id] = c
	return c
}

// GetConcept returns the concept for id, or false if no registered
// relationship has referenced it.
func (r *Registry) GetConcept(id int64) (*Concept, bool) {
	c, ok := r.concepts[id]
	return c, ok
}

// Len returns the number of concepts in the universe.
func (r *Registry) Len() int {
	return len(r.concepts)
}

// Orphans returns every concept with no is-a parents, sorted by id.
//
// A well-formed hierarchy has exactly one orphan, the root. Any other count
// points at a structural defect in the release content; it is reported to
// the caller for review, never treated as fatal here.
func (r *Registry) Orphans() []*Concept {
	orphans := []*Concept{}
	for _, c := range r.concepts {
		if c.IsOrphan() {
			orphans = append(orphans, c)
		}
	}
	sort.Slice(orphans, func(i, j int) bool {
		return orphans[i].id < orphans[j].id
	})
	return orphans
}

// MatchingRelationshipsWithAncestor returns c's attributes with the given
// type and group whose destination concept has ancestor in its parent
// closure.
//
// The type and group filter runs first because it is cheap; the ancestor
// walk only runs on the rows that survive it.
func (r *Registry) MatchingRelationshipsWithAncestor(c *Concept, typeID int64, group int, ancestor *Concept) []rf2.Relationship {
	firstPass := c.MatchingRelationships(typeID, group)

	matches := []rf2.Relationship{}
	for _, rel := range firstPass {
		destination, ok := r.GetConcept(rel.DestinationID)
		if !ok {
			continue
		}
		if destination.HasAncestor(ancestor) {
			matches = append(matches, rel)
		}
	}
	return matches
}
