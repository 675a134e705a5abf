package graph

import (
	"sort"

	"github.com/snograph/snograph/rf2"
)

// Concept is a node in one view's graph. It owns the outgoing relationships
// registered against it and its direct is-a parents. Concepts are created by
// a Registry on first reference and accumulate state monotonically; nothing
// is ever removed.
type Concept struct {
	id int64

	// parents holds the direct is-a destinations, kept sorted by id so
	// iteration order (and everything derived from it) is deterministic.
	parents []*Concept

	// attributes holds every relationship sourced from this concept, in
	// registration order.
	attributes []rf2.Relationship

	// maxGroupID is the highest group number seen in attributes. It only
	// increases.
	maxGroupID int
}

func newConcept(id int64) *Concept {
	return &Concept{id: id}
}

// ID returns the concept identifier. Identifiers are unique within one
// view's universe; the other view may hold an unrelated concept with the
// same id.
func (c *Concept) ID() int64 {
	return c.id
}

// Parents returns the direct is-a parents, sorted by id.
// The returned slice is a copy.
func (c *Concept) Parents() []*Concept {
	out := make([]*Concept, len(c.parents))
	copy(out, c.parents)
	return out
}

// Attributes returns every registered outgoing relationship, in
// registration order. The returned slice is a copy.
func (c *Concept) Attributes() []rf2.Relationship {
	out := make([]rf2.Relationship, len(c.attributes))
	copy(out, c.attributes)
	return out
}

// MaxGroupID returns the highest group number observed on this concept.
func (c *Concept) MaxGroupID() int {
	return c.maxGroupID
}

// IsOrphan reports whether the concept has no is-a parents. In well-formed
// release content exactly one concept per view is an orphan: the hierarchy
// root.
func (c *Concept) IsOrphan() bool {
	return len(c.parents) == 0
}

// addParent inserts p keeping parents sorted by id, ignoring duplicates.
func (c *Concept) addParent(p *Concept) {
	i := sort.Search(len(c.parents), func(i int) bool {
		return c.parents[i].id >= p.id
	})
	if i < len(c.parents) && c.parents[i].id == p.id {
		return
	}
	c.parents = append(c.parents, nil)
	copy(c.parents[i+1:], c.parents[i:])
	c.parents[i] = p
}

func (c *Concept) addAttribute(rel rf2.Relationship) {
	c.attributes = append(c.attributes, rel)
	if rel.Group > c.maxGroupID {
		c.maxGroupID = rel.Group
	}
}

// HasAncestor reports whether target is reachable from c through the
// parents relation. The walk starts at c's parents, so a concept is not its
// own ancestor. A visited set makes the walk total: on cyclic content it
// terminates and reports false rather than recursing forever.
func (c *Concept) HasAncestor(target *Concept) bool {
	if target == nil {
		return false
	}

	visited := make(map[int64]struct{})
	stack := c.Parents()
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.id == target.id {
			return true
		}
		if _, seen := visited[p.id]; seen {
			continue
		}
		visited[p.id] = struct{}{}
		stack = append(stack, p.parents...)
	}
	return false
}

// MatchingRelationships returns every attribute with the given type and
// group, in registration order.
func (c *Concept) MatchingRelationships(typeID int64, group int) []rf2.Relationship {
	matches := []rf2.Relationship{}
	for _, rel := range c.attributes {
		if rel.MatchesTypeAndGroup(typeID, group) {
			matches = append(matches, rel)
		}
	}
	return matches
}

// MatchingRelationshipsWithDestination returns every attribute with the
// given type, destination and group, in registration order.
func (c *Concept) MatchingRelationshipsWithDestination(typeID, destinationID int64, group int) []rf2.Relationship {
	matches := []rf2.Relationship{}
	for _, rel := range c.attributes {
		if rel.MatchesTypeAndGroup(typeID, group) && rel.DestinationID == destinationID {
			matches = append(matches, rel)
		}
	}
	return matches
}

// RelationshipsInGroup returns every attribute in the given group, in
// registration order.
func (c *Concept) RelationshipsInGroup(group int) []rf2.Relationship {
	matches := []rf2.Relationship{}
	for _, rel := range c.attributes {
		if rel.MatchesGroup(group) {
			matches = append(matches, rel)
		}
	}
	return matches
}
